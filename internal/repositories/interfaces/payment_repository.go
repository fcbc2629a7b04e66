package interfaces

import (
	"context"
	"time"

	"rideadmin/internal/models"
	"rideadmin/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentFilter narrows a payment listing. Zero values are no-ops; date
// bounds are inclusive on payment_date.
type PaymentFilter struct {
	Method   models.PaymentMethod
	Status   models.PaymentStatus
	DateFrom *time.Time
	DateTo   *time.Time
}

type PaymentRepository interface {
	GetByBookingID(ctx context.Context, bookingID primitive.ObjectID) ([]*models.Payment, error)
	List(ctx context.Context, filter *PaymentFilter, params *utils.PaginationParams) ([]*models.Payment, int64, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]*models.Payment, error)
}
