package interfaces

import (
	"context"
	"time"

	"rideadmin/internal/models"
	"rideadmin/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CaptainFilter narrows a captain listing. Zero values are no-ops.
type CaptainFilter struct {
	Status      models.CaptainStatus
	VehicleType models.VehicleType
}

type CaptainRepository interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Captain, error)
	List(ctx context.Context, filter *CaptainFilter, params *utils.PaginationParams) ([]*models.Captain, int64, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.CaptainStatus) error

	// Statistics
	CountTotal(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status models.CaptainStatus) (int64, error)
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)

	GetNamesByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error)
}
