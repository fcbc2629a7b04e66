package interfaces

import (
	"context"
	"time"

	"rideadmin/internal/models"
	"rideadmin/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserFilter narrows a user listing. Zero values are no-ops.
type UserFilter struct {
	Status models.UserStatus
}

type UserRepository interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.AppUser, error)
	List(ctx context.Context, filter *UserFilter, params *utils.PaginationParams) ([]*models.AppUser, int64, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.UserStatus) error

	// Statistics
	CountTotal(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status models.UserStatus) (int64, error)
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)

	// GetNamesByIDs resolves display names for list enrichment.
	GetNamesByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error)
}
