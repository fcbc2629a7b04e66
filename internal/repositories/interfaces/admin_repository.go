package interfaces

import (
	"context"

	"rideadmin/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AdminRepository interface {
	Create(ctx context.Context, admin *models.Admin) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Admin, error)
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
}
