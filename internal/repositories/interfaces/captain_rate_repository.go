package interfaces

import (
	"context"

	"rideadmin/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CaptainRateRepository interface {
	ListByCaptain(ctx context.Context, captainID primitive.ObjectID) ([]*models.CaptainRate, error)

	// Upsert writes the rate keyed on (captain_id, service_type): the
	// existing document is updated in place, otherwise a new one is
	// inserted. The collection's unique compound index backs the key.
	Upsert(ctx context.Context, rate *models.CaptainRate) error
}
