package mongodb

import (
	"context"
	"fmt"
	"time"

	"rideadmin/internal/models"
	"rideadmin/internal/repositories/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type captainRateRepository struct {
	collection *mongo.Collection
}

func NewCaptainRateRepository(db *mongo.Database) interfaces.CaptainRateRepository {
	return &captainRateRepository{
		collection: db.Collection("captain_rates"),
	}
}

func (r *captainRateRepository) ListByCaptain(ctx context.Context, captainID primitive.ObjectID) ([]*models.CaptainRate, error) {
	opts := options.Find().SetSort(bson.M{"service_type": 1})
	cursor, err := r.collection.Find(ctx, bson.M{"captain_id": captainID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find captain rates: %w", err)
	}
	defer cursor.Close(ctx)

	var rates []*models.CaptainRate
	for cursor.Next(ctx) {
		var rate models.CaptainRate
		if err := cursor.Decode(&rate); err != nil {
			return nil, fmt.Errorf("failed to decode captain rate: %w", err)
		}
		rates = append(rates, &rate)
	}

	return rates, nil
}

func (r *captainRateRepository) Upsert(ctx context.Context, rate *models.CaptainRate) error {
	now := time.Now()
	filter := bson.M{
		"captain_id":   rate.CaptainID,
		"service_type": rate.ServiceType,
	}
	update := bson.M{
		"$set": bson.M{
			"rate_per_km":       rate.RatePerKM,
			"minimum_fare":      rate.MinimumFare,
			"waiting_time_rate": rate.WaitingTimeRate,
			"updated_at":        now,
		},
		"$setOnInsert": bson.M{
			"captain_id":   rate.CaptainID,
			"service_type": rate.ServiceType,
			"created_at":   now,
		},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(rate)
	if err != nil {
		return fmt.Errorf("failed to upsert captain rate: %w", err)
	}

	return nil
}
