package mongodb

import (
	"context"
	"fmt"
	"time"

	"rideadmin/internal/models"
	"rideadmin/internal/repositories/interfaces"
	"rideadmin/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var captainSearchFields = []string{"name", "email", "phone_number", "plate_number"}

type captainRepository struct {
	collection *mongo.Collection
}

func NewCaptainRepository(db *mongo.Database) interfaces.CaptainRepository {
	return &captainRepository{
		collection: db.Collection("captains"),
	}
}

func (r *captainRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Captain, error) {
	var captain models.Captain
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&captain)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("captain %s: %w", id.Hex(), utils.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get captain: %w", err)
	}

	return &captain, nil
}

func (r *captainRepository) List(ctx context.Context, filter *interfaces.CaptainFilter, params *utils.PaginationParams) ([]*models.Captain, int64, error) {
	query := bson.M{}
	if filter != nil {
		if filter.Status != "" {
			query["status"] = filter.Status
		}
		if filter.VehicleType != "" {
			query["vehicle_type"] = filter.VehicleType
		}
	}

	if searchFilter := params.GetSearchFilter(captainSearchFields); len(searchFilter) > 0 {
		query = bson.M{"$and": []bson.M{query, searchFilter}}
	}

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count captains: %w", err)
	}

	cursor, err := r.collection.Find(ctx, query, params.GetSortOptions())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find captains: %w", err)
	}
	defer cursor.Close(ctx)

	var captains []*models.Captain
	for cursor.Next(ctx) {
		var captain models.Captain
		if err := cursor.Decode(&captain); err != nil {
			return nil, 0, fmt.Errorf("failed to decode captain: %w", err)
		}
		captains = append(captains, &captain)
	}

	return captains, total, nil
}

func (r *captainRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.CaptainStatus) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("failed to update captain status: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("captain %s: %w", id.Hex(), utils.ErrNotFound)
	}

	return nil
}

func (r *captainRepository) CountTotal(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

func (r *captainRepository) CountByStatus(ctx context.Context, status models.CaptainStatus) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"status": status})
}

func (r *captainRepository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{
		"created_at": bson.M{"$gte": from, "$lte": to},
	})
}

func (r *captainRepository) GetNamesByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error) {
	names := make(map[primitive.ObjectID]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to find captains by ids: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var captain struct {
			ID   primitive.ObjectID `bson:"_id"`
			Name string             `bson:"name"`
		}
		if err := cursor.Decode(&captain); err != nil {
			return nil, fmt.Errorf("failed to decode captain name: %w", err)
		}
		names[captain.ID] = captain.Name
	}

	return names, nil
}
