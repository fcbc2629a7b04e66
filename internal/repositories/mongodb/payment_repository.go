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
	"go.mongodb.org/mongo-driver/mongo/options"
)

var paymentSearchFields = []string{"transaction_ref", "currency"}

type paymentRepository struct {
	collection *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) interfaces.PaymentRepository {
	return &paymentRepository{
		collection: db.Collection("payments"),
	}
}

func (r *paymentRepository) GetByBookingID(ctx context.Context, bookingID primitive.ObjectID) ([]*models.Payment, error) {
	opts := options.Find().SetSort(bson.M{"payment_date": -1})
	cursor, err := r.collection.Find(ctx, bson.M{"booking_id": bookingID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find payments for booking %s: %w", bookingID.Hex(), err)
	}
	defer cursor.Close(ctx)

	return decodePayments(ctx, cursor)
}

func (r *paymentRepository) List(ctx context.Context, filter *interfaces.PaymentFilter, params *utils.PaginationParams) ([]*models.Payment, int64, error) {
	query := bson.M{}
	if filter != nil {
		if filter.Method != "" {
			query["method"] = filter.Method
		}
		if filter.Status != "" {
			query["status"] = filter.Status
		}

		dateRange := bson.M{}
		if filter.DateFrom != nil {
			dateRange["$gte"] = *filter.DateFrom
		}
		if filter.DateTo != nil {
			dateRange["$lte"] = *filter.DateTo
		}
		if len(dateRange) > 0 {
			query["payment_date"] = dateRange
		}
	}

	if searchFilter := params.GetSearchFilter(paymentSearchFields); len(searchFilter) > 0 {
		query = bson.M{"$and": []bson.M{query, searchFilter}}
	}

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count payments: %w", err)
	}

	cursor, err := r.collection.Find(ctx, query, params.GetSortOptions())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find payments: %w", err)
	}
	defer cursor.Close(ctx)

	payments, err := decodePayments(ctx, cursor)
	if err != nil {
		return nil, 0, err
	}

	return payments, total, nil
}

func (r *paymentRepository) ListBetween(ctx context.Context, from, to time.Time) ([]*models.Payment, error) {
	query := bson.M{"payment_date": bson.M{"$gte": from, "$lte": to}}
	opts := options.Find().SetSort(bson.M{"payment_date": -1})

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find payments: %w", err)
	}
	defer cursor.Close(ctx)

	return decodePayments(ctx, cursor)
}

func decodePayments(ctx context.Context, cursor *mongo.Cursor) ([]*models.Payment, error) {
	var payments []*models.Payment
	for cursor.Next(ctx) {
		var payment models.Payment
		if err := cursor.Decode(&payment); err != nil {
			return nil, fmt.Errorf("failed to decode payment: %w", err)
		}
		payments = append(payments, &payment)
	}
	return payments, nil
}
