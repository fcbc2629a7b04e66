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

var bookingSearchFields = []string{"pickup_address", "dropoff_address", "notes"}

type bookingRepository struct {
	collection *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) interfaces.BookingRepository {
	return &bookingRepository{
		collection: db.Collection("bookings"),
	}
}

func (r *bookingRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	var booking models.Booking
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("booking %s: %w", id.Hex(), utils.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	return &booking, nil
}

func buildBookingQuery(filter *interfaces.BookingFilter) bson.M {
	query := bson.M{}
	if filter == nil {
		return query
	}

	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.ServiceType != "" {
		query["service_type"] = filter.ServiceType
	}
	if !filter.UserID.IsZero() {
		query["user_id"] = filter.UserID
	}
	if !filter.CaptainID.IsZero() {
		query["captain_id"] = filter.CaptainID
	}

	timeRange := bson.M{}
	if filter.DateFrom != nil {
		timeRange["$gte"] = *filter.DateFrom
	}
	if filter.DateTo != nil {
		timeRange["$lte"] = *filter.DateTo
	}
	if len(timeRange) > 0 {
		query["booking_time"] = timeRange
	}

	return query
}

func (r *bookingRepository) List(ctx context.Context, filter *interfaces.BookingFilter, params *utils.PaginationParams) ([]*models.Booking, int64, error) {
	query := buildBookingQuery(filter)

	if searchFilter := params.GetSearchFilter(bookingSearchFields); len(searchFilter) > 0 {
		query = bson.M{"$and": []bson.M{query, searchFilter}}
	}

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	cursor, err := r.collection.Find(ctx, query, params.GetSortOptions())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings, err := decodeBookings(ctx, cursor)
	if err != nil {
		return nil, 0, err
	}

	return bookings, total, nil
}

func (r *bookingRepository) ListActive(ctx context.Context) ([]*models.Booking, error) {
	query := bson.M{"status": bson.M{"$in": models.ActiveBookingStatuses}}
	opts := options.Find().SetSort(bson.M{"booking_time": -1})

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find active bookings: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeBookings(ctx, cursor)
}

func decodeBookings(ctx context.Context, cursor *mongo.Cursor) ([]*models.Booking, error) {
	var bookings []*models.Booking
	for cursor.Next(ctx) {
		var booking models.Booking
		if err := cursor.Decode(&booking); err != nil {
			return nil, fmt.Errorf("failed to decode booking: %w", err)
		}
		bookings = append(bookings, &booking)
	}
	return bookings, nil
}

func (r *bookingRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updates})
	if err != nil {
		return fmt.Errorf("failed to update booking: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("booking %s: %w", id.Hex(), utils.ErrNotFound)
	}

	return nil
}

func (r *bookingRepository) CountTotal(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

func (r *bookingRepository) CountActive(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{
		"status": bson.M{"$in": models.ActiveBookingStatuses},
	})
}

func (r *bookingRepository) CountBetween(ctx context.Context, from, to time.Time) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{
		"booking_time": bson.M{"$gte": from, "$lte": to},
	})
}

func (r *bookingRepository) CountByStatusBetween(ctx context.Context, status models.BookingStatus, from, to time.Time) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{
		"status":       status,
		"booking_time": bson.M{"$gte": from, "$lte": to},
	})
}

func (r *bookingRepository) CountsByStatus(ctx context.Context, from, to time.Time) (map[models.BookingStatus]int64, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"booking_time": bson.M{"$gte": from, "$lte": to}}},
		{"$group": bson.M{
			"_id":   "$status",
			"count": bson.M{"$sum": 1},
		}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate booking statuses: %w", err)
	}
	defer cursor.Close(ctx)

	counts := make(map[models.BookingStatus]int64)
	for cursor.Next(ctx) {
		var row struct {
			Status models.BookingStatus `bson:"_id"`
			Count  int64                `bson:"count"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("failed to decode status count: %w", err)
		}
		counts[row.Status] = row.Count
	}

	return counts, nil
}

func (r *bookingRepository) CountsByServiceType(ctx context.Context, from, to time.Time) (map[models.ServiceType]int64, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"booking_time": bson.M{"$gte": from, "$lte": to}}},
		{"$group": bson.M{
			"_id":   "$service_type",
			"count": bson.M{"$sum": 1},
		}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate service types: %w", err)
	}
	defer cursor.Close(ctx)

	counts := make(map[models.ServiceType]int64)
	for cursor.Next(ctx) {
		var row struct {
			ServiceType models.ServiceType `bson:"_id"`
			Count       int64              `bson:"count"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("failed to decode service type count: %w", err)
		}
		counts[row.ServiceType] = row.Count
	}

	return counts, nil
}

func (r *bookingRepository) GetRevenueTotals(ctx context.Context, from, to time.Time) (*interfaces.RevenueTotals, error) {
	pipeline := []bson.M{
		{"$match": bson.M{
			"status":       models.BookingStatusCompleted,
			"booking_time": bson.M{"$gte": from, "$lte": to},
		}},
		{"$group": bson.M{
			"_id":              nil,
			"total_revenue":    bson.M{"$sum": "$final_fare"},
			"total_commission": bson.M{"$sum": "$app_commission"},
		}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate revenue: %w", err)
	}
	defer cursor.Close(ctx)

	totals := &interfaces.RevenueTotals{}
	if cursor.Next(ctx) {
		var row struct {
			TotalRevenue    float64 `bson:"total_revenue"`
			TotalCommission float64 `bson:"total_commission"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("failed to decode revenue totals: %w", err)
		}
		totals.TotalRevenue = row.TotalRevenue
		totals.TotalCommission = row.TotalCommission
	}

	return totals, nil
}

func (r *bookingRepository) GetPaymentMethodTotals(ctx context.Context, from, to time.Time) (map[models.PaymentMethod]float64, error) {
	pipeline := []bson.M{
		{"$match": bson.M{
			"status":       models.BookingStatusCompleted,
			"booking_time": bson.M{"$gte": from, "$lte": to},
		}},
		{"$group": bson.M{
			"_id":   "$payment_method",
			"total": bson.M{"$sum": "$final_fare"},
		}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate payment methods: %w", err)
	}
	defer cursor.Close(ctx)

	totals := make(map[models.PaymentMethod]float64)
	for cursor.Next(ctx) {
		var row struct {
			Method models.PaymentMethod `bson:"_id"`
			Total  float64              `bson:"total"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("failed to decode payment method total: %w", err)
		}
		totals[row.Method] = row.Total
	}

	return totals, nil
}

func (r *bookingRepository) GetDailyBookingCounts(ctx context.Context, from, to time.Time) ([]*interfaces.DailyBookingStat, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"booking_time": bson.M{"$gte": from, "$lte": to}}},
		{"$group": bson.M{
			"_id": bson.M{
				"$dateToString": bson.M{"format": "%Y-%m-%d", "date": "$booking_time"},
			},
			"count": bson.M{"$sum": 1},
		}},
		{"$sort": bson.M{"_id": 1}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate daily bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var stats []*interfaces.DailyBookingStat
	for cursor.Next(ctx) {
		var row struct {
			Date  string `bson:"_id"`
			Count int64  `bson:"count"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("failed to decode daily booking stat: %w", err)
		}
		stats = append(stats, &interfaces.DailyBookingStat{Date: row.Date, Count: row.Count})
	}

	return stats, nil
}

func (r *bookingRepository) GetDailyRevenue(ctx context.Context, from, to time.Time) ([]*interfaces.DailyRevenueStat, error) {
	pipeline := []bson.M{
		{"$match": bson.M{
			"status":       models.BookingStatusCompleted,
			"booking_time": bson.M{"$gte": from, "$lte": to},
		}},
		{"$group": bson.M{
			"_id": bson.M{
				"$dateToString": bson.M{"format": "%Y-%m-%d", "date": "$booking_time"},
			},
			"revenue":    bson.M{"$sum": "$final_fare"},
			"commission": bson.M{"$sum": "$app_commission"},
			"count":      bson.M{"$sum": 1},
		}},
		{"$sort": bson.M{"_id": 1}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate daily revenue: %w", err)
	}
	defer cursor.Close(ctx)

	var stats []*interfaces.DailyRevenueStat
	for cursor.Next(ctx) {
		var row struct {
			Date       string  `bson:"_id"`
			Revenue    float64 `bson:"revenue"`
			Commission float64 `bson:"commission"`
			Count      int64   `bson:"count"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("failed to decode daily revenue stat: %w", err)
		}
		stats = append(stats, &interfaces.DailyRevenueStat{
			Date:       row.Date,
			Revenue:    row.Revenue,
			Commission: row.Commission,
			Count:      row.Count,
		})
	}

	return stats, nil
}

func (r *bookingRepository) GetUserStats(ctx context.Context, userID primitive.ObjectID) (*interfaces.UserBookingStats, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"user_id": userID}},
		{"$group": bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": 1},
			"completed": bson.M{"$sum": bson.M{
				"$cond": []interface{}{
					bson.M{"$eq": []interface{}{"$status", models.BookingStatusCompleted}}, 1, 0,
				},
			}},
			"spent": bson.M{"$sum": bson.M{
				"$cond": []interface{}{
					bson.M{"$eq": []interface{}{"$status", models.BookingStatusCompleted}}, "$final_fare", 0,
				},
			}},
		}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate user stats: %w", err)
	}
	defer cursor.Close(ctx)

	stats := &interfaces.UserBookingStats{}
	if cursor.Next(ctx) {
		var row struct {
			Total     int64   `bson:"total"`
			Completed int64   `bson:"completed"`
			Spent     float64 `bson:"spent"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("failed to decode user stats: %w", err)
		}
		stats.TotalBookings = row.Total
		stats.CompletedBookings = row.Completed
		stats.TotalSpent = row.Spent
	}

	return stats, nil
}

func (r *bookingRepository) GetCaptainStats(ctx context.Context, captainID primitive.ObjectID) (*interfaces.CaptainBookingStats, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"captain_id": captainID}},
		{"$group": bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": 1},
			"completed": bson.M{"$sum": bson.M{
				"$cond": []interface{}{
					bson.M{"$eq": []interface{}{"$status", models.BookingStatusCompleted}}, 1, 0,
				},
			}},
		}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate captain stats: %w", err)
	}
	defer cursor.Close(ctx)

	stats := &interfaces.CaptainBookingStats{}
	if cursor.Next(ctx) {
		var row struct {
			Total     int64 `bson:"total"`
			Completed int64 `bson:"completed"`
		}
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("failed to decode captain stats: %w", err)
		}
		stats.TotalBookings = row.Total
		stats.CompletedBookings = row.Completed
	}

	return stats, nil
}
