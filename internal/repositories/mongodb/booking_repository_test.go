package mongodb

import (
	"testing"
	"time"

	"rideadmin/internal/models"
	"rideadmin/internal/repositories/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildBookingQueryEmpty(t *testing.T) {
	if q := buildBookingQuery(nil); len(q) != 0 {
		t.Errorf("nil filter must produce an empty query, got %v", q)
	}
	if q := buildBookingQuery(&interfaces.BookingFilter{}); len(q) != 0 {
		t.Errorf("zero filter must produce an empty query, got %v", q)
	}
}

func TestBuildBookingQueryFields(t *testing.T) {
	userID := primitive.NewObjectID()
	captainID := primitive.NewObjectID()
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

	q := buildBookingQuery(&interfaces.BookingFilter{
		Status:      models.BookingStatusDisputed,
		ServiceType: models.ServiceTypeInsideCity,
		UserID:      userID,
		CaptainID:   captainID,
		DateFrom:    &from,
		DateTo:      &to,
	})

	if q["status"] != models.BookingStatusDisputed {
		t.Errorf("expected status filter, got %v", q["status"])
	}
	if q["service_type"] != models.ServiceTypeInsideCity {
		t.Errorf("expected service_type filter, got %v", q["service_type"])
	}
	if q["user_id"] != userID {
		t.Errorf("expected user_id filter, got %v", q["user_id"])
	}
	if q["captain_id"] != captainID {
		t.Errorf("expected captain_id filter, got %v", q["captain_id"])
	}

	timeRange, ok := q["booking_time"].(bson.M)
	if !ok {
		t.Fatal("expected booking_time range")
	}
	if timeRange["$gte"] != from || timeRange["$lte"] != to {
		t.Errorf("unexpected time range: %v", timeRange)
	}
}

func TestBuildBookingQueryOpenEndedRange(t *testing.T) {
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	q := buildBookingQuery(&interfaces.BookingFilter{DateFrom: &from})

	timeRange, ok := q["booking_time"].(bson.M)
	if !ok {
		t.Fatal("expected booking_time range")
	}
	if _, hasUpper := timeRange["$lte"]; hasUpper {
		t.Error("open-ended range must not set an upper bound")
	}
	if timeRange["$gte"] != from {
		t.Errorf("expected lower bound %v, got %v", from, timeRange["$gte"])
	}
}
