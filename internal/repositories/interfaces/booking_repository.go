package interfaces

import (
	"context"
	"time"

	"rideadmin/internal/models"
	"rideadmin/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BookingFilter narrows a booking listing. Zero values are no-ops; date
// bounds are inclusive on booking_time.
type BookingFilter struct {
	Status      models.BookingStatus
	ServiceType models.ServiceType
	UserID      primitive.ObjectID
	CaptainID   primitive.ObjectID
	DateFrom    *time.Time
	DateTo      *time.Time
}

// RevenueTotals aggregates completed-booking money over a window.
type RevenueTotals struct {
	TotalRevenue    float64
	TotalCommission float64
}

// DailyBookingStat is one calendar-day bucket of the bookings trend.
type DailyBookingStat struct {
	Date  string
	Count int64
}

// DailyRevenueStat is one calendar-day bucket of completed-booking money.
type DailyRevenueStat struct {
	Date       string
	Revenue    float64
	Commission float64
	Count      int64
}

// UserBookingStats summarizes one user's booking history.
type UserBookingStats struct {
	TotalBookings     int64
	CompletedBookings int64
	TotalSpent        float64
}

// CaptainBookingStats summarizes one captain's booking history.
type CaptainBookingStats struct {
	TotalBookings     int64
	CompletedBookings int64
}

type BookingRepository interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error)
	List(ctx context.Context, filter *BookingFilter, params *utils.PaginationParams) ([]*models.Booking, int64, error)
	ListActive(ctx context.Context) ([]*models.Booking, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error

	// Counting
	CountTotal(ctx context.Context) (int64, error)
	CountActive(ctx context.Context) (int64, error)
	CountBetween(ctx context.Context, from, to time.Time) (int64, error)
	CountByStatusBetween(ctx context.Context, status models.BookingStatus, from, to time.Time) (int64, error)

	// Database-side grouped aggregation
	CountsByStatus(ctx context.Context, from, to time.Time) (map[models.BookingStatus]int64, error)
	CountsByServiceType(ctx context.Context, from, to time.Time) (map[models.ServiceType]int64, error)
	GetRevenueTotals(ctx context.Context, from, to time.Time) (*RevenueTotals, error)
	GetPaymentMethodTotals(ctx context.Context, from, to time.Time) (map[models.PaymentMethod]float64, error)
	GetDailyBookingCounts(ctx context.Context, from, to time.Time) ([]*DailyBookingStat, error)
	GetDailyRevenue(ctx context.Context, from, to time.Time) ([]*DailyRevenueStat, error)

	// Per-entity statistics
	GetUserStats(ctx context.Context, userID primitive.ObjectID) (*UserBookingStats, error)
	GetCaptainStats(ctx context.Context, captainID primitive.ObjectID) (*CaptainBookingStats, error)
}
