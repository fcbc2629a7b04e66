package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingStatus string
type PaymentMethod string

const (
	BookingStatusPending   BookingStatus = "Pending"
	BookingStatusAccepted  BookingStatus = "Accepted"
	BookingStatusEnRoute   BookingStatus = "EnRoute"
	BookingStatusArrived   BookingStatus = "Arrived"
	BookingStatusCompleted BookingStatus = "Completed"
	BookingStatusCancelled BookingStatus = "Cancelled"
	BookingStatusDisputed  BookingStatus = "Disputed"

	PaymentMethodCash     PaymentMethod = "Cash"
	PaymentMethodInstaPay PaymentMethod = "InstaPay"
)

var BookingStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusAccepted,
	BookingStatusEnRoute,
	BookingStatusArrived,
	BookingStatusCompleted,
	BookingStatusCancelled,
	BookingStatusDisputed,
}

// ActiveBookingStatuses are the statuses a booking holds while a ride is
// still underway; the live feed and dashboard "active" counts use them.
var ActiveBookingStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusAccepted,
	BookingStatusEnRoute,
	BookingStatusArrived,
}

var PaymentMethods = []PaymentMethod{
	PaymentMethodCash,
	PaymentMethodInstaPay,
}

func (s BookingStatus) Valid() bool {
	for _, v := range BookingStatuses {
		if s == v {
			return true
		}
	}
	return false
}

func (m PaymentMethod) Valid() bool {
	for _, v := range PaymentMethods {
		if m == v {
			return true
		}
	}
	return false
}

type Booking struct {
	ID                 primitive.ObjectID  `json:"booking_id" bson:"_id,omitempty"`
	UserID             primitive.ObjectID  `json:"user_id" bson:"user_id" validate:"required"`
	CaptainID          *primitive.ObjectID `json:"captain_id" bson:"captain_id,omitempty"`
	ServiceType        ServiceType         `json:"service_type" bson:"service_type" validate:"required"`
	Status             BookingStatus       `json:"status" bson:"status"`
	PickupLocationLat  float64             `json:"pickup_location_lat" bson:"pickup_location_lat"`
	PickupLocationLon  float64             `json:"pickup_location_lon" bson:"pickup_location_lon"`
	DropoffLocationLat float64             `json:"dropoff_location_lat" bson:"dropoff_location_lat"`
	DropoffLocationLon float64             `json:"dropoff_location_lon" bson:"dropoff_location_lon"`
	PickupAddress      string              `json:"pickup_address" bson:"pickup_address"`
	DropoffAddress     string              `json:"dropoff_address" bson:"dropoff_address"`
	DistanceKM         float64             `json:"distance_km" bson:"distance_km"`
	EstimatedFare      float64             `json:"estimated_fare" bson:"estimated_fare"`
	FinalFare          float64             `json:"final_fare" bson:"final_fare"`
	PaymentMethod      PaymentMethod       `json:"payment_method" bson:"payment_method" validate:"required"`
	AppCommission      float64             `json:"app_commission" bson:"app_commission"`
	CaptainEarning     float64             `json:"captain_earning" bson:"captain_earning"`
	BookingTime        time.Time           `json:"booking_time" bson:"booking_time"`
	ScheduledTime      *time.Time          `json:"scheduled_time" bson:"scheduled_time,omitempty"`
	StartTime          *time.Time          `json:"start_time" bson:"start_time,omitempty"`
	EndTime            *time.Time          `json:"end_time" bson:"end_time,omitempty"`
	UserRating         *int                `json:"user_rating" bson:"user_rating,omitempty"`
	CaptainRating      *int                `json:"captain_rating" bson:"captain_rating,omitempty"`
	Notes              string              `json:"notes" bson:"notes"`

	// Denormalized for list/detail views, filled by repository lookups.
	UserName    string `json:"user_name,omitempty" bson:"user_name,omitempty"`
	CaptainName string `json:"captain_name,omitempty" bson:"captain_name,omitempty"`
}
