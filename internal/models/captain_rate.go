package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ServiceType string

const (
	ServiceTypeInsideCity      ServiceType = "InsideCity"
	ServiceTypeCrossCity       ServiceType = "CrossCity"
	ServiceTypeAirportDropoff  ServiceType = "AirportDropoff"
	ServiceTypeScooterRide     ServiceType = "ScooterRide"
	ServiceTypePackageDelivery ServiceType = "PackageDelivery"
	ServiceTypeBookCaptain     ServiceType = "BookCaptain"
)

var ServiceTypes = []ServiceType{
	ServiceTypeInsideCity,
	ServiceTypeCrossCity,
	ServiceTypeAirportDropoff,
	ServiceTypeScooterRide,
	ServiceTypePackageDelivery,
	ServiceTypeBookCaptain,
}

func (s ServiceType) Valid() bool {
	for _, v := range ServiceTypes {
		if s == v {
			return true
		}
	}
	return false
}

// CaptainRate holds per-service pricing for one captain. At most one document
// exists per (captain_id, service_type); a unique compound index enforces it.
type CaptainRate struct {
	ID              primitive.ObjectID `json:"rate_id" bson:"_id,omitempty"`
	CaptainID       primitive.ObjectID `json:"captain_id" bson:"captain_id" validate:"required"`
	ServiceType     ServiceType        `json:"service_type" bson:"service_type" validate:"required"`
	RatePerKM       float64            `json:"rate_per_km" bson:"rate_per_km"`
	MinimumFare     float64            `json:"minimum_fare" bson:"minimum_fare"`
	WaitingTimeRate float64            `json:"waiting_time_rate" bson:"waiting_time_rate"`
	CreatedAt       time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at" bson:"updated_at"`
}
