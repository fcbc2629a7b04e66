package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CaptainStatus string
type VehicleType string

const (
	CaptainStatusPending     CaptainStatus = "Pending"
	CaptainStatusActive      CaptainStatus = "Active"
	CaptainStatusDeactivated CaptainStatus = "Deactivated"
	CaptainStatusOnHold      CaptainStatus = "OnHold"

	VehicleTypeCar     VehicleType = "Car"
	VehicleTypeScooter VehicleType = "Scooter"
	VehicleTypeNone    VehicleType = "None"
)

var CaptainStatuses = []CaptainStatus{
	CaptainStatusPending,
	CaptainStatusActive,
	CaptainStatusDeactivated,
	CaptainStatusOnHold,
}

var VehicleTypes = []VehicleType{
	VehicleTypeCar,
	VehicleTypeScooter,
	VehicleTypeNone,
}

func (s CaptainStatus) Valid() bool {
	for _, v := range CaptainStatuses {
		if s == v {
			return true
		}
	}
	return false
}

func (t VehicleType) Valid() bool {
	for _, v := range VehicleTypes {
		if t == v {
			return true
		}
	}
	return false
}

type Captain struct {
	ID              primitive.ObjectID `json:"captain_id" bson:"_id,omitempty"`
	Name            string             `json:"name" bson:"name" validate:"required"`
	Email           string             `json:"email" bson:"email" validate:"required,email"`
	PhoneNumber     string             `json:"phone_number" bson:"phone_number" validate:"required"`
	PasswordHash    string             `json:"-" bson:"password_hash"`
	FaceIDEnabled   bool               `json:"face_id_enabled" bson:"face_id_enabled"`
	VehicleType     VehicleType        `json:"vehicle_type" bson:"vehicle_type" validate:"required"`
	VehicleModel    string             `json:"vehicle_model" bson:"vehicle_model"`
	VehicleColor    string             `json:"vehicle_color" bson:"vehicle_color"`
	PlateNumber     string             `json:"plate_number" bson:"plate_number"`
	ProfileImageURL string             `json:"profile_image_url" bson:"profile_image_url"`
	VehicleImageURL string             `json:"vehicle_image_url" bson:"vehicle_image_url"`
	Rating          float64            `json:"rating" bson:"rating"`
	Status          CaptainStatus      `json:"status" bson:"status"`
	CreatedAt       time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at" bson:"updated_at"`
}
