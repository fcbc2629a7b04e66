package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserStatus string

const (
	UserStatusActive      UserStatus = "Active"
	UserStatusDeactivated UserStatus = "Deactivated"
	UserStatusBlocked     UserStatus = "Blocked"
)

// UserStatuses lists every declared user status value.
var UserStatuses = []UserStatus{
	UserStatusActive,
	UserStatusDeactivated,
	UserStatusBlocked,
}

func (s UserStatus) Valid() bool {
	for _, v := range UserStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type AppUser struct {
	ID            primitive.ObjectID `json:"user_id" bson:"_id,omitempty"`
	Name          string             `json:"name" bson:"name" validate:"required"`
	Email         string             `json:"email" bson:"email" validate:"required,email"`
	PhoneNumber   string             `json:"phone_number" bson:"phone_number" validate:"required"`
	PasswordHash  string             `json:"-" bson:"password_hash"`
	FaceIDEnabled bool               `json:"face_id_enabled" bson:"face_id_enabled"`
	Status        UserStatus         `json:"status" bson:"status"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at"`
}
