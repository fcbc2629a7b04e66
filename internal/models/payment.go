package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "Pending"
	PaymentStatusCompleted PaymentStatus = "Completed"
	PaymentStatusFailed    PaymentStatus = "Failed"
	PaymentStatusRefunded  PaymentStatus = "Refunded"
)

var PaymentStatuses = []PaymentStatus{
	PaymentStatusPending,
	PaymentStatusCompleted,
	PaymentStatusFailed,
	PaymentStatusRefunded,
}

func (s PaymentStatus) Valid() bool {
	for _, v := range PaymentStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type Payment struct {
	ID             primitive.ObjectID  `json:"payment_id" bson:"_id,omitempty"`
	BookingID      primitive.ObjectID  `json:"booking_id" bson:"booking_id" validate:"required"`
	Amount         float64             `json:"amount" bson:"amount" validate:"required"`
	Currency       string              `json:"currency" bson:"currency"`
	Method         PaymentMethod       `json:"method" bson:"method" validate:"required"`
	Status         PaymentStatus       `json:"status" bson:"status"`
	TransactionRef string              `json:"transaction_ref" bson:"transaction_ref"`
	PaymentDate    time.Time           `json:"payment_date" bson:"payment_date"`
	ProcessedBy    *primitive.ObjectID `json:"processed_by" bson:"processed_by,omitempty"`
}
