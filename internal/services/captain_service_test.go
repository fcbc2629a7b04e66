package services

import (
	"context"
	"errors"
	"testing"

	"rideadmin/internal/models"
	"rideadmin/internal/repositories/interfaces"
	"rideadmin/internal/utils"
	"rideadmin/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// newBareCaptainService builds a service with no backing stores. Only input
// validation paths may run against it.
func newBareCaptainService(t *testing.T) *CaptainService {
	t.Helper()

	log, err := logger.NewLogger(&logger.Config{Level: "error", Format: "text"})
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}

	return NewCaptainService(nil, nil, nil, nil, nil, log)
}

func TestListCaptainsRejectsUnknownFilters(t *testing.T) {
	svc := newBareCaptainService(t)

	_, _, err := svc.ListCaptains(context.Background(), &interfaces.CaptainFilter{
		Status: models.CaptainStatus("Approved"),
	}, &utils.PaginationParams{Page: 1, PerPage: 10})
	if !errors.Is(err, utils.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for unknown status, got %v", err)
	}

	_, _, err = svc.ListCaptains(context.Background(), &interfaces.CaptainFilter{
		VehicleType: models.VehicleType("Truck"),
	}, &utils.PaginationParams{Page: 1, PerPage: 10})
	if !errors.Is(err, utils.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for unknown vehicle type, got %v", err)
	}
}

func TestSetRateValidation(t *testing.T) {
	svc := newBareCaptainService(t)
	captainID := primitive.NewObjectID()

	tests := []struct {
		name        string
		serviceType models.ServiceType
		ratePerKM   float64
	}{
		{"unknown service type", models.ServiceType("Helicopter"), 5},
		{"negative rate", models.ServiceTypeInsideCity, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SetRate(context.Background(), captainID, tt.serviceType, tt.ratePerKM, 10, 0.5)
			if !errors.Is(err, utils.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestSetRateRejectsZeroCaptainID(t *testing.T) {
	svc := newBareCaptainService(t)

	_, err := svc.SetRate(context.Background(), primitive.NilObjectID, models.ServiceTypeInsideCity, 5, 10, 0.5)
	if !errors.Is(err, utils.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for zero captain id, got %v", err)
	}
}

func TestUpdateCaptainStatusRejectsUnknownStatus(t *testing.T) {
	svc := newBareCaptainService(t)

	_, err := svc.UpdateCaptainStatus(context.Background(), primitive.NewObjectID(), models.CaptainStatus("Banned"))
	if !errors.Is(err, utils.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}
