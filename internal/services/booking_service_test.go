package services

import (
	"testing"
	"time"

	"rideadmin/internal/models"
)

func TestFormatDisputeResolution(t *testing.T) {
	got := FormatDisputeResolution("refunded the rider", "driver took a detour")
	want := "RESOLVED: refunded the rider\n\nOriginal notes: driver took a detour"

	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestFormatDisputeResolutionNoPreviousNotes(t *testing.T) {
	got := FormatDisputeResolution("refunded the rider", "")
	want := "RESOLVED: refunded the rider\n\nOriginal notes: "

	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestBuildStatusUpdateAllowsAnyCurrentStatus(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		current models.BookingStatus
		target  models.BookingStatus
	}{
		{"reopen cancelled", models.BookingStatusCancelled, models.BookingStatusAccepted},
		{"reopen completed", models.BookingStatusCompleted, models.BookingStatusDisputed},
		{"close disputed directly", models.BookingStatusDisputed, models.BookingStatusCancelled},
		{"normal progression", models.BookingStatusAccepted, models.BookingStatusEnRoute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := &models.Booking{Status: tt.current}

			updates := buildStatusUpdate(booking, tt.target, "", now)

			if updates["status"] != tt.target {
				t.Errorf("expected status update %q, got %v", tt.target, updates["status"])
			}
			if booking.Status != tt.target {
				t.Errorf("expected booking status %q, got %q", tt.target, booking.Status)
			}
			if _, ok := updates["notes"]; ok {
				t.Error("empty notes must not touch the stored notes")
			}
		})
	}
}

func TestBuildStatusUpdateReplacesNotes(t *testing.T) {
	booking := &models.Booking{Status: models.BookingStatusPending, Notes: "old"}

	updates := buildStatusUpdate(booking, models.BookingStatusCancelled, "rider no-show", time.Now())

	if updates["notes"] != "rider no-show" {
		t.Errorf("expected notes update, got %v", updates["notes"])
	}
	if booking.Notes != "rider no-show" {
		t.Errorf("expected notes replaced, got %q", booking.Notes)
	}
}

func TestBuildStatusUpdateStampsEndTimeOnCompletion(t *testing.T) {
	now := time.Now()
	booking := &models.Booking{Status: models.BookingStatusEnRoute}

	updates := buildStatusUpdate(booking, models.BookingStatusCompleted, "", now)

	if updates["end_time"] != now {
		t.Errorf("expected end_time stamped, got %v", updates["end_time"])
	}
	if booking.EndTime == nil || !booking.EndTime.Equal(now) {
		t.Errorf("expected booking end time %v, got %v", now, booking.EndTime)
	}
}

func TestBuildStatusUpdateKeepsExistingEndTime(t *testing.T) {
	earlier := time.Now().Add(-time.Hour)
	booking := &models.Booking{Status: models.BookingStatusDisputed, EndTime: &earlier}

	updates := buildStatusUpdate(booking, models.BookingStatusCompleted, "", time.Now())

	if _, ok := updates["end_time"]; ok {
		t.Error("existing end_time must not be overwritten")
	}
	if !booking.EndTime.Equal(earlier) {
		t.Errorf("expected end time unchanged, got %v", booking.EndTime)
	}
}
