package models

import "testing"

func TestUserStatusValid(t *testing.T) {
	for _, s := range UserStatuses {
		if !s.Valid() {
			t.Errorf("expected %s to be valid", s)
		}
	}
	if UserStatus("Suspended").Valid() {
		t.Error("Suspended is not a user status")
	}
	if UserStatus("").Valid() {
		t.Error("empty string is not a user status")
	}
	if UserStatus("active").Valid() {
		t.Error("statuses are case sensitive")
	}
}

func TestCaptainStatusValid(t *testing.T) {
	for _, s := range CaptainStatuses {
		if !s.Valid() {
			t.Errorf("expected %s to be valid", s)
		}
	}
	if CaptainStatus("Approved").Valid() {
		t.Error("Approved is not a captain status")
	}
}

func TestVehicleTypeValid(t *testing.T) {
	for _, v := range VehicleTypes {
		if !v.Valid() {
			t.Errorf("expected %s to be valid", v)
		}
	}
	if VehicleType("Truck").Valid() {
		t.Error("Truck is not a vehicle type")
	}
}

func TestServiceTypeValid(t *testing.T) {
	for _, s := range ServiceTypes {
		if !s.Valid() {
			t.Errorf("expected %s to be valid", s)
		}
	}
	if ServiceType("Carpool").Valid() {
		t.Error("Carpool is not a service type")
	}
}

func TestBookingStatusValid(t *testing.T) {
	for _, s := range BookingStatuses {
		if !s.Valid() {
			t.Errorf("expected %s to be valid", s)
		}
	}
	if BookingStatus("Started").Valid() {
		t.Error("Started is not a booking status")
	}
}

func TestActiveBookingStatusesExcludeTerminal(t *testing.T) {
	for _, s := range ActiveBookingStatuses {
		switch s {
		case BookingStatusCompleted, BookingStatusCancelled, BookingStatusDisputed:
			t.Errorf("%s must not be in the active set", s)
		}
	}
}

func TestPaymentEnumsValid(t *testing.T) {
	for _, m := range PaymentMethods {
		if !m.Valid() {
			t.Errorf("expected %s to be valid", m)
		}
	}
	if PaymentMethod("Card").Valid() {
		t.Error("Card is not a payment method")
	}

	for _, s := range PaymentStatuses {
		if !s.Valid() {
			t.Errorf("expected %s to be valid", s)
		}
	}
	if PaymentStatus("Chargeback").Valid() {
		t.Error("Chargeback is not a payment status")
	}
}
