package services

import (
	"context"
	"errors"
	"testing"

	"rideadmin/internal/utils"
	"rideadmin/pkg/logger"
)

func newBareFinancialService(t *testing.T) *FinancialService {
	t.Helper()

	log, err := logger.NewLogger(&logger.Config{Level: "error", Format: "text"})
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}
	return NewFinancialService(nil, nil, nil, nil, "USD", log)
}

func TestCommissionPercentage(t *testing.T) {
	tests := []struct {
		name       string
		commission float64
		fare       float64
		want       float64
	}{
		{"ten percent", 10, 100, 10},
		{"zero fare", 5, 0, 0},
		{"negative fare", 5, -20, 0},
		{"zero commission", 0, 80, 0},
		{"full fare", 50, 50, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CommissionPercentage(tt.commission, tt.fare); got != tt.want {
				t.Errorf("CommissionPercentage(%v, %v) = %v, want %v", tt.commission, tt.fare, got, tt.want)
			}
		})
	}
}

func TestExportRejectsUnknownType(t *testing.T) {
	svc := newBareFinancialService(t)

	_, err := svc.Export(context.Background(), "invoices", "", "")
	if !errors.Is(err, utils.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestExportRejectsBadDateRange(t *testing.T) {
	svc := newBareFinancialService(t)

	_, err := svc.Export(context.Background(), ExportTypeTransactions, "not-a-date", "")
	if !errors.Is(err, utils.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestExportRejectsInvertedDateRange(t *testing.T) {
	svc := newBareFinancialService(t)

	_, err := svc.Export(context.Background(), ExportTypeTransactions, "2025-06-10", "2025-06-01")
	if !errors.Is(err, utils.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestListCommissionsRejectsInvertedDateRange(t *testing.T) {
	svc := newBareFinancialService(t)

	_, _, err := svc.ListCommissions(context.Background(), "2025-06-10", "2025-06-01",
		&utils.PaginationParams{Page: 1, PerPage: 10})
	if !errors.Is(err, utils.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestGetDailyRevenueRejectsOversizedWindow(t *testing.T) {
	svc := newBareFinancialService(t)

	_, err := svc.GetDailyRevenue(context.Background(), 400)
	if !errors.Is(err, utils.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
