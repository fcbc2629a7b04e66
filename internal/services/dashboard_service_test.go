package services

import (
	"testing"
	"time"

	"rideadmin/internal/repositories/interfaces"
)

func TestBuildTrendSeriesFillsGaps(t *testing.T) {
	from := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)

	counts := []*interfaces.DailyBookingStat{
		{Date: "2025-06-09", Count: 5},
		{Date: "2025-06-11", Count: 3},
	}
	revenue := []*interfaces.DailyRevenueStat{
		{Date: "2025-06-11", Revenue: 450, Commission: 45, Count: 3},
	}

	trends := buildTrendSeries(from, 7, counts, revenue)

	if len(trends) != 7 {
		t.Fatalf("expected 7 points, got %d", len(trends))
	}

	if trends[0].Date != "2025-06-09" || trends[0].Bookings != 5 {
		t.Errorf("unexpected first point: %+v", trends[0])
	}
	if trends[1].Bookings != 0 || trends[1].Revenue != 0 {
		t.Errorf("gap day must be zero filled, got %+v", trends[1])
	}
	if trends[2].Revenue != 450 || trends[2].Commission != 45 {
		t.Errorf("unexpected revenue point: %+v", trends[2])
	}
	if trends[6].Date != "2025-06-15" {
		t.Errorf("expected series to end on 2025-06-15, got %s", trends[6].Date)
	}
}

func TestBuildTrendSeriesEmptyInput(t *testing.T) {
	from := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)

	trends := buildTrendSeries(from, 3, nil, nil)

	if len(trends) != 3 {
		t.Fatalf("expected 3 points, got %d", len(trends))
	}
	for _, p := range trends {
		if p.Bookings != 0 || p.Revenue != 0 {
			t.Errorf("expected zero point, got %+v", p)
		}
	}
}
