package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"rideadmin/internal/models"
	"rideadmin/internal/repositories/interfaces"
	"rideadmin/internal/utils"
	"rideadmin/pkg/logger"
)

type DashboardService struct {
	userRepo    interfaces.UserRepository
	captainRepo interfaces.CaptainRepository
	bookingRepo interfaces.BookingRepository
	cache       Cache
	logger      *logger.Logger
}

func NewDashboardService(
	userRepo interfaces.UserRepository,
	captainRepo interfaces.CaptainRepository,
	bookingRepo interfaces.BookingRepository,
	cache Cache,
	log *logger.Logger,
) *DashboardService {
	return &DashboardService{
		userRepo:    userRepo,
		captainRepo: captainRepo,
		bookingRepo: bookingRepo,
		cache:       cache,
		logger:      log,
	}
}

// DashboardOverview is the landing-page snapshot: platform totals, what is
// happening today and month-to-date money. "Today" is the calendar day,
// "this month" is month-to-date, revenue counts Completed bookings only.
type DashboardOverview struct {
	Users    UserCounts    `json:"users"`
	Captains CaptainCounts `json:"captains"`
	Bookings BookingCounts `json:"bookings"`
	Revenue  RevenueCounts `json:"revenue"`
}

type UserCounts struct {
	Total    int64 `json:"total"`
	Active   int64 `json:"active"`
	NewToday int64 `json:"new_today"`
}

type CaptainCounts struct {
	Total    int64 `json:"total"`
	Active   int64 `json:"active"`
	Pending  int64 `json:"pending"`
	NewToday int64 `json:"new_today"`
}

type BookingCounts struct {
	Total          int64 `json:"total"`
	Today          int64 `json:"today"`
	Active         int64 `json:"active"`
	CompletedToday int64 `json:"completed_today"`
}

type RevenueCounts struct {
	Today               float64 `json:"today"`
	CommissionToday     float64 `json:"commission_today"`
	ThisMonth           float64 `json:"this_month"`
	CommissionThisMonth float64 `json:"commission_this_month"`
}

// TrendPoint is one calendar day of booking or revenue activity.
type TrendPoint struct {
	Date       string  `json:"date"`
	Bookings   int64   `json:"bookings,omitempty"`
	Revenue    float64 `json:"revenue"`
	Commission float64 `json:"commission"`
}

// ActivityItem is one row of the recent-activity feed.
type ActivityItem struct {
	Type      string    `json:"type"`
	ID        string    `json:"id"`
	Summary   string    `json:"summary"`
	Timestamp time.Time `json:"timestamp"`
}

// GetOverview builds the dashboard snapshot. Cached for a minute; every
// admin console polls this endpoint.
func (s *DashboardService) GetOverview(ctx context.Context) (*DashboardOverview, error) {
	cacheKey := cacheKeyDashboardPrefix + "overview"

	if s.cache != nil {
		var cached DashboardOverview
		if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	now := time.Now()
	todayStart, todayEnd := utils.StartOfDay(now), utils.EndOfDay(now)
	monthStart := utils.StartOfMonth(now)

	overview := &DashboardOverview{}
	var err error

	if overview.Users.Total, err = s.userRepo.CountTotal(ctx); err != nil {
		return nil, err
	}
	if overview.Users.Active, err = s.userRepo.CountByStatus(ctx, models.UserStatusActive); err != nil {
		return nil, err
	}
	if overview.Users.NewToday, err = s.userRepo.CountCreatedBetween(ctx, todayStart, todayEnd); err != nil {
		return nil, err
	}

	if overview.Captains.Total, err = s.captainRepo.CountTotal(ctx); err != nil {
		return nil, err
	}
	if overview.Captains.Active, err = s.captainRepo.CountByStatus(ctx, models.CaptainStatusActive); err != nil {
		return nil, err
	}
	if overview.Captains.Pending, err = s.captainRepo.CountByStatus(ctx, models.CaptainStatusPending); err != nil {
		return nil, err
	}
	if overview.Captains.NewToday, err = s.captainRepo.CountCreatedBetween(ctx, todayStart, todayEnd); err != nil {
		return nil, err
	}

	if overview.Bookings.Total, err = s.bookingRepo.CountTotal(ctx); err != nil {
		return nil, err
	}
	if overview.Bookings.Today, err = s.bookingRepo.CountBetween(ctx, todayStart, todayEnd); err != nil {
		return nil, err
	}
	if overview.Bookings.Active, err = s.bookingRepo.CountActive(ctx); err != nil {
		return nil, err
	}
	if overview.Bookings.CompletedToday, err = s.bookingRepo.CountByStatusBetween(ctx, models.BookingStatusCompleted, todayStart, todayEnd); err != nil {
		return nil, err
	}

	todayTotals, err := s.bookingRepo.GetRevenueTotals(ctx, todayStart, todayEnd)
	if err != nil {
		return nil, err
	}
	overview.Revenue.Today = todayTotals.TotalRevenue
	overview.Revenue.CommissionToday = todayTotals.TotalCommission

	monthTotals, err := s.bookingRepo.GetRevenueTotals(ctx, monthStart, now)
	if err != nil {
		return nil, err
	}
	overview.Revenue.ThisMonth = monthTotals.TotalRevenue
	overview.Revenue.CommissionThisMonth = monthTotals.TotalCommission

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, overview, utils.OverviewCacheTTL); err != nil {
			s.logger.WithError(err).Warn("Failed to cache dashboard overview")
		}
	}

	return overview, nil
}

// GetBookingsTrend returns per-day booking counts, defaulting to the
// trailing 7 days. Quiet days are zero-filled so charts get a continuous
// axis.
func (s *DashboardService) GetBookingsTrend(ctx context.Context, days int) ([]*TrendPoint, error) {
	days, err := s.trendWindow(days)
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("%sbookings-trend:%d", cacheKeyDashboardPrefix, days)
	if s.cache != nil {
		var cached []*TrendPoint
		if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	from, to := utils.TrailingWindow(time.Now(), days)
	counts, err := s.bookingRepo.GetDailyBookingCounts(ctx, from, to)
	if err != nil {
		return nil, err
	}

	trends := buildTrendSeries(from, days, counts, nil)
	s.cacheTrend(ctx, cacheKey, trends)

	return trends, nil
}

// GetRevenueTrend returns per-day revenue and commission over Completed
// bookings, defaulting to the trailing 7 days.
func (s *DashboardService) GetRevenueTrend(ctx context.Context, days int) ([]*TrendPoint, error) {
	days, err := s.trendWindow(days)
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("%srevenue-trend:%d", cacheKeyDashboardPrefix, days)
	if s.cache != nil {
		var cached []*TrendPoint
		if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	from, to := utils.TrailingWindow(time.Now(), days)
	revenue, err := s.bookingRepo.GetDailyRevenue(ctx, from, to)
	if err != nil {
		return nil, err
	}

	trends := buildTrendSeries(from, days, nil, revenue)
	s.cacheTrend(ctx, cacheKey, trends)

	return trends, nil
}

// GetServiceDistribution counts bookings per service type over the
// trailing window, defaulting to 30 days. Every service type appears,
// zero-filled.
func (s *DashboardService) GetServiceDistribution(ctx context.Context, days int) (map[models.ServiceType]int64, error) {
	if days <= 0 {
		days = utils.DefaultStatsWindowDays
	}
	if days > 365 {
		return nil, fmt.Errorf("window must be at most 365 days: %w", utils.ErrInvalidInput)
	}

	from, to := utils.TrailingWindow(time.Now(), days)
	counts, err := s.bookingRepo.CountsByServiceType(ctx, from, to)
	if err != nil {
		return nil, err
	}

	distribution := make(map[models.ServiceType]int64, len(models.ServiceTypes))
	for _, serviceType := range models.ServiceTypes {
		distribution[serviceType] = counts[serviceType]
	}

	return distribution, nil
}

func (s *DashboardService) trendWindow(days int) (int, error) {
	if days <= 0 {
		return utils.DefaultTrendDays, nil
	}
	if days > 90 {
		return 0, fmt.Errorf("trend window must be at most 90 days: %w", utils.ErrInvalidInput)
	}
	return days, nil
}

func (s *DashboardService) cacheTrend(ctx context.Context, key string, trends []*TrendPoint) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, trends, utils.StatsCacheTTL); err != nil {
		s.logger.WithError(err).Warn("Failed to cache trend series")
	}
}

func buildTrendSeries(from time.Time, days int, counts []*interfaces.DailyBookingStat, revenue []*interfaces.DailyRevenueStat) []*TrendPoint {
	countByDate := make(map[string]int64, len(counts))
	for _, c := range counts {
		countByDate[c.Date] = c.Count
	}
	revenueByDate := make(map[string]*interfaces.DailyRevenueStat, len(revenue))
	for _, r := range revenue {
		revenueByDate[r.Date] = r
	}

	trends := make([]*TrendPoint, 0, days)
	for i := 0; i < days; i++ {
		date := from.AddDate(0, 0, i).Format("2006-01-02")
		point := &TrendPoint{
			Date:     date,
			Bookings: countByDate[date],
		}
		if r, ok := revenueByDate[date]; ok {
			point.Revenue = r.Revenue
			point.Commission = r.Commission
			point.Bookings = r.Count
		}
		trends = append(trends, point)
	}

	return trends
}

// GetRecentActivity merges the newest bookings, rider signups and captain
// registrations into one feed, newest first, truncated to limit.
func (s *DashboardService) GetRecentActivity(ctx context.Context, limit int) ([]*ActivityItem, error) {
	if limit <= 0 || limit > utils.MaxPageSize {
		limit = utils.DefaultActivityLimit
	}

	var items []*ActivityItem

	bookingParams := &utils.PaginationParams{Page: 1, PerPage: limit, Sort: "booking_time", Order: "desc"}
	bookings, _, err := s.bookingRepo.List(ctx, nil, bookingParams)
	if err != nil {
		return nil, err
	}
	for _, b := range bookings {
		items = append(items, &ActivityItem{
			Type:      "booking",
			ID:        b.ID.Hex(),
			Summary:   fmt.Sprintf("%s booking %s", b.ServiceType, b.Status),
			Timestamp: b.BookingTime,
		})
	}

	userParams := &utils.PaginationParams{Page: 1, PerPage: limit, Sort: "created_at", Order: "desc"}
	users, _, err := s.userRepo.List(ctx, nil, userParams)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		items = append(items, &ActivityItem{
			Type:      "user_registered",
			ID:        u.ID.Hex(),
			Summary:   fmt.Sprintf("New user %s", u.Name),
			Timestamp: u.CreatedAt,
		})
	}

	captainParams := &utils.PaginationParams{Page: 1, PerPage: limit, Sort: "created_at", Order: "desc"}
	captains, _, err := s.captainRepo.List(ctx, nil, captainParams)
	if err != nil {
		return nil, err
	}
	for _, cap := range captains {
		items = append(items, &ActivityItem{
			Type:      "captain_registered",
			ID:        cap.ID.Hex(),
			Summary:   fmt.Sprintf("New captain %s (%s)", cap.Name, cap.Status),
			Timestamp: cap.CreatedAt,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].Timestamp.After(items[j].Timestamp)
	})

	if len(items) > limit {
		items = items[:limit]
	}

	return items, nil
}
