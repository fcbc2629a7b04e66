package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"rideadmin/internal/models"
	"rideadmin/internal/repositories/interfaces"
	"rideadmin/internal/utils"
	"rideadmin/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FinancialService struct {
	bookingRepo interfaces.BookingRepository
	paymentRepo interfaces.PaymentRepository
	userRepo    interfaces.UserRepository
	cache       Cache
	currency    string
	logger      *logger.Logger
}

func NewFinancialService(
	bookingRepo interfaces.BookingRepository,
	paymentRepo interfaces.PaymentRepository,
	userRepo interfaces.UserRepository,
	cache Cache,
	currency string,
	log *logger.Logger,
) *FinancialService {
	if currency == "" {
		currency = utils.DefaultCurrency
	}
	return &FinancialService{
		bookingRepo: bookingRepo,
		paymentRepo: paymentRepo,
		userRepo:    userRepo,
		cache:       cache,
		currency:    currency,
		logger:      log,
	}
}

// FinancialOverview summarizes completed-booking money over a date range.
type FinancialOverview struct {
	From            time.Time                        `json:"from"`
	To              time.Time                        `json:"to"`
	Currency        string                           `json:"currency"`
	TotalRevenue    float64                          `json:"total_revenue"`
	TotalCommission float64                          `json:"total_commission"`
	CaptainEarnings float64                          `json:"captain_earnings"`
	CompletedRides  int64                            `json:"completed_rides"`
	ByPaymentMethod map[models.PaymentMethod]float64 `json:"by_payment_method"`
	DailyRevenue    []*interfaces.DailyRevenueStat   `json:"daily_revenue"`
}

// Transaction is a payment enriched with its booking context for listings.
type Transaction struct {
	*models.Payment
	UserName    string               `json:"user_name,omitempty"`
	ServiceType models.ServiceType   `json:"service_type,omitempty"`
	RideStatus  models.BookingStatus `json:"ride_status,omitempty"`
}

// GetOverview aggregates revenue, commission and payment method breakdowns.
// The range defaults to month-to-date; results are cached briefly since the
// queries scan the whole window.
func (s *FinancialService) GetOverview(ctx context.Context, fromStr, toStr string) (*FinancialOverview, error) {
	now := time.Now()
	from, to, err := utils.ParseDateRange(fromStr, toStr, utils.StartOfMonth(now), now)
	if err != nil {
		return nil, fmt.Errorf("invalid date range: %w", utils.ErrInvalidInput)
	}
	if to.Before(from) {
		return nil, fmt.Errorf("range end precedes start: %w", utils.ErrInvalidInput)
	}

	cacheKey := fmt.Sprintf("%soverview:%s:%s", cacheKeyFinancePrefix,
		from.Format("2006-01-02T15:04:05"), to.Format("2006-01-02T15:04:05"))

	if s.cache != nil {
		var cached FinancialOverview
		if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	totals, err := s.bookingRepo.GetRevenueTotals(ctx, from, to)
	if err != nil {
		return nil, err
	}

	completed, err := s.bookingRepo.CountByStatusBetween(ctx, models.BookingStatusCompleted, from, to)
	if err != nil {
		return nil, err
	}

	byMethod, err := s.bookingRepo.GetPaymentMethodTotals(ctx, from, to)
	if err != nil {
		return nil, err
	}

	daily, err := s.bookingRepo.GetDailyRevenue(ctx, from, to)
	if err != nil {
		return nil, err
	}

	overview := &FinancialOverview{
		From:            from,
		To:              to,
		Currency:        s.currency,
		TotalRevenue:    totals.TotalRevenue,
		TotalCommission: totals.TotalCommission,
		CaptainEarnings: totals.TotalRevenue - totals.TotalCommission,
		CompletedRides:  completed,
		ByPaymentMethod: byMethod,
		DailyRevenue:    daily,
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, overview, utils.StatsCacheTTL); err != nil {
			s.logger.WithError(err).Warn("Failed to cache financial overview")
		}
	}

	return overview, nil
}

// ListTransactions pages through payments, each enriched with the ride it
// settled.
func (s *FinancialService) ListTransactions(ctx context.Context, filter *interfaces.PaymentFilter, params *utils.PaginationParams) ([]*Transaction, int64, error) {
	if filter != nil {
		if filter.Method != "" && !filter.Method.Valid() {
			return nil, 0, fmt.Errorf("unknown payment method %q: %w", filter.Method, utils.ErrInvalidInput)
		}
		if filter.Status != "" && !filter.Status.Valid() {
			return nil, 0, fmt.Errorf("unknown payment status %q: %w", filter.Status, utils.ErrInvalidInput)
		}
	}

	payments, total, err := s.paymentRepo.List(ctx, filter, params)
	if err != nil {
		return nil, 0, err
	}

	transactions, err := s.enrichTransactions(ctx, payments)
	if err != nil {
		return nil, 0, err
	}

	return transactions, total, nil
}

// CommissionRow is one completed booking's commission breakdown.
type CommissionRow struct {
	BookingID            primitive.ObjectID   `json:"booking_id"`
	BookingTime          time.Time            `json:"booking_time"`
	ServiceType          models.ServiceType   `json:"service_type"`
	PaymentMethod        models.PaymentMethod `json:"payment_method"`
	UserName             string               `json:"user_name,omitempty"`
	FinalFare            float64              `json:"final_fare"`
	AppCommission        float64              `json:"app_commission"`
	CaptainEarning       float64              `json:"captain_earning"`
	CommissionPercentage float64              `json:"commission_percentage"`
}

// ListCommissions pages through completed bookings in a date range with
// their commission breakdown. The range defaults to month-to-date. The
// percentage is 0 when the fare is 0.
func (s *FinancialService) ListCommissions(ctx context.Context, fromStr, toStr string, params *utils.PaginationParams) ([]*CommissionRow, int64, error) {
	now := time.Now()
	from, to, err := utils.ParseDateRange(fromStr, toStr, utils.StartOfMonth(now), now)
	if err != nil {
		return nil, 0, fmt.Errorf("invalid date range: %w", utils.ErrInvalidInput)
	}
	if to.Before(from) {
		return nil, 0, fmt.Errorf("range end precedes start: %w", utils.ErrInvalidInput)
	}

	filter := &interfaces.BookingFilter{
		Status:   models.BookingStatusCompleted,
		DateFrom: &from,
		DateTo:   &to,
	}

	bookings, total, err := s.bookingRepo.List(ctx, filter, params)
	if err != nil {
		return nil, 0, err
	}

	userIDs := make(map[primitive.ObjectID]struct{}, len(bookings))
	for _, b := range bookings {
		userIDs[b.UserID] = struct{}{}
	}
	ids := make([]primitive.ObjectID, 0, len(userIDs))
	for id := range userIDs {
		ids = append(ids, id)
	}
	userNames, err := s.userRepo.GetNamesByIDs(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	rows := make([]*CommissionRow, 0, len(bookings))
	for _, b := range bookings {
		rows = append(rows, &CommissionRow{
			BookingID:            b.ID,
			BookingTime:          b.BookingTime,
			ServiceType:          b.ServiceType,
			PaymentMethod:        b.PaymentMethod,
			UserName:             userNames[b.UserID],
			FinalFare:            b.FinalFare,
			AppCommission:        b.AppCommission,
			CaptainEarning:       b.CaptainEarning,
			CommissionPercentage: CommissionPercentage(b.AppCommission, b.FinalFare),
		})
	}

	return rows, total, nil
}

// CommissionPercentage is the commission share of the fare, 0 for a zero
// fare.
func CommissionPercentage(commission, fare float64) float64 {
	if fare <= 0 {
		return 0
	}
	return commission / fare * 100
}

// GetDailyRevenue returns per-day revenue, commission and completed-ride
// counts over the trailing window, defaulting to 30 days. Quiet days are
// zero-filled.
func (s *FinancialService) GetDailyRevenue(ctx context.Context, days int) ([]*interfaces.DailyRevenueStat, error) {
	if days <= 0 {
		days = utils.DefaultStatsWindowDays
	}
	if days > 365 {
		return nil, fmt.Errorf("window must be at most 365 days: %w", utils.ErrInvalidInput)
	}

	from, to := utils.TrailingWindow(time.Now(), days)

	daily, err := s.bookingRepo.GetDailyRevenue(ctx, from, to)
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]*interfaces.DailyRevenueStat, len(daily))
	for _, d := range daily {
		byDate[d.Date] = d
	}

	filled := make([]*interfaces.DailyRevenueStat, 0, days)
	for i := 0; i < days; i++ {
		date := from.AddDate(0, 0, i).Format("2006-01-02")
		if d, ok := byDate[date]; ok {
			filled = append(filled, d)
		} else {
			filled = append(filled, &interfaces.DailyRevenueStat{Date: date})
		}
	}

	return filled, nil
}

// Export kinds accepted by Export.
const (
	ExportTypeTransactions = "transactions"
	ExportTypeCommissions  = "commissions"
)

// Export renders the range's records as CSV. The range defaults to the
// trailing 30 days; unknown export types are rejected.
func (s *FinancialService) Export(ctx context.Context, exportType, fromStr, toStr string) ([]byte, error) {
	defaultFrom, defaultTo := utils.TrailingWindow(time.Now(), utils.DefaultStatsWindowDays)
	from, to, err := utils.ParseDateRange(fromStr, toStr, defaultFrom, defaultTo)
	if err != nil {
		return nil, fmt.Errorf("invalid date range: %w", utils.ErrInvalidInput)
	}
	if to.Before(from) {
		return nil, fmt.Errorf("range end precedes start: %w", utils.ErrInvalidInput)
	}

	switch exportType {
	case ExportTypeTransactions:
		return s.exportTransactions(ctx, from, to)
	case ExportTypeCommissions:
		return s.exportCommissions(ctx, from, to)
	default:
		return nil, fmt.Errorf("unknown export type %q: %w", exportType, utils.ErrInvalidInput)
	}
}

func (s *FinancialService) exportTransactions(ctx context.Context, from, to time.Time) ([]byte, error) {
	payments, err := s.paymentRepo.ListBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	transactions, err := s.enrichTransactions(ctx, payments)
	if err != nil {
		return nil, err
	}

	header := []string{"payment_id", "booking_id", "user_name", "service_type", "amount", "currency", "method", "status", "transaction_ref", "payment_date"}
	rows := make([][]string, 0, len(transactions))
	for _, t := range transactions {
		rows = append(rows, []string{
			t.ID.Hex(),
			t.BookingID.Hex(),
			t.UserName,
			string(t.ServiceType),
			strconv.FormatFloat(t.Amount, 'f', 2, 64),
			t.Currency,
			string(t.Method),
			string(t.Status),
			t.TransactionRef,
			t.PaymentDate.Format(time.RFC3339),
		})
	}

	return writeCSV(header, rows)
}

func (s *FinancialService) exportCommissions(ctx context.Context, from, to time.Time) ([]byte, error) {
	filter := &interfaces.BookingFilter{
		Status:   models.BookingStatusCompleted,
		DateFrom: &from,
		DateTo:   &to,
	}
	params := &utils.PaginationParams{Page: 1, PerPage: utils.MaxPageSize, Sort: "booking_time", Order: "desc"}

	header := []string{"booking_id", "booking_time", "service_type", "payment_method", "final_fare", "app_commission", "captain_earning", "commission_percentage"}
	var rows [][]string

	for {
		bookings, total, err := s.bookingRepo.List(ctx, filter, params)
		if err != nil {
			return nil, err
		}

		for _, b := range bookings {
			rows = append(rows, []string{
				b.ID.Hex(),
				b.BookingTime.Format(time.RFC3339),
				string(b.ServiceType),
				string(b.PaymentMethod),
				strconv.FormatFloat(b.FinalFare, 'f', 2, 64),
				strconv.FormatFloat(b.AppCommission, 'f', 2, 64),
				strconv.FormatFloat(b.CaptainEarning, 'f', 2, 64),
				strconv.FormatFloat(CommissionPercentage(b.AppCommission, b.FinalFare), 'f', 2, 64),
			})
		}

		if int64(params.Page*params.PerPage) >= total || len(bookings) == 0 {
			break
		}
		params.Page++
	}

	return writeCSV(header, rows)
}

func writeCSV(header []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	return buf.Bytes(), nil
}

// enrichTransactions joins payments to their bookings and user names with
// one lookup per distinct booking.
func (s *FinancialService) enrichTransactions(ctx context.Context, payments []*models.Payment) ([]*Transaction, error) {
	transactions := make([]*Transaction, 0, len(payments))
	if len(payments) == 0 {
		return transactions, nil
	}

	bookings := make(map[primitive.ObjectID]*models.Booking)
	userIDs := make(map[primitive.ObjectID]struct{})
	for _, p := range payments {
		if _, seen := bookings[p.BookingID]; seen {
			continue
		}
		booking, err := s.bookingRepo.GetByID(ctx, p.BookingID)
		if err != nil {
			// Orphaned payments still list, just without ride context.
			s.logger.WithError(err).WithField("payment_id", p.ID.Hex()).Warn("Payment references missing booking")
			continue
		}
		bookings[p.BookingID] = booking
		userIDs[booking.UserID] = struct{}{}
	}

	ids := make([]primitive.ObjectID, 0, len(userIDs))
	for id := range userIDs {
		ids = append(ids, id)
	}
	userNames, err := s.userRepo.GetNamesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	for _, p := range payments {
		t := &Transaction{Payment: p}
		if booking, ok := bookings[p.BookingID]; ok {
			t.UserName = userNames[booking.UserID]
			t.ServiceType = booking.ServiceType
			t.RideStatus = booking.Status
		}
		transactions = append(transactions, t)
	}

	return transactions, nil
}
