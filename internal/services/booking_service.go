package services

import (
	"context"
	"fmt"
	"time"

	"rideadmin/internal/models"
	"rideadmin/internal/repositories/interfaces"
	"rideadmin/internal/utils"
	"rideadmin/pkg/database"
	"rideadmin/pkg/logger"
	"rideadmin/pkg/websocket"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type BookingService struct {
	bookingRepo interfaces.BookingRepository
	userRepo    interfaces.UserRepository
	captainRepo interfaces.CaptainRepository
	paymentRepo interfaces.PaymentRepository
	db          *database.MongoDB
	cache       Cache
	hub         *websocket.Hub
	logger      *logger.Logger
}

func NewBookingService(
	bookingRepo interfaces.BookingRepository,
	userRepo interfaces.UserRepository,
	captainRepo interfaces.CaptainRepository,
	paymentRepo interfaces.PaymentRepository,
	db *database.MongoDB,
	cache Cache,
	hub *websocket.Hub,
	log *logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		captainRepo: captainRepo,
		paymentRepo: paymentRepo,
		db:          db,
		cache:       cache,
		hub:         hub,
		logger:      log,
	}
}

// BookingDetail is the single-booking view with its payment records.
type BookingDetail struct {
	*models.Booking
	Payments []*models.Payment `json:"payments"`
}

func (s *BookingService) ListBookings(ctx context.Context, filter *interfaces.BookingFilter, params *utils.PaginationParams) ([]*models.Booking, int64, error) {
	if filter != nil {
		if filter.Status != "" && !filter.Status.Valid() {
			return nil, 0, fmt.Errorf("unknown booking status %q: %w", filter.Status, utils.ErrInvalidInput)
		}
		if filter.ServiceType != "" && !filter.ServiceType.Valid() {
			return nil, 0, fmt.Errorf("unknown service type %q: %w", filter.ServiceType, utils.ErrInvalidInput)
		}
	}

	bookings, total, err := s.bookingRepo.List(ctx, filter, params)
	if err != nil {
		return nil, 0, err
	}

	if err := s.enrichNames(ctx, bookings); err != nil {
		return nil, 0, err
	}

	return bookings, total, nil
}

func (s *BookingService) GetBooking(ctx context.Context, id primitive.ObjectID) (*BookingDetail, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.enrichNames(ctx, []*models.Booking{booking}); err != nil {
		return nil, err
	}

	payments, err := s.paymentRepo.GetByBookingID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &BookingDetail{Booking: booking, Payments: payments}, nil
}

// ListActiveBookings returns every ride still underway, newest first, for
// the live console view.
func (s *BookingService) ListActiveBookings(ctx context.Context) ([]*models.Booking, error) {
	bookings, err := s.bookingRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.enrichNames(ctx, bookings); err != nil {
		return nil, err
	}

	return bookings, nil
}

// UpdateBookingStatus moves a booking to any valid status, with no
// precondition on the current state. The read and write run in one
// transaction so concurrent admins cannot interleave partial updates.
func (s *BookingService) UpdateBookingStatus(ctx context.Context, id primitive.ObjectID, status models.BookingStatus, notes string) (*models.Booking, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("unknown booking status %q: %w", status, utils.ErrInvalidInput)
	}

	result, err := s.db.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		booking, err := s.bookingRepo.GetByID(sessCtx, id)
		if err != nil {
			return nil, err
		}

		updates := buildStatusUpdate(booking, status, notes, time.Now())

		if err := s.bookingRepo.Update(sessCtx, id, updates); err != nil {
			return nil, err
		}

		return booking, nil
	})
	if err != nil {
		return nil, err
	}

	booking := result.(*models.Booking)
	s.afterMutation(ctx, "booking_updated", booking)

	return booking, nil
}

// ResolveDispute closes a Disputed booking as Completed. The resolution
// notes are prepended so the original complaint stays on record.
func (s *BookingService) ResolveDispute(ctx context.Context, id primitive.ObjectID, resolutionNotes string) (*models.Booking, error) {
	if resolutionNotes == "" {
		return nil, fmt.Errorf("resolution notes are required: %w", utils.ErrInvalidInput)
	}

	result, err := s.db.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		booking, err := s.bookingRepo.GetByID(sessCtx, id)
		if err != nil {
			return nil, err
		}

		if booking.Status != models.BookingStatusDisputed {
			return nil, fmt.Errorf("booking is %s, only Disputed bookings can be resolved: %w",
				booking.Status, utils.ErrInvalidState)
		}

		notes := FormatDisputeResolution(resolutionNotes, booking.Notes)

		updates := map[string]interface{}{
			"status": models.BookingStatusCompleted,
			"notes":  notes,
		}

		if err := s.bookingRepo.Update(sessCtx, id, updates); err != nil {
			return nil, err
		}

		booking.Status = models.BookingStatusCompleted
		booking.Notes = notes
		return booking, nil
	})
	if err != nil {
		return nil, err
	}

	booking := result.(*models.Booking)
	s.afterMutation(ctx, "dispute_resolved", booking)
	s.logger.WithField("booking_id", id.Hex()).Info("Dispute resolved")

	return booking, nil
}

// RevenueSummary totals completed-booking money for a stats window.
type RevenueSummary struct {
	TotalRevenue    float64 `json:"total_revenue"`
	TotalCommission float64 `json:"total_commission"`
	CaptainEarnings float64 `json:"captain_earnings"`
}

// BookingRangeStats breaks a date range down by status and service type.
// Both maps are zero-filled so every declared value appears.
type BookingRangeStats struct {
	From          time.Time                      `json:"from"`
	To            time.Time                      `json:"to"`
	Total         int64                          `json:"total"`
	ByStatus      map[models.BookingStatus]int64 `json:"by_status"`
	ByServiceType map[models.ServiceType]int64   `json:"by_service_type"`
	Revenue       RevenueSummary                 `json:"revenue"`
}

// GetStats aggregates bookings over a date range, defaulting to the
// trailing 30 days.
func (s *BookingService) GetStats(ctx context.Context, fromStr, toStr string) (*BookingRangeStats, error) {
	defaultFrom, defaultTo := utils.TrailingWindow(time.Now(), utils.DefaultStatsWindowDays)
	from, to, err := utils.ParseDateRange(fromStr, toStr, defaultFrom, defaultTo)
	if err != nil {
		return nil, fmt.Errorf("invalid date range: %w", utils.ErrInvalidInput)
	}
	if to.Before(from) {
		return nil, fmt.Errorf("range end precedes start: %w", utils.ErrInvalidInput)
	}

	cacheKey := fmt.Sprintf("%sbooking-range:%s:%s", cacheKeyDashboardPrefix,
		from.Format("2006-01-02T15:04:05"), to.Format("2006-01-02T15:04:05"))
	if s.cache != nil {
		var cached BookingRangeStats
		if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
			return &cached, nil
		}
	}

	byStatus, err := s.bookingRepo.CountsByStatus(ctx, from, to)
	if err != nil {
		return nil, err
	}
	byServiceType, err := s.bookingRepo.CountsByServiceType(ctx, from, to)
	if err != nil {
		return nil, err
	}
	totals, err := s.bookingRepo.GetRevenueTotals(ctx, from, to)
	if err != nil {
		return nil, err
	}

	stats := &BookingRangeStats{
		From:          from,
		To:            to,
		ByStatus:      make(map[models.BookingStatus]int64, len(models.BookingStatuses)),
		ByServiceType: make(map[models.ServiceType]int64, len(models.ServiceTypes)),
		Revenue: RevenueSummary{
			TotalRevenue:    totals.TotalRevenue,
			TotalCommission: totals.TotalCommission,
			CaptainEarnings: totals.TotalRevenue - totals.TotalCommission,
		},
	}
	for _, status := range models.BookingStatuses {
		stats.ByStatus[status] = byStatus[status]
		stats.Total += byStatus[status]
	}
	for _, serviceType := range models.ServiceTypes {
		stats.ByServiceType[serviceType] = byServiceType[serviceType]
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, stats, utils.StatsCacheTTL); err != nil {
			s.logger.WithError(err).Warn("Failed to cache booking stats")
		}
	}

	return stats, nil
}

// buildStatusUpdate applies a status change to the in-memory booking and
// returns the matching persistence document. Notes replace only when given,
// and a booking completed without an end time gets stamped with one.
func buildStatusUpdate(booking *models.Booking, status models.BookingStatus, notes string, now time.Time) map[string]interface{} {
	updates := map[string]interface{}{"status": status}
	booking.Status = status

	if notes != "" {
		updates["notes"] = notes
		booking.Notes = notes
	}
	if status == models.BookingStatusCompleted && booking.EndTime == nil {
		updates["end_time"] = now
		booking.EndTime = &now
	}

	return updates
}

// FormatDisputeResolution stamps the resolution on top of whatever notes
// the booking already carried. The Original notes section is always
// present, empty or not, so resolved records have a uniform shape.
func FormatDisputeResolution(resolution, previous string) string {
	return fmt.Sprintf("RESOLVED: %s\n\nOriginal notes: %s", resolution, previous)
}

// enrichNames fills the denormalized user and captain names from batch
// lookups, one query per collection regardless of page size.
func (s *BookingService) enrichNames(ctx context.Context, bookings []*models.Booking) error {
	if len(bookings) == 0 {
		return nil
	}

	userIDSet := make(map[primitive.ObjectID]struct{})
	captainIDSet := make(map[primitive.ObjectID]struct{})
	for _, b := range bookings {
		userIDSet[b.UserID] = struct{}{}
		if b.CaptainID != nil {
			captainIDSet[*b.CaptainID] = struct{}{}
		}
	}

	userIDs := make([]primitive.ObjectID, 0, len(userIDSet))
	for id := range userIDSet {
		userIDs = append(userIDs, id)
	}
	captainIDs := make([]primitive.ObjectID, 0, len(captainIDSet))
	for id := range captainIDSet {
		captainIDs = append(captainIDs, id)
	}

	userNames, err := s.userRepo.GetNamesByIDs(ctx, userIDs)
	if err != nil {
		return err
	}
	captainNames, err := s.captainRepo.GetNamesByIDs(ctx, captainIDs)
	if err != nil {
		return err
	}

	for _, b := range bookings {
		b.UserName = userNames[b.UserID]
		if b.CaptainID != nil {
			b.CaptainName = captainNames[*b.CaptainID]
		}
	}

	return nil
}

// afterMutation pushes the change to connected consoles and drops any
// cached aggregates the write made stale.
func (s *BookingService) afterMutation(ctx context.Context, eventType string, booking *models.Booking) {
	if s.hub != nil {
		s.hub.Broadcast(eventType, map[string]interface{}{
			"booking_id": booking.ID.Hex(),
			"status":     booking.Status,
		})
	}

	if s.cache != nil {
		if _, err := s.cache.DeletePattern(ctx, cacheKeyDashboardPrefix+"*"); err != nil {
			s.logger.WithError(err).Warn("Failed to invalidate dashboard cache")
		}
		if _, err := s.cache.DeletePattern(ctx, cacheKeyFinancePrefix+"*"); err != nil {
			s.logger.WithError(err).Warn("Failed to invalidate finance cache")
		}
	}
}
