package services

import (
	"context"
	"fmt"

	"rideadmin/internal/models"
	"rideadmin/internal/repositories/interfaces"
	"rideadmin/internal/utils"
	"rideadmin/pkg/database"
	"rideadmin/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CaptainService struct {
	captainRepo interfaces.CaptainRepository
	rateRepo    interfaces.CaptainRateRepository
	bookingRepo interfaces.BookingRepository
	db          *database.MongoDB
	cache       Cache
	logger      *logger.Logger
}

func NewCaptainService(
	captainRepo interfaces.CaptainRepository,
	rateRepo interfaces.CaptainRateRepository,
	bookingRepo interfaces.BookingRepository,
	db *database.MongoDB,
	cache Cache,
	log *logger.Logger,
) *CaptainService {
	return &CaptainService{
		captainRepo: captainRepo,
		rateRepo:    rateRepo,
		bookingRepo: bookingRepo,
		db:          db,
		cache:       cache,
		logger:      log,
	}
}

// CaptainDetail is the single-captain view: the account plus its service
// rates and booking history summary.
type CaptainDetail struct {
	*models.Captain
	Rates             []*models.CaptainRate `json:"rates"`
	TotalBookings     int64                 `json:"total_bookings"`
	CompletedBookings int64                 `json:"completed_bookings"`
	CompletionRate    float64               `json:"completion_rate"`
}

func (s *CaptainService) ListCaptains(ctx context.Context, filter *interfaces.CaptainFilter, params *utils.PaginationParams) ([]*models.Captain, int64, error) {
	if filter != nil {
		if filter.Status != "" && !filter.Status.Valid() {
			return nil, 0, fmt.Errorf("unknown captain status %q: %w", filter.Status, utils.ErrInvalidInput)
		}
		if filter.VehicleType != "" && !filter.VehicleType.Valid() {
			return nil, 0, fmt.Errorf("unknown vehicle type %q: %w", filter.VehicleType, utils.ErrInvalidInput)
		}
	}

	return s.captainRepo.List(ctx, filter, params)
}

func (s *CaptainService) GetCaptain(ctx context.Context, id primitive.ObjectID) (*CaptainDetail, error) {
	captain, err := s.captainRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	rates, err := s.rateRepo.ListByCaptain(ctx, id)
	if err != nil {
		return nil, err
	}

	stats, err := s.bookingRepo.GetCaptainStats(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &CaptainDetail{
		Captain:           captain,
		Rates:             rates,
		TotalBookings:     stats.TotalBookings,
		CompletedBookings: stats.CompletedBookings,
	}
	if stats.TotalBookings > 0 {
		detail.CompletionRate = float64(stats.CompletedBookings) / float64(stats.TotalBookings) * 100
	}

	return detail, nil
}

// CountPending reports how many applications await review.
func (s *CaptainService) CountPending(ctx context.Context) (int64, error) {
	return s.captainRepo.CountByStatus(ctx, models.CaptainStatusPending)
}

// ApproveCaptain activates a Pending application. The read and the write run
// in one transaction so two admins racing on the same application cannot
// both succeed.
func (s *CaptainService) ApproveCaptain(ctx context.Context, id primitive.ObjectID) (*models.Captain, error) {
	return s.resolveApplication(ctx, id, models.CaptainStatusActive, "Captain approved")
}

// RejectCaptain declines a Pending application, leaving it Deactivated.
func (s *CaptainService) RejectCaptain(ctx context.Context, id primitive.ObjectID) (*models.Captain, error) {
	return s.resolveApplication(ctx, id, models.CaptainStatusDeactivated, "Captain rejected")
}

func (s *CaptainService) resolveApplication(ctx context.Context, id primitive.ObjectID, target models.CaptainStatus, logMsg string) (*models.Captain, error) {
	result, err := s.db.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		captain, err := s.captainRepo.GetByID(sessCtx, id)
		if err != nil {
			return nil, err
		}

		if captain.Status != models.CaptainStatusPending {
			return nil, fmt.Errorf("captain is %s, only Pending applications can be resolved: %w",
				captain.Status, utils.ErrInvalidState)
		}

		if err := s.captainRepo.UpdateStatus(sessCtx, id, target); err != nil {
			return nil, err
		}

		captain.Status = target
		return captain, nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateDashboards(ctx)
	s.logger.WithField("captain_id", id.Hex()).Info(logMsg)

	return result.(*models.Captain), nil
}

// UpdateCaptainStatus sets any valid status directly, for suspensions and
// reinstatements outside the application flow.
func (s *CaptainService) UpdateCaptainStatus(ctx context.Context, id primitive.ObjectID, status models.CaptainStatus) (*models.Captain, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("unknown captain status %q: %w", status, utils.ErrInvalidInput)
	}

	if err := s.captainRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	s.invalidateDashboards(ctx)
	s.logger.WithFields(map[string]interface{}{
		"captain_id": id.Hex(),
		"status":     status,
	}).Info("Captain status updated")

	return s.captainRepo.GetByID(ctx, id)
}

func (s *CaptainService) ListRates(ctx context.Context, captainID primitive.ObjectID) ([]*models.CaptainRate, error) {
	if _, err := s.captainRepo.GetByID(ctx, captainID); err != nil {
		return nil, err
	}

	return s.rateRepo.ListByCaptain(ctx, captainID)
}

// SetRate creates or replaces the captain's pricing for one service type.
func (s *CaptainService) SetRate(ctx context.Context, captainID primitive.ObjectID, serviceType models.ServiceType, ratePerKM, minimumFare, waitingTimeRate float64) (*models.CaptainRate, error) {
	if !serviceType.Valid() {
		return nil, fmt.Errorf("unknown service type %q: %w", serviceType, utils.ErrInvalidInput)
	}
	if ratePerKM < 0 || minimumFare < 0 || waitingTimeRate < 0 {
		return nil, fmt.Errorf("rates must not be negative: %w", utils.ErrInvalidInput)
	}

	rate := &models.CaptainRate{
		CaptainID:       captainID,
		ServiceType:     serviceType,
		RatePerKM:       ratePerKM,
		MinimumFare:     minimumFare,
		WaitingTimeRate: waitingTimeRate,
	}
	if err := utils.ValidateStruct(rate); err != nil {
		return nil, fmt.Errorf("invalid rate document: %w", utils.ErrInvalidInput)
	}

	if _, err := s.captainRepo.GetByID(ctx, captainID); err != nil {
		return nil, err
	}

	if err := s.rateRepo.Upsert(ctx, rate); err != nil {
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"captain_id":   captainID.Hex(),
		"service_type": serviceType,
	}).Info("Captain rate set")

	return rate, nil
}

func (s *CaptainService) invalidateDashboards(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if _, err := s.cache.DeletePattern(ctx, cacheKeyDashboardPrefix+"*"); err != nil {
		s.logger.WithError(err).Warn("Failed to invalidate dashboard cache")
	}
}
