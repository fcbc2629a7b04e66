package services

import (
	"context"
	"fmt"

	"rideadmin/internal/models"
	"rideadmin/internal/repositories/interfaces"
	"rideadmin/internal/utils"
	"rideadmin/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserService struct {
	userRepo    interfaces.UserRepository
	bookingRepo interfaces.BookingRepository
	cache       Cache
	logger      *logger.Logger
}

func NewUserService(userRepo interfaces.UserRepository, bookingRepo interfaces.BookingRepository, cache Cache, log *logger.Logger) *UserService {
	return &UserService{
		userRepo:    userRepo,
		bookingRepo: bookingRepo,
		cache:       cache,
		logger:      log,
	}
}

// UserDetail is the single-user view: the account plus its booking history
// summary.
type UserDetail struct {
	*models.AppUser
	TotalBookings     int64   `json:"total_bookings"`
	CompletedBookings int64   `json:"completed_bookings"`
	TotalSpent        float64 `json:"total_spent"`
}

// UserStatusTotals counts the user base per status, zero-filled so every
// declared status appears.
type UserStatusTotals struct {
	Total    int64                       `json:"total"`
	ByStatus map[models.UserStatus]int64 `json:"by_status"`
}

func (s *UserService) GetStatusTotals(ctx context.Context) (*UserStatusTotals, error) {
	totals := &UserStatusTotals{ByStatus: make(map[models.UserStatus]int64, len(models.UserStatuses))}

	total, err := s.userRepo.CountTotal(ctx)
	if err != nil {
		return nil, err
	}
	totals.Total = total

	for _, status := range models.UserStatuses {
		count, err := s.userRepo.CountByStatus(ctx, status)
		if err != nil {
			return nil, err
		}
		totals.ByStatus[status] = count
	}

	return totals, nil
}

func (s *UserService) ListUsers(ctx context.Context, filter *interfaces.UserFilter, params *utils.PaginationParams) ([]*models.AppUser, int64, error) {
	if filter != nil && filter.Status != "" && !filter.Status.Valid() {
		return nil, 0, fmt.Errorf("unknown user status %q: %w", filter.Status, utils.ErrInvalidInput)
	}

	return s.userRepo.List(ctx, filter, params)
}

func (s *UserService) GetUser(ctx context.Context, id primitive.ObjectID) (*UserDetail, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	stats, err := s.bookingRepo.GetUserStats(ctx, id)
	if err != nil {
		return nil, err
	}

	return &UserDetail{
		AppUser:           user,
		TotalBookings:     stats.TotalBookings,
		CompletedBookings: stats.CompletedBookings,
		TotalSpent:        stats.TotalSpent,
	}, nil
}

// UpdateUserStatus moves a user between Active, Deactivated and Blocked.
func (s *UserService) UpdateUserStatus(ctx context.Context, id primitive.ObjectID, status models.UserStatus) (*models.AppUser, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("unknown user status %q: %w", status, utils.ErrInvalidInput)
	}

	if err := s.userRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	s.invalidateDashboards(ctx)
	s.logger.WithFields(map[string]interface{}{
		"user_id": id.Hex(),
		"status":  status,
	}).Info("User status updated")

	return s.userRepo.GetByID(ctx, id)
}

func (s *UserService) invalidateDashboards(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if _, err := s.cache.DeletePattern(ctx, cacheKeyDashboardPrefix+"*"); err != nil {
		s.logger.WithError(err).Warn("Failed to invalidate dashboard cache")
	}
}
