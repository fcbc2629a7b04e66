package handlers

import (
	"rideadmin/internal/models"
	"rideadmin/internal/repositories/interfaces"
	"rideadmin/internal/services"
	"rideadmin/internal/utils"
	"rideadmin/pkg/logger"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService    *services.UserService
	bookingService *services.BookingService
	logger         *logger.Logger
}

func NewUserHandler(userService *services.UserService, bookingService *services.BookingService, log *logger.Logger) *UserHandler {
	return &UserHandler{
		userService:    userService,
		bookingService: bookingService,
		logger:         log,
	}
}

type updateUserStatusRequest struct {
	Status models.UserStatus `json:"status" binding:"required"`
}

// ListUsers pages through riders, filterable by status and free-text search.
func (h *UserHandler) ListUsers(c *gin.Context) {
	params := utils.GetPaginationParams(c, "created_at")
	filter := &interfaces.UserFilter{
		Status: models.UserStatus(c.Query("status")),
	}

	users, total, err := h.userService.ListUsers(c.Request.Context(), filter, params)
	if err != nil {
		respondError(c, h.logger, err, "user")
		return
	}

	meta := &utils.Meta{Pagination: utils.CreatePaginationMeta(params, total)}
	utils.SuccessResponseWithMeta(c, "Users retrieved", users, meta)
}

// GetUser returns one rider with their booking summary.
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseObjectIDParam(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err, "user")
		return
	}

	utils.SuccessResponse(c, "User retrieved", user)
}

// GetUserStats counts the user base per status.
func (h *UserHandler) GetUserStats(c *gin.Context) {
	totals, err := h.userService.GetStatusTotals(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "user stats")
		return
	}

	utils.SuccessResponse(c, "User stats retrieved", totals)
}

// ListUserBookings pages through one rider's bookings, newest first.
func (h *UserHandler) ListUserBookings(c *gin.Context) {
	id, ok := parseObjectIDParam(c, "id")
	if !ok {
		return
	}

	if _, err := h.userService.GetUser(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err, "user")
		return
	}

	params := utils.GetPaginationParams(c, "booking_time")
	filter := &interfaces.BookingFilter{UserID: id}

	bookings, total, err := h.bookingService.ListBookings(c.Request.Context(), filter, params)
	if err != nil {
		respondError(c, h.logger, err, "booking")
		return
	}

	meta := &utils.Meta{Pagination: utils.CreatePaginationMeta(params, total)}
	utils.SuccessResponseWithMeta(c, "User bookings retrieved", bookings, meta)
}

// UpdateUserStatus activates, deactivates or blocks a rider.
func (h *UserHandler) UpdateUserStatus(c *gin.Context) {
	id, ok := parseObjectIDParam(c, "id")
	if !ok {
		return
	}

	var req updateUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, "status is required")
		return
	}

	user, err := h.userService.UpdateUserStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, h.logger, err, "user")
		return
	}

	utils.SuccessResponse(c, "User status updated", user)
}
