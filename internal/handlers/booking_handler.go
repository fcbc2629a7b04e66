package handlers

import (
	"rideadmin/internal/middleware"
	"rideadmin/internal/models"
	"rideadmin/internal/repositories/interfaces"
	"rideadmin/internal/services"
	"rideadmin/internal/utils"
	"rideadmin/pkg/logger"
	"rideadmin/pkg/websocket"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingHandler struct {
	bookingService *services.BookingService
	authService    *services.AuthService
	hub            *websocket.Hub
	logger         *logger.Logger
}

func NewBookingHandler(bookingService *services.BookingService, authService *services.AuthService, hub *websocket.Hub, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
		authService:    authService,
		hub:            hub,
		logger:         log,
	}
}

type updateBookingStatusRequest struct {
	Status models.BookingStatus `json:"status" binding:"required"`
	Notes  string               `json:"notes"`
}

type resolveDisputeRequest struct {
	ResolutionNotes string `json:"resolution_notes" binding:"required"`
}

// ListBookings pages through rides with status, service type, party and
// date-range filters.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	params := utils.GetPaginationParams(c, "booking_time")

	filter := &interfaces.BookingFilter{
		Status:      models.BookingStatus(c.Query("status")),
		ServiceType: models.ServiceType(c.Query("service_type")),
	}

	if userID := c.Query("user_id"); userID != "" {
		id, err := primitive.ObjectIDFromHex(userID)
		if err != nil {
			utils.ValidationErrorResponse(c, "invalid user_id")
			return
		}
		filter.UserID = id
	}
	if captainID := c.Query("captain_id"); captainID != "" {
		id, err := primitive.ObjectIDFromHex(captainID)
		if err != nil {
			utils.ValidationErrorResponse(c, "invalid captain_id")
			return
		}
		filter.CaptainID = id
	}

	if fromStr := c.Query("date_from"); fromStr != "" {
		from, err := utils.ParseISOTime(fromStr)
		if err != nil {
			utils.ValidationErrorResponse(c, "invalid date_from")
			return
		}
		filter.DateFrom = &from
	}
	if toStr := c.Query("date_to"); toStr != "" {
		to, err := utils.ParseISOTime(toStr)
		if err != nil {
			utils.ValidationErrorResponse(c, "invalid date_to")
			return
		}
		filter.DateTo = &to
	}

	bookings, total, err := h.bookingService.ListBookings(c.Request.Context(), filter, params)
	if err != nil {
		respondError(c, h.logger, err, "booking")
		return
	}

	meta := &utils.Meta{Pagination: utils.CreatePaginationMeta(params, total)}
	utils.SuccessResponseWithMeta(c, "Bookings retrieved", bookings, meta)
}

// GetBooking returns one ride with its payment records.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, ok := parseObjectIDParam(c, "id")
	if !ok {
		return
	}

	booking, err := h.bookingService.GetBooking(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err, "booking")
		return
	}

	utils.SuccessResponse(c, "Booking retrieved", booking)
}

// ListActiveBookings returns every ride still underway.
func (h *BookingHandler) ListActiveBookings(c *gin.Context) {
	bookings, err := h.bookingService.ListActiveBookings(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "booking")
		return
	}

	meta := &utils.Meta{Count: len(bookings)}
	utils.SuccessResponseWithMeta(c, "Active bookings retrieved", bookings, meta)
}

// UpdateBookingStatus moves a ride to a new status.
func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	id, ok := parseObjectIDParam(c, "id")
	if !ok {
		return
	}

	var req updateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, "status is required")
		return
	}

	booking, err := h.bookingService.UpdateBookingStatus(c.Request.Context(), id, req.Status, req.Notes)
	if err != nil {
		respondError(c, h.logger, err, "booking")
		return
	}

	utils.SuccessResponse(c, "Booking status updated", booking)
}

// ResolveDispute closes a disputed ride as completed with resolution notes.
func (h *BookingHandler) ResolveDispute(c *gin.Context) {
	id, ok := parseObjectIDParam(c, "id")
	if !ok {
		return
	}

	var req resolveDisputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, "resolution_notes is required")
		return
	}

	booking, err := h.bookingService.ResolveDispute(c.Request.Context(), id, req.ResolutionNotes)
	if err != nil {
		respondError(c, h.logger, err, "booking")
		return
	}

	utils.SuccessResponse(c, "Dispute resolved", booking)
}

// GetBookingStats breaks a date range down by status, service type and
// revenue. The range defaults to the trailing 30 days.
func (h *BookingHandler) GetBookingStats(c *gin.Context) {
	stats, err := h.bookingService.GetStats(c.Request.Context(), c.Query("date_from"), c.Query("date_to"))
	if err != nil {
		respondError(c, h.logger, err, "booking stats")
		return
	}

	utils.SuccessResponse(c, "Booking stats retrieved", stats)
}

// LiveBookingsFeed upgrades to a websocket that streams booking events to
// the admin console. Browser websocket clients cannot set an Authorization
// header, so the token may also arrive as a query parameter.
func (h *BookingHandler) LiveBookingsFeed(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		token = middleware.BearerToken(c)
	}
	if token == "" {
		utils.UnauthorizedResponse(c, "")
		return
	}

	admin, err := h.authService.ValidateToken(c.Request.Context(), token)
	if err != nil {
		respondError(c, h.logger, err, "websocket auth")
		return
	}

	if err := websocket.ServeClient(h.hub, c.Writer, c.Request, admin.ID); err != nil {
		h.logger.WithError(err).Warn("WebSocket upgrade failed")
	}
}
