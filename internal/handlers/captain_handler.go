package handlers

import (
	"rideadmin/internal/models"
	"rideadmin/internal/repositories/interfaces"
	"rideadmin/internal/services"
	"rideadmin/internal/utils"
	"rideadmin/pkg/logger"

	"github.com/gin-gonic/gin"
)

type CaptainHandler struct {
	captainService *services.CaptainService
	logger         *logger.Logger
}

func NewCaptainHandler(captainService *services.CaptainService, log *logger.Logger) *CaptainHandler {
	return &CaptainHandler{
		captainService: captainService,
		logger:         log,
	}
}

type updateCaptainStatusRequest struct {
	Status models.CaptainStatus `json:"status" binding:"required"`
}

type setRateRequest struct {
	ServiceType     models.ServiceType `json:"service_type" binding:"required"`
	RatePerKM       float64            `json:"rate_per_km"`
	MinimumFare     float64            `json:"minimum_fare"`
	WaitingTimeRate float64            `json:"waiting_time_rate"`
}

// ListCaptains pages through drivers, filterable by status and vehicle type.
func (h *CaptainHandler) ListCaptains(c *gin.Context) {
	params := utils.GetPaginationParams(c, "created_at")
	filter := &interfaces.CaptainFilter{
		Status:      models.CaptainStatus(c.Query("status")),
		VehicleType: models.VehicleType(c.Query("vehicle_type")),
	}

	captains, total, err := h.captainService.ListCaptains(c.Request.Context(), filter, params)
	if err != nil {
		respondError(c, h.logger, err, "captain")
		return
	}

	meta := &utils.Meta{Pagination: utils.CreatePaginationMeta(params, total)}
	utils.SuccessResponseWithMeta(c, "Captains retrieved", captains, meta)
}

// GetCaptain returns one driver with their rates and booking summary.
func (h *CaptainHandler) GetCaptain(c *gin.Context) {
	id, ok := parseObjectIDParam(c, "id")
	if !ok {
		return
	}

	captain, err := h.captainService.GetCaptain(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err, "captain")
		return
	}

	utils.SuccessResponse(c, "Captain retrieved", captain)
}

// ApproveCaptain activates a pending application.
func (h *CaptainHandler) ApproveCaptain(c *gin.Context) {
	id, ok := parseObjectIDParam(c, "id")
	if !ok {
		return
	}

	captain, err := h.captainService.ApproveCaptain(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err, "captain")
		return
	}

	utils.SuccessResponse(c, "Captain approved", captain)
}

// RejectCaptain declines a pending application.
func (h *CaptainHandler) RejectCaptain(c *gin.Context) {
	id, ok := parseObjectIDParam(c, "id")
	if !ok {
		return
	}

	captain, err := h.captainService.RejectCaptain(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err, "captain")
		return
	}

	utils.SuccessResponse(c, "Captain rejected", captain)
}

// UpdateCaptainStatus suspends or reinstates a driver.
func (h *CaptainHandler) UpdateCaptainStatus(c *gin.Context) {
	id, ok := parseObjectIDParam(c, "id")
	if !ok {
		return
	}

	var req updateCaptainStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, "status is required")
		return
	}

	captain, err := h.captainService.UpdateCaptainStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, h.logger, err, "captain")
		return
	}

	utils.SuccessResponse(c, "Captain status updated", captain)
}

// PendingCount reports how many applications await review, for the admin
// console's badge.
func (h *CaptainHandler) PendingCount(c *gin.Context) {
	count, err := h.captainService.CountPending(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "pending captain count")
		return
	}

	utils.SuccessResponse(c, "Pending captain count retrieved", gin.H{"count": count})
}

// ListRates returns a driver's per-service pricing.
func (h *CaptainHandler) ListRates(c *gin.Context) {
	id, ok := parseObjectIDParam(c, "id")
	if !ok {
		return
	}

	rates, err := h.captainService.ListRates(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err, "captain")
		return
	}

	utils.SuccessResponse(c, "Rates retrieved", rates)
}

// SetRate creates or replaces a driver's pricing for one service type.
func (h *CaptainHandler) SetRate(c *gin.Context) {
	id, ok := parseObjectIDParam(c, "id")
	if !ok {
		return
	}

	var req setRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationErrorResponse(c, "service_type is required")
		return
	}

	rate, err := h.captainService.SetRate(c.Request.Context(), id, req.ServiceType, req.RatePerKM, req.MinimumFare, req.WaitingTimeRate)
	if err != nil {
		respondError(c, h.logger, err, "captain")
		return
	}

	utils.SuccessResponse(c, "Rate saved", rate)
}
