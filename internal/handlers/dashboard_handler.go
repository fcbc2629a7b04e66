package handlers

import (
	"strconv"

	"rideadmin/internal/services"
	"rideadmin/internal/utils"
	"rideadmin/pkg/logger"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
	logger           *logger.Logger
}

func NewDashboardHandler(dashboardService *services.DashboardService, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           log,
	}
}

// GetOverview returns the landing-page snapshot.
func (h *DashboardHandler) GetOverview(c *gin.Context) {
	overview, err := h.dashboardService.GetOverview(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "dashboard overview")
		return
	}

	utils.SuccessResponse(c, "Dashboard overview retrieved", overview)
}

// GetBookingsTrend returns per-day booking counts, defaulting to 7 days.
func (h *DashboardHandler) GetBookingsTrend(c *gin.Context) {
	days, err := intQuery(c, "days", 0)
	if err != nil {
		utils.ValidationErrorResponse(c, "days must be an integer")
		return
	}

	trends, err := h.dashboardService.GetBookingsTrend(c.Request.Context(), days)
	if err != nil {
		respondError(c, h.logger, err, "bookings trend")
		return
	}

	utils.SuccessResponse(c, "Bookings trend retrieved", trends)
}

// GetRevenueTrend returns per-day revenue and commission, defaulting to 7
// days.
func (h *DashboardHandler) GetRevenueTrend(c *gin.Context) {
	days, err := intQuery(c, "days", 0)
	if err != nil {
		utils.ValidationErrorResponse(c, "days must be an integer")
		return
	}

	trends, err := h.dashboardService.GetRevenueTrend(c.Request.Context(), days)
	if err != nil {
		respondError(c, h.logger, err, "revenue trend")
		return
	}

	utils.SuccessResponse(c, "Revenue trend retrieved", trends)
}

// GetServiceDistribution returns booking counts per service type over the
// trailing window, defaulting to 30 days.
func (h *DashboardHandler) GetServiceDistribution(c *gin.Context) {
	days, err := intQuery(c, "days", 0)
	if err != nil {
		utils.ValidationErrorResponse(c, "days must be an integer")
		return
	}

	distribution, err := h.dashboardService.GetServiceDistribution(c.Request.Context(), days)
	if err != nil {
		respondError(c, h.logger, err, "service distribution")
		return
	}

	utils.SuccessResponse(c, "Service distribution retrieved", distribution)
}

// GetRecentActivity returns the newest platform events.
func (h *DashboardHandler) GetRecentActivity(c *gin.Context) {
	limit, err := intQuery(c, "limit", 0)
	if err != nil {
		utils.ValidationErrorResponse(c, "limit must be an integer")
		return
	}

	items, err := h.dashboardService.GetRecentActivity(c.Request.Context(), limit)
	if err != nil {
		respondError(c, h.logger, err, "recent activity")
		return
	}

	meta := &utils.Meta{Count: len(items)}
	utils.SuccessResponseWithMeta(c, "Recent activity retrieved", items, meta)
}

func intQuery(c *gin.Context, name string, fallback int) (int, error) {
	value := c.Query(name)
	if value == "" {
		return fallback, nil
	}
	return strconv.Atoi(value)
}
