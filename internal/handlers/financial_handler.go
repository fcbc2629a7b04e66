package handlers

import (
	"fmt"
	"net/http"
	"time"

	"rideadmin/internal/models"
	"rideadmin/internal/repositories/interfaces"
	"rideadmin/internal/services"
	"rideadmin/internal/utils"
	"rideadmin/pkg/logger"

	"github.com/gin-gonic/gin"
)

type FinancialHandler struct {
	financialService *services.FinancialService
	logger           *logger.Logger
}

func NewFinancialHandler(financialService *services.FinancialService, log *logger.Logger) *FinancialHandler {
	return &FinancialHandler{
		financialService: financialService,
		logger:           log,
	}
}

// GetOverview returns revenue, commission and payment method breakdowns for
// a date range, defaulting to month-to-date.
func (h *FinancialHandler) GetOverview(c *gin.Context) {
	overview, err := h.financialService.GetOverview(c.Request.Context(), c.Query("date_from"), c.Query("date_to"))
	if err != nil {
		respondError(c, h.logger, err, "financial overview")
		return
	}

	utils.SuccessResponse(c, "Financial overview retrieved", overview)
}

// ListTransactions pages through payments with method, status and date
// filters.
func (h *FinancialHandler) ListTransactions(c *gin.Context) {
	params := utils.GetPaginationParams(c, "payment_date")

	filter := &interfaces.PaymentFilter{
		Method: models.PaymentMethod(c.Query("method")),
		Status: models.PaymentStatus(c.Query("status")),
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

	transactions, total, err := h.financialService.ListTransactions(c.Request.Context(), filter, params)
	if err != nil {
		respondError(c, h.logger, err, "transaction")
		return
	}

	meta := &utils.Meta{Pagination: utils.CreatePaginationMeta(params, total)}
	utils.SuccessResponseWithMeta(c, "Transactions retrieved", transactions, meta)
}

// ListCommissions pages through the platform's cut of Completed bookings
// for a date range, defaulting to month-to-date.
func (h *FinancialHandler) ListCommissions(c *gin.Context) {
	params := utils.GetPaginationParams(c, "booking_time")

	rows, total, err := h.financialService.ListCommissions(c.Request.Context(), c.Query("date_from"), c.Query("date_to"), params)
	if err != nil {
		respondError(c, h.logger, err, "commission")
		return
	}

	meta := &utils.Meta{Pagination: utils.CreatePaginationMeta(params, total)}
	utils.SuccessResponseWithMeta(c, "Commissions retrieved", rows, meta)
}

// GetDailyRevenue returns the per-day revenue series for the trailing
// window, defaulting to 30 days.
func (h *FinancialHandler) GetDailyRevenue(c *gin.Context) {
	days, err := intQuery(c, "days", 0)
	if err != nil {
		utils.ValidationErrorResponse(c, "days must be an integer")
		return
	}

	series, err := h.financialService.GetDailyRevenue(c.Request.Context(), days)
	if err != nil {
		respondError(c, h.logger, err, "daily revenue")
		return
	}

	utils.SuccessResponse(c, "Daily revenue retrieved", series)
}

// Export streams a CSV download. The type query selects the report,
// transactions by default.
func (h *FinancialHandler) Export(c *gin.Context) {
	exportType := c.Query("type")
	if exportType == "" {
		exportType = services.ExportTypeTransactions
	}

	data, err := h.financialService.Export(c.Request.Context(), exportType, c.Query("date_from"), c.Query("date_to"))
	if err != nil {
		respondError(c, h.logger, err, "export")
		return
	}

	filename := fmt.Sprintf("%s-%s.csv", exportType, time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "text/csv", data)
}
