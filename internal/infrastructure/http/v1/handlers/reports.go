package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"driveledger/internal/core/apperror"
	"driveledger/internal/core/types"
	"driveledger/internal/domain/reports"
	"driveledger/internal/infrastructure/http/v1/dto"
)

// ReportsHandler handles HTTP requests for reports.
type ReportsHandler struct {
	*BaseHandler
	service  *reports.Service
	currency string
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(base *BaseHandler, service *reports.Service, currency string) *ReportsHandler {
	return &ReportsHandler{
		BaseHandler: base,
		service:     service,
		currency:    currency,
	}
}

// year defaults to the current calendar year when the query parameter is
// absent or unparsable.
func (h *ReportsHandler) year(c *gin.Context) int {
	return h.ParseIntQuery(c, "year", time.Now().UTC().Year())
}

// startingBalance reads the startingBalance query parameter as an exact
// decimal. Missing means zero.
func (h *ReportsHandler) startingBalance(c *gin.Context) (types.Money, error) {
	raw := c.DefaultQuery("startingBalance", "0")
	balance, err := types.NewMoneyFromString(raw)
	if err != nil {
		return types.Zero(), apperror.NewValidation("invalid startingBalance").WithDetail("startingBalance", raw)
	}
	return balance, nil
}

// GetMonthly handles GET /reports/monthly
func (h *ReportsHandler) GetMonthly(c *gin.Context) {
	series := h.service.MonthlyAggregation(c.Request.Context(), h.year(c))
	h.OK(c, dto.FromMonthlySeries(series, h.currency))
}

// GetAdjustedBalance handles GET /reports/adjusted-balance
func (h *ReportsHandler) GetAdjustedBalance(c *gin.Context) {
	starting, err := h.startingBalance(c)
	if err != nil {
		h.Error(c, err)
		return
	}

	year := h.year(c)
	series := h.service.MonthlyAggregation(c.Request.Context(), year)
	h.OK(c, dto.NewAdjustedBalanceResponse(year, starting, series.Totals(), h.currency))
}

// GetSummary handles GET /reports/summary
func (h *ReportsHandler) GetSummary(c *gin.Context) {
	summary := h.service.FinancialSummary(c.Request.Context())
	h.OK(c, dto.FromFinancialSummary(summary, h.currency))
}

// GetYears handles GET /reports/years
func (h *ReportsHandler) GetYears(c *gin.Context) {
	h.OK(c, dto.YearsResponse{Years: h.service.AvailableYears(c.Request.Context())})
}

// GetDashboard handles GET /reports/dashboard
func (h *ReportsHandler) GetDashboard(c *gin.Context) {
	starting, err := h.startingBalance(c)
	if err != nil {
		h.Error(c, err)
		return
	}

	dashboard := h.service.Dashboard(c.Request.Context(), h.year(c), starting)
	h.OK(c, dashboard)
}

// RegisterRoutes registers report routes.
func (h *ReportsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/monthly", h.GetMonthly)
	rg.GET("/adjusted-balance", h.GetAdjustedBalance)
	rg.GET("/summary", h.GetSummary)
	rg.GET("/years", h.GetYears)
	rg.GET("/dashboard", h.GetDashboard)
}
