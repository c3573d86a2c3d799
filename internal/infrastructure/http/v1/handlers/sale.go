package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"driveledger/internal/domain/ledger"
	"driveledger/internal/infrastructure/http/v1/dto"
	"driveledger/internal/infrastructure/metrics"
)

// SaleHandler handles sale endpoints.
type SaleHandler struct {
	*BaseHandler
	service  *ledger.Service
	currency string
}

// NewSaleHandler creates a new sale handler.
func NewSaleHandler(base *BaseHandler, service *ledger.Service, currency string) *SaleHandler {
	return &SaleHandler{
		BaseHandler: base,
		service:     service,
		currency:    currency,
	}
}

// List handles GET /sales
// An optional year query parameter restricts the result to one calendar year.
func (h *SaleHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var sales []ledger.Sale
	if year := h.ParseIntQuery(c, "year", 0); year > 0 {
		sales = h.service.ListSalesByYear(ctx, year)
	} else {
		sales = h.service.ListSales(ctx)
	}

	h.OK(c, dto.NewListResponse(dto.FromSales(sales, h.currency)))
}

// Create handles POST /vehicles/:id/sale
// The sale is committed first; only then is the vehicle removed from stock.
func (h *SaleHandler) Create(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.SellVehicleRequest
	if !h.BindJSON(c, &req) {
		return
	}

	sale, err := h.service.SellVehicle(c.Request.Context(), id, req.ToInput())
	if err != nil {
		h.Error(c, err)
		return
	}

	metrics.VehiclesSold.Inc()
	c.JSON(http.StatusCreated, dto.FromSale(sale, h.currency))
}

// RegisterRoutes registers sale routes.
func (h *SaleHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/sales", h.List)
	rg.POST("/vehicles/:id/sale", h.Create)
}
