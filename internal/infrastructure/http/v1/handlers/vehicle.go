package handlers

import (
	"github.com/gin-gonic/gin"

	"driveledger/internal/domain/ledger"
	"driveledger/internal/infrastructure/http/v1/dto"
	"driveledger/internal/infrastructure/metrics"
)

// VehicleHandler handles inventory endpoints.
type VehicleHandler struct {
	*BaseHandler
	service  *ledger.Service
	currency string
}

// NewVehicleHandler creates a new vehicle handler.
func NewVehicleHandler(base *BaseHandler, service *ledger.Service, currency string) *VehicleHandler {
	return &VehicleHandler{
		BaseHandler: base,
		service:     service,
		currency:    currency,
	}
}

// List handles GET /vehicles
// Returns the current stock, newest arrival first.
func (h *VehicleHandler) List(c *gin.Context) {
	vehicles := h.service.ListInventory(c.Request.Context())
	h.OK(c, dto.NewListResponse(dto.FromVehicles(vehicles, h.currency)))
}

// Get handles GET /vehicles/:id
func (h *VehicleHandler) Get(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	vehicle, err := h.service.FindVehicle(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.FromVehicle(vehicle, h.currency))
}

// Create handles POST /vehicles
func (h *VehicleHandler) Create(c *gin.Context) {
	var req dto.CreateVehicleRequest
	if !h.BindJSON(c, &req) {
		return
	}

	vehicle, err := h.service.AddVehicle(c.Request.Context(), req.ToInput())
	if err != nil {
		h.Error(c, err)
		return
	}

	metrics.VehiclesAdded.Inc()
	h.Created(c, vehicle.ID)
}

// RegisterRoutes registers vehicle routes.
func (h *VehicleHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/vehicles", h.List)
	rg.POST("/vehicles", h.Create)
	rg.GET("/vehicles/:id", h.Get)
}
