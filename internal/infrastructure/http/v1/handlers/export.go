package handlers

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzip"

	"driveledger/internal/core/apperror"
	"driveledger/internal/domain/ledger"
	"driveledger/internal/export"
)

// ExportHandler streams ledger records as CSV downloads.
type ExportHandler struct {
	*BaseHandler
	service *ledger.Service
}

// NewExportHandler creates a new export handler.
func NewExportHandler(base *BaseHandler, service *ledger.Service) *ExportHandler {
	return &ExportHandler{
		BaseHandler: base,
		service:     service,
	}
}

// Inventory handles GET /export/inventory.csv
func (h *ExportHandler) Inventory(c *gin.Context) {
	h.csv(c, "inventory.csv", func(w io.Writer) error {
		return export.Inventory(w, h.service.ListInventory(c.Request.Context()))
	})
}

// Sales handles GET /export/sales.csv
func (h *ExportHandler) Sales(c *gin.Context) {
	h.csv(c, "sales.csv", func(w io.Writer) error {
		return export.Sales(w, h.service.ListSales(c.Request.Context()))
	})
}

// Expenses handles GET /export/expenses.csv
func (h *ExportHandler) Expenses(c *gin.Context) {
	h.csv(c, "expenses.csv", func(w io.Writer) error {
		return export.Expenses(w, h.service.ListExpenses(c.Request.Context()))
	})
}

// csv writes one CSV attachment, gzip-compressed when the client accepts it.
// Headers must be final before the first body byte, so any write error can
// only be logged through the error middleware, not rendered.
func (h *ExportHandler) csv(c *gin.Context, filename string, write func(io.Writer) error) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)

	var w io.Writer = c.Writer
	if strings.Contains(c.GetHeader("Accept-Encoding"), "gzip") {
		c.Header("Content-Encoding", "gzip")
		gz := gzip.NewWriter(c.Writer)
		defer gz.Close()
		w = gz
	}

	c.Status(http.StatusOK)
	if err := write(w); err != nil {
		_ = c.Error(apperror.NewInternal(err))
	}
}

// RegisterRoutes registers export routes.
func (h *ExportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/inventory.csv", h.Inventory)
	rg.GET("/sales.csv", h.Sales)
	rg.GET("/expenses.csv", h.Expenses)
}
