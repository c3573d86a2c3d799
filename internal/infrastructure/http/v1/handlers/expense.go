package handlers

import (
	"github.com/gin-gonic/gin"

	"driveledger/internal/domain/ledger"
	"driveledger/internal/infrastructure/http/v1/dto"
	"driveledger/internal/infrastructure/metrics"
)

// ExpenseHandler handles expense endpoints.
type ExpenseHandler struct {
	*BaseHandler
	service  *ledger.Service
	currency string
}

// NewExpenseHandler creates a new expense handler.
func NewExpenseHandler(base *BaseHandler, service *ledger.Service, currency string) *ExpenseHandler {
	return &ExpenseHandler{
		BaseHandler: base,
		service:     service,
		currency:    currency,
	}
}

// List handles GET /expenses
// An optional year query parameter restricts the result to one calendar year.
func (h *ExpenseHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var expenses []ledger.Expense
	if year := h.ParseIntQuery(c, "year", 0); year > 0 {
		expenses = h.service.ListExpensesByYear(ctx, year)
	} else {
		expenses = h.service.ListExpenses(ctx)
	}

	h.OK(c, dto.NewListResponse(dto.FromExpenses(expenses, h.currency)))
}

// Create handles POST /expenses
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req dto.CreateExpenseRequest
	if !h.BindJSON(c, &req) {
		return
	}

	expense, err := h.service.AddExpense(c.Request.Context(), req.ToInput())
	if err != nil {
		h.Error(c, err)
		return
	}

	metrics.ExpensesRecorded.Inc()
	h.Created(c, expense.ID)
}

// RegisterRoutes registers expense routes.
func (h *ExpenseHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/expenses", h.List)
	rg.POST("/expenses", h.Create)
}
