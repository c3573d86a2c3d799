package dto

import (
	"time"

	"driveledger/internal/core/types"
	"driveledger/internal/domain/ledger"
)

// CreateExpenseRequest for recording an operating expense.
type CreateExpenseRequest struct {
	Description string      `json:"description" binding:"required"`
	Amount      types.Money `json:"amount"`
}

// ToInput converts the request to a domain input.
func (r CreateExpenseRequest) ToInput() ledger.ExpenseInput {
	return ledger.ExpenseInput{
		Description: r.Description,
		Amount:      r.Amount,
	}
}

// ExpenseResponse contains one recorded expense.
type ExpenseResponse struct {
	ID            int64       `json:"id"`
	Description   string      `json:"description"`
	Amount        types.Money `json:"amount"`
	AmountDisplay string      `json:"amountDisplay"`
	Date          time.Time   `json:"date"`
}

// FromExpense creates ExpenseResponse from a domain expense.
func FromExpense(e ledger.Expense, currency string) ExpenseResponse {
	return ExpenseResponse{
		ID:            e.ID,
		Description:   e.Description,
		Amount:        e.Amount,
		AmountDisplay: types.DisplayMoney(e.Amount, currency),
		Date:          e.Date,
	}
}

// FromExpenses maps an expense slice.
func FromExpenses(expenses []ledger.Expense, currency string) []ExpenseResponse {
	out := make([]ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, FromExpense(e, currency))
	}
	return out
}
