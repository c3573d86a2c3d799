// Package ledger provides the dealership ledger core: the entity store and
// the inventory operations that feed it.
package ledger

import (
	"fmt"
	"strings"
	"time"

	"driveledger/internal/core/apperror"
	"driveledger/internal/core/types"
)

// Vehicle represents a vehicle bought into dealership stock.
// Immutable after creation; selling removes it from the in-stock set.
type Vehicle struct {
	ID                int64       `db:"id" json:"id"`
	Brand             string      `db:"brand" json:"brand"`
	Model             string      `db:"model" json:"model"`
	Year              int         `db:"year" json:"year"`
	PurchasePrice     types.Money `db:"purchase_price" json:"purchasePrice"`
	ExpectedSellPrice types.Money `db:"expected_sell_price" json:"expectedSellPrice"`
	DateAdded         time.Time   `db:"date_added" json:"dateAdded"`
}

// Label returns the display form used in sale records ("Toyota Corolla (2020)").
func (v Vehicle) Label() string {
	return fmt.Sprintf("%s %s (%d)", v.Brand, v.Model, v.Year)
}

// Sale represents a committed vehicle sale. Created exactly once per vehicle.
// VehicleLabel and Profit are fixed at sale time for presentation; they are
// derived from the vehicle record and not archived.
type Sale struct {
	ID           int64       `db:"sale_id" json:"id"`
	VehicleID    int64       `db:"vehicle_id" json:"vehicleId"`
	VehicleLabel string      `db:"-" json:"vehicle"`
	CustomerName string      `db:"customer_name" json:"customerName"`
	SalePrice    types.Money `db:"sale_price" json:"salePrice"`
	Profit       types.Money `db:"-" json:"profit"`
	Date         time.Time   `db:"date" json:"date"`
}

// Expense represents an operating expense, independent of any vehicle.
type Expense struct {
	ID          int64       `db:"expense_id" json:"id"`
	Description string      `db:"description" json:"description"`
	Amount      types.Money `db:"amount" json:"amount"`
	Date        time.Time   `db:"date" json:"date"`
}

// PurchaseEvent records money spent acquiring a vehicle. Emitted when the
// vehicle enters stock and retained after the vehicle is sold, so past
// months' debit totals never change when inventory does.
type PurchaseEvent struct {
	Amount types.Money `json:"amount"`
	Date   time.Time   `json:"date"`
}

// Year bounds accepted for vehicle model years.
const (
	MinVehicleYear = 1900
	MaxVehicleYear = 2100
)

// NewVehicleInput carries the fields for adding a vehicle to stock.
type NewVehicleInput struct {
	Brand             string
	Model             string
	Year              int
	PurchasePrice     types.Money
	ExpectedSellPrice types.Money
}

// Normalize trims free-text fields.
func (in *NewVehicleInput) Normalize() {
	in.Brand = strings.TrimSpace(in.Brand)
	in.Model = strings.TrimSpace(in.Model)
}

// Validate checks the input after normalization.
func (in NewVehicleInput) Validate() error {
	if in.Brand == "" {
		return apperror.NewValidation("brand is required").
			WithDetail("field", "brand")
	}
	if in.Model == "" {
		return apperror.NewValidation("model is required").
			WithDetail("field", "model")
	}
	if in.Year < MinVehicleYear || in.Year > MaxVehicleYear {
		return apperror.NewValidation(
			fmt.Sprintf("year must be between %d and %d", MinVehicleYear, MaxVehicleYear)).
			WithDetail("field", "year").
			WithDetail("value", in.Year)
	}
	if in.PurchasePrice.IsNegative() {
		return apperror.NewValidation("purchase price must not be negative").
			WithDetail("field", "purchasePrice")
	}
	if in.ExpectedSellPrice.IsNegative() {
		return apperror.NewValidation("expected sell price must not be negative").
			WithDetail("field", "expectedSellPrice")
	}
	return nil
}

// SaleInput carries the fields for selling an in-stock vehicle.
type SaleInput struct {
	CustomerName string
	SalePrice    types.Money
}

// Normalize trims free-text fields.
func (in *SaleInput) Normalize() {
	in.CustomerName = strings.TrimSpace(in.CustomerName)
}

// Validate checks the input after normalization.
func (in SaleInput) Validate() error {
	if in.CustomerName == "" {
		return apperror.NewValidation("customer name is required").
			WithDetail("field", "customerName")
	}
	if in.SalePrice.IsNegative() {
		return apperror.NewValidation("sale price must not be negative").
			WithDetail("field", "salePrice")
	}
	return nil
}

// ExpenseInput carries the fields for recording an expense.
type ExpenseInput struct {
	Description string
	Amount      types.Money
}

// Normalize trims free-text fields.
func (in *ExpenseInput) Normalize() {
	in.Description = strings.TrimSpace(in.Description)
}

// Validate checks the input after normalization.
func (in ExpenseInput) Validate() error {
	if in.Description == "" {
		return apperror.NewValidation("description is required").
			WithDetail("field", "description")
	}
	if in.Amount.IsNegative() {
		return apperror.NewValidation("amount must not be negative").
			WithDetail("field", "amount")
	}
	return nil
}
