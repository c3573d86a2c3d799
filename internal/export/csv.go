// Package export renders ledger records as CSV for download.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"driveledger/internal/core/types"
	"driveledger/internal/domain/ledger"
)

// Inventory writes the in-stock vehicles as CSV.
func Inventory(w io.Writer, vehicles []ledger.Vehicle) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "brand", "model", "year", "purchase_price", "expected_sell_price", "date_added"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, v := range vehicles {
		record := []string{
			strconv.FormatInt(v.ID, 10),
			v.Brand,
			v.Model,
			strconv.Itoa(v.Year),
			v.PurchasePrice.String(),
			v.ExpectedSellPrice.String(),
			types.FormatTimestamp(v.DateAdded),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write vehicle %d: %w", v.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Sales writes the sales history as CSV, derived columns included.
func Sales(w io.Writer, sales []ledger.Sale) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"sale_id", "vehicle_id", "vehicle", "customer_name", "sale_price", "profit", "date"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, s := range sales {
		record := []string{
			strconv.FormatInt(s.ID, 10),
			strconv.FormatInt(s.VehicleID, 10),
			s.VehicleLabel,
			s.CustomerName,
			s.SalePrice.String(),
			s.Profit.String(),
			types.FormatTimestamp(s.Date),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write sale %d: %w", s.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Expenses writes the expense history as CSV.
func Expenses(w io.Writer, expenses []ledger.Expense) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"expense_id", "description", "amount", "date"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, e := range expenses {
		record := []string{
			strconv.FormatInt(e.ID, 10),
			e.Description,
			e.Amount.String(),
			types.FormatTimestamp(e.Date),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write expense %d: %w", e.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
