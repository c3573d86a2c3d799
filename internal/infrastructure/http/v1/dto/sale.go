package dto

import (
	"time"

	"driveledger/internal/core/types"
	"driveledger/internal/domain/ledger"
)

// SellVehicleRequest for selling an in-stock vehicle.
type SellVehicleRequest struct {
	CustomerName string      `json:"customerName" binding:"required"`
	SalePrice    types.Money `json:"salePrice"`
}

// ToInput converts the request to a domain input.
func (r SellVehicleRequest) ToInput() ledger.SaleInput {
	return ledger.SaleInput{
		CustomerName: r.CustomerName,
		SalePrice:    r.SalePrice,
	}
}

// SaleResponse contains one completed sale with derived fields.
type SaleResponse struct {
	ID               int64       `json:"id"`
	VehicleID        int64       `json:"vehicleId"`
	Vehicle          string      `json:"vehicle"`
	CustomerName     string      `json:"customerName"`
	SalePrice        types.Money `json:"salePrice"`
	SalePriceDisplay string      `json:"salePriceDisplay"`
	Profit           types.Money `json:"profit"`
	ProfitDisplay    string      `json:"profitDisplay"`
	Date             time.Time   `json:"date"`
}

// FromSale creates SaleResponse from a domain sale.
func FromSale(s ledger.Sale, currency string) SaleResponse {
	return SaleResponse{
		ID:               s.ID,
		VehicleID:        s.VehicleID,
		Vehicle:          s.VehicleLabel,
		CustomerName:     s.CustomerName,
		SalePrice:        s.SalePrice,
		SalePriceDisplay: types.DisplayMoney(s.SalePrice, currency),
		Profit:           s.Profit,
		ProfitDisplay:    types.DisplayMoney(s.Profit, currency),
		Date:             s.Date,
	}
}

// FromSales maps a sale slice.
func FromSales(sales []ledger.Sale, currency string) []SaleResponse {
	out := make([]SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, FromSale(s, currency))
	}
	return out
}
