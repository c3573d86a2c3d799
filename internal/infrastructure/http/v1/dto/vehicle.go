package dto

import (
	"time"

	"driveledger/internal/core/types"
	"driveledger/internal/domain/ledger"
)

// CreateVehicleRequest for adding a vehicle to the inventory.
// Monetary amounts accept JSON strings or numbers; strings keep exact cents.
type CreateVehicleRequest struct {
	Brand             string      `json:"brand" binding:"required"`
	Model             string      `json:"model" binding:"required"`
	Year              int         `json:"year" binding:"required"`
	PurchasePrice     types.Money `json:"purchasePrice"`
	ExpectedSellPrice types.Money `json:"expectedSellPrice"`
}

// ToInput converts the request to a domain input.
func (r CreateVehicleRequest) ToInput() ledger.NewVehicleInput {
	return ledger.NewVehicleInput{
		Brand:             r.Brand,
		Model:             r.Model,
		Year:              r.Year,
		PurchasePrice:     r.PurchasePrice,
		ExpectedSellPrice: r.ExpectedSellPrice,
	}
}

// VehicleResponse contains one inventory vehicle.
type VehicleResponse struct {
	ID                       int64       `json:"id"`
	Brand                    string      `json:"brand"`
	Model                    string      `json:"model"`
	Year                     int         `json:"year"`
	Label                    string      `json:"label"`
	PurchasePrice            types.Money `json:"purchasePrice"`
	PurchasePriceDisplay     string      `json:"purchasePriceDisplay"`
	ExpectedSellPrice        types.Money `json:"expectedSellPrice"`
	ExpectedSellPriceDisplay string      `json:"expectedSellPriceDisplay"`
	DateAdded                time.Time   `json:"dateAdded"`
}

// FromVehicle creates VehicleResponse from a domain vehicle.
func FromVehicle(v ledger.Vehicle, currency string) VehicleResponse {
	return VehicleResponse{
		ID:                       v.ID,
		Brand:                    v.Brand,
		Model:                    v.Model,
		Year:                     v.Year,
		Label:                    v.Label(),
		PurchasePrice:            v.PurchasePrice,
		PurchasePriceDisplay:     types.DisplayMoney(v.PurchasePrice, currency),
		ExpectedSellPrice:        v.ExpectedSellPrice,
		ExpectedSellPriceDisplay: types.DisplayMoney(v.ExpectedSellPrice, currency),
		DateAdded:                v.DateAdded,
	}
}

// FromVehicles maps a vehicle slice.
func FromVehicles(vehicles []ledger.Vehicle, currency string) []VehicleResponse {
	out := make([]VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, FromVehicle(v, currency))
	}
	return out
}
