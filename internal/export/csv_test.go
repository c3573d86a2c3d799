package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"driveledger/internal/core/types"
	"driveledger/internal/domain/ledger"
)

func TestInventory(t *testing.T) {
	added := time.Date(2024, time.January, 5, 12, 0, 0, 0, time.UTC)
	vehicles := []ledger.Vehicle{
		{
			ID:                2,
			Brand:             "Honda",
			Model:             "Civic, Type R",
			Year:              2021,
			PurchasePrice:     types.MustMoney("11000"),
			ExpectedSellPrice: types.MustMoney("13500.50"),
			DateAdded:         added,
		},
	}

	var buf bytes.Buffer
	if err := Inventory(&buf, vehicles); err != nil {
		t.Fatalf("Inventory: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), buf.String())
	}
	if lines[0] != "id,brand,model,year,purchase_price,expected_sell_price,date_added" {
		t.Errorf("header = %q", lines[0])
	}
	// The comma inside the model name must be quoted.
	if lines[1] != `2,Honda,"Civic, Type R",2021,11000,13500.5,2024-01-05T12:00:00Z` {
		t.Errorf("row = %q", lines[1])
	}
}

func TestSales(t *testing.T) {
	sold := time.Date(2024, time.February, 3, 9, 30, 0, 0, time.UTC)
	sales := []ledger.Sale{
		{
			ID:           1,
			VehicleID:    2,
			VehicleLabel: "Honda Civic (2021)",
			CustomerName: "Alice",
			SalePrice:    types.MustMoney("13000"),
			Profit:       types.MustMoney("2000"),
			Date:         sold,
		},
	}

	var buf bytes.Buffer
	if err := Sales(&buf, sales); err != nil {
		t.Fatalf("Sales: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[1] != "1,2,Honda Civic (2021),Alice,13000,2000,2024-02-03T09:30:00Z" {
		t.Errorf("row = %q", lines[1])
	}
}

func TestExpenses_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := Expenses(&buf, nil); err != nil {
		t.Fatalf("Expenses: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "expense_id,description,amount,date" {
		t.Errorf("empty export = %q, want header only", got)
	}
}
