package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"driveledger/internal/core/types"
	"driveledger/internal/domain/ledger"
)

func newTestArchive(t *testing.T) *Archive {
	t.Helper()
	a, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { a.Close() })
	return a
}

func TestArchive_RoundTrip(t *testing.T) {
	ctx := context.Background()
	a := newTestArchive(t)

	added := time.Date(2024, time.January, 5, 12, 0, 0, 0, time.UTC)
	soldAt := time.Date(2024, time.February, 3, 9, 30, 0, 0, time.UTC)

	vehicle := ledger.Vehicle{
		ID:                1,
		Brand:             "Toyota",
		Model:             "Corolla",
		Year:              2020,
		PurchasePrice:     types.MustMoney("10000"),
		ExpectedSellPrice: types.MustMoney("12000.50"),
		DateAdded:         added,
	}
	sale := ledger.Sale{
		ID:           1,
		VehicleID:    1,
		CustomerName: "Alice",
		SalePrice:    types.MustMoney("11000"),
		Date:         soldAt,
	}
	expense := ledger.Expense{
		ID:          1,
		Description: "Detailing",
		Amount:      types.MustMoney("150.25"),
		Date:        soldAt,
	}

	if err := a.SaveVehicle(ctx, vehicle); err != nil {
		t.Fatalf("SaveVehicle: %v", err)
	}
	if err := a.SaveSale(ctx, sale); err != nil {
		t.Fatalf("SaveSale: %v", err)
	}
	if err := a.SaveExpense(ctx, expense); err != nil {
		t.Fatalf("SaveExpense: %v", err)
	}

	data, err := a.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}

	if len(data.Vehicles) != 1 || len(data.Sales) != 1 || len(data.Expenses) != 1 {
		t.Fatalf("loaded %d/%d/%d rows, want 1/1/1",
			len(data.Vehicles), len(data.Sales), len(data.Expenses))
	}

	got := data.Vehicles[0]
	if got.ID != vehicle.ID || got.Brand != "Toyota" || got.Year != 2020 {
		t.Errorf("vehicle = %+v", got)
	}
	if !got.PurchasePrice.Equal(vehicle.PurchasePrice) {
		t.Errorf("purchase price = %s, want %s", got.PurchasePrice, vehicle.PurchasePrice)
	}
	if !got.ExpectedSellPrice.Equal(vehicle.ExpectedSellPrice) {
		t.Errorf("expected price = %s, want %s", got.ExpectedSellPrice, vehicle.ExpectedSellPrice)
	}
	if !got.DateAdded.Equal(added) {
		t.Errorf("date added = %v, want %v", got.DateAdded, added)
	}

	if !data.Sales[0].SalePrice.Equal(sale.SalePrice) || data.Sales[0].CustomerName != "Alice" {
		t.Errorf("sale = %+v", data.Sales[0])
	}
	if !data.Expenses[0].Amount.Equal(expense.Amount) {
		t.Errorf("expense amount = %s, want %s", data.Expenses[0].Amount, expense.Amount)
	}
}

func TestArchive_RebuildFromLoad(t *testing.T) {
	ctx := context.Background()
	a := newTestArchive(t)

	added := time.Date(2024, time.January, 5, 12, 0, 0, 0, time.UTC)
	for i := int64(1); i <= 2; i++ {
		v := ledger.Vehicle{
			ID:                i,
			Brand:             "Brand",
			Model:             "Model",
			Year:              2020,
			PurchasePrice:     types.MustMoney("5000"),
			ExpectedSellPrice: types.MustMoney("6000"),
			DateAdded:         added,
		}
		if err := a.SaveVehicle(ctx, v); err != nil {
			t.Fatalf("SaveVehicle: %v", err)
		}
	}
	sale := ledger.Sale{
		ID:           1,
		VehicleID:    1,
		CustomerName: "Alice",
		SalePrice:    types.MustMoney("6200"),
		Date:         added.AddDate(0, 1, 0),
	}
	if err := a.SaveSale(ctx, sale); err != nil {
		t.Fatalf("SaveSale: %v", err)
	}

	data, err := a.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	store := ledger.Rebuild(data.Vehicles, data.Sales, data.Expenses)

	// Vehicle 1 sold, vehicle 2 remains; both purchases preserved.
	if inv := store.Inventory(); len(inv) != 1 || inv[0].ID != 2 {
		t.Errorf("inventory = %+v, want just vehicle 2", inv)
	}
	if purchases := store.Purchases(); len(purchases) != 2 {
		t.Errorf("purchases = %d, want 2", len(purchases))
	}
	if sales := store.Sales(); len(sales) != 1 || sales[0].VehicleLabel != "Brand Model (2020)" {
		t.Errorf("sales = %+v", sales)
	}
}

func TestArchive_SaveRetryIsIdempotent(t *testing.T) {
	ctx := context.Background()
	a := newTestArchive(t)

	v := ledger.Vehicle{
		ID:                1,
		Brand:             "Toyota",
		Model:             "Corolla",
		Year:              2020,
		PurchasePrice:     types.MustMoney("10000"),
		ExpectedSellPrice: types.MustMoney("12000"),
		DateAdded:         time.Now().UTC(),
	}
	for i := 0; i < 2; i++ {
		if err := a.SaveVehicle(ctx, v); err != nil {
			t.Fatalf("SaveVehicle attempt %d: %v", i+1, err)
		}
	}

	data, err := a.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(data.Vehicles) != 1 {
		t.Errorf("loaded %d vehicles after retry, want 1", len(data.Vehicles))
	}
}

func TestArchive_MalformedTimestampSubstituted(t *testing.T) {
	ctx := context.Background()
	a := newTestArchive(t)

	_, err := a.db.ExecContext(ctx,
		`INSERT INTO expenses (expense_id, description, amount, date) VALUES (1, 'Rent', '800', 'last tuesday')`)
	if err != nil {
		t.Fatalf("insert corrupt row: %v", err)
	}

	before := time.Now().UTC()
	data, err := a.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	after := time.Now().UTC()

	if len(data.Expenses) != 1 {
		t.Fatalf("loaded %d expenses, want 1", len(data.Expenses))
	}
	got := data.Expenses[0].Date
	if got.Before(before) || got.After(after) {
		t.Errorf("substituted date %v outside [%v, %v]", got, before, after)
	}
}

func TestArchive_MalformedAmountFailsLoad(t *testing.T) {
	ctx := context.Background()
	a := newTestArchive(t)

	_, err := a.db.ExecContext(ctx,
		`INSERT INTO expenses (expense_id, description, amount, date) VALUES (1, 'Rent', 'eight hundred', '2024-01-05T12:00:00Z')`)
	if err != nil {
		t.Fatalf("insert corrupt row: %v", err)
	}

	if _, err := a.LoadAll(ctx); err == nil {
		t.Fatal("LoadAll succeeded on malformed amount, want error")
	}
}
