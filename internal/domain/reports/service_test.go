package reports

import (
	"context"
	"testing"
	"time"

	"driveledger/internal/core/types"
	"driveledger/internal/domain/ledger"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}

func stockVehicle(id int64, purchase string, added time.Time) ledger.Vehicle {
	return ledger.Vehicle{
		ID:                id,
		Brand:             "Brand",
		Model:             "Model",
		Year:              2020,
		PurchasePrice:     types.MustMoney(purchase),
		ExpectedSellPrice: types.MustMoney(purchase),
		DateAdded:         added,
	}
}

func TestFinancialSummary_Profit(t *testing.T) {
	ctx := context.Background()
	store := ledger.NewStore()
	svc := NewService(store)

	// Buy at 10000, sell at 11000, one 150 expense: net 850.
	v := store.CreateVehicle(ledger.NewVehicleInput{
		Brand:             "Toyota",
		Model:             "Corolla",
		Year:              2020,
		PurchasePrice:     types.MustMoney("10000"),
		ExpectedSellPrice: types.MustMoney("12000"),
	})
	if _, err := store.CommitSale(v.ID, ledger.SaleInput{CustomerName: "Alice", SalePrice: types.MustMoney("11000")}); err != nil {
		t.Fatalf("CommitSale: %v", err)
	}
	store.CreateExpense(ledger.ExpenseInput{Description: "Detailing", Amount: types.MustMoney("150")})

	sum := svc.FinancialSummary(ctx)

	if !sum.CumulativePurchaseCost.Equal(types.MustMoney("10000")) {
		t.Errorf("cumulative purchase cost = %s, want 10000", sum.CumulativePurchaseCost)
	}
	if !sum.TotalRevenue.Equal(types.MustMoney("11000")) {
		t.Errorf("total revenue = %s, want 11000", sum.TotalRevenue)
	}
	if !sum.TotalExpenses.Equal(types.MustMoney("150")) {
		t.Errorf("total expenses = %s, want 150", sum.TotalExpenses)
	}
	if !sum.Net.Equal(types.MustMoney("850")) {
		t.Errorf("net = %s, want 850", sum.Net)
	}
	if sum.Status != StatusProfit {
		t.Errorf("status = %s, want %s", sum.Status, StatusProfit)
	}
}

func TestFinancialSummary_Classification(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		purchase string
		sale     string
		expense  string
		wantNet  string
		want     ProfitStatus
	}{
		{"loss", "10000", "9000", "150", "-1150", StatusLoss},
		{"break-even on exact cents", "9999.99", "10000.00", "0.01", "0", StatusBreakEven},
		{"profit by one cent", "9999.99", "10000.01", "0.01", "0.01", StatusProfit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := ledger.NewStore()
			svc := NewService(store)

			v := store.CreateVehicle(ledger.NewVehicleInput{
				Brand:             "Toyota",
				Model:             "Corolla",
				Year:              2020,
				PurchasePrice:     types.MustMoney(tt.purchase),
				ExpectedSellPrice: types.MustMoney(tt.purchase),
			})
			if _, err := store.CommitSale(v.ID, ledger.SaleInput{CustomerName: "Alice", SalePrice: types.MustMoney(tt.sale)}); err != nil {
				t.Fatalf("CommitSale: %v", err)
			}
			store.CreateExpense(ledger.ExpenseInput{Description: "Fee", Amount: types.MustMoney(tt.expense)})

			sum := svc.FinancialSummary(ctx)
			if !sum.Net.Equal(types.MustMoney(tt.wantNet)) {
				t.Errorf("net = %s, want %s", sum.Net, tt.wantNet)
			}
			if sum.Status != tt.want {
				t.Errorf("status = %s, want %s", sum.Status, tt.want)
			}
		})
	}
}

func TestMonthlyAggregation(t *testing.T) {
	ctx := context.Background()
	store := ledger.NewStore()
	svc := NewService(store)

	// January: two vehicles bought (5000 + 7000). February: the first one
	// sold for 9000.
	store.InsertVehicle(stockVehicle(1, "5000", date(2024, time.January, 5)))
	store.InsertVehicle(stockVehicle(2, "7000", date(2024, time.January, 20)))
	store.AppendSale(ledger.Sale{
		ID:           1,
		VehicleID:    1,
		CustomerName: "Alice",
		SalePrice:    types.MustMoney("9000"),
		Date:         date(2024, time.February, 3),
	})
	store.RemoveVehicle(1)

	series := svc.MonthlyAggregation(ctx, 2024)

	if !series.Debit[0].Equal(types.MustMoney("12000")) {
		t.Errorf("January debit = %s, want 12000", series.Debit[0])
	}
	if !series.Credit[0].Equal(types.Zero()) {
		t.Errorf("January credit = %s, want 0", series.Credit[0])
	}
	if !series.Debit[1].Equal(types.Zero()) {
		t.Errorf("February debit = %s, want 0", series.Debit[1])
	}
	if !series.Credit[1].Equal(types.MustMoney("9000")) {
		t.Errorf("February credit = %s, want 9000", series.Credit[1])
	}

	// The January purchase debit stays after the February sale.
	for m := 2; m < 12; m++ {
		if !series.Debit[m].Equal(types.Zero()) || !series.Credit[m].Equal(types.Zero()) {
			t.Errorf("month %d not zero: debit=%s credit=%s", m+1, series.Debit[m], series.Credit[m])
		}
	}
}

func TestMonthlyAggregation_EmptyYearZeroFilled(t *testing.T) {
	ctx := context.Background()
	store := ledger.NewStore()
	store.InsertVehicle(stockVehicle(1, "5000", date(2023, time.June, 1)))
	svc := NewService(store)

	series := svc.MonthlyAggregation(ctx, 2025)

	if series.Year != 2025 {
		t.Errorf("year = %d, want 2025", series.Year)
	}
	for m := 0; m < 12; m++ {
		if !series.Debit[m].Equal(types.Zero()) {
			t.Errorf("debit[%d] = %s, want 0", m, series.Debit[m])
		}
		if !series.Credit[m].Equal(types.Zero()) {
			t.Errorf("credit[%d] = %s, want 0", m, series.Credit[m])
		}
	}

	totals := series.Totals()
	if !totals.Debit.Equal(types.Zero()) || !totals.Credit.Equal(types.Zero()) {
		t.Errorf("totals = %s / %s, want 0 / 0", totals.Debit, totals.Credit)
	}
}

func TestMonthlyAggregation_TotalsAndIdempotence(t *testing.T) {
	ctx := context.Background()
	store := ledger.NewStore()
	svc := NewService(store)

	store.InsertVehicle(stockVehicle(1, "5000", date(2024, time.January, 5)))
	store.AppendExpense(ledger.Expense{ID: 1, Description: "Rent", Amount: types.MustMoney("800"), Date: date(2024, time.March, 1)})
	store.AppendSale(ledger.Sale{ID: 1, VehicleID: 1, CustomerName: "Bob", SalePrice: types.MustMoney("6200"), Date: date(2024, time.May, 10)})

	first := svc.MonthlyAggregation(ctx, 2024)
	second := svc.MonthlyAggregation(ctx, 2024)

	totals := first.Totals()
	if !totals.Debit.Equal(types.MustMoney("5800")) {
		t.Errorf("total debit = %s, want 5800", totals.Debit)
	}
	if !totals.Credit.Equal(types.MustMoney("6200")) {
		t.Errorf("total credit = %s, want 6200", totals.Credit)
	}

	for m := 0; m < 12; m++ {
		if !first.Debit[m].Equal(second.Debit[m]) || !first.Credit[m].Equal(second.Credit[m]) {
			t.Fatalf("aggregation not stable at month %d", m)
		}
	}
}

func TestAdjustedBalance(t *testing.T) {
	tests := []struct {
		name     string
		starting string
		debit    string
		credit   string
		want     string
	}{
		{"net outflow", "100", "500", "300", "-100"},
		{"net inflow", "1000", "200", "700", "1500"},
		{"flat", "50", "0", "0", "50"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AdjustedBalance(types.MustMoney(tt.starting), types.MustMoney(tt.debit), types.MustMoney(tt.credit))
			if !got.Equal(types.MustMoney(tt.want)) {
				t.Errorf("AdjustedBalance(%s, %s, %s) = %s, want %s", tt.starting, tt.debit, tt.credit, got, tt.want)
			}
		})
	}
}

func TestAvailableYears(t *testing.T) {
	ctx := context.Background()
	store := ledger.NewStore()
	svc := NewService(store)

	store.InsertVehicle(stockVehicle(1, "5000", date(2021, time.June, 1)))
	store.AppendExpense(ledger.Expense{ID: 1, Description: "Rent", Amount: types.MustMoney("800"), Date: date(2019, time.March, 1)})
	store.AppendSale(ledger.Sale{ID: 1, VehicleID: 1, CustomerName: "Bob", SalePrice: types.MustMoney("6200"), Date: date(2021, time.July, 10)})

	years := svc.AvailableYears(ctx)

	current := time.Now().UTC().Year()
	want := map[int]bool{2019: true, 2021: true, current: true}
	if len(years) != len(want) {
		t.Fatalf("years = %v, want 2019, 2021 and %d", years, current)
	}
	for i := 1; i < len(years); i++ {
		if years[i-1] >= years[i] {
			t.Fatalf("years %v not strictly ascending", years)
		}
	}
	for _, y := range years {
		if !want[y] {
			t.Errorf("unexpected year %d in %v", y, years)
		}
	}
}

func TestDashboard(t *testing.T) {
	ctx := context.Background()
	store := ledger.NewStore()
	svc := NewService(store)

	store.InsertVehicle(stockVehicle(1, "5000", date(2024, time.January, 5)))
	store.InsertVehicle(stockVehicle(2, "7000", date(2024, time.January, 20)))
	store.AppendSale(ledger.Sale{ID: 1, VehicleID: 1, CustomerName: "Alice", SalePrice: types.MustMoney("9000"), Date: date(2024, time.February, 3)})
	store.RemoveVehicle(1)

	d := svc.Dashboard(ctx, 2024, types.MustMoney("100"))

	if d.Year != 2024 {
		t.Errorf("year = %d, want 2024", d.Year)
	}
	if d.VehiclesInStock != 1 || d.VehiclesSold != 1 {
		t.Errorf("counts = (%d, %d), want (1, 1)", d.VehiclesInStock, d.VehiclesSold)
	}
	if !d.Totals.Debit.Equal(types.MustMoney("12000")) || !d.Totals.Credit.Equal(types.MustMoney("9000")) {
		t.Errorf("totals = %s / %s, want 12000 / 9000", d.Totals.Debit, d.Totals.Credit)
	}
	// 100 + (9000 - 12000)
	if !d.AdjustedBalance.Equal(types.MustMoney("-2900")) {
		t.Errorf("adjusted balance = %s, want -2900", d.AdjustedBalance)
	}
	if !d.MonthlyNet[1].Equal(types.MustMoney("9000")) {
		t.Errorf("February net = %s, want 9000", d.MonthlyNet[1])
	}
	if len(d.AvailableYears) == 0 {
		t.Error("available years empty")
	}
}
