package reports

import (
	"context"
	"sort"
	"time"

	"driveledger/internal/core/types"
)

// Service provides ledger aggregation over the entity store. All operations
// are pure reads; recomputing per request is cheap at this scale and needs
// no caching.
type Service struct {
	ledger Ledger
}

// NewService creates a new reports service.
func NewService(ledger Ledger) *Service {
	return &Service{ledger: ledger}
}

// MonthlyAggregation buckets every monetary event of the given calendar year
// into per-month debit and credit totals. Purchase events debit the month the
// vehicle was bought, and stay there even after the vehicle sells; expenses
// debit their month; sales credit theirs.
func (s *Service) MonthlyAggregation(ctx context.Context, year int) MonthlySeries {
	series := MonthlySeries{Year: year}
	for i := 0; i < 12; i++ {
		series.Debit[i] = types.Zero()
		series.Credit[i] = types.Zero()
	}

	for _, p := range s.ledger.Purchases() {
		if m, ok := monthIndex(p.Date, year); ok {
			series.Debit[m] = series.Debit[m].Add(p.Amount)
		}
	}
	for _, e := range s.ledger.Expenses() {
		if m, ok := monthIndex(e.Date, year); ok {
			series.Debit[m] = series.Debit[m].Add(e.Amount)
		}
	}
	for _, sale := range s.ledger.Sales() {
		if m, ok := monthIndex(sale.Date, year); ok {
			series.Credit[m] = series.Credit[m].Add(sale.SalePrice)
		}
	}

	return series
}

// FinancialSummary computes the all-time totals and the profit/loss verdict.
// Cumulative purchase cost sums every purchase event ever recorded,
// regardless of whether the vehicle later sold.
func (s *Service) FinancialSummary(ctx context.Context) FinancialSummary {
	cost := types.Zero()
	for _, p := range s.ledger.Purchases() {
		cost = cost.Add(p.Amount)
	}

	revenue := types.Zero()
	for _, sale := range s.ledger.Sales() {
		revenue = revenue.Add(sale.SalePrice)
	}

	expenses := types.Zero()
	for _, e := range s.ledger.Expenses() {
		expenses = expenses.Add(e.Amount)
	}

	net := revenue.Sub(cost.Add(expenses))
	return FinancialSummary{
		CumulativePurchaseCost: cost,
		TotalRevenue:           revenue,
		TotalExpenses:          expenses,
		Net:                    net,
		Status:                 classify(net),
	}
}

// AvailableYears returns every calendar year that has at least one purchase,
// sale or expense, always including the current year, sorted ascending.
func (s *Service) AvailableYears(ctx context.Context) []int {
	seen := map[int]bool{time.Now().UTC().Year(): true}
	for _, p := range s.ledger.Purchases() {
		seen[p.Date.UTC().Year()] = true
	}
	for _, sale := range s.ledger.Sales() {
		seen[sale.Date.UTC().Year()] = true
	}
	for _, e := range s.ledger.Expenses() {
		seen[e.Date.UTC().Year()] = true
	}

	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// Dashboard assembles the overview for one year against a user-supplied
// starting balance.
func (s *Service) Dashboard(ctx context.Context, year int, startingBalance types.Money) Dashboard {
	series := s.MonthlyAggregation(ctx, year)
	totals := series.Totals()
	inStock, sold := s.ledger.Counts()

	return Dashboard{
		Year:            year,
		StartingBalance: startingBalance,
		Series:          series,
		MonthlyNet:      series.Net(),
		Totals:          totals,
		AdjustedBalance: AdjustedBalance(startingBalance, totals.Debit, totals.Credit),
		VehiclesInStock: inStock,
		VehiclesSold:    sold,
		AvailableYears:  s.AvailableYears(ctx),
	}
}

// monthIndex returns the zero-based month bucket for a timestamp within the
// selected year.
func monthIndex(t time.Time, year int) (int, bool) {
	d := t.UTC()
	if d.Year() != year {
		return 0, false
	}
	return int(d.Month()) - 1, true
}
