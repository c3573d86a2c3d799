// Package reports provides the ledger aggregation and financial summary
// calculations: monthly debit/credit series, adjusted balance, and the
// all-time profit/loss verdict.
package reports

import (
	"driveledger/internal/core/types"
)

// ProfitStatus classifies the all-time net result.
type ProfitStatus string

const (
	StatusProfit    ProfitStatus = "PROFIT"
	StatusLoss      ProfitStatus = "LOSS"
	StatusBreakEven ProfitStatus = "BREAK-EVEN"
)

// MonthlySeries holds one calendar year of per-month totals. Both arrays are
// always fully populated: months without events carry zero.
// Debit is money out (vehicle purchases plus expenses); Credit is money in
// (sales). Index 0 is January.
type MonthlySeries struct {
	Year   int             `json:"year"`
	Debit  [12]types.Money `json:"debit"`
	Credit [12]types.Money `json:"credit"`
}

// Totals holds the year totals reduced from a monthly series.
type Totals struct {
	Debit  types.Money `json:"totalDebit"`
	Credit types.Money `json:"totalCredit"`
}

// Totals sums the twelve buckets of each series.
func (m MonthlySeries) Totals() Totals {
	t := Totals{Debit: types.Zero(), Credit: types.Zero()}
	for i := 0; i < 12; i++ {
		t.Debit = t.Debit.Add(m.Debit[i])
		t.Credit = t.Credit.Add(m.Credit[i])
	}
	return t
}

// Net returns credit minus debit per month.
func (m MonthlySeries) Net() [12]types.Money {
	var net [12]types.Money
	for i := 0; i < 12; i++ {
		net[i] = m.Credit[i].Sub(m.Debit[i])
	}
	return net
}

// AdjustedBalance applies a year's net flow to a user-supplied starting
// balance: starting + (totalCredit - totalDebit).
func AdjustedBalance(starting, totalDebit, totalCredit types.Money) types.Money {
	return starting.Add(totalCredit.Sub(totalDebit))
}

// FinancialSummary is the all-time profit/loss picture, independent of any
// year selection. Net = TotalRevenue - (CumulativePurchaseCost + TotalExpenses).
type FinancialSummary struct {
	CumulativePurchaseCost types.Money  `json:"cumulativePurchaseCost"`
	TotalRevenue           types.Money  `json:"totalRevenue"`
	TotalExpenses          types.Money  `json:"totalExpenses"`
	Net                    types.Money  `json:"net"`
	Status                 ProfitStatus `json:"status"`
}

// Dashboard aggregates everything the overview screen shows for one year.
type Dashboard struct {
	Year            int             `json:"year"`
	StartingBalance types.Money     `json:"startingBalance"`
	Series          MonthlySeries   `json:"series"`
	MonthlyNet      [12]types.Money `json:"monthlyNet"`
	Totals          Totals          `json:"totals"`
	AdjustedBalance types.Money     `json:"adjustedBalance"`
	VehiclesInStock int             `json:"vehiclesInStock"`
	VehiclesSold    int             `json:"vehiclesSold"`
	AvailableYears  []int           `json:"availableYears"`
}

// classify maps an exact decimal comparison with zero to the profit status.
func classify(net types.Money) ProfitStatus {
	switch net.Sign() {
	case 1:
		return StatusProfit
	case -1:
		return StatusLoss
	default:
		return StatusBreakEven
	}
}
