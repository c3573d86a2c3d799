package dto

import (
	"driveledger/internal/core/types"
	"driveledger/internal/domain/reports"
)

// MonthlyReportResponse carries one year of per-month debit/credit buckets
// together with the reduced year totals.
type MonthlyReportResponse struct {
	Year               int             `json:"year"`
	Debit              [12]types.Money `json:"debit"`
	Credit             [12]types.Money `json:"credit"`
	TotalDebit         types.Money     `json:"totalDebit"`
	TotalDebitDisplay  string          `json:"totalDebitDisplay"`
	TotalCredit        types.Money     `json:"totalCredit"`
	TotalCreditDisplay string          `json:"totalCreditDisplay"`
}

// FromMonthlySeries converts a domain series to the report response.
func FromMonthlySeries(s reports.MonthlySeries, currency string) *MonthlyReportResponse {
	t := s.Totals()
	return &MonthlyReportResponse{
		Year:               s.Year,
		Debit:              s.Debit,
		Credit:             s.Credit,
		TotalDebit:         t.Debit,
		TotalDebitDisplay:  types.DisplayMoney(t.Debit, currency),
		TotalCredit:        t.Credit,
		TotalCreditDisplay: types.DisplayMoney(t.Credit, currency),
	}
}

// AdjustedBalanceResponse reports a starting balance carried through one
// year's money flow.
type AdjustedBalanceResponse struct {
	Year                   int         `json:"year"`
	StartingBalance        types.Money `json:"startingBalance"`
	TotalDebit             types.Money `json:"totalDebit"`
	TotalCredit            types.Money `json:"totalCredit"`
	AdjustedBalance        types.Money `json:"adjustedBalance"`
	AdjustedBalanceDisplay string      `json:"adjustedBalanceDisplay"`
}

// NewAdjustedBalanceResponse assembles the response from the year totals.
func NewAdjustedBalanceResponse(year int, starting types.Money, t reports.Totals, currency string) *AdjustedBalanceResponse {
	adjusted := reports.AdjustedBalance(starting, t.Debit, t.Credit)
	return &AdjustedBalanceResponse{
		Year:                   year,
		StartingBalance:        starting,
		TotalDebit:             t.Debit,
		TotalCredit:            t.Credit,
		AdjustedBalance:        adjusted,
		AdjustedBalanceDisplay: types.DisplayMoney(adjusted, currency),
	}
}

// FinancialSummaryResponse is the all-time profit/loss verdict.
type FinancialSummaryResponse struct {
	CumulativePurchaseCost types.Money          `json:"cumulativePurchaseCost"`
	TotalRevenue           types.Money          `json:"totalRevenue"`
	TotalExpenses          types.Money          `json:"totalExpenses"`
	Net                    types.Money          `json:"net"`
	NetDisplay             string               `json:"netDisplay"`
	Status                 reports.ProfitStatus `json:"status"`
}

// FromFinancialSummary converts the domain summary to a response.
func FromFinancialSummary(s reports.FinancialSummary, currency string) *FinancialSummaryResponse {
	return &FinancialSummaryResponse{
		CumulativePurchaseCost: s.CumulativePurchaseCost,
		TotalRevenue:           s.TotalRevenue,
		TotalExpenses:          s.TotalExpenses,
		Net:                    s.Net,
		NetDisplay:             types.DisplayMoney(s.Net, currency),
		Status:                 s.Status,
	}
}

// YearsResponse lists the years selectable in reports.
type YearsResponse struct {
	Years []int `json:"years"`
}
