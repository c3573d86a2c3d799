package reports

import "driveledger/internal/domain/ledger"

// Ledger is the read surface the aggregator needs from the entity store.
// All methods return point-in-time copies; aggregation never mutates.
type Ledger interface {
	Inventory() []ledger.Vehicle
	Sales() []ledger.Sale
	Expenses() []ledger.Expense
	Purchases() []ledger.PurchaseEvent
	Counts() (inStock, sold int)
}

var _ Ledger = (*ledger.Store)(nil)
