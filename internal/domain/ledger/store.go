package ledger

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"driveledger/internal/core/apperror"
	"driveledger/internal/core/sequence"
)

// Store is the single source of truth for current ledger state: the in-stock
// vehicle set (newest first), the append-only sales, expenses and
// purchase-event lists, and the three identifier sequences. All mutation runs
// under one write lock so concurrent API requests cannot race on the counters
// or the in-stock set; reads take a shared lock and return copies.
type Store struct {
	mu        sync.RWMutex
	inStock   []Vehicle
	sales     []Sale
	expenses  []Expense
	purchases []PurchaseEvent

	vehicleIDs *sequence.Sequence
	saleIDs    *sequence.Sequence
	expenseIDs *sequence.Sequence
}

// NewStore creates an empty store with all sequences at 1.
func NewStore() *Store {
	return &Store{
		vehicleIDs: sequence.New(),
		saleIDs:    sequence.New(),
		expenseIDs: sequence.New(),
	}
}

// Rebuild constructs a store from archived rows. The vehicles slice holds
// every vehicle ever purchased; membership in the in-stock set is derived as
// "no sale references it". Purchase events are reconstructed from all vehicle
// rows, sold ones included, so historical debit totals survive a restart.
// Sale labels and profits are recomputed by joining vehicle rows; a sale
// whose vehicle row is missing keeps a placeholder label and a zero cost
// basis. Sequences resume after the highest archived identifier.
func Rebuild(vehicles []Vehicle, sales []Sale, expenses []Expense) *Store {
	s := NewStore()

	byID := make(map[int64]Vehicle, len(vehicles))
	for _, v := range vehicles {
		byID[v.ID] = v
		s.vehicleIDs.Restore(v.ID)
	}

	sold := make(map[int64]bool, len(sales))
	sorted := append([]Sale(nil), sales...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })
	for _, sale := range sorted {
		sold[sale.VehicleID] = true
		if v, ok := byID[sale.VehicleID]; ok {
			sale.VehicleLabel = v.Label()
			sale.Profit = sale.SalePrice.Sub(v.PurchasePrice)
		} else {
			sale.VehicleLabel = fmt.Sprintf("vehicle #%d", sale.VehicleID)
			sale.Profit = sale.SalePrice
		}
		s.sales = append(s.sales, sale)
		s.saleIDs.Restore(sale.ID)
	}

	// Ascending id is insertion order; purchase events keep it.
	ordered := append([]Vehicle(nil), vehicles...)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })
	for _, v := range ordered {
		s.purchases = append(s.purchases, PurchaseEvent{Amount: v.PurchasePrice, Date: v.DateAdded})
		if !sold[v.ID] {
			// Prepending in ascending order leaves newest first.
			s.inStock = append([]Vehicle{v}, s.inStock...)
		}
	}

	exp := append([]Expense(nil), expenses...)
	sort.Slice(exp, func(i, j int) bool { return exp[i].ID < exp[j].ID })
	for _, e := range exp {
		s.expenses = append(s.expenses, e)
		s.expenseIDs.Restore(e.ID)
	}

	return s
}

// --- Creation operations ---
// Inputs are assumed normalized and validated by the caller.

// CreateVehicle assigns the next vehicle identifier, stamps the current time,
// prepends the vehicle to the in-stock set and records the matching purchase
// event, all under one lock acquisition.
func (s *Store) CreateVehicle(in NewVehicleInput) Vehicle {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := Vehicle{
		ID:                s.vehicleIDs.Next(),
		Brand:             in.Brand,
		Model:             in.Model,
		Year:              in.Year,
		PurchasePrice:     in.PurchasePrice,
		ExpectedSellPrice: in.ExpectedSellPrice,
		DateAdded:         time.Now().UTC(),
	}
	s.inStock = append([]Vehicle{v}, s.inStock...)
	s.purchases = append(s.purchases, PurchaseEvent{Amount: v.PurchasePrice, Date: v.DateAdded})
	return v
}

// CommitSale sells an in-stock vehicle: assigns the next sale identifier,
// stamps the current time, appends the sale, then removes the vehicle.
// Returns NotFound when the vehicle is not in stock. If removal fails after
// the sale committed (unreachable while the lock covers both steps) the sale
// stays committed and an internal-consistency error is returned alongside it;
// callers must treat that as fatal.
func (s *Store) CommitSale(vehicleID int64, in SaleInput) (Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.findLocked(vehicleID)
	if !ok {
		return Sale{}, apperror.NewNotFound("vehicle", vehicleID)
	}

	sale := Sale{
		ID:           s.saleIDs.Next(),
		VehicleID:    v.ID,
		VehicleLabel: v.Label(),
		CustomerName: in.CustomerName,
		SalePrice:    in.SalePrice,
		Profit:       in.SalePrice.Sub(v.PurchasePrice),
		Date:         time.Now().UTC(),
	}
	s.sales = append(s.sales, sale)

	if !s.removeLocked(vehicleID) {
		return sale, apperror.NewInternalConsistency("sale committed but vehicle removal failed").
			WithDetail("vehicle_id", vehicleID).
			WithDetail("sale_id", sale.ID)
	}
	return sale, nil
}

// CreateExpense assigns the next expense identifier, stamps the current time
// and appends the expense.
func (s *Store) CreateExpense(in ExpenseInput) Expense {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := Expense{
		ID:          s.expenseIDs.Next(),
		Description: in.Description,
		Amount:      in.Amount,
		Date:        time.Now().UTC(),
	}
	s.expenses = append(s.expenses, e)
	return e
}

// --- Primitive operations ---
// Used by tests and load paths that carry complete records with explicit
// identifiers and dates. Each keeps the matching sequence ahead of the
// inserted identifier so creation operations never reuse it.

// InsertVehicle prepends a complete vehicle record to the in-stock set and
// records its purchase event.
func (s *Store) InsertVehicle(v Vehicle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inStock = append([]Vehicle{v}, s.inStock...)
	s.purchases = append(s.purchases, PurchaseEvent{Amount: v.PurchasePrice, Date: v.DateAdded})
	s.vehicleIDs.Restore(v.ID)
}

// RemoveVehicle removes an in-stock vehicle by identifier.
// Returns false when the vehicle is not in stock; that is a signal, not an error.
func (s *Store) RemoveVehicle(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeLocked(id)
}

// FindVehicle returns an in-stock vehicle by identifier.
func (s *Store) FindVehicle(id int64) (Vehicle, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findLocked(id)
}

// AppendSale appends a complete sale record.
func (s *Store) AppendSale(sale Sale) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sales = append(s.sales, sale)
	s.saleIDs.Restore(sale.ID)
}

// AppendExpense appends a complete expense record.
func (s *Store) AppendExpense(e Expense) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses = append(s.expenses, e)
	s.expenseIDs.Restore(e.ID)
}

// AppendPurchase appends a purchase event.
func (s *Store) AppendPurchase(p PurchaseEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purchases = append(s.purchases, p)
}

// --- Read operations ---

// Inventory returns the in-stock vehicles, newest first.
func (s *Store) Inventory() []Vehicle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Vehicle(nil), s.inStock...)
}

// Sales returns all sales in append order.
func (s *Store) Sales() []Sale {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Sale(nil), s.sales...)
}

// Expenses returns all expenses in append order.
func (s *Store) Expenses() []Expense {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Expense(nil), s.expenses...)
}

// Purchases returns all purchase events in append order.
func (s *Store) Purchases() []PurchaseEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]PurchaseEvent(nil), s.purchases...)
}

// Counts returns the number of in-stock vehicles and completed sales.
func (s *Store) Counts() (inStock, sold int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.inStock), len(s.sales)
}

func (s *Store) findLocked(id int64) (Vehicle, bool) {
	for _, v := range s.inStock {
		if v.ID == id {
			return v, true
		}
	}
	return Vehicle{}, false
}

func (s *Store) removeLocked(id int64) bool {
	for i, v := range s.inStock {
		if v.ID == id {
			s.inStock = append(s.inStock[:i], s.inStock[i+1:]...)
			return true
		}
	}
	return false
}
