package ledger

import (
	"context"

	"driveledger/internal/core/apperror"
	"driveledger/pkg/logger"
)

// Service provides the inventory operations: adding vehicles to stock,
// selling them, and recording expenses. Mutations commit to the in-memory
// store first; the archive write-through and event publish that follow are
// best-effort and never affect the committed state.
type Service struct {
	store   *Store
	archive Archive
	events  EventPublisher
}

// NewService creates a new inventory service.
func NewService(store *Store, archive Archive, events EventPublisher) *Service {
	if archive == nil {
		archive = NopArchive{}
	}
	if events == nil {
		events = NopPublisher{}
	}
	return &Service{
		store:   store,
		archive: archive,
		events:  events,
	}
}

// Store exposes the underlying entity store for report readers.
func (s *Service) Store() *Store {
	return s.store
}

// AddVehicle adds a vehicle to stock and records its purchase event.
func (s *Service) AddVehicle(ctx context.Context, in NewVehicleInput) (Vehicle, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return Vehicle{}, err
	}

	v := s.store.CreateVehicle(in)

	if err := s.archive.SaveVehicle(ctx, v); err != nil {
		logger.Warn(ctx, "archive write failed", "entity", "vehicle", "id", v.ID, "error", err)
	}
	s.publish(ctx, Event{Name: EventVehicleAdded, EntityID: v.ID, OccurredAt: v.DateAdded})

	logger.Info(ctx, "vehicle added to stock",
		"id", v.ID,
		"vehicle", v.Label(),
		"purchase_price", v.PurchasePrice)

	return v, nil
}

// SellVehicle sells an in-stock vehicle: commits the sale record, then
// removes the vehicle from stock. Returns NotFound for an unknown vehicle.
// An internal-consistency failure (sale committed, removal failed) is logged
// and returned as-is; the archive write is skipped because the in-memory
// state is suspect.
func (s *Service) SellVehicle(ctx context.Context, vehicleID int64, in SaleInput) (Sale, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return Sale{}, err
	}

	sale, err := s.store.CommitSale(vehicleID, in)
	if err != nil {
		if apperror.IsInternalConsistency(err) {
			logger.Error(ctx, "ledger consistency failure",
				"vehicle_id", vehicleID,
				"sale_id", sale.ID,
				"error", err)
		}
		return Sale{}, err
	}

	if err := s.archive.SaveSale(ctx, sale); err != nil {
		logger.Warn(ctx, "archive write failed", "entity", "sale", "id", sale.ID, "error", err)
	}
	s.publish(ctx, Event{Name: EventVehicleSold, EntityID: sale.ID, OccurredAt: sale.Date})

	logger.Info(ctx, "vehicle sold",
		"sale_id", sale.ID,
		"vehicle_id", sale.VehicleID,
		"customer", sale.CustomerName,
		"sale_price", sale.SalePrice,
		"profit", sale.Profit)

	return sale, nil
}

// AddExpense records an operating expense.
func (s *Service) AddExpense(ctx context.Context, in ExpenseInput) (Expense, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return Expense{}, err
	}

	e := s.store.CreateExpense(in)

	if err := s.archive.SaveExpense(ctx, e); err != nil {
		logger.Warn(ctx, "archive write failed", "entity", "expense", "id", e.ID, "error", err)
	}
	s.publish(ctx, Event{Name: EventExpenseRecorded, EntityID: e.ID, OccurredAt: e.Date})

	logger.Info(ctx, "expense recorded",
		"id", e.ID,
		"description", e.Description,
		"amount", e.Amount)

	return e, nil
}

// FindVehicle returns an in-stock vehicle by identifier.
func (s *Service) FindVehicle(ctx context.Context, id int64) (Vehicle, error) {
	v, ok := s.store.FindVehicle(id)
	if !ok {
		return Vehicle{}, apperror.NewNotFound("vehicle", id)
	}
	return v, nil
}

// ListInventory returns the in-stock vehicles, newest first.
func (s *Service) ListInventory(ctx context.Context) []Vehicle {
	return s.store.Inventory()
}

// ListSales returns all sales in append order.
func (s *Service) ListSales(ctx context.Context) []Sale {
	return s.store.Sales()
}

// ListSalesByYear returns sales dated in the given calendar year.
func (s *Service) ListSalesByYear(ctx context.Context, year int) []Sale {
	all := s.store.Sales()
	out := make([]Sale, 0, len(all))
	for _, sale := range all {
		if sale.Date.UTC().Year() == year {
			out = append(out, sale)
		}
	}
	return out
}

// ListExpenses returns all expenses in append order.
func (s *Service) ListExpenses(ctx context.Context) []Expense {
	return s.store.Expenses()
}

// ListExpensesByYear returns expenses dated in the given calendar year.
func (s *Service) ListExpensesByYear(ctx context.Context, year int) []Expense {
	all := s.store.Expenses()
	out := make([]Expense, 0, len(all))
	for _, e := range all {
		if e.Date.UTC().Year() == year {
			out = append(out, e)
		}
	}
	return out
}

func (s *Service) publish(ctx context.Context, e Event) {
	if err := s.events.Publish(ctx, e); err != nil {
		logger.Warn(ctx, "event publish failed", "event", e.Name, "entity_id", e.EntityID, "error", err)
	}
}
