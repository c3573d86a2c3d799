package ledger

import "context"

// ArchiveData holds the archived rows needed to rebuild a store.
type ArchiveData struct {
	Vehicles []Vehicle
	Sales    []Sale
	Expenses []Expense
}

// Archive is the durability collaborator: an append-only write-through for
// each created record plus a bulk load at startup. The in-memory store stays
// authoritative; a failed archive write is reported as a warning and never
// rolls back in-memory state.
//
// Vehicle rows are never deleted when a vehicle sells. LoadAll therefore
// returns every vehicle ever purchased, and Rebuild derives the in-stock set
// from the absence of a matching sale row.
type Archive interface {
	SaveVehicle(ctx context.Context, v Vehicle) error
	SaveSale(ctx context.Context, s Sale) error
	SaveExpense(ctx context.Context, e Expense) error
	LoadAll(ctx context.Context) (ArchiveData, error)
	Ping(ctx context.Context) error
	Close() error
}

// NopArchive discards writes and loads nothing. Used when the service runs
// purely in memory.
type NopArchive struct{}

func (NopArchive) SaveVehicle(context.Context, Vehicle) error { return nil }
func (NopArchive) SaveSale(context.Context, Sale) error       { return nil }
func (NopArchive) SaveExpense(context.Context, Expense) error { return nil }
func (NopArchive) LoadAll(context.Context) (ArchiveData, error) {
	return ArchiveData{}, nil
}
func (NopArchive) Ping(context.Context) error { return nil }
func (NopArchive) Close() error               { return nil }

var _ Archive = NopArchive{}
