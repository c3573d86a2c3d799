package ledger

import (
	"context"
	"time"
)

// Ledger event names, published after each successful mutation.
const (
	EventVehicleAdded    = "vehicle.added"
	EventVehicleSold     = "vehicle.sold"
	EventExpenseRecorded = "expense.recorded"
)

// Event is the message published to external consumers after a mutation.
type Event struct {
	Name       string    `json:"event"`
	EntityID   int64     `json:"entity_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher notifies external consumers about ledger mutations.
// Publishing is best-effort: failures are logged, never propagated.
type EventPublisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// NopPublisher drops all events. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
func (NopPublisher) Close() error                         { return nil }

var _ EventPublisher = NopPublisher{}
