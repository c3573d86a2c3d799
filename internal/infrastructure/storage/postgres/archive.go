package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"driveledger/internal/domain/ledger"
)

var tracer = otel.Tracer("driveledger/archive")

// Table definitions. Identifiers are assigned by the in-memory sequences, so
// the columns are plain BIGINT, not serials. Vehicle rows are kept after the
// vehicle sells; ON CONFLICT DO NOTHING makes a retried write-through harmless.
const schema = `
CREATE TABLE IF NOT EXISTS vehicles (
    id                  BIGINT PRIMARY KEY,
    brand               TEXT NOT NULL,
    model               TEXT NOT NULL,
    year                INT NOT NULL,
    purchase_price      NUMERIC(14,2) NOT NULL,
    expected_sell_price NUMERIC(14,2) NOT NULL,
    date_added          TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS sales (
    sale_id       BIGINT PRIMARY KEY,
    vehicle_id    BIGINT NOT NULL,
    customer_name TEXT NOT NULL,
    sale_price    NUMERIC(14,2) NOT NULL,
    date          TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS expenses (
    expense_id  BIGINT PRIMARY KEY,
    description TEXT NOT NULL,
    amount      NUMERIC(14,2) NOT NULL,
    date        TIMESTAMPTZ NOT NULL
);
`

// Archive persists ledger records in PostgreSQL.
type Archive struct {
	pool *pgxpool.Pool
}

// NewArchive creates the archive and ensures the schema exists.
func NewArchive(ctx context.Context, pool *pgxpool.Pool) (*Archive, error) {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return &Archive{pool: pool}, nil
}

func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// SaveVehicle writes one vehicle row.
func (a *Archive) SaveVehicle(ctx context.Context, v ledger.Vehicle) error {
	ctx, span := tracer.Start(ctx, "archive.save_vehicle",
		trace.WithAttributes(attribute.Int64("vehicle.id", v.ID)))
	defer span.End()

	sql, args, err := builder().
		Insert("vehicles").
		Columns("id", "brand", "model", "year", "purchase_price", "expected_sell_price", "date_added").
		Values(v.ID, v.Brand, v.Model, v.Year, v.PurchasePrice, v.ExpectedSellPrice, v.DateAdded).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := a.pool.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert vehicle %d: %w", v.ID, err)
	}
	return nil
}

// SaveSale writes one sale row. Derived fields (label, profit) are not
// stored; they are recomputed from the vehicle row on load.
func (a *Archive) SaveSale(ctx context.Context, s ledger.Sale) error {
	ctx, span := tracer.Start(ctx, "archive.save_sale",
		trace.WithAttributes(attribute.Int64("sale.id", s.ID)))
	defer span.End()

	sql, args, err := builder().
		Insert("sales").
		Columns("sale_id", "vehicle_id", "customer_name", "sale_price", "date").
		Values(s.ID, s.VehicleID, s.CustomerName, s.SalePrice, s.Date).
		Suffix("ON CONFLICT (sale_id) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := a.pool.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert sale %d: %w", s.ID, err)
	}
	return nil
}

// SaveExpense writes one expense row.
func (a *Archive) SaveExpense(ctx context.Context, e ledger.Expense) error {
	ctx, span := tracer.Start(ctx, "archive.save_expense",
		trace.WithAttributes(attribute.Int64("expense.id", e.ID)))
	defer span.End()

	sql, args, err := builder().
		Insert("expenses").
		Columns("expense_id", "description", "amount", "date").
		Values(e.ID, e.Description, e.Amount, e.Date).
		Suffix("ON CONFLICT (expense_id) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := a.pool.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert expense %d: %w", e.ID, err)
	}
	return nil
}

// LoadAll reads every archived row. The three tables load in parallel.
func (a *Archive) LoadAll(ctx context.Context) (ledger.ArchiveData, error) {
	ctx, span := tracer.Start(ctx, "archive.load_all")
	defer span.End()

	var data ledger.ArchiveData
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sql, args, err := builder().
			Select("id", "brand", "model", "year", "purchase_price", "expected_sell_price", "date_added").
			From("vehicles").
			OrderBy("id").
			ToSql()
		if err != nil {
			return fmt.Errorf("build select: %w", err)
		}
		if err := pgxscan.Select(gctx, a.pool, &data.Vehicles, sql, args...); err != nil {
			return fmt.Errorf("load vehicles: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		sql, args, err := builder().
			Select("sale_id", "vehicle_id", "customer_name", "sale_price", "date").
			From("sales").
			OrderBy("sale_id").
			ToSql()
		if err != nil {
			return fmt.Errorf("build select: %w", err)
		}
		if err := pgxscan.Select(gctx, a.pool, &data.Sales, sql, args...); err != nil {
			return fmt.Errorf("load sales: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		sql, args, err := builder().
			Select("expense_id", "description", "amount", "date").
			From("expenses").
			OrderBy("expense_id").
			ToSql()
		if err != nil {
			return fmt.Errorf("build select: %w", err)
		}
		if err := pgxscan.Select(gctx, a.pool, &data.Expenses, sql, args...); err != nil {
			return fmt.Errorf("load expenses: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return ledger.ArchiveData{}, err
	}
	return data, nil
}

// Ping verifies database connectivity.
func (a *Archive) Ping(ctx context.Context) error {
	return a.pool.Ping(ctx)
}

// Close releases the connection pool.
func (a *Archive) Close() error {
	a.pool.Close()
	return nil
}

var _ ledger.Archive = (*Archive)(nil)
