// Package sqlite provides a file-based archive backend using the pure Go
// SQLite driver (no CGO).
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"driveledger/internal/core/types"
	"driveledger/internal/domain/ledger"
	"driveledger/pkg/logger"
)

// Archive persists ledger records in a SQLite file. Monetary amounts are
// stored as decimal strings and timestamps as RFC3339 text, so rows stay
// readable and diffable with the sqlite3 shell.
type Archive struct {
	db *sql.DB
}

// New opens (or creates) the database file and runs migrations.
func New(dbPath string) (*Archive, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Archive{db: db}, nil
}

// SaveVehicle writes one vehicle row. INSERT OR IGNORE makes a retried
// write-through harmless.
func (a *Archive) SaveVehicle(ctx context.Context, v ledger.Vehicle) error {
	_, err := a.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO vehicles (id, brand, model, year, purchase_price, expected_sell_price, date_added)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		v.ID, v.Brand, v.Model, v.Year,
		v.PurchasePrice.String(), v.ExpectedSellPrice.String(),
		types.FormatTimestamp(v.DateAdded),
	)
	if err != nil {
		return fmt.Errorf("insert vehicle %d: %w", v.ID, err)
	}
	return nil
}

// SaveSale writes one sale row. Derived fields (label, profit) are not
// stored; they are recomputed from the vehicle row on load.
func (a *Archive) SaveSale(ctx context.Context, s ledger.Sale) error {
	_, err := a.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO sales (sale_id, vehicle_id, customer_name, sale_price, date)
		 VALUES (?, ?, ?, ?, ?)`,
		s.ID, s.VehicleID, s.CustomerName, s.SalePrice.String(), types.FormatTimestamp(s.Date),
	)
	if err != nil {
		return fmt.Errorf("insert sale %d: %w", s.ID, err)
	}
	return nil
}

// SaveExpense writes one expense row.
func (a *Archive) SaveExpense(ctx context.Context, e ledger.Expense) error {
	_, err := a.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO expenses (expense_id, description, amount, date)
		 VALUES (?, ?, ?, ?)`,
		e.ID, e.Description, e.Amount.String(), types.FormatTimestamp(e.Date),
	)
	if err != nil {
		return fmt.Errorf("insert expense %d: %w", e.ID, err)
	}
	return nil
}

// LoadAll reads every archived row. A malformed timestamp does not abort the
// load: the row keeps the current time instead and the substitution is
// logged. Malformed amounts are real corruption and fail the load.
func (a *Archive) LoadAll(ctx context.Context) (ledger.ArchiveData, error) {
	var data ledger.ArchiveData

	rows, err := a.db.QueryContext(ctx,
		`SELECT id, brand, model, year, purchase_price, expected_sell_price, date_added
		 FROM vehicles ORDER BY id`)
	if err != nil {
		return data, fmt.Errorf("load vehicles: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var v ledger.Vehicle
		var purchase, expected, added string
		if err := rows.Scan(&v.ID, &v.Brand, &v.Model, &v.Year, &purchase, &expected, &added); err != nil {
			return data, fmt.Errorf("scan vehicle: %w", err)
		}
		if v.PurchasePrice, err = types.NewMoneyFromString(purchase); err != nil {
			return data, fmt.Errorf("vehicle %d purchase_price %q: %w", v.ID, purchase, err)
		}
		if v.ExpectedSellPrice, err = types.NewMoneyFromString(expected); err != nil {
			return data, fmt.Errorf("vehicle %d expected_sell_price %q: %w", v.ID, expected, err)
		}
		v.DateAdded = a.timestamp(ctx, "vehicles", v.ID, added)
		data.Vehicles = append(data.Vehicles, v)
	}
	if err := rows.Err(); err != nil {
		return data, fmt.Errorf("iterate vehicles: %w", err)
	}

	saleRows, err := a.db.QueryContext(ctx,
		`SELECT sale_id, vehicle_id, customer_name, sale_price, date
		 FROM sales ORDER BY sale_id`)
	if err != nil {
		return data, fmt.Errorf("load sales: %w", err)
	}
	defer saleRows.Close()
	for saleRows.Next() {
		var s ledger.Sale
		var price, date string
		if err := saleRows.Scan(&s.ID, &s.VehicleID, &s.CustomerName, &price, &date); err != nil {
			return data, fmt.Errorf("scan sale: %w", err)
		}
		if s.SalePrice, err = types.NewMoneyFromString(price); err != nil {
			return data, fmt.Errorf("sale %d sale_price %q: %w", s.ID, price, err)
		}
		s.Date = a.timestamp(ctx, "sales", s.ID, date)
		data.Sales = append(data.Sales, s)
	}
	if err := saleRows.Err(); err != nil {
		return data, fmt.Errorf("iterate sales: %w", err)
	}

	expenseRows, err := a.db.QueryContext(ctx,
		`SELECT expense_id, description, amount, date
		 FROM expenses ORDER BY expense_id`)
	if err != nil {
		return data, fmt.Errorf("load expenses: %w", err)
	}
	defer expenseRows.Close()
	for expenseRows.Next() {
		var e ledger.Expense
		var amount, date string
		if err := expenseRows.Scan(&e.ID, &e.Description, &amount, &date); err != nil {
			return data, fmt.Errorf("scan expense: %w", err)
		}
		if e.Amount, err = types.NewMoneyFromString(amount); err != nil {
			return data, fmt.Errorf("expense %d amount %q: %w", e.ID, amount, err)
		}
		e.Date = a.timestamp(ctx, "expenses", e.ID, date)
		data.Expenses = append(data.Expenses, e)
	}
	if err := expenseRows.Err(); err != nil {
		return data, fmt.Errorf("iterate expenses: %w", err)
	}

	return data, nil
}

func (a *Archive) timestamp(ctx context.Context, table string, id int64, raw string) time.Time {
	t, err := types.LenientTimestamp(raw)
	if err != nil {
		logger.Warn(ctx, "malformed timestamp in archive, substituting current time",
			"table", table, "id", id, "raw", raw, "error", err)
	}
	return t
}

// Ping verifies the database file is reachable.
func (a *Archive) Ping(ctx context.Context) error {
	return a.db.PingContext(ctx)
}

// Close closes the database connection.
func (a *Archive) Close() error {
	return a.db.Close()
}

var _ ledger.Archive = (*Archive)(nil)
