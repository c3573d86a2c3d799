// Package main provides a CLI tool for seeding the ledger with demo data.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"driveledger/internal/config"
	"driveledger/internal/core/types"
	"driveledger/internal/domain/ledger"
	"driveledger/internal/domain/reports"
	"driveledger/internal/infrastructure/storage"
	"driveledger/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	log, err := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalw("invalid configuration", "error", err)
	}

	ctx := context.Background()

	archive, err := storage.NewArchive(ctx, cfg)
	if err != nil {
		log.Fatalw("failed to initialize archive", "error", err)
	}
	defer archive.Close()

	data, err := archive.LoadAll(ctx)
	if err != nil {
		log.Fatalw("failed to read archive", "error", err)
	}
	if len(data.Vehicles)+len(data.Sales)+len(data.Expenses) > 0 {
		log.Infow("archive already has data, nothing to do",
			"vehicles", len(data.Vehicles),
			"sales", len(data.Sales),
			"expenses", len(data.Expenses),
		)
		return
	}

	store := ledger.NewStore()
	service := ledger.NewService(store, archive, ledger.NopPublisher{})

	vehicles := []ledger.NewVehicleInput{
		{Brand: "Toyota", Model: "Corolla", Year: 2020, PurchasePrice: types.MustMoney("10000"), ExpectedSellPrice: types.MustMoney("11500")},
		{Brand: "Honda", Model: "Civic", Year: 2021, PurchasePrice: types.MustMoney("11000"), ExpectedSellPrice: types.MustMoney("13500")},
		{Brand: "Ford", Model: "Focus", Year: 2019, PurchasePrice: types.MustMoney("8500"), ExpectedSellPrice: types.MustMoney("9800")},
		{Brand: "BMW", Model: "320i", Year: 2022, PurchasePrice: types.MustMoney("24000"), ExpectedSellPrice: types.MustMoney("27500")},
	}

	for _, in := range vehicles {
		v, err := service.AddVehicle(ctx, in)
		if err != nil {
			log.Fatalw("failed to seed vehicle", "brand", in.Brand, "error", err)
		}
		log.Infow("vehicle added", "id", v.ID, "vehicle", v.Label())
	}

	sale, err := service.SellVehicle(ctx, 1, ledger.SaleInput{
		CustomerName: "John Smith",
		SalePrice:    types.MustMoney("11000"),
	})
	if err != nil {
		log.Fatalw("failed to seed sale", "error", err)
	}
	log.Infow("vehicle sold", "sale_id", sale.ID, "vehicle", sale.VehicleLabel, "profit", sale.Profit)

	expenses := []ledger.ExpenseInput{
		{Description: "Lot rent", Amount: types.MustMoney("1200")},
		{Description: "Detailing supplies", Amount: types.MustMoney("150")},
	}

	for _, in := range expenses {
		e, err := service.AddExpense(ctx, in)
		if err != nil {
			log.Fatalw("failed to seed expense", "description", in.Description, "error", err)
		}
		log.Infow("expense recorded", "id", e.ID, "description", e.Description)
	}

	summary := reports.NewService(store).FinancialSummary(ctx)
	inStock, sold := store.Counts()
	log.Infow("seeding completed",
		"in_stock", inStock,
		"sold", sold,
		"net", summary.Net,
		"status", summary.Status,
	)
}
