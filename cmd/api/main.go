package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/shopspring/decimal"

	"github.com/schuelerstaat/statebank/internal/account"
	accountStore "github.com/schuelerstaat/statebank/internal/account/store"
	"github.com/schuelerstaat/statebank/internal/auth"
	authStore "github.com/schuelerstaat/statebank/internal/auth/store"
	"github.com/schuelerstaat/statebank/internal/config"
	"github.com/schuelerstaat/statebank/internal/database"
	"github.com/schuelerstaat/statebank/internal/exchange"
	bankHttp "github.com/schuelerstaat/statebank/internal/http"
	accountHandler "github.com/schuelerstaat/statebank/internal/http/account"
	authHandler "github.com/schuelerstaat/statebank/internal/http/authn"
	ledgerHandler "github.com/schuelerstaat/statebank/internal/http/ledger"
	payrollHandler "github.com/schuelerstaat/statebank/internal/http/payroll"
	productHandler "github.com/schuelerstaat/statebank/internal/http/product"
	"github.com/schuelerstaat/statebank/internal/ledger"
	ledgerStore "github.com/schuelerstaat/statebank/internal/ledger/store"
	"github.com/schuelerstaat/statebank/internal/payroll"
	payrollStore "github.com/schuelerstaat/statebank/internal/payroll/store"
	"github.com/schuelerstaat/statebank/internal/product"
	productStore "github.com/schuelerstaat/statebank/internal/product/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(context.Background(), cfg.ConnectionString(), database.Pool{
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
	})
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	rates, err := exchange.Load(cfg.Rates.File)
	if err != nil {
		slog.Error("failed to load exchange rates", "error", err)
		os.Exit(1)
	}

	stateBank, err := ledger.DecodeUserSignature(cfg.State.BankSignature)
	if err != nil {
		slog.Error("invalid state bank signature", "error", err)
		os.Exit(1)
	}

	borderControl, err := ledger.DecodeUserSignature(cfg.State.BorderControlSignature)
	if err != nil {
		slog.Error("invalid border control signature", "error", err)
		os.Exit(1)
	}

	warehouse, err := ledger.DecodeUserSignature(cfg.State.WarehouseSignature)
	if err != nil {
		slog.Error("invalid warehouse signature", "error", err)
		os.Exit(1)
	}

	salesTax, err := decimal.NewFromString(cfg.Tax.SalesRate)
	if err != nil {
		slog.Error("invalid sales tax rate", "error", err)
		os.Exit(1)
	}

	incomeTax, err := decimal.NewFromString(cfg.Tax.IncomeRate)
	if err != nil {
		slog.Error("invalid income tax rate", "error", err)
		os.Exit(1)
	}

	tokens := auth.NewTokens(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	var (
		authService    = auth.NewService(authStore.New(db), tokens)
		accountService = account.NewService(accountStore.New(db))
		productService = product.NewService(productStore.New(db))
		ledgerService  = ledger.NewService(ledgerStore.New(db), authService, rates, ledger.Params{
			StateBank:     stateBank,
			BorderControl: borderControl,
			Warehouse:     warehouse,
			SalesTaxRate:  salesTax,
		})
		payrollService = payroll.NewService(payrollStore.New(db), payroll.Params{
			StateBank:     stateBank,
			IncomeTaxRate: incomeTax,
		})
	)

	var (
		authH    = authHandler.NewHandler(authService)
		ledgerH  = ledgerHandler.NewHandler(ledgerService)
		accountH = accountHandler.NewHandler(accountService)
		productH = productHandler.NewHandler(productService)
		payrollH = payrollHandler.NewHandler(payrollService)
	)

	router := bankHttp.New(tokens, authH, ledgerH, accountH, productH, payrollH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
