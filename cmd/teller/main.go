package main

import (
	"context"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/schuelerstaat/statebank/cmd/teller/internal/view"
	"github.com/schuelerstaat/statebank/internal/account"
	accountStore "github.com/schuelerstaat/statebank/internal/account/store"
	"github.com/schuelerstaat/statebank/internal/auth"
	authStore "github.com/schuelerstaat/statebank/internal/auth/store"
	"github.com/schuelerstaat/statebank/internal/config"
	"github.com/schuelerstaat/statebank/internal/database"
	"github.com/schuelerstaat/statebank/internal/exchange"
	"github.com/schuelerstaat/statebank/internal/ledger"
	ledgerStore "github.com/schuelerstaat/statebank/internal/ledger/store"
)

type model struct {
	accountService *account.Service
	ledgerService  *ledger.Service

	currentView View

	accountsView view.AccountsModel
	journalView  view.JournalModel
	transferView view.TransferModel
}

type View int

const (
	ViewMenu     View = 0
	ViewAccounts View = 1
	ViewJournal  View = 2
	ViewTransfer View = 3
)

func initialModel() model {
	_ = godotenv.Load()

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

	authSvc := auth.NewService(authStore.New(db), auth.NewTokens(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL))
	accountSvc := account.NewService(accountStore.New(db))
	ledgerSvc := ledger.NewService(ledgerStore.New(db), authSvc, rates, ledger.Params{
		StateBank:     stateBank,
		BorderControl: borderControl,
		Warehouse:     warehouse,
		SalesTaxRate:  salesTax,
	})

	return model{
		accountService: accountSvc,
		ledgerService:  ledgerSvc,
		currentView:    ViewMenu,
		accountsView:   view.NewAccountsModel(accountSvc),
		journalView:    view.NewJournalModel(ledgerSvc),
		transferView:   view.NewTransferModel(ledgerSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewAccounts
				m.accountsView = view.NewAccountsModel(m.accountService)

				return m, m.accountsView.Init()
			case "2":
				m.currentView = ViewJournal
				m.journalView = view.NewJournalModel(m.ledgerService)

				return m, m.journalView.Init()
			case "3":
				m.currentView = ViewTransfer
				m.transferView = view.NewTransferModel(m.ledgerService)

				return m, m.transferView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewAccounts:
		var newModel tea.Model
		newModel, cmd = m.accountsView.Update(msg)
		m.accountsView = newModel.(view.AccountsModel)
	case ViewJournal:
		var newModel tea.Model
		newModel, cmd = m.journalView.Update(msg)
		m.journalView = newModel.(view.JournalModel)
	case ViewTransfer:
		var newModel tea.Model
		newModel, cmd = m.transferView.Update(msg)
		m.transferView = newModel.(view.TransferModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"StateBank Teller\n\n" +
				"1. Accounts Overview\n" +
				"2. Journal Lookup\n" +
				"3. Book Transfer\n\n" +
				"q. Quit",
		)
	case ViewAccounts:
		return m.accountsView.View()
	case ViewJournal:
		return m.journalView.View()
	case ViewTransfer:
		return m.transferView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
