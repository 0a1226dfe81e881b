package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/schuelerstaat/statebank/internal/ledger"
)

// TransferModel is the teller's counter form: move money between two
// accounts on a customer's behalf.
type TransferModel struct {
	CommonModel
	ledgerService *ledger.Service

	form       *huh.Form
	submitting bool
	status     string

	// Form bindings
	formSender   string
	formReceiver string
	formValue    string
	formPurpose  string
}

func NewTransferModel(ledgerSvc *ledger.Service) TransferModel {
	m := TransferModel{ledgerService: ledgerSvc}
	m.form = m.newForm()
	return m
}

func (m *TransferModel) newForm() *huh.Form {
	validateSignature := func(s string) error {
		_, err := ledger.DecodeUserSignature(s)
		return err
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("sender").
				Title("Sender").
				Placeholder("CITIZEN:<uuid>").
				Value(&m.formSender).
				Validate(validateSignature),

			huh.NewInput().
				Key("receiver").
				Title("Receiver").
				Placeholder("COMPANY:<uuid>").
				Value(&m.formReceiver).
				Validate(validateSignature),

			huh.NewInput().
				Key("value").
				Title("Value").
				Placeholder("10.00").
				Value(&m.formValue).
				Validate(func(s string) error {
					v, err := decimal.NewFromString(s)
					if err != nil {
						return fmt.Errorf("not a number")
					}
					if !v.IsPositive() {
						return fmt.Errorf("must be positive")
					}
					return nil
				}),

			huh.NewInput().
				Key("purpose").
				Title("Purpose (optional)").
				Value(&m.formPurpose),
		),
	).WithWidth(60).WithShowHelp(false)
}

type transferDoneMsg struct {
	tx  *ledger.Transaction
	err error
}

func (m TransferModel) submitCmd() tea.Cmd {
	sender, _ := ledger.DecodeUserSignature(m.formSender)
	receiver, _ := ledger.DecodeUserSignature(m.formReceiver)
	value, _ := decimal.NewFromString(m.formValue)

	var purpose *string
	if p := strings.TrimSpace(m.formPurpose); p != "" {
		purpose = &p
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		tx, err := m.ledgerService.TransferMoney(ctx, sender, receiver, value, purpose)
		return transferDoneMsg{tx: tx, err: err}
	}
}

func (m TransferModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m TransferModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case transferDoneMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Transfer failed: %v", msg.err)
		} else {
			m.status = fmt.Sprintf("Booked transfer #%d over %s", msg.tx.ID, FormatMoney(msg.tx.Transfer.Value))
		}

		m.submitting = false
		m.formSender, m.formReceiver, m.formValue, m.formPurpose = "", "", "", ""
		m.form = m.newForm()

		return m, m.form.Init()

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted || m.submitting {
		return m, cmd
	}

	m.submitting = true

	return m, m.submitCmd()
}

func (m TransferModel) View() string {
	content := m.form.View()
	if m.status != "" {
		content += "\n" + m.status
	}

	content += "\n\nEsc: back"

	return lipgloss.NewStyle().Padding(2).Render(content)
}
