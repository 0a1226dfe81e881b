package view

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/schuelerstaat/statebank/internal/ledger"
)

type journalState int

const (
	journalStateInput journalState = iota
	journalStateBrowse
)

// JournalModel shows the statement of one principal: every journal entry
// their signature appears in.
type JournalModel struct {
	CommonModel
	ledgerService *ledger.Service

	state    journalState
	sigInput textinput.Model
	table    table.Model
	txs      []*ledger.Transaction
	loading  bool
	err      error
}

func NewJournalModel(ledgerSvc *ledger.Service) JournalModel {
	ti := textinput.New()
	ti.Placeholder = "CITIZEN:<uuid>"
	ti.Prompt = "Signature: "
	ti.Width = 50
	ti.Focus()

	columns := []table.Column{
		{Title: "ID", Width: 8},
		{Title: "Kind", Width: 10},
		{Title: "Date", Width: 18},
		{Title: "Details", Width: 60},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return JournalModel{
		ledgerService: ledgerSvc,
		sigInput:      ti,
		table:         t,
		state:         journalStateInput,
	}
}

type loadJournalMsg struct {
	txs []*ledger.Transaction
	err error
}

func (m JournalModel) loadJournalCmd(user ledger.UserSignature) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		txs, err := m.ledgerService.Statement(ctx, user)
		return loadJournalMsg{txs: txs, err: err}
	}
}

func (m JournalModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m JournalModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadJournalMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			m.state = journalStateInput
			return m, nil
		}

		m.txs = msg.txs
		m.err = nil
		m.refreshTable()
		m.state = journalStateBrowse
		m.table.Focus()

		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 8)
		return m, nil
	}

	switch m.state {
	case journalStateInput:
		return m.updateInput(msg)
	case journalStateBrowse:
		return m.updateBrowse(msg)
	}

	return m, nil
}

func (m JournalModel) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "enter":
			sig, err := ledger.DecodeUserSignature(m.sigInput.Value())
			if err != nil {
				m.err = err
				return m, nil
			}

			m.loading = true
			m.err = nil

			return m, m.loadJournalCmd(sig)
		}
	}

	var cmd tea.Cmd
	m.sigInput, cmd = m.sigInput.Update(msg)
	return m, cmd
}

func (m JournalModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.state = journalStateInput
			m.table.Blur()
			m.sigInput.Focus()

			return m, textinput.Blink
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *JournalModel) refreshTable() {
	rows := make([]table.Row, len(m.txs))
	for i, t := range m.txs {
		rows[i] = table.Row{
			strconv.FormatInt(t.ID, 10),
			string(t.Kind),
			FormatDate(t.CreatedAt),
			summarize(t),
		}
	}

	m.table.SetRows(rows)
}

func summarize(t *ledger.Transaction) string {
	switch t.Kind {
	case ledger.KindTransfer:
		return fmt.Sprintf("%s -> %s: %s",
			t.Transfer.Sender, t.Transfer.Receiver, FormatMoney(t.Transfer.Value))
	case ledger.KindChange:
		return fmt.Sprintf("%s %s -> %s %s",
			FormatMoney(t.Change.FromValue), t.Change.FromCurrency,
			FormatMoney(t.Change.ToValue), t.Change.ToCurrency)
	case ledger.KindPurchase:
		return fmt.Sprintf("%s bought for %s (tax %s)",
			t.Purchase.Customer, FormatMoney(t.Purchase.GrossPrice), FormatMoney(t.Purchase.Tax))
	case ledger.KindCustoms:
		return fmt.Sprintf("%s paid %s customs",
			t.Customs.User, FormatMoney(t.Customs.Customs))
	case ledger.KindSalary:
		label := "salary"
		if t.Salary.IsBonus {
			label = "bonus"
		}

		return fmt.Sprintf("%s gross %s net %s",
			label, FormatMoney(t.Salary.GrossValue), FormatMoney(t.Salary.NetValue))
	}

	return ""
}

func (m JournalModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading journal...")
	}

	if m.state == journalStateInput {
		content := "Whose statement?\n\n" + m.sigInput.View()
		if m.err != nil {
			content += fmt.Sprintf("\n\nError: %v", m.err)
		}

		content += "\n\nEnter: load | Esc: back"

		return lipgloss.NewStyle().Padding(2).Render(content)
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	return lipgloss.JoinVertical(lipgloss.Left,
		tableView,
		"Esc: new search",
	)
}
