package view

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/micatius/FreelancerPaymentProcessingSystem/internal/auth"
	"github.com/micatius/FreelancerPaymentProcessingSystem/internal/entity"
	"github.com/micatius/FreelancerPaymentProcessingSystem/internal/service"
)

type invoicesState int

const (
	invoicesStateBrowse invoicesState = iota
	invoicesStatePay
)

type loadInvoicesMsg struct {
	views []*service.InvoiceView
	err   error
}

type invoiceActionMsg struct {
	err error
}

// InvoicesModel lists invoices with their settlement state and records
// payments. A FREELANCER account only sees its own invoices.
type InvoicesModel struct {
	CommonModel
	invoices *service.InvoiceService
	payments *service.PaymentService
	session  *auth.Session

	state invoicesState
	table table.Model
	views []*service.InvoiceView
	form  *huh.Form

	loading bool
	err     error
	status  string

	formAmount string
	formPaidOn string
}

func NewInvoicesModel(invoices *service.InvoiceService, payments *service.PaymentService, session *auth.Session) InvoicesModel {
	columns := []table.Column{
		{Title: "ID", Width: 5},
		{Title: "Freelancer", Width: 24},
		{Title: "Issued", Width: 12},
		{Title: "Due", Width: 12},
		{Title: "Total", Width: 10},
		{Title: "Status", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
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

	return InvoicesModel{
		invoices: invoices,
		payments: payments,
		session:  session,
		table:    t,
		loading:  true,
	}
}

func (m InvoicesModel) Title() string { return "Invoices" }

func (m InvoicesModel) ShortHelp() string {
	if m.state == invoicesStatePay {
		return "Navigate form | Esc: cancel"
	}

	return "Esc: back | p: record payment | x: delete | r: refresh"
}

func (m InvoicesModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m InvoicesModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		views, err := m.invoices.FindAll(ctx)
		if err != nil {
			return loadInvoicesMsg{err: err}
		}

		return loadInvoicesMsg{views: m.visibleTo(views)}
	}
}

// visibleTo narrows the list for freelancer accounts to their own invoices.
func (m InvoicesModel) visibleTo(views []*service.InvoiceView) []*service.InvoiceView {
	user, ok := m.session.CurrentUser()
	if !ok || user.Role != auth.RoleFreelancer {
		return views
	}

	own := make([]*service.InvoiceView, 0, len(views))

	for _, v := range views {
		if v.Invoice.Freelancer.ID == user.LinkedEntityID {
			own = append(own, v)
		}
	}

	return own
}

func (m InvoicesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadInvoicesMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.views = msg.views
		m.refreshTable()

		return m, nil

	case invoiceActionMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = ""
		}

		m.state = invoicesStateBrowse
		m.form = nil
		m.table.Focus()

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case invoicesStateBrowse:
		return m.updateBrowse(msg)
	case invoicesStatePay:
		return m.updatePay(msg)
	}

	return m, nil
}

func (m InvoicesModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "p":
			return m.enterPayMode()
		case "x":
			return m.deleteSelected()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m InvoicesModel) selected() *service.InvoiceView {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.views) {
		return nil
	}

	return m.views[idx]
}

func (m InvoicesModel) enterPayMode() (tea.Model, tea.Cmd) {
	v := m.selected()
	if v == nil {
		return m, nil
	}

	if v.IsPaid() {
		m.status = fmt.Sprintf("Invoice %d is already paid", v.Invoice.ID)
		return m, nil
	}

	m.formAmount = FormatMoney(v.Invoice.TotalCost())
	m.formPaidOn = FormatDate(time.Now())

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("amount").
				Title("Amount").
				Value(&m.formAmount).
				Validate(func(s string) error {
					d, err := decimal.NewFromString(s)
					if err != nil {
						return fmt.Errorf("not a valid amount")
					}
					if !d.IsPositive() {
						return fmt.Errorf("amount must be positive")
					}
					return nil
				}),

			huh.NewInput().
				Key("paid_on").
				Title("Paid On (YYYY-MM-DD)").
				Value(&m.formPaidOn).
				Validate(func(s string) error {
					if _, err := time.Parse("2006-01-02", s); err != nil {
						return fmt.Errorf("not a valid date")
					}
					return nil
				}),
		),
	).WithWidth(40).WithShowHelp(false)

	m.state = invoicesStatePay
	m.table.Blur()

	return m, m.form.Init()
}

func (m InvoicesModel) updatePay(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = invoicesStateBrowse
			m.form = nil
			m.table.Focus()

			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.recordPaymentCmd()
}

func (m InvoicesModel) recordPaymentCmd() tea.Cmd {
	v := m.selected()
	form := m.form

	return func() tea.Msg {
		if v == nil {
			return invoiceActionMsg{}
		}

		amount, err := decimal.NewFromString(form.GetString("amount"))
		if err != nil {
			return invoiceActionMsg{err: err}
		}

		paidOn, err := time.Parse("2006-01-02", form.GetString("paid_on"))
		if err != nil {
			return invoiceActionMsg{err: err}
		}

		payment, err := entity.NewPayment(entity.PaymentParams{
			Invoice:       entity.InvoiceRef(v.Invoice.ID),
			Amount:        amount,
			PaidOn:        paidOn,
			TransactionID: "TX-" + uuid.NewString(),
		})
		if err != nil {
			return invoiceActionMsg{err: err}
		}

		ctx, cancel := DbCtx()
		defer cancel()

		_, err = m.payments.Save(ctx, payment)

		return invoiceActionMsg{err: err}
	}
}

func (m InvoicesModel) deleteSelected() (tea.Model, tea.Cmd) {
	v := m.selected()
	if v == nil {
		return m, nil
	}

	user, ok := m.session.CurrentUser()
	if ok && user.Role == auth.RoleFreelancer {
		m.status = "Freelancer accounts cannot delete invoices"
		return m, nil
	}

	id := v.Invoice.ID

	return m, func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		return invoiceActionMsg{err: m.invoices.Delete(ctx, id)}
	}
}

func (m *InvoicesModel) refreshTable() {
	now := time.Now()
	rows := make([]table.Row, 0, len(m.views))

	for _, v := range m.views {
		status := "OPEN"

		switch {
		case v.IsPaid():
			status = "PAID"
		case v.Overdue(now):
			status = "OVERDUE"
		}

		name := fmt.Sprintf("#%d", v.Invoice.Freelancer.ID)
		if v.Invoice.Freelancer.FirstName != "" {
			name = v.Invoice.Freelancer.FirstName + " " + v.Invoice.Freelancer.LastName
		}

		rows = append(rows, table.Row{
			fmt.Sprintf("%d", v.Invoice.ID),
			name,
			FormatDate(v.Invoice.InvoiceDate),
			FormatDate(v.Invoice.DueDate),
			FormatMoney(v.Invoice.TotalCost()),
			status,
		})
	}

	m.table.SetRows(rows)
}

func (m InvoicesModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading invoices...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := tableView

	if m.state == invoicesStatePay && m.form != nil {
		title := "Record Payment"
		if v := m.selected(); v != nil {
			title = fmt.Sprintf("Record Payment for Invoice %d", v.Invoice.ID)
		}

		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(44).
			Render(title + "\n\n" + m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}
