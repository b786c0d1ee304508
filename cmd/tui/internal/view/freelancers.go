package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/micatius/FreelancerPaymentProcessingSystem/internal/entity"
	"github.com/micatius/FreelancerPaymentProcessingSystem/internal/service"
)

type freelancersState int

const (
	freelancersStateBrowse freelancersState = iota
	freelancersStateAdd
)

type loadFreelancersMsg struct {
	freelancers []*entity.Freelancer
	err         error
}

type freelancerSavedMsg struct {
	err error
}

type FreelancersModel struct {
	CommonModel
	svc *service.FreelancerService

	state       freelancersState
	table       table.Model
	freelancers []*entity.Freelancer
	form        *huh.Form

	loading bool
	err     error
	status  string

	formFirstName   string
	formLastName    string
	formEmail       string
	formPhone       string
	formBusiness    string
	formBusinessID  string
	formBankAccount string
	formStreet      string
	formHouseNumber string
	formCity        string
	formPostalCode  string
}

func NewFreelancersModel(svc *service.FreelancerService) FreelancersModel {
	columns := []table.Column{
		{Title: "ID", Width: 5},
		{Title: "Name", Width: 24},
		{Title: "Email", Width: 28},
		{Title: "Phone", Width: 12},
		{Title: "City", Width: 16},
		{Title: "Active", Width: 7},
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

	return FreelancersModel{
		svc:     svc,
		table:   t,
		loading: true,
	}
}

func (m FreelancersModel) Title() string { return "Freelancers" }

func (m FreelancersModel) ShortHelp() string {
	if m.state == freelancersStateAdd {
		return "Navigate form | Esc: cancel"
	}

	return "Esc: back | a: add | x: delete | r: refresh"
}

func (m FreelancersModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m FreelancersModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		freelancers, err := m.svc.FindAll(ctx)

		return loadFreelancersMsg{freelancers: freelancers, err: err}
	}
}

func (m FreelancersModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadFreelancersMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.freelancers = msg.freelancers
		m.refreshTable()

		return m, nil

	case freelancerSavedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = ""
		}

		m.state = freelancersStateBrowse
		m.form = nil
		m.table.Focus()

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case freelancersStateBrowse:
		return m.updateBrowse(msg)
	case freelancersStateAdd:
		return m.updateAdd(msg)
	}

	return m, nil
}

func (m FreelancersModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "a":
			return m.enterAddMode()
		case "x":
			return m.deleteSelected()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m FreelancersModel) enterAddMode() (tea.Model, tea.Cmd) {
	m.formFirstName = ""
	m.formLastName = ""
	m.formEmail = ""
	m.formPhone = ""
	m.formBusiness = ""
	m.formBusinessID = ""
	m.formBankAccount = ""
	m.formStreet = ""
	m.formHouseNumber = ""
	m.formCity = ""
	m.formPostalCode = ""

	required := func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("cannot be empty")
		}
		return nil
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Key("first_name").Title("First Name").Value(&m.formFirstName).Validate(required),
			huh.NewInput().Key("last_name").Title("Last Name").Value(&m.formLastName).Validate(required),
			huh.NewInput().Key("email").Title("Email").Value(&m.formEmail).Validate(required),
			huh.NewInput().Key("phone").Title("Phone Number").Value(&m.formPhone).Validate(required),
			huh.NewInput().Key("business").Title("Business Name").Value(&m.formBusiness).Validate(required),
			huh.NewInput().Key("business_id").Title("Business ID").Value(&m.formBusinessID).Validate(required),
			huh.NewInput().Key("bank_account").Title("Bank Account (IBAN)").Value(&m.formBankAccount).Validate(required),
		),
		huh.NewGroup(
			huh.NewInput().Key("street").Title("Street").Value(&m.formStreet).Validate(required),
			huh.NewInput().Key("house_number").Title("House Number").Value(&m.formHouseNumber).Validate(required),
			huh.NewInput().Key("city").Title("City").Value(&m.formCity).Validate(required),
			huh.NewInput().Key("postal_code").Title("Postal Code").Value(&m.formPostalCode).Validate(required),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = freelancersStateAdd
	m.table.Blur()

	return m, m.form.Init()
}

func (m FreelancersModel) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = freelancersStateBrowse
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

	return m, m.saveCmd()
}

func (m FreelancersModel) saveCmd() tea.Cmd {
	form := m.form

	return func() tea.Msg {
		address, err := entity.NewAddress(entity.AddressParams{
			Street:      form.GetString("street"),
			HouseNumber: form.GetString("house_number"),
			City:        form.GetString("city"),
			PostalCode:  form.GetString("postal_code"),
		})
		if err != nil {
			return freelancerSavedMsg{err: err}
		}

		freelancer, err := entity.NewFreelancer(entity.FreelancerParams{
			FirstName:    form.GetString("first_name"),
			LastName:     form.GetString("last_name"),
			Email:        form.GetString("email"),
			PhoneNumber:  form.GetString("phone"),
			Address:      address,
			BusinessName: form.GetString("business"),
			BusinessIDNo: form.GetString("business_id"),
			BankAccount:  form.GetString("bank_account"),
			Active:       true,
		})
		if err != nil {
			return freelancerSavedMsg{err: err}
		}

		ctx, cancel := DbCtx()
		defer cancel()

		_, err = m.svc.Save(ctx, freelancer)

		return freelancerSavedMsg{err: err}
	}
}

func (m FreelancersModel) deleteSelected() (tea.Model, tea.Cmd) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.freelancers) {
		return m, nil
	}

	id := m.freelancers[idx].ID

	return m, func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		return freelancerSavedMsg{err: m.svc.Delete(ctx, id)}
	}
}

func (m *FreelancersModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.freelancers))

	for _, f := range m.freelancers {
		active := "no"
		if f.Active {
			active = "yes"
		}

		rows = append(rows, table.Row{
			fmt.Sprintf("%d", f.ID),
			f.FirstName + " " + f.LastName,
			f.Email,
			f.PhoneNumber,
			f.Address.City,
			active,
		})
	}

	m.table.SetRows(rows)
}

func (m FreelancersModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading freelancers...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := tableView

	if m.state == freelancersStateAdd && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render("New Freelancer\n\n" + m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}
