package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/micatius/FreelancerPaymentProcessingSystem/internal/changelog"
	"github.com/micatius/FreelancerPaymentProcessingSystem/internal/entity"
)

// AuditModel shows the change log, newest entries first. The rows refresh
// whenever the background refresher publishes a new replay; no keypress is
// needed.
type AuditModel struct {
	CommonModel

	table   table.Model
	entries []changelog.Entry

	typeFilterIdx int
}

var auditTypeFilters = []string{
	"",
	entity.KindFreelancer,
	entity.KindInvoice,
	entity.KindPayment,
	entity.KindAddress,
}

func NewAuditModel() AuditModel {
	columns := []table.Column{
		{Title: "Time", Width: 20},
		{Title: "User", Width: 14},
		{Title: "Operation", Width: 10},
		{Title: "Entity", Width: 12},
		{Title: "Entity ID", Width: 9},
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

	return AuditModel{table: t}
}

func (m AuditModel) Title() string { return "Change Log" }

func (m AuditModel) ShortHelp() string {
	return "Esc: back | t: entity filter"
}

func (m AuditModel) Init() tea.Cmd {
	return nil
}

func (m AuditModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case AuditMsg:
		m.entries = msg
		m.refreshTable()

		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "t":
			m.typeFilterIdx = (m.typeFilterIdx + 1) % len(auditTypeFilters)
			m.refreshTable()

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m *AuditModel) refreshTable() {
	entries := m.entries
	if filter := auditTypeFilters[m.typeFilterIdx]; filter != "" {
		entries = changelog.FilterByType(entries, filter)
	}

	rows := make([]table.Row, 0, len(entries))

	// Newest first.
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		rows = append(rows, table.Row{
			FormatTimestamp(e.Timestamp),
			e.Username,
			string(e.Op),
			e.EntityType,
			fmt.Sprintf("%d", e.EntityID),
		})
	}

	m.table.SetRows(rows)
}

func (m AuditModel) View() string {
	filterLabel := auditTypeFilters[m.typeFilterIdx]
	if filterLabel == "" {
		filterLabel = "All"
	}

	header := fmt.Sprintf("Filter: [t] Entity: %s | %d entries",
		lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(filterLabel),
		len(m.entries),
	)

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	return lipgloss.NewStyle().Padding(1).Render(content)
}
