package view

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/micatius/FreelancerPaymentProcessingSystem/internal/changelog"
)

type CommonModel struct {
	Width  int
	Height int
}

type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}

// AuditMsg carries a fresh replay of the change log, published by the
// background refresher.
type AuditMsg []changelog.Entry

// OverdueMsg carries the current count of unpaid invoices past their due
// date, published by the overdue watcher.
type OverdueMsg int
