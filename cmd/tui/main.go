package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/micatius/FreelancerPaymentProcessingSystem/cmd/tui/internal/view"
	"github.com/micatius/FreelancerPaymentProcessingSystem/internal/auth"
	"github.com/micatius/FreelancerPaymentProcessingSystem/internal/changelog"
	"github.com/micatius/FreelancerPaymentProcessingSystem/internal/config"
	"github.com/micatius/FreelancerPaymentProcessingSystem/internal/database"
	"github.com/micatius/FreelancerPaymentProcessingSystem/internal/logger"
	"github.com/micatius/FreelancerPaymentProcessingSystem/internal/service"
	"github.com/micatius/FreelancerPaymentProcessingSystem/internal/store"
)

// repoAdapter narrows the concrete store transaction to the interface the
// services consume.
type repoAdapter struct {
	repo *store.Repository
}

func (a repoAdapter) Begin(ctx context.Context) (service.Tx, error) {
	tx, err := a.repo.Begin(ctx)
	if err != nil {
		return nil, err
	}

	return tx, nil
}

type View int

const (
	ViewLogin       View = 0
	ViewMenu        View = 1
	ViewFreelancers View = 2
	ViewInvoices    View = 3
	ViewAudit       View = 4
)

type model struct {
	session     *auth.Session
	freelancers *service.FreelancerService
	invoices    *service.InvoiceService
	payments    *service.PaymentService

	currentView View
	overdue     int

	loginView       view.LoginModel
	freelancersView view.FreelancersModel
	invoicesView    view.InvoicesModel
	auditView       view.AuditModel
}

// deps carries what main needs to wire the background workers after the
// program exists.
type deps struct {
	cfg      *config.Config
	auditLog *changelog.Log
	invoices *service.InvoiceService
}

func initialModel(log *zap.Logger) (model, deps, error) {
	cfg, err := config.Load()
	if err != nil {
		return model{}, deps{}, fmt.Errorf("loading config: %w", err)
	}

	connStr, err := cfg.ConnectionString()
	if err != nil {
		return model{}, deps{}, fmt.Errorf("reading database properties: %w", err)
	}

	db, err := database.New(connStr)
	if err != nil {
		return model{}, deps{}, fmt.Errorf("connecting to database: %w", err)
	}

	session := auth.NewSession()
	authSvc := auth.NewService(auth.NewFileStore(cfg.Files.Users))
	auditLog := changelog.Open(cfg.Files.ChangeLog)

	repo := repoAdapter{repo: store.NewRepository(db)}
	freelancers := service.NewFreelancerService(repo, auditLog, session, log)
	invoices := service.NewInvoiceService(repo, auditLog, session, log)
	payments := service.NewPaymentService(repo, auditLog, session, log)

	m := model{
		session:         session,
		freelancers:     freelancers,
		invoices:        invoices,
		payments:        payments,
		currentView:     ViewLogin,
		loginView:       view.NewLoginModel(authSvc),
		freelancersView: view.NewFreelancersModel(freelancers),
		invoicesView:    view.NewInvoicesModel(invoices, payments, session),
		auditView:       view.NewAuditModel(),
	}

	return m, deps{cfg: cfg, auditLog: auditLog, invoices: invoices}, nil
}

func (m model) Init() tea.Cmd {
	return m.loginView.Init()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case view.LoginMsg:
		m.session.SetCurrentUser(msg.User)
		m.currentView = ViewMenu

		return m, nil

	case view.OverdueMsg:
		m.overdue = int(msg)
		return m, nil

	case view.AuditMsg:
		// The audit view keeps its rows current even while hidden.
		var newModel tea.Model
		newModel, cmd = m.auditView.Update(msg)
		m.auditView = newModel.(view.AuditModel)

		return m, cmd

	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewFreelancers
				m.freelancersView = view.NewFreelancersModel(m.freelancers)

				return m, m.freelancersView.Init()
			case "2":
				m.currentView = ViewInvoices
				m.invoicesView = view.NewInvoicesModel(m.invoices, m.payments, m.session)

				return m, m.invoicesView.Init()
			case "3":
				m.currentView = ViewAudit
				return m, m.auditView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewLogin:
		var newModel tea.Model
		newModel, cmd = m.loginView.Update(msg)
		m.loginView = newModel.(view.LoginModel)
	case ViewFreelancers:
		var newModel tea.Model
		newModel, cmd = m.freelancersView.Update(msg)
		m.freelancersView = newModel.(view.FreelancersModel)
	case ViewInvoices:
		var newModel tea.Model
		newModel, cmd = m.invoicesView.Update(msg)
		m.invoicesView = newModel.(view.InvoicesModel)
	case ViewAudit:
		var newModel tea.Model
		newModel, cmd = m.auditView.Update(msg)
		m.auditView = newModel.(view.AuditModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewLogin:
		return m.loginView.View()
	case ViewMenu:
		header := fmt.Sprintf("Freelancer Payments (%s)", m.session.Username())
		if m.overdue > 0 {
			header += lipgloss.NewStyle().Foreground(lipgloss.Color("196")).
				Render(fmt.Sprintf("  %d overdue", m.overdue))
		}

		return lipgloss.NewStyle().Padding(2).Render(
			header + "\n\n" +
				"1. Freelancers\n" +
				"2. Invoices & Payments\n" +
				"3. Change Log\n\n" +
				"q. Quit",
		)
	case ViewFreelancers:
		return m.freelancersView.View()
	case ViewInvoices:
		return m.invoicesView.View()
	case ViewAudit:
		return m.auditView.View()
	}

	return "Unknown View"
}

func main() {
	_ = godotenv.Load()

	log := logger.New(os.Getenv("APP_ENV"))
	defer func() { _ = log.Sync() }()

	m, d, err := initialModel(log)
	if err != nil {
		log.Error("startup failed", zap.Error(err))
		os.Exit(1)
	}

	p := tea.NewProgram(m)

	refresher := changelog.NewRefresher(d.auditLog, d.cfg.Refresh.ChangeLogPeriod, func(entries []changelog.Entry) {
		p.Send(view.AuditMsg(entries))
	}, log)

	watcher := service.NewOverdueWatcher(d.invoices, d.cfg.Refresh.OverduePeriod, func(n int) {
		p.Send(view.OverdueMsg(n))
	}, log)

	refresher.Start()
	defer refresher.Close()

	watcher.Start()
	defer watcher.Close()

	if _, err := p.Run(); err != nil {
		log.Error("failed to run TUI", zap.Error(err))
		os.Exit(1)
	}
}
