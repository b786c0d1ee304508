package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/micatius/FreelancerPaymentProcessingSystem/internal/auth"
)

// LoginMsg announces a verified user to the root model.
type LoginMsg struct {
	User auth.User
}

type loginResultMsg struct {
	user auth.User
	err  error
}

type LoginModel struct {
	CommonModel
	auth *auth.Service

	form     *huh.Form
	username string
	password string

	checking bool
	err      error
}

func NewLoginModel(authSvc *auth.Service) LoginModel {
	m := LoginModel{auth: authSvc}
	m.form = m.newForm()

	return m
}

func (m LoginModel) newForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("username").
				Title("Username").
				Value(&m.username).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("username cannot be empty")
					}
					return nil
				}),

			huh.NewInput().
				Key("password").
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&m.password),
		),
	).WithWidth(40).WithShowHelp(false)
}

func (m LoginModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(loginResultMsg); ok {
		m.checking = false
		if result.err != nil {
			m.err = result.err
			m.password = ""
			m.form = m.newForm()

			return m, m.form.Init()
		}

		return m, func() tea.Msg { return LoginMsg{User: result.user} }
	}

	if m.checking {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	username := m.form.GetString("username")
	password := m.form.GetString("password")
	m.checking = true

	return m, func() tea.Msg {
		user, err := m.auth.Login(username, password)
		return loginResultMsg{user: user, err: err}
	}
}

func (m LoginModel) View() string {
	if m.checking {
		return lipgloss.NewStyle().Padding(2).Render("Checking credentials...")
	}

	content := "Sign In\n\n" + m.form.View()
	if m.err != nil {
		content += "\n" + lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(fmt.Sprintf("Login failed: %v", m.err))
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(content)
}
