// Command useradd adds an account to the users file. Freelancer accounts
// are linked to a freelancer row so the invoice list can be narrowed to
// their own records.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/micatius/FreelancerPaymentProcessingSystem/internal/auth"
	"github.com/micatius/FreelancerPaymentProcessingSystem/internal/config"
	"github.com/micatius/FreelancerPaymentProcessingSystem/internal/logger"
)

func main() {
	_ = godotenv.Load()

	log := logger.New(os.Getenv("APP_ENV"))
	defer func() { _ = log.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		log.Error("loading config failed", zap.Error(err))
		os.Exit(1)
	}

	var (
		username string
		password string
		role     string
		linkedID string
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Username").
				Value(&username).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("username cannot be empty")
					}
					if strings.Contains(s, ";") {
						return fmt.Errorf("username cannot contain ';'")
					}
					return nil
				}),

			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&password).
				Validate(func(s string) error {
					if len(s) < 6 {
						return fmt.Errorf("password must be at least 6 characters")
					}
					return nil
				}),

			huh.NewSelect[string]().
				Title("Role").
				Options(
					huh.NewOption("Admin", string(auth.RoleAdmin)),
					huh.NewOption("Finance", string(auth.RoleFinance)),
					huh.NewOption("Freelancer", string(auth.RoleFreelancer)),
				).
				Value(&role),

			huh.NewInput().
				Title("Linked freelancer id (0 for none)").
				Value(&linkedID).
				Validate(func(s string) error {
					if s == "" {
						return nil
					}
					if _, err := strconv.ParseInt(s, 10, 64); err != nil {
						return fmt.Errorf("not a number")
					}
					return nil
				}),
		),
	)

	if err := form.Run(); err != nil {
		log.Error("aborted", zap.Error(err))
		os.Exit(1)
	}

	parsedRole, err := auth.ParseRole(role)
	if err != nil {
		log.Error("invalid role", zap.Error(err))
		os.Exit(1)
	}

	var entityID int64
	if linkedID != "" {
		entityID, _ = strconv.ParseInt(linkedID, 10, 64)
	}

	authSvc := auth.NewService(auth.NewFileStore(cfg.Files.Users))
	if err := authSvc.Register(username, password, parsedRole, entityID); err != nil {
		log.Error("creating user failed", zap.Error(err))
		os.Exit(1)
	}

	fmt.Printf("user %s created\n", username)
}
