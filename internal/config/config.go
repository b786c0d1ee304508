package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all configurable values for the app. Everything except the
// database credentials comes from the environment; the credentials live in a
// properties file shared with the legacy desktop app.
type Config struct {
	App struct {
		Env string `envconfig:"APP_ENV" default:"development"`
	}

	Files struct {
		DBProperties string `envconfig:"DB_PROPERTIES_FILE" default:"db/db.properties"`
		Users        string `envconfig:"USERS_FILE" default:"dat/txt/users.txt"`
		ChangeLog    string `envconfig:"CHANGELOG_FILE" default:"dat/bin/changelog.bin"`
	}

	Refresh struct {
		ChangeLogPeriod time.Duration `envconfig:"CHANGELOG_REFRESH_PERIOD" default:"5s"`
		OverduePeriod   time.Duration `envconfig:"OVERDUE_REFRESH_PERIOD" default:"10s"`
	}
}

// Load reads environment variables and populates a Config struct.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}

// ConnectionString assembles the database DSN from the properties file named
// by the config. The file carries dbUrl, username and password keys; a
// missing or incomplete file is a startup error.
func (c *Config) ConnectionString() (string, error) {
	props, err := godotenv.Read(c.Files.DBProperties)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", c.Files.DBProperties, err)
	}

	dbURL := props["dbUrl"]
	if dbURL == "" {
		return "", fmt.Errorf("%s: dbUrl is required", c.Files.DBProperties)
	}

	u, err := url.Parse(dbURL)
	if err != nil {
		return "", fmt.Errorf("parsing dbUrl: %w", err)
	}

	if user := props["username"]; user != "" {
		u.User = url.UserPassword(user, props["password"])
	}

	return u.String(), nil
}
