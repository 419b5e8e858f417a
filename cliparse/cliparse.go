package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Database backends
const (
	DatabasePostgres = "postgres"
	DatabaseSQLite   = "sqlite"
)

type Config struct {
	Port             int
	DatabaseURL      string
	DatabaseType     string
	SurveyorPassword string
	SessionSecret    string
	DisplayTimezone  string
	Location         *time.Location
}

// ConfigError reports a missing or invalid startup setting.
type ConfigError struct {
	Setting string
	Reason  string
}

func (e *ConfigError) Error() string {
	return e.Setting + " " + e.Reason
}

// ParseFlags loads the env file, validates flags and fills defaults
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var envFile string

	fs := flag.NewFlagSet("survey-portal", flag.ContinueOnError)

	fs.StringVar(&envFile, "env", ".env", "Env file to load (missing file is ignored)")

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.SurveyorPassword, "password", "", "Surveyor portal password (prefer env)")
	fs.StringVar(&cfg.SessionSecret, "session-secret", "", "Surveyor session signing secret (prefer env)")

	fs.StringVar(&cfg.DisplayTimezone, "tz", "", "Time zone for exported timestamps")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// godotenv never overrides variables that are already set
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, &ConfigError{Setting: "PORT", Reason: "must be a number"}
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, &ConfigError{Setting: "DATABASE_URL", Reason: "required (use -d or DATABASE_URL env)"}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = inferDatabaseType(cfg.DatabaseURL)
	}
	cfg.DatabaseType = strings.ToLower(cfg.DatabaseType)
	if cfg.DatabaseType != DatabasePostgres && cfg.DatabaseType != DatabaseSQLite {
		return Config{}, &ConfigError{Setting: "DATABASE_TYPE", Reason: "must be sqlite or postgres"}
	}

	// Secrets - MUST be provided
	if cfg.SurveyorPassword == "" {
		cfg.SurveyorPassword = os.Getenv("SURVEYOR_PASSWORD")
	}
	if cfg.SurveyorPassword == "" {
		return Config{}, &ConfigError{Setting: "SURVEYOR_PASSWORD", Reason: "required (use -password or SURVEYOR_PASSWORD env)"}
	}

	// Optional; main generates a per-process secret when empty
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = os.Getenv("SESSION_SECRET")
	}

	if cfg.DisplayTimezone == "" {
		cfg.DisplayTimezone = os.Getenv("DISPLAY_TIMEZONE")
	}
	if cfg.DisplayTimezone == "" {
		cfg.DisplayTimezone = "Local"
	}
	loc, err := time.LoadLocation(cfg.DisplayTimezone)
	if err != nil {
		return Config{}, &ConfigError{Setting: "DISPLAY_TIMEZONE", Reason: "is not a known time zone"}
	}
	cfg.Location = loc

	return cfg, nil
}

func inferDatabaseType(url string) string {
	if strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://") {
		return DatabasePostgres
	}
	return DatabaseSQLite
}
