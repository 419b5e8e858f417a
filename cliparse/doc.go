// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# CLI Flags

	-env             Env file to load first (default .env)
	-p               Server port
	-d               Database URL or SQLite path
	-t               Database type (postgres, sqlite)
	-password        Surveyor password
	-session-secret  Signing key for surveyor cookies
	-tz              Display time zone

# Environment Variables

Flags fall back to environment variables:

	PORT              → -p
	DATABASE_URL      → -d
	DATABASE_TYPE     → -t
	SURVEYOR_PASSWORD → -password
	SESSION_SECRET    → -session-secret
	DISPLAY_TIMEZONE  → -tz

CLI flags take precedence over environment variables, which take precedence
over the env file (github.com/joho/godotenv never overrides variables that
are already set). A missing env file is not an error.

# Validation

ParseFlags returns a *ConfigError if:

  - DATABASE_URL is not provided
  - SURVEYOR_PASSWORD is not provided
  - the port, database type or time zone is invalid

# Example

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	repo, conn, err := repository.Open(cfg)
	// ...
	mux := router.NewRouter(repo, cfg)
*/
package cliparse
