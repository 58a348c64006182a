/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

A .env file in the working directory is loaded first if present.

# Config Fields

  - Port: Server listen port (default: 3001)
  - DatabaseURL: SQLite path or PostgreSQL connection string (required)
  - DatabaseType: "sqlite" or "postgres" (default: sqlite)
  - TokenSecret: HMAC secret for session tokens (required)
  - TokenTTL: Session token lifetime (default: 1h)
  - LifePolicy: "reject" or "clamp" for life totals below zero

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type
	-token-secret Token signing secret
	-token-ttl    Token lifetime
	-life-policy  Below-zero life policy

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	TOKEN_SECRET  → -token-secret
	TOKEN_TTL     → -token-ttl
	LIFE_POLICY   → -life-policy

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing or invalid:

  - DATABASE_URL must be provided
  - DATABASE_TYPE must be "sqlite" or "postgres"
  - TOKEN_SECRET must be provided
  - LIFE_POLICY must be "reject" or "clamp"

# Example

	// In main.go
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	st, err := store.Open(cfg.Driver(), cfg.DatabaseURL)
	// ...
	mux := router.NewRouter(st, cfg)
*/
package cliparse
