// Copyright (c) 2026 Tamas Bodnar.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Saloon API server.

Saloon is a session server for a wild-west social deduction card game:
an admin opens a game, arbitrates who may join, and starts the session,
which deals hidden roles, characters and an 80-card deck to 4-7 players.
From there the table is free-form: players move cards between piles,
adjust life totals and reveal their roles as play demands.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=saloon.db TOKEN_SECRET=... go run main.go

Or with flags:

	go run main.go -p 3001 -d saloon.db -token-secret ...

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite path or PostgreSQL connection string
  - TOKEN_SECRET (-token-secret): HMAC secret for session tokens

Optional settings:

  - PORT (-p): Server port (default: 3001)
  - DATABASE_TYPE (-t): "sqlite" or "postgres" (default: sqlite)
  - TOKEN_TTL (-token-ttl): Session token lifetime (default: 1h)
  - LIFE_POLICY (-life-policy): "reject" or "clamp" (default: reject)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (accounts, games, turn actions)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response and domain types
  - game: Session rules (join arbitration, dealing, turn actions)
  - catalog: The fixed deck, character and role tables
  - auth: Password hashing and session tokens
  - store: JSON document persistence with optimistic locking
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
