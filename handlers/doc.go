// Copyright (c) 2026 Tamas Bodnar.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Saloon API.

# Handler Types

Each handler is a struct with store and config dependencies:

  - UserHandler: Account signup and login
  - GameHandler: Game lifecycle (create, join arbitration, start)
  - ActionHandler: In-game turn actions (life, cards, reveal, finish)

Handlers are created via constructor functions that accept *store.Store
and Config:

	gameHandler := handlers.NewGameHandler(st, cfg)

# Game Lifecycle

Games progress through three states: recruiting → active → finished

	POST   /api/game                      → Create (caller becomes admin)
	POST   /api/join                      → Join (queues a request)
	POST   /api/authorize                 → Authorize (admin approves)
	DELETE /api/game/{gameID}/{username}  → Remove (self or admin)
	POST   /api/start/{gameID}            → Start (deals the game out)

Starting requires 4-7 joined players and is irreversible. The deal
assigns roles in a fixed order (the first seat is the Sheriff), picks
distinct characters, and draws each player a hand equal to their life.

# Turn Actions

Active games accept free-form table actions:

	POST   /api/game/{gameID}/{player}/life → AdjustLife (±1)
	POST   /api/game/{gameID}/move          → MoveCard (zone to zone)
	POST   /api/game/{gameID}/reveal        → Reveal (own role)
	DELETE /api/game/{gameID}/finish        → Finish (admin, idempotent)

All mutations run inside an atomic store update, so concurrent requests
never lose writes. Every action appends to the game log.

# Authentication

All game operations require a bearer token from POST /api/login:

	Authorization: Bearer <token>
*/
package handlers
