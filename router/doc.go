// Copyright (c) 2026 Tamas Bodnar.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Saloon API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(st, cfg)

# Endpoints

Health:

	GET /health

Accounts:

	POST /api/signup - Create account
	POST /api/login  - Exchange credentials for a bearer token

Game lifecycle (authenticated):

	POST   /api/game                     - Create game
	GET    /api/games                    - List games
	GET    /api/game/{gameID}            - Full game state
	POST   /api/join                     - Request to join
	POST   /api/authorize                - Approve a join request (admin)
	DELETE /api/game/{gameID}/{username} - Leave or kick (self or admin)
	POST   /api/start/{gameID}           - Deal the game out (admin)

Turn actions (authenticated, active games):

	POST   /api/game/{gameID}/{player}/life - Adjust life by ±1
	POST   /api/game/{gameID}/move          - Move a card between zones
	POST   /api/game/{gameID}/reveal        - Reveal own role
	DELETE /api/game/{gameID}/finish        - End the game (admin)

The finish route relies on Go 1.22 precedence rules: the literal
"finish" segment wins over the {username} wildcard on the same DELETE
pattern.

# Handler Initialization

The router creates handler instances with dependency injection:

	userHandler := handlers.NewUserHandler(st, cfg)
	gameHandler := handlers.NewGameHandler(st, cfg)
	actionHandler := handlers.NewActionHandler(st, cfg)

All handlers receive the document store and configuration.
*/
package router
