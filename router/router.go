// Copyright (c) 2026 Tamas Bodnar.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/tbodnar/saloon/cliparse"
	"github.com/tbodnar/saloon/handlers"
	"github.com/tbodnar/saloon/middleware"
	"github.com/tbodnar/saloon/store"
)

func NewRouter(s *store.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	userHandler := handlers.NewUserHandler(s, cfg)
	gameHandler := handlers.NewGameHandler(s, cfg)
	actionHandler := handlers.NewActionHandler(s, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Accounts
	mux.HandleFunc("POST /api/signup", middleware.WithLogging(userHandler.Signup))
	mux.HandleFunc("POST /api/login", middleware.WithLogging(userHandler.Login))

	// Game lifecycle (create, join arbitration, start)
	mux.HandleFunc("POST /api/game", middleware.WithLogging(gameHandler.Create))
	mux.HandleFunc("GET /api/games", middleware.WithLogging(gameHandler.List))
	mux.HandleFunc("GET /api/game/{gameID}", middleware.WithLogging(gameHandler.Get))
	mux.HandleFunc("POST /api/join", middleware.WithLogging(gameHandler.Join))
	mux.HandleFunc("POST /api/authorize", middleware.WithLogging(gameHandler.Authorize))
	mux.HandleFunc("DELETE /api/game/{gameID}/{username}", middleware.WithLogging(gameHandler.Remove))
	mux.HandleFunc("POST /api/start/{gameID}", middleware.WithLogging(gameHandler.Start))

	// Turn actions (active games only)
	mux.HandleFunc("POST /api/game/{gameID}/{player}/life", middleware.WithLogging(actionHandler.AdjustLife))
	mux.HandleFunc("POST /api/game/{gameID}/move", middleware.WithLogging(actionHandler.MoveCard))
	mux.HandleFunc("POST /api/game/{gameID}/reveal", middleware.WithLogging(actionHandler.Reveal))
	mux.HandleFunc("DELETE /api/game/{gameID}/finish", middleware.WithLogging(actionHandler.Finish))

	// Root endpoint. {$} pins the pattern to "/" exactly, so unknown
	// paths fall through to 404 and method mismatches get 405.
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("saloon API v1"))
	})

	return mux
}
