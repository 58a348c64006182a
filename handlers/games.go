// Copyright (c) 2026 Tamas Bodnar.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/tbodnar/saloon/auth"
	"github.com/tbodnar/saloon/cliparse"
	"github.com/tbodnar/saloon/game"
	"github.com/tbodnar/saloon/middleware"
	"github.com/tbodnar/saloon/models"
	"github.com/tbodnar/saloon/store"
)

type GameHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewGameHandler(s *store.Store, cfg cliparse.Config) *GameHandler {
	return &GameHandler{store: s, cfg: cfg}
}

// Create handles POST /api/game
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(h.store, h.cfg, r)
	if err != nil {
		writeGameError(w, err)
		return
	}

	id, err := auth.NewID()
	if err != nil {
		slog.Error("failed to generate game id", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create game")
		return
	}

	err = store.Update(h.store, store.CollectionGames, func(games []models.Game) ([]models.Game, error) {
		return append(games, game.NewGame(id, user.Name)), nil
	})
	if err != nil {
		writeGameError(w, err)
		return
	}

	slog.Info("game created", "game_id", id, "admin", user.Name)
	middleware.JSONResponse(w, http.StatusCreated, models.CreateGameResponse{ID: id})
}

// List handles GET /api/games
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	if _, err := currentUser(h.store, h.cfg, r); err != nil {
		writeGameError(w, err)
		return
	}

	games, err := store.Load[models.Game](h.store, store.CollectionGames)
	if err != nil {
		writeGameError(w, err)
		return
	}

	summaries := make([]models.GameSummary, len(games))
	for i, g := range games {
		summaries[i] = g.Summary()
	}
	middleware.JSONResponse(w, http.StatusOK, summaries)
}

// Get handles GET /api/game/{gameID}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	if _, err := currentUser(h.store, h.cfg, r); err != nil {
		writeGameError(w, err)
		return
	}
	id, err := gameIDFromPath(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid game id")
		return
	}

	games, err := store.Load[models.Game](h.store, store.CollectionGames)
	if err != nil {
		writeGameError(w, err)
		return
	}
	for _, g := range games {
		if g.ID == id {
			middleware.JSONResponse(w, http.StatusOK, g)
			return
		}
	}
	writeGameError(w, game.ErrGameNotFound)
}

// Join handles POST /api/join
func (h *GameHandler) Join(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(h.store, h.cfg, r)
	if err != nil {
		writeGameError(w, err)
		return
	}

	var req models.JoinGameRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	_, err = updateGame(h.store, req.ID, func(g *models.Game) error {
		return game.RequestJoin(g, user.Ref())
	})
	if err != nil {
		writeGameError(w, err)
		return
	}

	slog.Info("join requested", "game_id", req.ID, "name", user.Name)
	middleware.JSONResponse(w, http.StatusOK, models.JoinGameResponse{ID: req.ID})
}

// Authorize handles POST /api/authorize
func (h *GameHandler) Authorize(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(h.store, h.cfg, r)
	if err != nil {
		writeGameError(w, err)
		return
	}

	var req models.AuthorizeRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	snapshot, err := updateGame(h.store, req.GameID, func(g *models.Game) error {
		return game.Authorize(g, user.Name, req.UserID)
	})
	if err != nil {
		writeGameError(w, err)
		return
	}

	slog.Info("join authorized", "game_id", req.GameID, "user_id", req.UserID)
	middleware.JSONResponse(w, http.StatusOK, snapshot)
}

// Remove handles DELETE /api/game/{gameID}/{username}
func (h *GameHandler) Remove(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(h.store, h.cfg, r)
	if err != nil {
		writeGameError(w, err)
		return
	}
	id, err := gameIDFromPath(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid game id")
		return
	}
	target := r.PathValue("username")

	snapshot, err := updateGame(h.store, id, func(g *models.Game) error {
		return game.Remove(g, user.Name, target)
	})
	if err != nil {
		writeGameError(w, err)
		return
	}

	slog.Info("player removed", "game_id", id, "name", target, "by", user.Name)
	middleware.JSONResponse(w, http.StatusOK, snapshot)
}

// Start handles POST /api/start/{gameID}
func (h *GameHandler) Start(w http.ResponseWriter, r *http.Request) {
	user, err := currentUser(h.store, h.cfg, r)
	if err != nil {
		writeGameError(w, err)
		return
	}
	id, err := gameIDFromPath(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid game id")
		return
	}

	snapshot, err := updateGame(h.store, id, func(g *models.Game) error {
		return game.Start(g, user.Name)
	})
	if err != nil {
		writeGameError(w, err)
		return
	}

	slog.Info("game started", "game_id", id, "players", len(snapshot.Players))
	middleware.JSONResponse(w, http.StatusOK, snapshot)
}
