// Copyright (c) 2026 Tamas Bodnar.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/tbodnar/saloon/cliparse"
	"github.com/tbodnar/saloon/game"
	"github.com/tbodnar/saloon/middleware"
	"github.com/tbodnar/saloon/models"
	"github.com/tbodnar/saloon/store"
)

// ActionHandler applies in-game turn actions against an active game.
type ActionHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewActionHandler(s *store.Store, cfg cliparse.Config) *ActionHandler {
	return &ActionHandler{store: s, cfg: cfg}
}

// apply runs one action inside the atomic game update.
func (h *ActionHandler) apply(w http.ResponseWriter, gameID int64, action game.Action) {
	snapshot, err := updateGame(h.store, gameID, action.Apply)
	if err != nil {
		writeGameError(w, err)
		return
	}
	middleware.JSONResponse(w, http.StatusOK, snapshot)
}

// AdjustLife handles POST /api/game/{gameID}/{player}/life
func (h *ActionHandler) AdjustLife(w http.ResponseWriter, r *http.Request) {
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

	var req models.LifeRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Delta != 1 && req.Delta != -1 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "delta must be +1 or -1")
		return
	}

	slog.Info("life adjustment", "game_id", id, "target", r.PathValue("player"), "delta", req.Delta)
	h.apply(w, id, game.LifeChange{
		Actor:  user.Name,
		Target: r.PathValue("player"),
		Delta:  req.Delta,
		Policy: h.cfg.LifePolicy,
	})
}

// MoveCard handles POST /api/game/{gameID}/move
func (h *ActionHandler) MoveCard(w http.ResponseWriter, r *http.Request) {
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

	var req models.MoveCardRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	h.apply(w, id, game.CardMove{
		Actor: user.Name,
		From:  req.From,
		To:    req.To,
		Index: req.Index,
	})
}

// Reveal handles POST /api/game/{gameID}/reveal
func (h *ActionHandler) Reveal(w http.ResponseWriter, r *http.Request) {
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

	h.apply(w, id, game.RevealRole{Actor: user.Name})
}

// Finish handles DELETE /api/game/{gameID}/finish
func (h *ActionHandler) Finish(w http.ResponseWriter, r *http.Request) {
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

	h.apply(w, id, game.FinishGame{Actor: user.Name})
}
