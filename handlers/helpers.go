// Copyright (c) 2026 Tamas Bodnar.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/tbodnar/saloon/auth"
	"github.com/tbodnar/saloon/cliparse"
	"github.com/tbodnar/saloon/game"
	"github.com/tbodnar/saloon/middleware"
	"github.com/tbodnar/saloon/models"
	"github.com/tbodnar/saloon/store"
)

// currentUser resolves the acting identity from the Authorization header.
// The token must verify and the name it carries must still be registered.
func currentUser(s *store.Store, cfg cliparse.Config, r *http.Request) (models.User, error) {
	token := auth.BearerToken(r.Header.Get("Authorization"))
	if token == "" {
		return models.User{}, auth.ErrInvalidToken
	}
	name, err := auth.VerifyToken(token, cfg.TokenSecret)
	if err != nil {
		return models.User{}, err
	}

	users, err := store.Load[models.User](s, store.CollectionUsers)
	if err != nil {
		return models.User{}, err
	}
	for _, u := range users {
		if u.Name == name {
			return u, nil
		}
	}
	return models.User{}, auth.ErrInvalidToken
}

// writeGameError maps domain errors onto HTTP statuses.
func writeGameError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrInvalidCredentials):
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
	case errors.Is(err, game.ErrForbidden), errors.Is(err, game.ErrNotActivePlayer):
		middleware.ErrorResponse(w, http.StatusForbidden, err.Error())
	case errors.Is(err, game.ErrGameNotFound),
		errors.Is(err, game.ErrPlayerNotFound),
		errors.Is(err, game.ErrRequestNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, err.Error())
	case errors.Is(err, game.ErrGameStarted),
		errors.Is(err, game.ErrGameNotStarted),
		errors.Is(err, game.ErrGameFinished),
		errors.Is(err, game.ErrInvalidPlayerCount),
		errors.Is(err, game.ErrLifeBelowZero):
		middleware.ErrorResponse(w, http.StatusConflict, err.Error())
	case errors.Is(err, game.ErrInvalidZone):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	default:
		slog.Error("request failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
	}
}

// gameIDFromPath parses the {gameID} path segment.
func gameIDFromPath(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("gameID"), 10, 64)
}

// updateGame runs fn against one game inside an atomic whole-collection
// update and returns the resulting snapshot. Any error from fn aborts the
// write.
func updateGame(s *store.Store, id int64, fn func(g *models.Game) error) (models.Game, error) {
	var snapshot models.Game
	err := store.Update(s, store.CollectionGames, func(games []models.Game) ([]models.Game, error) {
		for i := range games {
			if games[i].ID == id {
				if err := fn(&games[i]); err != nil {
					return nil, err
				}
				snapshot = games[i]
				return games, nil
			}
		}
		return nil, game.ErrGameNotFound
	})
	return snapshot, err
}
