// Copyright (c) 2026 Tamas Bodnar.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/tbodnar/saloon/auth"
	"github.com/tbodnar/saloon/cliparse"
	"github.com/tbodnar/saloon/middleware"
	"github.com/tbodnar/saloon/models"
	"github.com/tbodnar/saloon/store"
)

var errNameTaken = errors.New("name already taken")

type UserHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewUserHandler(s *store.Store, cfg cliparse.Config) *UserHandler {
	return &UserHandler{store: s, cfg: cfg}
}

// Signup handles POST /api/signup
func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if len(req.Name) < 3 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name must be at least 3 characters")
		return
	}
	if len(req.Password) < 3 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "password must be at least 3 characters")
		return
	}
	// "finish" would collide with the DELETE /api/game/{gameID}/finish
	// route and make the player unremovable by name
	if req.Name == "finish" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is reserved")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to sign up")
		return
	}
	id, err := auth.NewID()
	if err != nil {
		slog.Error("failed to generate user id", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to sign up")
		return
	}

	// Uniqueness is checked inside the atomic update so two concurrent
	// signups with the same name cannot both get through.
	err = store.Update(h.store, store.CollectionUsers, func(users []models.User) ([]models.User, error) {
		for _, u := range users {
			if u.Name == req.Name {
				return nil, errNameTaken
			}
		}
		return append(users, models.User{ID: id, Name: req.Name, Password: hash}), nil
	})
	if errors.Is(err, errNameTaken) {
		middleware.ErrorResponse(w, http.StatusConflict, "Name already taken")
		return
	}
	if err != nil {
		slog.Error("failed to save user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to sign up")
		return
	}

	slog.Info("user registered", "name", req.Name)
	middleware.JSONResponse(w, http.StatusCreated, models.SignupResponse{ID: id})
}

// Login handles POST /api/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if len(req.Name) < 3 || len(req.Password) < 3 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name and password required")
		return
	}

	users, err := store.Load[models.User](h.store, store.CollectionUsers)
	if err != nil {
		slog.Error("failed to load users", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	for _, u := range users {
		if u.Name != req.Name {
			continue
		}
		if err := auth.CheckPassword(u.Password, req.Password); err != nil {
			break
		}
		token, err := auth.SignToken(u.Name, h.cfg.TokenSecret, h.cfg.TokenTTL)
		if err != nil {
			slog.Error("failed to sign token", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to log in")
			return
		}
		slog.Info("user logged in", "name", u.Name)
		middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{Token: token})
		return
	}

	middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid name or password")
}
