// Copyright (c) 2026 Tamas Bodnar.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/tbodnar/saloon/auth"
	"github.com/tbodnar/saloon/cliparse"
	"github.com/tbodnar/saloon/models"
	"github.com/tbodnar/saloon/store"
)

var dbCounter atomic.Int64

// SetupTestStore creates a fresh in-memory sqlite store. Each call gets
// its own shared-cache database so connections from the sql pool see the
// same data.
func SetupTestStore(t *testing.T) *store.Store {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", dbCounter.Add(1))
	s, err := store.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	if err := s.Init(); err != nil {
		t.Fatalf("Failed to init test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// GetTestConfig returns a config suitable for handler tests.
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3001,
		DatabaseURL:  "file:unused?mode=memory",
		DatabaseType: "sqlite",
		TokenSecret:  "test-token-secret",
		TokenTTL:     time.Hour,
		LifePolicy:   models.LifePolicyReject,
	}
}

var idCounter atomic.Int64

// CreateTestUser registers a user directly in the store and returns it
// together with a valid session token.
func CreateTestUser(t *testing.T, s *store.Store, cfg cliparse.Config, name string) (models.User, string) {
	t.Helper()

	hash, err := auth.HashPassword("password")
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}
	user := models.User{ID: idCounter.Add(1), Name: name, Password: hash}

	err = store.Update(s, store.CollectionUsers, func(users []models.User) ([]models.User, error) {
		return append(users, user), nil
	})
	if err != nil {
		t.Fatalf("Failed to store user: %v", err)
	}

	token, err := auth.SignToken(name, cfg.TokenSecret, cfg.TokenTTL)
	if err != nil {
		t.Fatalf("Failed to sign token: %v", err)
	}
	return user, token
}

// PutGame writes a game into the store, replacing any existing game with
// the same id.
func PutGame(t *testing.T, s *store.Store, g models.Game) {
	t.Helper()

	err := store.Update(s, store.CollectionGames, func(games []models.Game) ([]models.Game, error) {
		for i := range games {
			if games[i].ID == g.ID {
				games[i] = g
				return games, nil
			}
		}
		return append(games, g), nil
	})
	if err != nil {
		t.Fatalf("Failed to store game: %v", err)
	}
}

// GetGame loads a game by id; fails the test if it is missing.
func GetGame(t *testing.T, s *store.Store, id int64) models.Game {
	t.Helper()

	games, err := store.Load[models.Game](s, store.CollectionGames)
	if err != nil {
		t.Fatalf("Failed to load games: %v", err)
	}
	for _, g := range games {
		if g.ID == id {
			return g
		}
	}
	t.Fatalf("Game %d not found", id)
	return models.Game{}
}
