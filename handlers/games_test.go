// Copyright (c) 2026 Tamas Bodnar.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/tbodnar/saloon/models"
	"github.com/tbodnar/saloon/testutil"
)

func authedRequest(t *testing.T, method, target, token string, payload any) *http.Request {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("Failed to marshal payload: %v", err)
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

// createGame drives the Create handler and returns the new game id.
func createGame(t *testing.T, h *GameHandler, token string) int64 {
	t.Helper()
	req := authedRequest(t, "POST", "/api/game", token, nil)
	w := httptest.NewRecorder()
	h.Create(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("create game failed: %d (%s)", w.Code, w.Body.String())
	}
	var resp models.CreateGameResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return resp.ID
}

func joinGame(t *testing.T, h *GameHandler, token string, id int64) *httptest.ResponseRecorder {
	t.Helper()
	req := authedRequest(t, "POST", "/api/join", token, models.JoinGameRequest{ID: id})
	w := httptest.NewRecorder()
	h.Join(w, req)
	return w
}

func TestCreateGameRequiresAuth(t *testing.T) {
	st := testutil.SetupTestStore(t)
	cfg := testutil.GetTestConfig()
	h := NewGameHandler(st, cfg)

	req := authedRequest(t, "POST", "/api/game", "", nil)
	w := httptest.NewRecorder()
	h.Create(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestCreateGame(t *testing.T) {
	st := testutil.SetupTestStore(t)
	cfg := testutil.GetTestConfig()
	h := NewGameHandler(st, cfg)

	_, token := testutil.CreateTestUser(t, st, cfg, "alice")
	id := createGame(t, h, token)

	g := testutil.GetGame(t, st, id)
	if g.Admin != "alice" {
		t.Errorf("admin = %q, want alice", g.Admin)
	}
	if g.HasStarted || g.IsFinished {
		t.Error("new game must be recruiting")
	}
}

func TestJoinGame(t *testing.T) {
	st := testutil.SetupTestStore(t)
	cfg := testutil.GetTestConfig()
	h := NewGameHandler(st, cfg)

	_, adminToken := testutil.CreateTestUser(t, st, cfg, "alice")
	_, bobToken := testutil.CreateTestUser(t, st, cfg, "bob")
	id := createGame(t, h, adminToken)

	// Admin joins own game: auto-approved
	if w := joinGame(t, h, adminToken, id); w.Code != http.StatusOK {
		t.Fatalf("admin join failed: %d", w.Code)
	}
	// Someone else lands in requests
	if w := joinGame(t, h, bobToken, id); w.Code != http.StatusOK {
		t.Fatalf("bob join failed: %d", w.Code)
	}
	// Idempotent
	if w := joinGame(t, h, bobToken, id); w.Code != http.StatusOK {
		t.Fatalf("repeat join failed: %d", w.Code)
	}

	g := testutil.GetGame(t, st, id)
	if len(g.JoinedUsers) != 1 || g.JoinedUsers[0].Name != "alice" {
		t.Errorf("joinedUsers = %v", g.JoinedUsers)
	}
	if len(g.Requests) != 1 || g.Requests[0].Name != "bob" {
		t.Errorf("requests = %v", g.Requests)
	}
}

func TestJoinUnknownGame(t *testing.T) {
	st := testutil.SetupTestStore(t)
	cfg := testutil.GetTestConfig()
	h := NewGameHandler(st, cfg)

	_, token := testutil.CreateTestUser(t, st, cfg, "alice")
	if w := joinGame(t, h, token, 999); w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestAuthorize(t *testing.T) {
	st := testutil.SetupTestStore(t)
	cfg := testutil.GetTestConfig()
	h := NewGameHandler(st, cfg)

	_, adminToken := testutil.CreateTestUser(t, st, cfg, "alice")
	bob, bobToken := testutil.CreateTestUser(t, st, cfg, "bob")
	id := createGame(t, h, adminToken)
	joinGame(t, h, bobToken, id)

	authorize := func(token string, userID int64) *httptest.ResponseRecorder {
		req := authedRequest(t, "POST", "/api/authorize", token, models.AuthorizeRequest{GameID: id, UserID: userID})
		w := httptest.NewRecorder()
		h.Authorize(w, req)
		return w
	}

	// Non-admin may not authorize
	if w := authorize(bobToken, bob.ID); w.Code != http.StatusForbidden {
		t.Errorf("non-admin authorize status = %d, want 403", w.Code)
	}
	// Target must be pending
	if w := authorize(adminToken, 424242); w.Code != http.StatusNotFound {
		t.Errorf("unknown target status = %d, want 404", w.Code)
	}
	// Admin authorizes bob
	if w := authorize(adminToken, bob.ID); w.Code != http.StatusOK {
		t.Fatalf("authorize failed: %d (%s)", w.Code, w.Body.String())
	}

	g := testutil.GetGame(t, st, id)
	if len(g.Requests) != 0 {
		t.Errorf("requests not cleared: %v", g.Requests)
	}
	if len(g.JoinedUsers) != 1 || g.JoinedUsers[0].Name != "bob" {
		t.Errorf("joinedUsers = %v", g.JoinedUsers)
	}
}

func TestRemovePlayer(t *testing.T) {
	st := testutil.SetupTestStore(t)
	cfg := testutil.GetTestConfig()
	h := NewGameHandler(st, cfg)

	_, adminToken := testutil.CreateTestUser(t, st, cfg, "alice")
	_, bobToken := testutil.CreateTestUser(t, st, cfg, "bob")
	_, carolToken := testutil.CreateTestUser(t, st, cfg, "carol")
	id := createGame(t, h, adminToken)
	joinGame(t, h, bobToken, id)

	remove := func(token, target string) *httptest.ResponseRecorder {
		req := authedRequest(t, "DELETE", "/api/game/"+strconv.FormatInt(id, 10)+"/"+target, token, nil)
		req.SetPathValue("gameID", strconv.FormatInt(id, 10))
		req.SetPathValue("username", target)
		w := httptest.NewRecorder()
		h.Remove(w, req)
		return w
	}

	// bob is only pending, not joined
	if w := remove(adminToken, "bob"); w.Code != http.StatusNotFound {
		t.Errorf("remove pending status = %d, want 404", w.Code)
	}

	// Approve bob, then exercise removal rules
	req := authedRequest(t, "POST", "/api/authorize", adminToken, models.AuthorizeRequest{GameID: id, UserID: testutil.GetGame(t, st, id).Requests[0].ID})
	w := httptest.NewRecorder()
	h.Authorize(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("authorize failed: %d", w.Code)
	}

	if w := remove(carolToken, "bob"); w.Code != http.StatusForbidden {
		t.Errorf("third-party remove status = %d, want 403", w.Code)
	}
	if w := remove(bobToken, "bob"); w.Code != http.StatusOK {
		t.Errorf("self leave status = %d, want 200", w.Code)
	}

	g := testutil.GetGame(t, st, id)
	if len(g.JoinedUsers) != 0 {
		t.Errorf("joinedUsers = %v, want empty", g.JoinedUsers)
	}
}

// TestGameLifecycleScenario drives the full happy path: admin creates a
// game, four users request to join, the admin authorizes them all and
// starts the game.
func TestGameLifecycleScenario(t *testing.T) {
	st := testutil.SetupTestStore(t)
	cfg := testutil.GetTestConfig()
	h := NewGameHandler(st, cfg)

	_, adminToken := testutil.CreateTestUser(t, st, cfg, "alice")
	id := createGame(t, h, adminToken)

	users := []string{"bob", "carol", "dave", "erin"}
	for _, name := range users {
		_, token := testutil.CreateTestUser(t, st, cfg, name)
		if w := joinGame(t, h, token, id); w.Code != http.StatusOK {
			t.Fatalf("%s join failed: %d", name, w.Code)
		}
	}

	// Authorize all four in join order
	for _, pending := range testutil.GetGame(t, st, id).Requests {
		req := authedRequest(t, "POST", "/api/authorize", adminToken, models.AuthorizeRequest{GameID: id, UserID: pending.ID})
		w := httptest.NewRecorder()
		h.Authorize(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("authorize %s failed: %d", pending.Name, w.Code)
		}
	}

	// Start
	start := func(token string) *httptest.ResponseRecorder {
		req := authedRequest(t, "POST", "/api/start/"+strconv.FormatInt(id, 10), token, nil)
		req.SetPathValue("gameID", strconv.FormatInt(id, 10))
		w := httptest.NewRecorder()
		h.Start(w, req)
		return w
	}
	if w := start(adminToken); w.Code != http.StatusOK {
		t.Fatalf("start failed: %d (%s)", w.Code, w.Body.String())
	}

	g := testutil.GetGame(t, st, id)
	if !g.HasStarted {
		t.Fatal("hasStarted not set")
	}
	if len(g.Players) != 4 {
		t.Fatalf("players = %d, want 4", len(g.Players))
	}
	if len(g.Requests) != 0 || len(g.JoinedUsers) != 0 {
		t.Error("requests/joinedUsers not cleared")
	}

	sheriffs := 0
	for _, p := range g.Players {
		if p.Role.Name == models.RoleSheriff {
			sheriffs++
			if !p.IsRevealed || !p.IsActive {
				t.Error("sheriff must be revealed and active")
			}
		} else if p.IsRevealed {
			t.Errorf("%s must start hidden", p.Name)
		}
	}
	if sheriffs != 1 {
		t.Errorf("%d sheriffs, want exactly 1", sheriffs)
	}

	// Start is irreversible
	if w := start(adminToken); w.Code != http.StatusConflict {
		t.Errorf("restart status = %d, want 409", w.Code)
	}
}

func TestStartPlayerCountViaHandler(t *testing.T) {
	st := testutil.SetupTestStore(t)
	cfg := testutil.GetTestConfig()
	h := NewGameHandler(st, cfg)

	_, adminToken := testutil.CreateTestUser(t, st, cfg, "alice")
	id := createGame(t, h, adminToken)

	// Admin plus two others: three joined players is too few
	joinGame(t, h, adminToken, id)
	for _, name := range []string{"bob", "carol"} {
		_, token := testutil.CreateTestUser(t, st, cfg, name)
		joinGame(t, h, token, id)
		pending := testutil.GetGame(t, st, id).Requests
		req := authedRequest(t, "POST", "/api/authorize", adminToken, models.AuthorizeRequest{GameID: id, UserID: pending[len(pending)-1].ID})
		w := httptest.NewRecorder()
		h.Authorize(w, req)
	}

	req := authedRequest(t, "POST", "/api/start/"+strconv.FormatInt(id, 10), adminToken, nil)
	req.SetPathValue("gameID", strconv.FormatInt(id, 10))
	w := httptest.NewRecorder()
	h.Start(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("start with 3 players status = %d, want 409", w.Code)
	}
	if testutil.GetGame(t, st, id).HasStarted {
		t.Error("failed start mutated the game")
	}
}

func TestGetGame(t *testing.T) {
	st := testutil.SetupTestStore(t)
	cfg := testutil.GetTestConfig()
	h := NewGameHandler(st, cfg)

	_, token := testutil.CreateTestUser(t, st, cfg, "alice")
	id := createGame(t, h, token)

	req := authedRequest(t, "GET", "/api/game/"+strconv.FormatInt(id, 10), token, nil)
	req.SetPathValue("gameID", strconv.FormatInt(id, 10))
	w := httptest.NewRecorder()
	h.Get(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("get game status = %d", w.Code)
	}
	var g models.Game
	if err := json.NewDecoder(w.Body).Decode(&g); err != nil {
		t.Fatalf("Failed to decode game: %v", err)
	}
	if g.ID != id || g.Admin != "alice" {
		t.Errorf("unexpected game: id=%d admin=%s", g.ID, g.Admin)
	}

	req = authedRequest(t, "GET", "/api/game/999", token, nil)
	req.SetPathValue("gameID", "999")
	w = httptest.NewRecorder()
	h.Get(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown game status = %d, want 404", w.Code)
	}
}

func TestListGames(t *testing.T) {
	st := testutil.SetupTestStore(t)
	cfg := testutil.GetTestConfig()
	h := NewGameHandler(st, cfg)

	_, token := testutil.CreateTestUser(t, st, cfg, "alice")
	createGame(t, h, token)
	createGame(t, h, token)

	req := authedRequest(t, "GET", "/api/games", token, nil)
	w := httptest.NewRecorder()
	h.List(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	var summaries []models.GameSummary
	if err := json.NewDecoder(w.Body).Decode(&summaries); err != nil {
		t.Fatalf("Failed to decode summaries: %v", err)
	}
	if len(summaries) != 2 {
		t.Errorf("listed %d games, want 2", len(summaries))
	}
}
