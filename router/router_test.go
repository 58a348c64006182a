// Copyright (c) 2026 Tamas Bodnar.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tbodnar/saloon/testutil"
)

func TestHealthEndpoint(t *testing.T) {
	st := testutil.SetupTestStore(t)
	cfg := testutil.GetTestConfig()
	mux := NewRouter(st, cfg)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	st := testutil.SetupTestStore(t)
	cfg := testutil.GetTestConfig()
	mux := NewRouter(st, cfg)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	expected := "saloon API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestRouteExistence(t *testing.T) {
	st := testutil.SetupTestStore(t)
	cfg := testutil.GetTestConfig()
	mux := NewRouter(st, cfg)

	// Routes should dispatch to a handler; auth and validation errors
	// are fine, 405 means the route is missing
	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/"},

		{"POST", "/api/signup"},
		{"POST", "/api/login"},

		{"POST", "/api/game"},
		{"GET", "/api/games"},
		{"GET", "/api/game/1"},
		{"POST", "/api/join"},
		{"POST", "/api/authorize"},
		{"DELETE", "/api/game/1/somebody"},
		{"POST", "/api/start/1"},

		{"POST", "/api/game/1/somebody/life"},
		{"POST", "/api/game/1/move"},
		{"POST", "/api/game/1/reveal"},
		{"DELETE", "/api/game/1/finish"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route %s %s returned 405, expected route handler to exist", tc.method, tc.path)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	st := testutil.SetupTestStore(t)
	cfg := testutil.GetTestConfig()
	mux := NewRouter(st, cfg)

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},      // Only GET is defined
		{"DELETE", "/api/games"}, // Only GET is defined
		{"GET", "/api/join"},     // Only POST is defined
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestUnknownPathNotFound(t *testing.T) {
	st := testutil.SetupTestStore(t)
	cfg := testutil.GetTestConfig()
	mux := NewRouter(st, cfg)

	// The root route matches "/" exactly; it must not swallow every
	// unmatched GET path
	for _, path := range []string{"/nope", "/api", "/api/nope", "/health/extra"} {
		req := httptest.NewRequest("GET", path, nil)
		w := httptest.NewRecorder()

		mux.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("GET %s status = %d, want 404", path, w.Code)
		}
	}
}

func TestFinishRouteWinsOverRemove(t *testing.T) {
	st := testutil.SetupTestStore(t)
	cfg := testutil.GetTestConfig()
	mux := NewRouter(st, cfg)

	// "finish" is a literal segment, so it must not be captured by the
	// DELETE /api/game/{gameID}/{username} wildcard. Both paths reach a
	// handler; unauthenticated they both answer 401, never 405.
	for _, path := range []string{"/api/game/1/finish", "/api/game/1/bob"} {
		req := httptest.NewRequest("DELETE", path, nil)
		w := httptest.NewRecorder()

		mux.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("DELETE %s status = %d, want 401", path, w.Code)
		}
	}
}
