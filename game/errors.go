// Copyright (c) 2026 Tamas Bodnar.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package game

import "errors"

var (
	// ErrForbidden means the actor is authenticated but not allowed to
	// perform the transition.
	ErrForbidden = errors.New("forbidden")

	// ErrGameNotFound means no game exists with the requested id.
	ErrGameNotFound = errors.New("game not found")

	// ErrPlayerNotFound means the named player is not part of the game.
	ErrPlayerNotFound = errors.New("player not found")

	// ErrRequestNotFound means the target user has no pending join request.
	ErrRequestNotFound = errors.New("join request not found")

	// ErrGameStarted means the transition is only valid before the deal.
	ErrGameStarted = errors.New("game already started")

	// ErrGameNotStarted means the transition requires an active game.
	ErrGameNotStarted = errors.New("game not started")

	// ErrGameFinished means the game has reached its terminal state.
	ErrGameFinished = errors.New("game finished")

	// ErrInvalidPlayerCount means the joined-player count is outside the
	// supported 4..7 range.
	ErrInvalidPlayerCount = errors.New("invalid player count")

	// ErrCatalogExhausted means the character catalog is smaller than the
	// table. Cannot happen with the built-in catalog.
	ErrCatalogExhausted = errors.New("character catalog exhausted")

	// ErrInsufficientCards means a deal asked for more cards than the deck
	// holds.
	ErrInsufficientCards = errors.New("insufficient cards in deck")

	// ErrLifeBelowZero means the life change was rejected by policy.
	ErrLifeBelowZero = errors.New("life cannot drop below zero")

	// ErrNotActivePlayer means the acting player does not hold the turn.
	ErrNotActivePlayer = errors.New("player is not active")

	// ErrInvalidZone means a card move referenced an unknown zone or an
	// out-of-range card index.
	ErrInvalidZone = errors.New("invalid card zone")
)
