// Copyright (c) 2026 Tamas Bodnar.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package game implements the session rules: join arbitration, the deal,
and in-game turn actions.

All functions here mutate a *models.Game in place and return sentinel
errors the HTTP layer maps onto status codes. None of them touch the
store; callers wrap them in an atomic store update.

# Lifecycle

A game recruits until the admin starts it:

	game.RequestJoin(g, user)      // queue a join request
	game.Authorize(g, admin, id)   // admin approves one request
	game.Start(g, admin)           // deal roles, characters, hands

Start validates everything up front, so a failed start leaves the game
untouched. Finish is admin-only and idempotent; a finished game rejects
every further mutation.

# Turn Actions

Actions implement a single-method interface:

	type Action interface {
		Apply(g *models.Game) error
	}

LifeChange and CardMove require the actor to hold the turn (IsActive).
RevealRole only requires an active game. FinishGame delegates to Finish.
Every applied action appends a log entry.
*/
package game
