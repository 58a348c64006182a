// Copyright (c) 2026 Tamas Bodnar.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package game

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tbodnar/saloon/catalog"
	"github.com/tbodnar/saloon/models"
)

// The session lifecycle is Recruiting (hasStarted=false) -> Active
// (hasStarted=true) -> Finished (terminal). All transitions below are pure
// functions over *models.Game; callers must run them inside an atomic
// store update so concurrent transitions on the same game serialize.

// NewGame creates a recruiting game administered by admin.
func NewGame(id int64, admin string) models.Game {
	return models.Game{
		ID:             id,
		Admin:          admin,
		Requests:       []models.GameUser{},
		JoinedUsers:    []models.GameUser{},
		Players:        []models.Player{},
		CommunityCards: []models.Card{},
		UsedCards:      []models.Card{},
		UnusedCards:    []models.Card{},
		Logs:           []models.LogEntry{},
	}
}

// RequestJoin records a join request. The admin is auto-approved straight
// into joinedUsers; everyone else lands in requests until authorized.
// Calling it again for a user already present anywhere is a no-op, not an
// error. Joins are rejected once the game is active.
func RequestJoin(g *models.Game, user models.GameUser) error {
	if g.IsFinished {
		return ErrGameFinished
	}
	if g.HasStarted {
		return ErrGameStarted
	}
	if containsUser(g.Requests, user.Name) || containsUser(g.JoinedUsers, user.Name) {
		return nil
	}
	if user.Name == g.Admin {
		g.JoinedUsers = append(g.JoinedUsers, user)
	} else {
		g.Requests = append(g.Requests, user)
	}
	return nil
}

// Authorize moves the user with targetID from requests to joinedUsers.
// Only the admin may authorize.
func Authorize(g *models.Game, actor string, targetID int64) error {
	if actor != g.Admin {
		return ErrForbidden
	}
	for i, u := range g.Requests {
		if u.ID == targetID {
			g.Requests = append(g.Requests[:i], g.Requests[i+1:]...)
			g.JoinedUsers = append(g.JoinedUsers, u)
			return nil
		}
	}
	return ErrRequestNotFound
}

// Remove takes targetName out of joinedUsers. Players may leave on their
// own; the admin may kick anyone. Pending requests are untouched.
func Remove(g *models.Game, actor, targetName string) error {
	if actor != targetName && actor != g.Admin {
		return ErrForbidden
	}
	for i, u := range g.JoinedUsers {
		if u.Name == targetName {
			g.JoinedUsers = append(g.JoinedUsers[:i], g.JoinedUsers[i+1:]...)
			return nil
		}
	}
	return ErrPlayerNotFound
}

// Start deals the game out: roles and characters are assigned to the
// joined users in join order, each player draws a hand equal to their
// starting life from one shuffled deck, and the remainder becomes the
// unused pile. The transition is irreversible; a started game can never
// return to recruiting. Validation happens up front so a failed start
// leaves the game untouched.
func Start(g *models.Game, actor string) error {
	if actor != g.Admin {
		return ErrForbidden
	}
	if g.IsFinished {
		return ErrGameFinished
	}
	if g.HasStarted {
		return ErrGameStarted
	}
	count := len(g.JoinedUsers)
	if count < catalog.MinPlayers || count > catalog.MaxPlayers {
		return ErrInvalidPlayerCount
	}

	roles, characters, err := Assign(count)
	if err != nil {
		return err
	}

	deck := BuildDeck()
	Shuffle(deck)

	players := make([]models.Player, count)
	for i, u := range g.JoinedUsers {
		role := roles[i]
		character := characters[i]
		life := LifeFor(role, character)

		hand, rest, err := Deal(deck, life)
		if err != nil {
			return err
		}
		deck = rest

		isSheriff := role.Name == models.RoleSheriff
		players[i] = models.Player{
			Name:           u.Name,
			Role:           role,
			Character:      character,
			Life:           life,
			IsRevealed:     isSheriff,
			IsActive:       isSheriff,
			CardsInHand:    hand,
			InventoryCards: []models.Card{},
			PlayedCards:    []models.Card{},
		}
	}

	g.HasStarted = true
	g.Requests = []models.GameUser{}
	g.JoinedUsers = []models.GameUser{}
	g.Players = players
	g.UnusedCards = deck
	appendLog(g, actor, fmt.Sprintf("game started with %d players", count))
	return nil
}

// Finish moves the game to its terminal state. Only the admin may finish;
// finishing an already finished game is a no-op.
func Finish(g *models.Game, actor string) error {
	if actor != g.Admin {
		return ErrForbidden
	}
	if g.IsFinished {
		return nil
	}
	g.IsFinished = true
	appendLog(g, actor, "game finished")
	return nil
}

// FindPlayer returns the player with the given name, or nil.
func FindPlayer(g *models.Game, name string) *models.Player {
	for i := range g.Players {
		if g.Players[i].Name == name {
			return &g.Players[i]
		}
	}
	return nil
}

func containsUser(users []models.GameUser, name string) bool {
	for _, u := range users {
		if u.Name == name {
			return true
		}
	}
	return false
}

func appendLog(g *models.Game, actor, message string) {
	g.Logs = append(g.Logs, models.LogEntry{
		ID:      uuid.NewString(),
		At:      time.Now().UTC(),
		Actor:   actor,
		Message: message,
	})
}
