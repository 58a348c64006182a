// Copyright (c) 2026 Tamas Bodnar.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Role name constants
const (
	RoleSheriff  = "Sheriff"
	RoleDeputy   = "Deputy"
	RoleRenegade = "Renegade"
	RoleBandit   = "Bandit"
)

// Zone name constants. Hand, inventory and played belong to a player;
// community, used and unused belong to the game itself.
const (
	ZoneHand      = "hand"
	ZoneInventory = "inventory"
	ZonePlayed    = "played"
	ZoneCommunity = "community"
	ZoneUsed      = "used"
	ZoneUnused    = "unused"
)

// Life policy constants (what a life change dropping below zero does)
const (
	LifePolicyReject = "reject"
	LifePolicyClamp  = "clamp"
)

// Request types

type SignupRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type JoinGameRequest struct {
	ID int64 `json:"id"`
}

type AuthorizeRequest struct {
	GameID int64 `json:"gameId"`
	UserID int64 `json:"userId"`
}

type LifeRequest struct {
	Delta int `json:"delta"`
}

// Zone addresses a card pile. Player is empty for game-level piles.
type Zone struct {
	Player string `json:"player,omitempty"`
	Pile   string `json:"pile"`
}

type MoveCardRequest struct {
	From  Zone `json:"from"`
	To    Zone `json:"to"`
	Index int  `json:"index"`
}

// Response types

type SignupResponse struct {
	ID int64 `json:"id"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type CreateGameResponse struct {
	ID int64 `json:"id"`
}

type JoinGameResponse struct {
	ID int64 `json:"id"`
}

type GameSummary struct {
	ID           int64  `json:"id"`
	Admin        string `json:"admin"`
	HasStarted   bool   `json:"hasStarted"`
	IsFinished   bool   `json:"isFinished"`
	JoinedCount  int    `json:"joinedCount"`
	PendingCount int    `json:"pendingCount"`
}

// Domain types

// User is a registered account. The bcrypt hash stays in the stored
// collection and is never serialized into API responses.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// Ref returns the lightweight reference kept in game rosters.
func (u User) Ref() GameUser {
	return GameUser{ID: u.ID, Name: u.Name}
}

// GameUser is a user reference held in a game's requests/joinedUsers lists.
type GameUser struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Card struct {
	Name string `json:"name"`
	Suit string `json:"suit"`
	Rank string `json:"rank"`
}

type Character struct {
	Name string `json:"name"`
	Life int    `json:"life"`
}

type Role struct {
	Name string `json:"name"`
}

type Player struct {
	Name           string    `json:"name"`
	Role           Role      `json:"role"`
	Character      Character `json:"character"`
	Life           int       `json:"life"`
	IsRevealed     bool      `json:"isRevealed"`
	IsActive       bool      `json:"isActive"`
	CardsInHand    []Card    `json:"cardsInHand"`
	InventoryCards []Card    `json:"inventoryCards"`
	PlayedCards    []Card    `json:"playedCards"`
}

type LogEntry struct {
	ID      string    `json:"id"`
	At      time.Time `json:"at"`
	Actor   string    `json:"actor"`
	Message string    `json:"message"`
}

type Game struct {
	ID             int64      `json:"id"`
	Admin          string     `json:"admin"`
	HasStarted     bool       `json:"hasStarted"`
	IsFinished     bool       `json:"isFinished"`
	Requests       []GameUser `json:"requests"`
	JoinedUsers    []GameUser `json:"joinedUsers"`
	Players        []Player   `json:"players"`
	CommunityCards []Card     `json:"communityCards"`
	UsedCards      []Card     `json:"usedCards"`
	UnusedCards    []Card     `json:"unusedCards"`
	Logs           []LogEntry `json:"logs"`
}

// Summary projects the lobby-listing view of a game.
func (g Game) Summary() GameSummary {
	return GameSummary{
		ID:           g.ID,
		Admin:        g.Admin,
		HasStarted:   g.HasStarted,
		IsFinished:   g.IsFinished,
		JoinedCount:  len(g.JoinedUsers),
		PendingCount: len(g.Requests),
	}
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
