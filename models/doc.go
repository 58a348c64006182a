// Copyright (c) 2026 Tamas Bodnar.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - SignupRequest: name, password
  - LoginRequest: name, password
  - JoinGameRequest: id
  - AuthorizeRequest: gameId, userId
  - LifeRequest: delta (+1 or -1)
  - MoveCardRequest: from, to, index (zone addresses)

# Response Types

Types for JSON responses:

  - SignupResponse: id
  - LoginResponse: token
  - CreateGameResponse: id
  - JoinGameResponse: id
  - GameSummary: compact lobby listing
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - User: stored account with bcrypt password hash
  - GameUser: the public (id, name) projection of a user
  - Game: one session, from recruiting through finished
  - Player: a seated player with role, character, life and card piles
  - Card, Character, Role: catalog entries
  - Zone: addresses one card pile, either shared or per-player
  - LogEntry: one line of the append-only game log

# Constants

Role names:

	RoleSheriff  = "Sheriff"
	RoleDeputy   = "Deputy"
	RoleRenegade = "Renegade"
	RoleBandit   = "Bandit"

Zone piles:

	ZoneHand      = "hand"
	ZoneInventory = "inventory"
	ZonePlayed    = "played"
	ZoneCommunity = "community"
	ZoneUsed      = "used"
	ZoneUnused    = "unused"

Life policies:

	LifePolicyReject = "reject"
	LifePolicyClamp  = "clamp"
*/
package models
