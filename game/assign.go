// Copyright (c) 2026 Tamas Bodnar.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package game

import (
	"math/rand/v2"

	"github.com/tbodnar/saloon/catalog"
	"github.com/tbodnar/saloon/models"
)

// Assign computes the role and character sequence for a table of
// playerCount players. Roles follow the fixed hand-out order (the Sheriff
// is always roles[0]); characters are distinct, sampled at random from the
// catalog. Assignment is positional: roles[i] and characters[i] belong to
// the i-th joined user in stored join order.
func Assign(playerCount int) ([]models.Role, []models.Character, error) {
	roles, ok := catalog.RolesFor(playerCount)
	if !ok {
		return nil, nil, ErrInvalidPlayerCount
	}

	pool := catalog.Characters()
	if len(pool) < playerCount {
		return nil, nil, ErrCatalogExhausted
	}
	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	return roles, pool[:playerCount], nil
}

// LifeFor returns the starting life for a role/character pairing. The
// Sheriff gets one bonus point over the character's base life.
func LifeFor(role models.Role, character models.Character) int {
	if role.Name == models.RoleSheriff {
		return character.Life + 1
	}
	return character.Life
}
