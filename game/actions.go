// Copyright (c) 2026 Tamas Bodnar.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package game

import (
	"fmt"

	"github.com/tbodnar/saloon/models"
)

// Action is one in-game turn action. Apply validates against the current
// game state and mutates it in place, appending to the game log. Callers
// must run Apply inside an atomic store update.
type Action interface {
	Apply(g *models.Game) error
}

// LifeChange adjusts a player's life total by Delta. Policy decides what a
// result below zero does: reject the action or clamp at zero.
type LifeChange struct {
	Actor  string
	Target string
	Delta  int
	Policy string
}

func (a LifeChange) Apply(g *models.Game) error {
	if err := requireActiveActor(g, a.Actor); err != nil {
		return err
	}
	target := FindPlayer(g, a.Target)
	if target == nil {
		return ErrPlayerNotFound
	}

	life := target.Life + a.Delta
	if life < 0 {
		if a.Policy != models.LifePolicyClamp {
			return ErrLifeBelowZero
		}
		life = 0
	}
	target.Life = life
	appendLog(g, a.Actor, fmt.Sprintf("life of %s changed by %+d to %d", a.Target, a.Delta, life))
	return nil
}

// CardMove relocates a single card between two named zones. The 80-card
// deck instance is conserved: the card leaves exactly one pile and enters
// exactly one other.
type CardMove struct {
	Actor string
	From  models.Zone
	To    models.Zone
	Index int
}

func (a CardMove) Apply(g *models.Game) error {
	if err := requireActiveActor(g, a.Actor); err != nil {
		return err
	}
	from, err := resolveZone(g, a.From)
	if err != nil {
		return err
	}
	to, err := resolveZone(g, a.To)
	if err != nil {
		return err
	}
	if a.Index < 0 || a.Index >= len(*from) {
		return ErrInvalidZone
	}

	card := (*from)[a.Index]
	*from = append((*from)[:a.Index], (*from)[a.Index+1:]...)
	*to = append(*to, card)
	appendLog(g, a.Actor, fmt.Sprintf("moved %s from %s to %s", card.Name, zoneLabel(a.From), zoneLabel(a.To)))
	return nil
}

// RevealRole turns the acting player's role face up. Revealing an already
// revealed role is a no-op.
type RevealRole struct {
	Actor string
}

func (a RevealRole) Apply(g *models.Game) error {
	if err := requireActive(g); err != nil {
		return err
	}
	player := FindPlayer(g, a.Actor)
	if player == nil {
		return ErrPlayerNotFound
	}
	if player.IsRevealed {
		return nil
	}
	player.IsRevealed = true
	appendLog(g, a.Actor, fmt.Sprintf("%s revealed role %s", a.Actor, player.Role.Name))
	return nil
}

// FinishGame ends the game. Admin only, idempotent, and also usable to
// abort a game that never started.
type FinishGame struct {
	Actor string
}

func (a FinishGame) Apply(g *models.Game) error {
	return Finish(g, a.Actor)
}

func requireActive(g *models.Game) error {
	if g.IsFinished {
		return ErrGameFinished
	}
	if !g.HasStarted {
		return ErrGameNotStarted
	}
	return nil
}

// requireActiveActor gates turn actions: the game must be active and the
// actor must be the player currently holding the turn.
func requireActiveActor(g *models.Game, actor string) error {
	if err := requireActive(g); err != nil {
		return err
	}
	player := FindPlayer(g, actor)
	if player == nil {
		return ErrPlayerNotFound
	}
	if !player.IsActive {
		return ErrNotActivePlayer
	}
	return nil
}

// resolveZone maps a zone address onto the backing card slice.
func resolveZone(g *models.Game, z models.Zone) (*[]models.Card, error) {
	switch z.Pile {
	case models.ZoneHand, models.ZoneInventory, models.ZonePlayed:
		player := FindPlayer(g, z.Player)
		if player == nil {
			return nil, ErrPlayerNotFound
		}
		switch z.Pile {
		case models.ZoneHand:
			return &player.CardsInHand, nil
		case models.ZoneInventory:
			return &player.InventoryCards, nil
		default:
			return &player.PlayedCards, nil
		}
	case models.ZoneCommunity:
		return &g.CommunityCards, nil
	case models.ZoneUsed:
		return &g.UsedCards, nil
	case models.ZoneUnused:
		return &g.UnusedCards, nil
	default:
		return nil, ErrInvalidZone
	}
}

func zoneLabel(z models.Zone) string {
	if z.Player != "" {
		return z.Player + "/" + z.Pile
	}
	return z.Pile
}
