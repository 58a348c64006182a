// Copyright (c) 2026 Tamas Bodnar.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package game

import (
	"math/rand/v2"

	"github.com/tbodnar/saloon/catalog"
	"github.com/tbodnar/saloon/models"
)

// BuildDeck returns a fresh full deck in catalog order. Every call yields
// all 80 cards with no duplicates and no omissions.
func BuildDeck() []models.Card {
	return catalog.DeckTemplate()
}

// Shuffle randomizes the deck in place. No seed is persisted; callers must
// not rely on reproducible order.
func Shuffle(deck []models.Card) {
	rand.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
}

// Deal removes exactly n cards from the front of the deck and returns the
// hand together with the remainder. Dealing is consuming: sequential deals
// against the returned remainder never hand out the same card twice.
func Deal(deck []models.Card, n int) (hand, rest []models.Card, err error) {
	if n < 0 || n > len(deck) {
		return nil, deck, ErrInsufficientCards
	}
	hand = make([]models.Card, n)
	copy(hand, deck[:n])
	return hand, deck[n:], nil
}
