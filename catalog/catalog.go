// Copyright (c) 2026 Tamas Bodnar.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import "github.com/tbodnar/saloon/models"

// MinPlayers and MaxPlayers bound the supported table size. Outside this
// range the role table is undefined and a game cannot start.
const (
	MinPlayers = 4
	MaxPlayers = 7
)

// DeckSize is the number of cards in one full deck instance.
const DeckSize = 80

// roleOrder is the canonical role hand-out sequence. The role multiset for
// a table of p players is the length-p prefix: the Sheriff is always seated
// first, and each additional player past four adds Deputy, Bandit, Deputy.
var roleOrder = []string{
	models.RoleSheriff,
	models.RoleRenegade,
	models.RoleBandit,
	models.RoleBandit,
	models.RoleDeputy,
	models.RoleBandit,
	models.RoleDeputy,
}

// RolesFor returns the role sequence for a table of playerCount players,
// or false if the count is outside the supported range.
func RolesFor(playerCount int) ([]models.Role, bool) {
	if playerCount < MinPlayers || playerCount > MaxPlayers {
		return nil, false
	}
	roles := make([]models.Role, playerCount)
	for i := 0; i < playerCount; i++ {
		roles[i] = models.Role{Name: roleOrder[i]}
	}
	return roles, true
}

var characters = []models.Character{
	{Name: "Bart Cassidy", Life: 4},
	{Name: "Black Jack", Life: 4},
	{Name: "Calamity Janet", Life: 4},
	{Name: "El Gringo", Life: 3},
	{Name: "Jesse Jones", Life: 4},
	{Name: "Jourdonnais", Life: 4},
	{Name: "Kit Carlson", Life: 4},
	{Name: "Lucky Duke", Life: 4},
	{Name: "Paul Regret", Life: 3},
	{Name: "Pedro Ramirez", Life: 4},
	{Name: "Rose Doolan", Life: 4},
	{Name: "Sid Ketchum", Life: 4},
	{Name: "Slab the Killer", Life: 4},
	{Name: "Suzy Lafayette", Life: 4},
	{Name: "Vulture Sam", Life: 4},
	{Name: "Willy the Kid", Life: 4},
}

// Characters returns a fresh copy of the character catalog.
func Characters() []models.Character {
	out := make([]models.Character, len(characters))
	copy(out, characters)
	return out
}

const (
	spades   = "Spades"
	hearts   = "Hearts"
	diamonds = "Diamonds"
	clubs    = "Clubs"
)

// deckTemplate is the canonical 80-card deck in catalog order.
var deckTemplate = buildTemplate()

type cardRun struct {
	name  string
	suit  string
	ranks []string
}

func buildTemplate() []models.Card {
	runs := []cardRun{
		// Bang! x25
		{"Bang!", spades, []string{"A"}},
		{"Bang!", diamonds, []string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}},
		{"Bang!", clubs, []string{"2", "3", "4", "5", "6", "7", "8", "9"}},
		{"Bang!", hearts, []string{"Q", "K", "A"}},
		// Missed! x12
		{"Missed!", spades, []string{"2", "3", "4", "5", "6", "7", "8"}},
		{"Missed!", clubs, []string{"10", "J", "Q", "K", "A"}},
		// Beer x6
		{"Beer", hearts, []string{"6", "7", "8", "9", "10", "J"}},
		// Panic! x4
		{"Panic!", hearts, []string{"J", "Q", "A"}},
		{"Panic!", diamonds, []string{"8"}},
		// Cat Balou x4
		{"Cat Balou", hearts, []string{"K"}},
		{"Cat Balou", diamonds, []string{"9", "10", "J"}},
		// Stagecoach x2
		{"Stagecoach", spades, []string{"9", "9"}},
		// Wells Fargo x1
		{"Wells Fargo", hearts, []string{"3"}},
		// Gatling x1
		{"Gatling", hearts, []string{"10"}},
		// Duel x3
		{"Duel", diamonds, []string{"Q"}},
		{"Duel", spades, []string{"J"}},
		{"Duel", clubs, []string{"8"}},
		// Indians! x2
		{"Indians!", diamonds, []string{"K", "A"}},
		// General Store x2
		{"General Store", spades, []string{"Q"}},
		{"General Store", clubs, []string{"9"}},
		// Saloon x1
		{"Saloon", hearts, []string{"5"}},
		// Barrel x2
		{"Barrel", spades, []string{"Q", "K"}},
		// Scope x1
		{"Scope", spades, []string{"A"}},
		// Mustang x2
		{"Mustang", hearts, []string{"8", "9"}},
		// Jail x3
		{"Jail", spades, []string{"10", "J"}},
		{"Jail", hearts, []string{"4"}},
		// Dynamite x1
		{"Dynamite", hearts, []string{"2"}},
		// Volcanic x2
		{"Volcanic", spades, []string{"10"}},
		{"Volcanic", clubs, []string{"10"}},
		// Schofield x3
		{"Schofield", clubs, []string{"J", "Q"}},
		{"Schofield", spades, []string{"K"}},
		// Remington x1
		{"Remington", clubs, []string{"K"}},
		// Rev. Carabine x1
		{"Rev. Carabine", clubs, []string{"A"}},
		// Winchester x1
		{"Winchester", spades, []string{"8"}},
	}

	cards := make([]models.Card, 0, DeckSize)
	for _, run := range runs {
		for _, rank := range run.ranks {
			cards = append(cards, models.Card{Name: run.name, Suit: run.suit, Rank: rank})
		}
	}
	return cards
}

// DeckTemplate returns a fresh copy of the full deck in catalog order.
func DeckTemplate() []models.Card {
	out := make([]models.Card, len(deckTemplate))
	copy(out, deckTemplate)
	return out
}
