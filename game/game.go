// Package game encapsulates the mutable Klondike position: hand (stock),
// waste, four foundations, and the tableau columns (§3, §4.1). A Game
// doesn't care who is playing it or why: the solver clones and mutates
// Games, and the driver constructs and replays them.
package game

import (
	"github.com/cardspan/kspider/cards"
	"github.com/cardspan/kspider/rules"
)

// noFoundationCard is the sentinel foundation height meaning "empty".
const noFoundationCard = -1

// Game is the mutable Klondike position (§3 Game state).
type Game struct {
	Rules      rules.Rules
	Hand       []cards.Card // top = index 0
	Waste      []cards.Card // top = last index
	Foundation [4]int8      // indexed by position in cards.Suits; -1 = empty
	Tableau    []Column
}

// NewGame deals a fresh Klondike position from a 52-card deck (§4.1
// Construction). The deck is consumed top-first (index 0 first) into the
// Klondike triangle; what remains stays in Hand in deal order.
func NewGame(r rules.Rules, deck cards.Deck) *Game {
	g := &Game{
		Rules:   r,
		Tableau: make([]Column, r.TableauSize),
	}
	for i := range g.Foundation {
		g.Foundation[i] = noFoundationCard
	}

	remaining := append(cards.Deck(nil), deck...)
	for col := 0; col < r.TableauSize; col++ {
		c := &g.Tableau[col]
		for i := 0; i < col; i++ {
			c.FaceDown = append(c.FaceDown, remaining[0])
			remaining = remaining[1:]
		}
		c.FaceUp = append(c.FaceUp, remaining[0])
		remaining = remaining[1:]
	}
	g.Hand = remaining
	return g
}

// suitIndex returns the fixed-order index of s within cards.Suits.
func suitIndex(s cards.Suit) int {
	for i, candidate := range cards.Suits {
		if candidate == s {
			return i
		}
	}
	return -1
}

// nextForFoundation returns the value a card of suit s must have to be
// accepted onto its foundation right now.
func (g *Game) nextForFoundation(s cards.Suit) cards.Value {
	return cards.Value(g.Foundation[suitIndex(s)] + 1)
}

// IsWon reports victory: hand, waste and every face-down stack empty
// (§4.1). Remaining face-up cards are trivially reducible to foundation
// plays from this point on.
func (g *Game) IsWon() bool {
	if len(g.Hand) != 0 || len(g.Waste) != 0 {
		return false
	}
	for i := range g.Tableau {
		if len(g.Tableau[i].FaceDown) != 0 {
			return false
		}
	}
	return true
}

// Clone deep-copies all mutable state. Rules is a small value type and is
// copied by value (§4.1 Clone).
func (g *Game) Clone() *Game {
	out := &Game{
		Rules:      g.Rules,
		Foundation: g.Foundation,
		Tableau:    make([]Column, len(g.Tableau)),
	}
	if len(g.Hand) > 0 {
		out.Hand = append([]cards.Card(nil), g.Hand...)
	}
	if len(g.Waste) > 0 {
		out.Waste = append([]cards.Card(nil), g.Waste...)
	}
	for i := range g.Tableau {
		out.Tableau[i] = g.Tableau[i].clone()
	}
	return out
}

// WasteTop returns the playable top of the waste pile, if any.
func (g *Game) WasteTop() (cards.Card, bool) {
	if len(g.Waste) == 0 {
		return 0, false
	}
	return g.Waste[len(g.Waste)-1], true
}
