package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cardspan/kspider/cards"
	"github.com/cardspan/kspider/move"
	"github.com/cardspan/kspider/rules"
)

func emptyGame(tableauSize int) *Game {
	g := &Game{
		Rules:   rules.Rules{DrawSize: 3, TableauSize: tableauSize},
		Tableau: make([]Column, tableauSize),
	}
	for i := range g.Foundation {
		g.Foundation[i] = noFoundationCard
	}
	return g
}

func TestIsValidDraw(t *testing.T) {
	g := emptyGame(1)
	assert.False(t, g.IsValid(move.NewDraw()))

	g.Hand = []cards.Card{cards.NewCard(cards.Ace, cards.Spades)}
	assert.True(t, g.IsValid(move.NewDraw()))
}

func TestIsValidWasteToFoundation(t *testing.T) {
	g := emptyGame(1)
	g.Waste = []cards.Card{cards.NewCard(cards.Ace, cards.Hearts)}
	assert.True(t, g.IsValid(move.NewWasteToFoundation()))

	g.Waste = []cards.Card{cards.NewCard(cards.Value(2), cards.Hearts)}
	assert.False(t, g.IsValid(move.NewWasteToFoundation()))
}

func TestIsValidWasteToTableauEmptyColumnNeedsKing(t *testing.T) {
	g := emptyGame(1)
	g.Waste = []cards.Card{cards.NewCard(cards.Value(5), cards.Clubs)}
	assert.False(t, g.IsValid(move.NewWasteToTableau(0)))

	g.Waste = []cards.Card{cards.NewCard(cards.King, cards.Clubs)}
	assert.True(t, g.IsValid(move.NewWasteToTableau(0)))
}

func TestIsValidWasteToTableauDescent(t *testing.T) {
	g := emptyGame(1)
	g.Tableau[0].FaceUp = []cards.Card{cards.NewCard(cards.Value(9), cards.Hearts)} // red 10
	g.Waste = []cards.Card{cards.NewCard(cards.Value(8), cards.Spades)}             // black 9: legal
	assert.True(t, g.IsValid(move.NewWasteToTableau(0)))

	g.Waste = []cards.Card{cards.NewCard(cards.Value(8), cards.Hearts)} // red 9: same color, illegal
	assert.False(t, g.IsValid(move.NewWasteToTableau(0)))
}

func TestIsValidTableauToFoundation(t *testing.T) {
	g := emptyGame(1)
	g.Tableau[0].FaceUp = []cards.Card{cards.NewCard(cards.Ace, cards.Diamonds)}
	assert.True(t, g.IsValid(move.NewTableauToFoundation(0)))

	g.Foundation[suitIndex(cards.Diamonds)] = int8(cards.Ace)
	g.Tableau[0].FaceUp = []cards.Card{cards.NewCard(cards.Value(5), cards.Diamonds)}
	assert.False(t, g.IsValid(move.NewTableauToFoundation(0)))
}

func TestIsValidTableauToTableau(t *testing.T) {
	g := emptyGame(2)
	g.Tableau[0].FaceUp = []cards.Card{
		cards.NewCard(cards.Value(9), cards.Clubs),
		cards.NewCard(cards.Value(8), cards.Hearts),
	}
	g.Tableau[1].FaceUp = []cards.Card{cards.NewCard(cards.Value(9), cards.Spades)}

	// moving the red 9 (row 1) onto the black 10 is legal.
	assert.True(t, g.IsValid(move.NewTableauToTableau(0, 1, 1)))
	// src == dst is always illegal.
	assert.False(t, g.IsValid(move.NewTableauToTableau(0, 1, 0)))
	// row out of range.
	assert.False(t, g.IsValid(move.NewTableauToTableau(0, 5, 1)))
}

func TestIsValidTableauToTableauEmptyDestNeedsKing(t *testing.T) {
	g := emptyGame(2)
	g.Tableau[0].FaceUp = []cards.Card{cards.NewCard(cards.Value(5), cards.Clubs)}
	assert.False(t, g.IsValid(move.NewTableauToTableau(0, 0, 1)))

	g.Tableau[0].FaceUp = []cards.Card{cards.NewCard(cards.King, cards.Clubs)}
	assert.True(t, g.IsValid(move.NewTableauToTableau(0, 0, 1)))
}

func TestIsValidFoundationToTableau(t *testing.T) {
	g := emptyGame(2)
	suitIdx := suitIndex(cards.Hearts)
	g.Foundation[suitIdx] = int8(cards.Value(8)) // foundation holds up through the 9 of hearts
	g.Tableau[1].FaceUp = []cards.Card{cards.NewCard(cards.Value(9), cards.Spades)} // black 10

	assert.True(t, g.IsValid(move.NewFoundationToTableau(suitIdx, 1)))

	g.Foundation[suitIdx] = noFoundationCard
	assert.False(t, g.IsValid(move.NewFoundationToTableau(suitIdx, 1)))
}

func TestIsValidUnknownKindIsFalse(t *testing.T) {
	g := emptyGame(1)
	assert.False(t, g.IsValid(move.Move{Kind: move.Kind(99)}))
}
