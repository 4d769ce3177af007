package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cardspan/kspider/cards"
	"github.com/cardspan/kspider/move"
)

func TestApplyWasteToFoundation(t *testing.T) {
	g := emptyGame(1)
	g.Waste = []cards.Card{cards.NewCard(cards.Ace, cards.Hearts)}

	g.Apply(move.NewWasteToFoundation())

	assert.Empty(t, g.Waste)
	assert.Equal(t, int8(cards.Ace), g.Foundation[suitIndex(cards.Hearts)])
}

func TestApplyWasteToTableau(t *testing.T) {
	g := emptyGame(1)
	g.Tableau[0].FaceUp = []cards.Card{cards.NewCard(cards.Value(9), cards.Hearts)}
	nine := cards.NewCard(cards.Value(8), cards.Spades)
	g.Waste = []cards.Card{nine}

	g.Apply(move.NewWasteToTableau(0))

	assert.Empty(t, g.Waste)
	assert.Equal(t, nine, g.Tableau[0].FaceUp[len(g.Tableau[0].FaceUp)-1])
}

func TestApplyTableauToTableauMovesPartialRun(t *testing.T) {
	g := emptyGame(2)
	g.Tableau[0].FaceDown = []cards.Card{cards.NewCard(cards.Value(2), cards.Clubs)}
	g.Tableau[0].FaceUp = []cards.Card{
		cards.NewCard(cards.Value(9), cards.Clubs),
		cards.NewCard(cards.Value(8), cards.Hearts),
	}
	g.Tableau[1].FaceUp = []cards.Card{cards.NewCard(cards.Value(9), cards.Spades)}

	g.Apply(move.NewTableauToTableau(0, 1, 1))

	assert.Len(t, g.Tableau[0].FaceUp, 1) // only the black 10 remains
	assert.Len(t, g.Tableau[1].FaceUp, 2)
	assert.Equal(t, cards.NewCard(cards.Value(8), cards.Hearts), g.Tableau[1].FaceUp[1])
}

func TestApplyFlipsExposedCardOnEmptyFaceUp(t *testing.T) {
	g := emptyGame(1)
	g.Tableau[0].FaceDown = []cards.Card{cards.NewCard(cards.Value(4), cards.Diamonds)}
	g.Tableau[0].FaceUp = []cards.Card{}

	g.postMoveFlip()

	assert.Equal(t, cards.NewCard(cards.Value(4), cards.Diamonds), g.Tableau[0].FaceUp[0])
	assert.Empty(t, g.Tableau[0].FaceDown)
}

func TestApplyFoundationToTableau(t *testing.T) {
	g := emptyGame(2)
	suitIdx := suitIndex(cards.Hearts)
	g.Foundation[suitIdx] = int8(cards.Value(8)) // 9 of hearts on top
	g.Tableau[1].FaceUp = []cards.Card{cards.NewCard(cards.Value(9), cards.Spades)}

	g.Apply(move.NewFoundationToTableau(suitIdx, 1))

	assert.Equal(t, int8(cards.Value(7)), g.Foundation[suitIdx])
	assert.Equal(t, cards.NewCard(cards.Value(8), cards.Hearts), g.Tableau[1].FaceUp[len(g.Tableau[1].FaceUp)-1])
}

func TestApplyDrawWithoutRecycle(t *testing.T) {
	g := emptyGame(1)
	g.Rules.DrawSize = 3
	g.Hand = []cards.Card{
		cards.NewCard(cards.Ace, cards.Spades),
		cards.NewCard(cards.Value(1), cards.Spades),
		cards.NewCard(cards.Value(2), cards.Spades),
		cards.NewCard(cards.Value(3), cards.Spades),
	}

	g.Apply(move.NewDraw())

	assert.Len(t, g.Hand, 1)
	assert.Len(t, g.Waste, 3)
	assert.Equal(t, cards.NewCard(cards.Value(2), cards.Spades), g.Waste[2])
}
