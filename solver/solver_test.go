package solver

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardspan/kspider/cards"
	"github.com/cardspan/kspider/game"
	"github.com/cardspan/kspider/rules"
)

// foundationReadyRules and foundationReadyDeck build a single-column,
// draw-one deal where the lone tableau card is the ace of spades and the
// hand holds the other 51 cards ordered rank-then-suit, so every draw
// hands the waste exactly the next card each foundation needs (§8
// scenario E1). Kept deliberately small so the winning line can be
// traced by hand instead of by running the solver.
func foundationReadyRules() rules.Rules {
	return rules.Rules{DrawSize: 1, TableauSize: 1}
}

func foundationReadyDeck() cards.Deck {
	deck := cards.Deck{cards.NewCard(cards.Ace, cards.Spades)}
	for v := cards.Ace; v <= cards.King; v++ {
		for _, s := range cards.Suits {
			if v == cards.Ace && s == cards.Spades {
				continue // already dealt as the tableau's face-up card
			}
			deck = append(deck, cards.NewCard(v, s))
		}
	}
	return deck
}

func TestSolveWinsOnFoundationReadyDeal(t *testing.T) {
	deck := foundationReadyDeck()
	g := game.NewGame(foundationReadyRules(), deck)

	s := New(0)
	result, err := s.Solve(context.Background(), g, 10*time.Second)
	require.NoError(t, err)

	assert.Equal(t, StatusWin, result.Status)
	assert.NotNil(t, result.Moves)
}

func TestSolveSoundnessReplaysCleanly(t *testing.T) {
	deck := foundationReadyDeck()
	g := game.NewGame(foundationReadyRules(), deck)

	s := New(0)
	result, err := s.Solve(context.Background(), g, 10*time.Second)
	require.NoError(t, err)
	require.Equal(t, StatusWin, result.Status)

	replay := game.NewGame(foundationReadyRules(), deck)
	for i, m := range result.Moves {
		require.True(t, replay.IsValid(m), "move %d (%s) invalid on replay", i, m)
		replay.Apply(m)
	}
	assert.True(t, replay.IsWon())
}

func TestSolveStuckPositionLoses(t *testing.T) {
	// Build a position with no hand/waste and a tableau that is fully
	// face-up but cannot progress toward any foundation (§8 scenario E2).
	g := &game.Game{
		Rules:   rules.Rules{DrawSize: 3, TableauSize: 2},
		Tableau: make([]game.Column, 2),
	}
	g.Foundation = [4]int8{-1, -1, -1, -1}
	g.Tableau[0].FaceUp = []cards.Card{cards.NewCard(cards.Value(7), cards.Hearts)}
	g.Tableau[1].FaceUp = []cards.Card{cards.NewCard(cards.Value(6), cards.Hearts)}

	s := New(0)
	result, err := s.Solve(context.Background(), g, 2*time.Second)
	require.NoError(t, err)

	assert.Equal(t, StatusLose, result.Status)
	assert.Nil(t, result.Moves)
	assert.Greater(t, result.MovesConsidered, uint64(0))
}

func TestSolveTimeoutReportsTimedOut(t *testing.T) {
	g := game.NewGame(rules.Default(), cards.NewOrderedDeck())
	s := New(0)
	result, err := s.Solve(context.Background(), g, 1*time.Nanosecond)
	require.NoError(t, err)
	assert.True(t, result.TimedOut)
	assert.Equal(t, StatusTimeout, result.Status)
}
