package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCardStringRoundTrip(t *testing.T) {
	for _, s := range []Suit{Spades, Hearts, Diamonds, Clubs} {
		for v := Ace; v <= King; v++ {
			c := NewCard(v, s)
			parsed, err := ParseCard(c.String())
			assert.NoError(t, err)
			assert.Equal(t, c, parsed)
		}
	}
}

func TestCardColor(t *testing.T) {
	tests := []struct {
		card  Card
		black bool
	}{
		{NewCard(Ace, Spades), true},
		{NewCard(Ace, Clubs), true},
		{NewCard(Ace, Hearts), false},
		{NewCard(Ace, Diamonds), false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.black, tc.card.Black())
		assert.Equal(t, !tc.black, tc.card.Red())
	}
}

func TestParseCardErrors(t *testing.T) {
	_, err := ParseCard("A")
	assert.Error(t, err)

	_, err = ParseCard("XS")
	assert.Error(t, err)

	_, err = ParseCard("AX")
	assert.Error(t, err)
}

func TestParseCardKnownValues(t *testing.T) {
	c, err := ParseCard("TS")
	assert.NoError(t, err)
	assert.Equal(t, Value(9), c.Value())
	assert.Equal(t, Spades, c.Suit())

	c, err = ParseCard("KH")
	assert.NoError(t, err)
	assert.Equal(t, King, c.Value())
	assert.Equal(t, Hearts, c.Suit())
}
