package cards

import "math/rand"

// Deck is an ordered sequence of 52 distinct cards, used only for the
// initial deal (§3). Index 0 is the top.
type Deck []Card

// NewOrderedDeck returns the 52 cards in a fixed reference order: for each
// suit in cards.Suits order, Ace through King.
func NewOrderedDeck() Deck {
	d := make(Deck, 0, 52)
	for _, s := range Suits {
		for v := Ace; v <= King; v++ {
			d = append(d, NewCard(v, s))
		}
	}
	return d
}

// Shuffle permutes the deck in place using the supplied random source via a
// Fisher-Yates shuffle. The source of randomness is injected so this stays
// a pure, deterministic function of its input; the CSPRNG-backed stream
// generator lives in the shuffle package.
func (d Deck) Shuffle(r *rand.Rand) {
	for i := len(d) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		d[i], d[j] = d[j], d[i]
	}
}

// String renders the deck as the 104-character driver wire form (§6):
// each card's two-character canonical form, concatenated, no separator.
func (d Deck) String() string {
	buf := make([]byte, 0, len(d)*2)
	for _, c := range d {
		buf = append(buf, c.String()...)
	}
	return string(buf)
}

// ParseDeck parses a 104-character line into 52 cards (§6 deck input).
func ParseDeck(line string) (Deck, error) {
	if len(line) != 104 {
		return nil, &ErrMalformedDeck{Line: line, Reason: "want 104 characters"}
	}
	d := make(Deck, 0, 52)
	seen := make(map[Card]bool, 52)
	for i := 0; i < 104; i += 2 {
		c, err := ParseCard(line[i : i+2])
		if err != nil {
			return nil, &ErrMalformedDeck{Line: line, Reason: err.Error()}
		}
		if seen[c] {
			return nil, &ErrMalformedDeck{Line: line, Reason: "duplicate card " + c.String()}
		}
		seen[c] = true
		d = append(d, c)
	}
	return d, nil
}

// ErrMalformedDeck reports a deck line that could not be parsed (§7 Input
// malformed): wrong length, a card the driver could not recognize, or a
// duplicate card.
type ErrMalformedDeck struct {
	Line   string
	Reason string
}

func (e *ErrMalformedDeck) Error() string {
	return "malformed deck (" + e.Reason + ")"
}
