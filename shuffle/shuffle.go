// Package shuffle generates CSPRNG-backed deck streams for the ancillary
// shuffle CLI. It uses lukechampine.com/frand rather than math/rand so
// output deck lines are not reproducible from an observed prefix, the
// same property the teacher's zobrist/hash.go and endgame/negamax's
// LazySMP root shuffling rely on frand for.
package shuffle

import (
	"lukechampine.com/frand"

	"github.com/cardspan/kspider/cards"
)

// One returns a single freshly shuffled 52-card deck.
func One() cards.Deck {
	d := cards.NewOrderedDeck()
	frand.Shuffle(len(d), func(i, j int) {
		d[i], d[j] = d[j], d[i]
	})
	return d
}

// Stream returns a channel that yields n freshly shuffled decks and then
// closes. n <= 0 means "run until the caller stops reading" is not
// supported here; callers that want an unbounded stream should loop
// calling One directly.
func Stream(n int) <-chan cards.Deck {
	out := make(chan cards.Deck)
	go func() {
		defer close(out)
		for i := 0; i < n; i++ {
			out <- One()
		}
	}()
	return out
}
