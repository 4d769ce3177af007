package game

import (
	"sort"
	"strconv"
	"strings"

	"github.com/cardspan/kspider/cards"
)

// CanonicalID produces the compact key described in §4.2: positions the
// solver should treat as equivalent map to the same key. canFlipDeck is
// folded in because it is part of the solver's search-state, not just the
// board position (§4.5).
func (g *Game) CanonicalID(canFlipDeck bool) string {
	var b strings.Builder

	if canFlipDeck {
		b.WriteByte('1')
	} else {
		b.WriteByte('0')
	}
	b.WriteByte('|')

	wasteTop, hasWasteTop := g.WasteTop()
	if hasWasteTop {
		b.WriteString(wasteTop.String())
	}
	b.WriteByte('|')

	for i, c := range g.accessibleDrawCards(wasteTop, hasWasteTop) {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(c.String())
	}
	b.WriteByte('|')

	for i := range g.Foundation {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(int(g.Foundation[i]) + 1))
	}
	b.WriteByte('|')

	cols := make([]string, len(g.Tableau))
	for i := range g.Tableau {
		cols[i] = g.Tableau[i].canonicalString(i)
	}
	sort.Strings(cols)
	b.WriteString(strings.Join(cols, ";"))

	return b.String()
}

// accessibleDrawCards computes the set of cards that would be revealed as
// waste tops by future DRAWs starting from the current (hand, waste)
// without intervening plays from the waste (§4.2 item 3). Order is
// insertion order; membership is a set (duplicates from the waste-top /
// wrap-around overlap are suppressed).
func (g *Game) accessibleDrawCards(wasteTop cards.Card, hasWasteTop bool) []cards.Card {
	newDeck := make([]cards.Card, 0, len(g.Hand)+len(g.Waste))
	for i := len(g.Waste) - 1; i >= 0; i-- {
		newDeck = append(newDeck, g.Waste[i])
	}
	newDeck = append(newDeck, g.Hand...)

	seen := make(map[cards.Card]bool, 8)
	out := make([]cards.Card, 0, 8)
	add := func(c cards.Card) {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}

	if hasWasteTop {
		add(wasteTop)
	}
	if len(newDeck) > 0 {
		add(newDeck[0])
		step := g.Rules.DrawSize
		if step < 1 {
			step = 1
		}
		for i := len(newDeck) - step; i >= 0; i -= step {
			add(newDeck[i])
		}
	}
	return out
}

// canonicalString serializes one column per §4.2 item 5: "index ·
// face_down_length · face_up_concatenation" when any face-down cards
// exist, else just the face-up concatenation. index is folded in only
// when face-down cards exist, since an index-free empty-face-down column
// is already fully described by its (possibly empty) face-up run and
// columns are interchangeable up to relabeling.
func (c *Column) canonicalString(index int) string {
	if len(c.FaceDown) == 0 {
		return c.FaceUpKey()
	}
	return strconv.Itoa(index) + "." + strconv.Itoa(len(c.FaceDown)) + "." + c.FaceUpKey()
}
