package game

import (
	"github.com/cardspan/kspider/cards"
	"github.com/cardspan/kspider/move"
)

// Apply mutates g to reflect m. The caller must have already checked
// IsValid(m); Apply assumes it (§4.1, §7: "apply assumes pre-validated
// input").
func (g *Game) Apply(m move.Move) {
	g.apply(m)
	g.postMoveFlip()
}

func (g *Game) apply(m move.Move) {
	switch m.Kind {
	case move.Draw:
		g.draw()

	case move.WasteToFoundation:
		top, _ := g.WasteTop()
		g.Foundation[suitIndex(top.Suit())] = int8(top.Value())
		g.Waste = g.Waste[:len(g.Waste)-1]

	case move.WasteToTableau:
		top, _ := g.WasteTop()
		dst := m.Dst()
		g.Tableau[dst].FaceUp = append(g.Tableau[dst].FaceUp, top)
		g.Waste = g.Waste[:len(g.Waste)-1]

	case move.TableauToFoundation:
		src := m.Src()
		col := &g.Tableau[src]
		top, _ := col.faceUpTop()
		g.Foundation[suitIndex(top.Suit())] = int8(top.Value())
		col.FaceUp = col.FaceUp[:len(col.FaceUp)-1]

	case move.TableauToTableau:
		src, row, dst := m.TTSrc(), m.TTRow(), m.TTDst()
		srcCol := &g.Tableau[src]
		dstCol := &g.Tableau[dst]
		slice := srcCol.FaceUp[row:]
		dstCol.FaceUp = append(dstCol.FaceUp, slice...)
		srcCol.FaceUp = srcCol.FaceUp[:row]

	case move.FoundationToTableau:
		suitIdx, dst := m.FTSuitIdx(), m.FTDst()
		height := g.Foundation[suitIdx]
		card := cardFromHeight(suitIdx, height)
		g.Tableau[dst].FaceUp = append(g.Tableau[dst].FaceUp, card)
		g.Foundation[suitIdx] = height - 1
	}
}

// cardFromHeight reconstructs the card currently sitting atop a
// foundation pile, given the fixed suit-index ordering (cards.Suits).
func cardFromHeight(suitIdx int, height int8) cards.Card {
	return cards.NewCard(cards.Value(height), cards.Suits[suitIdx])
}

// draw implements §4.1 DRAW: recycle the waste into the hand if the hand
// is empty, then move up to Rules.DrawSize cards from hand to waste.
func (g *Game) draw() {
	if len(g.Hand) == 0 && len(g.Waste) != 0 {
		newHand := make([]cards.Card, len(g.Waste))
		for i, c := range g.Waste {
			newHand[len(g.Waste)-1-i] = c
		}
		g.Hand = newHand
		g.Waste = nil
	}
	n := g.Rules.DrawSize
	if n > len(g.Hand) {
		n = len(g.Hand)
	}
	for i := 0; i < n; i++ {
		c := g.Hand[0]
		g.Hand = g.Hand[1:]
		g.Waste = append(g.Waste, c)
	}
}

// postMoveFlip implements §4.1's "for every column, if face_up is empty
// and face_down is non-empty, move the top of face_down to face_up",
// applied once per column per Apply.
func (g *Game) postMoveFlip() {
	for i := range g.Tableau {
		g.Tableau[i].flipIfExposed()
	}
}
