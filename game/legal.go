package game

import (
	"github.com/cardspan/kspider/cards"
	"github.com/cardspan/kspider/move"
)

// IsValid reports whether m may legally be applied to g. It never
// mutates (§4.1).
func (g *Game) IsValid(m move.Move) bool {
	switch m.Kind {
	case move.Draw:
		return len(g.Hand) != 0 || len(g.Waste) != 0

	case move.WasteToFoundation:
		top, ok := g.WasteTop()
		if !ok {
			return false
		}
		return top.Value() == g.nextForFoundation(top.Suit())

	case move.WasteToTableau:
		top, ok := g.WasteTop()
		if !ok {
			return false
		}
		dst := m.Dst()
		if dst < 0 || dst >= len(g.Tableau) {
			return false
		}
		col := &g.Tableau[dst]
		if col.empty() {
			return top.Value() == cards.King
		}
		onto, _ := col.faceUpTop()
		return descendsOnto(top, onto)

	case move.TableauToFoundation:
		src := m.Src()
		if src < 0 || src >= len(g.Tableau) {
			return false
		}
		top, ok := g.Tableau[src].faceUpTop()
		if !ok {
			return false
		}
		return top.Value() == g.nextForFoundation(top.Suit())

	case move.TableauToTableau:
		src, row, dst := m.TTSrc(), m.TTRow(), m.TTDst()
		if src == dst {
			return false
		}
		if src < 0 || src >= len(g.Tableau) || dst < 0 || dst >= len(g.Tableau) {
			return false
		}
		srcCol := &g.Tableau[src]
		if row < 0 || row >= len(srcCol.FaceUp) {
			return false
		}
		moving := srcCol.FaceUp[row]
		dstCol := &g.Tableau[dst]
		if dstCol.empty() {
			return moving.Value() == cards.King
		}
		onto, _ := dstCol.faceUpTop()
		return descendsOnto(moving, onto)

	case move.FoundationToTableau:
		suitIdx, dst := m.FTSuitIdx(), m.FTDst()
		if suitIdx < 0 || suitIdx >= len(g.Foundation) {
			return false
		}
		if g.Foundation[suitIdx] < 0 {
			return false
		}
		if dst < 0 || dst >= len(g.Tableau) {
			return false
		}
		dstCol := &g.Tableau[dst]
		if dstCol.empty() {
			return false
		}
		moving := cardFromHeight(suitIdx, g.Foundation[suitIdx])
		onto, _ := dstCol.faceUpTop()
		return descendsOnto(moving, onto)

	default:
		return false
	}
}
