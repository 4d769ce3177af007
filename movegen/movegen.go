// Package movegen enumerates candidate moves for a Game in the priority
// order the search engine relies on for pruning leverage: cheap, safe
// moves first, moves that can recurse forever (DRAW) only after those
// have been exhausted (§4.3).
package movegen

import (
	"sort"

	"github.com/cardspan/kspider/cards"
	"github.com/cardspan/kspider/game"
	"github.com/cardspan/kspider/move"
	"github.com/samber/lo"
)

// Generate returns candidate moves for g in enumeration-priority order:
// ace moves, other foundation moves, revealing tableau-to-tableau moves,
// waste-to-tableau, draw, non-revealing tableau-to-tableau moves. c may be
// nil, in which case groups 3 and 6 are recomputed with no caching.
func Generate(g *game.Game, c *Cache) []move.Move {
	var out []move.Move

	aces, rest := foundationMoves(g)
	out = append(out, aces...)
	out = append(out, rest...)

	revealing, nonRevealing := tableauToTableauMoves(g, c)
	out = append(out, revealing...)

	out = append(out, wasteToTableauMoves(g)...)

	if g.IsValid(move.NewDraw()) {
		out = append(out, move.NewDraw())
	}

	out = append(out, nonRevealing...)
	return out
}

// foundationMoves returns (aceMoves, otherMoves): every legal move onto a
// foundation, partitioned by whether the moving card is an ace (§4.3
// groups 1-2). Within each group the waste top is considered first, then
// tableau face-up tops in column order.
func foundationMoves(g *game.Game) ([]move.Move, []move.Move) {
	var aces, rest []move.Move

	classify := func(c cards.Card, m move.Move) {
		if c.Value() == cards.Ace {
			aces = append(aces, m)
		} else {
			rest = append(rest, m)
		}
	}

	if top, ok := g.WasteTop(); ok {
		m := move.NewWasteToFoundation()
		if g.IsValid(m) {
			classify(top, m)
		}
	}

	for src, col := range g.Tableau {
		if len(col.FaceUp) == 0 {
			continue
		}
		top := col.FaceUp[len(col.FaceUp)-1]
		m := move.NewTableauToFoundation(src)
		if g.IsValid(m) {
			classify(top, m)
		}
	}

	return aces, rest
}

// wasteToTableauMoves returns every legal WASTE_TO_TABLEAU move, dst
// ascending (§4.3 group 4).
func wasteToTableauMoves(g *game.Game) []move.Move {
	var out []move.Move
	for dst := range g.Tableau {
		m := move.NewWasteToTableau(dst)
		if g.IsValid(m) {
			out = append(out, m)
		}
	}
	return out
}

// tableauToTableauMoves splits TABLEAU_TO_TABLEAU candidates into the
// revealing group (moving a whole face-up run, srcRow == 0) and the
// non-revealing group (srcRow >= 1), per §4.3 groups 3 and 6. Results may
// come from c when the current face-up layout was seen before.
func tableauToTableauMoves(g *game.Game, c *Cache) (revealing, nonRevealing []move.Move) {
	if c != nil {
		if hit, ok := c.get(g); ok {
			return hit.revealing, hit.nonRevealing
		}
	}

	n := len(g.Tableau)
	type candidate struct {
		m           move.Move
		faceDownLen int
		src         int
	}
	var revealCandidates []candidate

	for src, srcCol := range g.Tableau {
		faceUpLen := len(srcCol.FaceUp)
		if faceUpLen == 0 {
			continue
		}
		for dst := 0; dst < n; dst++ {
			if src == dst {
				continue
			}
			m := move.NewTableauToTableau(src, 0, dst)
			if !g.IsValid(m) {
				continue
			}
			revealCandidates = append(revealCandidates, candidate{
				m:           m,
				faceDownLen: len(srcCol.FaceDown),
				src:         src,
			})
		}
		for row := 1; row < faceUpLen; row++ {
			for dst := 0; dst < n; dst++ {
				if src == dst {
					continue
				}
				m := move.NewTableauToTableau(src, row, dst)
				if g.IsValid(m) {
					nonRevealing = append(nonRevealing, m)
				}
			}
		}
	}

	anyEmpty := lo.SomeBy(g.Tableau, func(col game.Column) bool {
		return len(col.FaceDown) == 0 && len(col.FaceUp) == 0
	})

	if anyEmpty {
		sortCandidatesBy(revealCandidates, func(a, b candidate) bool {
			if a.faceDownLen != b.faceDownLen {
				return a.faceDownLen > b.faceDownLen
			}
			return a.src < b.src
		})
	} else {
		sortCandidatesBy(revealCandidates, func(a, b candidate) bool {
			if a.faceDownLen != b.faceDownLen {
				return a.faceDownLen < b.faceDownLen
			}
			return a.src < b.src
		})
	}

	revealing = lo.Map(revealCandidates, func(cd candidate, _ int) move.Move { return cd.m })

	if c != nil {
		c.put(g, revealing, nonRevealing)
	}
	return revealing, nonRevealing
}

// sortCandidatesBy is a tiny sort.Slice wrapper so the two orderings in
// tableauToTableauMoves read as a single less-function each.
func sortCandidatesBy[T any](s []T, less func(a, b T) bool) {
	sort.Slice(s, func(i, j int) bool { return less(s[i], s[j]) })
}
