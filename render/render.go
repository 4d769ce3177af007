// Package render turns a Game into an optional, human-readable snapshot
// for the result stream (§6 "a stream of interleaved per-move textual
// snapshots"). It is purely informational, the way the teacher's
// game.ToDisplayText lays out board state as plain text rather than a
// structured payload.
package render

import (
	"fmt"
	"strings"

	"github.com/cardspan/kspider/game"
	"github.com/cardspan/kspider/move"
)

// Snapshot renders g's hand/waste size, foundation heights and tableau
// columns as a compact multi-line block, optionally preceded by the move
// that produced this position.
func Snapshot(g *game.Game, lastMove *move.Move) string {
	var b strings.Builder

	if lastMove != nil {
		fmt.Fprintf(&b, "after %s:\n", lastMove)
	}
	fmt.Fprintf(&b, "hand=%d waste=%d\n", len(g.Hand), len(g.Waste))

	b.WriteString("foundations: ")
	for i, height := range g.Foundation {
		if i > 0 {
			b.WriteString(" ")
		}
		if height < 0 {
			b.WriteString("--")
		} else {
			fmt.Fprintf(&b, "%d", height+1)
		}
	}
	b.WriteString("\n")

	for i := range g.Tableau {
		col := &g.Tableau[i]
		fmt.Fprintf(&b, "T%d: %s%s\n", i, strings.Repeat("[] ", len(col.FaceDown)), col.FaceUpKey())
	}

	return b.String()
}
