package game

import "strings"

// TableauSignature concatenates every column's face-up run, in column
// order. It depends only on what the movegen enumerator cares about when
// deciding which tableau-to-tableau moves exist, so it doubles as the
// movegen candidate cache key (§4.3).
func (g *Game) TableauSignature() string {
	var b strings.Builder
	for i := range g.Tableau {
		b.WriteString(g.Tableau[i].FaceUpKey())
		b.WriteByte('|')
	}
	return b.String()
}
