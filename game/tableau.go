package game

import "github.com/cardspan/kspider/cards"

// Column is one tableau pile: a bottom-rooted face-down stack that is
// never reordered, topped by a face-up stack (§3). Index len-1 is the top
// of each slice.
type Column struct {
	FaceDown []cards.Card
	FaceUp   []cards.Card
}

// faceUpTop returns the playable top of the face-up pile, or false if the
// column's face-up pile is empty.
func (c *Column) faceUpTop() (cards.Card, bool) {
	if len(c.FaceUp) == 0 {
		return 0, false
	}
	return c.FaceUp[len(c.FaceUp)-1], true
}

// flipIfExposed moves the top face-down card onto the (empty) face-up
// pile. Called once per column after every Apply (§4.1 Post-move flip).
func (c *Column) flipIfExposed() {
	if len(c.FaceUp) == 0 && len(c.FaceDown) > 0 {
		top := c.FaceDown[len(c.FaceDown)-1]
		c.FaceDown = c.FaceDown[:len(c.FaceDown)-1]
		c.FaceUp = append(c.FaceUp, top)
	}
}

func (c *Column) clone() Column {
	out := Column{}
	if len(c.FaceDown) > 0 {
		out.FaceDown = append([]cards.Card(nil), c.FaceDown...)
	}
	if len(c.FaceUp) > 0 {
		out.FaceUp = append([]cards.Card(nil), c.FaceUp...)
	}
	return out
}

// empty reports whether the column holds no cards at all, face-down or
// face-up; only a King may be placed on an empty column.
func (c *Column) empty() bool {
	return len(c.FaceDown) == 0 && len(c.FaceUp) == 0
}

// descendsOnto reports whether `moving` is one rank below and the opposite
// color of `onto`, the alternating-descent rule shared by waste-to-tableau,
// tableau-to-tableau and foundation-to-tableau legality (§4.1).
func descendsOnto(moving, onto cards.Card) bool {
	if moving.Red() == onto.Red() {
		return false
	}
	return int(moving.Value())+1 == int(onto.Value())
}

// FaceUpKey renders the face-up pile as a compact string for the
// movegen enumerator cache key (§4.3) and the stack-loop guard (§4.5d).
func (c *Column) FaceUpKey() string {
	buf := make([]byte, 0, len(c.FaceUp)*2)
	for _, card := range c.FaceUp {
		buf = append(buf, card.String()...)
	}
	return string(buf)
}
