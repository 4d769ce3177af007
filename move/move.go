// Package move defines the Move tagged union Klondike games are played
// with. Following the teacher's move.Move design note (avoid heap
// allocation per move), a Move is a small fixed-size value: a Kind tag
// plus up to three int8 payload slots, copyable without indirection.
package move

import "fmt"

// Kind identifies which of the six move variants a Move is (§3, §6).
type Kind uint8

const (
	Draw Kind = iota
	WasteToFoundation
	WasteToTableau
	TableauToFoundation
	TableauToTableau
	FoundationToTableau
)

// String returns the stable wire tag for the kind (§6 Move-kind tags).
func (k Kind) String() string {
	switch k {
	case Draw:
		return "DRAW"
	case WasteToFoundation:
		return "WASTE_TO_FOUNDATION"
	case WasteToTableau:
		return "WASTE_TO_TABLEAU"
	case TableauToFoundation:
		return "TABLEAU_TO_FOUNDATION"
	case TableauToTableau:
		return "TABLEAU_TO_TABLEAU"
	case FoundationToTableau:
		return "FOUNDATION_TO_TABLEAU"
	default:
		return "UNKNOWN"
	}
}

// Move is a tagged, fixed-size variant over the six move kinds. Payload
// slots are interpreted per Kind:
//
//	Draw:                (unused)
//	WasteToFoundation:    (unused)
//	WasteToTableau:       Dst
//	TableauToFoundation:  Src
//	TableauToTableau:     Src, Row, Dst
//	FoundationToTableau:  SuitIdx, Dst
type Move struct {
	Kind Kind
	A    int8
	B    int8
	C    int8
}

// NewDraw builds a DRAW move.
func NewDraw() Move { return Move{Kind: Draw} }

// NewWasteToFoundation builds a WASTE_TO_FOUNDATION move.
func NewWasteToFoundation() Move { return Move{Kind: WasteToFoundation} }

// NewWasteToTableau builds a WASTE_TO_TABLEAU move targeting dst.
func NewWasteToTableau(dst int) Move { return Move{Kind: WasteToTableau, A: int8(dst)} }

// NewTableauToFoundation builds a TABLEAU_TO_FOUNDATION move from src.
func NewTableauToFoundation(src int) Move { return Move{Kind: TableauToFoundation, A: int8(src)} }

// NewTableauToTableau builds a TABLEAU_TO_TABLEAU move of the slice
// face_up(src)[row..] onto dst.
func NewTableauToTableau(src, row, dst int) Move {
	return Move{Kind: TableauToTableau, A: int8(src), B: int8(row), C: int8(dst)}
}

// NewFoundationToTableau builds a FOUNDATION_TO_TABLEAU move (unused by the
// solver; present for game-model completeness, spec.md §9 Open Question).
func NewFoundationToTableau(suitIdx, dst int) Move {
	return Move{Kind: FoundationToTableau, A: int8(suitIdx), B: int8(dst)}
}

// Dst returns the destination column for WasteToTableau.
func (m Move) Dst() int { return int(m.A) }

// Src returns the source column for TableauToFoundation.
func (m Move) Src() int { return int(m.A) }

// TTSrc, TTRow, TTDst decompose a TableauToTableau move.
func (m Move) TTSrc() int { return int(m.A) }
func (m Move) TTRow() int { return int(m.B) }
func (m Move) TTDst() int { return int(m.C) }

// FTSuitIdx, FTDst decompose a FoundationToTableau move.
func (m Move) FTSuitIdx() int { return int(m.A) }
func (m Move) FTDst() int     { return int(m.B) }

// Extras returns the move's payload as a slice of ints, for the driver's
// `{ type, extras[] }` wire representation (§6).
func (m Move) Extras() []int {
	switch m.Kind {
	case Draw, WasteToFoundation:
		return nil
	case WasteToTableau:
		return []int{int(m.A)}
	case TableauToFoundation:
		return []int{int(m.A)}
	case TableauToTableau:
		return []int{int(m.A), int(m.B), int(m.C)}
	case FoundationToTableau:
		return []int{int(m.A), int(m.B)}
	default:
		return nil
	}
}

// ShortDescription renders a move for logging/diagnostics, in the style of
// the teacher's move.Move.ShortDescription.
func (m Move) ShortDescription() string {
	switch m.Kind {
	case Draw:
		return "(Draw)"
	case WasteToFoundation:
		return "Waste->Fnd"
	case WasteToTableau:
		return fmt.Sprintf("Waste->T%d", m.Dst())
	case TableauToFoundation:
		return fmt.Sprintf("T%d->Fnd", m.Src())
	case TableauToTableau:
		return fmt.Sprintf("T%d[%d:]->T%d", m.TTSrc(), m.TTRow(), m.TTDst())
	case FoundationToTableau:
		return fmt.Sprintf("Fnd(%d)->T%d", m.FTSuitIdx(), m.FTDst())
	default:
		return "(unknown)"
	}
}

func (m Move) String() string {
	return fmt.Sprintf("%s %s", m.Kind, m.ShortDescription())
}
