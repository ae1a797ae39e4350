// Package notation renders moves as text and parses text back into moves.
//
// Files are letters from 'a' at x=0; ranks count from 1 at the bottom row, so
// on the standard board white's king starts on e1.
package notation

import (
	"errors"
	"fmt"
	"strings"

	"varchess/internal/varchess"
)

var ErrUnknownMove = errors.New("unknown move")

var kindLetter = map[varchess.Kind]byte{
	varchess.Pawn:   'P',
	varchess.Knight: 'N',
	varchess.Bishop: 'B',
	varchess.Rook:   'R',
	varchess.Queen:  'Q',
	varchess.King:   'K',
}

// Square names p on a board of the given height, e.g. (4,6) -> "e2" on 8 rows.
func Square(height int, p varchess.Pos) string {
	return fmt.Sprintf("%c%d", 'a'+rune(p.X), height-p.Y)
}

// Move renders the origin followed by every Go destination, plus "=<letter>"
// for a promotion: "e2e4", "e7e8=Q". Take actions are implied by the capture.
func Move(b *varchess.Board, m varchess.Move) string {
	var sb strings.Builder
	sb.WriteString(Square(b.Height(), m.Origin))
	for _, a := range m.Actions {
		switch a.Type {
		case varchess.ActionGo:
			sb.WriteString(Square(b.Height(), a.Pos))
		case varchess.ActionPromotion:
			sb.WriteByte('=')
			sb.WriteByte(kindLetter[a.Kind])
		}
	}
	return sb.String()
}

// UCI renders origin, final square and a lower-case promotion letter: "e7e8q".
func UCI(b *varchess.Board, m varchess.Move) string {
	dst := m.Origin
	var promo byte
	for _, a := range m.Actions {
		switch a.Type {
		case varchess.ActionGo:
			dst = a.Pos
		case varchess.ActionPromotion:
			promo = kindLetter[a.Kind] + ('a' - 'A')
		}
	}
	s := Square(b.Height(), m.Origin) + Square(b.Height(), dst)
	if promo != 0 {
		s += string(promo)
	}
	return s
}

// Parse finds the legal move of color written as text in either form.
func Parse(b *varchess.Board, color varchess.Color, text string) (varchess.Move, error) {
	text = strings.TrimSpace(text)
	for _, m := range b.MoveList(color, true) {
		if Move(b, m) == text || UCI(b, m) == text {
			return m, nil
		}
	}
	return varchess.Move{}, fmt.Errorf("%w: %q for %v", ErrUnknownMove, text, color)
}
