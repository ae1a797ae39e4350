package varchess

import (
	"errors"
	"strings"
	"testing"
)

const standardLayout = "rnbqkbnr/pv*pv*pv*pv*pv*pv*pv*pv*/8/8/8/8/P^*P^*P^*P^*P^*P^*P^*P^*/RNBQKBNR w"

func TestEncodeStandard(t *testing.T) {
	if got := StandardBoard().Encode(White); got != standardLayout {
		t.Errorf("Encode() = %q; want %q", got, standardLayout)
	}
}

func TestDecode(t *testing.T) {
	b, side, err := Decode(standardLayout)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if side != White || !b.Equal(StandardBoard()) {
		t.Fatalf("Decode(standard) = side %v, board\n%v", side, b)
	}

	t.Run("odd sizes and pawn states", func(t *testing.T) {
		const s = "k11/12/3P>!8/5p<6/11K b"
		b, side, err := Decode(s)
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		if b.Width() != 12 || b.Height() != 5 || side != Black {
			t.Fatalf("got %dx%d side %v; want 12x5 black", b.Width(), b.Height(), side)
		}
		sq, _ := b.Get(Pos{3, 2})
		if sq.Color != White || sq.Piece != NewPawn(Pos{1, 0}, JustLeaped) {
			t.Errorf("(3,2) = %+v; want white pawn moving right, JustLeaped", sq)
		}
		sq, _ = b.Get(Pos{5, 3})
		if sq.Color != Black || sq.Piece != NewPawn(Pos{-1, 0}, CannotLeap) {
			t.Errorf("(5,3) = %+v; want black pawn moving left, CannotLeap", sq)
		}
		if got := b.Encode(side); got != s {
			t.Errorf("Encode() = %q; want %q", got, s)
		}
	})
}

func TestDecodeLargestBoard(t *testing.T) {
	b, _, err := Decode(strings.Repeat("64/", MaxSide-1) + "63k w")
	if err != nil {
		t.Fatal(err)
	}
	if b.Width() != MaxSide || b.Height() != MaxSide {
		t.Errorf("size = %dx%d; want %dx%d", b.Width(), b.Height(), MaxSide, MaxSide)
	}
}

func TestDecodeErrors(t *testing.T) {
	for _, s := range []string{
		"",
		"8/8 x",
		"rnbqkbnr/8 w extra",
		"7/8 w",
		"z7 w",
		"p w",
		"p?7 w",
		"0k w",
		"99999999999999999999k w",
		"2000000000k w",
		"65 w",
		strings.Repeat("k", 65) + " w",
		strings.Repeat("1/", 64) + "1 w",
	} {
		if _, _, err := Decode(s); !errors.Is(err, ErrInvalidLayout) {
			t.Errorf("Decode(%q) err = %v; want ErrInvalidLayout", s, err)
		}
	}
}
