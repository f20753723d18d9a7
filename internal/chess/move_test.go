package chess

import (
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/hourglass/internal/errors"
)

func TestParseMove(t *testing.T) {
	m, err := ParseMove("e2e4")
	if err != nil {
		t.Fatalf("ParseMove(e2e4) error: %v", err)
	}
	want := NewMove(NewSquare(4, 1), NewSquare(4, 3))
	if m != want {
		t.Errorf("ParseMove(e2e4) = %+v; want %+v", m, want)
	}

	for _, bad := range []string{"", "e2e", "e2e4q", "e2-e4", "z2e4", "e2e9"} {
		_, err := ParseMove(bad)
		if !errors.Is(err, chesserrors.ErrInvalidMoveText) {
			t.Errorf("ParseMove(%q) error = %v; want ErrInvalidMoveText", bad, err)
		}
	}
}

func TestMoveEqualityIncludesPromotion(t *testing.T) {
	base := NewMove(NewSquare(0, 6), NewSquare(0, 7))
	queen := base.WithPromotion(Queen)
	knight := base.WithPromotion(MakePiece(White, Knight))

	if base == queen {
		t.Error("move without promotion equals move with promotion")
	}
	if queen == knight {
		t.Error("moves with different promotions are equal")
	}
	if knight.Promote != Knight {
		t.Errorf("WithPromotion should strip colour, got %v", knight.Promote)
	}
	if !queen.IsPromotion() || base.IsPromotion() {
		t.Error("IsPromotion() wrong")
	}
}

func TestMoveString(t *testing.T) {
	tests := []struct {
		move Move
		want string
	}{
		{NewMove(NewSquare(4, 1), NewSquare(4, 3)), "e2e4"},
		{NewMove(NewSquare(0, 6), NewSquare(0, 7)).WithPromotion(Queen), "a7a8q"},
		{NewMove(NewSquare(7, 1), NewSquare(6, 0)).WithPromotion(Knight), "h2g1n"},
	}
	for _, tt := range tests {
		if got := tt.move.String(); got != tt.want {
			t.Errorf("String() = %q; want %q", got, tt.want)
		}
	}
}

func TestPromotionFromLetter(t *testing.T) {
	for c, want := range map[byte]Piece{'q': Queen, 'N': Knight, 'r': Rook, 'b': Bishop} {
		got, ok := PromotionFromLetter(c)
		if !ok || got != want {
			t.Errorf("PromotionFromLetter(%c) = %v, %v; want %v", c, got, ok, want)
		}
	}
	for _, c := range []byte("kKpPx") {
		if _, ok := PromotionFromLetter(c); ok {
			t.Errorf("PromotionFromLetter(%c) ok = true; want false", c)
		}
	}
}
