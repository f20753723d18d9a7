package chess

import (
	"fmt"

	"github.com/lgbarn/hourglass/internal/errors"
)

// Move is a move from one square to another, with an optional promotion.
// Promote holds a bare piece type (Knight, Bishop, Rook or Queen) or Empty.
// Moves are comparable; equality includes the promotion.
type Move struct {
	From    Square
	To      Square
	Promote Piece
}

// NewMove creates a move without a promotion.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to}
}

// WithPromotion returns a copy of the move promoting to the given piece type.
func (m Move) WithPromotion(pieceType Piece) Move {
	m.Promote = pieceType.Type()
	return m
}

// IsPromotion reports whether the move carries a promotion choice.
func (m Move) IsPromotion() bool {
	return m.Promote != Empty
}

// String returns the move in coordinate notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.Name() + m.To.Name()
	if m.IsPromotion() {
		s += string(MakePiece(Black, m.Promote).Letter())
	}
	return s
}

// ParseMove parses exactly four characters naming two squares, e.g. "e2e4".
// There is no promotion suffix; promotions are built with WithPromotion.
func ParseMove(text string) (Move, error) {
	if len(text) != 4 {
		return Move{}, fmt.Errorf("move %q must be 4 characters: %w", text, errors.ErrInvalidMoveText)
	}
	from, ok := ParseSquare(text[:2])
	if !ok {
		return Move{}, fmt.Errorf("move %q has a bad origin square: %w", text, errors.ErrInvalidMoveText)
	}
	to, ok := ParseSquare(text[2:])
	if !ok {
		return Move{}, fmt.Errorf("move %q has a bad target square: %w", text, errors.ErrInvalidMoveText)
	}
	return NewMove(from, to), nil
}

// PromotionFromLetter maps a promotion letter (n, b, r, q in either case) to a piece type.
func PromotionFromLetter(c byte) (Piece, bool) {
	piece, ok := PieceFromLetter(c)
	if !ok {
		return Empty, false
	}
	switch piece.Type() {
	case Knight, Bishop, Rook, Queen:
		return piece.Type(), true
	}
	return Empty, false
}
