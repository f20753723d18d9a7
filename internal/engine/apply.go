package engine

import (
	"slices"

	"github.com/lgbarn/hourglass/internal/chess"
	"github.com/lgbarn/hourglass/internal/errors"
)

// TryMove validates m against the current position and, if it is legal,
// applies it to pos.
//
// The checks run in this order:
//   - errors.ErrNotYourPiece: the origin is off the board, empty, or holds
//     a piece of the side not to move.
//   - errors.ErrNoPromotion: a pawn move to the last rank without a
//     promotion piece, where the move would be legal with one.
//   - errors.ErrIllegalMove: m (including its promotion) is not among the
//     legal moves from its origin.
//
// Errors are returned as *errors.MoveError. A failed call leaves pos unchanged.
func TryMove(pos *chess.Position, m chess.Move) error {
	piece := pos.PieceAt(m.From)
	if !piece.IsColor(pos.ToMove) {
		return newMoveError(pos, m, errors.ErrNotYourPiece)
	}

	legal := LegalMovesFrom(pos, m.From)

	if piece.Type() == chess.Pawn && !m.IsPromotion() && m.To.Valid() &&
		m.To.Rank() == pos.ToMove.PromotionRank() &&
		slices.Contains(legal, m.WithPromotion(chess.Queen)) {
		return newMoveError(pos, m, errors.ErrNoPromotion)
	}

	if !slices.Contains(legal, m) {
		return newMoveError(pos, m, errors.ErrIllegalMove)
	}

	next := *pos
	applyMove(&next, m)
	*pos = next
	return nil
}

// Apply returns a new position with the pseudo-legal move m applied.
// It performs no validation; use TryMove for moves from untrusted input.
func Apply(pos *chess.Position, m chess.Move) *chess.Position {
	next := *pos
	applyMove(&next, m)
	return &next
}

// newMoveError wraps a move sentinel with the move and the position it was tried on.
func newMoveError(pos *chess.Position, m chess.Move, err error) error {
	return &errors.MoveError{
		Err:  err,
		Move: m.String(),
		FEN:  PositionToFEN(pos),
	}
}

// applyMove plays a pseudo-legal move in place, handling en passant,
// castling, promotion, castling rights and the move clocks.
func applyMove(pos *chess.Position, m chess.Move) {
	mover := pos.ToMove
	piece := pos.Squares[m.From]
	captured := pos.Squares[m.To]
	isPawn := piece.Type() == chess.Pawn

	if isPawn && m.To == pos.EnPassant && captured == chess.Empty {
		victim := m.To - chess.Square(mover.ForwardStep())
		if pos.Squares[victim] == chess.MakePiece(mover.Opponent(), chess.Pawn) {
			captured = pos.Squares[victim]
			pos.Squares[victim] = chess.Empty
		}
	}

	pos.EnPassant = chess.NoSquare
	if isPawn && abs(m.To-m.From) == 2*chess.BoardSize {
		pos.EnPassant = m.From + chess.Square(mover.ForwardStep())
	}

	if piece.Type() == chess.King {
		if side, ok := castleSideFor(m.From, m.To); ok {
			pos.Squares[side.RookTo] = pos.Squares[side.Rook]
			pos.Squares[side.Rook] = chess.Empty
		}
	}

	revokeCastleRights(pos, piece, captured, m.From, m.To)

	if m.IsPromotion() {
		piece = chess.MakePiece(mover, m.Promote)
	}
	pos.Squares[m.From] = chess.Empty
	pos.Squares[m.To] = piece

	if isPawn || captured != chess.Empty {
		pos.HalfmoveClock = 0
	} else {
		pos.HalfmoveClock++
	}
	if mover == chess.Black {
		pos.MoveNumber++
	}
	pos.ToMove = mover.Opponent()
}
