package engine

import "github.com/lgbarn/hourglass/internal/chess"

// GameStatus classifies a position for the side to move.
type GameStatus int

const (
	Ongoing GameStatus = iota
	Checkmate
	Stalemate
	FiftyMoveDraw
	InsufficientMaterial
)

// String returns the name of the status.
func (s GameStatus) String() string {
	switch s {
	case Ongoing:
		return "ongoing"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case FiftyMoveDraw:
		return "fifty-move draw"
	case InsufficientMaterial:
		return "insufficient material"
	}
	return "unknown"
}

// IsOver reports whether the status ends the game.
func (s GameStatus) IsOver() bool {
	return s != Ongoing
}

// fiftyMoveHalfmoves is the halfmove clock value at which a draw may be claimed.
const fiftyMoveHalfmoves = 100

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(pos *chess.Position) bool {
	return IsInCheck(pos, pos.ToMove) && !HasLegalMoves(pos)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(pos *chess.Position) bool {
	return !IsInCheck(pos, pos.ToMove) && !HasLegalMoves(pos)
}

// Status returns the state of the game. Checkmate and stalemate take
// precedence over the fifty-move rule, which takes precedence over
// insufficient material.
func Status(pos *chess.Position) GameStatus {
	if !HasLegalMoves(pos) {
		if IsInCheck(pos, pos.ToMove) {
			return Checkmate
		}
		return Stalemate
	}
	if pos.HalfmoveClock >= fiftyMoveHalfmoves {
		return FiftyMoveDraw
	}
	if HasInsufficientMaterial(pos) {
		return InsufficientMaterial
	}
	return Ongoing
}
