package engine

import "github.com/lgbarn/hourglass/internal/chess"

// GenerateLegalMoves returns every legal move for the side to move, in
// generation order: origin squares from a1 to h8, and for each origin the
// order its piece generates moves in.
func GenerateLegalMoves(pos *chess.Position) []chess.Move {
	return filterLegal(pos, generatePseudoLegalMoves(pos))
}

// LegalMovesFrom returns the legal moves of the piece on sq. It is empty if
// sq is empty or holds a piece of the side not to move.
func LegalMovesFrom(pos *chess.Position, sq chess.Square) []chess.Move {
	return filterLegal(pos, GeneratePseudoLegalMovesFor(pos, sq))
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func HasLegalMoves(pos *chess.Position) bool {
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		for _, m := range GeneratePseudoLegalMovesFor(pos, sq) {
			if isLegal(pos, m) {
				return true
			}
		}
	}
	return false
}

// filterLegal keeps the moves that do not leave the mover's king attacked.
// The input slice is reused.
func filterLegal(pos *chess.Position, moves []chess.Move) []chess.Move {
	legal := moves[:0]
	for _, m := range moves {
		if isLegal(pos, m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// isLegal makes a pseudo-legal move on a copy of the position and checks
// whether the mover's king is attacked afterwards.
func isLegal(pos *chess.Position, m chess.Move) bool {
	next := *pos
	applyMove(&next, m)
	return !IsInCheck(&next, pos.ToMove)
}
