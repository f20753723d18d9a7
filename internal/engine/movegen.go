package engine

import "github.com/lgbarn/hourglass/internal/chess"

// GeneratePseudoLegalMovesFor returns the moves available to the piece on sq,
// ignoring whether they leave the mover's own king in check.
//
// Squares that are empty or hold a piece of the side not to move yield no
// moves. Castling moves are already restricted to safe king paths.
func GeneratePseudoLegalMovesFor(pos *chess.Position, sq chess.Square) []chess.Move {
	return appendPseudoLegalMoves(nil, pos, sq)
}

// appendPseudoLegalMoves appends the pseudo-legal moves of the piece on sq.
func appendPseudoLegalMoves(moves []chess.Move, pos *chess.Position, sq chess.Square) []chess.Move {
	piece := pos.PieceAt(sq)
	if piece == chess.Empty || !piece.IsColor(pos.ToMove) {
		return moves
	}

	switch piece.Type() {
	case chess.Pawn:
		return appendPawnMoves(moves, pos, sq)
	case chess.Knight:
		return appendKnightMoves(moves, pos, sq)
	case chess.Bishop:
		return appendSlidingMoves(moves, pos, sq, chess.BishopDirections[:])
	case chess.Rook:
		return appendSlidingMoves(moves, pos, sq, chess.RookDirections[:])
	case chess.Queen:
		return appendSlidingMoves(moves, pos, sq, chess.AllDirections[:])
	case chess.King:
		moves = appendKingMoves(moves, pos, sq)
		return appendCastlingMoves(moves, pos, sq)
	}
	return moves
}

// generatePseudoLegalMoves returns the pseudo-legal moves of every piece of
// the side to move, scanning from a1 to h8.
func generatePseudoLegalMoves(pos *chess.Position) []chess.Move {
	moves := make([]chess.Move, 0, 48)
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		moves = appendPseudoLegalMoves(moves, pos, sq)
	}
	return moves
}
