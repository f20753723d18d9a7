package engine

import "github.com/lgbarn/hourglass/internal/chess"

// GenerateAttackMap returns the set of squares threatened by the given
// player's pieces.
//
// Pawns threaten only their two forward diagonals. Sliding pieces threaten
// up to and including the first occupied square on each ray. Castling never
// contributes, so the map can be built without recursion.
func GenerateAttackMap(pos *chess.Position, player chess.Player) [chess.NumSquares]bool {
	var attacked [chess.NumSquares]bool
	mark := func(sq chess.Square) {
		attacked[sq] = true
	}

	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		piece := pos.Squares[sq]
		if piece == chess.Empty || !piece.IsColor(player) {
			continue
		}

		switch piece.Type() {
		case chess.Pawn:
			pawnAttackTargets(player, sq, mark)
		case chess.Knight:
			knightTargets(sq, mark)
		case chess.King:
			kingTargets(sq, mark)
		case chess.Bishop:
			rayTargets(pos, sq, chess.BishopDirections[:], mark)
		case chess.Rook:
			rayTargets(pos, sq, chess.RookDirections[:], mark)
		case chess.Queen:
			rayTargets(pos, sq, chess.AllDirections[:], mark)
		}
	}
	return attacked
}

// IsSquareAttacked reports whether sq is threatened by any piece of byPlayer.
func IsSquareAttacked(pos *chess.Position, sq chess.Square, byPlayer chess.Player) bool {
	attacked := GenerateAttackMap(pos, byPlayer)
	return attacked[sq]
}

// IsInCheck returns true if the given player's king is attacked.
// The position must contain that player's king.
func IsInCheck(pos *chess.Position, player chess.Player) bool {
	return IsSquareAttacked(pos, pos.FindKing(player), player.Opponent())
}
