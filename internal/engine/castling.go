package engine

import "github.com/lgbarn/hourglass/internal/chess"

// castleSide describes one of the four castling moves.
type castleSide struct {
	Right  chess.CastleRights
	King   chess.Square
	KingTo chess.Square
	Rook   chess.Square
	RookTo chess.Square
	// Between lists the squares strictly between king and rook.
	Between []chess.Square
	// KingPath lists the king's start, transit and destination squares.
	KingPath [3]chess.Square
}

var castleSides = [...]castleSide{
	{
		Right: chess.WhiteKingSide, King: chess.E1, KingTo: chess.G1, Rook: chess.H1, RookTo: chess.F1,
		Between:  []chess.Square{chess.F1, chess.G1},
		KingPath: [3]chess.Square{chess.E1, chess.F1, chess.G1},
	},
	{
		Right: chess.WhiteQueenSide, King: chess.E1, KingTo: chess.C1, Rook: chess.A1, RookTo: chess.D1,
		Between:  []chess.Square{chess.D1, chess.C1, chess.B1},
		KingPath: [3]chess.Square{chess.E1, chess.D1, chess.C1},
	},
	{
		Right: chess.BlackKingSide, King: chess.E8, KingTo: chess.G8, Rook: chess.H8, RookTo: chess.F8,
		Between:  []chess.Square{chess.F8, chess.G8},
		KingPath: [3]chess.Square{chess.E8, chess.F8, chess.G8},
	},
	{
		Right: chess.BlackQueenSide, King: chess.E8, KingTo: chess.C8, Rook: chess.A8, RookTo: chess.D8,
		Between:  []chess.Square{chess.D8, chess.C8, chess.B8},
		KingPath: [3]chess.Square{chess.E8, chess.D8, chess.C8},
	},
}

// castleRightsLostAt maps a king or rook home square to the rights that are
// revoked when a piece leaves it or is captured on it.
var castleRightsLostAt = map[chess.Square]chess.CastleRights{
	chess.A1: chess.WhiteQueenSide,
	chess.H1: chess.WhiteKingSide,
	chess.E1: chess.WhiteKingSide | chess.WhiteQueenSide,
	chess.A8: chess.BlackQueenSide,
	chess.H8: chess.BlackKingSide,
	chess.E8: chess.BlackKingSide | chess.BlackQueenSide,
}

// appendCastlingMoves appends the castling moves of the king on sq.
func appendCastlingMoves(moves []chess.Move, pos *chess.Position, sq chess.Square) []chess.Move {
	player := pos.ToMove
	if pos.CastleRights&chess.PlayerCastleRights(player) == chess.NoCastleRights {
		return moves
	}

	var attacked *[chess.NumSquares]bool
	for i := range castleSides {
		side := &castleSides[i]
		if !chess.PlayerCastleRights(player).Has(side.Right) || !canCastle(pos, side, sq) {
			continue
		}
		if attacked == nil {
			attackMap := GenerateAttackMap(pos, player.Opponent())
			attacked = &attackMap
		}
		if !isPathSafe(attacked, side) {
			continue
		}
		moves = append(moves, chess.NewMove(side.King, side.KingTo))
	}
	return moves
}

// canCastle checks the right, the king and rook placement and the empty
// squares between them. Attacks on the king path are checked separately.
func canCastle(pos *chess.Position, side *castleSide, kingSquare chess.Square) bool {
	if !pos.CastleRights.Has(side.Right) || kingSquare != side.King {
		return false
	}
	if pos.Squares[side.Rook] != chess.MakePiece(pos.ToMove, chess.Rook) {
		return false
	}
	for _, sq := range side.Between {
		if pos.Squares[sq] != chess.Empty {
			return false
		}
	}
	return true
}

// isPathSafe reports whether none of the king's path squares is attacked.
func isPathSafe(attacked *[chess.NumSquares]bool, side *castleSide) bool {
	for _, sq := range side.KingPath {
		if attacked[sq] {
			return false
		}
	}
	return true
}

// castleSideFor returns the castling move a king move from->to performs, if any.
func castleSideFor(from, to chess.Square) (*castleSide, bool) {
	if abs(to.File()-from.File()) != 2 {
		return nil, false
	}
	for i := range castleSides {
		if castleSides[i].King == from && castleSides[i].KingTo == to {
			return &castleSides[i], true
		}
	}
	return nil, false
}

// revokeCastleRights clears the rights affected by a move from->to. A king
// move loses both of the mover's rights; a move from or capture on a rook
// home square loses the matching right.
func revokeCastleRights(pos *chess.Position, piece, captured chess.Piece, from, to chess.Square) {
	if piece.Type() == chess.King {
		if owner, ok := piece.Player(); ok {
			pos.CastleRights.RevokeAll(owner)
		}
	}
	if captured.Type() == chess.King {
		if owner, ok := captured.Player(); ok {
			pos.CastleRights.RevokeAll(owner)
		}
	}
	pos.CastleRights.Revoke(castleRightsLostAt[from] | castleRightsLostAt[to])
}
