package engine

import "github.com/lgbarn/hourglass/internal/chess"

// pawnCaptureDirections returns the two diagonals a player's pawns capture along.
func pawnCaptureDirections(player chess.Player) [2]chess.Direction {
	if player == chess.White {
		return [2]chess.Direction{chess.NorthWest, chess.NorthEast}
	}
	return [2]chess.Direction{chess.SouthWest, chess.SouthEast}
}

// pawnAttackTargets calls visit for each square a pawn of player on sq attacks.
func pawnAttackTargets(player chess.Player, sq chess.Square, visit func(chess.Square)) {
	for _, dir := range pawnCaptureDirections(player) {
		if chess.DistanceToEdge(sq, dir) >= 1 {
			visit(sq + chess.Square(dir.Offset()))
		}
	}
}

// appendPawnMoves appends pushes, double pushes, captures and en passant
// captures for the pawn on sq.
func appendPawnMoves(moves []chess.Move, pos *chess.Position, sq chess.Square) []chess.Move {
	player := pos.ToMove

	if chess.DistanceToEdge(sq, player.Forward()) >= 1 {
		one := sq + chess.Square(player.ForwardStep())
		if pos.Squares[one] == chess.Empty {
			moves = appendPawnMove(moves, player, sq, one)

			if sq.Rank() == player.PawnStartRank() {
				two := one + chess.Square(player.ForwardStep())
				if pos.Squares[two] == chess.Empty {
					moves = append(moves, chess.NewMove(sq, two))
				}
			}
		}
	}

	pawnAttackTargets(player, sq, func(to chess.Square) {
		target := pos.Squares[to]
		switch {
		case target != chess.Empty && !target.IsColor(player):
			moves = appendPawnMove(moves, player, sq, to)
		case target == chess.Empty && to == pos.EnPassant:
			moves = append(moves, chess.NewMove(sq, to))
		}
	})

	return moves
}

// appendPawnMove appends a pawn move, expanded into one move per promotion
// piece when it lands on the last rank.
func appendPawnMove(moves []chess.Move, player chess.Player, from, to chess.Square) []chess.Move {
	m := chess.NewMove(from, to)
	if to.Rank() != player.PromotionRank() {
		return append(moves, m)
	}
	for _, promote := range chess.PromotionPieces {
		moves = append(moves, m.WithPromotion(promote))
	}
	return moves
}
