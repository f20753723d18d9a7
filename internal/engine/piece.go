package engine

import "github.com/lgbarn/hourglass/internal/chess"

// knightJump is a knight move: two steps along Long, then one along Short.
type knightJump struct {
	Long  chess.Direction
	Short chess.Direction
}

var knightJumps = [...]knightJump{
	{chess.North, chess.West},
	{chess.North, chess.East},
	{chess.South, chess.West},
	{chess.South, chess.East},
	{chess.West, chess.North},
	{chess.West, chess.South},
	{chess.East, chess.North},
	{chess.East, chess.South},
}

// knightTargets calls visit for every on-board square a knight on sq reaches.
func knightTargets(sq chess.Square, visit func(chess.Square)) {
	for _, jump := range knightJumps {
		if chess.DistanceToEdge(sq, jump.Long) < 2 || chess.DistanceToEdge(sq, jump.Short) < 1 {
			continue
		}
		visit(sq + chess.Square(2*jump.Long.Offset()+jump.Short.Offset()))
	}
}

// kingTargets calls visit for every on-board square adjacent to sq.
func kingTargets(sq chess.Square, visit func(chess.Square)) {
	for _, dir := range chess.AllDirections {
		if chess.DistanceToEdge(sq, dir) >= 1 {
			visit(sq + chess.Square(dir.Offset()))
		}
	}
}

// rayTargets calls visit for each square along the rays from sq, stopping
// each ray at (and including) the first occupied square.
func rayTargets(pos *chess.Position, sq chess.Square, dirs []chess.Direction, visit func(chess.Square)) {
	for _, dir := range dirs {
		offset := chess.Square(dir.Offset())
		target := sq
		for n := chess.DistanceToEdge(sq, dir); n > 0; n-- {
			target += offset
			visit(target)
			if pos.Squares[target] != chess.Empty {
				break
			}
		}
	}
}

// appendIfAvailable appends from->to unless the target holds a piece of the mover.
func appendIfAvailable(moves []chess.Move, pos *chess.Position, from, to chess.Square) []chess.Move {
	if pos.Squares[to].IsColor(pos.ToMove) {
		return moves
	}
	return append(moves, chess.NewMove(from, to))
}

// appendKnightMoves appends knight jumps to empty or enemy squares.
func appendKnightMoves(moves []chess.Move, pos *chess.Position, sq chess.Square) []chess.Move {
	knightTargets(sq, func(to chess.Square) {
		moves = appendIfAvailable(moves, pos, sq, to)
	})
	return moves
}

// appendKingMoves appends single king steps; castling is handled separately.
func appendKingMoves(moves []chess.Move, pos *chess.Position, sq chess.Square) []chess.Move {
	kingTargets(sq, func(to chess.Square) {
		moves = appendIfAvailable(moves, pos, sq, to)
	})
	return moves
}

// appendSlidingMoves appends bishop, rook or queen moves along the given rays.
func appendSlidingMoves(moves []chess.Move, pos *chess.Position, sq chess.Square, dirs []chess.Direction) []chess.Move {
	rayTargets(pos, sq, dirs, func(to chess.Square) {
		moves = appendIfAvailable(moves, pos, sq, to)
	})
	return moves
}
