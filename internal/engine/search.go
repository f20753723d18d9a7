package engine

import (
	"math"

	"github.com/lgbarn/hourglass/internal/chess"
)

// Search runs an exhaustive negamax search of the given depth and returns
// the index, within GenerateLegalMoves(pos), of the best move and its score
// for the side to move.
//
// At depth 0 or below the position is scored directly and the index is 0.
// With no legal moves the score is -Inf when the side to move is in check and
// 0 otherwise. Ties keep the earliest move in generation order.
func Search(pos *chess.Position, depth int, scorer Scorer) (int, float64) {
	if depth <= 0 {
		return 0, scorer.Score(pos)
	}

	moves := GenerateLegalMoves(pos)
	if len(moves) == 0 {
		if IsInCheck(pos, pos.ToMove) {
			return 0, math.Inf(-1)
		}
		return 0, 0
	}

	bestIndex, bestScore := 0, math.Inf(-1)
	for i, m := range moves {
		next := *pos
		applyMove(&next, m)
		_, score := Search(&next, depth-1, scorer)
		score = -score
		if score > bestScore {
			bestIndex, bestScore = i, score
		}
	}
	return bestIndex, bestScore
}

// BestMove returns the move chosen by Search, or false if the side to move
// has no legal moves.
func BestMove(pos *chess.Position, depth int, scorer Scorer) (chess.Move, bool) {
	moves := GenerateLegalMoves(pos)
	if len(moves) == 0 {
		return chess.Move{}, false
	}
	index, _ := Search(pos, depth, scorer)
	return moves[index], true
}
