package engine

import (
	"fmt"
	"math/rand"

	"github.com/lgbarn/hourglass/internal/chess"
	"github.com/lgbarn/hourglass/internal/errors"
)

// Scorer evaluates a position from the point of view of the side to move.
// Scores are zero-sum: the same position scored with the other side to
// move would give the negated value. Implementations used for reproducible
// results must be pure.
type Scorer interface {
	Score(pos *chess.Position) float64
}

// ScoreFunc adapts an ordinary function to the Scorer interface.
type ScoreFunc func(pos *chess.Position) float64

// Score calls f(pos).
func (f ScoreFunc) Score(pos *chess.Position) float64 {
	return f(pos)
}

// Piece values used by MaterialScorer, in pawns.
var pieceValues = [...]float64{
	chess.Empty:  0,
	chess.King:   0,
	chess.Pawn:   1,
	chess.Knight: 3,
	chess.Bishop: 3,
	chess.Rook:   5,
	chess.Queen:  9,
}

// MaterialScorer counts material: the mover's pieces minus the opponent's.
type MaterialScorer struct{}

// Score implements Scorer.
func (MaterialScorer) Score(pos *chess.Position) float64 {
	var total float64
	for _, piece := range pos.Squares {
		if piece == chess.Empty {
			continue
		}
		value := pieceValues[piece.Type()]
		if piece.IsColor(pos.ToMove) {
			total += value
		} else {
			total -= value
		}
	}
	return total
}

// RandomScorer returns uniformly random scores in [-1, 1). It ignores the
// position entirely and is meant only as test scaffolding.
// It is not safe for concurrent use.
type RandomScorer struct {
	rng *rand.Rand
}

// NewRandomScorer creates a RandomScorer with its own seeded source.
func NewRandomScorer(seed int64) *RandomScorer {
	return &RandomScorer{rng: rand.New(rand.NewSource(seed))}
}

// Score implements Scorer.
func (s *RandomScorer) Score(*chess.Position) float64 {
	return s.rng.Float64()*2 - 1
}

// Scorer names accepted by ScorerByName.
const (
	ScorerMaterial = "material"
	ScorerRandom   = "random"
)

// ScorerByName returns the scorer registered under name. The random scorer
// is seeded with seed.
func ScorerByName(name string, seed int64) (Scorer, error) {
	switch name {
	case ScorerMaterial, "":
		return MaterialScorer{}, nil
	case ScorerRandom:
		return NewRandomScorer(seed), nil
	}
	return nil, errors.Wrap(errors.ErrInvalidConfig, fmt.Sprintf("unknown scorer %q", name))
}
