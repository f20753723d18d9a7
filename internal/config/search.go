package config

import (
	"fmt"

	"github.com/lgbarn/hourglass/internal/engine"
	"github.com/lgbarn/hourglass/internal/errors"
)

// MaxSearchDepth bounds the exhaustive search; each ply multiplies the work
// by the branching factor.
const MaxSearchDepth = 8

// SearchConfig holds settings for best-move search.
type SearchConfig struct {
	// Depth is the number of plies searched.
	Depth int

	// Scorer names the evaluation function ("material" or "random").
	Scorer string

	// Seed seeds the random scorer.
	Seed int64
}

// NewSearchConfig creates a SearchConfig with default values.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{
		Depth:  3,
		Scorer: engine.ScorerMaterial,
		Seed:   1,
	}
}

// Validate checks that the search configuration is valid.
func (s *SearchConfig) Validate() error {
	if s.Depth < 0 || s.Depth > MaxSearchDepth {
		return fmt.Errorf("search depth %d outside 0..%d: %w",
			s.Depth, MaxSearchDepth, errors.ErrInvalidConfig)
	}
	if _, err := engine.ScorerByName(s.Scorer, s.Seed); err != nil {
		return err
	}
	return nil
}

// NewScorer returns the configured scorer.
func (s *SearchConfig) NewScorer() (engine.Scorer, error) {
	return engine.ScorerByName(s.Scorer, s.Seed)
}
