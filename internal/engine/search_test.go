package engine

import (
	stderrors "errors"
	"math"
	"testing"

	"github.com/lgbarn/hourglass/internal/chess"
	"github.com/lgbarn/hourglass/internal/errors"
	"github.com/lgbarn/hourglass/internal/hashing"
	"github.com/lgbarn/hourglass/internal/testutil"
)

const queenForPawnFEN = "4k3/8/8/3q4/4P3/8/8/4K3 w - - 0 1"

func TestMaterialScorer(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want float64
	}{
		{"start", InitialFEN, 0},
		{"white to move, down a queen for a pawn", queenForPawnFEN, -8},
		{"black to move, up a queen for a pawn", "4k3/8/8/3q4/4P3/8/8/4K3 b - - 0 1", 8},
		{"bare kings", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", 0},
		{"minor pieces and rook", "4k3/8/8/8/8/8/8/RNB1K3 w - - 0 1", 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, MaterialScorer{}.Score(mustFEN(t, tt.fen)), tt.want)
		})
	}
}

func TestSearch_DepthZeroScoresPosition(t *testing.T) {
	index, score := Search(mustFEN(t, queenForPawnFEN), 0, MaterialScorer{})
	testutil.AssertEqual(t, index, 0)
	testutil.AssertEqual(t, score, -8.0)
}

func TestBestMove(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		depth int
		want  string
	}{
		{"captures the queen", queenForPawnFEN, 1, "e4d5"},
		{"captures en passant", testutil.EnPassantFEN, 1, "e5d6"},
		{"promotes to a queen", "7k/P7/8/8/8/8/8/K7 w - - 0 1", 1, "a7a8q"},
		{"back rank mate", "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1", 2, "a1a8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := BestMove(mustFEN(t, tt.fen), tt.depth, MaterialScorer{})
			testutil.AssertTrue(t, ok, "BestMove found no move")
			testutil.AssertEqual(t, got.String(), tt.want)
		})
	}
}

// At depth 1 the search must pick the first move that maximises the negated
// score of the position it leads to.
func TestSearch_DepthOneMaximisesNegatedScore(t *testing.T) {
	scorers := map[string]Scorer{
		"material+key": ScoreFunc(func(p *chess.Position) float64 {
			return MaterialScorer{}.Score(p) + float64(hashing.Key(p)%997)/1000
		}),
		"mobility": ScoreFunc(func(p *chess.Position) float64 {
			return float64(len(GenerateLegalMoves(p)))
		}),
	}

	for name, fen := range testutil.TrickyFENs {
		pos := mustFEN(t, fen)
		moves := GenerateLegalMoves(pos)
		if len(moves) == 0 {
			continue
		}
		for scorerName, scorer := range scorers {
			t.Run(name+"/"+scorerName, func(t *testing.T) {
				wantIndex, wantScore := 0, math.Inf(-1)
				for i, m := range moves {
					if score := -scorer.Score(Apply(pos, m)); score > wantScore {
						wantIndex, wantScore = i, score
					}
				}

				index, score := Search(pos, 1, scorer)
				testutil.AssertEqual(t, index, wantIndex)
				testutil.AssertEqual(t, score, wantScore)
			})
		}
	}
}

func TestSearch_MateScoresInfinity(t *testing.T) {
	_, score := Search(mustFEN(t, "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1"), 2, MaterialScorer{})
	testutil.AssertTrue(t, math.IsInf(score, 1), "score %v; want +Inf", score)
}

func TestSearch_NoMoves(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want float64
	}{
		{"checkmate", testutil.TrickyFENs["checkmate"], math.Inf(-1)},
		{"stalemate", testutil.TrickyFENs["stalemate"], 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustFEN(t, tt.fen)
			for depth := 1; depth <= 3; depth++ {
				index, score := Search(pos, depth, MaterialScorer{})
				testutil.AssertEqual(t, index, 0)
				testutil.AssertEqual(t, score, tt.want, "depth %d", depth)
			}

			_, ok := BestMove(pos, 2, MaterialScorer{})
			testutil.AssertFalse(t, ok, "BestMove reported a move with none legal")
		})
	}
}

// Equal scores keep the first move in generation order.
func TestSearch_TiesKeepFirstMove(t *testing.T) {
	flat := ScoreFunc(func(*chess.Position) float64 { return 0 })
	pos := NewInitialPosition()

	for depth := 1; depth <= 2; depth++ {
		got, ok := BestMove(pos, depth, flat)
		testutil.AssertTrue(t, ok)
		testutil.AssertEqual(t, got, GenerateLegalMoves(pos)[0], "depth %d", depth)
	}
}

func TestSearch_DoesNotModifyPosition(t *testing.T) {
	pos := mustFEN(t, testutil.KiwipeteFEN)
	before := *pos
	Search(pos, 2, MaterialScorer{})
	testutil.AssertEqual(t, *pos, before)
}

func TestRandomScorer_Deterministic(t *testing.T) {
	pos := NewInitialPosition()

	first, ok := BestMove(pos, 2, NewRandomScorer(42))
	testutil.AssertTrue(t, ok)
	second, ok := BestMove(pos, 2, NewRandomScorer(42))
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, first, second)

	scorer := NewRandomScorer(7)
	for i := 0; i < 100; i++ {
		score := scorer.Score(pos)
		if score < -1 || score >= 1 {
			t.Fatalf("score %v outside [-1, 1)", score)
		}
	}
}

func TestScorerByName(t *testing.T) {
	for _, name := range []string{"", ScorerMaterial} {
		scorer, err := ScorerByName(name, 1)
		testutil.AssertNoError(t, err)
		if _, ok := scorer.(MaterialScorer); !ok {
			t.Errorf("ScorerByName(%q) = %T; want MaterialScorer", name, scorer)
		}
	}

	scorer, err := ScorerByName(ScorerRandom, 1)
	testutil.AssertNoError(t, err)
	if _, ok := scorer.(*RandomScorer); !ok {
		t.Errorf("ScorerByName(random) = %T; want *RandomScorer", scorer)
	}

	_, err = ScorerByName("alphabeta", 1)
	if !stderrors.Is(err, errors.ErrInvalidConfig) {
		t.Errorf("unknown scorer error = %v; want ErrInvalidConfig", err)
	}
}
