package engine

import (
	"testing"

	"github.com/lgbarn/hourglass/internal/chess"
	"github.com/lgbarn/hourglass/internal/testutil"
)

func TestGenerateLegalMoves_Start(t *testing.T) {
	moves := GenerateLegalMoves(NewInitialPosition())
	testutil.AssertEqual(t, len(moves), 20)
}

func TestLegalMovesFrom(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		from string
		want []string
	}{
		{"pawn single and double push", InitialFEN, "e2", []string{"e2e3", "e2e4"}},
		{"knight from home", InitialFEN, "g1", []string{"g1f3", "g1h3"}},
		{"blocked rook", InitialFEN, "a1", []string{}},
		{"opponent piece", InitialFEN, "e7", []string{}},
		{"empty square", InitialFEN, "e4", []string{}},
		{"double push blocked on target", "4k3/8/8/8/4n3/8/4P3/4K3 w - - 0 1", "e2", []string{"e2e3"}},
		{"pushes blocked on first square", "4k3/8/8/8/8/4n3/4P3/4K3 w - - 0 1", "e2", []string{}},
		{"en passant", testutil.EnPassantFEN, "e5", []string{"e5d6", "e5e6"}},
		{"pinned en passant", "8/8/8/KPp4r/8/8/8/7k w - c6 0 2", "b5", []string{"b5b6"}},
		{"promotion with capture", testutil.PromotionFEN, "a7", []string{
			"a7a8b", "a7a8n", "a7a8q", "a7a8r", "a7b8b", "a7b8n", "a7b8q", "a7b8r",
		}},
		{"black pawn", "4k3/3p4/8/8/8/8/8/4K3 b - - 0 1", "d7", []string{"d7d5", "d7d6"}},
		{"black promotion", "4k3/8/8/8/8/8/p7/4K3 b - - 0 1", "a2", []string{"a2a1b", "a2a1n", "a2a1q", "a2a1r"}},
		{"pinned bishop", "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1", "e2", []string{}},
		{"pinned rook slides along pin", "4k3/4r3/8/8/8/8/4R3/4K3 w - - 0 1", "e2", []string{
			"e2e3", "e2e4", "e2e5", "e2e6", "e2e7",
		}},
		{"king avoids attacked squares", "4k3/8/8/8/8/8/3r4/4K3 w - - 0 1", "e1", []string{"e1d2", "e1f1"}},
		{"corner knight", "N3k3/8/8/8/8/8/8/4K3 w - - 0 1", "a8", []string{"a8b6", "a8c7"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustFEN(t, tt.fen)
			got := testutil.MoveStrings(LegalMovesFrom(pos, sq(tt.from)))
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestCastlingGeneration(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		kingside  bool
		queenside bool
	}{
		{"both sides open", testutil.CastlingFEN, true, true},
		{"no rights", "r3k2r/8/8/8/8/8/8/R3K2R w - - 0 1", false, false},
		{"kingside right only", "r3k2r/8/8/8/8/8/8/R3K2R w K - 0 1", true, false},
		{"transit square attacked", "r3k2r/8/8/8/8/8/5r2/R3K2R w KQkq - 0 1", false, true},
		{"king in check", "r3k2r/8/8/8/8/8/4r3/R3K2R w KQkq - 0 1", false, false},
		{"destination attacked", "r3k2r/8/8/8/8/8/6r1/R3K2R w KQkq - 0 1", false, true},
		{"rook attacked", "r3k2r/8/8/8/8/8/7r/R3K2R w KQkq - 0 1", true, true},
		{"b-file attacked", "r3k2r/8/8/8/8/8/1r6/R3K2R w KQkq - 0 1", true, true},
		{"b1 occupied", "r3k2r/8/8/8/8/8/8/RN2K2R w KQkq - 0 1", true, false},
		{"f1 occupied", "r3k2r/8/8/8/8/8/8/R3KB1R w KQkq - 0 1", false, true},
		{"rook missing", "r3k2r/8/8/8/8/8/8/R3K3 w KQkq - 0 1", false, true},
		{"king off home square", "r3k2r/8/8/8/8/8/8/R2K3R w KQkq - 0 1", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustFEN(t, tt.fen)
			moves := GenerateLegalMoves(pos)
			kingside := containsMove(moves, mv("e1g1"))
			queenside := containsMove(moves, mv("e1c1"))
			if kingside != tt.kingside {
				t.Errorf("e1g1 generated = %v; want %v", kingside, tt.kingside)
			}
			if queenside != tt.queenside {
				t.Errorf("e1c1 generated = %v; want %v", queenside, tt.queenside)
			}
		})
	}
}

func TestCastlingGeneration_Black(t *testing.T) {
	pos := mustFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1")
	moves := GenerateLegalMoves(pos)
	testutil.AssertTrue(t, containsMove(moves, mv("e8g8")), "e8g8")
	testutil.AssertTrue(t, containsMove(moves, mv("e8c8")), "e8c8")
	testutil.AssertFalse(t, containsMove(moves, mv("e1g1")), "white castling generated for black")
}

// Pseudo-legal generation ignores pins; legal generation removes them.
func TestGeneratePseudoLegalMovesFor_IgnoresPins(t *testing.T) {
	pos := mustFEN(t, "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1")

	pseudo := GeneratePseudoLegalMovesFor(pos, sq("e2"))
	testutil.AssertEqual(t, len(pseudo), 9)
	testutil.AssertEqual(t, len(LegalMovesFrom(pos, sq("e2"))), 0)
}

func TestGenerateAttackMap(t *testing.T) {
	t.Run("start position", func(t *testing.T) {
		attacked := GenerateAttackMap(NewInitialPosition(), chess.White)
		for file := 0; file < chess.BoardSize; file++ {
			if !attacked[chess.NewSquare(file, 2)] {
				t.Errorf("%v should be attacked", chess.NewSquare(file, 2))
			}
			if attacked[chess.NewSquare(file, 3)] {
				t.Errorf("%v should not be attacked", chess.NewSquare(file, 3))
			}
		}
		testutil.AssertTrue(t, attacked[sq("d1")], "d1 defended by king and queen neighbours")
		testutil.AssertFalse(t, attacked[sq("a1")], "a1")
	})

	t.Run("pawns attack diagonals only", func(t *testing.T) {
		attacked := GenerateAttackMap(mustFEN(t, "4k3/8/8/8/8/8/4P3/7K w - - 0 1"), chess.White)
		testutil.AssertTrue(t, attacked[sq("d3")], "d3")
		testutil.AssertTrue(t, attacked[sq("f3")], "f3")
		testutil.AssertFalse(t, attacked[sq("e3")], "e3")
		testutil.AssertFalse(t, attacked[sq("e4")], "e4")
	})

	t.Run("edge pawn does not wrap", func(t *testing.T) {
		attacked := GenerateAttackMap(mustFEN(t, "4k3/8/8/8/8/8/P6P/4K3 w - - 0 1"), chess.White)
		testutil.AssertTrue(t, attacked[sq("b3")], "b3")
		testutil.AssertTrue(t, attacked[sq("g3")], "g3")
		testutil.AssertFalse(t, attacked[sq("a4")], "a4")
		testutil.AssertFalse(t, attacked[sq("h4")], "h4")
	})

	t.Run("sliders stop at the first piece", func(t *testing.T) {
		attacked := GenerateAttackMap(mustFEN(t, "4k3/8/8/8/p7/8/8/R3K3 w - - 0 1"), chess.White)
		testutil.AssertTrue(t, attacked[sq("a3")], "a3")
		testutil.AssertTrue(t, attacked[sq("a4")], "a4 holds the blocker")
		testutil.AssertFalse(t, attacked[sq("a5")], "a5 is behind the blocker")
		testutil.AssertTrue(t, attacked[sq("d1")], "d1")
	})

	t.Run("black pawns attack downwards", func(t *testing.T) {
		attacked := GenerateAttackMap(mustFEN(t, "4k3/4p3/8/8/8/8/8/4K3 w - - 0 1"), chess.Black)
		testutil.AssertTrue(t, attacked[sq("d6")], "d6")
		testutil.AssertTrue(t, attacked[sq("f6")], "f6")
		testutil.AssertFalse(t, attacked[sq("e6")], "e6 is a push square, not a target")
	})
}

func TestIsInCheck(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		player chess.Player
		want   bool
	}{
		{"start white", InitialFEN, chess.White, false},
		{"start black", InitialFEN, chess.Black, false},
		{"fool's mate", testutil.TrickyFENs["checkmate"], chess.White, true},
		{"rook check", "4k3/8/8/8/8/8/4r3/4K3 w - - 0 1", chess.White, true},
		{"blocked rook", "4k3/8/8/8/8/8/4r3/4K3 w - - 0 1", chess.Black, false},
		{"knight check", "4k3/8/8/8/8/5n2/8/4K3 w - - 0 1", chess.White, true},
		{"pawn check", "4k3/8/8/8/8/8/3p4/4K3 w - - 0 1", chess.White, true},
		{"pawn in front is no check", "4k3/8/8/8/8/8/4p3/4K3 w - - 0 1", chess.White, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsInCheck(mustFEN(t, tt.fen), tt.player)
			if got != tt.want {
				t.Errorf("IsInCheck(%v) = %v; want %v", tt.player, got, tt.want)
			}
		})
	}
}

// Every legal move list must agree with an independent generator.
func TestGenerateLegalMoves_MatchesCorentings(t *testing.T) {
	for name, fen := range testutil.TrickyFENs {
		t.Run(name, func(t *testing.T) {
			want, err := testutil.CorentingsMoves(fen)
			testutil.AssertNoError(t, err)
			got := testutil.MoveStrings(GenerateLegalMoves(mustFEN(t, fen)))
			testutil.AssertEqual(t, got, want)
		})
	}
}

// The positions one ply below each fixture must agree too; this exercises the
// en passant target, castling rights and promotions written by move application.
func TestGenerateLegalMoves_ChildrenMatchCorentings(t *testing.T) {
	for name, fen := range testutil.TrickyFENs {
		t.Run(name, func(t *testing.T) {
			pos := mustFEN(t, fen)
			for _, m := range GenerateLegalMoves(pos) {
				childFEN := PositionToFEN(Apply(pos, m))
				want, err := testutil.CorentingsMoves(childFEN)
				if err != nil {
					t.Fatalf("after %v: corentings rejected %q: %v", m, childFEN, err)
				}
				got := testutil.MoveStrings(GenerateLegalMoves(Apply(pos, m)))
				testutil.AssertEqual(t, got, want, "after %v (%s)", m, childFEN)
			}
		})
	}
}

func TestGenerateLegalMoves_MatchesDragontooth(t *testing.T) {
	for _, tc := range testutil.PerftCases {
		t.Run(tc.Name, func(t *testing.T) {
			got := testutil.MoveStrings(GenerateLegalMoves(mustFEN(t, tc.FEN)))
			testutil.AssertEqual(t, got, testutil.DragontoothMoves(tc.FEN))
		})
	}
}

func containsMove(moves []chess.Move, m chess.Move) bool {
	for _, candidate := range moves {
		if candidate == m {
			return true
		}
	}
	return false
}
