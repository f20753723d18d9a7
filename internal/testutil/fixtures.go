package testutil

// PerftCase is a position with its known move-tree leaf counts.
// Nodes[i] is the count at depth i+1.
type PerftCase struct {
	Name  string
	FEN   string
	Nodes []uint64
}

// Well-known FEN fixtures.
const (
	StartFEN     = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	KiwipeteFEN  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	EndgameFEN   = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	MirrorFEN    = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	TalkchessFEN = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
	EnPassantFEN = "k7/8/8/3pP3/8/8/8/7K w - d6 0 2"
	PromotionFEN = "1n5k/P7/8/8/8/8/8/7K w - - 0 1"
	CastlingFEN  = "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1"
)

// PerftCases lists positions with published perft counts.
var PerftCases = []PerftCase{
	{Name: "start", FEN: StartFEN, Nodes: []uint64{20, 400, 8902, 197281}},
	{Name: "kiwipete", FEN: KiwipeteFEN, Nodes: []uint64{48, 2039, 97862}},
	{Name: "endgame", FEN: EndgameFEN, Nodes: []uint64{14, 191, 2812, 43238}},
	{Name: "mirror", FEN: MirrorFEN, Nodes: []uint64{6, 264, 9467}},
	{Name: "talkchess", FEN: TalkchessFEN, Nodes: []uint64{44, 1486, 62379}},
	{Name: "en passant", FEN: EnPassantFEN, Nodes: []uint64{5, 19}},
	{Name: "promotion", FEN: PromotionFEN, Nodes: []uint64{11}},
}

// TrickyFENs are positions that exercise the special move rules: castling
// through attacked squares, pinned en passant captures, promotions with
// capture and checks that must be answered.
var TrickyFENs = map[string]string{
	"start":                StartFEN,
	"kiwipete":             KiwipeteFEN,
	"endgame":              EndgameFEN,
	"mirror":               MirrorFEN,
	"talkchess":            TalkchessFEN,
	"en passant":           EnPassantFEN,
	"promotion":            PromotionFEN,
	"castling":             CastlingFEN,
	"castle through check": "r3k2r/8/8/8/8/8/5r2/R3K2R w KQkq - 0 1",
	"castle out of check":  "r3k2r/8/8/8/8/8/4r3/R3K2R w KQkq - 0 1",
	"castle rook attacked": "r3k2r/8/8/8/8/8/7r/R3K2R w KQkq - 0 1",
	"pinned en passant":    "8/8/8/KPp4r/8/8/8/7k w - c6 0 2",
	"black to move":        "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
	"double check":         "4k3/8/8/8/8/5n2/3q4/4K3 w - - 0 1",
	"checkmate":            "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3",
	"stalemate":            "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
}
