package testutil

import (
	"sort"

	corentings "github.com/corentings/chess/v2"
	"github.com/dylhunn/dragontoothmg"

	"github.com/lgbarn/hourglass/internal/chess"
)

// MoveStrings returns the coordinate text of each move, sorted.
func MoveStrings(moves []chess.Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.String())
	}
	sort.Strings(out)
	return out
}

// DragontoothMoves returns the legal moves of a FEN position according to
// dragontoothmg, as sorted coordinate text.
func DragontoothMoves(fen string) []string {
	board := dragontoothmg.ParseFen(fen)
	moves := board.GenerateLegalMoves()

	out := make([]string, 0, len(moves))
	for i := range moves {
		out = append(out, moves[i].String())
	}
	sort.Strings(out)
	return out
}

// DragontoothPerft counts leaf nodes to the given depth with dragontoothmg.
func DragontoothPerft(fen string, depth int) uint64 {
	board := dragontoothmg.ParseFen(fen)
	return dragontoothPerft(&board, depth)
}

func dragontoothPerft(board *dragontoothmg.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := board.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := board.Apply(m)
		nodes += dragontoothPerft(board, depth-1)
		unapply()
	}
	return nodes
}

// CorentingsMoves returns the legal moves of a FEN position according to
// corentings/chess, as sorted coordinate text.
func CorentingsMoves(fen string) ([]string, error) {
	opt, err := corentings.FEN(fen)
	if err != nil {
		return nil, err
	}
	game := corentings.NewGame(opt)
	moves := game.ValidMoves()

	out := make([]string, 0, len(moves))
	for i := range moves {
		out = append(out, corentings.UCINotation{}.Encode(game.Position(), &moves[i]))
	}
	sort.Strings(out)
	return out, nil
}
