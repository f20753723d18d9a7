package engine

import (
	"github.com/lgbarn/hourglass/internal/chess"
	"github.com/lgbarn/hourglass/internal/hashing"
)

// DrawRuleResult contains the results of draw rule detection over a line of play.
type DrawRuleResult struct {
	// Has75MoveRule is true if a position was reached where 75 moves
	// (150 half-moves) have been made without a pawn move or capture.
	Has75MoveRule bool

	// Has5FoldRepetition is true if any position occurred 5 or more times.
	Has5FoldRepetition bool

	// HasInsufficientMaterial is true if the final position has insufficient
	// mating material for either side.
	HasInsufficientMaterial bool

	// HasMaterialOdds is true if the line started with non-standard material.
	HasMaterialOdds bool

	// Plies is the number of moves that were applied.
	Plies int

	// Position is the position after the last applied move.
	Position chess.Position
}

// AnalyzeDrawRules replays moves from start and reports which automatic draw
// conditions occurred and where the line ended. start is not modified. Replay stops at the first rejected move, whose error
// is returned together with the result for the moves before it.
func AnalyzeDrawRules(start *chess.Position, moves []chess.Move) (DrawRuleResult, error) {
	result := DrawRuleResult{
		HasMaterialOdds: !isStandardMaterial(start),
	}

	pos := *start
	seen := hashing.NewRepetitionTable()
	seen.Add(&pos)

	for _, m := range moves {
		if err := TryMove(&pos, m); err != nil {
			result.HasInsufficientMaterial = HasInsufficientMaterial(&pos)
			result.Position = pos
			return result, err
		}
		result.Plies++

		if pos.HalfmoveClock >= 150 {
			result.Has75MoveRule = true
		}

		if seen.Add(&pos) >= 5 {
			result.Has5FoldRepetition = true
		}
	}

	result.HasInsufficientMaterial = HasInsufficientMaterial(&pos)
	result.Position = pos
	return result, nil
}

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(pos *chess.Position) bool {
	var whitePieces, blackPieces []chess.Piece
	var whiteBishopOnLight, blackBishopOnLight bool

	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		piece := pos.Squares[sq]
		pieceType := piece.Type()

		// Kings don't count for material
		if piece == chess.Empty || pieceType == chess.King {
			continue
		}

		// Any pawn, rook, or queen means sufficient material
		if pieceType == chess.Pawn || pieceType == chess.Rook || pieceType == chess.Queen {
			return false
		}

		if piece.IsColor(chess.White) {
			whitePieces = append(whitePieces, pieceType)
			if pieceType == chess.Bishop {
				whiteBishopOnLight = isLightSquare(sq)
			}
		} else {
			blackPieces = append(blackPieces, pieceType)
			if pieceType == chess.Bishop {
				blackBishopOnLight = isLightSquare(sq)
			}
		}
	}

	// K vs K
	if len(whitePieces) == 0 && len(blackPieces) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(whitePieces) == 0 && len(blackPieces) == 1 {
		return blackPieces[0] == chess.Bishop || blackPieces[0] == chess.Knight
	}
	if len(blackPieces) == 0 && len(whitePieces) == 1 {
		return whitePieces[0] == chess.Bishop || whitePieces[0] == chess.Knight
	}

	// K+B vs K+B (same color bishops)
	if len(whitePieces) == 1 && len(blackPieces) == 1 {
		if whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop {
			return whiteBishopOnLight == blackBishopOnLight
		}
	}

	return false
}

// isLightSquare returns true if the given square is a light square.
func isLightSquare(sq chess.Square) bool {
	return (sq.File()+sq.Rank())%2 == 1
}

// standardMaterial is the piece count of each side in the starting position.
var standardMaterial = map[chess.Piece]int{
	chess.Pawn:   8,
	chess.Rook:   2,
	chess.Knight: 2,
	chess.Bishop: 2,
	chess.Queen:  1,
	chess.King:   1,
}

// isStandardMaterial checks if the position has standard starting material.
func isStandardMaterial(pos *chess.Position) bool {
	actualPieces := make(map[chess.Piece]int)
	for _, piece := range pos.Squares {
		if piece != chess.Empty {
			actualPieces[piece]++
		}
	}

	for _, player := range []chess.Player{chess.White, chess.Black} {
		for pieceType, expected := range standardMaterial {
			if actualPieces[chess.MakePiece(player, pieceType)] != expected {
				return false
			}
		}
	}
	return true
}
