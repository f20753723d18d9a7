// Package engine provides chess move generation, move application, FEN
// encoding and a brute-force negamax search.
package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/hourglass/internal/chess"
	"github.com/lgbarn/hourglass/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenFieldCount is the number of space-separated fields in a FEN string.
const fenFieldCount = 6

// NewPositionFromFEN creates a position from a FEN string.
//
// The string must hold exactly six fields separated by single spaces. Errors
// are *errors.FENError values wrapping errors.ErrInvalidFEN.
func NewPositionFromFEN(fen string) (*chess.Position, error) {
	parts := strings.Split(fen, " ")
	if len(parts) < fenFieldCount {
		return nil, errors.Missing(errors.FENField(len(parts)))
	}
	if len(parts) > fenFieldCount {
		return nil, errors.TooMany()
	}

	pos := chess.NewPosition()

	if err := parsePiecePositions(pos, parts[errors.FieldPlacement]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(pos, parts[errors.FieldActiveColor]); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(pos, parts[errors.FieldCastling]); err != nil {
		return nil, err
	}
	if err := parseEnPassant(pos, parts[errors.FieldEnPassant]); err != nil {
		return nil, err
	}

	halfmove, err := parseCounter(errors.FieldHalfmove, parts[errors.FieldHalfmove])
	if err != nil {
		return nil, err
	}
	fullmove, err := parseCounter(errors.FieldFullmove, parts[errors.FieldFullmove])
	if err != nil {
		return nil, err
	}
	pos.HalfmoveClock = halfmove
	pos.MoveNumber = fullmove

	return pos, nil
}

// LoadFEN replaces the contents of pos with the position described by fen.
// On error pos is left untouched.
func LoadFEN(pos *chess.Position, fen string) error {
	loaded, err := NewPositionFromFEN(fen)
	if err != nil {
		return err
	}
	*pos = *loaded
	return nil
}

// NewInitialPosition creates a position with the standard starting setup.
func NewInitialPosition() *chess.Position {
	pos, _ := NewPositionFromFEN(InitialFEN)
	return pos
}

// parsePiecePositions parses the piece placement field, rank 8 first.
// Ranks with fewer than eight files are accepted and left empty on the right.
func parsePiecePositions(pos *chess.Position, placement string) error {
	rank := chess.BoardSize - 1
	file := 0

	for i := 0; i < len(placement); i++ {
		c := placement[i]
		switch {
		case c == '/':
			rank--
			file = 0
			if rank < 0 {
				return errors.Invalid(errors.FieldPlacement, i, "too many ranks")
			}
		case c >= '1' && c <= '8':
			file += int(c - '0')
			if file > chess.BoardSize {
				return errors.Invalid(errors.FieldPlacement, i, "rank has more than 8 files")
			}
		default:
			piece, ok := chess.PieceFromLetter(c)
			if !ok {
				return errors.Invalid(errors.FieldPlacement, i, fmt.Sprintf("invalid piece character %q", c))
			}
			if file >= chess.BoardSize {
				return errors.Invalid(errors.FieldPlacement, i, "rank has more than 8 files")
			}
			pos.Set(chess.NewSquare(file, rank), piece)
			file++
		}
	}
	return nil
}

// parseSideToMove parses the active colour field.
func parseSideToMove(pos *chess.Position, field string) error {
	switch field {
	case "w":
		pos.ToMove = chess.White
	case "b":
		pos.ToMove = chess.Black
	default:
		return errors.Invalid(errors.FieldActiveColor, 0, fmt.Sprintf("expected w or b, got %q", field))
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(pos *chess.Position, field string) error {
	pos.CastleRights = chess.NoCastleRights
	if field == "-" {
		return nil
	}
	if field == "" {
		return errors.Invalid(errors.FieldCastling, 0, "empty field")
	}

	for i := 0; i < len(field); i++ {
		switch field[i] {
		case 'K':
			pos.CastleRights |= chess.WhiteKingSide
		case 'Q':
			pos.CastleRights |= chess.WhiteQueenSide
		case 'k':
			pos.CastleRights |= chess.BlackKingSide
		case 'q':
			pos.CastleRights |= chess.BlackQueenSide
		default:
			return errors.Invalid(errors.FieldCastling, i, fmt.Sprintf("invalid castling character %q", field[i]))
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(pos *chess.Position, field string) error {
	pos.EnPassant = chess.NoSquare
	if field == "-" {
		return nil
	}
	sq, ok := chess.ParseSquare(field)
	if !ok {
		return errors.Invalid(errors.FieldEnPassant, 0, fmt.Sprintf("invalid square %q", field))
	}
	pos.EnPassant = sq
	return nil
}

// parseCounter parses one of the two move clock fields as an unsigned integer.
func parseCounter(field errors.FENField, text string) (uint32, error) {
	for i := 0; i < len(text); i++ {
		if text[i] < '0' || text[i] > '9' {
			return 0, errors.Invalid(field, i, fmt.Sprintf("unexpected character %q", text[i]))
		}
	}
	n, err := strconv.ParseUint(text, 10, 32)
	if err != nil {
		return 0, errors.Invalid(field, 0, fmt.Sprintf("not an unsigned integer: %q", text))
	}
	return uint32(n), nil
}

// PositionToFEN converts a position to a FEN string.
func PositionToFEN(pos *chess.Position) string {
	var sb strings.Builder

	writePiecePositions(&sb, pos)
	sb.WriteByte(' ')
	writeSideToMove(&sb, pos)
	sb.WriteByte(' ')
	sb.WriteString(pos.CastleRights.String())
	sb.WriteByte(' ')
	sb.WriteString(pos.EnPassant.Name())
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", pos.HalfmoveClock, pos.MoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, pos *chess.Position) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := pos.PieceAt(chess.NewSquare(file, rank))
			if piece == chess.Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, pos *chess.Position) {
	if pos.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}
