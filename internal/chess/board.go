package chess

import "fmt"

// Position holds the full state of a game: the squares, castling rights, side
// to move, en passant target and the move clocks.
//
// A Position is a plain value with no pointers, so copying it is enough to
// explore a hypothetical move. Positions are comparable with ==.
//
// The engine assumes exactly one king of each colour is on the board.
type Position struct {
	// Squares indexed by Square, a1 = 0 ... h8 = 63.
	Squares [NumSquares]Piece

	// Castling permissions still held.
	CastleRights CastleRights

	// Who has the next move.
	ToMove Player

	// The square a pawn skipped over on the previous double push, or NoSquare.
	EnPassant Square

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint32

	// The current full move number, starting at 1.
	MoveNumber uint32
}

// NewPosition creates an empty position with White to move.
func NewPosition() *Position {
	return &Position{
		ToMove:     White,
		EnPassant:  NoSquare,
		MoveNumber: 1,
	}
}

// PieceAt returns the piece on a square, or Empty if the square is off the board.
func (p *Position) PieceAt(sq Square) Piece {
	if !sq.Valid() {
		return Empty
	}
	return p.Squares[sq]
}

// Set places a piece on a square. Off-board squares are ignored.
func (p *Position) Set(sq Square, piece Piece) {
	if sq.Valid() {
		p.Squares[sq] = piece
	}
}

// ActiveColor returns the player to move.
func (p *Position) ActiveColor() Player {
	return p.ToMove
}

// EnPassantTarget returns the en passant target square, if any.
func (p *Position) EnPassantTarget() (Square, bool) {
	return p.EnPassant, p.EnPassant.Valid()
}

// FindKing returns the square of the given player's king.
// It panics if the king is missing; callers must only pass positions that
// have a king of each colour.
func (p *Position) FindKing(player Player) Square {
	king := MakePiece(player, King)
	for sq, piece := range p.Squares {
		if piece == king {
			return Square(sq)
		}
	}
	panic(fmt.Sprintf("chess: no %s king on the board", player))
}

// HasKing reports whether the given player's king is on the board.
func (p *Position) HasKing(player Player) bool {
	king := MakePiece(player, King)
	for _, piece := range p.Squares {
		if piece == king {
			return true
		}
	}
	return false
}

// Copy creates a copy of the position.
func (p *Position) Copy() *Position {
	newPosition := &Position{}
	*newPosition = *p
	return newPosition
}

// String draws the board with rank 8 at the top, using FEN letters and '.' for empty squares.
func (p *Position) String() string {
	buf := make([]byte, 0, (BoardSize*2+1)*BoardSize)
	for rank := BoardSize - 1; rank >= 0; rank-- {
		for file := 0; file < BoardSize; file++ {
			piece := p.Squares[NewSquare(file, rank)]
			if piece == Empty {
				buf = append(buf, '.')
			} else {
				buf = append(buf, piece.Letter())
			}
			if file < BoardSize-1 {
				buf = append(buf, ' ')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
