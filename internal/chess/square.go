package chess

// BoardSize is the number of ranks and files.
const BoardSize = 8

// NumSquares is the number of squares on the board.
const NumSquares = BoardSize * BoardSize

// Square is a board index in [0,64): rank*8+file, with a1 = 0 and h8 = 63.
type Square int

// NoSquare marks an absent square, such as no en passant target.
const NoSquare Square = -1

// Named squares used by castling.
const (
	A1 Square = 0
	B1 Square = 1
	C1 Square = 2
	D1 Square = 3
	E1 Square = 4
	F1 Square = 5
	G1 Square = 6
	H1 Square = 7
	A8 Square = 56
	B8 Square = 57
	C8 Square = 58
	D8 Square = 59
	E8 Square = 60
	F8 Square = 61
	G8 Square = 62
	H8 Square = 63
)

// NewSquare builds a square from zero-based file and rank.
func NewSquare(file, rank int) Square {
	return Square(rank*BoardSize + file)
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s >= 0 && s < NumSquares
}

// Rank returns the zero-based rank (0 is White's back rank).
func (s Square) Rank() int {
	return int(s) / BoardSize
}

// File returns the zero-based file (0 is the a-file).
func (s Square) File() int {
	return int(s) % BoardSize
}

// Name returns the algebraic name of the square, e.g. "e4", or "-" if it is off the board.
func (s Square) Name() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte('a' + s.File()), byte('1' + s.Rank())})
}

// String implements fmt.Stringer.
func (s Square) String() string {
	return s.Name()
}

// ParseSquare converts an algebraic square name such as "e4" to a square.
func ParseSquare(name string) (Square, bool) {
	if len(name) != 2 {
		return NoSquare, false
	}
	file, rank := name[0], name[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, false
	}
	return NewSquare(int(file-'a'), int(rank-'1')), true
}
