package chess

// Direction is one of the eight compass directions on the board.
type Direction int

const (
	North Direction = iota
	South
	West
	East
	NorthWest
	SouthEast
	NorthEast
	SouthWest
	NumDirections
)

// Direction groups used by the sliding pieces and the king.
var (
	AllDirections    = [...]Direction{North, South, West, East, NorthWest, SouthEast, NorthEast, SouthWest}
	RookDirections   = [...]Direction{North, South, West, East}
	BishopDirections = [...]Direction{NorthWest, SouthEast, NorthEast, SouthWest}
)

var directionOffsets = [NumDirections]int{
	North:     8,
	South:     -8,
	West:      -1,
	East:      1,
	NorthWest: 7,
	SouthEast: -7,
	NorthEast: 9,
	SouthWest: -9,
}

// Offset returns the square-index delta of one step in the direction.
func (d Direction) Offset() int {
	return directionOffsets[d]
}

// String returns the compass name of the direction.
func (d Direction) String() string {
	names := []string{"N", "S", "W", "E", "NW", "SE", "NE", "SW"}
	if d >= 0 && int(d) < len(names) {
		return names[d]
	}
	return "?"
}

// edgeDistance[sq][dir] is the number of steps from sq to the board edge in dir.
// It is filled once at package initialisation and never written again.
var edgeDistance = buildEdgeDistances()

func buildEdgeDistances() [NumSquares][NumDirections]int {
	var table [NumSquares][NumDirections]int
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			north := BoardSize - 1 - rank
			south := rank
			west := file
			east := BoardSize - 1 - file

			table[NewSquare(file, rank)] = [NumDirections]int{
				North:     north,
				South:     south,
				West:      west,
				East:      east,
				NorthWest: min(north, west),
				SouthEast: min(south, east),
				NorthEast: min(north, east),
				SouthWest: min(south, west),
			}
		}
	}
	return table
}

// DistanceToEdge returns how many steps can be taken from sq in dir before
// leaving the board.
func DistanceToEdge(sq Square, dir Direction) int {
	return edgeDistance[sq][dir]
}

// Step returns the square n steps from sq in dir, and false if that would
// leave the board.
func Step(sq Square, dir Direction, n int) (Square, bool) {
	if n > DistanceToEdge(sq, dir) {
		return NoSquare, false
	}
	return sq + Square(dir.Offset()*n), true
}
