// Package chess provides core chess types and operations.
package chess

// Player represents the side that owns a piece or has the move.
type Player int

const (
	White Player = iota
	Black
)

// String returns the string representation of a player.
func (p Player) String() string {
	if p == White {
		return "White"
	}
	return "Black"
}

// Opponent returns the other player.
func (p Player) Opponent() Player {
	if p == White {
		return Black
	}
	return White
}

// PieceColor returns the colour bits used to mark this player's pieces.
func (p Player) PieceColor() Piece {
	if p == White {
		return WhitePiece
	}
	return BlackPiece
}

// Forward returns the direction this player's pawns advance in.
func (p Player) Forward() Direction {
	if p == White {
		return North
	}
	return South
}

// ForwardStep returns the square-index offset of one pawn step (+8 for White, -8 for Black).
func (p Player) ForwardStep() int {
	if p == White {
		return BoardSize
	}
	return -BoardSize
}

// HomeRank returns the rank the player's king and rooks start on.
func (p Player) HomeRank() int {
	if p == White {
		return 0
	}
	return BoardSize - 1
}

// PawnStartRank returns the rank the player's pawns start on.
func (p Player) PawnStartRank() int {
	if p == White {
		return 1
	}
	return BoardSize - 2
}

// PromotionRank returns the rank on which the player's pawns promote.
func (p Player) PromotionRank() int {
	return p.Opponent().HomeRank()
}

// Piece is a packed value combining a piece type (low three bits) and a colour.
// The zero value is an empty square.
type Piece uint8

// Piece types.
const (
	Empty  Piece = 0
	King   Piece = 1
	Pawn   Piece = 2
	Knight Piece = 3
	Bishop Piece = 4
	Rook   Piece = 5
	Queen  Piece = 6
)

// Colour bits and masks.
const (
	WhitePiece Piece = 8
	BlackPiece Piece = 16

	TypeMask  Piece = 0b00111
	ColorMask Piece = 0b11000
)

// PromotionPieces lists the piece types a pawn may promote to, in generation order.
var PromotionPieces = [4]Piece{Knight, Bishop, Rook, Queen}

// MakePiece combines a player and a piece type.
func MakePiece(player Player, pieceType Piece) Piece {
	return player.PieceColor() | (pieceType & TypeMask)
}

// Type strips the colour, leaving the piece type.
func (p Piece) Type() Piece {
	return p & TypeMask
}

// Color strips the type, leaving the colour bits.
func (p Piece) Color() Piece {
	return p & ColorMask
}

// IsColor reports whether the piece belongs to the given player.
func (p Piece) IsColor(player Player) bool {
	return p&player.PieceColor() != 0
}

// Player returns the owner of the piece. ok is false for an empty square.
func (p Piece) Player() (player Player, ok bool) {
	switch p.Color() {
	case WhitePiece:
		return White, true
	case BlackPiece:
		return Black, true
	}
	return White, false
}

// IsSliding reports whether the piece moves along rays (bishop, rook, queen).
func (p Piece) IsSliding() bool {
	switch p.Type() {
	case Bishop, Rook, Queen:
		return true
	}
	return false
}

// String returns the name of the piece type.
func (p Piece) String() string {
	names := []string{"Empty", "King", "Pawn", "Knight", "Bishop", "Rook", "Queen"}
	if t := int(p.Type()); t < len(names) {
		return names[t]
	}
	return "Unknown"
}

// Letter returns the FEN letter of the piece: upper case for White, lower case
// for Black, and '?' for an empty or malformed value.
func (p Piece) Letter() byte {
	letters := []byte{'?', 'K', 'P', 'N', 'B', 'R', 'Q'}
	t := int(p.Type())
	if t == 0 || t >= len(letters) {
		return '?'
	}
	if p.Color() == BlackPiece {
		return letters[t] + ('a' - 'A')
	}
	return letters[t]
}

// PieceFromLetter converts a FEN letter to a coloured piece.
// Upper case is White, lower case is Black.
func PieceFromLetter(c byte) (Piece, bool) {
	player := White
	if c >= 'a' && c <= 'z' {
		player = Black
		c -= 'a' - 'A'
	}
	var pieceType Piece
	switch c {
	case 'K':
		pieceType = King
	case 'P':
		pieceType = Pawn
	case 'N':
		pieceType = Knight
	case 'B':
		pieceType = Bishop
	case 'R':
		pieceType = Rook
	case 'Q':
		pieceType = Queen
	default:
		return Empty, false
	}
	return MakePiece(player, pieceType), true
}

// CastleRights is a set of the four independent castling permissions.
type CastleRights uint8

const (
	WhiteKingSide CastleRights = 1 << iota
	WhiteQueenSide
	BlackKingSide
	BlackQueenSide

	NoCastleRights  CastleRights = 0
	AllCastleRights              = WhiteKingSide | WhiteQueenSide | BlackKingSide | BlackQueenSide
)

// Has reports whether all of the given rights are held.
func (c CastleRights) Has(rights CastleRights) bool {
	return c&rights == rights
}

// Revoke clears the given rights.
func (c *CastleRights) Revoke(rights CastleRights) {
	*c &^= rights
}

// RevokeAll clears both rights of a player.
func (c *CastleRights) RevokeAll(player Player) {
	c.Revoke(PlayerCastleRights(player))
}

// PlayerCastleRights returns both rights belonging to a player.
func PlayerCastleRights(player Player) CastleRights {
	if player == White {
		return WhiteKingSide | WhiteQueenSide
	}
	return BlackKingSide | BlackQueenSide
}

// String returns the FEN castling field, "-" when no rights are held.
func (c CastleRights) String() string {
	var buf []byte
	if c.Has(WhiteKingSide) {
		buf = append(buf, 'K')
	}
	if c.Has(WhiteQueenSide) {
		buf = append(buf, 'Q')
	}
	if c.Has(BlackKingSide) {
		buf = append(buf, 'k')
	}
	if c.Has(BlackQueenSide) {
		buf = append(buf, 'q')
	}
	if len(buf) == 0 {
		return "-"
	}
	return string(buf)
}
