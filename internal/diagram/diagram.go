// Package diagram renders positions as SVG board diagrams.
package diagram

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/lgbarn/hourglass/internal/chess"
	"github.com/lgbarn/hourglass/internal/engine"
)

// Options controls the look of a diagram.
type Options struct {
	// SquareSize is the edge of one square in pixels.
	SquareSize int

	// Flip draws the board from Black's side.
	Flip bool

	// Coordinates adds file letters and rank numbers around the board.
	Coordinates bool

	// Highlight marks squares, e.g. the origin and target of the last move.
	Highlight []chess.Square

	LightColor     string
	DarkColor      string
	HighlightColor string
	CheckColor     string
}

// DefaultOptions returns the options used by the command and the server.
func DefaultOptions() Options {
	return Options{
		SquareSize:     48,
		Coordinates:    true,
		LightColor:     "#f0d9b5",
		DarkColor:      "#b58863",
		HighlightColor: "#cdd26a",
		CheckColor:     "#e06666",
	}
}

var glyphs = map[chess.Piece]string{
	chess.King:   "♔",
	chess.Queen:  "♕",
	chess.Rook:   "♖",
	chess.Bishop: "♗",
	chess.Knight: "♘",
	chess.Pawn:   "♙",
}

// Glyph returns the Unicode chess symbol for a piece, or "" for an empty square.
func Glyph(p chess.Piece) string {
	g, ok := glyphs[p.Type()]
	if !ok {
		return ""
	}
	if p.IsColor(chess.Black) {
		// The black symbols follow the white ones at a fixed offset.
		return string([]rune(g)[0] + 6)
	}
	return g
}

// errWriter keeps the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

// Render writes pos as a standalone SVG document. The king of the side to
// move is marked when it is in check.
func Render(w io.Writer, pos *chess.Position, opts Options) error {
	if opts.SquareSize <= 0 {
		return fmt.Errorf("square size %d must be positive", opts.SquareSize)
	}
	size := opts.SquareSize
	margin := 0
	if opts.Coordinates {
		margin = size / 2
	}
	boardSize := size * chess.BoardSize

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(boardSize+2*margin, boardSize+2*margin)
	canvas.Title(engine.PositionToFEN(pos))

	marked := make(map[chess.Square]string, len(opts.Highlight)+1)
	for _, sq := range opts.Highlight {
		marked[sq] = opts.HighlightColor
	}
	if pos.HasKing(pos.ToMove) && engine.IsInCheck(pos, pos.ToMove) {
		marked[pos.FindKing(pos.ToMove)] = opts.CheckColor
	}

	canvas.Group(`class="board"`)
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		x, y := squareOrigin(sq, opts.Flip, size, margin)
		fill := opts.DarkColor
		class := "square dark"
		if (sq.File()+sq.Rank())%2 == 1 {
			fill = opts.LightColor
			class = "square light"
		}
		if color, ok := marked[sq]; ok {
			fill = color
			class += " marked"
		}
		canvas.Rect(x, y, size, size,
			fmt.Sprintf(`id="%s"`, sq.Name()),
			fmt.Sprintf(`class="%s"`, class),
			"fill:"+fill)
	}
	canvas.Gend()

	canvas.Group(`class="pieces"`, fmt.Sprintf("font-size:%dpx;text-anchor:middle", size*4/5))
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		piece := pos.Squares[sq]
		if piece == chess.Empty {
			continue
		}
		x, y := squareOrigin(sq, opts.Flip, size, margin)
		canvas.Text(x+size/2, y+size*4/5, Glyph(piece),
			fmt.Sprintf(`class="piece %c"`, piece.Letter()))
	}
	canvas.Gend()

	if opts.Coordinates {
		writeCoordinates(canvas, opts.Flip, size, margin)
	}
	canvas.End()
	return ew.err
}

// squareOrigin returns the top-left pixel of sq.
func squareOrigin(sq chess.Square, flip bool, size, margin int) (int, int) {
	col, row := sq.File(), chess.BoardSize-1-sq.Rank()
	if flip {
		col, row = chess.BoardSize-1-col, chess.BoardSize-1-row
	}
	return margin + col*size, margin + row*size
}

func writeCoordinates(canvas *svg.SVG, flip bool, size, margin int) {
	canvas.Group(`class="coordinates"`, fmt.Sprintf("font-size:%dpx;text-anchor:middle", size/3))
	boardSize := size * chess.BoardSize
	for i := 0; i < chess.BoardSize; i++ {
		file, rank := i, chess.BoardSize-1-i
		if flip {
			file, rank = chess.BoardSize-1-i, i
		}
		center := margin + i*size + size/2
		canvas.Text(center, margin+boardSize+margin*2/3, string(rune('a'+file)))
		canvas.Text(margin/2, center+size/8, string(rune('1'+rank)))
	}
	canvas.Gend()
}
