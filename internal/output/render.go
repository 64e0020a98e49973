// Package output draws boards and writes query results as text or JSON.
package output

import (
	"bufio"
	"io"

	"github.com/lgbarn/movecheck-go/internal/chess"
	"github.com/lgbarn/movecheck-go/internal/config"
)

var unicodeGlyphs = map[chess.Piece]string{
	chess.W(chess.King):   "♔",
	chess.W(chess.Queen):  "♕",
	chess.W(chess.Rook):   "♖",
	chess.W(chess.Bishop): "♗",
	chess.W(chess.Knight): "♘",
	chess.W(chess.Pawn):   "♙",
	chess.B(chess.King):   "♚",
	chess.B(chess.Queen):  "♛",
	chess.B(chess.Rook):   "♜",
	chess.B(chess.Bishop): "♝",
	chess.B(chess.Knight): "♞",
	chess.B(chess.Pawn):   "♟",
}

// Placeholders for empty squares, indexed by square parity.
var (
	unicodeEmpty = [2]string{"·", "▪"}
	asciiEmpty   = [2]string{".", ":"}
)

// Glyph returns the symbol for a piece in the given set. Nothing and
// unknown kinds map to "?"; use SquareGlyph to draw empty squares.
func Glyph(piece chess.Piece, set config.GlyphSet) string {
	if piece.IsEmpty() || !piece.Kind.IsValid() {
		return "?"
	}
	if set == config.ASCIIGlyphs {
		return string(piece.Letter())
	}
	return unicodeGlyphs[piece]
}

// SquareGlyph returns the symbol drawn for the square at (row, col): the
// piece's glyph, or an alternating placeholder when the square is empty.
func SquareGlyph(piece chess.Piece, row, col int, set config.GlyphSet) string {
	if !piece.IsEmpty() {
		return Glyph(piece, set)
	}
	parity := (row + col) % 2
	if set == config.ASCIIGlyphs {
		return asciiEmpty[parity]
	}
	return unicodeEmpty[parity]
}

// RenderBoard writes the board to w, one row per line, row 0 first.
func RenderBoard(w io.Writer, board *chess.Board, set config.GlyphSet) error {
	bw := bufio.NewWriter(w)
	for row := 0; row < board.Size(); row++ {
		for col := 0; col < board.Size(); col++ {
			bw.WriteString(SquareGlyph(board.Get(row, col), row, col, set))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
