package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/movecheck-go/internal/chess"
	"github.com/lgbarn/movecheck-go/internal/errors"
)

// ParseLayout creates a board from a FEN-style piece placement string of any
// size. Ranks are separated by '/', the first rank is row 0, a run of digits
// counts empty squares (so "10" is ten empties), and the letters KQRBNP are
// white pieces, kqrbnp black ones. The number of ranks sets the board size
// and every rank must describe exactly that many squares.
func ParseLayout(layout string) (*chess.Board, error) {
	layout = strings.TrimSpace(layout)
	if layout == "" {
		return nil, fmt.Errorf("empty layout: %w", errors.ErrInvalidLayout)
	}

	ranks := strings.Split(layout, "/")
	size := len(ranks)
	if size > chess.MaxSize {
		return nil, errors.Wrapf(errors.ErrInvalidLayout, "%d ranks, at most %d allowed", size, chess.MaxSize)
	}
	board := chess.NewBoard(size)

	for row, rank := range ranks {
		if err := parseLayoutRank(board, row, rank); err != nil {
			return nil, err
		}
	}

	return board, nil
}

// parseLayoutRank fills one row of board from its layout text.
func parseLayoutRank(board *chess.Board, row int, rank string) error {
	size := board.Size()
	col := 0

	for i := 0; i < len(rank); {
		c := rank[i]

		if c >= '0' && c <= '9' {
			j := i
			for j < len(rank) && rank[j] >= '0' && rank[j] <= '9' {
				j++
			}
			n, err := strconv.Atoi(rank[i:j])
			if err != nil || rank[i] == '0' {
				return errors.Wrapf(errors.ErrInvalidLayout, "rank %d: bad empty count %q", row, rank[i:j])
			}
			if n > size-col {
				return errors.Wrapf(errors.ErrInvalidLayout, "rank %d: more than %d squares", row, size)
			}
			col += n
			i = j
			continue
		}

		kind := chess.KindFromLetter(c)
		if kind == chess.NoKind {
			return errors.Wrapf(errors.ErrInvalidLayout, "rank %d: invalid piece character %q", row, c)
		}
		if col >= size {
			return errors.Wrapf(errors.ErrInvalidLayout, "rank %d: more than %d squares", row, size)
		}

		colour := chess.White
		if unicode.IsLower(rune(c)) {
			colour = chess.Black
		}
		board.Set(row, col, chess.MakePiece(colour, kind))
		col++
		i++
	}

	if col != size {
		return errors.Wrapf(errors.ErrInvalidLayout, "rank %d: %d squares, want %d", row, col, size)
	}
	return nil
}

// FormatLayout converts a board to the placement string read by ParseLayout.
func FormatLayout(board *chess.Board) string {
	var sb strings.Builder

	for row := 0; row < board.Size(); row++ {
		if row > 0 {
			sb.WriteByte('/')
		}
		emptyCount := 0
		for col := 0; col < board.Size(); col++ {
			piece := board.Get(row, col)
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteString(strconv.Itoa(emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteString(strconv.Itoa(emptyCount))
		}
	}

	return sb.String()
}
