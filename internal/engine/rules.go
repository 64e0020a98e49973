// Package engine decides whether a piece can travel between two squares of a
// board under its geometric movement rule.
//
// The checks are purely geometric: the colour of the moving piece and of any
// occupant is never consulted, so whether landing on a friendly piece is a
// legal capture is left to the caller. A source square outside the board is
// an error; a destination outside the board is simply unreachable.
package engine

import (
	"fmt"

	"github.com/lgbarn/movecheck-go/internal/chess"
	"github.com/lgbarn/movecheck-go/internal/errors"
)

// MoveAvailable reports whether a piece of the given kind standing on from
// can move to to on board. Blocking pieces are looked for only on the
// squares strictly between the two endpoints.
//
// It returns a *errors.RangeError if from is off the board and
// errors.ErrUnsupportedKind for kinds without a movement rule (Pawn).
// The board is never modified.
func MoveAvailable(board *chess.Board, kind chess.Kind, from, to chess.Point) (bool, error) {
	if !board.IsPointInside(from) {
		return false, &errors.RangeError{Row: from.Row, Col: from.Col, Size: board.Size()}
	}

	var rule func(*chess.Board, chess.Point, chess.Point) bool
	switch kind {
	case chess.Knight:
		rule = knightMove
	case chess.Rook:
		rule = rookMove
	case chess.Bishop:
		rule = bishopMove
	case chess.Queen:
		rule = queenMove
	case chess.King:
		rule = kingMove
	default:
		return false, fmt.Errorf("%v: %w", kind, errors.ErrUnsupportedKind)
	}

	if !board.IsPointInside(to) {
		return false, nil
	}
	return rule(board, from, to), nil
}

// PieceMoveAvailable is MoveAvailable for a coloured piece. Only the piece's
// kind matters.
func PieceMoveAvailable(board *chess.Board, piece chess.Piece, from, to chess.Point) (bool, error) {
	return MoveAvailable(board, piece.Kind, from, to)
}

// SupportsKind reports whether kind has a movement rule.
func SupportsKind(kind chess.Kind) bool {
	switch kind {
	case chess.Knight, chess.Rook, chess.Bishop, chess.Queen, chess.King:
		return true
	}
	return false
}

// knightMove: (1,2) or (2,1) in either order. Knights jump, so nothing
// in between is looked at.
func knightMove(_ *chess.Board, from, to chess.Point) bool {
	rowDiff := abs(to.Row - from.Row)
	colDiff := abs(to.Col - from.Col)
	return (rowDiff == 1 && colDiff == 2) || (rowDiff == 2 && colDiff == 1)
}

func rookMove(board *chess.Board, from, to chess.Point) bool {
	return isVerticalClear(board, from, to) || isHorizontalClear(board, from, to)
}

func bishopMove(board *chess.Board, from, to chess.Point) bool {
	return isAntiDiagonalClear(board, from, to) || isDiagonalClear(board, from, to)
}

func queenMove(board *chess.Board, from, to chess.Point) bool {
	return rookMove(board, from, to) || bishopMove(board, from, to)
}

// kingMove: one step in any direction. Like the knight there are no
// intermediate squares to block.
func kingMove(_ *chess.Board, from, to chess.Point) bool {
	return abs(to.Row-from.Row) <= 1 && abs(to.Col-from.Col) <= 1
}
