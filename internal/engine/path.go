package engine

import "github.com/lgbarn/movecheck-go/internal/chess"

// The four ray scanners below each answer whether to lies on one line
// through from and every square strictly between them is empty. Neither
// endpoint is inspected. from == to lies on every line and has an empty ray.

// isVerticalClear checks the column through from.
func isVerticalClear(board *chess.Board, from, to chess.Point) bool {
	if to.Col != from.Col {
		return false
	}
	return isRayClear(board, from, to, sign(to.Row-from.Row), 0)
}

// isHorizontalClear checks the row through from.
func isHorizontalClear(board *chess.Board, from, to chess.Point) bool {
	if to.Row != from.Row {
		return false
	}
	return isRayClear(board, from, to, 0, sign(to.Col-from.Col))
}

// isDiagonalClear checks the diagonal on which row-col is constant.
func isDiagonalClear(board *chess.Board, from, to chess.Point) bool {
	if from.Row-from.Col != to.Row-to.Col {
		return false
	}
	dir := sign(to.Col - from.Col)
	return isRayClear(board, from, to, dir, dir)
}

// isAntiDiagonalClear checks the anti-diagonal on which row+col is constant.
func isAntiDiagonalClear(board *chess.Board, from, to chess.Point) bool {
	if from.Row+from.Col != to.Row+to.Col {
		return false
	}
	dir := sign(to.Col - from.Col)
	return isRayClear(board, from, to, -dir, dir)
}

// isRayClear walks from from towards to in steps of (rowDir, colDir),
// stopping before to. The caller guarantees to is reachable by such steps.
func isRayClear(board *chess.Board, from, to chess.Point, rowDir, colDir int) bool {
	row := from.Row + rowDir
	col := from.Col + colDir

	for row != to.Row || col != to.Col {
		if !board.Get(row, col).IsEmpty() {
			return false
		}
		row += rowDir
		col += colDir
	}

	return true
}
