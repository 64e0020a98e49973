package engine

import "github.com/lgbarn/movecheck-go/internal/chess"

// ReachableSquares returns every square other than from that a piece of the
// given kind on from could move to, in row-major order. Errors are those of
// MoveAvailable.
func ReachableSquares(board *chess.Board, kind chess.Kind, from chess.Point) ([]chess.Point, error) {
	// Surface range and kind errors even on a board with one square.
	if _, err := MoveAvailable(board, kind, from, from); err != nil {
		return nil, err
	}

	var targets []chess.Point
	for row := 0; row < board.Size(); row++ {
		for col := 0; col < board.Size(); col++ {
			to := chess.Pt(row, col)
			if to == from {
				continue
			}
			ok, err := MoveAvailable(board, kind, from, to)
			if err != nil {
				return nil, err
			}
			if ok {
				targets = append(targets, to)
			}
		}
	}
	return targets, nil
}
