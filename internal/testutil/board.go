package testutil

import (
	"testing"

	"github.com/lgbarn/movecheck-go/internal/chess"
)

// BoardWith returns a size×size board holding the given pieces.
func BoardWith(size int, pieces map[chess.Point]chess.Piece) *chess.Board {
	b := chess.NewBoard(size)
	for p, piece := range pieces {
		b.Put(p, piece)
	}
	return b
}

// MustUnchanged fails the test if after differs from before in any square.
func MustUnchanged(t *testing.T, before, after *chess.Board) {
	t.Helper()
	if !before.Equal(after) {
		t.Fatalf("board was modified: before %v occupied, after %v occupied",
			before.Occupied(), after.Occupied())
	}
}

// AllPoints returns every square of a size×size board in row-major order.
func AllPoints(size int) []chess.Point {
	points := make([]chess.Point, 0, size*size)
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			points = append(points, chess.Pt(r, c))
		}
	}
	return points
}
