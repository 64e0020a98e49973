package chess

import "fmt"

// StandardSize is the side length of a regular chess board.
const StandardSize = 8

// MaxSize is the largest side length accepted when a board is built from
// external input.
const MaxSize = 1 << 10

// Board is an N×N grid of pieces stored row-major in a single slice.
// A Board is not safe for concurrent mutation; concurrent reads are fine.
type Board struct {
	size    int
	squares []Piece
}

// NewBoard creates a new empty board with the given side length.
// It panics if size is less than 1.
func NewBoard(size int) *Board {
	if size < 1 {
		panic(fmt.Sprintf("chess: invalid board size %d", size))
	}
	return &Board{
		size:    size,
		squares: make([]Piece, size*size),
	}
}

// NewStandardBoard creates a new empty 8×8 board.
func NewStandardBoard() *Board {
	return NewBoard(StandardSize)
}

// Size returns the side length of the board.
func (b *Board) Size() int {
	return b.size
}

// Get returns the piece at the given row and column.
// The coordinates are not bounds checked.
func (b *Board) Get(row, col int) Piece {
	return b.squares[row*b.size+col]
}

// Set places a piece at the given row and column.
// The coordinates are not bounds checked.
func (b *Board) Set(row, col int, piece Piece) {
	b.squares[row*b.size+col] = piece
}

// At returns the piece at p.
func (b *Board) At(p Point) Piece {
	return b.Get(p.Row, p.Col)
}

// Put places a piece at p.
func (b *Board) Put(p Point, piece Piece) {
	b.Set(p.Row, p.Col, piece)
}

// Clear empties the square at p.
func (b *Board) Clear(p Point) {
	b.Set(p.Row, p.Col, Nothing)
}

// IsInRange reports whether x is a valid row or column index.
func (b *Board) IsInRange(x int) bool {
	return x >= 0 && x < b.size
}

// IsPointInside reports whether both coordinates of p are in range.
func (b *Board) IsPointInside(p Point) bool {
	return b.IsInRange(p.Row) && b.IsInRange(p.Col)
}

// Occupied returns the non-empty squares in row-major order.
func (b *Board) Occupied() []Point {
	var points []Point
	for i, piece := range b.squares {
		if !piece.IsEmpty() {
			points = append(points, Point{Row: i / b.size, Col: i % b.size})
		}
	}
	return points
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	squares := make([]Piece, len(b.squares))
	copy(squares, b.squares)
	return &Board{size: b.size, squares: squares}
}

// Equal reports whether two boards have the same size and contents.
func (b *Board) Equal(other *Board) bool {
	if b == nil || other == nil {
		return b == other
	}
	if b.size != other.size {
		return false
	}
	for i := range b.squares {
		if b.squares[i] != other.squares[i] {
			return false
		}
	}
	return true
}
