// Package chess provides the board, piece and coordinate types used by the
// move validator.
package chess

import "fmt"

// Colour represents the side a piece belongs to.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Kind is a piece's movement category, independent of colour.
// The numeric values are the piece ranks used by the signed identifier
// encoding (see Piece.ID).
type Kind int

const (
	NoKind Kind = iota
	Pawn
	Bishop
	Rook
	Knight
	Queen
	King
	NumKinds
)

var kindNames = [...]string{"None", "Pawn", "Bishop", "Rook", "Knight", "Queen", "King"}

// String returns the string representation of a kind.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'B', 'R', 'N', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// IsValid reports whether k names a real piece kind.
func (k Kind) IsValid() bool {
	return k > NoKind && k < NumKinds
}

// KindFromLetter converts a piece letter (either case) to a Kind.
// It returns NoKind for anything else.
func KindFromLetter(c byte) Kind {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'N', 'n':
		return Knight
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return NoKind
	}
}

// Piece is the content of a square: a kind plus the colour that owns it.
// The zero value is Nothing.
type Piece struct {
	Kind   Kind
	Colour Colour
}

// Nothing denotes an empty square.
var Nothing = Piece{}

// MakePiece creates a coloured piece value.
func MakePiece(colour Colour, kind Kind) Piece {
	return Piece{Kind: kind, Colour: colour}
}

// W creates a white piece.
func W(kind Kind) Piece {
	return MakePiece(White, kind)
}

// B creates a black piece.
func B(kind Kind) Piece {
	return MakePiece(Black, kind)
}

// IsEmpty reports whether p is Nothing.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// ID returns the signed identifier for p: the kind's rank, negated for Black.
// Nothing is 0.
func (p Piece) ID() int {
	if p.IsEmpty() {
		return 0
	}
	if p.Colour == Black {
		return -int(p.Kind)
	}
	return int(p.Kind)
}

// PieceFromID decodes a signed identifier. The second result is false when
// the magnitude is not a valid kind.
func PieceFromID(id int) (Piece, bool) {
	if id == 0 {
		return Nothing, true
	}
	colour := White
	if id < 0 {
		colour = Black
		id = -id
	}
	kind := Kind(id)
	if !kind.IsValid() {
		return Nothing, false
	}
	return MakePiece(colour, kind), true
}

// Letter returns the FEN letter for p: uppercase for White, lowercase for
// Black, and '.' for Nothing.
func (p Piece) Letter() byte {
	if p.IsEmpty() {
		return '.'
	}
	l := p.Kind.Letter()
	if p.Colour == Black {
		l += 'a' - 'A'
	}
	return l
}

// String returns the string representation of a piece.
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Nothing"
	}
	return p.Colour.String() + p.Kind.String()
}

// Point is a (row, column) coordinate on the board.
type Point struct {
	Row int
	Col int
}

// Pt is shorthand for Point{Row: row, Col: col}.
func Pt(row, col int) Point {
	return Point{Row: row, Col: col}
}

// String returns the point as "(row,col)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
