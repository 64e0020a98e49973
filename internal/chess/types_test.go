package chess

import "testing"

func TestKindRanks(t *testing.T) {
	// The ranks double as the magnitudes of signed piece identifiers.
	tests := []struct {
		kind Kind
		want int
	}{
		{Pawn, 1},
		{Bishop, 2},
		{Rook, 3},
		{Knight, 4},
		{Queen, 5},
		{King, 6},
	}
	for _, tt := range tests {
		if int(tt.kind) != tt.want {
			t.Errorf("%v = %d; want %d", tt.kind, int(tt.kind), tt.want)
		}
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind   Kind
		name   string
		letter byte
	}{
		{NoKind, "None", ' '},
		{Pawn, "Pawn", 'P'},
		{Bishop, "Bishop", 'B'},
		{Rook, "Rook", 'R'},
		{Knight, "Knight", 'N'},
		{Queen, "Queen", 'Q'},
		{King, "King", 'K'},
		{Kind(42), "Unknown", '?'},
		{Kind(-1), "Unknown", '?'},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.name {
			t.Errorf("Kind(%d).String() = %q; want %q", int(tt.kind), got, tt.name)
		}
		if got := tt.kind.Letter(); got != tt.letter {
			t.Errorf("Kind(%d).Letter() = %q; want %q", int(tt.kind), got, tt.letter)
		}
	}
}

func TestKindFromLetter(t *testing.T) {
	for k := Pawn; k < NumKinds; k++ {
		upper := k.Letter()
		lower := upper + ('a' - 'A')
		if got := KindFromLetter(upper); got != k {
			t.Errorf("KindFromLetter(%q) = %v; want %v", upper, got, k)
		}
		if got := KindFromLetter(lower); got != k {
			t.Errorf("KindFromLetter(%q) = %v; want %v", lower, got, k)
		}
	}
	if got := KindFromLetter('x'); got != NoKind {
		t.Errorf("KindFromLetter('x') = %v; want NoKind", got)
	}
}

func TestPieceID(t *testing.T) {
	tests := []struct {
		piece Piece
		id    int
	}{
		{Nothing, 0},
		{W(Pawn), 1},
		{W(King), 6},
		{B(Pawn), -1},
		{B(Knight), -4},
		{B(King), -6},
	}
	for _, tt := range tests {
		t.Run(tt.piece.String(), func(t *testing.T) {
			if got := tt.piece.ID(); got != tt.id {
				t.Errorf("ID() = %d; want %d", got, tt.id)
			}
			back, ok := PieceFromID(tt.id)
			if !ok || back != tt.piece {
				t.Errorf("PieceFromID(%d) = %v, %v; want %v, true", tt.id, back, ok, tt.piece)
			}
		})
	}
}

func TestPieceFromID_Invalid(t *testing.T) {
	for _, id := range []int{7, -7, 100} {
		if _, ok := PieceFromID(id); ok {
			t.Errorf("PieceFromID(%d) ok = true; want false", id)
		}
	}
}

func TestPieceLetter(t *testing.T) {
	tests := []struct {
		piece Piece
		want  byte
	}{
		{Nothing, '.'},
		{W(Queen), 'Q'},
		{B(Queen), 'q'},
		{W(Knight), 'N'},
		{B(Bishop), 'b'},
	}
	for _, tt := range tests {
		if got := tt.piece.Letter(); got != tt.want {
			t.Errorf("%v.Letter() = %q; want %q", tt.piece, got, tt.want)
		}
	}
}

func TestPieceIsEmpty(t *testing.T) {
	if !Nothing.IsEmpty() {
		t.Error("Nothing.IsEmpty() = false")
	}
	if (Piece{}).ID() != 0 {
		t.Error("zero Piece is not Nothing")
	}
	if W(Rook).IsEmpty() || B(Rook).IsEmpty() {
		t.Error("rook IsEmpty() = true")
	}
}

func TestPointString(t *testing.T) {
	if got := Pt(3, 11).String(); got != "(3,11)" {
		t.Errorf("Pt(3, 11).String() = %q; want %q", got, "(3,11)")
	}
}
