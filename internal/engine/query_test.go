package engine

import (
	"errors"
	"testing"

	"github.com/lgbarn/movecheck-go/internal/chess"
	mcerrors "github.com/lgbarn/movecheck-go/internal/errors"
	"github.com/lgbarn/movecheck-go/internal/testutil"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want chess.Kind
	}{
		{"N", chess.Knight},
		{"n", chess.Knight},
		{"knight", chess.Knight},
		{"KNIGHT", chess.Knight},
		{"R", chess.Rook},
		{"bishop", chess.Bishop},
		{"q", chess.Queen},
		{"King", chess.King},
		{"P", chess.Pawn},
		{" rook ", chess.Rook},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		testutil.AssertNoError(t, err, "ParseKind(%q)", tt.in)
		testutil.AssertEqual(t, got, tt.want, "ParseKind(%q)", tt.in)
	}

	for _, bad := range []string{"", "x", "horse", "RR"} {
		if _, err := ParseKind(bad); !errors.Is(err, mcerrors.ErrInvalidQuery) {
			t.Errorf("ParseKind(%q) error = %v, want ErrInvalidQuery", bad, err)
		}
	}
}

func TestParseQuery(t *testing.T) {
	tests := []struct {
		line string
		want Query
	}{
		{"R 0,0 0,7", Query{Kind: chess.Rook, From: chess.Pt(0, 0), To: chess.Pt(0, 7)}},
		{"knight 4,4 6,5", Query{Kind: chess.Knight, From: chess.Pt(4, 4), To: chess.Pt(6, 5)}},
		{"  Q\t2,2   5,5 ", Query{Kind: chess.Queen, From: chess.Pt(2, 2), To: chess.Pt(5, 5)}},
		{"B 8,0 -1,12", Query{Kind: chess.Bishop, From: chess.Pt(8, 0), To: chess.Pt(-1, 12)}},
		{"p 6,4 4,4", Query{Kind: chess.Pawn, From: chess.Pt(6, 4), To: chess.Pt(4, 4)}},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := ParseQuery(tt.line)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

func TestParseQuery_Errors(t *testing.T) {
	for _, line := range []string{
		"",
		"R 0,0",
		"R 0,0 0,7 extra",
		"X 0,0 0,7",
		"R 0;0 0,7",
		"R 0,0 a,7",
		"R 0,0 0,",
	} {
		t.Run(line, func(t *testing.T) {
			if _, err := ParseQuery(line); !errors.Is(err, mcerrors.ErrInvalidQuery) {
				t.Errorf("ParseQuery(%q) error = %v, want ErrInvalidQuery", line, err)
			}
		})
	}
}

func TestQuery_StringRoundTrip(t *testing.T) {
	q := Query{Kind: chess.Knight, From: chess.Pt(4, 4), To: chess.Pt(6, 5)}
	testutil.AssertEqual(t, q.String(), "N 4,4 6,5")

	back, err := ParseQuery(q.String())
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, back, q)
}

func TestQuery_Evaluate(t *testing.T) {
	board := testutil.BoardWith(8, map[chess.Point]chess.Piece{chess.Pt(0, 4): chess.W(chess.Pawn)})

	ok, err := Query{Kind: chess.Rook, From: chess.Pt(0, 0), To: chess.Pt(0, 7)}.Evaluate(board)
	testutil.AssertNoError(t, err)
	testutil.AssertFalse(t, ok)

	_, err = Query{Kind: chess.Rook, From: chess.Pt(8, 0), To: chess.Pt(0, 7)}.Evaluate(board)
	testutil.AssertErrorIs(t, err, mcerrors.ErrOutOfRange)
}
