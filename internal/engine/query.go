package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/movecheck-go/internal/chess"
	"github.com/lgbarn/movecheck-go/internal/errors"
)

// Query is a single move-legality question: can a piece of Kind move from
// From to To?
type Query struct {
	Kind chess.Kind
	From chess.Point
	To   chess.Point
}

// Evaluate answers the query against board.
func (q Query) Evaluate(board *chess.Board) (bool, error) {
	return MoveAvailable(board, q.Kind, q.From, q.To)
}

// String returns the query in the form accepted by ParseQuery.
func (q Query) String() string {
	return fmt.Sprintf("%c %d,%d %d,%d", q.Kind.Letter(), q.From.Row, q.From.Col, q.To.Row, q.To.Col)
}

var kindNames = map[string]chess.Kind{
	"pawn":   chess.Pawn,
	"bishop": chess.Bishop,
	"rook":   chess.Rook,
	"knight": chess.Knight,
	"queen":  chess.Queen,
	"king":   chess.King,
}

// ParseKind converts a piece letter (P, B, R, N, Q, K) or name ("knight")
// to a Kind, ignoring case. Parsing succeeds for every real kind, including
// those MoveAvailable rejects.
func ParseKind(s string) (chess.Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) == 1 {
		if k := chess.KindFromLetter(s[0]); k != chess.NoKind {
			return k, nil
		}
	}
	if k, ok := kindNames[s]; ok {
		return k, nil
	}
	return chess.NoKind, fmt.Errorf("unknown piece kind %q: %w", s, errors.ErrInvalidQuery)
}

// ParsePoint parses a "row,col" coordinate.
func ParsePoint(s string) (chess.Point, error) {
	row, col, ok := parsePoint(s)
	if !ok {
		return chess.Point{}, fmt.Errorf("bad coordinate %q: %w", s, errors.ErrInvalidQuery)
	}
	return chess.Pt(row, col), nil
}

// ParseQuery parses a line of the form "<kind> <row>,<col> <row>,<col>",
// for example "R 0,0 0,7" or "knight 4,4 6,5".
func ParseQuery(line string) (Query, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return Query{}, fmt.Errorf("expected 3 fields, got %d: %w", len(fields), errors.ErrInvalidQuery)
	}

	kind, err := ParseKind(fields[0])
	if err != nil {
		return Query{}, err
	}
	from, err := ParsePoint(fields[1])
	if err != nil {
		return Query{}, err
	}
	to, err := ParsePoint(fields[2])
	if err != nil {
		return Query{}, err
	}

	return Query{Kind: kind, From: from, To: to}, nil
}
