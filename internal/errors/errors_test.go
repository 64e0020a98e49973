package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Are verifies that sentinel errors can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrOutOfRange", ErrOutOfRange, ErrOutOfRange},
		{"ErrUnsupportedKind", ErrUnsupportedKind, ErrUnsupportedKind},
		{"ErrInvalidQuery", ErrInvalidQuery, ErrInvalidQuery},
		{"ErrInvalidLayout", ErrInvalidLayout, ErrInvalidLayout},
		{"ErrInvalidFEN", ErrInvalidFEN, ErrInvalidFEN},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

// TestSentinelErrors_Distinct verifies no two sentinels match each other
func TestSentinelErrors_Distinct(t *testing.T) {
	all := []error{ErrOutOfRange, ErrUnsupportedKind, ErrInvalidQuery, ErrInvalidLayout, ErrInvalidFEN, ErrInvalidConfig}
	for i, a := range all {
		for j, b := range all {
			if i != j && errors.Is(a, b) {
				t.Errorf("errors.Is(%v, %v) = true, want false", a, b)
			}
		}
	}
}

func TestRangeError(t *testing.T) {
	err := &RangeError{Row: 8, Col: 0, Size: 8}

	if !errors.Is(err, ErrOutOfRange) {
		t.Error("errors.Is(RangeError, ErrOutOfRange) = false, want true")
	}

	msg := err.Error()
	for _, want := range []string{"(8,0)", "8x8", "out of range"} {
		if !strings.Contains(msg, want) {
			t.Errorf("RangeError.Error() = %q, want to contain %q", msg, want)
		}
	}

	wrapped := fmt.Errorf("rook move: %w", err)
	var re *RangeError
	if !errors.As(wrapped, &re) {
		t.Fatal("errors.As(wrapped, *RangeError) = false, want true")
	}
	if re.Row != 8 || re.Col != 0 || re.Size != 8 {
		t.Errorf("RangeError = %+v, want {Row:8 Col:0 Size:8}", *re)
	}
}

// TestQueryError_Error verifies the error message format
func TestQueryError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *QueryError
		contains []string
		excludes []string
	}{
		{
			name: "full context",
			err: &QueryError{
				Err:   ErrInvalidQuery,
				File:  "queries.txt",
				Line:  12,
				Query: "X 0,0 1,1",
			},
			contains: []string{"queries.txt:12", `query "X 0,0 1,1"`, "invalid query"},
		},
		{
			name:     "line without file",
			err:      &QueryError{Err: ErrOutOfRange, Line: 3},
			contains: []string{"line 3", "out of range"},
			excludes: []string{"query"},
		},
		{
			name:     "file without line",
			err:      &QueryError{Err: ErrUnsupportedKind, File: "stdin"},
			contains: []string{"stdin", "unsupported piece kind"},
			excludes: []string{"stdin:0"},
		},
		{
			name:     "no context",
			err:      &QueryError{Err: ErrInvalidQuery},
			contains: []string{"invalid query"},
		},
		{
			name:     "nothing at all",
			err:      &QueryError{},
			contains: []string{"query error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, want := range tt.contains {
				if !strings.Contains(msg, want) {
					t.Errorf("Error() = %q, want to contain %q", msg, want)
				}
			}
			for _, unwanted := range tt.excludes {
				if strings.Contains(msg, unwanted) {
					t.Errorf("Error() = %q, should not contain %q", msg, unwanted)
				}
			}
		})
	}
}

func TestQueryError_Unwrap(t *testing.T) {
	inner := &RangeError{Row: -1, Col: 2, Size: 8}
	err := &QueryError{Err: inner, Line: 1}

	if !errors.Is(err, ErrOutOfRange) {
		t.Error("errors.Is(QueryError{RangeError}, ErrOutOfRange) = false, want true")
	}
	var re *RangeError
	if !errors.As(err, &re) {
		t.Error("errors.As(QueryError{RangeError}, *RangeError) = false, want true")
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) != nil")
	}
	if Wrapf(nil, "context %d", 1) != nil {
		t.Error("Wrapf(nil) != nil")
	}

	err := Wrapf(ErrInvalidLayout, "rank %d", 3)
	if !errors.Is(err, ErrInvalidLayout) {
		t.Error("errors.Is(Wrapf(ErrInvalidLayout), ErrInvalidLayout) = false, want true")
	}
	if got, want := err.Error(), "rank 3: invalid board layout"; got != want {
		t.Errorf("Wrapf().Error() = %q, want %q", got, want)
	}
}
