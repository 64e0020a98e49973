// Package errors provides sentinel errors and error types for movecheck.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrOutOfRange indicates a source square outside the board.
	ErrOutOfRange = errors.New("out of range")

	// ErrUnsupportedKind indicates a piece kind with no movement rule.
	ErrUnsupportedKind = errors.New("unsupported piece kind")

	// ErrInvalidQuery indicates a malformed move query line.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrInvalidLayout indicates a malformed board layout string.
	ErrInvalidLayout = errors.New("invalid board layout")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// RangeError reports a coordinate that lies outside an N×N board.
// It unwraps to ErrOutOfRange.
type RangeError struct {
	Row  int
	Col  int
	Size int
}

// Error returns a message naming the coordinate and the board size.
func (e *RangeError) Error() string {
	return fmt.Sprintf("point (%d,%d) outside %dx%d board: %v", e.Row, e.Col, e.Size, e.Size, ErrOutOfRange)
}

// Unwrap returns ErrOutOfRange.
func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

// QueryError wraps errors with query context: the source file, the line
// number, and the query text. It supports unwrapping via errors.Is() and
// errors.As().
type QueryError struct {
	Err   error  // The underlying error
	File  string // Source file name (if known)
	Line  int    // Line number in source (1-based, 0 if unknown)
	Query string // The query text that caused the error (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *QueryError) Error() string {
	var parts []string

	if e.File != "" {
		if e.Line > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", e.File, e.Line))
		} else {
			parts = append(parts, e.File)
		}
	} else if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("line %d", e.Line))
	}

	if e.Query != "" {
		parts = append(parts, fmt.Sprintf("query %q", e.Query))
	}

	context := strings.Join(parts, ", ")

	switch {
	case context == "" && e.Err != nil:
		return e.Err.Error()
	case context == "":
		return "query error"
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the QueryError wrapper.
func (e *QueryError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
