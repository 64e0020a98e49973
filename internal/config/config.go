// Package config provides configuration for movecheck.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"

	"github.com/lgbarn/movecheck-go/internal/chess"
	"github.com/lgbarn/movecheck-go/internal/errors"
)

// GlyphSet selects the symbols used when a board is drawn.
type GlyphSet int

const (
	UnicodeGlyphs GlyphSet = iota // ♔♕♖♗♘♙ / ♚♛♜♝♞♟
	ASCIIGlyphs                   // KQRBNP / kqrbnp
)

// BoardSource says where the board for a run comes from.
type BoardSource int

const (
	EmptyBoard  BoardSource = iota // NewBoard(BoardSize)
	LayoutBoard                    // ParseLayout(Layout)
	FENBoard                       // BoardFromFEN(FEN)
)

// Verbosity levels.
const (
	Silent     = 0 // nothing on the log
	Summary    = 1 // counts at the end of the run
	Commentary = 2 // one line per query
)

// MaxBoardSize bounds the size of empty boards requested on the command line.
const MaxBoardSize = chess.MaxSize

// Config holds all program configuration.
type Config struct {
	// Board selection
	Source    BoardSource
	BoardSize int
	Layout    string
	FEN       string

	// Processing
	Workers    int
	BufferSize int
	StopOnFail bool // stop after the first query error

	// Output
	JSONFormat  bool
	RenderBoard bool
	Glyphs      GlyphSet
	Verbosity   int // 0=nothing, 1=summary, 2=running commentary

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Source:     EmptyBoard,
		BoardSize:  8,
		Workers:    1,
		BufferSize: 64,
		Glyphs:     UnicodeGlyphs,
		Verbosity:  Summary,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate reports every problem with the configuration at once. The
// returned error matches errors.ErrInvalidConfig.
func (c *Config) Validate() error {
	var result *multierror.Error

	invalid := func(format string, args ...interface{}) {
		result = multierror.Append(result, fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), errors.ErrInvalidConfig))
	}

	switch c.Source {
	case EmptyBoard:
		if c.BoardSize < 1 || c.BoardSize > MaxBoardSize {
			invalid("board size %d not in [1, %d]", c.BoardSize, MaxBoardSize)
		}
	case LayoutBoard:
		if c.Layout == "" {
			invalid("layout board selected without a layout")
		}
	case FENBoard:
		if c.FEN == "" {
			invalid("FEN board selected without a FEN string")
		}
	default:
		invalid("unknown board source %d", c.Source)
	}

	if c.Workers < 1 {
		invalid("worker count %d must be at least 1", c.Workers)
	}
	if c.BufferSize < 1 {
		invalid("buffer size %d must be at least 1", c.BufferSize)
	}
	if c.Verbosity < Silent || c.Verbosity > Commentary {
		invalid("verbosity %d not in [%d, %d]", c.Verbosity, Silent, Commentary)
	}
	if c.Glyphs != UnicodeGlyphs && c.Glyphs != ASCIIGlyphs {
		invalid("unknown glyph set %d", c.Glyphs)
	}
	if c.OutputFile == nil {
		invalid("no output stream")
	}
	if c.LogFile == nil {
		invalid("no log stream")
	}

	return result.ErrorOrNil()
}

// Logf writes a line to the log stream when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}
