// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/lgbarn/movecheck-go/internal/config"
	"github.com/lgbarn/movecheck-go/internal/errors"
)

var (
	// Board selection
	boardSize  = flag.Int("size", 8, "Side length of an empty board")
	layoutStr  = flag.String("layout", "", "Board layout, ranks separated by '/' (e.g. 'R1n/3/1k1')")
	layoutFile = flag.String("layoutfile", "", "Read the board layout from this file")
	fenStr     = flag.String("fen", "", "Standard 8x8 position in FEN")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput = flag.Bool("J", false, "Output in JSON format")
	render     = flag.Bool("render", false, "Draw the board before the results")
	asciiOnly  = flag.Bool("ascii", false, "Draw with ASCII letters instead of chess symbols")
	reachable  = flag.String("reachable", "", "List squares reachable by '<kind> <row>,<col>' and exit")

	// Processing
	workers    = flag.Int("j", 1, "Number of parallel query workers")
	stopOnFail = flag.Bool("stop", false, "Stop at the first query that fails")

	// Logging
	logFile = flag.String("l", "", "Write diagnostics to this file (default: stderr)")
	quiet   = flag.Bool("s", false, "Silent mode: no diagnostics")
	verbose = flag.Bool("v", false, "Log every query as it is answered")

	// Help and version
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags copies flag values onto cfg.
func applyFlags(cfg *config.Config) error {
	if err := applyBoardFlags(cfg); err != nil {
		return err
	}
	applyOutputFlags(cfg)
	applyVerbosityFlags(cfg)
	cfg.Workers = *workers
	cfg.StopOnFail = *stopOnFail
	return nil
}

// applyBoardFlags selects the board source. At most one of -layout,
// -layoutfile and -fen may be given; without any of them an empty board of
// -size squares is used.
func applyBoardFlags(cfg *config.Config) error {
	given := 0
	for _, s := range []string{*layoutStr, *layoutFile, *fenStr} {
		if s != "" {
			given++
		}
	}
	if given > 1 {
		return fmt.Errorf("-layout, -layoutfile and -fen are mutually exclusive: %w", errors.ErrInvalidConfig)
	}

	switch {
	case *fenStr != "":
		cfg.Source = config.FENBoard
		cfg.FEN = *fenStr
	case *layoutFile != "":
		data, err := os.ReadFile(*layoutFile)
		if err != nil {
			return errors.Wrapf(err, "reading layout file %s", *layoutFile)
		}
		cfg.Source = config.LayoutBoard
		cfg.Layout = strings.TrimSpace(string(data))
	case *layoutStr != "":
		cfg.Source = config.LayoutBoard
		cfg.Layout = *layoutStr
	default:
		cfg.Source = config.EmptyBoard
		cfg.BoardSize = *boardSize
	}
	return nil
}

// applyOutputFlags configures output format and board drawing.
func applyOutputFlags(cfg *config.Config) {
	cfg.JSONFormat = *jsonOutput
	cfg.RenderBoard = *render
	if *asciiOnly {
		cfg.Glyphs = config.ASCIIGlyphs
	} else {
		cfg.Glyphs = config.UnicodeGlyphs
	}
}

// applyVerbosityFlags sets the verbosity; -s wins over -v.
func applyVerbosityFlags(cfg *config.Config) {
	switch {
	case *quiet:
		cfg.Verbosity = config.Silent
	case *verbose:
		cfg.Verbosity = config.Commentary
	default:
		cfg.Verbosity = config.Summary
	}
}
