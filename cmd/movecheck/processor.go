// processor.go - Reading queries, answering them and writing results
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/lgbarn/movecheck-go/internal/chess"
	"github.com/lgbarn/movecheck-go/internal/config"
	"github.com/lgbarn/movecheck-go/internal/engine"
	"github.com/lgbarn/movecheck-go/internal/errors"
	"github.com/lgbarn/movecheck-go/internal/output"
	"github.com/lgbarn/movecheck-go/internal/worker"
)

// RunStats summarises one run.
type RunStats struct {
	Queries   int
	Available int
	Failed    int
}

// loadBoard builds the board selected by cfg.
func loadBoard(cfg *config.Config) (*chess.Board, error) {
	switch cfg.Source {
	case config.LayoutBoard:
		return engine.ParseLayout(cfg.Layout)
	case config.FENBoard:
		return engine.BoardFromFEN(cfg.FEN)
	default:
		return chess.NewBoard(cfg.BoardSize), nil
	}
}

// readQueries parses one query per line from r. Blank lines and lines
// starting with '#' are skipped. Unparseable lines are returned as
// *errors.QueryError values collected in a multierror; the good lines are
// still returned. Indexes continue from startIndex.
func readQueries(r io.Reader, name string, startIndex int) ([]worker.WorkItem, error) {
	var items []worker.WorkItem
	var errs *multierror.Error

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		q, err := engine.ParseQuery(line)
		if err != nil {
			errs = multierror.Append(errs, &errors.QueryError{Err: err, File: name, Line: lineNum, Query: line})
			continue
		}
		items = append(items, worker.WorkItem{Query: q, Line: lineNum, Index: startIndex + len(items)})
	}
	if err := scanner.Err(); err != nil {
		errs = multierror.Append(errs, errors.Wrapf(err, "reading %s", name))
	}

	return items, errs.ErrorOrNil()
}

// collectQueries reads queries from every named file, or from stdin when no
// files are given.
func collectQueries(inputs []string, stdin io.Reader) ([]worker.WorkItem, []string, error) {
	var items []worker.WorkItem
	var names []string
	var errs *multierror.Error

	add := func(r io.Reader, name string) {
		got, err := readQueries(r, name, len(items))
		for range got {
			names = append(names, name)
		}
		items = append(items, got...)
		if err != nil {
			errs = multierror.Append(errs, err)
		}
	}

	if len(inputs) == 0 {
		add(stdin, "stdin")
		return items, names, errs.ErrorOrNil()
	}

	for _, path := range inputs {
		file, err := os.Open(path)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		add(file, path)
		file.Close()
	}
	return items, names, errs.ErrorOrNil()
}

// processQueries answers every item against board and writes the results.
// names[i] is the source name of items[i], used to label failures.
func processQueries(cfg *config.Config, board *chess.Board, items []worker.WorkItem, names []string) (RunStats, error) {
	var stats RunStats
	var errs *multierror.Error

	writer := output.NewResultWriter(cfg.OutputFile, cfg, board.Size())

	results := worker.Run(items, worker.EvaluateFunc(board), cfg.StopOnFail,
		worker.WithWorkers(cfg.Workers), worker.WithBufferSize(cfg.BufferSize))

	for _, r := range results {
		stats.Queries++
		if r.Error != nil {
			stats.Failed++
			errs = multierror.Append(errs, &errors.QueryError{
				Err:   r.Error,
				File:  names[r.Index],
				Line:  r.Line,
				Query: r.Query.String(),
			})
		} else if r.Available {
			stats.Available++
		}
		cfg.Logf(config.Commentary, "%s:%d %s", names[r.Index], r.Line, output.FormatResult(output.Result{
			Query: r.Query, Available: r.Available, Err: r.Error,
		}))

		if err := writer.WriteResult(output.Result{
			Line:      r.Line,
			Query:     r.Query,
			Available: r.Available,
			Err:       r.Error,
		}); err != nil {
			return stats, err
		}
	}

	if err := writer.Close(); err != nil {
		return stats, err
	}
	return stats, errs.ErrorOrNil()
}

// run answers the queries in inputs (or stdin) against the configured board.
// The returned error lists every query that could not be parsed or answered.
func run(cfg *config.Config, inputs []string, stdin io.Reader) error {
	board, err := loadBoard(cfg)
	if err != nil {
		return err
	}

	// A drawn board would corrupt the JSON document.
	if cfg.RenderBoard && !cfg.JSONFormat {
		if err := output.RenderBoard(cfg.OutputFile, board, cfg.Glyphs); err != nil {
			return err
		}
	}

	items, names, readErr := collectQueries(inputs, stdin)
	if readErr != nil && cfg.StopOnFail {
		return readErr
	}

	stats, procErr := processQueries(cfg, board, items, names)
	cfg.Logf(config.Summary, "%d queries answered on a %dx%d board: %d available, %d unavailable, %d failed",
		stats.Queries, board.Size(), board.Size(),
		stats.Available, stats.Queries-stats.Available-stats.Failed, stats.Failed)

	var errs *multierror.Error
	if readErr != nil {
		errs = multierror.Append(errs, readErr)
	}
	if procErr != nil {
		errs = multierror.Append(errs, procErr)
	}
	return errs.ErrorOrNil()
}

// runReachable prints every square reachable from the square in arg,
// which has the form "<kind> <row>,<col>".
func runReachable(cfg *config.Config, arg string) error {
	fields := strings.Fields(arg)
	if len(fields) != 2 {
		return fmt.Errorf("reachable %q: want \"<kind> <row>,<col>\": %w", arg, errors.ErrInvalidQuery)
	}
	kind, err := engine.ParseKind(fields[0])
	if err != nil {
		return err
	}
	if !engine.SupportsKind(kind) {
		return fmt.Errorf("reachable %q: %v: %w", arg, kind, errors.ErrUnsupportedKind)
	}
	from, err := engine.ParsePoint(fields[1])
	if err != nil {
		return err
	}

	board, err := loadBoard(cfg)
	if err != nil {
		return err
	}
	if cfg.RenderBoard && !cfg.JSONFormat {
		if err := output.RenderBoard(cfg.OutputFile, board, cfg.Glyphs); err != nil {
			return err
		}
	}

	targets, err := engine.ReachableSquares(board, kind, from)
	if err != nil {
		return err
	}

	if err := output.WriteReachable(cfg.OutputFile, cfg, board.Size(), output.Reachable{
		Kind:    kind,
		From:    from,
		Targets: targets,
	}); err != nil {
		return err
	}
	cfg.Logf(config.Summary, "%d squares reachable", len(targets))
	return nil
}
