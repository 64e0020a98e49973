// movecheck answers move-legality queries for chess pieces on an N×N board.
//
// Each input line names a piece kind and two squares, e.g. "R 0,0 0,7", and
// is answered with whether the piece's movement rule allows the move given
// the pieces standing in between.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/movecheck-go/internal/config"
	"github.com/lgbarn/movecheck-go/internal/errors"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("movecheck version %s\n", programVersion)
		os.Exit(0)
	}

	os.Exit(execute())
}

// execute runs movecheck with the parsed flags and returns the exit status:
// 0 on success, 1 if any query or file failed, 2 for a bad configuration.
// It returns rather than exiting so deferred file closes run.
func execute() int {
	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "movecheck: %v\n", err)
		return 2
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "movecheck: %v\n", err)
		return 2
	}

	// Set up logging and output files
	logF, err := setupLogFile(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "movecheck: %v\n", err)
		return 1
	}
	if logF != nil {
		defer logF.Close() //nolint:errcheck // diagnostics only
	}
	outF, err := setupOutputFile(cfg)
	if err != nil {
		fmt.Fprintf(cfg.LogFile, "movecheck: %v\n", err)
		return 1
	}

	status := 0
	if *reachable != "" {
		err = runReachable(cfg, *reachable)
	} else {
		err = run(cfg, flag.Args(), os.Stdin)
	}
	if err != nil {
		fmt.Fprintf(cfg.LogFile, "movecheck: %v\n", err)
		status = 1
	}

	if outF != nil {
		if err := outF.Close(); err != nil {
			fmt.Fprintf(cfg.LogFile, "movecheck: closing %s: %v\n", outF.Name(), err)
			status = 1
		}
	}
	return status
}

// setupLogFile points cfg.LogFile at the -l file, if one was given.
// The caller closes the returned file.
func setupLogFile(cfg *config.Config) (*os.File, error) {
	if *logFile == "" {
		return nil, nil
	}
	file, err := os.Create(*logFile)
	if err != nil {
		return nil, errors.Wrapf(err, "creating log file %s", *logFile)
	}
	cfg.LogFile = file
	return file, nil
}

// setupOutputFile points cfg.OutputFile at the -o file, if one was given.
// The caller closes the returned file.
func setupOutputFile(cfg *config.Config) (*os.File, error) {
	if *outputFile == "" {
		return nil, nil
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		return nil, errors.Wrapf(err, "creating output file %s", *outputFile)
	}
	cfg.OutputFile = file
	return file, nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: movecheck [options] [query-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Answers move-legality queries, one per line, read from the files or stdin.\n\n")
	fmt.Fprintf(os.Stderr, "Query format:\n")
	fmt.Fprintf(os.Stderr, "  <kind> <row>,<col> <row>,<col>   e.g. \"R 0,0 0,7\" or \"knight 4,4 6,5\"\n")
	fmt.Fprintf(os.Stderr, "  Kinds: N knight, B bishop, R rook, Q queen, K king. Blank lines and '#' comments are skipped.\n\n")
	fmt.Fprintf(os.Stderr, "With -reachable, -J writes the listing as a JSON document.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
