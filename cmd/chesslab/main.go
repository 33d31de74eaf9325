// chesslab replays move scripts through the chess engine, or plays a game
// interactively on the terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/lgbarn/chesslab-go/internal/config"
	"github.com/lgbarn/chesslab-go/internal/hashing"
	"github.com/lgbarn/chesslab-go/internal/output"
	"github.com/lgbarn/chesslab-go/internal/script"
	"github.com/lgbarn/chesslab-go/internal/worker"
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
		fmt.Printf("chesslab version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	setupLogFile(cfg)

	if flag.NArg() == 0 {
		if err := newShell(cfg, os.Stdin, os.Stdout).run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := replayFiles(ctx, cfg, flag.Args()); err != nil {
		if cfg.Verbosity > config.Silent {
			fmt.Fprintf(cfg.LogFile, "%v\n", err)
		}
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// replayFiles parses every file, replays the parsable ones in parallel and
// writes one summary line per file to the output. The returned error
// combines parse failures and rejected moves.
func replayFiles(ctx context.Context, cfg *config.Config, files []string) error {
	var errs *multierror.Error
	var scripts []*script.Script
	for _, name := range files {
		s, err := script.ParseFile(name)
		if err != nil {
			fmt.Fprintf(cfg.OutputFile, "%s: %v\n", name, err)
			errs = multierror.Append(errs, err)
			continue
		}
		scripts = append(scripts, s)
	}

	var detector *hashing.ThreadSafeDuplicateDetector
	if cfg.Duplicate.Detect {
		detector = hashing.NewThreadSafeDuplicateDetector(cfg.Duplicate.MaxPositions)
	}

	results := worker.ReplayAll(ctx, cfg, scripts, detector)
	for _, r := range results {
		if !cfg.JSONFormat {
			fmt.Fprintln(cfg.OutputFile, summary(r))
		}
		if r.Err != nil {
			errs = multierror.Append(errs, r.Err)
		}
	}
	if cfg.JSONFormat {
		if err := output.WriteReplaysJSON(cfg.OutputFile, results); err != nil {
			errs = multierror.Append(errs, err)
		}
	}

	if detector != nil {
		cfg.Logf(config.Summary, "%d position(s), %d duplicate(s)",
			detector.UniqueCount(), detector.DuplicateCount())
	}
	return errs.ErrorOrNil()
}

// summary formats the outcome of one replay.
func summary(r worker.ProcessResult) string {
	res := r.Result
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d move(s) applied, turn %d", res.Name, res.Applied, res.Turn)
	if len(res.Rejected) > 0 {
		fmt.Fprintf(&b, ", rejected at line(s) %s", joinInts(res.Rejected))
	}
	if res.Checks > 0 {
		fmt.Fprintf(&b, ", %d check(s)", res.Checks)
	}
	if r.Duplicate != "" {
		fmt.Fprintf(&b, ", same position as %s", r.Duplicate)
	}
	return b.String()
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ", ")
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chesslab [options] [script-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Replays move scripts, or plays interactively when no file is given.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nScript format, one move per line, # starts a comment:\n")
	fmt.Fprintf(os.Stderr, "  e2e4     Coordinate notation\n")
	fmt.Fprintf(os.Stderr, "  e2-e4    Hyphenated coordinate notation\n")
	fmt.Fprintf(os.Stderr, "  a7a8n    Promotion piece after the destination\n")
	fmt.Fprintf(os.Stderr, "  4 1 4 3  File and rank indexes, 0 to 7\n")
}
