// Package config defines the command-line surface and the immutable
// per-run configuration parsed from it.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/csvscramble/csvscramble/internal/logging"
)

// Config holds everything a single run needs. It is built once by Parse
// and never mutated afterwards.
type Config struct {
	Input   string
	Columns []int
	Output  string
	Level   slog.Level
	Seed    int64
	Seeded  bool
}

// Parse builds a Config from command-line arguments (without the program
// name). It fails before any file I/O: a missing filename, a malformed
// column list or an unknown log level never touches the filesystem.
// A help request returns pflag.ErrHelp.
func Parse(args []string) (*Config, error) {
	fs := pflag.NewFlagSet("csvscramble", pflag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: csvscramble <filename> -c <columns> [options]\n\n")
		fmt.Fprintf(os.Stderr, "Randomly shuffles column values within a CSV file.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fmt.Fprint(os.Stderr, fs.FlagUsages())
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  csvscramble data.csv -c 0,2 -o output.csv   # shuffle columns 0 and 2, write to output.csv\n")
		fmt.Fprintf(os.Stderr, "  csvscramble data.csv -c 1                   # shuffle column 1, overwrite data.csv\n")
		fmt.Fprintf(os.Stderr, "  csvscramble data.csv -c 0,1,2 --log-level DEBUG\n")
	}

	columnsFlag := fs.StringP("columns", "c", "", "Comma-separated list of column indices to scramble (e.g., 0,2,4)")
	outputFlag := fs.StringP("output", "o", "", "Path to the output CSV file (default: overwrite the input file)")
	levelFlag := fs.String("log-level", "INFO", "Log level: DEBUG, INFO, WARNING, ERROR or CRITICAL")
	seedFlag := fs.Int64("seed", 0, "Seed for the shuffle RNG (default: random)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.NArg() != 1 {
		return nil, fmt.Errorf("expected exactly one filename argument, got %d", fs.NArg())
	}

	if !fs.Changed("columns") {
		return nil, fmt.Errorf("required flag -c/--columns not provided")
	}

	columns, err := parseColumns(*columnsFlag)
	if err != nil {
		return nil, err
	}

	level, err := logging.ParseLevel(*levelFlag)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Input:   fs.Arg(0),
		Columns: columns,
		Output:  *outputFlag,
		Level:   level,
		Seed:    *seedFlag,
		Seeded:  fs.Changed("seed"),
	}
	if cfg.Output == "" {
		cfg.Output = cfg.Input
	}

	return cfg, nil
}

// parseColumns splits a comma-separated selector like "0,2,4" into indices.
// Duplicates are allowed; range checking happens later against the file.
func parseColumns(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	columns := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid column index %q in --columns", strings.TrimSpace(part))
		}
		columns = append(columns, n)
	}
	return columns, nil
}
