package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/csvscramble/csvscramble/internal/config"
	"github.com/csvscramble/csvscramble/internal/logging"
	"github.com/csvscramble/csvscramble/internal/scramble"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Parse(args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "csvscramble: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'csvscramble --help' for usage.")
		return scramble.KindInvalidInput.ExitCode()
	}

	logger, closeFn := logging.SetupLogger(cfg.Level)
	defer closeFn()
	slog.SetDefault(logger)

	if err := scramble.Run(cfg, logger); err != nil {
		// Already logged by the pipeline; only the exit code is decided here.
		return scramble.KindOf(err).ExitCode()
	}

	return 0
}
