package scramble

import (
	"log/slog"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/csvscramble/csvscramble/internal/config"
	"github.com/csvscramble/csvscramble/internal/table"
)

// Run executes the whole pipeline for one configuration:
// validate → scramble → save. Every stage failure is logged at ERROR with
// its cause and returned classified; a failed run writes nothing.
func Run(cfg *config.Config, logger *slog.Logger) error {
	logger = logger.With(slog.String("run_id", uuid.NewString()))

	if err := Validate(cfg.Input, cfg.Columns, logger); err != nil {
		logger.Error("validation failed",
			slog.String("file", cfg.Input),
			slog.Any("error", err),
		)
		return err
	}

	logger.Info("starting scramble",
		slog.Any("columns", cfg.Columns),
		slog.String("file", cfg.Input),
	)

	t, err := ScrambleColumns(cfg.Input, cfg.Columns, newRand(cfg), logger)
	if err != nil {
		logger.Error("scramble failed",
			slog.String("file", cfg.Input),
			slog.Any("error", err),
		)
		return err
	}

	if err := table.SaveTable(t, cfg.Output, logger); err != nil {
		werr := NewWriteFailure(cfg.Output, err)
		logger.Error("write failed",
			slog.String("file", cfg.Output),
			slog.Any("error", werr),
		)
		return werr
	}

	logger.Info("scrambled data saved", slog.String("file", cfg.Output))
	return nil
}

// newRand builds the shuffle RNG: a fixed PCG stream when a seed was
// given, a randomly seeded one otherwise.
func newRand(cfg *config.Config) *rand.Rand {
	if cfg.Seeded {
		return rand.New(rand.NewPCG(uint64(cfg.Seed), uint64(cfg.Seed)))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
