// Package scramble implements the shuffle pipeline: validate the input,
// permute the selected columns and save the result.
package scramble

import (
	"log/slog"
	"math/rand/v2"

	"github.com/csvscramble/csvscramble/internal/table"
)

// ScrambleColumns loads the table at path fresh and shuffles the values of
// each selected column in place, one column at a time in the order given
// (repeats draw one extra permutation). Permutations are independent per
// column, so any cross-column alignment between selected columns is
// destroyed. Other columns and the row count are untouched.
func ScrambleColumns(path string, columns []int, rng *rand.Rand, logger *slog.Logger) (*table.Table, error) {
	t, err := table.LoadTable(path, logger)
	if err != nil {
		return nil, NewShuffleFailure(path, err)
	}

	for _, col := range columns {
		// Re-checked here: the file may have changed since validation.
		values, err := t.Column(col)
		if err != nil {
			return nil, NewShuffleFailure(path, err)
		}

		rng.Shuffle(len(values), func(i, j int) {
			values[i], values[j] = values[j], values[i]
		})

		if err := t.SetColumn(col, values); err != nil {
			return nil, NewShuffleFailure(path, err)
		}

		logger.Debug("column scrambled",
			slog.Int("column", col),
			slog.String("name", t.Header[col]),
		)
	}

	return t, nil
}
