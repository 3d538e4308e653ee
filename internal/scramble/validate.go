package scramble

import (
	"errors"
	"log/slog"
	"os"

	"github.com/csvscramble/csvscramble/internal/table"
)

// Validate checks the input file and the column selector before anything
// is mutated. Checks run in order and the first violation wins. Validate
// loads the file itself and caches nothing: a validation failure can never
// leave a partially scrambled table behind.
func Validate(path string, columns []int, logger *slog.Logger) error {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return NewFileNotFound(path)
	}

	if len(columns) == 0 {
		return NewNoColumns()
	}

	t, err := table.LoadTable(path, logger)
	if err != nil {
		if errors.Is(err, table.ErrEmpty) {
			return NewEmptyFile(path)
		}
		return NewInvalidInput(path, err)
	}

	if t.ColumnCount() == 0 {
		return NewEmptyFile(path)
	}

	for _, col := range columns {
		if col < 0 || col >= t.ColumnCount() {
			return NewOutOfRange(path, col, t.ColumnCount())
		}
	}

	return nil
}
