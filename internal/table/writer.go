package table

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
)

// SaveTable serializes t to the CSV file at path, overwriting any existing
// file. The write is in place: when path is the original input, a failure
// mid-write can leave it truncated.
func SaveTable(t *Table, path string, logger *slog.Logger) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	w := csv.NewWriter(f)

	if err := w.Write(t.Header); err != nil {
		f.Close()
		return fmt.Errorf("failed to write header to %s: %w", path, err)
	}
	for _, row := range t.Rows {
		if err := w.Write(row); err != nil {
			f.Close()
			return fmt.Errorf("failed to write row to %s: %w", path, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	logger.Info("table saved",
		slog.String("path", path),
		slog.Int("rows", t.RowCount()),
	)

	return nil
}
