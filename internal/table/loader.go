package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"os"
)

// ErrEmpty reports a file with no rows at all, not even a header.
var ErrEmpty = errors.New("csv file is empty")

// LoadTable reads the CSV file at path into a Table. The first record is
// the header; the rest are data rows. The file handle is released before
// returning.
func LoadTable(path string, logger *slog.Logger) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmpty)
	}

	t := &Table{
		Header: records[0],
		Rows:   records[1:],
	}

	logger.Debug("table loaded",
		slog.String("path", path),
		slog.Int("columns", t.ColumnCount()),
		slog.Int("rows", t.RowCount()),
	)

	return t, nil
}
