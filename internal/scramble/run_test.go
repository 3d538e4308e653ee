package scramble_test

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/csvscramble/csvscramble/internal/config"
	"github.com/csvscramble/csvscramble/internal/scramble"
	"github.com/csvscramble/csvscramble/internal/table"
	"github.com/csvscramble/csvscramble/internal/testutil"
)

func runConfig(input, output string, columns []int) *config.Config {
	return &config.Config{
		Input:   input,
		Columns: columns,
		Output:  output,
		Level:   slog.LevelInfo,
		Seed:    1,
		Seeded:  true,
	}
}

// TestRun_OverwritesInput tests the default-output end-to-end path:
// selector 0 on a 2x2 table shuffles column a and leaves column b alone
func TestRun_OverwritesInput(t *testing.T) {
	path := writeFile(t, "a,b\n1,2\n3,4\n")

	err := scramble.Run(runConfig(path, path, []int{0}), discardLogger())
	testutil.AssertNoError(t, err, "Run")

	tbl, err := table.LoadTable(path, discardLogger())
	testutil.AssertNoError(t, err, "reload after Run")

	testutil.AssertColumnEqual(t, tbl.Header, []string{"a", "b"}, "header")
	testutil.AssertRowCount(t, tbl.RowCount(), 2, "after Run")

	colA, _ := tbl.Column(0)
	testutil.AssertSameValues(t, colA, []string{"1", "3"}, "column a")
	colB, _ := tbl.Column(1)
	testutil.AssertColumnEqual(t, colB, []string{"2", "4"}, "column b")
}

// TestRun_SeparateOutput tests that -o leaves the input untouched
func TestRun_SeparateOutput(t *testing.T) {
	input := writeFile(t, "a,b\n1,2\n3,4\n")
	output := filepath.Join(t.TempDir(), "out.csv")

	err := scramble.Run(runConfig(input, output, []int{1}), discardLogger())
	testutil.AssertNoError(t, err, "Run")

	original, err := table.LoadTable(input, discardLogger())
	testutil.AssertNoError(t, err, "reload input")
	colA, _ := original.Column(0)
	testutil.AssertColumnEqual(t, colA, []string{"1", "3"}, "input column a unchanged")
	colB, _ := original.Column(1)
	testutil.AssertColumnEqual(t, colB, []string{"2", "4"}, "input column b unchanged")

	written, err := table.LoadTable(output, discardLogger())
	testutil.AssertNoError(t, err, "reload output")
	outB, _ := written.Column(1)
	testutil.AssertSameValues(t, outB, []string{"2", "4"}, "output column b")
}

// TestRun_ValidationFailureWritesNothing tests that a rejected run leaves
// both paths untouched
func TestRun_ValidationFailureWritesNothing(t *testing.T) {
	input := writeFile(t, "a,b,c\n1,2,3\n")
	output := filepath.Join(t.TempDir(), "out.csv")

	err := scramble.Run(runConfig(input, output, []int{5}), discardLogger())
	assertKind(t, err, scramble.KindInvalidInput, "out-of-range run")

	if _, statErr := table.LoadTable(output, discardLogger()); statErr == nil {
		t.Error("expected no output file after failed validation")
	}
}

// TestRun_MissingInput tests the file-not-found run
func TestRun_MissingInput(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.csv")

	err := scramble.Run(runConfig(missing, missing, []int{0}), discardLogger())
	assertKind(t, err, scramble.KindFileNotFound, "missing input")
}

// TestRun_WriteFailure tests that an unwritable output path is classified
// as a write failure
func TestRun_WriteFailure(t *testing.T) {
	input := writeFile(t, "a\n1\n2\n")
	output := filepath.Join(t.TempDir(), "missing-dir", "out.csv")

	err := scramble.Run(runConfig(input, output, []int{0}), discardLogger())
	assertKind(t, err, scramble.KindWriteFailure, "unwritable output")
}

// TestExitCodes tests that every failure kind maps to its own exit code
func TestExitCodes(t *testing.T) {
	codes := map[scramble.Kind]int{
		scramble.KindFileNotFound:   1,
		scramble.KindInvalidInput:   2,
		scramble.KindShuffleFailure: 3,
		scramble.KindWriteFailure:   4,
		scramble.KindUnexpected:     5,
	}

	seen := make(map[int]scramble.Kind)
	for kind, want := range codes {
		got := kind.ExitCode()
		if got != want {
			t.Errorf("kind %v: expected exit code %d, got %d", kind, want, got)
		}
		if prev, dup := seen[got]; dup {
			t.Errorf("exit code %d shared by %v and %v", got, prev, kind)
		}
		seen[got] = kind
	}
}

// TestKindOf tests classification of wrapped and foreign errors
func TestKindOf(t *testing.T) {
	if kind := scramble.KindOf(scramble.NewFileNotFound("x.csv")); kind != scramble.KindFileNotFound {
		t.Errorf("expected KindFileNotFound, got %v", kind)
	}
	if kind := scramble.KindOf(assertForeignError()); kind != scramble.KindUnexpected {
		t.Errorf("expected KindUnexpected for foreign error, got %v", kind)
	}
}

func assertForeignError() error {
	return filepath.ErrBadPattern
}
