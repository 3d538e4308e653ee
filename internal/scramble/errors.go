package scramble

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a run failure. Each kind maps to its own exit code so
// callers can tell failures apart without parsing log output.
type Kind int

const (
	KindUnexpected Kind = iota
	KindFileNotFound
	KindInvalidInput
	KindShuffleFailure
	KindWriteFailure
)

func (k Kind) String() string {
	switch k {
	case KindFileNotFound:
		return "file_not_found"
	case KindInvalidInput:
		return "invalid_input"
	case KindShuffleFailure:
		return "shuffle_failure"
	case KindWriteFailure:
		return "write_failure"
	}
	return "unexpected"
}

// ExitCode returns the process exit code for this failure kind.
func (k Kind) ExitCode() int {
	switch k {
	case KindFileNotFound:
		return 1
	case KindInvalidInput:
		return 2
	case KindShuffleFailure:
		return 3
	case KindWriteFailure:
		return 4
	}
	return 5
}

// Error is a classified run failure carrying the path and, for
// out-of-range violations, the offending column index.
type Error struct {
	Kind   Kind
	Path   string // input or output path involved (may be empty)
	Index  int    // offending column index (-1 if not index-related)
	Reason string // human-readable explanation
	Err    error  // underlying cause (may be nil)
}

func (e *Error) Error() string {
	var parts []string

	parts = append(parts, e.Reason)

	if e.Index >= 0 {
		parts = append(parts, fmt.Sprintf("index=%d", e.Index))
	}

	if e.Path != "" {
		parts = append(parts, fmt.Sprintf("file=%s", e.Path))
	}

	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}

	return strings.Join(parts, " - ")
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewFileNotFound(path string) *Error {
	return &Error{
		Kind:   KindFileNotFound,
		Path:   path,
		Index:  -1,
		Reason: "file not found",
	}
}

func NewNoColumns() *Error {
	return &Error{
		Kind:   KindInvalidInput,
		Index:  -1,
		Reason: "no columns provided to scramble",
	}
}

func NewEmptyFile(path string) *Error {
	return &Error{
		Kind:   KindInvalidInput,
		Path:   path,
		Index:  -1,
		Reason: "csv file is empty",
	}
}

func NewOutOfRange(path string, index, columnCount int) *Error {
	return &Error{
		Kind:   KindInvalidInput,
		Path:   path,
		Index:  index,
		Reason: fmt.Sprintf("column index out of range (file has %d columns)", columnCount),
	}
}

func NewInvalidInput(path string, err error) *Error {
	return &Error{
		Kind:   KindInvalidInput,
		Path:   path,
		Index:  -1,
		Reason: "error validating file or columns",
		Err:    err,
	}
}

func NewShuffleFailure(path string, err error) *Error {
	return &Error{
		Kind:   KindShuffleFailure,
		Path:   path,
		Index:  -1,
		Reason: "error during scrambling",
		Err:    err,
	}
}

func NewWriteFailure(path string, err error) *Error {
	return &Error{
		Kind:   KindWriteFailure,
		Path:   path,
		Index:  -1,
		Reason: "error writing output",
		Err:    err,
	}
}

// KindOf extracts the failure kind from err; anything unclassified is
// KindUnexpected.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnexpected
}
