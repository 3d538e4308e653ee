// Package testutil provides shared assertion helpers for package tests.
package testutil

import (
	"sort"
	"testing"
)

// AssertNoError checks that an error is nil
func AssertNoError(t *testing.T, err error, context string) {
	t.Helper()
	if err != nil {
		t.Errorf("%s: expected no error, got: %v", context, err)
	}
}

// AssertError checks that an error is not nil
func AssertError(t *testing.T, err error, context string) {
	t.Helper()
	if err == nil {
		t.Errorf("%s: expected an error, got nil", context)
	}
}

// AssertRowCount checks if the result has the expected number of rows
func AssertRowCount(t *testing.T, actual, expected int, context string) {
	t.Helper()
	if actual != expected {
		t.Errorf("%s: expected %d rows, got %d", context, expected, actual)
	}
}

// AssertColumnEqual checks that two columns hold the same values in the
// same order
func AssertColumnEqual(t *testing.T, actual, expected []string, context string) {
	t.Helper()
	if len(actual) != len(expected) {
		t.Errorf("%s: expected %d values, got %d", context, len(expected), len(actual))
		return
	}
	for i := range expected {
		if actual[i] != expected[i] {
			t.Errorf("%s: value %d: expected %q, got %q", context, i, expected[i], actual[i])
		}
	}
}

// AssertSameValues checks that two columns hold the same multiset of
// values, ignoring order
func AssertSameValues(t *testing.T, actual, expected []string, context string) {
	t.Helper()
	if len(actual) != len(expected) {
		t.Errorf("%s: expected %d values, got %d", context, len(expected), len(actual))
		return
	}

	a := append([]string(nil), actual...)
	e := append([]string(nil), expected...)
	sort.Strings(a)
	sort.Strings(e)

	for i := range e {
		if a[i] != e[i] {
			t.Errorf("%s: values differ as multisets: got %v, want %v", context, actual, expected)
			return
		}
	}
}
