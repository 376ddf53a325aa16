// Package testutil provides helpers for driving the game from tests.
package testutil

import (
	"errors"
	"strings"
	"testing"
)

// Script returns a reader that yields each line followed by a newline, the way
// a player would type them at the console.
//
// Postcondition: The reader returns io.EOF after the last line.
func Script(lines ...string) *strings.Reader {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return strings.NewReader(b.String())
}

// ErrBrokenInput is returned by FailingReader when no other error is set.
var ErrBrokenInput = errors.New("input device failed")

// FailingReader is an io.Reader whose every Read fails.
type FailingReader struct {
	Err error
}

// Read always returns zero bytes and r.Err, or ErrBrokenInput when Err is nil.
func (r FailingReader) Read([]byte) (int, error) {
	if r.Err != nil {
		return 0, r.Err
	}
	return 0, ErrBrokenInput
}

// AssertInOrder fails the test unless every part occurs in out, each one after
// the end of the previous match.
//
// Precondition: parts must be non-empty strings.
// Postcondition: Reports the first part that is missing or out of order.
func AssertInOrder(t testing.TB, out string, parts ...string) bool {
	t.Helper()
	rest := out
	for i, part := range parts {
		idx := strings.Index(rest, part)
		if idx < 0 {
			t.Errorf("part %d %q not found in order in output:\n%s", i, part, out)
			return false
		}
		rest = rest[idx+len(part):]
	}
	return true
}
