package testutil

import (
	"testing"

	"github.com/rs/zerolog"
)

func NopLogger() zerolog.Logger {
	return zerolog.Nop()
}

// TestLogger writes through t.Log, so output only shows for failing or verbose runs
func TestLogger(t testing.TB) zerolog.Logger {
	return zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.DebugLevel)
}

// AssertPanic fails t unless f panics and returns whatever f panicked with
func AssertPanic(t testing.TB, f func(), msgAndArgs ...any) (recovered any) {
	t.Helper()
	defer func() {
		recovered = recover()
		if recovered == nil {
			t.Errorf("expected panic: %v", msgAndArgs)
		}
	}()
	f()
	return nil
}
