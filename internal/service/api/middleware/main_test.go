package middleware

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain runs tests and checks for goroutine leaks.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
