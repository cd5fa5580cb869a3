// Package testing is blank-imported by binary tests so main() returns early.
package testing

import (
	"os"
	stdtesting "testing"

	"github.com/admybrand/insights/internal/testing/guard"
)

func init() {
	guard.Enable()
	if os.Getenv("LOG_LEVEL") == "" {
		_ = os.Setenv("LOG_LEVEL", "error")
	}
}

func TestMain(m *stdtesting.M) {
	guard.Enable()
	os.Exit(m.Run())
}
