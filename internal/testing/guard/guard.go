// Package guard switches the binaries into test mode when imported for side effects.
package guard

import (
	"os"
	"sync"
)

// Env is the variable the binaries consult before touching Redis or the network.
const Env = "INSIGHTS_TEST_MODE"

// unreachable endpoints so an accidental dial fails fast instead of hitting a real service.
var defaults = map[string]string{
	"REDIS_ADDR":    "127.0.0.1:0",
	"GOTENBERG_URL": "http://127.0.0.1:0",
}

var once sync.Once

func init() {
	Enable()
}

// Enable sets test mode and fills unset dependency addresses. Safe to call repeatedly.
func Enable() {
	once.Do(func() {
		if os.Getenv(Env) == "" {
			_ = os.Setenv(Env, "1")
		}
		for key, value := range defaults {
			if os.Getenv(key) == "" {
				_ = os.Setenv(key, value)
			}
		}
	})
}
