package app

import (
	"os"
	"strconv"
	"sync"
	"sync/atomic"
)

// testModeEnv mirrors guard.Env; app must not import the guard package since
// importing it flips test mode on.
const testModeEnv = "INSIGHTS_TEST_MODE"

var (
	testModeFlag atomic.Bool
	testModeOnce sync.Once
)

func detectTestMode() {
	on, err := strconv.ParseBool(os.Getenv(testModeEnv))
	testModeFlag.Store(err == nil && on)
}

// InTestMode reports whether the binaries should return before dialing Redis,
// starting the ticker or binding a port.
func InTestMode() bool {
	testModeOnce.Do(detectTestMode)
	return testModeFlag.Load()
}

// RefreshTestMode re-reads the environment after it changed.
func RefreshTestMode() {
	testModeOnce.Do(func() {})
	detectTestMode()
}
