package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/admybrand/insights/internal/app"
	"github.com/admybrand/insights/internal/testing/guard"
)

func TestMainSkipsInTestMode(t *testing.T) {
	app.RefreshTestMode()
	require.True(t, app.InTestMode())
	main()
}

func TestParseDays(t *testing.T) {
	days, err := parseDays("", 30)
	require.NoError(t, err)
	assert.Nil(t, days)

	days, err = parseDays(" 7, 14,30 ", 30)
	require.NoError(t, err)
	assert.Equal(t, []int{7, 14, 30}, days)

	for _, bad := range []string{"0", "31", "seven", "7,,14"} {
		_, err := parseDays(bad, 30)
		assert.Error(t, err, bad)
	}

	days, err = parseDays("45", 60)
	require.NoError(t, err)
	assert.Equal(t, []int{45}, days)
}

func TestGuardFillsDependencyDefaults(t *testing.T) {
	assert.NotEmpty(t, os.Getenv(guard.Env))
	assert.NotEmpty(t, os.Getenv("REDIS_ADDR"))
	assert.NotEmpty(t, os.Getenv("GOTENBERG_URL"))
}
