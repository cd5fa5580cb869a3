package preferences

import (
	"context"
	"errors"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRedisRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	store := NewStore(client)
	ctx := context.Background()

	theme, err := store.Theme(ctx)
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, theme)

	theme, err = store.Toggle(ctx)
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, theme)
	got, err := mr.Get("dashboard:theme")
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, got)

	// A fresh store over the same key sees the persisted value.
	theme, err = NewStore(client).Theme(ctx)
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, theme)

	theme, err = store.SetTheme(ctx, " LIGHT ")
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, theme)
}

func TestStoreRejectsInvalidTheme(t *testing.T) {
	store := NewStore(nil)
	_, err := store.SetTheme(context.Background(), "sepia")
	if !errors.Is(err, ErrInvalidTheme) {
		t.Fatalf("expected ErrInvalidTheme, got %v", err)
	}
}

func TestStoreIgnoresCorruptValue(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, mr.Set("dashboard:theme", "neon"))

	theme, err := NewStore(client).Theme(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DefaultTheme, theme)
}

func TestStoreInMemoryToggle(t *testing.T) {
	store := NewStore(nil)
	ctx := context.Background()
	first, err := store.Toggle(ctx)
	require.NoError(t, err)
	second, err := store.Toggle(ctx)
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, first)
	assert.Equal(t, ThemeLight, second)
}
