// Package preferences persists the dashboard's single theme preference.
package preferences

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Theme names accepted by the store.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"

	DefaultTheme = ThemeLight
)

// ThemeKey is the Redis key holding the persisted theme.
const ThemeKey = "dashboard:theme"

// ErrInvalidTheme is returned for values other than "light" or "dark".
var ErrInvalidTheme = errors.New("preferences: invalid theme")

// Store keeps the theme in Redis, or in memory when no client is configured.
type Store struct {
	client *redis.Client

	mu    sync.RWMutex
	theme string
}

// NewStore returns a store backed by client. A nil client keeps the value in memory.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client, theme: DefaultTheme}
}

// ParseTheme normalises a user supplied theme name.
func ParseTheme(value string) (string, error) {
	switch theme := strings.ToLower(strings.TrimSpace(value)); theme {
	case ThemeLight, ThemeDark:
		return theme, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidTheme, value)
	}
}

// Theme returns the persisted theme, falling back to the default when unset.
func (s *Store) Theme(ctx context.Context) (string, error) {
	if s.client == nil {
		s.mu.RLock()
		defer s.mu.RUnlock()
		return s.theme, nil
	}
	value, err := s.client.Get(ctx, ThemeKey).Result()
	if errors.Is(err, redis.Nil) {
		return DefaultTheme, nil
	}
	if err != nil {
		return "", fmt.Errorf("preferences: read theme: %w", err)
	}
	theme, err := ParseTheme(value)
	if err != nil {
		return DefaultTheme, nil
	}
	return theme, nil
}

// SetTheme validates and persists value.
func (s *Store) SetTheme(ctx context.Context, value string) (string, error) {
	theme, err := ParseTheme(value)
	if err != nil {
		return "", err
	}
	if s.client == nil {
		s.mu.Lock()
		s.theme = theme
		s.mu.Unlock()
		return theme, nil
	}
	if err := s.client.Set(ctx, ThemeKey, theme, 0).Err(); err != nil {
		return "", fmt.Errorf("preferences: write theme: %w", err)
	}
	return theme, nil
}

// Toggle flips between light and dark and persists the result.
func (s *Store) Toggle(ctx context.Context) (string, error) {
	current, err := s.Theme(ctx)
	if err != nil {
		return "", err
	}
	next := ThemeDark
	if current == ThemeDark {
		next = ThemeLight
	}
	return s.SetTheme(ctx, next)
}
