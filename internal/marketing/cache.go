package marketing

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

const (
	cacheVersionKey = "marketing:version"
	// BumpChannel carries cache version bumps between dashboard processes.
	BumpChannel = "marketing.bump"
)

// Cache stores shaped dashboard payloads in Redis under a global version.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache instantiates the cache helper.
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// Version returns the current cache version, initialising when missing.
func (c *Cache) Version(ctx context.Context) (int64, error) {
	if c == nil || c.client == nil {
		return 0, nil
	}
	ver, err := c.client.Get(ctx, cacheVersionKey).Int64()
	if errors.Is(err, redis.Nil) {
		if err := c.client.SetNX(ctx, cacheVersionKey, 1, 0).Err(); err != nil {
			return 0, fmt.Errorf("marketing: init cache version: %w", err)
		}
		return 1, nil
	}
	if err != nil {
		return 0, fmt.Errorf("marketing: cache version: %w", err)
	}
	if ver <= 0 {
		ver = 1
		if err := c.client.Set(ctx, cacheVersionKey, ver, 0).Err(); err != nil {
			return 0, fmt.Errorf("marketing: reset cache version: %w", err)
		}
	}
	return ver, nil
}

// BuildKey composes the cache key with the current version appended.
func (c *Cache) BuildKey(ctx context.Context, parts ...string) (string, error) {
	joined := strings.Join(parts, ":")
	if c == nil || c.client == nil {
		return joined, nil
	}
	ver, err := c.Version(ctx)
	if err != nil {
		return "", err
	}
	return joined + ":" + strconv.FormatInt(ver, 10), nil
}

// FetchJSON loads a cached value into dest or populates it using loader.
func (c *Cache) FetchJSON(ctx context.Context, key string, dest any, loader func(context.Context) (any, error)) error {
	if loader == nil {
		return errors.New("marketing: cache loader required")
	}
	if c != nil && c.client != nil {
		payload, err := c.client.Get(ctx, key).Bytes()
		if err == nil {
			return json.Unmarshal(payload, dest)
		}
		if !errors.Is(err, redis.Nil) {
			return fmt.Errorf("marketing: cache get %s: %w", key, err)
		}
	}
	value, err := loader(ctx)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marketing: encode %s: %w", key, err)
	}
	if c != nil && c.client != nil {
		if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
			return fmt.Errorf("marketing: cache set %s: %w", key, err)
		}
	}
	return json.Unmarshal(raw, dest)
}

// Bump invalidates every cached payload by incrementing the version and publishing it.
func (c *Cache) Bump(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	ver, err := c.client.Incr(ctx, cacheVersionKey).Result()
	if err != nil {
		return fmt.Errorf("marketing: bump cache: %w", err)
	}
	return c.client.Publish(ctx, BumpChannel, strconv.FormatInt(ver, 10)).Err()
}

// ListenForInvalidation follows version bumps published by other processes
// until ctx is cancelled.
func (c *Cache) ListenForInvalidation(ctx context.Context, channel string) error {
	if c == nil || c.client == nil {
		return nil
	}
	if channel == "" {
		channel = BumpChannel
	}
	pubsub := c.client.Subscribe(ctx, channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return fmt.Errorf("marketing: subscribe %s: %w", channel, err)
	}
	go func() {
		defer func() { _ = pubsub.Close() }()
		ch := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				ver, err := strconv.ParseInt(msg.Payload, 10, 64)
				if err != nil {
					continue
				}
				_, _ = c.raiseVersion(ctx, ver)
			}
		}
	}()
	return nil
}

// raiseVersionScript sets the version only when it moves forward, so a late
// bump message can never reopen an older key generation.
var raiseVersionScript = redis.NewScript(`
local cur = tonumber(redis.call("GET", KEYS[1]) or "0")
local ver = tonumber(ARGV[1])
if ver > cur then
	redis.call("SET", KEYS[1], ver)
	return ver
end
return cur
`)

// raiseVersion applies a published version and returns the resulting one.
func (c *Cache) raiseVersion(ctx context.Context, ver int64) (int64, error) {
	got, err := raiseVersionScript.Run(ctx, c.client, []string{cacheVersionKey}, ver).Int64()
	if err != nil {
		return 0, fmt.Errorf("marketing: raise cache version: %w", err)
	}
	return got, nil
}

func cacheKey(kind, datasetID string, args ...string) []string {
	return append([]string{"marketing", kind, datasetID}, args...)
}
