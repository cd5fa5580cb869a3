package marketing

import (
	"context"
	"sync/atomic"
	"time"
)

// DefaultTickerPeriod is the refresh cadence of the live indicator.
const DefaultTickerPeriod = 5 * time.Second

// Ticker re-stamps the dashboard's last-updated time while live mode is on.
// It never regenerates data.
type Ticker struct {
	period      time.Duration
	now         func() time.Time
	enabled     atomic.Bool
	lastUpdated atomic.Int64
	onTick      func(time.Time)
}

// NewTicker builds a disabled ticker stamped with the current time.
func NewTicker(period time.Duration, now func() time.Time) *Ticker {
	if period <= 0 {
		period = DefaultTickerPeriod
	}
	if now == nil {
		now = time.Now
	}
	t := &Ticker{period: period, now: now}
	t.stamp()
	return t
}

// OnTick registers a callback invoked after each stamp. Set before Run.
func (t *Ticker) OnTick(fn func(time.Time)) { t.onTick = fn }

// Period returns the tick interval.
func (t *Ticker) Period() time.Duration { return t.period }

// SetEnabled toggles live mode. Enabling stamps immediately.
func (t *Ticker) SetEnabled(enabled bool) {
	if t.enabled.Swap(enabled) != enabled && enabled {
		t.stamp()
	}
}

// Enabled reports whether live mode is on.
func (t *Ticker) Enabled() bool { return t.enabled.Load() }

// LastUpdated returns the most recent stamp.
func (t *Ticker) LastUpdated() time.Time {
	return time.Unix(0, t.lastUpdated.Load()).UTC()
}

// Tick stamps once if live mode is on and reports whether it did.
func (t *Ticker) Tick() bool {
	if !t.enabled.Load() {
		return false
	}
	t.stamp()
	return true
}

// Run ticks every period until ctx is cancelled.
func (t *Ticker) Run(ctx context.Context) {
	ticker := time.NewTicker(t.period)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			t.Tick()
		}
	}
}

func (t *Ticker) stamp() {
	now := t.now()
	t.lastUpdated.Store(now.UnixNano())
	if t.onTick != nil {
		t.onTick(now)
	}
}
