package jobs

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskDashboardWarmup refills the dashboard cache.
	TaskDashboardWarmup = "dashboard:warmup"
	// DefaultWarmupCron runs the warmup every fifteen minutes.
	DefaultWarmupCron = "*/15 * * * *"
	// WarmupMaxRetry bounds asynq retries for a failed warmup.
	WarmupMaxRetry = 3
)

// WarmupPayload describes one warmup run.
type WarmupPayload struct {
	// Days lists the trend windows to warm. Empty means the service default.
	Days []int `json:"days,omitempty"`
	// Bump invalidates the cache before warming it.
	Bump bool `json:"bump,omitempty"`
}

// NewWarmupTask constructs the dashboard warmup task.
func NewWarmupTask(payload WarmupPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("jobs: encode warmup payload: %w", err)
	}
	return asynq.NewTask(TaskDashboardWarmup, data, asynq.Queue(QueueDefault), asynq.MaxRetry(WarmupMaxRetry)), nil
}

func decodeWarmupPayload(raw []byte) (WarmupPayload, error) {
	var payload WarmupPayload
	if len(raw) == 0 {
		return payload, nil
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return WarmupPayload{}, err
	}
	for _, days := range payload.Days {
		if days < 1 {
			return WarmupPayload{}, fmt.Errorf("invalid trend window %d", days)
		}
	}
	return payload, nil
}
