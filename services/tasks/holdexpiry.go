package tasks

import (
	"encoding/json"
	"time"

	"pawcare/models"

	"github.com/hibiken/asynq"
)

const TypeHoldExpire = "hold:expire"

// NewHoldExpireTask schedules a hold-expiry check at the hold deadline.
func NewHoldExpireTask(payload models.HoldReleasePayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeHoldExpire, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}
