package tasks

import (
	"encoding/json"

	"github.com/Nadeem-mohammad0021/assistant/models"

	"github.com/hibiken/asynq"
)

const TypeSendPush = "notification:push"

// NewPushTask builds a queued push-delivery task for the async worker.
func NewPushTask(payload models.PushPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendPush, b)
	opts := []asynq.Option{asynq.MaxRetry(3)}

	return task, opts, nil
}
