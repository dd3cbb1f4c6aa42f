package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// TaskContactAck is the job type name stored in Redis.
	TaskContactAck = "email:contact_ack"
)

// ContactAckPayload is the JSON payload of the contact acknowledgement task.
type ContactAckPayload struct {
	To   string `json:"to"`
	Name string `json:"name"`
}

// NewContactAckTask builds the task thanking a contact-form sender.
// It runs on the low queue: it is a courtesy email.
func NewContactAckTask(to, name string) (*asynq.Task, error) {
	payload, err := json.Marshal(ContactAckPayload{
		To:   to,
		Name: name,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskContactAck,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("low"),
		asynq.Timeout(30*time.Second),
	), nil
}
