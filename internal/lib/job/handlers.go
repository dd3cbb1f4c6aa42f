package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// handleContactAckTask sends the acknowledgement email. Returning an error
// makes asynq retry the task.
func (j *JobService) handleContactAckTask(ctx context.Context, t *asynq.Task) error {
	var p ContactAckPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal contact ack payload: %w", err)
	}

	j.logger.Info().
		Str("type", "contact_ack").
		Str("to", p.To).
		Msg("Processing contact acknowledgement task")

	if err := j.mailer.SendContactAcknowledgement(ctx, p.To, p.Name); err != nil {
		j.logger.Error().
			Str("type", "contact_ack").
			Str("to", p.To).
			Err(err).
			Msg("Failed to send contact acknowledgement")
		return err
	}

	j.logger.Info().
		Str("type", "contact_ack").
		Str("to", p.To).
		Msg("Successfully sent contact acknowledgement")

	return nil
}
