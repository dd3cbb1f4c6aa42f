package service

import (
	"context"
	"strings"

	"github.com/deppfellow/portfolio-backend/internal/errs"
	"github.com/deppfellow/portfolio-backend/internal/model"
	"github.com/rs/zerolog"
)

// ContactMailer relays a contact-form message to the owner's inbox.
type ContactMailer interface {
	SendContactMessage(ctx context.Context, name, from, message string) error
}

// AckQueue schedules the acknowledgement email sent back to the visitor.
type AckQueue interface {
	EnqueueContactAck(ctx context.Context, to, name string) error
}

type ContactService struct {
	mailer ContactMailer
	acks   AckQueue
}

func NewContactService(mailer ContactMailer, acks AckQueue) *ContactService {
	return &ContactService{mailer: mailer, acks: acks}
}

// SendMessage relays the message. The outcome of the relay is the outcome
// of the request; the acknowledgement is best effort.
func (s *ContactService) SendMessage(ctx context.Context, payload *model.ContactPayload) error {
	logger := zerolog.Ctx(ctx)

	name := strings.TrimSpace(payload.Name)
	email := strings.TrimSpace(payload.Email)

	if err := s.mailer.SendContactMessage(ctx, name, email, payload.Message); err != nil {
		logger.Error().Err(err).Msg("failed to relay contact message")
		return errs.NewInternalServerError().WithMessage("Failed to send message, please try again later")
	}

	if s.acks != nil {
		if err := s.acks.EnqueueContactAck(ctx, email, name); err != nil {
			logger.Warn().Err(err).Msg("failed to enqueue contact acknowledgement")
		}
	}

	return nil
}
