package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/deppfellow/portfolio-backend/internal/errs"
	"github.com/deppfellow/portfolio-backend/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMailer struct {
	name, from, message string
	err                 error
}

func (f *fakeMailer) SendContactMessage(_ context.Context, name, from, message string) error {
	f.name, f.from, f.message = name, from, message
	return f.err
}

type fakeAckQueue struct {
	to  []string
	err error
}

func (f *fakeAckQueue) EnqueueContactAck(_ context.Context, to, _ string) error {
	f.to = append(f.to, to)
	return f.err
}

func TestSendMessageRelaysAndAcknowledges(t *testing.T) {
	mailer := &fakeMailer{}
	acks := &fakeAckQueue{}
	svc := NewContactService(mailer, acks)

	err := svc.SendMessage(context.Background(), &model.ContactPayload{
		Name:    " Jane ",
		Email:   "jane@example.com",
		Message: "Hello",
	})
	require.NoError(t, err)

	assert.Equal(t, "Jane", mailer.name)
	assert.Equal(t, "jane@example.com", mailer.from)
	assert.Equal(t, "Hello", mailer.message)
	assert.Equal(t, []string{"jane@example.com"}, acks.to)
}

func TestSendMessageRelayFailureIsServerError(t *testing.T) {
	acks := &fakeAckQueue{}
	svc := NewContactService(&fakeMailer{err: errors.New("provider down")}, acks)

	err := svc.SendMessage(context.Background(), &model.ContactPayload{Name: "Jane", Email: "jane@example.com", Message: "Hello"})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.Equal(t, "Failed to send message, please try again later", httpErr.Message)
	assert.Empty(t, acks.to)
}

func TestSendMessageIgnoresAckFailure(t *testing.T) {
	svc := NewContactService(&fakeMailer{}, &fakeAckQueue{err: errors.New("redis down")})

	err := svc.SendMessage(context.Background(), &model.ContactPayload{Name: "Jane", Email: "jane@example.com", Message: "Hello"})
	assert.NoError(t, err)
}
