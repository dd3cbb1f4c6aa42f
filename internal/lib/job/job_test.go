package job

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMailer struct {
	to, name string
	err      error
}

func (f *fakeMailer) SendContactAcknowledgement(_ context.Context, to, name string) error {
	f.to, f.name = to, name
	return f.err
}

type fakeEnqueuer struct {
	tasks []*asynq.Task
	err   error
}

func (f *fakeEnqueuer) EnqueueContext(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.tasks = append(f.tasks, task)
	return &asynq.TaskInfo{ID: "task-1", Queue: "low"}, nil
}

func (f *fakeEnqueuer) Close() error { return nil }

func newTestService(mailer Mailer, client enqueuer) *JobService {
	logger := zerolog.Nop()
	return &JobService{client: client, mailer: mailer, logger: &logger}
}

func TestNewContactAckTask(t *testing.T) {
	task, err := NewContactAckTask("jane@example.com", "Jane")
	require.NoError(t, err)

	assert.Equal(t, TaskContactAck, task.Type())

	var p ContactAckPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &p))
	assert.Equal(t, ContactAckPayload{To: "jane@example.com", Name: "Jane"}, p)
}

func TestEnqueueContactAck(t *testing.T) {
	client := &fakeEnqueuer{}
	svc := newTestService(&fakeMailer{}, client)

	require.NoError(t, svc.EnqueueContactAck(context.Background(), "jane@example.com", "Jane"))
	require.Len(t, client.tasks, 1)
	assert.Equal(t, TaskContactAck, client.tasks[0].Type())
}

func TestEnqueueContactAckReportsRedisFailure(t *testing.T) {
	svc := newTestService(&fakeMailer{}, &fakeEnqueuer{err: errors.New("redis down")})

	err := svc.EnqueueContactAck(context.Background(), "jane@example.com", "Jane")
	require.Error(t, err)
}

func TestHandleContactAckTask(t *testing.T) {
	mailer := &fakeMailer{}
	svc := newTestService(mailer, &fakeEnqueuer{})

	task, err := NewContactAckTask("jane@example.com", "Jane")
	require.NoError(t, err)

	require.NoError(t, svc.handleContactAckTask(context.Background(), task))
	assert.Equal(t, "jane@example.com", mailer.to)
	assert.Equal(t, "Jane", mailer.name)
}

func TestHandleContactAckTaskReturnsMailerError(t *testing.T) {
	svc := newTestService(&fakeMailer{err: errors.New("resend down")}, &fakeEnqueuer{})

	task, err := NewContactAckTask("jane@example.com", "Jane")
	require.NoError(t, err)

	assert.Error(t, svc.handleContactAckTask(context.Background(), task))
}

func TestHandleContactAckTaskRejectsBadPayload(t *testing.T) {
	svc := newTestService(&fakeMailer{}, &fakeEnqueuer{})

	err := svc.handleContactAckTask(context.Background(), asynq.NewTask(TaskContactAck, []byte("{")))
	assert.Error(t, err)
}
