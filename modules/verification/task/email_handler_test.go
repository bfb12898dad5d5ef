package task

import (
	"context"
	"errors"
	"strings"
	"testing"

	"myevent-api/core/mailer"
	"myevent-api/core/worker"

	"github.com/hibiken/asynq"
)

type recordingMailer struct {
	sent []mailer.EmailMessage
}

func (m *recordingMailer) Send(_ context.Context, msg mailer.EmailMessage) error {
	m.sent = append(m.sent, msg)
	return nil
}

func TestVerificationEmailHandler(t *testing.T) {
	m := &recordingMailer{}
	handler := NewVerificationEmailHandler(m)

	task, _ := worker.NewVerificationEmailTask("ana@example.com", "482913")
	if err := handler(context.Background(), task); err != nil {
		t.Fatal(err)
	}
	if len(m.sent) != 1 {
		t.Fatalf("sent %d messages", len(m.sent))
	}
	if m.sent[0].To[0] != "ana@example.com" || !strings.Contains(m.sent[0].Body, "482913") {
		t.Errorf("message = %+v", m.sent[0])
	}
}

func TestVerificationEmailHandlerBadPayload(t *testing.T) {
	handler := NewVerificationEmailHandler(&recordingMailer{})
	err := handler(context.Background(), asynq.NewTask(worker.TypeVerificationEmail, []byte("{")))
	if !errors.Is(err, asynq.SkipRetry) {
		t.Errorf("err = %v, want SkipRetry", err)
	}
}
