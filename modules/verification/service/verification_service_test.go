package service

import (
	"context"
	"errors"
	"testing"

	"myevent-api/core/cache"
	appErrors "myevent-api/core/errors"
	"myevent-api/core/worker"
	"myevent-api/modules/verification/dto"

	"github.com/hibiken/asynq"
)

type fakeEnqueuer struct {
	tasks []*asynq.Task
	err   error
}

func (f *fakeEnqueuer) Enqueue(_ context.Context, task *asynq.Task, _ ...asynq.Option) error {
	if f.err != nil {
		return f.err
	}
	f.tasks = append(f.tasks, task)
	return nil
}

func TestSendAndVerifyCode(t *testing.T) {
	store := cache.NewMemoryCache(nil)
	q := &fakeEnqueuer{}
	svc := NewVerificationService(store, q)
	ctx := context.Background()

	resp, appErr := svc.SendCode(ctx, &dto.SendCodeRequest{Email: " Ana@Example.com"})
	if appErr != nil {
		t.Fatalf("SendCode: %v", appErr)
	}
	if resp.ExpiresInMinutes != 10 {
		t.Errorf("expires = %d", resp.ExpiresInMinutes)
	}
	if len(q.tasks) != 1 {
		t.Fatalf("enqueued %d tasks", len(q.tasks))
	}

	p, err := worker.ParseVerificationEmailPayload(q.tasks[0])
	if err != nil {
		t.Fatal(err)
	}
	if p.Email != "ana@example.com" || len(p.Code) != 6 {
		t.Fatalf("payload = %+v", p)
	}

	if appErr := svc.VerifyCode(ctx, &dto.VerifyCodeRequest{Email: "ana@example.com", Code: "not-it"}); appErr == nil || appErr.Code != appErrors.ErrInvalidInput {
		t.Errorf("wrong code: got %v", appErr)
	}
	if appErr := svc.VerifyCode(ctx, &dto.VerifyCodeRequest{Email: "ANA@example.com", Code: p.Code}); appErr != nil {
		t.Fatalf("VerifyCode: %v", appErr)
	}
	if appErr := svc.VerifyCode(ctx, &dto.VerifyCodeRequest{Email: "ana@example.com", Code: p.Code}); appErr == nil {
		t.Error("code should be single use")
	}
}

func TestSendCodeValidation(t *testing.T) {
	tests := []struct {
		name  string
		email string
		qErr  error
		code  appErrors.ErrorCode
	}{
		{"bad email", "no-at-sign", nil, appErrors.ErrInvalidInput},
		{"queue down", "ana@example.com", errors.New("redis down"), appErrors.ErrInternalServer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := cache.NewMemoryCache(nil)
			svc := NewVerificationService(store, &fakeEnqueuer{err: tt.qErr})
			_, appErr := svc.SendCode(context.Background(), &dto.SendCodeRequest{Email: tt.email})
			if appErr == nil || appErr.Code != tt.code {
				t.Fatalf("got %v, want %s", appErr, tt.code)
			}
			if code, _ := store.GetVerificationCode(context.Background(), tt.email); code != "" {
				t.Errorf("code %q left behind", code)
			}
		})
	}
}
