package task

import (
	"context"
	"testing"

	"myevent-api/core/errors"
	"myevent-api/core/worker"
)

type fakeExpirer struct {
	calls int
	err   error
}

func (f *fakeExpirer) ExpirePastEvents(context.Context) (int64, error) {
	f.calls++
	return 2, f.err
}

func TestExpireEventsHandler(t *testing.T) {
	f := &fakeExpirer{}
	h := NewExpireEventsHandler(f)

	if err := h(context.Background(), worker.NewExpireEventsTask()); err != nil {
		t.Fatal(err)
	}
	if f.calls != 1 {
		t.Errorf("calls = %d", f.calls)
	}

	f.err = errors.New("db down")
	if err := h(context.Background(), worker.NewExpireEventsTask()); err == nil {
		t.Error("expected error to be returned for retry")
	}
}
