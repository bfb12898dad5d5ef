package task

import (
	"context"

	"myevent-api/core/logger"

	"github.com/hibiken/asynq"
)

// Expirer marks events whose date has passed as vencido.
type Expirer interface {
	ExpirePastEvents(ctx context.Context) (int64, error)
}

// NewExpireEventsHandler runs the periodic expiry sweep.
func NewExpireEventsHandler(e Expirer) func(context.Context, *asynq.Task) error {
	return func(ctx context.Context, t *asynq.Task) error {
		n, err := e.ExpirePastEvents(ctx)
		if err != nil {
			return err
		}
		logger.Debug("ExpireEventsHandler:Done", "type", t.Type(), "expired", n)
		return nil
	}
}
