package task

import (
	"context"
	"fmt"

	"myevent-api/core/constants"
	"myevent-api/core/logger"
	"myevent-api/core/mailer"
	"myevent-api/core/worker"

	"github.com/hibiken/asynq"
)

// NewVerificationEmailHandler renders and sends the code email. A malformed
// payload is skipped rather than retried.
func NewVerificationEmailHandler(m mailer.Mailer) func(context.Context, *asynq.Task) error {
	return func(ctx context.Context, t *asynq.Task) error {
		p, err := worker.ParseVerificationEmailPayload(t)
		if err != nil {
			return fmt.Errorf("parse payload: %v: %w", err, asynq.SkipRetry)
		}

		msg, err := mailer.VerificationEmail(p.Email, p.Code, int(constants.VerificationCodeTTL.Minutes()))
		if err != nil {
			return fmt.Errorf("render email: %v: %w", err, asynq.SkipRetry)
		}
		if err := m.Send(ctx, msg); err != nil {
			return err
		}

		logger.Info("VerificationEmailHandler:Sent", "email", p.Email)
		return nil
	}
}
