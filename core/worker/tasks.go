package worker

import (
	"encoding/json"

	"myevent-api/core/constants"

	"github.com/hibiken/asynq"
)

const (
	TypeVerificationEmail = "email:verification_code"
	TypeExpireEvents      = "event:expire"
)

type VerificationEmailPayload struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

func NewVerificationEmailTask(email, code string) (*asynq.Task, error) {
	payload, err := json.Marshal(VerificationEmailPayload{Email: email, Code: code})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeVerificationEmail, payload,
		asynq.Queue(constants.QueueCritical),
		asynq.MaxRetry(constants.TaskMaxRetry),
		asynq.Timeout(constants.DefaultTimeout),
	), nil
}

func NewExpireEventsTask() *asynq.Task {
	return asynq.NewTask(TypeExpireEvents, nil,
		asynq.Queue(constants.QueueDefault),
		asynq.MaxRetry(1),
	)
}

func ParseVerificationEmailPayload(t *asynq.Task) (VerificationEmailPayload, error) {
	var p VerificationEmailPayload
	err := json.Unmarshal(t.Payload(), &p)
	return p, err
}
