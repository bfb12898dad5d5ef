package worker

import "testing"

func TestVerificationEmailTask(t *testing.T) {
	task, err := NewVerificationEmailTask("ana@example.com", "123456")
	if err != nil {
		t.Fatal(err)
	}
	if task.Type() != TypeVerificationEmail {
		t.Fatalf("type = %q", task.Type())
	}

	p, err := ParseVerificationEmailPayload(task)
	if err != nil {
		t.Fatal(err)
	}
	if p.Email != "ana@example.com" || p.Code != "123456" {
		t.Errorf("payload = %+v", p)
	}
}

func TestExpireEventsTask(t *testing.T) {
	if got := NewExpireEventsTask().Type(); got != TypeExpireEvents {
		t.Errorf("type = %q", got)
	}
}
