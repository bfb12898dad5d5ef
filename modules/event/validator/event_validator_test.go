package validator

import (
	"strings"
	"testing"
	"time"

	"myevent-api/modules/event/dto"

	"github.com/google/uuid"
)

var today = time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

func validRequest() *dto.CreateEventRequest {
	return &dto.CreateEventRequest{
		Title:            "Feria gastronómica",
		ShortDescription: "Comida peruana al aire libre",
		Date:             "2026-06-20",
		Time:             "18:00",
		Visibility:       "publico",
		OrganizerID:      uuid.New(),
	}
}

func TestValidateCreateEventRequestValid(t *testing.T) {
	if res := ValidateCreateEventRequest(validRequest(), today, Policy{}); res.HasError() {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
}

func TestTitleLengthBoundaries(t *testing.T) {
	tests := []struct {
		length  int
		wantErr bool
	}{
		{0, true}, {1, true}, {2, true}, {3, false}, {60, false}, {61, true},
	}
	for _, tt := range tests {
		req := validRequest()
		req.Title = strings.Repeat("a", tt.length)
		res := ValidateCreateEventRequest(req, today, Policy{})
		if res.HasError() != tt.wantErr {
			t.Errorf("title length %d: errors = %v, wantErr %v", tt.length, res.Errors, tt.wantErr)
		}
	}
}

func TestTitleIsTrimmed(t *testing.T) {
	req := validRequest()
	req.Title = "  ab  "
	res := ValidateCreateEventRequest(req, today, Policy{})
	if len(res.Errors) != 1 || res.Errors[0] != "El título debe tener al menos 3 caracteres" {
		t.Errorf("errors = %v", res.Errors)
	}
}

func TestDateBoundaries(t *testing.T) {
	tests := []struct {
		date    string
		wantErr bool
	}{
		{"2026-06-14", true},
		{"2026-06-15", false},
		{"2026-06-15T23:59:00Z", false},
		{"2026-06-16", false},
		{"", true},
		{"15/06/2026", true},
	}
	for _, tt := range tests {
		req := validRequest()
		req.Date = tt.date
		res := ValidateCreateEventRequest(req, today, Policy{})
		if res.HasError() != tt.wantErr {
			t.Errorf("date %q: errors = %v, wantErr %v", tt.date, res.Errors, tt.wantErr)
		}
	}
}

func TestDateUsesReferenceTimezone(t *testing.T) {
	lima, err := time.LoadLocation("America/Lima")
	if err != nil {
		t.Skip("tzdata not available")
	}
	limaToday := time.Date(2026, 6, 14, 0, 0, 0, 0, lima)

	req := validRequest()
	req.Date = "2026-06-14"
	if res := ValidateCreateEventRequest(req, limaToday, Policy{}); res.HasError() {
		t.Errorf("same civil date in Lima should pass: %v", res.Errors)
	}
}

func TestCollectsAllErrors(t *testing.T) {
	req := &dto.CreateEventRequest{Visibility: "secreto"}
	res := ValidateCreateEventRequest(req, today, Policy{RequireLongDescription: true})

	want := []string{
		"El título debe tener al menos 3 caracteres",
		"La descripción corta debe tener al menos 10 caracteres",
		"La descripción larga debe tener al menos 25 caracteres",
		"La fecha del evento es requerida",
		"La hora del evento es requerida",
		"El tipo de evento debe ser 'publico' o 'privado'",
		"Error del sistema: identificador de usuario requerido",
	}
	if len(res.Errors) != len(want) {
		t.Fatalf("errors = %v", res.Errors)
	}
	for i := range want {
		if res.Errors[i] != want[i] {
			t.Errorf("errors[%d] = %q, want %q", i, res.Errors[i], want[i])
		}
	}
}

func TestLongDescriptionPolicy(t *testing.T) {
	req := validRequest()
	if res := ValidateCreateEventRequest(req, today, Policy{RequireLongDescription: true}); !res.HasError() {
		t.Error("strict policy should require a long description")
	}
	req.LongDescription = strings.Repeat("x", 25)
	if res := ValidateCreateEventRequest(req, today, Policy{RequireLongDescription: true}); res.HasError() {
		t.Errorf("25 characters should pass: %v", res.Errors)
	}
	req.LongDescription = strings.Repeat("x", 1001)
	if res := ValidateCreateEventRequest(req, today, Policy{}); !res.HasError() {
		t.Error("1001 characters should fail under any policy")
	}
}

func TestValidateStatus(t *testing.T) {
	for raw, wantErr := range map[string]bool{
		"activo":    false,
		"rechazado": false,
		"pendiente": false,
		"vencido":   false,
		"":          true,
		"cancelado": true,
		"ACTIVO":    true,
	} {
		_, res := ValidateStatus(raw)
		if res.HasError() != wantErr {
			t.Errorf("ValidateStatus(%q) errors = %v, wantErr %v", raw, res.Errors, wantErr)
		}
	}
}

func TestValidateUpdateEventRequest(t *testing.T) {
	short := "ab"
	past := "2026-06-01"
	blank := "  "
	tests := []struct {
		name string
		req  dto.UpdateEventRequest
		want []string
	}{
		{"empty update", dto.UpdateEventRequest{}, nil},
		{"short title", dto.UpdateEventRequest{Title: &short}, []string{"El título debe tener al menos 3 caracteres"}},
		{"past date", dto.UpdateEventRequest{Date: &past}, []string{"La fecha del evento no puede ser anterior a hoy"}},
		{"blank time", dto.UpdateEventRequest{Time: &blank}, []string{"La hora del evento es requerida"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ValidateUpdateEventRequest(&tt.req, today)
			if len(res.Errors) != len(tt.want) {
				t.Fatalf("errors = %v, want %v", res.Errors, tt.want)
			}
			for i := range tt.want {
				if res.Errors[i] != tt.want[i] {
					t.Errorf("errors[%d] = %q, want %q", i, res.Errors[i], tt.want[i])
				}
			}
		})
	}
}

func TestInvalidDateMessage(t *testing.T) {
	req := validRequest()
	req.Date = "2026-13-40"
	res := ValidateCreateEventRequest(req, today, Policy{})
	if len(res.Errors) != 1 || res.Errors[0] != "La fecha del evento no es válida" {
		t.Errorf("errors = %v", res.Errors)
	}
}
