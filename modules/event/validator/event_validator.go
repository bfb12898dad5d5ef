package validator

import (
	"context"
	"strings"
	"time"

	"myevent-api/core/validator"
	"myevent-api/modules/event/dto"
	"myevent-api/modules/event/entity"

	playground "github.com/go-playground/validator/v10"
)

const DateLayout = "2006-01-02"

// Policy toggles rules that differ between deployments.
type Policy struct {
	RequireLongDescription bool
}

// ParseDate reads a YYYY-MM-DD value (a longer RFC 3339 value is cut to its
// date part) as midnight in loc.
func ParseDate(raw string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if len(raw) > len(DateLayout) {
		raw = raw[:len(DateLayout)]
	}
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation(DateLayout, raw, loc)
}

type rulesKey struct{}

type rules struct {
	today  time.Time
	policy Policy
}

var eventMessages = validator.Messages{
	"Title.trimmin":            "El título debe tener al menos 3 caracteres",
	"Title.trimmax":            "El título no puede exceder 60 caracteres",
	"ShortDescription.trimmin": "La descripción corta debe tener al menos 10 caracteres",
	"ShortDescription.trimmax": "La descripción corta no puede exceder 200 caracteres",
	"LongDescription.longdesc": "La descripción larga debe tener al menos 25 caracteres",
	"LongDescription.trimmax":  "La descripción larga no puede exceder 1000 caracteres",
	"Date.notblank":            "La fecha del evento es requerida",
	"Date.isodate":             "La fecha del evento no es válida",
	"Date.notpast":             "La fecha del evento no puede ser anterior a hoy",
	"Time.notblank":            "La hora del evento es requerida",
	"Visibility.oneof":         "El tipo de evento debe ser 'publico' o 'privado'",
	"OrganizerID.required":     "Error del sistema: identificador de usuario requerido",
}

func init() {
	validator.RegisterValidationCtx("isodate", func(_ context.Context, fl playground.FieldLevel) bool {
		_, err := ParseDate(fl.Field().String(), time.UTC)
		return err == nil
	})
	validator.RegisterValidationCtx("notpast", func(ctx context.Context, fl playground.FieldLevel) bool {
		today := rulesFrom(ctx).today
		date, err := ParseDate(fl.Field().String(), today.Location())
		return err == nil && !date.Before(today)
	})
	validator.RegisterValidationCtx("longdesc", func(ctx context.Context, fl playground.FieldLevel) bool {
		if !rulesFrom(ctx).policy.RequireLongDescription {
			return true
		}
		return validator.Length(fl.Field().String()) >= 25
	})
}

func rulesFrom(ctx context.Context) rules {
	if r, ok := ctx.Value(rulesKey{}).(rules); ok {
		return r
	}
	now := time.Now().UTC()
	return rules{today: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)}
}

// ValidateCreateEventRequest checks every rule and reports all violations.
// today must be midnight of the current date in the reference timezone.
func ValidateCreateEventRequest(req *dto.CreateEventRequest, today time.Time, policy Policy) *validator.ValidationResult {
	v := validator.New()
	ctx := context.WithValue(context.Background(), rulesKey{}, rules{today: today, policy: policy})
	v.StructCtx(ctx, req, eventMessages)
	return v
}

// ValidateUpdateEventRequest applies the creation rules to the fields present.
func ValidateUpdateEventRequest(req *dto.UpdateEventRequest, today time.Time) *validator.ValidationResult {
	v := validator.New()
	ctx := context.WithValue(context.Background(), rulesKey{}, rules{today: today})
	v.StructCtx(ctx, req, eventMessages)
	return v
}

func ValidateStatus(raw string) (entity.EventStatus, *validator.ValidationResult) {
	v := validator.New()
	status := entity.EventStatus(strings.TrimSpace(raw))
	switch {
	case status == "":
		v.Add("El nuevo estado es requerido")
	case !status.Valid():
		v.Add("Estado no permitido")
	}
	return status, v
}
