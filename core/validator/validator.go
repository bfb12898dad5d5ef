package validator

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"

	playground "github.com/go-playground/validator/v10"
)

var validate *playground.Validate

func init() {
	validate = newValidate()
}

func newValidate() *playground.Validate {
	v := playground.New(playground.WithRequiredStructEnabled())
	mustRegister(v, "notblank", func(fl playground.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	mustRegister(v, "trimmin", func(fl playground.FieldLevel) bool {
		return Length(fl.Field().String()) >= paramInt(fl)
	})
	mustRegister(v, "trimmax", func(fl playground.FieldLevel) bool {
		return Length(fl.Field().String()) <= paramInt(fl)
	})
	mustRegister(v, "trimemail", func(fl playground.FieldLevel) bool {
		return IsEmail(fl.Field().String())
	})
	return v
}

func mustRegister(v *playground.Validate, tag string, fn playground.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

func paramInt(fl playground.FieldLevel) int {
	n, err := strconv.Atoi(fl.Param())
	if err != nil {
		panic("validator: tag " + fl.GetTag() + " needs an integer parameter")
	}
	return n
}

// RegisterValidationCtx adds a rule that reads request-scoped values from the
// context passed to StructCtx. Call it from package init only.
func RegisterValidationCtx(tag string, fn playground.FuncCtx) {
	if err := validate.RegisterValidationCtx(tag, fn); err != nil {
		panic(err)
	}
}

// Messages maps "Field.tag" to the text reported when that rule fails.
type Messages map[string]string

// ValidationResult collects every rule violation of a request.
type ValidationResult struct {
	Errors []string `json:"errors"`
}

func New() *ValidationResult {
	return &ValidationResult{}
}

func (v *ValidationResult) Add(msg string) {
	v.Errors = append(v.Errors, msg)
}

func (v *ValidationResult) HasError() bool {
	return len(v.Errors) > 0
}

// Message joins the violations into a single user-facing sentence.
func (v *ValidationResult) Message() string {
	return "Errores de validación: " + strings.Join(v.Errors, ", ")
}

// Struct runs the validate tags of s and adds one message per failing field,
// in field declaration order.
func (v *ValidationResult) Struct(s any, messages Messages) {
	v.StructCtx(context.Background(), s, messages)
}

func (v *ValidationResult) StructCtx(ctx context.Context, s any, messages Messages) {
	v.collect(validate.StructCtx(ctx, s), messages)
}

// Var checks a single value against tag.
func (v *ValidationResult) Var(value any, tag string, messages Messages) {
	v.collect(validate.Var(value, tag), messages)
}

func (v *ValidationResult) collect(err error, messages Messages) {
	if err == nil {
		return
	}
	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		v.Add("Solicitud inválida")
		return
	}
	for _, fe := range fieldErrs {
		v.Add(messageFor(fe, messages))
	}
}

func messageFor(fe playground.FieldError, messages Messages) string {
	if msg, ok := messages[fe.StructField()+"."+fe.Tag()]; ok {
		return msg
	}
	if msg, ok := messages[fe.Tag()]; ok {
		return msg
	}
	return "El campo " + fe.Field() + " no es válido"
}

// Length counts runes of the trimmed value.
func Length(s string) int {
	return utf8.RuneCountInString(strings.TrimSpace(s))
}

// LengthBetween adds minMsg or maxMsg when the trimmed length of s falls outside [min, max].
func (v *ValidationResult) LengthBetween(s string, min, max int, minMsg, maxMsg string) {
	v.Var(s, "trimmin="+strconv.Itoa(min)+",trimmax="+strconv.Itoa(max), Messages{
		"trimmin": minMsg,
		"trimmax": maxMsg,
	})
}

func (v *ValidationResult) Required(s, msg string) {
	v.Var(s, "notblank", Messages{"notblank": msg})
}

func IsEmail(s string) bool {
	return validate.Var(strings.TrimSpace(s), "required,email") == nil
}
