package validator

import "testing"

func TestLengthBetween(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"ab", 1},
		{"abc", 0},
		{"  abc  ", 0},
		{"ñandú", 0},
		{"abcdefg", 1},
	}
	for _, tt := range tests {
		v := New()
		v.LengthBetween(tt.in, 3, 6, "short", "long")
		if len(v.Errors) != tt.want {
			t.Errorf("LengthBetween(%q) errors = %v, want %d", tt.in, v.Errors, tt.want)
		}
	}
}

func TestMessage(t *testing.T) {
	v := New()
	v.Add("a")
	v.Add("b")
	if !v.HasError() || v.Message() != "Errores de validación: a, b" {
		t.Errorf("Message() = %q", v.Message())
	}
}

func TestIsEmail(t *testing.T) {
	for in, want := range map[string]bool{
		"ana@example.com": true,
		" ana@x.pe ":      true,
		"ana@":            false,
		"@x.pe":           false,
		"ana@localhost":   false,
		"a na@x.pe":       false,
	} {
		if got := IsEmail(in); got != want {
			t.Errorf("IsEmail(%q) = %v, want %v", in, got, want)
		}
	}
}

type signup struct {
	Name  string `validate:"trimmin=3,trimmax=10"`
	Email string `validate:"trimemail"`
	Role  string `validate:"oneof=admin usuario"`
}

func TestStructReportsMessagesInFieldOrder(t *testing.T) {
	v := New()
	v.Struct(&signup{Name: " ab ", Email: "ana", Role: "root"}, Messages{
		"Name.trimmin":    "nombre corto",
		"Email.trimemail": "correo inválido",
	})

	want := []string{"nombre corto", "correo inválido", "El campo Role no es válido"}
	if len(v.Errors) != len(want) {
		t.Fatalf("errors = %v", v.Errors)
	}
	for i := range want {
		if v.Errors[i] != want[i] {
			t.Errorf("errors[%d] = %q, want %q", i, v.Errors[i], want[i])
		}
	}
}

func TestStructValid(t *testing.T) {
	v := New()
	v.Struct(&signup{Name: "Ana", Email: " ana@x.pe ", Role: "admin"}, nil)
	if v.HasError() {
		t.Errorf("unexpected errors: %v", v.Errors)
	}
}

func TestRequired(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"empty", "", true},
		{"blank", "   ", true},
		{"text", "hola", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			v.Required(tt.in, "requerido")
			if v.HasError() != tt.want {
				t.Errorf("Required(%q) errors = %v", tt.in, v.Errors)
			}
		})
	}
}
