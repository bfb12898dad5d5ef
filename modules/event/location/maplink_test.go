package location

import (
	"strings"
	"testing"
)

func TestSynthesizePrecedence(t *testing.T) {
	tests := []struct {
		name string
		hint Hint
		want string
		ok   bool
	}{
		{
			name: "coordinates win over address",
			hint: Hint{Latitude: "1.0", Longitude: "2.0", Address: "ignored"},
			want: "https://www.google.com/maps?q=1.0,2.0",
			ok:   true,
		},
		{
			name: "address wins over city and district",
			hint: Hint{Latitude: "1.0", Address: " Av. Larco 123 ", City: "Lima", District: "Miraflores"},
			want: "https://www.google.com/maps/search/?api=1&query=Av.%20Larco%20123",
			ok:   true,
		},
		{
			name: "district and city",
			hint: Hint{Address: "", City: "Lima", District: "Miraflores"},
			want: "https://www.google.com/maps/search/?api=1&query=Miraflores%2C%20Lima",
			ok:   true,
		},
		{
			name: "city only",
			hint: Hint{Address: "   ", City: "Callao"},
			want: "https://www.google.com/maps/search/?api=1&query=Callao",
			ok:   true,
		},
		{
			name: "nothing",
			hint: Hint{City: "  "},
			ok:   false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Synthesize(tt.hint)
			if got != tt.want || ok != tt.ok {
				t.Errorf("Synthesize() = %q, %v; want %q, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestSynthesizeCoordinatesNeverSearch(t *testing.T) {
	got, _ := Synthesize(Hint{Latitude: "1.0", Longitude: "2.0", Address: "ignored"})
	if strings.Contains(got, "/search/") || strings.Contains(got, "ignored") {
		t.Fatalf("coordinate hint produced search URL %q", got)
	}
}

func TestDirectionsURL(t *testing.T) {
	got, ok := DirectionsURL(Hint{Address: "Parque Kennedy"}, "")
	if !ok || got != "https://www.google.com/maps/dir/?api=1&destination=Parque%20Kennedy" {
		t.Errorf("DirectionsURL() = %q", got)
	}

	got, _ = DirectionsURL(Hint{Latitude: "-12.1", Longitude: "-77.0"}, "Mi casa")
	if got != "https://www.google.com/maps/dir/?api=1&origin=Mi%20casa&destination=-12.1,-77.0" {
		t.Errorf("DirectionsURL() with origin = %q", got)
	}

	if _, ok := DirectionsURL(Hint{}, "x"); ok {
		t.Error("DirectionsURL() without destination should fail")
	}
}

func TestIsMapsURL(t *testing.T) {
	for u, want := range map[string]bool{
		"https://www.google.com/maps?q=1,2":        true,
		"https://maps.google.com/?q=x":             true,
		"https://goo.gl/maps/abc":                  true,
		"https://maps.app.goo.gl/xyz":              true,
		"http://www.google.com/maps":               false,
		"https://evil.example.com/google.com/maps": false,
		"":                                         false,
	} {
		if got := IsMapsURL(u); got != want {
			t.Errorf("IsMapsURL(%q) = %v, want %v", u, got, want)
		}
	}
}

func TestEncodeURIComponent(t *testing.T) {
	if got := EncodeURIComponent("Breña, Lima (centro)!"); got != "Bre%C3%B1a%2C%20Lima%20(centro)!" {
		t.Errorf("EncodeURIComponent() = %q", got)
	}
}
