package mapper

import (
	"testing"
	"time"

	"myevent-api/modules/event/entity"

	"github.com/google/uuid"
)

func strPtr(s string) *string { return &s }

func TestToEventResponseDirections(t *testing.T) {
	tests := []struct {
		name  string
		event entity.Event
		want  string
	}{
		{
			"coordinates",
			entity.Event{Latitude: strPtr("-12.1"), Longitude: strPtr("-77.0"), Location: strPtr("Parque Kennedy")},
			"https://www.google.com/maps/dir/?api=1&destination=-12.1,-77.0",
		},
		{
			"address",
			entity.Event{Location: strPtr("Parque Kennedy")},
			"https://www.google.com/maps/dir/?api=1&destination=Parque%20Kennedy",
		},
		{
			"district and city",
			entity.Event{City: strPtr("Lima"), District: strPtr("Miraflores")},
			"https://www.google.com/maps/dir/?api=1&destination=Miraflores%2C%20Lima",
		},
		{"no location", entity.Event{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.event.ID = uuid.New()
			tt.event.Date = time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC)
			resp := ToEventResponse(&tt.event)

			if tt.want == "" {
				if resp.DirectionsURL != nil {
					t.Errorf("DirectionsURL = %q, want nil", *resp.DirectionsURL)
				}
				return
			}
			if resp.DirectionsURL == nil || *resp.DirectionsURL != tt.want {
				t.Errorf("DirectionsURL = %v, want %q", resp.DirectionsURL, tt.want)
			}
		})
	}
}

func TestToEventResponseNil(t *testing.T) {
	if ToEventResponse(nil) != nil {
		t.Error("ToEventResponse(nil) should be nil")
	}
}
