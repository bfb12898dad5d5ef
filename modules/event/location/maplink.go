package location

import (
	"net/url"
	"strings"
)

const (
	coordinateURL = "https://www.google.com/maps?q="
	searchURL     = "https://www.google.com/maps/search/?api=1&query="
	directionsURL = "https://www.google.com/maps/dir/?api=1"
)

var mapsPrefixes = []string{
	"https://www.google.com/maps",
	"https://maps.google.com",
	"https://goo.gl/maps",
	"https://maps.app.goo.gl",
}

// Hint carries whatever location data an event has.
type Hint struct {
	Latitude  string
	Longitude string
	Address   string
	City      string
	District  string
}

// Synthesize builds the most precise map link available: coordinates, then
// the free-text address, then "district, city".
func Synthesize(h Hint) (string, bool) {
	if h.Latitude != "" && h.Longitude != "" {
		return coordinateURL + h.Latitude + "," + h.Longitude, true
	}
	if addr := strings.TrimSpace(h.Address); addr != "" {
		return searchURL + EncodeURIComponent(addr), true
	}
	if parts := h.parts(); len(parts) > 0 {
		return searchURL + EncodeURIComponent(strings.Join(parts, ", ")), true
	}
	return "", false
}

// DirectionsURL links to turn-by-turn directions to the hint's location,
// optionally starting from origin.
func DirectionsURL(destination Hint, origin string) (string, bool) {
	var dest string
	switch {
	case destination.Latitude != "" && destination.Longitude != "":
		dest = destination.Latitude + "," + destination.Longitude
	case strings.TrimSpace(destination.Address) != "":
		dest = EncodeURIComponent(strings.TrimSpace(destination.Address))
	case len(destination.parts()) > 0:
		dest = EncodeURIComponent(strings.Join(destination.parts(), ", "))
	default:
		return "", false
	}

	u := directionsURL
	if origin != "" {
		u += "&origin=" + EncodeURIComponent(origin)
	}
	return u + "&destination=" + dest, true
}

// IsMapsURL reports whether u points at a Google Maps host.
func IsMapsURL(u string) bool {
	for _, p := range mapsPrefixes {
		if strings.HasPrefix(u, p) {
			return true
		}
	}
	return false
}

func (h Hint) parts() []string {
	var parts []string
	if d := strings.TrimSpace(h.District); d != "" {
		parts = append(parts, d)
	}
	if c := strings.TrimSpace(h.City); c != "" {
		parts = append(parts, c)
	}
	return parts
}

var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeURIComponent percent-encodes s the way browsers encode a single
// query component: spaces become %20 and !'()* stay literal.
func EncodeURIComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}
