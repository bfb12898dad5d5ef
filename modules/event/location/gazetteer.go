// Package location derives district, city and map links for events in the
// Lima metropolitan area from whatever location hints the organizer supplied.
package location

import (
	"sort"
	"strings"
)

const DefaultCity = "Lima"

type alias struct {
	key      string
	district string
}

type region struct {
	city    string
	aliases []alias
}

// Order matters: the first alias contained in the text wins, regions are
// searched in order and aliases within a region in order.
var gazetteer = []region{
	{
		city: "Lima",
		aliases: []alias{
			{"miraflores", "Miraflores"},
			{"san isidro", "San Isidro"},
			{"surco", "Santiago de Surco"},
			{"santiago de surco", "Santiago de Surco"},
			{"surquillo", "Surquillo"},
			{"la molina", "La Molina"},
			{"san borja", "San Borja"},
			{"barranco", "Barranco"},
			{"chorrillos", "Chorrillos"},
			{"magdalena", "Magdalena del Mar"},
			{"magdalena del mar", "Magdalena del Mar"},
			{"jesús maría", "Jesús María"},
			{"jesus maria", "Jesús María"},
			{"lince", "Lince"},
			{"pueblo libre", "Pueblo Libre"},
			{"san miguel", "San Miguel"},
			{"los olivos", "Los Olivos"},
			{"san martín de porres", "San Martín de Porres"},
			{"san martin de porres", "San Martín de Porres"},
			{"smp", "San Martín de Porres"},
			{"independencia", "Independencia"},
			{"comas", "Comas"},
			{"carabayllo", "Carabayllo"},
			{"puente piedra", "Puente Piedra"},
			{"san juan de lurigancho", "San Juan de Lurigancho"},
			{"sjl", "San Juan de Lurigancho"},
			{"el agustino", "El Agustino"},
			{"santa anita", "Santa Anita"},
			{"ate", "Ate"},
			{"ate vitarte", "Ate"},
			{"la victoria", "La Victoria"},
			{"cercado de lima", "Cercado de Lima"},
			{"cercado", "Cercado de Lima"},
			{"lima centro", "Cercado de Lima"},
			{"rimac", "Rímac"},
			{"rímac", "Rímac"},
			{"breña", "Breña"},
			{"san juan de miraflores", "San Juan de Miraflores"},
			{"sjm", "San Juan de Miraflores"},
			{"villa maría del triunfo", "Villa María del Triunfo"},
			{"villa maria del triunfo", "Villa María del Triunfo"},
			{"vmt", "Villa María del Triunfo"},
			{"villa el salvador", "Villa El Salvador"},
			{"ves", "Villa El Salvador"},
			{"pachacamac", "Pachacamac"},
			{"lurín", "Lurín"},
			{"lurin", "Lurín"},
		},
	},
	{
		city: "Callao",
		aliases: []alias{
			{"callao", "Callao"},
			{"bellavista", "Bellavista"},
			{"carmen de la legua reynoso", "Carmen de la Legua Reynoso"},
			{"la perla", "La Perla"},
			{"la punta", "La Punta"},
			{"mi perú", "Mi Perú"},
			{"ventanilla", "Ventanilla"},
		},
	},
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// match returns the first region/district whose alias occurs in text.
func match(text string) (city, district string, ok bool) {
	text = normalize(text)
	if text == "" {
		return "", "", false
	}
	for _, r := range gazetteer {
		for _, a := range r.aliases {
			if strings.Contains(text, a.key) {
				return r.city, a.district, true
			}
		}
	}
	return "", "", false
}

// InferDistrict finds the canonical district mentioned in free text.
func InferDistrict(text string) (string, bool) {
	_, district, ok := match(text)
	return district, ok
}

// InferCity resolves the parent city of district, falling back to a search
// of the free text and finally DefaultCity.
func InferCity(text, district string) string {
	if d := normalize(district); d != "" {
		for _, r := range gazetteer {
			for _, a := range r.aliases {
				if strings.Contains(d, a.key) || strings.ToLower(a.district) == d {
					return r.city
				}
			}
		}
	}
	if city, _, ok := match(text); ok {
		return city
	}
	return DefaultCity
}

// Result is the enriched location of an event.
type Result struct {
	District string
	City     string
}

// Enrich keeps a supplied district (trimmed) and infers the rest. A supplied
// city is kept as well; otherwise it is derived.
func Enrich(text, city, district string) Result {
	res := Result{District: strings.TrimSpace(district), City: strings.TrimSpace(city)}
	if res.District == "" {
		res.District, _ = InferDistrict(text)
	}
	if res.City == "" {
		res.City = InferCity(text, res.District)
	}
	return res
}

// Districts lists canonical district names per city, sorted and deduplicated.
func Districts() map[string][]string {
	out := make(map[string][]string, len(gazetteer))
	for _, r := range gazetteer {
		seen := make(map[string]bool)
		var names []string
		for _, a := range r.aliases {
			if !seen[a.district] {
				seen[a.district] = true
				names = append(names, a.district)
			}
		}
		sort.Strings(names)
		out[r.city] = names
	}
	return out
}
