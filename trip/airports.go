package trip

import "strings"

// cityAirports maps known city names to their primary IATA airport code.
// Covers the candidate destination list plus the Phoenix home origin.
var cityAirports = map[string]string{
	"phoenix":        "PHX",
	"los angeles":    "LAX",
	"las vegas":      "LAS",
	"salt lake city": "SLC",
	"denver":         "DEN",
	"albuquerque":    "ABQ",
	"san diego":      "SAN",
	"el paso":        "ELP",
	"san antonio":    "SAT",
	"houston":        "IAH",
	"dallas":         "DFW",
	"oklahoma city":  "OKC",
	"kansas city":    "MCI",
}

// AirportCode resolves a city name to its IATA code. A trailing
// ", Region" suffix is tolerated so origin strings like
// "Phoenix, Arizona" resolve too. Lookup is case-insensitive.
func AirportCode(city string) (string, bool) {
	name := city
	if idx := strings.Index(name, ","); idx >= 0 {
		name = name[:idx]
	}
	name = strings.ToLower(strings.TrimSpace(name))
	code, ok := cityAirports[name]
	return code, ok
}
