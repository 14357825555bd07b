package catalog

import "strings"

// ColorOption is one entry of the fixed palette shown by the configurator.
// The pricing logic never constrains the color; the palette is advisory.
type ColorOption struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func Colors() []ColorOption {
	return []ColorOption{
		{Name: "Blanco", Value: "#FFFFFF"},
		{Name: "Negro", Value: "#2D3748"},
		{Name: "Gris Antracita", Value: "#4A5568"},
		{Name: "Plata", Value: "#E2E8F0"},
		{Name: "Imitación Madera", Value: "#8B5A2B"},
	}
}

var colorAliases = []struct {
	substring string
	palette   string
}{
	{"blanco", "Blanco"},
	{"negro", "Negro"},
	{"gris", "Gris Antracita"},
	{"plata", "Plata"},
	{"madera", "Imitación Madera"},
}

// NormalizeColor maps a free-form color mention (usually AI output) onto the
// palette by lowercase substring match. Unrecognized colors pass through
// unchanged.
func NormalizeColor(color string) string {
	lower := strings.ToLower(color)
	for _, alias := range colorAliases {
		if strings.Contains(lower, alias.substring) {
			return alias.palette
		}
	}
	return color
}
