package llm

import (
	"encoding/json"
	"errors"

	"github.com/proyectoseconomicosexclusivos-cmd/configurador-ventanas/internal/catalog"
)

// ParseConfig decodes the model's JSON output into a partial configuration
// and maps any color mention onto the palette. Non-JSON output is an
// extraction failure; the caller surfaces it as a retryable error.
func ParseConfig(raw string) (catalog.PartialConfig, error) {
	if !json.Valid([]byte(raw)) {
		return catalog.PartialConfig{}, errors.New("la respuesta del modelo no es JSON")
	}

	var partial catalog.PartialConfig
	if err := json.Unmarshal([]byte(raw), &partial); err != nil {
		return catalog.PartialConfig{}, errors.New("la respuesta del modelo no coincide con el esquema")
	}

	if partial.Color != nil {
		normalized := catalog.NormalizeColor(*partial.Color)
		partial.Color = &normalized
	}
	return partial, nil
}
