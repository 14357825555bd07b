// Package pricing computes window quotes from the attribute price list.
//
// The formula and its operation order are load-bearing: invoices produced
// before this service existed must reprice to the cent, so the per-area
// base, the multiplier chain and the late flat grilles surcharge must not
// be reordered.
package pricing

import (
	"math"

	"github.com/proyectoseconomicosexclusivos-cmd/configurador-ventanas/internal/catalog"
)

// Quote prices one window configuration. The result is VAT-inclusive and
// keeps full float64 precision; round only when displaying.
//
// Unknown attribute values contribute a neutral factor instead of failing.
// AI-extracted configurations can be partial or carry unexpected labels and
// the configurator must keep quoting regardless.
func Quote(cfg catalog.WindowConfig, tables Tables, vatRate float64) float64 {
	area := (float64(cfg.Width) / 100) * (float64(cfg.Height) / 100)

	subtotal := tables.Base
	subtotal += area * tables.PerSquareMeter[cfg.Material] // missing rate = 0
	subtotal *= multiplier(tables.GlassMultiplier, cfg.Glass)
	subtotal *= multiplier(tables.TypeMultiplier, cfg.Type)
	subtotal *= multiplier(tables.ProfileMultiplier, cfg.Profile)

	// Flat surcharge, deliberately after the multiplier chain so it is not
	// scaled by glass, type or profile.
	if cfg.HasGrilles {
		subtotal += tables.Grilles
	}

	return subtotal * (1 + vatRate)
}

func multiplier[K comparable](table map[K]float64, key K) float64 {
	if v, ok := table[key]; ok {
		return v
	}
	return 1
}

// Round2 rounds a price to cents for display and wire payloads.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
