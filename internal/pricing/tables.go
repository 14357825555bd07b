package pricing

import (
	"fmt"

	"github.com/proyectoseconomicosexclusivos-cmd/configurador-ventanas/internal/catalog"
)

// VATRate is the Spanish standard VAT applied to every quote.
const VATRate = 0.21

// Tables holds every rate and multiplier the quote formula reads.
// Lookups on a missing key are lenient at runtime (neutral factor), but
// Validate lets callers catch an incomplete table at construction time.
type Tables struct {
	Base              float64
	PerSquareMeter    map[catalog.Material]float64
	GlassMultiplier   map[catalog.GlassType]float64
	TypeMultiplier    map[catalog.WindowType]float64
	ProfileMultiplier map[catalog.Profile]float64
	Grilles           float64
}

// DefaultTables returns the production price list.
func DefaultTables() Tables {
	return Tables{
		Base: 90,
		PerSquareMeter: map[catalog.Material]float64{
			catalog.PVC:      240.81,
			catalog.Aluminum: 288.97,
			catalog.Wood:     402.15,
		},
		GlassMultiplier: map[catalog.GlassType]float64{
			catalog.Double:    1.3,
			catalog.Triple:    1.5,
			catalog.Tempered:  1.6,
			catalog.Laminated: 1.8,
		},
		TypeMultiplier: map[catalog.WindowType]float64{
			catalog.Fixed:          0.8,
			catalog.Sliding:        1.0,
			catalog.Casement:       1.1,
			catalog.TiltAndTurn:    1.4,
			catalog.OsciloParalela: 1.6,
		},
		ProfileMultiplier: map[catalog.Profile]float64{
			catalog.VekaSoftline70: 1.0,
			catalog.VekaSoftline82: 1.25,
		},
		Grilles: 135,
	}
}

// Validate reports the catalog entries the tables do not cover. A quote on a
// missing entry still works (neutral factor), so this is a tooling check,
// not a runtime guard.
func (t Tables) Validate() error {
	for _, m := range catalog.Materials() {
		if _, ok := t.PerSquareMeter[m]; !ok {
			return fmt.Errorf("pricing: no per-m2 rate for material %q", m)
		}
	}
	for _, g := range catalog.GlassTypes() {
		if _, ok := t.GlassMultiplier[g]; !ok {
			return fmt.Errorf("pricing: no glass multiplier for %q", g)
		}
	}
	for _, wt := range catalog.WindowTypes() {
		if _, ok := t.TypeMultiplier[wt]; !ok {
			return fmt.Errorf("pricing: no type multiplier for %q", wt)
		}
	}
	for _, p := range catalog.Profiles() {
		if _, ok := t.ProfileMultiplier[p]; !ok {
			return fmt.Errorf("pricing: no profile multiplier for %q", p)
		}
	}
	return nil
}
