package catalog

// Wire values match the labels the storefront and the Gemini extraction
// schema have always used, so they stay in Spanish.
type WindowType string

const (
	Sliding        WindowType = "Corredera"
	Casement       WindowType = "Abatible"
	Fixed          WindowType = "Fija"
	TiltAndTurn    WindowType = "Oscilobatiente"
	OsciloParalela WindowType = "Osciloparalela"
)

type Material string

const (
	PVC      Material = "PVC"
	Aluminum Material = "Aluminio"
	Wood     Material = "Madera"
)

type Profile string

const (
	VekaSoftline70 Profile = "Veka Softline 70"
	VekaSoftline82 Profile = "Veka Softline 82"
)

type GlassType string

const (
	Triple    GlassType = "Triple"
	Double    GlassType = "Doble"
	Tempered  GlassType = "Templado"
	Laminated GlassType = "Laminado"
)

// Dimension limits exposed to the configurator UI. The pricing engine does
// not enforce them; out-of-range dimensions are a caller contract violation.
const (
	MinWidthCm  = 50
	MaxWidthCm  = 300
	MinHeightCm = 50
	MaxHeightCm = 250
)

// WindowConfig is one fully specified window as the customer designs it.
type WindowConfig struct {
	Type       WindowType `json:"type"`
	Width      int        `json:"width"`
	Height     int        `json:"height"`
	Material   Material   `json:"material"`
	Profile    Profile    `json:"profile"`
	Glass      GlassType  `json:"glass"`
	Color      string     `json:"color"`
	HasGrilles bool       `json:"hasGrilles"`
}

// DefaultConfig is the configurator's initial state.
func DefaultConfig() WindowConfig {
	return WindowConfig{
		Type:       Sliding,
		Width:      120,
		Height:     100,
		Material:   PVC,
		Profile:    VekaSoftline70,
		Glass:      Double,
		Color:      "Blanco",
		HasGrilles: false,
	}
}

// PartialConfig carries any subset of window attributes, typically the
// output of AI extraction. Nil fields mean "not mentioned".
type PartialConfig struct {
	Type       *WindowType `json:"type,omitempty"`
	Width      *int        `json:"width,omitempty"`
	Height     *int        `json:"height,omitempty"`
	Material   *Material   `json:"material,omitempty"`
	Profile    *Profile    `json:"profile,omitempty"`
	Glass      *GlassType  `json:"glass,omitempty"`
	Color      *string     `json:"color,omitempty"`
	HasGrilles *bool       `json:"hasGrilles,omitempty"`
}

// Merge overlays the partial record on cfg. Present fields overwrite,
// absent fields leave cfg untouched.
func (p PartialConfig) Merge(cfg WindowConfig) WindowConfig {
	if p.Type != nil {
		cfg.Type = *p.Type
	}
	if p.Width != nil {
		cfg.Width = *p.Width
	}
	if p.Height != nil {
		cfg.Height = *p.Height
	}
	if p.Material != nil {
		cfg.Material = *p.Material
	}
	if p.Profile != nil {
		cfg.Profile = *p.Profile
	}
	if p.Glass != nil {
		cfg.Glass = *p.Glass
	}
	if p.Color != nil {
		cfg.Color = *p.Color
	}
	if p.HasGrilles != nil {
		cfg.HasGrilles = *p.HasGrilles
	}
	return cfg
}

// IsZero reports whether the extraction returned nothing usable.
func (p PartialConfig) IsZero() bool {
	return p.Type == nil && p.Width == nil && p.Height == nil &&
		p.Material == nil && p.Profile == nil && p.Glass == nil &&
		p.Color == nil && p.HasGrilles == nil
}

func WindowTypes() []WindowType {
	return []WindowType{Sliding, Casement, Fixed, TiltAndTurn, OsciloParalela}
}

func Materials() []Material {
	return []Material{PVC, Aluminum, Wood}
}

func Profiles() []Profile {
	return []Profile{VekaSoftline70, VekaSoftline82}
}

func GlassTypes() []GlassType {
	return []GlassType{Triple, Double, Tempered, Laminated}
}
