package catalog

import "testing"

func TestMergeOverwritesOnlyPresentFields(t *testing.T) {
	cfg := DefaultConfig()

	material := Aluminum
	partial := PartialConfig{Material: &material}

	merged := partial.Merge(cfg)

	if merged.Material != Aluminum {
		t.Fatalf("expected material %q, got %q", Aluminum, merged.Material)
	}
	if merged.Width != cfg.Width || merged.Height != cfg.Height {
		t.Fatalf("dimensions changed: got %dx%d", merged.Width, merged.Height)
	}
	if merged.Type != cfg.Type || merged.Glass != cfg.Glass || merged.Color != cfg.Color {
		t.Fatalf("untouched fields changed: %+v", merged)
	}
}

func TestMergeEmptyPartialIsNoop(t *testing.T) {
	cfg := DefaultConfig()
	merged := PartialConfig{}.Merge(cfg)
	if merged != cfg {
		t.Fatalf("empty merge changed config: %+v", merged)
	}
}

func TestMergeFullOverwrite(t *testing.T) {
	cfg := DefaultConfig()

	wt := TiltAndTurn
	width, height := 200, 150
	mat := Wood
	prof := VekaSoftline82
	glass := Laminated
	color := "Negro"
	grilles := true

	merged := PartialConfig{
		Type:       &wt,
		Width:      &width,
		Height:     &height,
		Material:   &mat,
		Profile:    &prof,
		Glass:      &glass,
		Color:      &color,
		HasGrilles: &grilles,
	}.Merge(cfg)

	want := WindowConfig{
		Type: wt, Width: width, Height: height,
		Material: mat, Profile: prof, Glass: glass,
		Color: color, HasGrilles: grilles,
	}
	if merged != want {
		t.Fatalf("expected %+v, got %+v", want, merged)
	}
}

func TestNormalizeColor(t *testing.T) {
	cases := map[string]string{
		"blanco":         "Blanco",
		"Blanco roto":    "Blanco",
		"gris oscuro":    "Gris Antracita",
		"PLATA":          "Plata",
		"color madera":   "Imitación Madera",
		"negro mate":     "Negro",
		"verde esmeralda": "verde esmeralda",
	}
	for input, want := range cases {
		if got := NormalizeColor(input); got != want {
			t.Errorf("NormalizeColor(%q) = %q, want %q", input, got, want)
		}
	}
}
