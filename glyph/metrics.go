package glyph

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Metrics are the layout constants measured against one specific mask
// asset. They live in a TOML sidecar next to the mask and must be
// re-derived by hand whenever the asset changes; nothing here is
// computed from the image at runtime.
type Metrics struct {
	// Glyph box as fractions of the icon side.
	LogoWidthFrac  float64 `toml:"logo_width_frac"`
	LogoHeightFrac float64 `toml:"logo_height_frac"`

	// Crossbar geometry in glyph space: the thin horizontal stroke
	// through both f's.
	CrossbarYFrac     float64 `toml:"crossbar_y_frac"`
	CrossbarX0Frac    float64 `toml:"crossbar_x0_frac"`
	CrossbarX1Frac    float64 `toml:"crossbar_x1_frac"`
	CrossbarThickness int     `toml:"crossbar_src_thickness"`
	CrossbarSrcHeight int     `toml:"crossbar_src_height"`
}

// LoadMetrics reads the sidecar from path. A missing or malformed
// sidecar aborts the run the same way a missing mask does.
func LoadMetrics(path string) (Metrics, error) {
	var m Metrics
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return Metrics{}, fmt.Errorf("load glyph metrics: %w", err)
	}
	if err := m.validate(); err != nil {
		return Metrics{}, fmt.Errorf("glyph metrics %s: %w", path, err)
	}
	return m, nil
}

func (m Metrics) validate() error {
	fracs := map[string]float64{
		"logo_width_frac":  m.LogoWidthFrac,
		"logo_height_frac": m.LogoHeightFrac,
		"crossbar_y_frac":  m.CrossbarYFrac,
		"crossbar_x0_frac": m.CrossbarX0Frac,
		"crossbar_x1_frac": m.CrossbarX1Frac,
	}
	for name, f := range fracs {
		if f <= 0 || f > 1 {
			return fmt.Errorf("%s = %v, want a fraction in (0, 1]", name, f)
		}
	}
	if m.CrossbarX0Frac >= m.CrossbarX1Frac {
		return fmt.Errorf("crossbar_x0_frac %v >= crossbar_x1_frac %v", m.CrossbarX0Frac, m.CrossbarX1Frac)
	}
	if m.CrossbarThickness <= 0 || m.CrossbarSrcHeight <= 0 {
		return fmt.Errorf("crossbar source dimensions must be positive, got thickness %d height %d",
			m.CrossbarThickness, m.CrossbarSrcHeight)
	}
	return nil
}

// NaturalCrossbarPx returns the thickness, in output pixels, that the
// crossbar stroke would measure when the glyph is rendered glyphH
// pixels tall.
func (m Metrics) NaturalCrossbarPx(glyphH int) float64 {
	return float64(glyphH) * float64(m.CrossbarThickness) / float64(m.CrossbarSrcHeight)
}
