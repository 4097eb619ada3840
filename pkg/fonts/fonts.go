// Package fonts provides the font families and approximate glyph metrics
// used for SVG text layout.
//
// Swarmplot does not parse font files; labels are measured with per-family
// average glyph ratios, which is accurate enough for tick labels and titles
// and keeps the binary free of embedded font data.
package fonts

// Families referenced by the default chart styles.
const (
	FamilySans  = "Helvetica"
	FamilySerif = "Times New Roman"
	FamilyMono  = "Courier New"
)

// FallbackSans lists CSS fallbacks emitted alongside FamilySans.
const FallbackSans = `Helvetica, Arial, sans-serif`

// Metrics holds the average glyph proportions of a family relative to the
// font size.
type Metrics struct {
	CharWidth float64 // mean advance width / font size
	Ascent    float64 // baseline to cap top / font size
	Descent   float64 // baseline to lowest descender / font size
}

var metricsByFamily = map[string]Metrics{
	FamilySans:  {CharWidth: 0.55, Ascent: 0.72, Descent: 0.21},
	FamilySerif: {CharWidth: 0.50, Ascent: 0.70, Descent: 0.22},
	FamilyMono:  {CharWidth: 0.60, Ascent: 0.74, Descent: 0.23},
}

// MetricsFor returns the metrics for a family, falling back to the sans
// metrics for unknown families.
func MetricsFor(family string) Metrics {
	if m, ok := metricsByFamily[family]; ok {
		return m
	}
	return metricsByFamily[FamilySans]
}

// Measure estimates the width and height of text at the given size.
func Measure(family, text string, size float64) (w, h float64) {
	m := MetricsFor(family)
	return float64(len([]rune(text))) * m.CharWidth * size, (m.Ascent + m.Descent) * size
}
