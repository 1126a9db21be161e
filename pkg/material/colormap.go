package material

import "github.com/antonio-hus/Virtual-Reality/pkg/core"

// ColorRange maps a closed density interval [Low, High] to a color.
// The color's alpha is the opacity contributed by one marched sample.
type ColorRange struct {
	Low   uint8
	High  uint8
	Color core.Color
}

// ColorMap is an ordered piecewise density lookup table. Lookup is a
// first-match linear scan over the ranges, so earlier entries win when
// intervals overlap.
type ColorMap struct {
	ranges []ColorRange
}

// NewColorMap creates a color map from its ranges, kept in the order given
func NewColorMap(ranges ...ColorRange) *ColorMap {
	return &ColorMap{ranges: ranges}
}

// Add appends a range to the end of the map
func (m *ColorMap) Add(low, high uint8, color core.Color) {
	m.ranges = append(m.ranges, ColorRange{Low: low, High: high, Color: color})
}

// Lookup returns the color of the first range containing the density,
// or the fully transparent sentinel when no range matches.
func (m *ColorMap) Lookup(density uint8) core.Color {
	for _, r := range m.ranges {
		if density >= r.Low && density <= r.High {
			return r.Color
		}
	}
	return core.Transparent
}
