package core

// Color represents an RGBA color with floating point components.
// Components are not clamped: shading accumulates freely above 1.0 and
// the output sink clamps at conversion time.
type Color struct {
	R, G, B, A float64
}

// NewColor creates an opaque color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// NewColorA creates a color with an explicit alpha component
func NewColorA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Transparent is the fully transparent sentinel returned by color map
// lookups that match no range.
var Transparent = Color{}

// Add returns the component-wise sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B, c.A + other.A}
}

// Scale returns the color with all components multiplied by a scalar
func (c Color) Scale(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s, c.A * s}
}

// Modulate returns the component-wise product of two colors
func (c Color) Modulate(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B, c.A * other.A}
}

// Clamp returns the color with RGB components clamped to [0,1] and
// alpha forced opaque. Only the output sink calls this.
func (c Color) Clamp() Color {
	return Color{
		R: clamp01(c.R),
		G: clamp01(c.G),
		B: clamp01(c.B),
		A: 1,
	}
}

func clamp01(v float64) float64 {
	return max(0, min(1, v))
}
