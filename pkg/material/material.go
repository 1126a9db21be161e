// Package material holds the Phong surface description and the density
// color map used by volumetric geometry.
package material

import "github.com/antonio-hus/Virtual-Reality/pkg/core"

// Material describes a Phong surface: one reflectance color per
// lighting term plus a specular exponent.
type Material struct {
	Ambient   core.Color
	Diffuse   core.Color
	Specular  core.Color
	Shininess int
}

// NewMaterial creates a material from its three term colors and exponent
func NewMaterial(ambient, diffuse, specular core.Color, shininess int) Material {
	return Material{
		Ambient:   ambient,
		Diffuse:   diffuse,
		Specular:  specular,
		Shininess: shininess,
	}
}

// FromColor derives a material for a composited volume sample: fixed
// 10%/30%/50% ambient/diffuse/specular fractions of the color with a
// shininess of 100.
func FromColor(c core.Color) Material {
	return Material{
		Ambient:   c.Scale(0.10),
		Diffuse:   c.Scale(0.30),
		Specular:  c.Scale(0.50),
		Shininess: 100,
	}
}
