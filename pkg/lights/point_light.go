// Package lights holds the light sources the shading model consumes.
package lights

import "github.com/antonio-hus/Virtual-Reality/pkg/core"

// Light is a point light emitting uniformly in all directions, with
// one color per Phong term.
type Light struct {
	Position core.Vec3
	Ambient  core.Color
	Diffuse  core.Color
	Specular core.Color
}

// NewLight creates a point light
func NewLight(position core.Vec3, ambient, diffuse, specular core.Color) Light {
	return Light{
		Position: position,
		Ambient:  ambient,
		Diffuse:  diffuse,
		Specular: specular,
	}
}

// NewWhiteLight creates a point light with equal white terms of the
// given intensity.
func NewWhiteLight(position core.Vec3, intensity float64) Light {
	white := core.NewColor(intensity, intensity, intensity)
	return NewLight(position, white, white, white)
}
