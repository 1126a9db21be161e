package renderer

import (
	"math"

	"github.com/antonio-hus/Virtual-Reality/pkg/core"
	"github.com/antonio-hus/Virtual-Reality/pkg/geometry"
	"github.com/antonio-hus/Virtual-Reality/pkg/scene"
)

// Shade accumulates the Phong lighting terms at a hit point over every
// light in the scene. The ambient term is always added; diffuse and
// specular require the surface to face the light and the light to be
// unoccluded. The sum is not clamped here: the canvas clamps on write.
func Shade(s *scene.Scene, hit *geometry.Intersection, cameraPosition core.Vec3) core.Color {
	var color core.Color
	for _, light := range s.Lights {
		color = color.Add(hit.Material.Ambient.Modulate(light.Ambient))

		lightDir := light.Position.Subtract(hit.Point).Normalize()
		nDotL := hit.Normal.Dot(lightDir)
		if nDotL <= 0 || !s.IsLit(hit.Point, light) {
			continue
		}

		color = color.Add(hit.Material.Diffuse.Modulate(light.Diffuse).Scale(nDotL))

		reflection := hit.Normal.Multiply(2 * nDotL).Subtract(lightDir).Normalize()
		viewDir := cameraPosition.Subtract(hit.Point).Normalize()
		specDot := math.Max(0, reflection.Dot(viewDir))
		specular := math.Pow(specDot, float64(hit.Material.Shininess))
		color = color.Add(hit.Material.Specular.Modulate(light.Specular).Scale(specular))
	}
	return color
}
