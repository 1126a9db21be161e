// Package scene assembles geometry, lights and camera, and answers the
// two ray queries rendering needs: nearest hit and shadow visibility.
package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/antonio-hus/Virtual-Reality/pkg/core"
	"github.com/antonio-hus/Virtual-Reality/pkg/geometry"
	"github.com/antonio-hus/Virtual-Reality/pkg/lights"
)

// shadowBias keeps shadow rays from re-hitting the surface they leave
// and from grazing the light itself.
const shadowBias = 1e-3

// Scene contains all the elements needed for rendering one frame. It
// is read-only during rendering; frames with rotated geometry use a
// snapshot copy instead of mutating shared shapes.
type Scene struct {
	Camera *geometry.Camera
	Shapes []geometry.Intersectable
	Lights []lights.Light
}

// FindNearest scans every shape and keeps the hit with the smallest
// ray parameter inside [tMin, tMax]. Ties go to the first shape found.
func (s *Scene) FindNearest(ray core.Ray, tMin, tMax float64) (*geometry.Intersection, bool) {
	var nearest *geometry.Intersection
	for _, shape := range s.Shapes {
		hit, ok := shape.Intersect(ray, tMin, tMax)
		if !ok {
			continue
		}
		if nearest == nil || hit.T < nearest.T {
			nearest = hit
		}
	}
	return nearest, nearest != nil
}

// IsLit casts a shadow ray from the point toward the light and reports
// whether the light is visible. A volume field as the nearest blocker
// does not occlude: volumetric media cast no hard shadows.
func (s *Scene) IsLit(point core.Vec3, light lights.Light) bool {
	toLight := light.Position.Subtract(point)
	distance := toLight.Length()

	ray := core.NewRay(point, toLight)
	hit, ok := s.FindNearest(ray, shadowBias, distance-shadowBias)
	if !ok {
		return true
	}
	return !hit.Shape.CastsShadow()
}

// RotatedSnapshot returns a copy of the scene whose quadrics carry the
// given rotation. Shapes are copied with the override, never mutated,
// so concurrent frames can share the base scene safely.
func (s *Scene) RotatedSnapshot(rotation mgl64.Quat) *Scene {
	shapes := make([]geometry.Intersectable, len(s.Shapes))
	for i, shape := range s.Shapes {
		if quadric, ok := shape.(*geometry.Quadric); ok {
			shapes[i] = quadric.WithRotation(rotation)
		} else {
			shapes[i] = shape
		}
	}
	return &Scene{Camera: s.Camera, Shapes: shapes, Lights: s.Lights}
}
