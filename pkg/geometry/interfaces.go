// Package geometry holds the intersectable scene objects: analytic
// quadrics and ray-marched volume fields.
package geometry

import (
	"github.com/antonio-hus/Virtual-Reality/pkg/core"
	"github.com/antonio-hus/Virtual-Reality/pkg/material"
)

// Intersection describes the nearest surface point a ray struck.
// Absence of a hit is expressed by the (nil, false) return of
// Intersect, never by a sentinel record.
type Intersection struct {
	T        float64           // Ray parameter of the hit, within the queried range
	Point    core.Vec3         // World-space hit position, ray.At(T)
	Normal   core.Vec3         // Unit surface normal at the hit
	Material material.Material // Surface material for shading
	Color    core.Color        // Surface (or composited) color at the hit
	Shape    Intersectable     // Geometry that produced the hit
}

// Intersectable is implemented by every geometry variant.
type Intersectable interface {
	// Intersect finds the nearest intersection with the ray whose
	// parameter lies in [tMin, tMax], or reports (nil, false).
	Intersect(ray core.Ray, tMin, tMax float64) (*Intersection, bool)

	// CastsShadow reports whether the geometry occludes shadow rays.
	// Volumetric media never cast hard shadows.
	CastsShadow() bool
}
