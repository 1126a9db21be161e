package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/antonio-hus/Virtual-Reality/pkg/core"
	"github.com/antonio-hus/Virtual-Reality/pkg/material"
)

// Quadric represents a sphere/ellipsoid shape: the zero set of
// x²/rx² + y²/ry² + z²/rz² = 1 in its local frame, optionally rotated.
// Effective radii per axis are SemiAxes * RadiusScale; a sphere is the
// special case where all three are equal.
type Quadric struct {
	Center      core.Vec3
	SemiAxes    core.Vec3
	RadiusScale float64
	Rotation    mgl64.Quat // Unit quaternion, identity by default
	Material    material.Material
	Color       core.Color
}

// NewQuadric creates an axis-aligned quadric with identity rotation
func NewQuadric(center, semiAxes core.Vec3, radiusScale float64, mat material.Material, color core.Color) *Quadric {
	return &Quadric{
		Center:      center,
		SemiAxes:    semiAxes,
		RadiusScale: radiusScale,
		Rotation:    mgl64.QuatIdent(),
		Material:    mat,
		Color:       color,
	}
}

// NewSphere creates the equal-axes quadric
func NewSphere(center core.Vec3, radius float64, mat material.Material, color core.Color) *Quadric {
	return NewQuadric(center, core.NewVec3(1, 1, 1), radius, mat, color)
}

// WithRotation returns a copy of the quadric rotated by the given unit
// quaternion. The receiver is not modified, so shapes can be shared
// across concurrently rendered frames.
func (q *Quadric) WithRotation(rotation mgl64.Quat) *Quadric {
	rotated := *q
	rotated.Rotation = rotation
	return &rotated
}

// CastsShadow reports that quadrics occlude shadow rays
func (q *Quadric) CastsShadow() bool {
	return true
}

// Intersect solves the quadratic for the ray in the shape's local
// frame and returns the nearest root within [tMin, tMax].
func (q *Quadric) Intersect(ray core.Ray, tMin, tMax float64) (*Intersection, bool) {
	// Offset from center and direction, in the local frame when the
	// shape is rotated: apply the conjugate (inverse) rotation.
	o := ray.Origin.Subtract(q.Center)
	d := ray.Direction
	rotated := q.Rotation != mgl64.QuatIdent()
	if rotated {
		inverse := q.Rotation.Conjugate()
		o = rotateVec(inverse, o)
		d = rotateVec(inverse, d)
	}

	// Effective squared radii per axis
	radii := q.SemiAxes.Multiply(q.RadiusScale)
	rx2 := radii.X * radii.X
	ry2 := radii.Y * radii.Y
	rz2 := radii.Z * radii.Z

	// Quadratic coefficients: at² + bt + c = 0
	a := d.X*d.X/rx2 + d.Y*d.Y/ry2 + d.Z*d.Z/rz2
	b := 2 * (o.X*d.X/rx2 + o.Y*d.Y/ry2 + o.Z*d.Z/rz2)
	c := o.X*o.X/rx2 + o.Y*o.Y/ry2 + o.Z*o.Z/rz2 - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	// Near root first; fall back to the far root only when the near
	// one is in front of tMin. A root rejected on the upper bound is
	// never revisited.
	t := (-b - sqrtD) / (2 * a)
	if t < tMin {
		t = (-b + sqrtD) / (2 * a)
	}
	if t < tMin || t > tMax {
		return nil, false
	}

	// Normal is the gradient of the implicit surface at the local hit
	// point, rotated back to world space.
	local := o.Add(d.Multiply(t))
	normal := core.NewVec3(local.X/rx2, local.Y/ry2, local.Z/rz2).Normalize()
	if rotated {
		normal = rotateVec(q.Rotation, normal)
	}

	return &Intersection{
		T:        t,
		Point:    ray.At(t), // World-space position via the original ray
		Normal:   normal,
		Material: q.Material,
		Color:    q.Color,
		Shape:    q,
	}, true
}

// rotateVec applies a quaternion rotation to a core vector
func rotateVec(rotation mgl64.Quat, v core.Vec3) core.Vec3 {
	r := rotation.Rotate(mgl64.Vec3{v.X, v.Y, v.Z})
	return core.NewVec3(r.X(), r.Y(), r.Z())
}
