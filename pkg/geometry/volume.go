package geometry

import (
	"fmt"
	"math"

	"github.com/antonio-hus/Virtual-Reality/pkg/core"
	"github.com/antonio-hus/Virtual-Reality/pkg/material"
)

// VolumeField is a regular grid of sampled density values (a CT-style
// scan) rendered by marching rays through it and compositing the color
// map output front to back. Density is stored as one byte per voxel in
// row-major order, X fastest-varying and Z slowest.
type VolumeField struct {
	Origin     core.Vec3 // Minimum corner of the grid in world space
	Spacing    core.Vec3 // Physical spacing between voxels per axis
	Resolution [3]int    // Voxel counts per axis
	Scale      float64   // Uniform world-space scale applied to the grid
	Density    []uint8
	ColorMap   *material.ColorMap

	bounds core.AABB
}

// NewVolumeField creates a volume field and validates that the density
// slice holds exactly one byte per voxel.
func NewVolumeField(origin, spacing core.Vec3, resolution [3]int, scale float64, density []uint8, colorMap *material.ColorMap) (*VolumeField, error) {
	voxels := resolution[0] * resolution[1] * resolution[2]
	if len(density) != voxels {
		return nil, fmt.Errorf("volume density has %d samples, resolution %dx%dx%d needs %d",
			len(density), resolution[0], resolution[1], resolution[2], voxels)
	}

	extent := core.NewVec3(
		float64(resolution[0])*spacing.X,
		float64(resolution[1])*spacing.Y,
		float64(resolution[2])*spacing.Z,
	).Multiply(scale)

	return &VolumeField{
		Origin:     origin,
		Spacing:    spacing,
		Resolution: resolution,
		Scale:      scale,
		Density:    density,
		ColorMap:   colorMap,
		bounds:     core.NewAABB(origin, origin.Add(extent)),
	}, nil
}

// Bounds returns the world-space bounding box of the grid
func (v *VolumeField) Bounds() core.AABB {
	return v.bounds
}

// CastsShadow reports that volumetric media never cast hard shadows
func (v *VolumeField) CastsShadow() bool {
	return false
}

// DensityAt returns the density of a voxel by index. Lookups outside
// the grid return 0: there is no material beyond the scanned volume.
func (v *VolumeField) DensityAt(ix, iy, iz int) uint8 {
	if ix < 0 || ix >= v.Resolution[0] ||
		iy < 0 || iy >= v.Resolution[1] ||
		iz < 0 || iz >= v.Resolution[2] {
		return 0
	}
	return v.Density[ix+iy*v.Resolution[0]+iz*v.Resolution[0]*v.Resolution[1]]
}

// voxelAt maps a world position to the indices of the voxel containing it
func (v *VolumeField) voxelAt(pos core.Vec3) (int, int, int) {
	rel := pos.Subtract(v.Origin)
	return int(math.Floor(rel.X / (v.Spacing.X * v.Scale))),
		int(math.Floor(rel.Y / (v.Spacing.Y * v.Scale))),
		int(math.Floor(rel.Z / (v.Spacing.Z * v.Scale)))
}

// Intersect marches the ray through the grid and composites the color
// map samples front to back. The returned intersection carries the
// composited color, the position of the first non-transparent sample,
// and a material derived from the composited color.
func (v *VolumeField) Intersect(ray core.Ray, tMin, tMax float64) (*Intersection, bool) {
	tEnter, tExit, ok := v.bounds.HitRange(ray, tMin, tMax)
	if !ok {
		return nil, false
	}

	// Half-voxel steps; start just inside the entry point to avoid
	// sampling exactly on the boundary.
	minSpacing := math.Min(v.Spacing.X, math.Min(v.Spacing.Y, v.Spacing.Z))
	step := 0.5 * minSpacing * v.Scale
	t := tEnter + 0.05*step

	var accumulated core.Color
	accumulatedAlpha := 0.0
	firstT := -1.0
	var firstVoxel [3]int

	for t <= tExit && accumulatedAlpha < 1 {
		ix, iy, iz := v.voxelAt(ray.At(t))
		sample := v.ColorMap.Lookup(v.DensityAt(ix, iy, iz))
		if sample.A > 0 {
			if firstT < 0 {
				firstT = t
				firstVoxel = [3]int{ix, iy, iz}
			}
			// Weight each new sample by the remaining unoccluded opacity
			weight := sample.A * (1 - accumulatedAlpha)
			accumulated = accumulated.Add(sample.Scale(weight))
			accumulatedAlpha += weight
		}
		t += step
	}

	if accumulatedAlpha <= 0 {
		return nil, false
	}

	composited := core.NewColorA(accumulated.R, accumulated.G, accumulated.B, accumulatedAlpha)
	return &Intersection{
		T:        firstT,
		Point:    ray.At(firstT),
		Normal:   v.gradientNormal(firstVoxel[0], firstVoxel[1], firstVoxel[2]),
		Material: material.FromColor(composited),
		Color:    composited,
		Shape:    v,
	}, true
}

// gradientNormal estimates the surface normal at a voxel by central
// differences of the density along each axis.
func (v *VolumeField) gradientNormal(ix, iy, iz int) core.Vec3 {
	return core.NewVec3(
		float64(v.DensityAt(ix+1, iy, iz))-float64(v.DensityAt(ix-1, iy, iz)),
		float64(v.DensityAt(ix, iy+1, iz))-float64(v.DensityAt(ix, iy-1, iz)),
		float64(v.DensityAt(ix, iy, iz+1))-float64(v.DensityAt(ix, iy, iz-1)),
	).Normalize()
}
