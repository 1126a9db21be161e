package geometry

import (
	"math"
	"testing"

	"github.com/antonio-hus/Virtual-Reality/pkg/core"
	"github.com/antonio-hus/Virtual-Reality/pkg/material"
)

// uniformField builds a 4x4x4 grid filled with one density value
func uniformField(t *testing.T, density uint8, colorMap *material.ColorMap) *VolumeField {
	t.Helper()
	samples := make([]uint8, 4*4*4)
	for i := range samples {
		samples[i] = density
	}
	field, err := NewVolumeField(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), [3]int{4, 4, 4}, 1, samples, colorMap)
	if err != nil {
		t.Fatalf("NewVolumeField failed: %v", err)
	}
	return field
}

func TestNewVolumeField_DensityLengthMustMatchResolution(t *testing.T) {
	_, err := NewVolumeField(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), [3]int{4, 4, 4}, 1, make([]uint8, 63), nil)
	if err == nil {
		t.Error("Expected error for short density slice, got none")
	}
}

func TestVolumeField_Bounds(t *testing.T) {
	field := uniformField(t, 0, material.NewColorMap())
	bounds := field.Bounds()

	if bounds.Min != core.NewVec3(0, 0, 0) || bounds.Max != core.NewVec3(4, 4, 4) {
		t.Errorf("Expected bounds [0,4]^3, got %v..%v", bounds.Min, bounds.Max)
	}
}

func TestVolumeField_DensityAt_OutOfRangeIsEmpty(t *testing.T) {
	field := uniformField(t, 200, material.NewColorMap())

	tests := []struct {
		name       string
		ix, iy, iz int
	}{
		{"negative x", -1, 0, 0},
		{"beyond y", 0, 4, 0},
		{"beyond z", 0, 0, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := field.DensityAt(tt.ix, tt.iy, tt.iz); got != 0 {
				t.Errorf("Expected density 0 outside the grid, got %d", got)
			}
		})
	}

	if got := field.DensityAt(2, 2, 2); got != 200 {
		t.Errorf("Expected density 200 inside the grid, got %d", got)
	}
}

func TestVolumeField_Intersect_MissesOutsideBounds(t *testing.T) {
	opaque := material.NewColorMap(material.ColorRange{Low: 1, High: 255, Color: core.NewColorA(1, 0, 0, 1)})
	field := uniformField(t, 255, opaque)

	ray := core.NewRay(core.NewVec3(10, 10, -1), core.NewVec3(0, 0, 1))
	if hit, ok := field.Intersect(ray, 0.001, 1000); ok {
		t.Errorf("Expected miss outside the bounding box, got hit at t=%f", hit.T)
	}
}

func TestVolumeField_Intersect_EmptyGridIsNoHit(t *testing.T) {
	colorMap := material.NewColorMap(material.ColorRange{Low: 1, High: 255, Color: core.NewColorA(1, 0, 0, 1)})
	field := uniformField(t, 0, colorMap)

	ray := core.NewRay(core.NewVec3(2, 2, -1), core.NewVec3(0, 0, 1))
	if hit, ok := field.Intersect(ray, 0.001, 1000); ok {
		t.Errorf("Expected no hit through empty density, got hit at t=%f", hit.T)
	}
}

func TestVolumeField_Intersect_OpaqueFirstSample(t *testing.T) {
	// With a fully opaque first sample the composited color is exactly
	// the sample color and opacity saturates at 1.
	sample := core.NewColorA(0.9, 0.2, 0.1, 1)
	colorMap := material.NewColorMap(material.ColorRange{Low: 1, High: 255, Color: sample})
	field := uniformField(t, 128, colorMap)

	ray := core.NewRay(core.NewVec3(2, 2, -1), core.NewVec3(0, 0, 1))
	hit, ok := field.Intersect(ray, 0.001, 1000)
	if !ok {
		t.Fatal("Expected hit, got miss")
	}

	tolerance := 1e-9
	if math.Abs(hit.Color.R-sample.R) > tolerance ||
		math.Abs(hit.Color.G-sample.G) > tolerance ||
		math.Abs(hit.Color.B-sample.B) > tolerance {
		t.Errorf("Expected composited color %v, got %v", sample, hit.Color)
	}
	if math.Abs(hit.Color.A-1) > tolerance {
		t.Errorf("Expected saturated opacity 1, got %f", hit.Color.A)
	}

	// The hit parameter is the first marched sample just inside the
	// entry point: tEnter + 0.05*step with step = 0.5*minSpacing*scale
	expectedT := 1.0 + 0.05*0.5
	if math.Abs(hit.T-expectedT) > 1e-9 {
		t.Errorf("Expected first-sample t=%f, got t=%f", expectedT, hit.T)
	}
}

func TestVolumeField_Intersect_CompositesFrontToBack(t *testing.T) {
	// Two half-transparent red samples in front of everything give
	// 0.5 + 0.5*0.5 = 0.75 accumulated opacity at minimum.
	sample := core.NewColorA(1, 0, 0, 0.5)
	colorMap := material.NewColorMap(material.ColorRange{Low: 1, High: 255, Color: sample})
	field := uniformField(t, 100, colorMap)

	ray := core.NewRay(core.NewVec3(2, 2, -1), core.NewVec3(0, 0, 1))
	hit, ok := field.Intersect(ray, 0.001, 1000)
	if !ok {
		t.Fatal("Expected hit, got miss")
	}

	if hit.Color.A < 0.75 || hit.Color.A > 1 {
		t.Errorf("Expected accumulated opacity in [0.75,1], got %f", hit.Color.A)
	}
	// Front-to-back weighting keeps red dominant and green/blue zero
	if hit.Color.G != 0 || hit.Color.B != 0 {
		t.Errorf("Expected pure red accumulation, got %v", hit.Color)
	}
	if hit.Color.R <= 0 || hit.Color.R > 1 {
		t.Errorf("Expected red in (0,1], got %f", hit.Color.R)
	}
}

func TestVolumeField_Intersect_DerivedMaterialRatios(t *testing.T) {
	sample := core.NewColorA(1, 0.5, 0, 1)
	colorMap := material.NewColorMap(material.ColorRange{Low: 1, High: 255, Color: sample})
	field := uniformField(t, 50, colorMap)

	ray := core.NewRay(core.NewVec3(2, 2, -1), core.NewVec3(0, 0, 1))
	hit, ok := field.Intersect(ray, 0.001, 1000)
	if !ok {
		t.Fatal("Expected hit, got miss")
	}

	tolerance := 1e-9
	if math.Abs(hit.Material.Ambient.R-0.1) > tolerance ||
		math.Abs(hit.Material.Diffuse.R-0.3) > tolerance ||
		math.Abs(hit.Material.Specular.R-0.5) > tolerance {
		t.Errorf("Expected 10%%/30%%/50%% material fractions, got %+v", hit.Material)
	}
	if hit.Material.Shininess != 100 {
		t.Errorf("Expected shininess 100, got %d", hit.Material.Shininess)
	}
}

func TestVolumeField_Intersect_GradientNormalIsUnit(t *testing.T) {
	// A density step along Z produces a Z-aligned gradient normal
	samples := make([]uint8, 4*4*4)
	for z := 2; z < 4; z++ {
		for y := 0; y < 4; y++ {
			for x := 0; x < 4; x++ {
				samples[x+y*4+z*16] = 255
			}
		}
	}
	colorMap := material.NewColorMap(material.ColorRange{Low: 200, High: 255, Color: core.NewColorA(1, 1, 1, 1)})
	field, err := NewVolumeField(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), [3]int{4, 4, 4}, 1, samples, colorMap)
	if err != nil {
		t.Fatalf("NewVolumeField failed: %v", err)
	}

	ray := core.NewRay(core.NewVec3(2, 2, -1), core.NewVec3(0, 0, 1))
	hit, ok := field.Intersect(ray, 0.001, 1000)
	if !ok {
		t.Fatal("Expected hit, got miss")
	}
	if math.Abs(hit.Normal.Length()-1) > 1e-9 {
		t.Errorf("Expected unit normal, got length %f", hit.Normal.Length())
	}
	if hit.Normal.X != 0 || hit.Normal.Y != 0 {
		t.Errorf("Expected Z-aligned normal, got %v", hit.Normal)
	}
}

func TestVolumeField_CastsShadow(t *testing.T) {
	field := uniformField(t, 255, material.NewColorMap())
	if field.CastsShadow() {
		t.Error("Expected volume fields to cast no hard shadows")
	}
}
