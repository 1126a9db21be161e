package renderer

import (
	"math"
	"testing"

	"github.com/antonio-hus/Virtual-Reality/pkg/core"
	"github.com/antonio-hus/Virtual-Reality/pkg/geometry"
	"github.com/antonio-hus/Virtual-Reality/pkg/lights"
	"github.com/antonio-hus/Virtual-Reality/pkg/material"
	"github.com/antonio-hus/Virtual-Reality/pkg/scene"
)

func shadingMaterial() material.Material {
	return material.NewMaterial(
		core.NewColor(0.1, 0.1, 0.1),
		core.NewColor(0.6, 0.6, 0.6),
		core.NewColor(0.3, 0.3, 0.3),
		50,
	)
}

// headOnHit is a surface point at (0,0,5) facing a camera and light at
// the origin: nDotL = 1 and the reflection lines up with the view, so
// every Phong term contributes fully.
func headOnHit() *geometry.Intersection {
	return &geometry.Intersection{
		T:        5,
		Point:    core.NewVec3(0, 0, 5),
		Normal:   core.NewVec3(0, 0, -1),
		Material: shadingMaterial(),
	}
}

func TestShade_AllTermsHeadOn(t *testing.T) {
	s := &scene.Scene{Lights: []lights.Light{lights.NewWhiteLight(core.NewVec3(0, 0, 0), 1)}}
	cameraPosition := core.NewVec3(0, 0, 0)

	color := Shade(s, headOnHit(), cameraPosition)

	// ambient 0.1 + diffuse 0.6*1 + specular 0.3*1^50
	expected := 1.0
	if math.Abs(color.R-expected) > 1e-9 {
		t.Errorf("Expected %f, got %f", expected, color.R)
	}
}

func TestShade_SurfaceFacingAwayGetsAmbientOnly(t *testing.T) {
	s := &scene.Scene{Lights: []lights.Light{lights.NewWhiteLight(core.NewVec3(0, 0, 0), 1)}}
	hit := headOnHit()
	hit.Normal = core.NewVec3(0, 0, 1) // Away from the light

	color := Shade(s, hit, core.NewVec3(0, 0, 0))
	if math.Abs(color.R-0.1) > 1e-9 {
		t.Errorf("Expected ambient-only 0.1, got %f", color.R)
	}
}

func TestShade_ShadowedPointGetsAmbientOnly(t *testing.T) {
	blocker := geometry.NewSphere(core.NewVec3(0, 0, 2.5), 0.5, shadingMaterial(), core.NewColor(1, 1, 1))
	s := &scene.Scene{
		Shapes: []geometry.Intersectable{blocker},
		Lights: []lights.Light{lights.NewWhiteLight(core.NewVec3(0, 0, 0), 1)},
	}

	color := Shade(s, headOnHit(), core.NewVec3(0, 0, 0))
	if math.Abs(color.R-0.1) > 1e-9 {
		t.Errorf("Expected ambient-only 0.1 in shadow, got %f", color.R)
	}
}

func TestShade_VolumeBlockerDoesNotShadow(t *testing.T) {
	samples := make([]uint8, 4*4*4)
	for i := range samples {
		samples[i] = 255
	}
	colorMap := material.NewColorMap(material.ColorRange{Low: 1, High: 255, Color: core.NewColorA(1, 1, 1, 1)})
	volume, err := geometry.NewVolumeField(core.NewVec3(-2, -2, 1), core.NewVec3(1, 1, 1), [3]int{4, 4, 4}, 1, samples, colorMap)
	if err != nil {
		t.Fatalf("NewVolumeField failed: %v", err)
	}

	s := &scene.Scene{
		Shapes: []geometry.Intersectable{volume},
		Lights: []lights.Light{lights.NewWhiteLight(core.NewVec3(0, 0, 0), 1)},
	}

	color := Shade(s, headOnHit(), core.NewVec3(0, 0, 0))
	if math.Abs(color.R-1.0) > 1e-9 {
		t.Errorf("Expected full lighting through volume, got %f", color.R)
	}
}

func TestShade_SumsOverLights(t *testing.T) {
	s := &scene.Scene{Lights: []lights.Light{
		lights.NewWhiteLight(core.NewVec3(0, 0, 0), 0.5),
		lights.NewWhiteLight(core.NewVec3(0, 0, 0), 0.5),
	}}

	color := Shade(s, headOnHit(), core.NewVec3(0, 0, 0))

	// Each light contributes 0.5*(0.1+0.6+0.3)
	if math.Abs(color.R-1.0) > 1e-9 {
		t.Errorf("Expected summed contribution 1.0, got %f", color.R)
	}
}

func TestShade_NoLightsIsBlack(t *testing.T) {
	s := &scene.Scene{}
	color := Shade(s, headOnHit(), core.NewVec3(0, 0, 0))
	if color.R != 0 || color.G != 0 || color.B != 0 {
		t.Errorf("Expected black, got %v", color)
	}
}
