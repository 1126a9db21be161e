package scene

import (
	"github.com/antonio-hus/Virtual-Reality/pkg/core"
	"github.com/antonio-hus/Virtual-Reality/pkg/geometry"
	"github.com/antonio-hus/Virtual-Reality/pkg/lights"
	"github.com/antonio-hus/Virtual-Reality/pkg/material"
)

// NewDefaultScene creates the default scene: a shiny red sphere, a
// rotated-per-frame green ellipsoid, a large ground sphere, and two
// point lights.
func NewDefaultScene() *Scene {
	camera := geometry.NewCamera(geometry.CameraConfig{
		Position:           core.NewVec3(0, 0, 0),
		Direction:          core.NewVec3(0, 0, 1),
		Up:                 core.NewVec3(0, 1, 0),
		ViewPlaneDistance:  2,
		ViewPlaneWidth:     4,
		ViewPlaneHeight:    3,
		FrontPlaneDistance: 0.5,
		BackPlaneDistance:  1000,
	})

	red := material.NewMaterial(
		core.NewColor(0.2, 0.02, 0.02),
		core.NewColor(0.7, 0.1, 0.1),
		core.NewColor(0.9, 0.9, 0.9),
		120,
	)
	green := material.NewMaterial(
		core.NewColor(0.02, 0.2, 0.02),
		core.NewColor(0.1, 0.7, 0.1),
		core.NewColor(0.4, 0.4, 0.4),
		30,
	)
	ground := material.NewMaterial(
		core.NewColor(0.1, 0.1, 0.12),
		core.NewColor(0.5, 0.5, 0.55),
		core.NewColor(0.1, 0.1, 0.1),
		5,
	)

	shapes := []geometry.Intersectable{
		geometry.NewSphere(core.NewVec3(-0.8, 0, 7), 1, red, core.NewColor(1, 0.2, 0.2)),
		geometry.NewQuadric(core.NewVec3(1.8, 0.4, 8), core.NewVec3(1.5, 0.75, 1), 1, green, core.NewColor(0.2, 1, 0.2)),
		geometry.NewSphere(core.NewVec3(0, -5001, 0), 5000, ground, core.NewColor(0.6, 0.6, 0.65)),
	}

	sceneLights := []lights.Light{
		lights.NewWhiteLight(core.NewVec3(-4, 5, 0), 0.8),
		lights.NewLight(
			core.NewVec3(5, 3, 2),
			core.NewColor(0.1, 0.1, 0.1),
			core.NewColor(0.4, 0.4, 0.5),
			core.NewColor(0.5, 0.5, 0.5),
		),
	}

	return &Scene{Camera: camera, Shapes: shapes, Lights: sceneLights}
}
