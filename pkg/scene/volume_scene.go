package scene

import (
	"math"

	"github.com/antonio-hus/Virtual-Reality/pkg/core"
	"github.com/antonio-hus/Virtual-Reality/pkg/geometry"
	"github.com/antonio-hus/Virtual-Reality/pkg/lights"
	"github.com/antonio-hus/Virtual-Reality/pkg/loaders"
	"github.com/antonio-hus/Virtual-Reality/pkg/material"
)

// NewScanColorMap builds the color map used for scanned density data:
// dense tissue renders opaque white, medium densities translucent red,
// and faint densities as a thin orange haze.
func NewScanColorMap() *material.ColorMap {
	return material.NewColorMap(
		material.ColorRange{Low: 180, High: 255, Color: core.NewColorA(0.95, 0.95, 0.9, 0.9)},
		material.ColorRange{Low: 90, High: 179, Color: core.NewColorA(0.8, 0.15, 0.1, 0.35)},
		material.ColorRange{Low: 25, High: 89, Color: core.NewColorA(0.9, 0.5, 0.2, 0.04)},
	)
}

// NewVolumeScene creates a scene around a synthetic density blob so
// the volumetric path renders without external data files.
func NewVolumeScene() *Scene {
	const resolution = 64
	field, err := geometry.NewVolumeField(
		core.NewVec3(-1.6, -1.6, 5),
		core.NewVec3(1, 1, 1),
		[3]int{resolution, resolution, resolution},
		0.05,
		SyntheticDensity(resolution),
		NewScanColorMap(),
	)
	if err != nil {
		// The synthetic density length is correct by construction
		panic(err)
	}
	return newVolumeScene(field)
}

// NewVolumeSceneFromFiles creates a volume scene from a dataset on
// disk: a metadata file and a raw density file.
func NewVolumeSceneFromFiles(metaPath, rawPath string) (*Scene, error) {
	field, err := loaders.LoadVolumeField(metaPath, rawPath, core.NewVec3(-1.6, -1.6, 5), 0.05, NewScanColorMap())
	if err != nil {
		return nil, err
	}
	return newVolumeScene(field), nil
}

func newVolumeScene(field *geometry.VolumeField) *Scene {
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

	sceneLights := []lights.Light{
		lights.NewWhiteLight(core.NewVec3(-3, 4, 1), 0.9),
		lights.NewWhiteLight(core.NewVec3(4, 1, 3), 0.4),
	}

	return &Scene{
		Camera: camera,
		Shapes: []geometry.Intersectable{field},
		Lights: sceneLights,
	}
}

// SyntheticDensity fills a cubic grid with a radial blob: density
// falls off linearly from the grid center, with a denser core.
func SyntheticDensity(resolution int) []uint8 {
	density := make([]uint8, resolution*resolution*resolution)
	center := float64(resolution-1) / 2
	maxRadius := float64(resolution) * 0.45

	i := 0
	for z := 0; z < resolution; z++ {
		for y := 0; y < resolution; y++ {
			for x := 0; x < resolution; x++ {
				dx := float64(x) - center
				dy := float64(y) - center
				dz := float64(z) - center
				r := math.Sqrt(dx*dx + dy*dy + dz*dz)
				if r < maxRadius {
					falloff := 1 - r/maxRadius
					density[i] = uint8(255 * falloff)
				}
				i++
			}
		}
	}
	return density
}
