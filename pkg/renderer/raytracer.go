package renderer

import (
	"github.com/antonio-hus/Virtual-Reality/pkg/core"
	"github.com/antonio-hus/Virtual-Reality/pkg/scene"
)

// Raytracer renders one frame of a scene: one primary ray per pixel,
// nearest-hit search, Phong shading, pixels written in scan order.
type Raytracer struct {
	scene  *scene.Scene
	logger core.Logger
}

// NewRaytracer creates a raytracer for a scene. The logger may be nil.
func NewRaytracer(s *scene.Scene, logger core.Logger) *Raytracer {
	return &Raytracer{scene: s, logger: logger}
}

// Render traces every pixel of the canvas. Pixels outside any geometry
// keep the black background.
func (rt *Raytracer) Render(canvas *Canvas) {
	camera := rt.scene.Camera
	width, height := canvas.Width(), canvas.Height()

	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			ray := camera.GenerateRay(i, j, width, height)

			var color core.Color
			if hit, ok := rt.scene.FindNearest(ray, camera.FrontPlaneDistance, camera.BackPlaneDistance); ok {
				color = Shade(rt.scene, hit, camera.Position)
			}
			canvas.SetPixel(i, j, color)
		}
	}

	if rt.logger != nil {
		rt.logger.Printf("rendered %dx%d frame with %d shapes, %d lights",
			width, height, len(rt.scene.Shapes), len(rt.scene.Lights))
	}
}
