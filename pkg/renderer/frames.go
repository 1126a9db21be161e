package renderer

import (
	"fmt"
	"math"
	"path/filepath"
	"runtime"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/sync/errgroup"

	"github.com/antonio-hus/Virtual-Reality/pkg/core"
	"github.com/antonio-hus/Virtual-Reality/pkg/scene"
)

// FrameConfig configures a multi-frame render
type FrameConfig struct {
	Width, Height int
	Frames        int       // Number of frames; one full geometry revolution is spread across them
	Workers       int       // Max frames rendered concurrently; <= 0 means NumCPU
	RotationAxis  core.Vec3 // Axis the quadrics spin around
	OutputDir     string
	Logger        core.Logger
}

// RenderFrames renders every frame of an animation. Frames are
// independent units of work: each one owns a rotated geometry snapshot
// and its own canvas, so they run concurrently with no locking and no
// ordering requirement. All frames are joined before returning.
func RenderFrames(baseScene *scene.Scene, config FrameConfig) error {
	workers := config.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	axis := config.RotationAxis
	if axis.Length() == 0 {
		axis = core.NewVec3(0, 1, 0)
	}
	axis = axis.Normalize()

	var group errgroup.Group
	group.SetLimit(workers)

	for frame := 0; frame < config.Frames; frame++ {
		frame := frame
		group.Go(func() error {
			frameScene := baseScene
			if config.Frames > 1 {
				angle := 2 * math.Pi * float64(frame) / float64(config.Frames)
				rotation := mgl64.QuatRotate(angle, mgl64.Vec3{axis.X, axis.Y, axis.Z})
				frameScene = baseScene.RotatedSnapshot(rotation)
			}

			canvas := NewCanvas(config.Width, config.Height)
			NewRaytracer(frameScene, config.Logger).Render(canvas)

			path := filepath.Join(config.OutputDir, fmt.Sprintf("frame_%03d.png", frame))
			if err := canvas.Store(path); err != nil {
				return fmt.Errorf("failed to store frame %d: %v", frame, err)
			}
			if config.Logger != nil {
				config.Logger.Printf("frame %d/%d saved to %s", frame+1, config.Frames, path)
			}
			return nil
		})
	}

	return group.Wait()
}
