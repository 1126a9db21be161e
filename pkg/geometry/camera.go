package geometry

import "github.com/antonio-hus/Virtual-Reality/pkg/core"

// CameraConfig holds the geometric parameters of the camera
type CameraConfig struct {
	Position           core.Vec3
	Direction          core.Vec3
	Up                 core.Vec3
	ViewPlaneDistance  float64
	ViewPlaneWidth     float64
	ViewPlaneHeight    float64
	FrontPlaneDistance float64
	BackPlaneDistance  float64
}

// Camera generates one primary ray per pixel by projecting pixel
// coordinates onto the view plane.
type Camera struct {
	CameraConfig
}

// NewCamera creates a camera and normalizes its basis once, before the
// first ray is generated.
func NewCamera(config CameraConfig) *Camera {
	camera := &Camera{CameraConfig: config}
	camera.Normalize()
	return camera
}

// Normalize normalizes direction and up, then re-orthogonalizes up via
// Gram-Schmidt so the basis is orthonormal even if the caller supplied
// an up vector that is not perpendicular to the view direction.
func (c *Camera) Normalize() {
	c.Direction = c.Direction.Normalize()
	c.Up = c.Up.Normalize()
	c.Up = c.Direction.Cross(c.Up).Cross(c.Direction).Normalize()
}

// GenerateRay maps pixel (i, j) of a width x height image to a primary
// ray from the camera position through the view plane. Pixel (0, 0)
// maps near the view plane's positive edge.
func (c *Camera) GenerateRay(i, j, width, height int) core.Ray {
	x := -float64(i)*c.ViewPlaneWidth/float64(width) + c.ViewPlaneWidth/2
	y := -float64(j)*c.ViewPlaneHeight/float64(height) + c.ViewPlaneHeight/2

	right := c.Up.Cross(c.Direction)
	viewPlanePoint := c.Position.
		Add(c.Direction.Multiply(c.ViewPlaneDistance)).
		Add(right.Multiply(x)).
		Add(c.Up.Multiply(y))

	return core.NewRay(c.Position, viewPlanePoint.Subtract(c.Position))
}
