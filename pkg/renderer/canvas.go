// Package renderer drives rendering: camera rays through the scene,
// Phong shading, the canvas sink, and frame-parallel dispatch.
package renderer

import (
	"image"

	"github.com/fogleman/gg"

	"github.com/antonio-hus/Virtual-Reality/pkg/core"
)

// Canvas is the pixel sink: a pre-sized gg context written one pixel
// at a time and stored as PNG. Clamping to the displayable range and
// forcing opaque alpha happen here, not in the shading code.
type Canvas struct {
	ctx           *gg.Context
	width, height int
}

// NewCanvas creates a canvas of the given size
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		ctx:    gg.NewContext(width, height),
		width:  width,
		height: height,
	}
}

// Width returns the canvas width in pixels
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels
func (c *Canvas) Height() int { return c.height }

// SetPixel clamps the color and writes it at (x, y)
func (c *Canvas) SetPixel(x, y int, color core.Color) {
	clamped := color.Clamp()
	c.ctx.SetRGBA(clamped.R, clamped.G, clamped.B, clamped.A)
	c.ctx.SetPixel(x, y)
}

// Image exposes the rendered pixels
func (c *Canvas) Image() image.Image {
	return c.ctx.Image()
}

// Store writes the canvas to disk as a PNG file
func (c *Canvas) Store(path string) error {
	return c.ctx.SavePNG(path)
}
