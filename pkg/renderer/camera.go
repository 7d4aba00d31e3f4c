package renderer

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Camera maps a canvas of HSize x VSize pixels onto a view plane one unit
// in front of the eye. The eye sits at the origin looking down -z until a
// view transform is set.
type Camera struct {
	HSize       int
	VSize       int
	FieldOfView float64 // radians

	HalfWidth  float64
	HalfHeight float64
	PixelSize  float64

	transform core.Matrix
	inverse   core.Matrix
}

// NewCamera creates a camera with the identity transform
func NewCamera(hsize, vsize int, fieldOfView float64) *Camera {
	c := &Camera{
		HSize:       hsize,
		VSize:       vsize,
		FieldOfView: fieldOfView,
		transform:   core.Identity(),
		inverse:     core.Identity(),
	}

	halfView := math.Tan(fieldOfView / 2)
	aspect := float64(hsize) / float64(vsize)
	if aspect >= 1 {
		c.HalfWidth = halfView
		c.HalfHeight = halfView / aspect
	} else {
		c.HalfWidth = halfView * aspect
		c.HalfHeight = halfView
	}
	c.PixelSize = c.HalfWidth * 2 / float64(hsize)

	return c
}

// Transform returns the camera's view transform
func (c *Camera) Transform() core.Matrix {
	return c.transform
}

// SetTransform sets the view transform. Panics if m is singular.
func (c *Camera) SetTransform(m core.Matrix) {
	c.inverse = m.MustInverse()
	c.transform = m
}

// RayForPixel returns the world-space ray through the center of pixel (px, py)
func (c *Camera) RayForPixel(px, py int) core.Ray {
	xOffset := (float64(px) + 0.5) * c.PixelSize
	yOffset := (float64(py) + 0.5) * c.PixelSize

	// +x is to the left because the camera looks toward -z
	worldX := c.HalfWidth - xOffset
	worldY := c.HalfHeight - yOffset

	pixel := c.inverse.MulTuple(core.Point(worldX, worldY, -1))
	origin := c.inverse.MulTuple(core.Point(0, 0, 0))
	direction := pixel.Subtract(origin).Normalize()

	return core.NewRay(origin, direction)
}
