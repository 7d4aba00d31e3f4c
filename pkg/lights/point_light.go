package lights

import "github.com/df07/go-phong-raytracer/pkg/core"

// PointLight is an infinitely small light source with no size
type PointLight struct {
	Position  core.Tuple // Location of the light
	Intensity core.Color // Brightness and color
}

// NewPointLight creates a new point light
func NewPointLight(position core.Tuple, intensity core.Color) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}

// Sample returns the unit direction from point toward the light and the
// distance between them
func (l PointLight) Sample(point core.Tuple) (direction core.Tuple, distance float64) {
	v := l.Position.Subtract(point)
	distance = v.Magnitude()
	return v.Normalize(), distance
}
