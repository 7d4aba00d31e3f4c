package scene

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/world"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	World        *world.World
	Camera       *renderer.Camera
	CameraConfig CameraConfig
	Config       renderer.Config
}

// CameraConfig describes where the camera sits and how large the image is.
// Zero fields in an override keep the scene's defaults.
type CameraConfig struct {
	From        core.Tuple // Eye position
	To          core.Tuple // Point the camera looks at
	Up          core.Tuple // Approximate up direction
	Width       int        // Image width in pixels
	Height      int        // Image height in pixels
	FieldOfView float64    // Horizontal or vertical extent of the view, radians
}

// MergeCameraConfig applies the non-zero fields of override on top of base
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if override.From != (core.Tuple{}) {
		result.From = override.From
	}
	if override.To != (core.Tuple{}) {
		result.To = override.To
	}
	if override.Up != (core.Tuple{}) {
		result.Up = override.Up
	}
	if override.Width > 0 {
		result.Width = override.Width
	}
	if override.Height > 0 {
		result.Height = override.Height
	}
	if override.FieldOfView > 0 {
		result.FieldOfView = override.FieldOfView
	}
	return result
}

// NewCamera builds a camera from the configuration
func (c CameraConfig) NewCamera() *renderer.Camera {
	cam := renderer.NewCamera(c.Width, c.Height, c.FieldOfView)
	cam.SetTransform(core.ViewTransform(c.From, c.To, c.Up))
	return cam
}

// newScene applies camera overrides and wires a camera for the given defaults
func newScene(defaults CameraConfig, cameraOverrides ...CameraConfig) *Scene {
	cameraConfig := defaults
	if len(cameraOverrides) > 0 {
		cameraConfig = MergeCameraConfig(defaults, cameraOverrides[0])
	}

	return &Scene{
		World:        world.New(nil),
		Camera:       cameraConfig.NewCamera(),
		CameraConfig: cameraConfig,
		Config:       renderer.DefaultConfig(),
	}
}

// Add appends objects to the scene
func (s *Scene) Add(objects ...*geometry.Shape) {
	s.World.Objects = append(s.World.Objects, objects...)
}

// AddPointLight adds a point light to the scene
func (s *Scene) AddPointLight(position core.Tuple, intensity core.Color) {
	s.World.Lights = append(s.World.Lights, lights.NewPointLight(position, intensity))
}

// GetPrimitiveCount returns the number of non-group shapes in the scene
func (s *Scene) GetPrimitiveCount() int {
	count := 0
	for _, shape := range s.World.Objects {
		count += countPrimitives(shape)
	}
	return count
}

func countPrimitives(shape *geometry.Shape) int {
	if shape.Kind != geometry.KindGroup {
		return 1
	}
	count := 0
	for _, child := range shape.Children {
		count += countPrimitives(child)
	}
	return count
}

// degrees converts an angle in degrees to radians
func degrees(d float64) float64 {
	return d * math.Pi / 180
}
