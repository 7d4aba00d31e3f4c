package scene

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// NewPatternScene shows every procedural pattern on a sphere, a cube and the floor
func NewPatternScene(cameraOverrides ...CameraConfig) *Scene {
	s := newScene(CameraConfig{
		From:        core.Point(0, 2, -6),
		To:          core.Point(0, 0.8, 0),
		Up:          core.Vector(0, 1, 0),
		Width:       400,
		Height:      225,
		FieldOfView: degrees(55),
	}, cameraOverrides...)

	floor := geometry.NewPlane()
	floor.Material.Pattern = material.CheckersPattern(core.White, core.NewColor(0.2, 0.2, 0.2))
	floor.Material.Specular = 0

	stripes := geometry.NewSphere()
	stripes.SetTransform(core.Translation(-2.2, 1, 0))
	stripes.Material.Pattern = material.StripePattern(
		core.NewColor(0.9, 0.3, 0.3),
		core.NewColor(0.95, 0.95, 0.95),
	).WithTransform(core.Chain(core.Scaling(0.2, 0.2, 0.2), core.RotationZ(math.Pi/4)))

	gradient := geometry.NewSphere()
	gradient.SetTransform(core.Translation(0, 1, 0.5))
	gradient.Material.Pattern = material.GradientPattern(
		core.NewColor(0.1, 0.3, 0.9),
		core.NewColor(0.9, 0.9, 0.1),
	).WithTransform(core.Chain(core.Scaling(2, 1, 1), core.Translation(-1, 0, 0)))

	rings := geometry.NewCube()
	rings.SetTransform(core.Chain(
		core.Scaling(0.7, 0.7, 0.7),
		core.RotationY(degrees(35)),
		core.Translation(2.2, 0.7, 0),
	))
	rings.Material.Pattern = material.RingPattern(
		core.NewColor(0.3, 0.7, 0.3),
		core.NewColor(0.1, 0.3, 0.1),
	).WithTransform(core.Chain(core.Scaling(0.15, 0.15, 0.15), core.RotationX(math.Pi/2)))

	s.Add(floor, stripes, gradient, rings)
	s.AddPointLight(core.Point(-8, 10, -10), core.White)

	return s
}
