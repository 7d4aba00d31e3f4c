package scene

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// NewCylinderScene creates open, truncated and capped cylinders
func NewCylinderScene(cameraOverrides ...CameraConfig) *Scene {
	s := newScene(CameraConfig{
		From:        core.Point(0, 3, -6),
		To:          core.Point(0, 0.75, 0),
		Up:          core.Vector(0, 1, 0),
		Width:       400,
		Height:      225,
		FieldOfView: degrees(50),
	}, cameraOverrides...)

	floor := geometry.NewPlane()
	floor.Material.Pattern = material.CheckersPattern(
		core.NewColor(0.4, 0.4, 0.4),
		core.NewColor(0.55, 0.55, 0.55),
	)
	floor.Material.Specular = 0
	floor.Material.Reflective = 0.1

	// Open tube
	tube := geometry.NewTruncatedCylinder(0, 1.5, false)
	tube.SetTransform(core.Chain(core.Scaling(0.6, 1, 0.6), core.Translation(-2, 0, 0)))
	tube.Material = material.NewColored(core.NewColor(0.8, 0.2, 0.2))

	// Capped drum, tipped over on its side
	drum := geometry.NewTruncatedCylinder(-0.5, 0.5, true)
	drum.SetTransform(core.Chain(
		core.Scaling(0.7, 1, 0.7),
		core.RotationZ(math.Pi/2),
		core.RotationY(degrees(30)),
		core.Translation(0, 0.7, 0.5),
	))
	drum.Material = material.NewColored(core.NewColor(0.2, 0.4, 0.9))
	drum.Material.Reflective = 0.2

	// Striped pillar
	pillar := geometry.NewTruncatedCylinder(0, 2.5, true)
	pillar.SetTransform(core.Chain(core.Scaling(0.4, 1, 0.4), core.Translation(2, 0, 0.5)))
	pillar.Material.Pattern = material.StripePattern(
		core.NewColor(0.9, 0.9, 0.2),
		core.NewColor(0.2, 0.6, 0.2),
	).WithTransform(core.Chain(core.Scaling(0.2, 1, 1), core.RotationY(math.Pi/4)))

	s.Add(floor, tube, drum, pillar)
	s.AddPointLight(core.Point(-6, 8, -8), core.White)

	return s
}

// NewConeScene creates a capped cone, an hourglass double cone and a frustum
func NewConeScene(cameraOverrides ...CameraConfig) *Scene {
	s := newScene(CameraConfig{
		From:        core.Point(0, 2.5, -6),
		To:          core.Point(0, 1, 0),
		Up:          core.Vector(0, 1, 0),
		Width:       400,
		Height:      225,
		FieldOfView: degrees(50),
	}, cameraOverrides...)

	floor := geometry.NewPlane()
	floor.Material = material.NewColored(core.NewColor(0.5, 0.5, 0.5))
	floor.Material.Specular = 0

	// Pointed cone standing on its base: apex at the top
	pointed := geometry.NewTruncatedCone(-1, 0, true)
	pointed.SetTransform(core.Chain(core.Scaling(0.6, 1.5, 0.6), core.Translation(-2, 1.5, 0)))
	pointed.Material = material.NewColored(core.NewColor(0.8, 0.2, 0.2))

	// Hourglass: both nappes, capped
	hourglass := geometry.NewTruncatedCone(-1, 1, true)
	hourglass.SetTransform(core.Chain(core.Scaling(0.5, 0.8, 0.5), core.Translation(0, 0.8, 0.5)))
	hourglass.Material.Pattern = material.RingPattern(
		core.NewColor(0.9, 0.7, 0.2),
		core.NewColor(0.6, 0.3, 0.1),
	).WithTransform(core.Scaling(0.15, 0.15, 0.15))
	hourglass.Material.Reflective = 0.15

	// Frustum
	frustum := geometry.NewTruncatedCone(0.5, 1.5, true)
	frustum.SetTransform(core.Chain(core.Scaling(0.6, 1, 0.6), core.Translation(2, -0.5, 0)))
	frustum.Material = material.NewColored(core.NewColor(0.2, 0.3, 0.9))

	s.Add(floor, pointed, hourglass, frustum)
	s.AddPointLight(core.Point(-5, 8, -7), core.White)

	return s
}
