package scene

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// NewCornellScene creates a Cornell box with a mirror cube and a glass sphere.
// The box spans [-1, 1] on x and z and [0, 2] on y, open toward the camera.
func NewCornellScene(cameraOverrides ...CameraConfig) *Scene {
	s := newScene(CameraConfig{
		From:        core.Point(0, 1, -3.4),
		To:          core.Point(0, 1, 0),
		Up:          core.Vector(0, 1, 0),
		Width:       400,
		Height:      400,
		FieldOfView: degrees(40),
	}, cameraOverrides...)

	wall := func(c core.Color) material.Material {
		m := material.NewColored(c)
		m.Specular = 0
		m.Ambient = 0.15
		return m
	}
	white := wall(core.NewColor(0.73, 0.73, 0.73))
	red := wall(core.NewColor(0.65, 0.05, 0.05))
	green := wall(core.NewColor(0.12, 0.45, 0.15))

	// Floor (white) - XZ plane at y=0
	floor := geometry.NewPlane()
	floor.Material = white

	// Ceiling (white) - XZ plane at y=2
	ceiling := geometry.NewPlane()
	ceiling.SetTransform(core.Translation(0, 2, 0))
	ceiling.Material = white

	// Back wall (white) - XY plane at z=1
	back := geometry.NewPlane()
	back.SetTransform(core.Chain(core.RotationX(math.Pi/2), core.Translation(0, 0, 1)))
	back.Material = white

	// Left wall (red) - YZ plane at x=-1
	left := geometry.NewPlane()
	left.SetTransform(core.Chain(core.RotationZ(math.Pi/2), core.Translation(-1, 0, 0)))
	left.Material = red

	// Right wall (green) - YZ plane at x=1
	right := geometry.NewPlane()
	right.SetTransform(core.Chain(core.RotationZ(math.Pi/2), core.Translation(1, 0, 0)))
	right.Material = green

	// Tall mirrored block, turned toward the red wall
	block := geometry.NewCube()
	block.SetTransform(core.Chain(
		core.Scaling(0.3, 0.6, 0.3),
		core.RotationY(degrees(18)),
		core.Translation(-0.35, 0.6, 0.3),
	))
	block.Material = material.NewColored(core.NewColor(0.1, 0.1, 0.1))
	block.Material.Reflective = 0.9
	block.Material.Diffuse = 0.2

	// Glass sphere in front of the block
	ball := geometry.NewGlassSphere()
	ball.SetTransform(core.Chain(core.Scaling(0.35, 0.35, 0.35), core.Translation(0.4, 0.35, -0.3)))
	ball.Material.Pattern = material.SolidPattern(core.NewColor(0.05, 0.05, 0.05))
	ball.Material.Reflective = 0.9
	ball.Material.Diffuse = 0.1
	ball.Material.Ambient = 0

	s.Add(floor, ceiling, back, left, right, block, ball)
	s.AddPointLight(core.Point(0, 1.9, -0.2), core.NewColor(0.9, 0.9, 0.9))

	return s
}
