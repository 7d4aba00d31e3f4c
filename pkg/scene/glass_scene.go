package scene

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// NewGlassScene creates a hollow glass sphere in front of a checkered wall,
// standing on a reflective floor. The air bubble inside exercises nested
// refractive indices.
func NewGlassScene(cameraOverrides ...CameraConfig) *Scene {
	s := newScene(CameraConfig{
		From:        core.Point(0, 1.5, -5),
		To:          core.Point(0, 1, 0),
		Up:          core.Vector(0, 1, 0),
		Width:       400,
		Height:      300,
		FieldOfView: degrees(50),
	}, cameraOverrides...)

	floor := geometry.NewPlane()
	floor.Material.Pattern = material.CheckersPattern(
		core.NewColor(0.35, 0.35, 0.35),
		core.NewColor(0.65, 0.65, 0.65),
	)
	floor.Material.Specular = 0
	floor.Material.Reflective = 0.4

	wall := geometry.NewPlane()
	wall.SetTransform(core.Chain(core.RotationX(math.Pi/2), core.Translation(0, 0, 6)))
	wall.Material.Pattern = material.CheckersPattern(
		core.NewColor(0.15, 0.15, 0.15),
		core.NewColor(0.85, 0.85, 0.85),
	).WithTransform(core.Scaling(0.5, 0.5, 0.5))
	wall.Material.Specular = 0

	shell := geometry.NewGlassSphere()
	shell.SetTransform(core.Translation(0, 1, 0))
	shell.Material.Pattern = material.SolidPattern(core.NewColor(0.05, 0.05, 0.1))
	shell.Material.Ambient = 0
	shell.Material.Diffuse = 0.1
	shell.Material.Shininess = 300
	shell.Material.Reflective = 0.9

	bubble := geometry.NewGlassSphere()
	bubble.SetTransform(core.Chain(core.Scaling(0.5, 0.5, 0.5), core.Translation(0, 1, 0)))
	bubble.Material.Pattern = material.SolidPattern(core.NewColor(0.05, 0.05, 0.05))
	bubble.Material.Ambient = 0
	bubble.Material.Diffuse = 0
	bubble.Material.Reflective = 0.9
	bubble.Material.RefractiveIndex = material.RefractiveAir

	red := geometry.NewSphere()
	red.SetTransform(core.Chain(core.Scaling(0.4, 0.4, 0.4), core.Translation(1.6, 0.4, 1.5)))
	red.Material = material.NewColored(core.NewColor(0.9, 0.2, 0.2))
	red.Material.Reflective = 0.1

	s.Add(floor, wall, shell, bubble, red)
	s.AddPointLight(core.Point(-4.9, 4.9, -1), core.White)

	return s
}
