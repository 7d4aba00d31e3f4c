package scene

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// NewDefaultScene creates three spheres resting on a floor, lit from the upper left
func NewDefaultScene(cameraOverrides ...CameraConfig) *Scene {
	s := newScene(CameraConfig{
		From:        core.Point(0, 1.5, -5),
		To:          core.Point(0, 1, 0),
		Up:          core.Vector(0, 1, 0),
		Width:       400,
		Height:      225,
		FieldOfView: math.Pi / 3,
	}, cameraOverrides...)

	wallMaterial := material.NewColored(core.NewColor(1, 0.9, 0.9))
	wallMaterial.Specular = 0

	floor := geometry.NewPlane()
	floor.Material = wallMaterial

	backWall := geometry.NewPlane()
	backWall.SetTransform(core.Chain(core.RotationX(math.Pi/2), core.Translation(0, 0, 10)))
	backWall.Material = wallMaterial

	middle := geometry.NewSphere()
	middle.SetTransform(core.Translation(-0.5, 1, 0.5))
	middle.Material = material.NewColored(core.NewColor(0.1, 1, 0.5))
	middle.Material.Diffuse = 0.7
	middle.Material.Specular = 0.3

	right := geometry.NewSphere()
	right.SetTransform(core.Chain(core.Scaling(0.5, 0.5, 0.5), core.Translation(1.5, 0.5, -0.5)))
	right.Material = material.NewColored(core.NewColor(0.5, 1, 0.1))
	right.Material.Diffuse = 0.7
	right.Material.Specular = 0.3

	left := geometry.NewSphere()
	left.SetTransform(core.Chain(core.Scaling(0.33, 0.33, 0.33), core.Translation(-1.5, 0.33, -0.75)))
	left.Material = material.NewColored(core.NewColor(1, 0.8, 0.1))
	left.Material.Diffuse = 0.7
	left.Material.Specular = 0.3

	s.Add(floor, backWall, middle, right, left)
	s.AddPointLight(core.Point(-10, 10, -10), core.White)

	return s
}
