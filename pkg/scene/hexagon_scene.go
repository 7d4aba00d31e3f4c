package scene

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// hexagonCorner is a small sphere at one vertex of the ring
func hexagonCorner() *geometry.Shape {
	corner := geometry.NewSphere()
	corner.SetTransform(core.Chain(core.Scaling(0.25, 0.25, 0.25), core.Translation(0, 0, -1)))
	return corner
}

// hexagonEdge is a thin cylinder along one side of the ring
func hexagonEdge() *geometry.Shape {
	edge := geometry.NewTruncatedCylinder(0, 1, false)
	edge.SetTransform(core.Chain(
		core.Scaling(0.25, 1, 0.25),
		core.RotationZ(-math.Pi/2),
		core.RotationY(-math.Pi/6),
		core.Translation(0, 0, -1),
	))
	return edge
}

// newHexagon builds a ring of six corner/edge groups nested in one group
func newHexagon(m material.Material) *geometry.Shape {
	hex := geometry.NewGroup()
	for n := 0; n < 6; n++ {
		corner := hexagonCorner()
		edge := hexagonEdge()
		corner.Material = m
		edge.Material = m

		side := geometry.NewGroup(corner, edge)
		side.SetTransform(core.RotationY(float64(n) * math.Pi / 3))
		hex.AddChild(side)
	}
	return hex
}

// NewHexagonScene creates two hexagon rings built from nested groups
func NewHexagonScene(cameraOverrides ...CameraConfig) *Scene {
	s := newScene(CameraConfig{
		From:        core.Point(0, 3.5, -5),
		To:          core.Point(0, 0.5, 0),
		Up:          core.Vector(0, 1, 0),
		Width:       400,
		Height:      225,
		FieldOfView: degrees(50),
	}, cameraOverrides...)

	floor := geometry.NewPlane()
	floor.Material.Pattern = material.CheckersPattern(
		core.NewColor(0.3, 0.3, 0.35),
		core.NewColor(0.45, 0.45, 0.5),
	)
	floor.Material.Specular = 0
	floor.Material.Reflective = 0.2

	gold := material.NewColored(core.NewColor(0.8, 0.6, 0.2))
	gold.Reflective = 0.3
	gold.Shininess = 300

	upright := newHexagon(gold)
	upright.SetTransform(core.Chain(core.RotationX(-math.Pi/6), core.Translation(-1.3, 1.3, 0.5)))

	teal := material.NewColored(core.NewColor(0.2, 0.7, 0.7))
	flat := newHexagon(teal)
	flat.SetTransform(core.Chain(core.Scaling(0.8, 0.8, 0.8), core.Translation(1.5, 0.2, -0.2)))

	s.Add(floor, upright, flat)
	s.AddPointLight(core.Point(-6, 10, -8), core.White)

	return s
}
