package scene

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Color {
	hRad := degrees(h)

	// OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to LMS
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS to linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	clamp := func(v float64) float64 { return math.Max(0, math.Min(1, v)) }
	return core.NewColor(clamp(r), clamp(g), clamp(blue))
}

// sphereGridSize is the number of spheres along each side of the grid
const sphereGridSize = 8

// NewSphereGridScene creates a grid of spheres on a checkered floor. Hue varies
// along x, shininess and reflectivity along z.
func NewSphereGridScene(cameraOverrides ...CameraConfig) *Scene {
	s := newScene(CameraConfig{
		From:        core.Point(4.5, 6, -9),
		To:          core.Point(4.5, 0.5, 4.5),
		Up:          core.Vector(0, 1, 0),
		Width:       400,
		Height:      225,
		FieldOfView: degrees(55),
	}, cameraOverrides...)

	floor := geometry.NewPlane()
	floor.Material.Pattern = material.CheckersPattern(
		core.NewColor(0.5, 0.5, 0.5),
		core.NewColor(0.6, 0.6, 0.6),
	)
	floor.Material.Specular = 0
	s.Add(floor)

	targetArea := 9.0
	spacing := targetArea / float64(sphereGridSize-1)
	radius := spacing * 0.35

	for i := 0; i < sphereGridSize; i++ {
		for j := 0; j < sphereGridSize; j++ {
			x := float64(i) * spacing
			z := float64(j) * spacing

			hue := float64(i) / float64(sphereGridSize-1) * 360
			lightness := 0.65 + 0.1*math.Sin(float64(i+j)*0.5)
			along := float64(j) / float64(sphereGridSize-1)

			sphere := geometry.NewSphere()
			sphere.SetTransform(core.Chain(
				core.Scaling(radius, radius, radius),
				core.Translation(x, radius, z),
			))
			sphere.Material = material.NewColored(oklchToRGB(lightness, 0.2, hue))
			sphere.Material.Shininess = 10 + along*290
			sphere.Material.Reflective = 0.3 * along
			s.Add(sphere)
		}
	}

	s.AddPointLight(core.Point(-5, 12, -8), core.NewColor(0.8, 0.8, 0.8))
	s.AddPointLight(core.Point(14, 8, -4), core.NewColor(0.3, 0.3, 0.35))

	return s
}
