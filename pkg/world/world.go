package world

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// MaxDepth is the default number of reflection/refraction bounces
const MaxDepth = 5

// World is a scene: a set of objects lit by point lights.
// It is read-only while rendering.
type World struct {
	Objects []*geometry.Shape
	Lights  []lights.PointLight
}

// New creates a world from a light list and objects
func New(ls []lights.PointLight, objects ...*geometry.Shape) *World {
	return &World{Objects: objects, Lights: ls}
}

// DefaultWorld returns the two concentric spheres lit from the upper left
// that most shading tests are written against
func DefaultWorld() *World {
	light := lights.NewPointLight(core.Point(-10, 10, -10), core.White)

	outer := geometry.NewSphere()
	outer.Material = material.NewColored(core.NewColor(0.8, 1.0, 0.6))
	outer.Material.Diffuse = 0.7
	outer.Material.Specular = 0.2

	inner := geometry.NewSphere()
	inner.SetTransform(core.Scaling(0.5, 0.5, 0.5))

	return New([]lights.PointLight{light}, outer, inner)
}

// Intersect returns every intersection of the ray with the world, sorted by t
func (w *World) Intersect(ray core.Ray) geometry.Intersections {
	var xs geometry.Intersections
	for _, obj := range w.Objects {
		xs = append(xs, obj.Intersect(ray)...)
	}
	return geometry.NewIntersections(xs...)
}

// IsShadowed reports whether something lies between point and the light
func (w *World) IsShadowed(point core.Tuple, light lights.PointLight) bool {
	direction, distance := light.Sample(point)

	xs := w.Intersect(core.NewRay(point, direction))
	hit, ok := xs.Hit()
	return ok && hit.T < distance
}

// ShadeHit colors a precomputed hit: Phong lighting from every light plus
// reflected and refracted contributions. remaining bounds the recursion.
func (w *World) ShadeHit(comps geometry.Computations, remaining int) core.Color {
	m := comps.Object.Material

	surface := core.Black
	for _, light := range w.Lights {
		shadowed := w.IsShadowed(comps.OverPoint, light)
		surface = surface.Add(m.Lighting(comps.Object, light, comps.OverPoint, comps.EyeV, comps.NormalV, shadowed))
	}

	reflected := w.ReflectedColor(comps, remaining)
	refracted := w.RefractedColor(comps, remaining)

	if m.Reflective > 0 && m.Transparency > 0 {
		reflectance := comps.Schlick()
		return surface.
			Add(reflected.Multiply(reflectance)).
			Add(refracted.Multiply(1 - reflectance))
	}
	return surface.Add(reflected).Add(refracted)
}

// ColorAt returns the color seen along a ray; black when nothing is hit
func (w *World) ColorAt(ray core.Ray, remaining int) core.Color {
	c, _ := w.Trace(ray, remaining)
	return c
}

// Trace shades the nearest visible hit along ray. The bool reports
// whether anything was hit; the color is black when it is false.
func (w *World) Trace(ray core.Ray, remaining int) (core.Color, bool) {
	xs := w.Intersect(ray)
	hit, ok := xs.Hit()
	if !ok {
		return core.Black, false
	}

	comps := geometry.PrepareComputations(hit, ray, xs)
	return w.ShadeHit(comps, remaining), true
}

// ReflectedColor follows the mirror ray off a reflective surface
func (w *World) ReflectedColor(comps geometry.Computations, remaining int) core.Color {
	reflective := comps.Object.Material.Reflective
	if remaining <= 0 || reflective == 0 {
		return core.Black
	}

	reflectRay := core.NewRay(comps.OverPoint, comps.ReflectV)
	return w.ColorAt(reflectRay, remaining-1).Multiply(reflective)
}

// RefractedColor follows the transmitted ray through a transparent surface
// using Snell's law. Total internal reflection contributes nothing here;
// that light is accounted for by the reflected color.
func (w *World) RefractedColor(comps geometry.Computations, remaining int) core.Color {
	transparency := comps.Object.Material.Transparency
	if remaining <= 0 || transparency == 0 {
		return core.Black
	}

	nRatio := comps.N1 / comps.N2
	cosI := comps.EyeV.Dot(comps.NormalV)
	sin2t := nRatio * nRatio * (1 - cosI*cosI)
	if sin2t > 1 {
		return core.Black
	}

	cosT := math.Sqrt(1 - sin2t)
	direction := comps.NormalV.Multiply(nRatio*cosI - cosT).Subtract(comps.EyeV.Multiply(nRatio))
	refractRay := core.NewRay(comps.UnderPoint, direction)

	return w.ColorAt(refractRay, remaining-1).Multiply(transparency)
}
