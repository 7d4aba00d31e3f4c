package geometry

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// NewSphere creates a unit sphere centered at the origin
func NewSphere() *Shape {
	return newShape(KindSphere)
}

// NewGlassSphere creates a unit sphere with a clear glass material
func NewGlassSphere() *Shape {
	s := newShape(KindSphere)
	s.Material = material.NewGlass()
	return s
}

// intersectSphere solves |origin + t*dir|^2 = 1 for t
func (s *Shape) intersectSphere(ray core.Ray) Intersections {
	sphereToRay := ray.Origin.Subtract(core.Point(0, 0, 0))

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)
	if t1 > t2 {
		t1, t2 = t2, t1
	}

	return Intersections{NewIntersection(t1, s), NewIntersection(t2, s)}
}
