package geometry

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// NewPlane creates an infinite XZ plane through the origin with normal +Y
func NewPlane() *Shape {
	return newShape(KindPlane)
}

func (s *Shape) intersectPlane(ray core.Ray) Intersections {
	// Parallel or coplanar rays never cross the plane
	if math.Abs(ray.Direction.Y) < core.Epsilon {
		return nil
	}

	t := -ray.Origin.Y / ray.Direction.Y
	return Intersections{NewIntersection(t, s)}
}
