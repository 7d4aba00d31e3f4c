package geometry

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// NewCube creates an axis-aligned cube spanning -1..1 on every axis
func NewCube() *Shape {
	return newShape(KindCube)
}

// intersectCube uses the slab method: the ray is inside the cube between
// the largest entry and the smallest exit over the three axis slabs
func (s *Shape) intersectCube(ray core.Ray) Intersections {
	xtMin, xtMax := checkAxis(ray.Origin.X, ray.Direction.X)
	ytMin, ytMax := checkAxis(ray.Origin.Y, ray.Direction.Y)
	ztMin, ztMax := checkAxis(ray.Origin.Z, ray.Direction.Z)

	tMin := math.Max(xtMin, math.Max(ytMin, ztMin))
	tMax := math.Min(xtMax, math.Min(ytMax, ztMax))

	if tMin > tMax {
		return nil
	}
	return Intersections{NewIntersection(tMin, s), NewIntersection(tMax, s)}
}

func checkAxis(origin, direction float64) (tMin, tMax float64) {
	tMinNumerator := -1 - origin
	tMaxNumerator := 1 - origin

	if math.Abs(direction) >= core.Epsilon {
		tMin = tMinNumerator / direction
		tMax = tMaxNumerator / direction
	} else {
		tMin = infinityWithSign(tMinNumerator)
		tMax = infinityWithSign(tMaxNumerator)
	}

	if tMin > tMax {
		tMin, tMax = tMax, tMin
	}
	return tMin, tMax
}

// infinityWithSign treats a zero numerator as positive
func infinityWithSign(v float64) float64 {
	if v < 0 {
		return math.Inf(-1)
	}
	return math.Inf(1)
}

func cubeNormalAt(p core.Tuple) core.Tuple {
	ax, ay, az := math.Abs(p.X), math.Abs(p.Y), math.Abs(p.Z)
	maxc := math.Max(ax, math.Max(ay, az))

	switch maxc {
	case ax:
		return core.Vector(p.X, 0, 0)
	case ay:
		return core.Vector(0, p.Y, 0)
	default:
		return core.Vector(0, 0, p.Z)
	}
}
