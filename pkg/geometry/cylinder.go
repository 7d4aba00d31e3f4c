package geometry

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// NewCylinder creates an infinite open cylinder of radius 1 around the Y axis
func NewCylinder() *Shape {
	return newShape(KindCylinder)
}

// NewTruncatedCylinder creates a cylinder limited to minimum < y < maximum
func NewTruncatedCylinder(minimum, maximum float64, closed bool) *Shape {
	s := newShape(KindCylinder)
	s.Minimum = minimum
	s.Maximum = maximum
	s.Closed = closed
	return s
}

// NewCone creates an infinite double-napped cone around the Y axis
func NewCone() *Shape {
	return newShape(KindCone)
}

// NewTruncatedCone creates a cone limited to minimum < y < maximum
func NewTruncatedCone(minimum, maximum float64, closed bool) *Shape {
	s := newShape(KindCone)
	s.Minimum = minimum
	s.Maximum = maximum
	s.Closed = closed
	return s
}

func (s *Shape) intersectCylinder(ray core.Ray) Intersections {
	var xs Intersections
	o, d := ray.Origin, ray.Direction

	a := d.X*d.X + d.Z*d.Z

	// Rays parallel to the axis can only hit the caps
	if math.Abs(a) >= core.Epsilon {
		b := 2*o.X*d.X + 2*o.Z*d.Z
		c := o.X*o.X + o.Z*o.Z - 1

		discriminant := b*b - 4*a*c
		if discriminant < 0 {
			return nil
		}

		sqrtD := math.Sqrt(discriminant)
		xs = s.appendWallHits(xs, ray, (-b-sqrtD)/(2*a), (-b+sqrtD)/(2*a))
	}

	return s.appendCapHits(xs, ray, func(float64) float64 { return 1 })
}

func (s *Shape) intersectCone(ray core.Ray) Intersections {
	var xs Intersections
	o, d := ray.Origin, ray.Direction

	a := d.X*d.X - d.Y*d.Y + d.Z*d.Z
	b := 2*o.X*d.X - 2*o.Y*d.Y + 2*o.Z*d.Z
	c := o.X*o.X - o.Y*o.Y + o.Z*o.Z

	switch {
	case math.Abs(a) < core.Epsilon && math.Abs(b) >= core.Epsilon:
		// Parallel to one of the cone's halves: a single wall hit
		xs = s.appendWallHits(xs, ray, -c/(2*b))
	case math.Abs(a) >= core.Epsilon:
		discriminant := b*b - 4*a*c
		if discriminant >= 0 {
			sqrtD := math.Sqrt(discriminant)
			xs = s.appendWallHits(xs, ray, (-b-sqrtD)/(2*a), (-b+sqrtD)/(2*a))
		}
	}

	return s.appendCapHits(xs, ray, math.Abs)
}

// appendWallHits keeps the roots whose y lies strictly inside the extents
func (s *Shape) appendWallHits(xs Intersections, ray core.Ray, roots ...float64) Intersections {
	if len(roots) == 2 && roots[0] > roots[1] {
		roots[0], roots[1] = roots[1], roots[0]
	}
	for _, t := range roots {
		y := ray.Origin.Y + t*ray.Direction.Y
		if s.Minimum < y && y < s.Maximum {
			xs = append(xs, NewIntersection(t, s))
		}
	}
	return xs
}

// appendCapHits adds hits on the end caps of a closed cylinder or cone.
// radiusAt gives the cap radius at a given y.
func (s *Shape) appendCapHits(xs Intersections, ray core.Ray, radiusAt func(y float64) float64) Intersections {
	if !s.Closed || math.Abs(ray.Direction.Y) < core.Epsilon {
		return xs
	}

	for _, y := range []float64{s.Minimum, s.Maximum} {
		t := (y - ray.Origin.Y) / ray.Direction.Y
		if withinCap(ray, t, radiusAt(y)) {
			xs = append(xs, NewIntersection(t, s))
		}
	}
	return xs
}

func withinCap(ray core.Ray, t, radius float64) bool {
	x := ray.Origin.X + t*ray.Direction.X
	z := ray.Origin.Z + t*ray.Direction.Z
	return x*x+z*z <= radius*radius
}

func (s *Shape) cylinderNormalAt(p core.Tuple) core.Tuple {
	dist := p.X*p.X + p.Z*p.Z

	if dist < 1 && p.Y >= s.Maximum-core.Epsilon {
		return core.Vector(0, 1, 0)
	}
	if dist < 1 && p.Y <= s.Minimum+core.Epsilon {
		return core.Vector(0, -1, 0)
	}
	return core.Vector(p.X, 0, p.Z)
}

func (s *Shape) coneNormalAt(p core.Tuple) core.Tuple {
	dist := p.X*p.X + p.Z*p.Z

	if dist < s.Maximum*s.Maximum && p.Y >= s.Maximum-core.Epsilon {
		return core.Vector(0, 1, 0)
	}
	if dist < s.Minimum*s.Minimum && p.Y <= s.Minimum+core.Epsilon {
		return core.Vector(0, -1, 0)
	}

	y := math.Sqrt(dist)
	if p.Y > 0 {
		y = -y
	}
	return core.Vector(p.X, y, p.Z)
}
