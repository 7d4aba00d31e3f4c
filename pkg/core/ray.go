package core

import "fmt"

// Ray represents a ray with an origin point and a direction vector
type Ray struct {
	Origin    Tuple
	Direction Tuple
}

// NewRay creates a new ray. It panics if origin is not a point or
// direction is not a vector.
func NewRay(origin, direction Tuple) Ray {
	if !origin.IsPoint() {
		panic(fmt.Sprintf("ray origin must be a point, got %v", origin))
	}
	if !direction.IsVector() {
		panic(fmt.Sprintf("ray direction must be a vector, got %v", direction))
	}
	return Ray{Origin: origin, Direction: direction}
}

// Position returns the point at parameter t along the ray
func (r Ray) Position(t float64) Tuple {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Transform applies m to both origin and direction. The direction is not
// renormalized so that t values stay comparable across spaces.
func (r Ray) Transform(m Matrix) Ray {
	return Ray{
		Origin:    m.MulTuple(r.Origin),
		Direction: m.MulTuple(r.Direction),
	}
}
