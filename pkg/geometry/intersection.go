package geometry

import (
	"cmp"
	"fmt"
	"slices"
)

// Intersection records where along a ray a shape was crossed
type Intersection struct {
	T      float64
	Object *Shape
}

// NewIntersection creates a new intersection
func NewIntersection(t float64, object *Shape) Intersection {
	return Intersection{T: t, Object: object}
}

func (i Intersection) String() string {
	return fmt.Sprintf("intersection(%g, %v)", i.T, i.Object)
}

// Intersections is a list of intersections, usually ordered by t
type Intersections []Intersection

// NewIntersections returns the intersections sorted by ascending t.
// Equal t values keep their original order.
func NewIntersections(xs ...Intersection) Intersections {
	sorted := slices.Clone(xs)
	slices.SortStableFunc(sorted, func(a, b Intersection) int {
		return cmp.Compare(a.T, b.T)
	})
	return sorted
}

// Hit returns the nearest intersection in front of the ray origin, i.e.
// the smallest non-negative t. Ties go to the first one encountered.
func (xs Intersections) Hit() (Intersection, bool) {
	best := -1
	for i, x := range xs {
		if x.T < 0 {
			continue
		}
		if best < 0 || x.T < xs[best].T {
			best = i
		}
	}
	if best < 0 {
		return Intersection{}, false
	}
	return xs[best], true
}
