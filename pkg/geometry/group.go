package geometry

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
)

// NewGroup creates an empty group. A group has no surface of its own; its
// transform applies to every child.
func NewGroup(children ...*Shape) *Shape {
	g := newShape(KindGroup)
	for _, child := range children {
		g.AddChild(child)
	}
	return g
}

// AddChild attaches a shape to the group
func (s *Shape) AddChild(child *Shape) {
	child.Parent = s
	s.Children = append(s.Children, child)
}

func (s *Shape) intersectGroup(ray core.Ray) Intersections {
	var xs Intersections
	for _, child := range s.Children {
		xs = append(xs, child.Intersect(ray)...)
	}
	return NewIntersections(xs...)
}
