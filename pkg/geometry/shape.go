package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
	"github.com/google/uuid"
)

// Kind identifies the primitive a Shape represents
type Kind int

const (
	KindSphere Kind = iota
	KindPlane
	KindCube
	KindCylinder
	KindCone
	KindGroup
	KindTest
)

func (k Kind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	case KindPlane:
		return "plane"
	case KindCube:
		return "cube"
	case KindCylinder:
		return "cylinder"
	case KindCone:
		return "cone"
	case KindGroup:
		return "group"
	case KindTest:
		return "test"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Shape is a geometric primitive placed in the world by its transform.
// Every kind is defined in its own local space (unit sphere at the
// origin, XZ plane, [-1,1] cube, unit-radius cylinder and cone around Y)
// and Intersect/NormalAt dispatch on Kind.
type Shape struct {
	ID       uuid.UUID
	Kind     Kind
	Material material.Material
	Parent   *Shape // Enclosing group, nil at the top level

	// Cylinder and cone extents along local Y, exclusive
	Minimum float64
	Maximum float64
	Closed  bool // Cap the ends

	Children []*Shape // Group members

	SavedRay core.Ray // Last local-space ray seen by a test shape

	transform       core.Matrix
	inverse         core.Matrix
	normalTransform core.Matrix // Transpose of the inverse
}

func newShape(kind Kind) *Shape {
	s := &Shape{
		ID:       uuid.New(),
		Kind:     kind,
		Material: material.DefaultMaterial(),
		Minimum:  math.Inf(-1),
		Maximum:  math.Inf(1),
	}
	s.SetTransform(core.Identity())
	return s
}

// NewTestShape creates a shape that records the local ray it is intersected with
func NewTestShape() *Shape {
	return newShape(KindTest)
}

// Transform returns the object-to-world transform
func (s *Shape) Transform() core.Matrix {
	return s.transform
}

// SetTransform places the shape. It panics if m is not invertible.
func (s *Shape) SetTransform(m core.Matrix) {
	inv := m.MustInverse()
	s.transform = m
	s.inverse = inv
	s.normalTransform = inv.Transpose()
}

// Intersect converts a ray into object space and returns every
// intersection with this shape. The result is ordered by t.
func (s *Shape) Intersect(ray core.Ray) Intersections {
	local := ray.Transform(s.inverse)

	switch s.Kind {
	case KindSphere:
		return s.intersectSphere(local)
	case KindPlane:
		return s.intersectPlane(local)
	case KindCube:
		return s.intersectCube(local)
	case KindCylinder:
		return s.intersectCylinder(local)
	case KindCone:
		return s.intersectCone(local)
	case KindGroup:
		return s.intersectGroup(local)
	case KindTest:
		s.SavedRay = local
		return nil
	default:
		panic(fmt.Sprintf("intersect: unknown shape kind %v", s.Kind))
	}
}

// NormalAt returns the world-space surface normal at a world-space point
func (s *Shape) NormalAt(worldPoint core.Tuple) core.Tuple {
	localPoint := s.WorldToObject(worldPoint)
	return s.NormalToWorld(s.localNormalAt(localPoint))
}

func (s *Shape) localNormalAt(p core.Tuple) core.Tuple {
	switch s.Kind {
	case KindSphere:
		return p.Subtract(core.Point(0, 0, 0))
	case KindPlane:
		return core.Vector(0, 1, 0)
	case KindCube:
		return cubeNormalAt(p)
	case KindCylinder:
		return s.cylinderNormalAt(p)
	case KindCone:
		return s.coneNormalAt(p)
	case KindTest:
		return core.Vector(p.X, p.Y, p.Z)
	case KindGroup:
		panic("normal_at called on a group")
	default:
		panic(fmt.Sprintf("normal_at: unknown shape kind %v", s.Kind))
	}
}

// WorldToObject converts a world-space point into this shape's local
// space, passing through every enclosing group
func (s *Shape) WorldToObject(point core.Tuple) core.Tuple {
	if s.Parent != nil {
		point = s.Parent.WorldToObject(point)
	}
	return s.inverse.MulTuple(point)
}

// NormalToWorld converts a local normal into world space. The inverse
// transpose keeps normals perpendicular under non-uniform scaling.
func (s *Shape) NormalToWorld(normal core.Tuple) core.Tuple {
	normal = s.normalTransform.MulTuple(normal)
	normal.W = 0
	normal = normal.Normalize()

	if s.Parent != nil {
		normal = s.Parent.NormalToWorld(normal)
	}
	return normal
}

func (s *Shape) String() string {
	return fmt.Sprintf("%s(%s)", s.Kind, s.ID)
}
