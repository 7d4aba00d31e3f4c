package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepareComputations(t *testing.T) {
	t.Run("outside hit", func(t *testing.T) {
		r := core.NewRay(core.Point(0, 0, -5), core.Vector(0, 0, 1))
		s := NewSphere()
		comps := PrepareComputations(NewIntersection(4, s), r, nil)

		assert.Equal(t, 4.0, comps.T)
		assert.Same(t, s, comps.Object)
		assertTuple(t, core.Point(0, 0, -1), comps.Point)
		assertTuple(t, core.Vector(0, 0, -1), comps.EyeV)
		assertTuple(t, core.Vector(0, 0, -1), comps.NormalV)
		assert.False(t, comps.Inside)
	})

	t.Run("inside hit flips the normal", func(t *testing.T) {
		r := core.NewRay(core.Point(0, 0, 0), core.Vector(0, 0, 1))
		comps := PrepareComputations(NewIntersection(1, NewSphere()), r, nil)

		assertTuple(t, core.Point(0, 0, 1), comps.Point)
		assertTuple(t, core.Vector(0, 0, -1), comps.EyeV)
		assertTuple(t, core.Vector(0, 0, -1), comps.NormalV)
		assert.True(t, comps.Inside)
	})
}

func TestPrepareComputations_ReflectionVector(t *testing.T) {
	s := math.Sqrt2 / 2
	r := core.NewRay(core.Point(0, 1, -1), core.Vector(0, -s, s))
	comps := PrepareComputations(NewIntersection(math.Sqrt2, NewPlane()), r, nil)

	assertTuple(t, core.Vector(0, s, s), comps.ReflectV)
}

func TestPrepareComputations_OverAndUnderPoint(t *testing.T) {
	r := core.NewRay(core.Point(0, 0, -5), core.Vector(0, 0, 1))

	t.Run("over point", func(t *testing.T) {
		shape := NewSphere()
		shape.SetTransform(core.Translation(0, 0, 1))
		comps := PrepareComputations(NewIntersection(5, shape), r, nil)

		assert.Less(t, comps.OverPoint.Z, -core.Epsilon/2)
		assert.Greater(t, comps.Point.Z, comps.OverPoint.Z)
	})

	t.Run("under point", func(t *testing.T) {
		shape := NewGlassSphere()
		shape.SetTransform(core.Translation(0, 0, 1))
		xs := Intersections{NewIntersection(5, shape)}
		comps := PrepareComputations(xs[0], r, xs)

		assert.Greater(t, comps.UnderPoint.Z, core.Epsilon/2)
		assert.Less(t, comps.Point.Z, comps.UnderPoint.Z)
	})
}

func TestPrepareComputations_RefractiveIndices(t *testing.T) {
	a := NewGlassSphere()
	a.SetTransform(core.Scaling(2, 2, 2))
	a.Material.RefractiveIndex = 1.5

	b := NewGlassSphere()
	b.SetTransform(core.Translation(0, 0, -0.25))
	b.Material.RefractiveIndex = 2.0

	c := NewGlassSphere()
	c.SetTransform(core.Translation(0, 0, 0.25))
	c.Material.RefractiveIndex = 2.5

	r := core.NewRay(core.Point(0, 0, -4), core.Vector(0, 0, 1))
	xs := Intersections{
		NewIntersection(2, a),
		NewIntersection(2.75, b),
		NewIntersection(3.25, c),
		NewIntersection(4.75, b),
		NewIntersection(5.25, c),
		NewIntersection(6, a),
	}

	expected := []struct{ n1, n2 float64 }{
		{1.0, 1.5},
		{1.5, 2.0},
		{2.0, 2.5},
		{2.5, 2.5},
		{2.5, 1.5},
		{1.5, 1.0},
	}

	for i, want := range expected {
		comps := PrepareComputations(xs[i], r, xs)
		assert.Equal(t, want.n1, comps.N1, "n1 at index %d", i)
		assert.Equal(t, want.n2, comps.N2, "n2 at index %d", i)
	}
}

func TestComputations_Schlick(t *testing.T) {
	s := math.Sqrt2 / 2

	t.Run("total internal reflection", func(t *testing.T) {
		shape := NewGlassSphere()
		r := core.NewRay(core.Point(0, 0, s), core.Vector(0, 1, 0))
		xs := Intersections{NewIntersection(-s, shape), NewIntersection(s, shape)}

		comps := PrepareComputations(xs[1], r, xs)
		assert.Equal(t, 1.0, comps.Schlick())
	})

	t.Run("perpendicular viewing angle", func(t *testing.T) {
		shape := NewGlassSphere()
		r := core.NewRay(core.Point(0, 0, 0), core.Vector(0, 1, 0))
		xs := Intersections{NewIntersection(-1, shape), NewIntersection(1, shape)}

		comps := PrepareComputations(xs[1], r, xs)
		assert.InDelta(t, 0.04, comps.Schlick(), 1e-4)
	})

	t.Run("small angle with n2 greater than n1", func(t *testing.T) {
		shape := NewGlassSphere()
		r := core.NewRay(core.Point(0, 0.99, -2), core.Vector(0, 0, 1))
		xs := Intersections{NewIntersection(1.8589, shape)}

		comps := PrepareComputations(xs[0], r, xs)
		assert.InDelta(t, 0.48873, comps.Schlick(), 1e-4)
	})
}

func TestPrepareComputations_WithoutIntersectionList(t *testing.T) {
	shape := NewGlassSphere()
	r := core.NewRay(core.Point(0, 0, -5), core.Vector(0, 0, 1))

	comps := PrepareComputations(NewIntersection(4, shape), r, nil)

	require.False(t, comps.Inside)
	assert.Equal(t, 1.0, comps.N1)
	assert.Equal(t, 1.5, comps.N2)
}
