package world

import (
	"math"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertColor(t *testing.T, expected, actual core.Color, delta float64) {
	t.Helper()
	assert.InDelta(t, expected.R, actual.R, delta, "red of %v", actual)
	assert.InDelta(t, expected.G, actual.G, delta, "green of %v", actual)
	assert.InDelta(t, expected.B, actual.B, delta, "blue of %v", actual)
}

func TestDefaultWorld(t *testing.T) {
	w := DefaultWorld()

	require.Len(t, w.Lights, 1)
	assert.Equal(t, core.Point(-10, 10, -10), w.Lights[0].Position)
	assert.Equal(t, core.White, w.Lights[0].Intensity)

	require.Len(t, w.Objects, 2)
	assert.Equal(t, 0.7, w.Objects[0].Material.Diffuse)
	assert.Equal(t, 0.2, w.Objects[0].Material.Specular)
	assert.True(t, w.Objects[1].Transform().ApproxEqual(core.Scaling(0.5, 0.5, 0.5)))
}

func TestWorld_Intersect(t *testing.T) {
	w := DefaultWorld()
	xs := w.Intersect(core.NewRay(core.Point(0, 0, -5), core.Vector(0, 0, 1)))

	require.Len(t, xs, 4)
	expected := []float64{4, 4.5, 5.5, 6}
	for i, want := range expected {
		assert.InDelta(t, want, xs[i].T, 1e-9)
	}
}

func TestWorld_EmptyWorldIsBlack(t *testing.T) {
	w := New(nil)

	assert.Empty(t, w.Intersect(core.NewRay(core.Point(0, 0, -5), core.Vector(0, 0, 1))))
	assert.Equal(t, core.Black, w.ColorAt(core.NewRay(core.Point(0, 0, -5), core.Vector(0, 0, 1)), MaxDepth))
}

func TestWorld_ShadeHit(t *testing.T) {
	t.Run("from the outside", func(t *testing.T) {
		w := DefaultWorld()
		r := core.NewRay(core.Point(0, 0, -5), core.Vector(0, 0, 1))
		comps := geometry.PrepareComputations(geometry.NewIntersection(4, w.Objects[0]), r, nil)

		assertColor(t, core.NewColor(0.38066, 0.47583, 0.2855), w.ShadeHit(comps, MaxDepth), 1e-4)
	})

	t.Run("from the inside", func(t *testing.T) {
		w := DefaultWorld()
		w.Lights = []lights.PointLight{lights.NewPointLight(core.Point(0, 0.25, 0), core.White)}
		r := core.NewRay(core.Point(0, 0, 0), core.Vector(0, 0, 1))
		comps := geometry.PrepareComputations(geometry.NewIntersection(0.5, w.Objects[1]), r, nil)

		assertColor(t, core.NewColor(0.90498, 0.90498, 0.90498), w.ShadeHit(comps, MaxDepth), 1e-4)
	})

	t.Run("in shadow", func(t *testing.T) {
		s1 := geometry.NewSphere()
		s2 := geometry.NewSphere()
		s2.SetTransform(core.Translation(0, 0, 10))
		w := New([]lights.PointLight{lights.NewPointLight(core.Point(0, 0, -10), core.White)}, s1, s2)

		r := core.NewRay(core.Point(0, 0, 5), core.Vector(0, 0, 1))
		comps := geometry.PrepareComputations(geometry.NewIntersection(4, s2), r, nil)

		assertColor(t, core.NewColor(0.1, 0.1, 0.1), w.ShadeHit(comps, MaxDepth), 1e-9)
	})
}

func TestWorld_ShadeHitSumsLights(t *testing.T) {
	w := DefaultWorld()
	r := core.NewRay(core.Point(0, 0, -5), core.Vector(0, 0, 1))
	comps := geometry.PrepareComputations(geometry.NewIntersection(4, w.Objects[0]), r, nil)
	single := w.ShadeHit(comps, MaxDepth)

	w.Lights = append(w.Lights, w.Lights[0])
	double := w.ShadeHit(comps, MaxDepth)

	assertColor(t, single.Multiply(2), double, 1e-9)
}

func TestWorld_ColorAt(t *testing.T) {
	t.Run("ray misses", func(t *testing.T) {
		w := DefaultWorld()
		c := w.ColorAt(core.NewRay(core.Point(0, 0, -5), core.Vector(0, 1, 0)), MaxDepth)
		assert.Equal(t, core.Black, c)
	})

	t.Run("ray hits", func(t *testing.T) {
		w := DefaultWorld()
		c := w.ColorAt(core.NewRay(core.Point(0, 0, -5), core.Vector(0, 0, 1)), MaxDepth)
		assertColor(t, core.NewColor(0.38066, 0.47583, 0.2855), c, 1e-4)
	})

	t.Run("intersection behind the ray", func(t *testing.T) {
		w := DefaultWorld()
		w.Objects[0].Material.Ambient = 1
		w.Objects[1].Material.Ambient = 1

		c := w.ColorAt(core.NewRay(core.Point(0, 0, 0.75), core.Vector(0, 0, -1)), MaxDepth)
		assert.Equal(t, w.Objects[1].Material.Pattern.At(core.Point(0, 0, 0)), c)
	})
}

func TestWorld_Trace(t *testing.T) {
	w := DefaultWorld()

	c, hit := w.Trace(core.NewRay(core.Point(0, 0, -5), core.Vector(0, 1, 0)), MaxDepth)
	assert.False(t, hit)
	assert.Equal(t, core.Black, c)

	ray := core.NewRay(core.Point(0, 0, -5), core.Vector(0, 0, 1))
	c, hit = w.Trace(ray, MaxDepth)
	assert.True(t, hit)
	assertColor(t, core.NewColor(0.38066, 0.47583, 0.2855), c, 1e-4)
	assert.Equal(t, w.ColorAt(ray, MaxDepth), c)
}

func TestWorld_IsShadowed(t *testing.T) {
	tests := []struct {
		name     string
		point    core.Tuple
		shadowed bool
	}{
		{"nothing collinear with point and light", core.Point(0, 10, 0), false},
		{"object between point and light", core.Point(10, -10, 10), true},
		{"object behind the light", core.Point(-20, 20, -20), false},
		{"object behind the point", core.Point(-2, 2, -2), false},
	}

	w := DefaultWorld()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.shadowed, w.IsShadowed(tt.point, w.Lights[0]))
		})
	}
}

func TestWorld_ReflectedColor(t *testing.T) {
	s := math.Sqrt2 / 2

	t.Run("nonreflective material", func(t *testing.T) {
		w := DefaultWorld()
		r := core.NewRay(core.Point(0, 0, 0), core.Vector(0, 0, 1))
		shape := w.Objects[1]
		shape.Material.Ambient = 1
		comps := geometry.PrepareComputations(geometry.NewIntersection(1, shape), r, nil)

		assert.Equal(t, core.Black, w.ReflectedColor(comps, MaxDepth))
	})

	t.Run("reflective material", func(t *testing.T) {
		w := DefaultWorld()
		shape := geometry.NewPlane()
		shape.Material.Reflective = 0.5
		shape.SetTransform(core.Translation(0, -1, 0))
		w.Objects = append(w.Objects, shape)

		r := core.NewRay(core.Point(0, 0, -3), core.Vector(0, -s, s))
		comps := geometry.PrepareComputations(geometry.NewIntersection(math.Sqrt2, shape), r, nil)

		assertColor(t, core.NewColor(0.19032, 0.2379, 0.14274), w.ReflectedColor(comps, MaxDepth), 1e-3)
		assertColor(t, core.NewColor(0.87677, 0.92436, 0.82918), w.ShadeHit(comps, MaxDepth), 1e-3)
	})

	t.Run("no remaining bounces", func(t *testing.T) {
		w := DefaultWorld()
		shape := geometry.NewPlane()
		shape.Material.Reflective = 0.5
		shape.SetTransform(core.Translation(0, -1, 0))
		w.Objects = append(w.Objects, shape)

		r := core.NewRay(core.Point(0, 0, -3), core.Vector(0, -s, s))
		comps := geometry.PrepareComputations(geometry.NewIntersection(math.Sqrt2, shape), r, nil)

		assert.Equal(t, core.Black, w.ReflectedColor(comps, 0))
	})
}

func TestWorld_MutuallyReflectiveSurfacesTerminate(t *testing.T) {
	lower := geometry.NewPlane()
	lower.Material.Reflective = 1
	lower.SetTransform(core.Translation(0, -1, 0))

	upper := geometry.NewPlane()
	upper.Material.Reflective = 1
	upper.SetTransform(core.Translation(0, 1, 0))

	w := New([]lights.PointLight{lights.NewPointLight(core.Point(0, 0, 0), core.White)}, lower, upper)

	assert.NotPanics(t, func() {
		w.ColorAt(core.NewRay(core.Point(0, 0, 0), core.Vector(0, 1, 0)), MaxDepth)
	})
}

func TestWorld_RefractedColor(t *testing.T) {
	t.Run("opaque surface", func(t *testing.T) {
		w := DefaultWorld()
		shape := w.Objects[0]
		r := core.NewRay(core.Point(0, 0, -5), core.Vector(0, 0, 1))
		xs := geometry.Intersections{geometry.NewIntersection(4, shape), geometry.NewIntersection(6, shape)}
		comps := geometry.PrepareComputations(xs[0], r, xs)

		assert.Equal(t, core.Black, w.RefractedColor(comps, 5))
	})

	t.Run("maximum recursive depth", func(t *testing.T) {
		w := DefaultWorld()
		shape := w.Objects[0]
		shape.Material.Transparency = 1.0
		shape.Material.RefractiveIndex = 1.5
		r := core.NewRay(core.Point(0, 0, -5), core.Vector(0, 0, 1))
		xs := geometry.Intersections{geometry.NewIntersection(4, shape), geometry.NewIntersection(6, shape)}
		comps := geometry.PrepareComputations(xs[0], r, xs)

		assert.Equal(t, core.Black, w.RefractedColor(comps, 0))
	})

	t.Run("total internal reflection", func(t *testing.T) {
		w := DefaultWorld()
		shape := w.Objects[0]
		shape.Material.Transparency = 1.0
		shape.Material.RefractiveIndex = 1.5
		s := math.Sqrt2 / 2
		r := core.NewRay(core.Point(0, 0, s), core.Vector(0, 1, 0))
		xs := geometry.Intersections{geometry.NewIntersection(-s, shape), geometry.NewIntersection(s, shape)}
		comps := geometry.PrepareComputations(xs[1], r, xs)

		assert.Equal(t, core.Black, w.RefractedColor(comps, 5))
	})

	t.Run("refracted ray", func(t *testing.T) {
		w := DefaultWorld()
		a := w.Objects[0]
		a.Material.Ambient = 1.0
		a.Material.Pattern = material.TestPattern()
		b := w.Objects[1]
		b.Material.Transparency = 1.0
		b.Material.RefractiveIndex = 1.5

		r := core.NewRay(core.Point(0, 0, 0.1), core.Vector(0, 1, 0))
		xs := geometry.Intersections{
			geometry.NewIntersection(-0.9899, a),
			geometry.NewIntersection(-0.4899, b),
			geometry.NewIntersection(0.4899, b),
			geometry.NewIntersection(0.9899, a),
		}
		comps := geometry.PrepareComputations(xs[2], r, xs)

		assertColor(t, core.NewColor(0, 0.99888, 0.04725), w.RefractedColor(comps, 5), 1e-3)
	})
}

func TestWorld_ShadeHitTransparent(t *testing.T) {
	s := math.Sqrt2 / 2

	setup := func() (*World, *geometry.Shape) {
		w := DefaultWorld()

		floor := geometry.NewPlane()
		floor.SetTransform(core.Translation(0, -1, 0))
		floor.Material.Transparency = 0.5
		floor.Material.RefractiveIndex = 1.5

		ball := geometry.NewSphere()
		ball.Material = material.NewColored(core.NewColor(1, 0, 0))
		ball.Material.Ambient = 0.5
		ball.SetTransform(core.Translation(0, -3.5, -0.5))

		w.Objects = append(w.Objects, floor, ball)
		return w, floor
	}

	t.Run("transparent material", func(t *testing.T) {
		w, floor := setup()
		r := core.NewRay(core.Point(0, 0, -3), core.Vector(0, -s, s))
		xs := geometry.Intersections{geometry.NewIntersection(math.Sqrt2, floor)}
		comps := geometry.PrepareComputations(xs[0], r, xs)

		assertColor(t, core.NewColor(0.93642, 0.68642, 0.68642), w.ShadeHit(comps, 5), 1e-3)
	})

	t.Run("reflective transparent material uses schlick", func(t *testing.T) {
		w, floor := setup()
		floor.Material.Reflective = 0.5
		r := core.NewRay(core.Point(0, 0, -3), core.Vector(0, -s, s))
		xs := geometry.Intersections{geometry.NewIntersection(math.Sqrt2, floor)}
		comps := geometry.PrepareComputations(xs[0], r, xs)

		assertColor(t, core.NewColor(0.93391, 0.69643, 0.69243), w.ShadeHit(comps, 5), 1e-3)
	})
}
