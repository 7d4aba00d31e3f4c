package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertTuple(t *testing.T, expected, actual Tuple) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, 1e-4, "x of %v", actual)
	assert.InDelta(t, expected.Y, actual.Y, 1e-4, "y of %v", actual)
	assert.InDelta(t, expected.Z, actual.Z, 1e-4, "z of %v", actual)
	assert.Equal(t, expected.W, actual.W, "w of %v", actual)
}

func TestTranslation(t *testing.T) {
	transform := Translation(5, -3, 2)

	assertTuple(t, Point(2, 1, 7), transform.MulTuple(Point(-3, 4, 5)))
	assertTuple(t, Point(-8, 7, 3), transform.MustInverse().MulTuple(Point(-3, 4, 5)))
	assertTuple(t, Vector(-3, 4, 5), transform.MulTuple(Vector(-3, 4, 5)))
}

func TestScaling(t *testing.T) {
	transform := Scaling(2, 3, 4)

	assertTuple(t, Point(-8, 18, 32), transform.MulTuple(Point(-4, 6, 8)))
	assertTuple(t, Vector(-8, 18, 32), transform.MulTuple(Vector(-4, 6, 8)))
	assertTuple(t, Vector(-2, 2, 2), transform.MustInverse().MulTuple(Vector(-4, 6, 8)))
	assertTuple(t, Point(-2, 3, 4), Scaling(-1, 1, 1).MulTuple(Point(2, 3, 4)))
}

func TestRotation(t *testing.T) {
	s := math.Sqrt2 / 2

	tests := []struct {
		name     string
		m        Matrix
		p        Tuple
		expected Tuple
	}{
		{"x half quarter", RotationX(math.Pi / 4), Point(0, 1, 0), Point(0, s, s)},
		{"x full quarter", RotationX(math.Pi / 2), Point(0, 1, 0), Point(0, 0, 1)},
		{"x inverse", RotationX(math.Pi / 4).MustInverse(), Point(0, 1, 0), Point(0, s, -s)},
		{"y half quarter", RotationY(math.Pi / 4), Point(0, 0, 1), Point(s, 0, s)},
		{"y full quarter", RotationY(math.Pi / 2), Point(0, 0, 1), Point(1, 0, 0)},
		{"z half quarter", RotationZ(math.Pi / 4), Point(0, 1, 0), Point(-s, s, 0)},
		{"z full quarter", RotationZ(math.Pi / 2), Point(0, 1, 0), Point(-1, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTuple(t, tt.expected, tt.m.MulTuple(tt.p))
		})
	}
}

func TestShearing(t *testing.T) {
	p := Point(2, 3, 4)

	tests := []struct {
		name     string
		m        Matrix
		expected Tuple
	}{
		{"x in proportion to y", Shearing(1, 0, 0, 0, 0, 0), Point(5, 3, 4)},
		{"x in proportion to z", Shearing(0, 1, 0, 0, 0, 0), Point(6, 3, 4)},
		{"y in proportion to x", Shearing(0, 0, 1, 0, 0, 0), Point(2, 5, 4)},
		{"y in proportion to z", Shearing(0, 0, 0, 1, 0, 0), Point(2, 7, 4)},
		{"z in proportion to x", Shearing(0, 0, 0, 0, 1, 0), Point(2, 3, 6)},
		{"z in proportion to y", Shearing(0, 0, 0, 0, 0, 1), Point(2, 3, 7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertTuple(t, tt.expected, tt.m.MulTuple(p))
		})
	}
}

func TestChain_AppliesInSequence(t *testing.T) {
	p := Point(1, 0, 1)
	a := RotationX(math.Pi / 2)
	b := Scaling(5, 5, 5)
	c := Translation(10, 5, 7)

	p2 := a.MulTuple(p)
	assertTuple(t, Point(1, -1, 0), p2)
	p3 := b.MulTuple(p2)
	assertTuple(t, Point(5, -5, 0), p3)
	assertTuple(t, Point(15, 0, 7), c.MulTuple(p3))

	assertTuple(t, Point(15, 0, 7), c.Mul(b).Mul(a).MulTuple(p))
	assertTuple(t, Point(15, 0, 7), Chain(a, b, c).MulTuple(p))
}

func TestViewTransform(t *testing.T) {
	t.Run("default orientation", func(t *testing.T) {
		m := ViewTransform(Point(0, 0, 0), Point(0, 0, -1), Vector(0, 1, 0))
		assert.True(t, m.ApproxEqual(Identity()))
	})

	t.Run("looking in positive z", func(t *testing.T) {
		m := ViewTransform(Point(0, 0, 0), Point(0, 0, 1), Vector(0, 1, 0))
		assert.True(t, m.ApproxEqual(Scaling(-1, 1, -1)))
	})

	t.Run("moves the world", func(t *testing.T) {
		m := ViewTransform(Point(0, 0, 8), Point(0, 0, 0), Vector(0, 1, 0))
		assert.True(t, m.ApproxEqual(Translation(0, 0, -8)))
	})

	t.Run("arbitrary", func(t *testing.T) {
		m := ViewTransform(Point(1, 3, 2), Point(4, -2, 8), Vector(1, 1, 0))
		expected := [4][4]float64{
			{-0.50709, 0.50709, 0.67612, -2.36643},
			{0.76772, 0.60609, 0.12122, -2.82843},
			{-0.35857, 0.59761, -0.71714, 0.00000},
			{0.00000, 0.00000, 0.00000, 1.00000},
		}
		for row := 0; row < 4; row++ {
			for col := 0; col < 4; col++ {
				assert.InDelta(t, expected[row][col], m.At(row, col), 1e-4, "element (%d,%d)", row, col)
			}
		}
	})
}
