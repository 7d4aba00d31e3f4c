package core

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrNotInvertible is returned when inverting a singular matrix
var ErrNotInvertible = errors.New("matrix is not invertible")

// singularThreshold bounds |det| relative to the product of the row
// lengths (Hadamard's bound), so the test does not depend on scale
const singularThreshold = 1e-12

// Matrix is a 4x4 affine transform. It wraps mgl64.Mat4 (column-major
// storage) and is passed by value.
type Matrix struct {
	m mgl64.Mat4
}

// Identity returns the identity transform
func Identity() Matrix {
	return Matrix{m: mgl64.Ident4()}
}

// NewMatrix builds a matrix from row-major values
func NewMatrix(rows [4][4]float64) Matrix {
	return Matrix{m: mgl64.Mat4FromRows(
		mgl64.Vec4(rows[0]),
		mgl64.Vec4(rows[1]),
		mgl64.Vec4(rows[2]),
		mgl64.Vec4(rows[3]),
	)}
}

// At returns the element at the given row and column
func (a Matrix) At(row, col int) float64 {
	return a.m.At(row, col)
}

// Mul returns a*b. Applied to a tuple, b acts first.
func (a Matrix) Mul(b Matrix) Matrix {
	return Matrix{m: a.m.Mul4(b.m)}
}

// MulTuple transforms a point or vector
func (a Matrix) MulTuple(t Tuple) Tuple {
	v := a.m.Mul4x1(mgl64.Vec4{t.X, t.Y, t.Z, t.W})
	return Tuple{X: v[0], Y: v[1], Z: v[2], W: v[3]}
}

// Transpose swaps rows and columns
func (a Matrix) Transpose() Matrix {
	return Matrix{m: a.m.Transpose()}
}

// Determinant returns the determinant of the matrix
func (a Matrix) Determinant() float64 {
	return a.m.Det()
}

// IsInvertible reports whether the matrix has an inverse. A uniformly
// tiny scaling is invertible; a matrix with dependent rows is not. For
// affine transforms only the linear part is measured, so a large
// translation does not mask a small but valid scale.
func (a Matrix) IsInvertible() bool {
	if a.isAffine() {
		lin := a.m.Mat3()
		bound := lin.Row(0).Len() * lin.Row(1).Len() * lin.Row(2).Len()
		return nonSingular(lin.Det(), bound)
	}
	bound := 1.0
	for r := 0; r < 4; r++ {
		bound *= a.m.Row(r).Len()
	}
	return nonSingular(a.m.Det(), bound)
}

func nonSingular(det, bound float64) bool {
	return det != 0 && math.Abs(det) > singularThreshold*bound
}

// Inverse returns the inverse matrix or ErrNotInvertible
func (a Matrix) Inverse() (Matrix, error) {
	if !a.IsInvertible() {
		return Matrix{}, ErrNotInvertible
	}
	if a.isAffine() {
		return a.affineInverse(), nil
	}
	inv := a.m.Inv()
	if inv == (mgl64.Mat4{}) {
		return Matrix{}, ErrNotInvertible
	}
	return Matrix{m: inv}, nil
}

// affineInverse inverts the linear part after normalizing it to unit
// magnitude, since mgl64 treats determinants below 1e-20 as zero. The
// result keeps a bottom row of exactly (0, 0, 0, 1).
func (a Matrix) affineInverse() Matrix {
	lin := a.m.Mat3()
	s := 0.0
	for _, v := range lin {
		s = math.Max(s, math.Abs(v))
	}
	linInv := lin.Mul(1 / s).Inv().Mul(1 / s)
	t := linInv.Mul3x1(mgl64.Vec3{a.m[12], a.m[13], a.m[14]}).Mul(-1)

	inv := linInv.Mat4()
	inv[12], inv[13], inv[14] = t[0], t[1], t[2]
	return Matrix{m: inv}
}

func (a Matrix) isAffine() bool {
	return a.m[3] == 0 && a.m[7] == 0 && a.m[11] == 0 && a.m[15] == 1
}

// MustInverse returns the inverse matrix and panics if there is none.
// Shapes, patterns and cameras use it: a singular placement is a
// programming error, not a recoverable condition.
func (a Matrix) MustInverse() Matrix {
	inv, err := a.Inverse()
	if err != nil {
		panic(fmt.Sprintf("%v: %v", err, a))
	}
	return inv
}

// ApproxEqual compares every element within Epsilon
func (a Matrix) ApproxEqual(b Matrix) bool {
	for i := range a.m {
		if !ApproxEqual(a.m[i], b.m[i]) {
			return false
		}
	}
	return true
}

func (a Matrix) String() string {
	return fmt.Sprintf("[%v %v %v %v]", a.m.Row(0), a.m.Row(1), a.m.Row(2), a.m.Row(3))
}
