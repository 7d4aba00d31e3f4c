package core

import "github.com/go-gl/mathgl/mgl64"

// Translation moves points by (x, y, z); vectors are unaffected
func Translation(x, y, z float64) Matrix {
	return Matrix{m: mgl64.Translate3D(x, y, z)}
}

// Scaling scales along each axis
func Scaling(x, y, z float64) Matrix {
	return Matrix{m: mgl64.Scale3D(x, y, z)}
}

// RotationX rotates around the X axis (right-handed)
func RotationX(radians float64) Matrix {
	return Matrix{m: mgl64.HomogRotate3DX(radians)}
}

// RotationY rotates around the Y axis (right-handed)
func RotationY(radians float64) Matrix {
	return Matrix{m: mgl64.HomogRotate3DY(radians)}
}

// RotationZ rotates around the Z axis (right-handed)
func RotationZ(radians float64) Matrix {
	return Matrix{m: mgl64.HomogRotate3DZ(radians)}
}

// Shearing moves each component in proportion to the other two.
// xy is "x moved in proportion to y", and so on.
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix {
	return NewMatrix([4][4]float64{
		{1, xy, xz, 0},
		{yx, 1, yz, 0},
		{zx, zy, 1, 0},
		{0, 0, 0, 1},
	})
}

// Chain composes transforms in application order: the first argument is
// applied first. Chain(a, b, c) == c.Mul(b).Mul(a).
func Chain(transforms ...Matrix) Matrix {
	result := Identity()
	for _, t := range transforms {
		result = t.Mul(result)
	}
	return result
}

// ViewTransform orients the world relative to an eye at from looking at to.
func ViewTransform(from, to, up Tuple) Matrix {
	forward := to.Subtract(from).Normalize()
	left := forward.Cross(up.Normalize())
	trueUp := left.Cross(forward)

	orientation := NewMatrix([4][4]float64{
		{left.X, left.Y, left.Z, 0},
		{trueUp.X, trueUp.Y, trueUp.Z, 0},
		{-forward.X, -forward.Y, -forward.Z, 0},
		{0, 0, 0, 1},
	})
	return orientation.Mul(Translation(-from.X, -from.Y, -from.Z))
}
