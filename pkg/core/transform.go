package core

import "math"

// Axis selects a rotation axis
type Axis int

// Rotation axes
const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Translation returns a transform that moves points by (x, y, z). Vectors
// are unaffected (their W=0 drops the translation column).
func Translation(x, y, z float64) Matrix {
	return NewMatrix(
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	)
}

// Scaling returns a transform that scales each axis independently
func Scaling(x, y, z float64) Matrix {
	return NewMatrix(
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	)
}

// Rotation returns a transform that rotates by r radians about the given
// axis, following the left-hand rule
func Rotation(axis Axis, r float64) Matrix {
	cosR, sinR := math.Cos(r), math.Sin(r)

	switch axis {
	case AxisX:
		return NewMatrix(
			1, 0, 0, 0,
			0, cosR, -sinR, 0,
			0, sinR, cosR, 0,
			0, 0, 0, 1,
		)
	case AxisY:
		return NewMatrix(
			cosR, 0, sinR, 0,
			0, 1, 0, 0,
			-sinR, 0, cosR, 0,
			0, 0, 0, 1,
		)
	default:
		return NewMatrix(
			cosR, -sinR, 0, 0,
			sinR, cosR, 0, 0,
			0, 0, 1, 0,
			0, 0, 0, 1,
		)
	}
}

// Shearing returns a transform where each coordinate changes in proportion
// to the other two; xy is the proportion of x moved per unit of y, and so
// on for the remaining five coefficients.
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix {
	return NewMatrix(
		1, xy, xz, 0,
		yx, 1, yz, 0,
		zx, zy, 1, 0,
		0, 0, 0, 1,
	)
}

// ViewTransform builds the world-to-camera orientation and translation
// from the eye position, the target point and the up hint, via the
// forward/left/true-up cross products.
func ViewTransform(from, to, up Tuple) Matrix {
	forward := to.Subtract(from).Normalize()
	left := forward.Cross(up.Normalize())
	trueUp := left.Cross(forward)

	orientation := NewMatrix(
		left.X, left.Y, left.Z, 0,
		trueUp.X, trueUp.Y, trueUp.Z, 0,
		-forward.X, -forward.Y, -forward.Z, 0,
		0, 0, 0, 1,
	)

	return orientation.Multiply(Translation(-from.X, -from.Y, -from.Z))
}

// Fluent builders. The chain reads in application order: the transform
// named first is applied first, so m.Scale(...).Translate(...) scales and
// then translates. That means each call multiplies the new transform on
// the left.

// Translate applies a translation after the transforms already in m
func (m Matrix) Translate(x, y, z float64) Matrix {
	return Translation(x, y, z).Multiply(m)
}

// Scale applies a scaling after the transforms already in m
func (m Matrix) Scale(x, y, z float64) Matrix {
	return Scaling(x, y, z).Multiply(m)
}

// Rotate applies a rotation after the transforms already in m
func (m Matrix) Rotate(axis Axis, r float64) Matrix {
	return Rotation(axis, r).Multiply(m)
}

// Shear applies a shearing after the transforms already in m
func (m Matrix) Shear(xy, xz, yx, yz, zx, zy float64) Matrix {
	return Shearing(xy, xz, yx, yz, zx, zy).Multiply(m)
}
