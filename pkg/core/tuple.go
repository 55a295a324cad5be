package core

import "math"

// Epsilon is the tolerance used for all floating point comparisons in the
// engine, including the surface offset applied to shadow and refraction
// rays. Tuple/matrix/color equality is always within Epsilon, never bitwise.
const Epsilon = 1e-5

// Tuple is a homogeneous 4-component value. W=1 marks a point, W=0 marks a
// vector. Operations that mix the two incorrectly (e.g. adding two points)
// are not rejected; keeping the semantics straight is the caller's job.
type Tuple struct {
	X, Y, Z, W float64
}

// NewPoint creates a tuple with W=1
func NewPoint(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 1}
}

// NewVector creates a tuple with W=0
func NewVector(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 0}
}

// IsPoint returns true if the tuple is a point (W=1)
func (t Tuple) IsPoint() bool {
	return t.W == 1
}

// IsVector returns true if the tuple is a vector (W=0)
func (t Tuple) IsVector() bool {
	return t.W == 0
}

// Add returns the component-wise sum of two tuples
func (t Tuple) Add(other Tuple) Tuple {
	return Tuple{t.X + other.X, t.Y + other.Y, t.Z + other.Z, t.W + other.W}
}

// Subtract returns the component-wise difference of two tuples
func (t Tuple) Subtract(other Tuple) Tuple {
	return Tuple{t.X - other.X, t.Y - other.Y, t.Z - other.Z, t.W - other.W}
}

// Negate returns the tuple with every component negated
func (t Tuple) Negate() Tuple {
	return Tuple{-t.X, -t.Y, -t.Z, -t.W}
}

// Multiply returns the tuple scaled by a scalar
func (t Tuple) Multiply(scalar float64) Tuple {
	return Tuple{t.X * scalar, t.Y * scalar, t.Z * scalar, t.W * scalar}
}

// Divide returns the tuple divided by a scalar
func (t Tuple) Divide(scalar float64) Tuple {
	return Tuple{t.X / scalar, t.Y / scalar, t.Z / scalar, t.W / scalar}
}

// Magnitude returns the Euclidean norm over all 4 components
func (t Tuple) Magnitude() float64 {
	return math.Sqrt(t.X*t.X + t.Y*t.Y + t.Z*t.Z + t.W*t.W)
}

// Normalize returns the tuple scaled to magnitude 1. A zero tuple is
// returned unchanged; callers must not rely on normalizing a zero vector.
func (t Tuple) Normalize() Tuple {
	magnitude := t.Magnitude()
	if magnitude == 0 {
		return t
	}
	return t.Divide(magnitude)
}

// Dot returns the dot product over all 4 components
func (t Tuple) Dot(other Tuple) float64 {
	return t.X*other.X + t.Y*other.Y + t.Z*other.Z + t.W*other.W
}

// Cross returns the 3-component cross product as a vector; W is ignored
func (t Tuple) Cross(other Tuple) Tuple {
	return NewVector(
		t.Y*other.Z-t.Z*other.Y,
		t.Z*other.X-t.X*other.Z,
		t.X*other.Y-t.Y*other.X,
	)
}

// Reflect returns the tuple reflected about the given normal
func (t Tuple) Reflect(normal Tuple) Tuple {
	return t.Subtract(normal.Multiply(2 * t.Dot(normal)))
}

// Equals returns true if all components match within Epsilon
func (t Tuple) Equals(other Tuple) bool {
	return math.Abs(t.X-other.X) < Epsilon &&
		math.Abs(t.Y-other.Y) < Epsilon &&
		math.Abs(t.Z-other.Z) < Epsilon &&
		math.Abs(t.W-other.W) < Epsilon
}
