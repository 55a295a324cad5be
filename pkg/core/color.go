package core

import "math"

// Color is an additive RGB color. Components are unbounded real values;
// clamping to a displayable range happens only at export time.
type Color struct {
	R, G, B float64
}

// Black is the zero color, returned wherever a ray contributes nothing
var Black = Color{0, 0, 0}

// White is full-intensity white
var White = Color{1, 1, 1}

// NewColor creates a new color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Add returns the component-wise sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Subtract returns the component-wise difference of two colors
func (c Color) Subtract(other Color) Color {
	return Color{c.R - other.R, c.G - other.G, c.B - other.B}
}

// Multiply returns the color scaled by a scalar
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// MultiplyColor returns the Hadamard (component-wise) product of two colors
func (c Color) MultiplyColor(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Equals returns true if all components match within Epsilon
func (c Color) Equals(other Color) bool {
	return math.Abs(c.R-other.R) < Epsilon &&
		math.Abs(c.G-other.G) < Epsilon &&
		math.Abs(c.B-other.B) < Epsilon
}
