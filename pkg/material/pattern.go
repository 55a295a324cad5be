package material

import (
	"math"

	"github.com/saveriomiroddi/ray-tracer-challenge-completed/pkg/core"
)

// Pattern is a procedural color source. ColorAt receives a point already
// converted into pattern space (object space transformed by the pattern's
// inverse transform), so every pattern can be positioned, scaled and
// rotated independently of its shape.
type Pattern interface {
	Transform() core.Matrix
	ColorAt(point core.Tuple) core.Color
}

// StripePattern alternates two colors in unit-wide bands along the x axis
type StripePattern struct {
	A, B      core.Color
	transform core.Matrix
}

// NewStripePattern creates a stripe pattern with an identity transform
func NewStripePattern(a, b core.Color) *StripePattern {
	return &StripePattern{A: a, B: b, transform: core.Identity(4)}
}

// Transform returns the pattern transform
func (p *StripePattern) Transform() core.Matrix { return p.transform }

// SetTransform replaces the pattern transform
func (p *StripePattern) SetTransform(m core.Matrix) { p.transform = m }

// ColorAt returns A for even floor(x), B for odd
func (p *StripePattern) ColorAt(point core.Tuple) core.Color {
	if math.Mod(math.Floor(point.X), 2) == 0 {
		return p.A
	}
	return p.B
}

// GradientPattern blends linearly from A to B along the x axis
type GradientPattern struct {
	A, B      core.Color
	transform core.Matrix
}

// NewGradientPattern creates a gradient pattern with an identity transform
func NewGradientPattern(a, b core.Color) *GradientPattern {
	return &GradientPattern{A: a, B: b, transform: core.Identity(4)}
}

// Transform returns the pattern transform
func (p *GradientPattern) Transform() core.Matrix { return p.transform }

// SetTransform replaces the pattern transform
func (p *GradientPattern) SetTransform(m core.Matrix) { p.transform = m }

// ColorAt interpolates between A and B using the fractional part of x
func (p *GradientPattern) ColorAt(point core.Tuple) core.Color {
	distance := p.B.Subtract(p.A)
	fraction := point.X - math.Floor(point.X)
	return p.A.Add(distance.Multiply(fraction))
}

// RingPattern alternates two colors in concentric rings on the xz plane
type RingPattern struct {
	A, B      core.Color
	transform core.Matrix
}

// NewRingPattern creates a ring pattern with an identity transform
func NewRingPattern(a, b core.Color) *RingPattern {
	return &RingPattern{A: a, B: b, transform: core.Identity(4)}
}

// Transform returns the pattern transform
func (p *RingPattern) Transform() core.Matrix { return p.transform }

// SetTransform replaces the pattern transform
func (p *RingPattern) SetTransform(m core.Matrix) { p.transform = m }

// ColorAt alternates on the floor of the radial distance from the y axis
func (p *RingPattern) ColorAt(point core.Tuple) core.Color {
	if math.Mod(math.Floor(math.Sqrt(point.X*point.X+point.Z*point.Z)), 2) == 0 {
		return p.A
	}
	return p.B
}

// CheckersPattern alternates two colors in a 3D checkerboard of unit cubes
type CheckersPattern struct {
	A, B      core.Color
	transform core.Matrix
}

// NewCheckersPattern creates a checkers pattern with an identity transform
func NewCheckersPattern(a, b core.Color) *CheckersPattern {
	return &CheckersPattern{A: a, B: b, transform: core.Identity(4)}
}

// Transform returns the pattern transform
func (p *CheckersPattern) Transform() core.Matrix { return p.transform }

// SetTransform replaces the pattern transform
func (p *CheckersPattern) SetTransform(m core.Matrix) { p.transform = m }

// ColorAt alternates on the parity of the summed floors of all three axes
func (p *CheckersPattern) ColorAt(point core.Tuple) core.Color {
	sum := math.Floor(point.X) + math.Floor(point.Y) + math.Floor(point.Z)
	if math.Mod(sum, 2) == 0 {
		return p.A
	}
	return p.B
}
