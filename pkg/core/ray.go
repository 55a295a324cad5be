package core

// Ray is a half-line with an origin point and a direction vector
type Ray struct {
	Origin    Tuple
	Direction Tuple
}

// NewRay creates a new ray
func NewRay(origin, direction Tuple) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// Position returns the point at parameter t along the ray
func (r Ray) Position(t float64) Tuple {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Transform returns the ray with both origin and direction transformed by
// m. The direction is deliberately not renormalized: keeping its scaled
// length is what makes t values comparable across coordinate spaces.
func (r Ray) Transform(m Matrix) Ray {
	return Ray{
		Origin:    m.MultiplyTuple(r.Origin),
		Direction: m.MultiplyTuple(r.Direction),
	}
}
