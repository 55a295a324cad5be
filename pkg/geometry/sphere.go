package geometry

import (
	"math"

	"github.com/saveriomiroddi/ray-tracer-challenge-completed/pkg/core"
	"github.com/saveriomiroddi/ray-tracer-challenge-completed/pkg/material"
)

// Sphere is the unit sphere centered at the origin; position and size come
// from the shape transform
type Sphere struct {
	shapeBase
}

// NewSphere creates a unit sphere with the identity transform and the
// default material
func NewSphere() *Sphere {
	return &Sphere{shapeBase: newShapeBase()}
}

// NewGlassSphere creates a unit sphere with a fully transparent material
// of refractive index 1.5
func NewGlassSphere() *Sphere {
	s := NewSphere()
	m := material.Default()
	m.Transparency = 1.0
	m.RefractiveIndex = 1.5
	s.SetMaterial(m)
	return s
}

// LocalIntersections solves the quadratic formed by substituting the
// parametric ray into the implicit unit sphere equation. A negative
// discriminant means a miss; otherwise both roots are returned in
// ascending order, equal roots for a tangent.
func (s *Sphere) LocalIntersections(ray core.Ray) []Intersection {
	sphereToRay := ray.Origin.Subtract(core.NewPoint(0, 0, 0))

	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)

	return []Intersection{
		NewIntersection(t1, s),
		NewIntersection(t2, s),
	}
}

// LocalNormal returns the vector from the origin to the point, which on a
// unit sphere is already the unit surface normal
func (s *Sphere) LocalNormal(point core.Tuple, _ Intersection) core.Tuple {
	return point.Subtract(core.NewPoint(0, 0, 0))
}

// LocalBounds returns the unit cube enclosing the unit sphere
func (s *Sphere) LocalBounds() Bounds {
	return NewBounds(core.NewPoint(-1, -1, -1), core.NewPoint(1, 1, 1))
}
