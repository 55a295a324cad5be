package geometry

import (
	"math"

	"github.com/saveriomiroddi/ray-tracer-challenge-completed/pkg/core"
)

// Cylinder is a radius-1 cylinder along the y axis. By default it extends
// to infinity in both directions and is open; Minimum and Maximum truncate
// it (exclusive bounds) and Closed adds cap faces.
type Cylinder struct {
	shapeBase
	Minimum float64
	Maximum float64
	Closed  bool
}

// NewCylinder creates an infinite open cylinder with the identity
// transform and the default material
func NewCylinder() *Cylinder {
	return &Cylinder{
		shapeBase: newShapeBase(),
		Minimum:   math.Inf(-1),
		Maximum:   math.Inf(1),
	}
}

// checkCap reports whether the ray at parameter t lies within the unit
// radius of a cap plane
func checkCap(ray core.Ray, t float64) bool {
	x := ray.Origin.X + t*ray.Direction.X
	z := ray.Origin.Z + t*ray.Direction.Z
	return x*x+z*z <= 1
}

// intersectCaps adds the cap-plane hits for a closed, truncated cylinder.
// A ray parallel to the caps (direction.y near zero) cannot hit them.
func (c *Cylinder) intersectCaps(ray core.Ray, xs []Intersection) []Intersection {
	if !c.Closed || math.Abs(ray.Direction.Y) < core.Epsilon {
		return xs
	}

	t := (c.Minimum - ray.Origin.Y) / ray.Direction.Y
	if checkCap(ray, t) {
		xs = append(xs, NewIntersection(t, c))
	}

	t = (c.Maximum - ray.Origin.Y) / ray.Direction.Y
	if checkCap(ray, t) {
		xs = append(xs, NewIntersection(t, c))
	}

	return xs
}

// LocalIntersections runs the quadratic test against the infinite side
// surface, degenerating to a cap-only test when the ray is parallel to
// the axis, and filters side hits to the (Minimum, Maximum) y range.
func (c *Cylinder) LocalIntersections(ray core.Ray) []Intersection {
	var xs []Intersection

	a := ray.Direction.X*ray.Direction.X + ray.Direction.Z*ray.Direction.Z

	if math.Abs(a) >= core.Epsilon {
		b := 2*ray.Origin.X*ray.Direction.X + 2*ray.Origin.Z*ray.Direction.Z
		cc := ray.Origin.X*ray.Origin.X + ray.Origin.Z*ray.Origin.Z - 1

		discriminant := b*b - 4*a*cc
		if discriminant < 0 {
			return nil
		}

		sqrtD := math.Sqrt(discriminant)
		t0 := (-b - sqrtD) / (2 * a)
		t1 := (-b + sqrtD) / (2 * a)
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		y0 := ray.Origin.Y + t0*ray.Direction.Y
		if c.Minimum < y0 && y0 < c.Maximum {
			xs = append(xs, NewIntersection(t0, c))
		}

		y1 := ray.Origin.Y + t1*ray.Direction.Y
		if c.Minimum < y1 && y1 < c.Maximum {
			xs = append(xs, NewIntersection(t1, c))
		}
	}

	return c.intersectCaps(ray, xs)
}

// LocalNormal distinguishes the caps from the side surface by the radial
// distance of the point and its proximity to the truncation planes
func (c *Cylinder) LocalNormal(point core.Tuple, _ Intersection) core.Tuple {
	dist := point.X*point.X + point.Z*point.Z

	switch {
	case dist < 1 && point.Y >= c.Maximum-core.Epsilon:
		return core.NewVector(0, 1, 0)
	case dist < 1 && point.Y <= c.Minimum+core.Epsilon:
		return core.NewVector(0, -1, 0)
	default:
		return core.NewVector(point.X, 0, point.Z)
	}
}

// LocalBounds clamps unbounded extents to a large finite limit so that
// corner transforms stay well-defined
func (c *Cylinder) LocalBounds() Bounds {
	minY := math.Max(c.Minimum, -boundsLimit)
	maxY := math.Min(c.Maximum, boundsLimit)
	return NewBounds(core.NewPoint(-1, minY, -1), core.NewPoint(1, maxY, 1))
}
