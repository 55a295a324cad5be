package geometry

import (
	"math"

	"github.com/saveriomiroddi/ray-tracer-challenge-completed/pkg/core"
)

// Cube is the axis-aligned unit cube spanning [-1, 1] on every axis
type Cube struct {
	shapeBase
}

// NewCube creates a unit cube with the identity transform and the default
// material
func NewCube() *Cube {
	return &Cube{shapeBase: newShapeBase()}
}

// checkAxis computes the t values where the ray crosses the two parallel
// faces perpendicular to one axis. A near-zero direction component would
// blow up the division, so the bounds are pushed to ±infinity by
// multiplying instead.
func checkAxis(origin, direction float64) (tMin, tMax float64) {
	tMinNumerator := -1 - origin
	tMaxNumerator := 1 - origin

	if math.Abs(direction) >= core.Epsilon {
		tMin = tMinNumerator / direction
		tMax = tMaxNumerator / direction
	} else {
		tMin = tMinNumerator * math.Inf(1)
		tMax = tMaxNumerator * math.Inf(1)
	}

	if tMin > tMax {
		tMin, tMax = tMax, tMin
	}
	return tMin, tMax
}

// LocalIntersections intersects each pair of opposing faces and keeps the
// overlap: the entry is the largest per-axis minimum and the exit the
// smallest per-axis maximum. Entry past exit means a miss; otherwise both
// are returned, which also covers rays originating inside the cube.
func (c *Cube) LocalIntersections(ray core.Ray) []Intersection {
	xtMin, xtMax := checkAxis(ray.Origin.X, ray.Direction.X)
	ytMin, ytMax := checkAxis(ray.Origin.Y, ray.Direction.Y)
	ztMin, ztMax := checkAxis(ray.Origin.Z, ray.Direction.Z)

	tMin := math.Max(xtMin, math.Max(ytMin, ztMin))
	tMax := math.Min(xtMax, math.Min(ytMax, ztMax))

	if tMin > tMax {
		return nil
	}

	return []Intersection{
		NewIntersection(tMin, c),
		NewIntersection(tMax, c),
	}
}

// LocalNormal picks the face whose coordinate has the largest absolute
// value; corners and edges resolve to the x face first, then y
func (c *Cube) LocalNormal(point core.Tuple, _ Intersection) core.Tuple {
	maxC := math.Max(math.Abs(point.X), math.Max(math.Abs(point.Y), math.Abs(point.Z)))

	switch maxC {
	case math.Abs(point.X):
		return core.NewVector(point.X, 0, 0)
	case math.Abs(point.Y):
		return core.NewVector(0, point.Y, 0)
	default:
		return core.NewVector(0, 0, point.Z)
	}
}

// LocalBounds is the cube itself
func (c *Cube) LocalBounds() Bounds {
	return NewBounds(core.NewPoint(-1, -1, -1), core.NewPoint(1, 1, 1))
}
