package geometry

import (
	"math"

	"github.com/saveriomiroddi/ray-tracer-challenge-completed/pkg/core"
)

// boundsLimit stands in for infinity in unbounded extents (planes, open
// cylinders). A finite value keeps the 8-corner transform free of
// inf*0 = NaN artifacts under rotation.
const boundsLimit = 1e6

// Bounds is an axis-aligned box in a shape's local object space, used to
// cheaply reject rays before recursing into composite shapes
type Bounds struct {
	Min core.Tuple
	Max core.Tuple
}

// NewBounds creates bounds from min and max corners
func NewBounds(min, max core.Tuple) Bounds {
	return Bounds{Min: min, Max: max}
}

// EmptyBounds returns inverted bounds that any added point will replace
func EmptyBounds() Bounds {
	return Bounds{
		Min: core.NewPoint(math.Inf(1), math.Inf(1), math.Inf(1)),
		Max: core.NewPoint(math.Inf(-1), math.Inf(-1), math.Inf(-1)),
	}
}

// Add extends the bounds to enclose the given point
func (b Bounds) Add(point core.Tuple) Bounds {
	return Bounds{
		Min: core.NewPoint(
			math.Min(b.Min.X, point.X),
			math.Min(b.Min.Y, point.Y),
			math.Min(b.Min.Z, point.Z),
		),
		Max: core.NewPoint(
			math.Max(b.Max.X, point.X),
			math.Max(b.Max.Y, point.Y),
			math.Max(b.Max.Z, point.Z),
		),
	}
}

// Union returns bounds enclosing both b and other
func (b Bounds) Union(other Bounds) Bounds {
	return b.Add(other.Min).Add(other.Max)
}

// Transform returns the enclosing box of the 8 corners of b transformed by
// m. The corners are transformed individually because a box is not
// preserved as a box under arbitrary affine maps such as rotation.
func (b Bounds) Transform(m core.Matrix) Bounds {
	corners := [8]core.Tuple{
		core.NewPoint(b.Min.X, b.Min.Y, b.Min.Z),
		core.NewPoint(b.Min.X, b.Min.Y, b.Max.Z),
		core.NewPoint(b.Min.X, b.Max.Y, b.Min.Z),
		core.NewPoint(b.Min.X, b.Max.Y, b.Max.Z),
		core.NewPoint(b.Max.X, b.Min.Y, b.Min.Z),
		core.NewPoint(b.Max.X, b.Min.Y, b.Max.Z),
		core.NewPoint(b.Max.X, b.Max.Y, b.Min.Z),
		core.NewPoint(b.Max.X, b.Max.Y, b.Max.Z),
	}

	result := EmptyBounds()
	for _, corner := range corners {
		result = result.Add(m.MultiplyTuple(corner))
	}
	return result
}

// Hit tests the ray against the box using the slab method, one axis at a
// time. Near-zero direction components are handled explicitly so the
// parallel case never divides.
func (b Bounds) Hit(ray core.Ray) bool {
	tMin := math.Inf(-1)
	tMax := math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		var min, max, origin, direction float64

		switch axis {
		case 0:
			min, max = b.Min.X, b.Max.X
			origin, direction = ray.Origin.X, ray.Direction.X
		case 1:
			min, max = b.Min.Y, b.Max.Y
			origin, direction = ray.Origin.Y, ray.Direction.Y
		case 2:
			min, max = b.Min.Z, b.Max.Z
			origin, direction = ray.Origin.Z, ray.Direction.Z
		}

		if math.Abs(direction) < core.Epsilon {
			// Parallel to this slab: a hit is only possible if the origin
			// already lies between the two faces
			if origin < min || origin > max {
				return false
			}
			continue
		}

		t1 := (min - origin) / direction
		t2 := (max - origin) / direction
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return false
		}
	}

	return true
}
