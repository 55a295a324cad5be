package geometry

import (
	"math"

	"github.com/saveriomiroddi/ray-tracer-challenge-completed/pkg/core"
)

// Plane is the infinite xz plane through the origin
type Plane struct {
	shapeBase
}

// NewPlane creates an xz plane with the identity transform and the default
// material
func NewPlane() *Plane {
	return &Plane{shapeBase: newShapeBase()}
}

// LocalIntersections returns the single crossing of the ray with y=0.
// Rays parallel to the plane, including coplanar ones, produce no hit.
func (p *Plane) LocalIntersections(ray core.Ray) []Intersection {
	if math.Abs(ray.Direction.Y) < core.Epsilon {
		return nil
	}

	t := -ray.Origin.Y / ray.Direction.Y
	return []Intersection{NewIntersection(t, p)}
}

// LocalNormal is constant everywhere on the plane
func (p *Plane) LocalNormal(_ core.Tuple, _ Intersection) core.Tuple {
	return core.NewVector(0, 1, 0)
}

// LocalBounds is unbounded in x and z and flat in y
func (p *Plane) LocalBounds() Bounds {
	return NewBounds(
		core.NewPoint(-boundsLimit, 0, -boundsLimit),
		core.NewPoint(boundsLimit, 0, boundsLimit),
	)
}
