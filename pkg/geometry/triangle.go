package geometry

import (
	"math"

	"github.com/saveriomiroddi/ray-tracer-challenge-completed/pkg/core"
)

// Triangle is a flat triangle with a single precomputed face normal. The
// edge vectors are precomputed once at construction since every
// intersection test needs them.
type Triangle struct {
	shapeBase
	P1, P2, P3 core.Tuple
	E1, E2     core.Tuple
	Normal     core.Tuple
}

// NewTriangle creates a triangle from its three corner points
func NewTriangle(p1, p2, p3 core.Tuple) *Triangle {
	e1 := p2.Subtract(p1)
	e2 := p3.Subtract(p1)

	return &Triangle{
		shapeBase: newShapeBase(),
		P1:        p1,
		P2:        p2,
		P3:        p3,
		E1:        e1,
		E2:        e2,
		Normal:    e2.Cross(e1).Normalize(),
	}
}

// mollerTrumbore runs the Möller-Trumbore intersection test against the
// triangle defined by p1/e1/e2, returning (t, u, v, hit). Rays parallel
// to the triangle plane, and degenerate triangles, report a miss through
// the near-zero determinant.
func mollerTrumbore(ray core.Ray, p1, e1, e2 core.Tuple) (t, u, v float64, ok bool) {
	dirCrossE2 := ray.Direction.Cross(e2)
	determinant := e1.Dot(dirCrossE2)
	if math.Abs(determinant) < core.Epsilon {
		return 0, 0, 0, false
	}

	f := 1.0 / determinant
	p1ToOrigin := ray.Origin.Subtract(p1)

	u = f * p1ToOrigin.Dot(dirCrossE2)
	if u < 0 || u > 1 {
		return 0, 0, 0, false
	}

	originCrossE1 := p1ToOrigin.Cross(e1)
	v = f * ray.Direction.Dot(originCrossE1)
	if v < 0 || u+v > 1 {
		return 0, 0, 0, false
	}

	t = f * e2.Dot(originCrossE1)
	return t, u, v, true
}

// LocalIntersections returns the single Möller-Trumbore crossing, carrying
// the barycentric (u, v) along for consistency with smooth triangles
func (tr *Triangle) LocalIntersections(ray core.Ray) []Intersection {
	t, u, v, ok := mollerTrumbore(ray, tr.P1, tr.E1, tr.E2)
	if !ok {
		return nil
	}
	return []Intersection{NewIntersectionUV(t, u, v, tr)}
}

// LocalNormal is the precomputed face normal, identical everywhere
func (tr *Triangle) LocalNormal(_ core.Tuple, _ Intersection) core.Tuple {
	return tr.Normal
}

// LocalBounds encloses the three corners
func (tr *Triangle) LocalBounds() Bounds {
	return EmptyBounds().Add(tr.P1).Add(tr.P2).Add(tr.P3)
}

// SmoothTriangle is a triangle with per-vertex normals, interpolated
// across the face via the intersection's barycentric coordinates
type SmoothTriangle struct {
	shapeBase
	P1, P2, P3 core.Tuple
	N1, N2, N3 core.Tuple
	E1, E2     core.Tuple
}

// NewSmoothTriangle creates a triangle with per-vertex normals
func NewSmoothTriangle(p1, p2, p3, n1, n2, n3 core.Tuple) *SmoothTriangle {
	return &SmoothTriangle{
		shapeBase: newShapeBase(),
		P1:        p1,
		P2:        p2,
		P3:        p3,
		N1:        n1,
		N2:        n2,
		N3:        n3,
		E1:        p2.Subtract(p1),
		E2:        p3.Subtract(p1),
	}
}

// LocalIntersections runs the same Möller-Trumbore test as the flat
// triangle; (u, v) on the intersection is what the normal interpolation
// consumes later
func (tr *SmoothTriangle) LocalIntersections(ray core.Ray) []Intersection {
	t, u, v, ok := mollerTrumbore(ray, tr.P1, tr.E1, tr.E2)
	if !ok {
		return nil
	}
	return []Intersection{NewIntersectionUV(t, u, v, tr)}
}

// LocalNormal interpolates the vertex normals with the hit's barycentric
// weights
func (tr *SmoothTriangle) LocalNormal(_ core.Tuple, hit Intersection) core.Tuple {
	return tr.N2.Multiply(hit.U).
		Add(tr.N3.Multiply(hit.V)).
		Add(tr.N1.Multiply(1 - hit.U - hit.V))
}

// LocalBounds encloses the three corners
func (tr *SmoothTriangle) LocalBounds() Bounds {
	return EmptyBounds().Add(tr.P1).Add(tr.P2).Add(tr.P3)
}
