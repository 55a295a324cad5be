package geometry

import "sort"

// Intersection records a ray/shape crossing at parameter T. U and V hold
// the barycentric surface parametrization when the hit shape is a smooth
// triangle; other shapes leave them zero. Negative T values are valid and
// retained, because the refraction bookkeeping needs intersections behind
// the ray origin; they are only excluded from visible-hit selection.
type Intersection struct {
	T      float64
	U, V   float64
	Object Shape
}

// NewIntersection creates an intersection without surface parametrization
func NewIntersection(t float64, object Shape) Intersection {
	return Intersection{T: t, Object: object}
}

// NewIntersectionUV creates an intersection carrying barycentric (u, v)
func NewIntersectionUV(t, u, v float64, object Shape) Intersection {
	return Intersection{T: t, U: u, V: v, Object: object}
}

// Hit sorts the intersections ascending by T in place and returns the
// first one with strictly positive T. Producers are not required to
// pre-sort; ordering is imposed here, on the consumer side.
func Hit(xs []Intersection) (Intersection, bool) {
	sort.Slice(xs, func(i, j int) bool { return xs[i].T < xs[j].T })

	for _, x := range xs {
		if x.T > 0 {
			return x, true
		}
	}
	return Intersection{}, false
}
