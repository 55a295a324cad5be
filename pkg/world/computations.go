package world

import (
	"math"

	"github.com/saveriomiroddi/ray-tracer-challenge-completed/pkg/core"
	"github.com/saveriomiroddi/ray-tracer-challenge-completed/pkg/geometry"
)

// Computations is the shading state derived from a hit: everything
// ShadeHit and the reflection/refraction recursion need, computed once.
// OverPoint and UnderPoint are the hit point nudged along the normal (out
// of and into the surface respectively) so that shadow and refraction rays
// do not immediately re-intersect the surface they start on.
type Computations struct {
	T          float64
	Object     geometry.Shape
	Point      core.Tuple
	OverPoint  core.Tuple
	UnderPoint core.Tuple
	EyeV       core.Tuple
	NormalV    core.Tuple
	ReflectV   core.Tuple
	Inside     bool
	N1, N2     float64
}

// PrepareComputations builds the shading state for the given hit. xs is
// the full intersection list for the ray, sorted ascending by t; the
// refractive indices on both sides of the hit (N1 entering from, N2
// exiting into) are found by walking the list and tracking which shapes
// currently contain the ray.
func PrepareComputations(hit geometry.Intersection, ray core.Ray, xs []geometry.Intersection) Computations {
	comps := Computations{
		T:      hit.T,
		Object: hit.Object,
	}

	comps.Point = ray.Position(hit.T)
	comps.EyeV = ray.Direction.Negate()
	comps.NormalV = geometry.NormalAt(hit.Object, comps.Point, hit)

	if comps.NormalV.Dot(comps.EyeV) < 0 {
		comps.Inside = true
		comps.NormalV = comps.NormalV.Negate()
	}

	comps.ReflectV = ray.Direction.Reflect(comps.NormalV)

	offset := comps.NormalV.Multiply(core.Epsilon)
	comps.OverPoint = comps.Point.Add(offset)
	comps.UnderPoint = comps.Point.Subtract(offset)

	comps.N1, comps.N2 = refractiveIndices(hit, xs)

	return comps
}

// refractiveIndices walks the sorted intersection list up to the hit,
// maintaining the stack of shapes the ray is currently inside of
func refractiveIndices(hit geometry.Intersection, xs []geometry.Intersection) (n1, n2 float64) {
	n1, n2 = 1.0, 1.0

	var containers []geometry.Shape

	for _, x := range xs {
		if x == hit {
			if len(containers) > 0 {
				n1 = containers[len(containers)-1].Material().RefractiveIndex
			}
		}

		if i := indexOfShape(containers, x.Object); i >= 0 {
			containers = append(containers[:i], containers[i+1:]...)
		} else {
			containers = append(containers, x.Object)
		}

		if x == hit {
			if len(containers) > 0 {
				n2 = containers[len(containers)-1].Material().RefractiveIndex
			}
			break
		}
	}

	return n1, n2
}

func indexOfShape(shapes []geometry.Shape, s geometry.Shape) int {
	for i, candidate := range shapes {
		if candidate == s {
			return i
		}
	}
	return -1
}

// Schlick approximates the Fresnel reflectance at the hit: the fraction
// of light that reflects rather than refracts. Returns 1 under total
// internal reflection.
func Schlick(comps Computations) float64 {
	cos := comps.EyeV.Dot(comps.NormalV)

	if comps.N1 > comps.N2 {
		n := comps.N1 / comps.N2
		sin2T := n * n * (1 - cos*cos)
		if sin2T > 1 {
			return 1.0
		}

		// When entering the denser medium the cosine of the refraction
		// angle drives the approximation instead
		cos = math.Sqrt(1 - sin2T)
	}

	r0 := (comps.N1 - comps.N2) / (comps.N1 + comps.N2)
	r0 *= r0

	return r0 + (1-r0)*math.Pow(1-cos, 5)
}
