package world

import (
	"math"

	"github.com/saveriomiroddi/ray-tracer-challenge-completed/pkg/core"
	"github.com/saveriomiroddi/ray-tracer-challenge-completed/pkg/geometry"
	"github.com/saveriomiroddi/ray-tracer-challenge-completed/pkg/material"
)

// World is a flat collection of top-level shapes and one point light.
// Nested scene structure lives inside Groups, not here. A world is
// read-only during rendering and safe to share across render workers.
type World struct {
	Objects []geometry.Shape
	Light   material.PointLight
}

// New creates an empty world with a white light at the origin
func New() *World {
	return &World{
		Light: material.NewPointLight(core.NewPoint(0, 0, 0), core.White),
	}
}

// AddObject appends a top-level shape
func (w *World) AddObject(s geometry.Shape) {
	w.Objects = append(w.Objects, s)
}

// Intersections returns the union of every object's intersections with
// the ray, unsorted; geometry.Hit imposes the ordering when a visible hit
// is selected
func (w *World) Intersections(ray core.Ray) []geometry.Intersection {
	var xs []geometry.Intersection
	for _, object := range w.Objects {
		xs = append(xs, geometry.Intersect(object, ray)...)
	}
	return xs
}

// ColorAt returns the color seen along the ray: black when nothing is
// hit, otherwise the shaded color of the nearest positive-t intersection.
// remaining is the reflection/refraction bounce budget.
func (w *World) ColorAt(ray core.Ray, remaining int) core.Color {
	xs := w.Intersections(ray)

	hit, found := geometry.Hit(xs)
	if !found {
		return core.Black
	}

	comps := PrepareComputations(hit, ray, xs)
	return w.ShadeHit(comps, remaining)
}

// ShadeHit combines the surface's Phong lighting with the recursive
// reflected and refracted contributions. When a material is both
// reflective and transparent the two are blended by the Schlick
// reflectance instead of added outright.
func (w *World) ShadeHit(comps Computations, remaining int) core.Color {
	shadowed := w.IsShadowed(comps.OverPoint)

	surface := geometry.Lighting(
		comps.Object, w.Light,
		comps.OverPoint, comps.EyeV, comps.NormalV,
		shadowed,
	)

	reflected := w.ReflectedColor(comps, remaining)
	refracted := w.RefractedColor(comps, remaining)

	m := comps.Object.Material()
	if m.Reflective > 0 && m.Transparency > 0 {
		reflectance := Schlick(comps)
		return surface.
			Add(reflected.Multiply(reflectance)).
			Add(refracted.Multiply(1 - reflectance))
	}

	return surface.Add(reflected).Add(refracted)
}

// IsShadowed tests whether any shape blocks the segment between the point
// and the light: a hit with t strictly between zero and the light
// distance puts the point in shadow
func (w *World) IsShadowed(point core.Tuple) bool {
	toLight := w.Light.Position.Subtract(point)
	distance := toLight.Magnitude()

	ray := core.NewRay(point, toLight.Normalize())
	xs := w.Intersections(ray)

	hit, found := geometry.Hit(xs)
	return found && hit.T < distance
}

// ReflectedColor returns the color contributed by the reflection ray. At
// bounce budget zero, or on a non-reflective material, it returns black
// without recursing; the fixed budget is what bounds recursion depth.
func (w *World) ReflectedColor(comps Computations, remaining int) core.Color {
	if remaining <= 0 {
		return core.Black
	}

	reflective := comps.Object.Material().Reflective
	if reflective == 0 {
		return core.Black
	}

	reflectRay := core.NewRay(comps.OverPoint, comps.ReflectV)
	color := w.ColorAt(reflectRay, remaining-1)

	return color.Multiply(reflective)
}

// RefractedColor returns the color contributed by the refraction ray,
// black at budget zero or on an opaque material. Total internal
// reflection (Snell ratio squared sine above 1) also contributes black.
func (w *World) RefractedColor(comps Computations, remaining int) core.Color {
	if remaining <= 0 {
		return core.Black
	}

	transparency := comps.Object.Material().Transparency
	if transparency == 0 {
		return core.Black
	}

	nRatio := comps.N1 / comps.N2
	cosI := comps.EyeV.Dot(comps.NormalV)
	sin2T := nRatio * nRatio * (1 - cosI*cosI)
	if sin2T > 1 {
		return core.Black
	}

	cosT := math.Sqrt(1 - sin2T)
	direction := comps.NormalV.Multiply(nRatio*cosI - cosT).
		Subtract(comps.EyeV.Multiply(nRatio))

	refractRay := core.NewRay(comps.UnderPoint, direction)
	color := w.ColorAt(refractRay, remaining-1)

	return color.Multiply(transparency)
}
