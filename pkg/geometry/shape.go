package geometry

import (
	"github.com/saveriomiroddi/ray-tracer-challenge-completed/pkg/core"
	"github.com/saveriomiroddi/ray-tracer-challenge-completed/pkg/material"
)

// Shape is the capability set every shape variant implements. Only the two
// Local* operations and LocalBounds are geometric; everything else is
// bookkeeping shared through shapeBase. All derived behavior (world-space
// intersection, normals, bounds, lighting) is implemented once as package
// functions against this interface, never per variant.
//
// Shapes are identified by pointer: two Shape values are the same shape
// iff they are the same pointer. A shape tree is built once and is
// read-only during rendering, so shapes may be shared freely across
// render workers.
type Shape interface {
	Transform() core.Matrix
	SetTransform(m core.Matrix)
	Material() material.Material
	SetMaterial(m material.Material)
	Parent() Shape
	SetParent(parent Shape)

	// LocalIntersections tests the ray, already in object space, against
	// the shape's canonical definition. The result is not required to be
	// sorted and may contain negative t values.
	LocalIntersections(ray core.Ray) []Intersection

	// LocalNormal returns the surface normal at an object-space point. The
	// originating intersection is passed along because smooth triangles
	// need its barycentric (u, v); other shapes ignore it.
	LocalNormal(point core.Tuple, hit Intersection) core.Tuple

	// LocalBounds returns the shape's axis-aligned box in object space
	LocalBounds() Bounds
}

// shapeBase carries the state common to every variant. The parent link is
// a non-owning back-reference used only to walk outward for coordinate
// transforms; children never mutate their parent through it.
type shapeBase struct {
	transform core.Matrix
	material  material.Material
	parent    Shape
}

func newShapeBase() shapeBase {
	return shapeBase{
		transform: core.Identity(4),
		material:  material.Default(),
	}
}

// Transform returns the local-to-parent transform
func (b *shapeBase) Transform() core.Matrix { return b.transform }

// SetTransform replaces the local-to-parent transform
func (b *shapeBase) SetTransform(m core.Matrix) { b.transform = m }

// Material returns the shape material
func (b *shapeBase) Material() material.Material { return b.material }

// SetMaterial replaces the shape material
func (b *shapeBase) SetMaterial(m material.Material) { b.material = m }

// Parent returns the owning group, or nil for a root shape
func (b *shapeBase) Parent() Shape { return b.parent }

// SetParent records the owning group. Called by Group when a child is
// added; not intended for any other caller.
func (b *shapeBase) SetParent(parent Shape) { b.parent = parent }

// Intersect transforms the world-space ray into the shape's object space
// and delegates to the variant's local intersection test
func Intersect(s Shape, ray core.Ray) []Intersection {
	localRay := ray.Transform(s.Transform().Inverse())
	return s.LocalIntersections(localRay)
}

// NormalAt computes the world-space surface normal at a world-space point
func NormalAt(s Shape, worldPoint core.Tuple, hit Intersection) core.Tuple {
	localPoint := WorldToObject(s, worldPoint)
	localNormal := s.LocalNormal(localPoint, hit)
	return NormalToWorld(s, localNormal)
}

// WorldToObject converts a world-space point into the shape's object
// space, recursing through the parent chain from the root inward
func WorldToObject(s Shape, point core.Tuple) core.Tuple {
	if parent := s.Parent(); parent != nil {
		point = WorldToObject(parent, point)
	}
	return s.Transform().Inverse().MultiplyTuple(point)
}

// NormalToWorld converts an object-space normal into world space. Normals
// transform by the inverse transpose; the w component is zeroed because a
// normal is a direction, not a point, and the result is renormalized at
// every level on the way out to the root.
func NormalToWorld(s Shape, normal core.Tuple) core.Tuple {
	normal = s.Transform().Inverse().Transpose().MultiplyTuple(normal)
	normal.W = 0
	normal = normal.Normalize()

	if parent := s.Parent(); parent != nil {
		normal = NormalToWorld(parent, normal)
	}
	return normal
}

// BoundsOf returns the shape's local bounds transformed into its parent
// space
func BoundsOf(s Shape) Bounds {
	return s.LocalBounds().Transform(s.Transform())
}

// Includes reports whether obj is s or, when s is a group, one of its
// descendants. Shape equality is identity, not structural.
func Includes(s, obj Shape) bool {
	if group, ok := s.(*Group); ok {
		for _, child := range group.Children() {
			if Includes(child, obj) {
				return true
			}
		}
		return false
	}
	return s == obj
}

// Lighting shades a world-space point on the shape with the given light.
// The point is converted to object space first, so pattern colors follow
// the shape's transform.
func Lighting(s Shape, light material.PointLight, worldPoint, eyeV, normalV core.Tuple, inShadow bool) core.Color {
	objectPoint := WorldToObject(s, worldPoint)
	return s.Material().Lighting(light, objectPoint, worldPoint, eyeV, normalV, inShadow)
}
