package geometry

import (
	"sync"

	"github.com/saveriomiroddi/ray-tracer-challenge-completed/pkg/core"
)

// Group is a composite shape owning an ordered sequence of children. It
// has no surface of its own: intersection queries recurse into the
// children, after a cheap test against the group's cached bounds.
//
// A group must be fully built before rendering starts; the bounds cache
// assumes the children and their transforms stop changing at that point.
type Group struct {
	shapeBase
	children []Shape

	// The cache fill is guarded so that concurrent render workers can
	// share a group whose bounds were never queried during the build
	boundsMu sync.Mutex
	bounds   *Bounds
}

// NewGroup creates an empty group with the identity transform
func NewGroup() *Group {
	return &Group{shapeBase: newShapeBase()}
}

// AddChild appends a child and records this group as its parent
func (g *Group) AddChild(child Shape) {
	child.SetParent(g)
	g.children = append(g.children, child)
	g.bounds = nil
}

// Children returns the child shapes, in insertion order
func (g *Group) Children() []Shape {
	return g.children
}

// LocalIntersections rejects rays that miss the group bounds, then
// concatenates every child's intersections. The result is deliberately
// not sorted; ordering is the consumer's concern.
func (g *Group) LocalIntersections(ray core.Ray) []Intersection {
	if len(g.children) == 0 {
		return nil
	}
	if !g.LocalBounds().Hit(ray) {
		return nil
	}

	var xs []Intersection
	for _, child := range g.children {
		xs = append(xs, Intersect(child, ray)...)
	}
	return xs
}

// LocalNormal is never valid on a group; normals are always computed on
// the leaf shape that was actually hit
func (g *Group) LocalNormal(_ core.Tuple, _ Intersection) core.Tuple {
	panic("a group has no local surface normal")
}

// LocalBounds is the union of the children's transformed bounds, computed
// once and cached
func (g *Group) LocalBounds() Bounds {
	g.boundsMu.Lock()
	defer g.boundsMu.Unlock()

	if g.bounds == nil {
		bounds := EmptyBounds()
		for _, child := range g.children {
			bounds = bounds.Union(BoundsOf(child))
		}
		g.bounds = &bounds
	}
	return *g.bounds
}
