package material

import "github.com/saveriomiroddi/ray-tracer-challenge-completed/pkg/core"

// PointLight is a light source with no size, existing at a single point
// and radiating with the given intensity in every direction
type PointLight struct {
	Position  core.Tuple
	Intensity core.Color
}

// NewPointLight creates a new point light
func NewPointLight(position core.Tuple, intensity core.Color) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}
