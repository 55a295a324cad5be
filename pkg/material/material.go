package material

import (
	"math"

	"github.com/saveriomiroddi/ray-tracer-challenge-completed/pkg/core"
)

// Material holds the Phong shading attributes of a surface, plus the
// reflection/refraction coefficients consumed by the world-level shading
// recursion. An optional pattern overrides the flat color.
type Material struct {
	Color           core.Color
	Ambient         float64
	Diffuse         float64
	Specular        float64
	Shininess       float64
	Reflective      float64
	Transparency    float64
	RefractiveIndex float64
	Pattern         Pattern
}

// Default returns the default material: matte white, opaque,
// non-reflective
func Default() Material {
	return Material{
		Color:           core.White,
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200.0,
		Reflective:      0.0,
		Transparency:    0.0,
		RefractiveIndex: 1.0,
	}
}

// Lighting evaluates the Phong model for a single light. objectPoint is
// the hit point in the shape's object space (patterns are keyed on it, so
// transforming a shape transforms its pattern); worldPoint is the same
// point in world space. When inShadow is set only the ambient term
// contributes.
func (m Material) Lighting(light PointLight, objectPoint, worldPoint, eyeV, normalV core.Tuple, inShadow bool) core.Color {
	color := m.Color
	if m.Pattern != nil {
		patternPoint := m.Pattern.Transform().Inverse().MultiplyTuple(objectPoint)
		color = m.Pattern.ColorAt(patternPoint)
	}

	effectiveColor := color.MultiplyColor(light.Intensity)
	ambient := effectiveColor.Multiply(m.Ambient)

	if inShadow {
		return ambient
	}

	diffuse := core.Black
	specular := core.Black

	lightV := light.Position.Subtract(worldPoint).Normalize()
	lightDotNormal := lightV.Dot(normalV)

	// A negative cosine means the light is on the other side of the surface
	if lightDotNormal >= 0 {
		diffuse = effectiveColor.Multiply(m.Diffuse * lightDotNormal)

		reflectV := lightV.Negate().Reflect(normalV)
		reflectDotEye := reflectV.Dot(eyeV)
		if reflectDotEye > 0 {
			factor := math.Pow(reflectDotEye, m.Shininess)
			specular = light.Intensity.Multiply(m.Specular * factor)
		}
	}

	return ambient.Add(diffuse).Add(specular)
}
