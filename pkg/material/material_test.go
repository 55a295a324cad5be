package material

import (
	"math"
	"testing"

	"github.com/saveriomiroddi/ray-tracer-challenge-completed/pkg/core"
)

func TestDefault(t *testing.T) {
	m := Default()

	if !m.Color.Equals(core.White) {
		t.Errorf("Expected white default color, got %+v", m.Color)
	}
	if m.Ambient != 0.1 || m.Diffuse != 0.9 || m.Specular != 0.9 || m.Shininess != 200.0 {
		t.Errorf("Unexpected default Phong attributes: %+v", m)
	}
	if m.Reflective != 0.0 || m.Transparency != 0.0 || m.RefractiveIndex != 1.0 {
		t.Errorf("Unexpected default reflection/refraction attributes: %+v", m)
	}
}

func TestLighting(t *testing.T) {
	position := core.NewPoint(0, 0, 0)

	tests := []struct {
		name     string
		eyeV     core.Tuple
		normalV  core.Tuple
		light    PointLight
		inShadow bool
		expected core.Color
	}{
		{
			name:     "eye between light and surface",
			eyeV:     core.NewVector(0, 0, -1),
			normalV:  core.NewVector(0, 0, -1),
			light:    NewPointLight(core.NewPoint(0, 0, -10), core.White),
			expected: core.Color{R: 1.9, G: 1.9, B: 1.9},
		},
		{
			name:     "eye offset 45 degrees",
			eyeV:     core.NewVector(0, math.Sqrt2/2, -math.Sqrt2/2),
			normalV:  core.NewVector(0, 0, -1),
			light:    NewPointLight(core.NewPoint(0, 0, -10), core.White),
			expected: core.Color{R: 1.0, G: 1.0, B: 1.0},
		},
		{
			name:     "light offset 45 degrees",
			eyeV:     core.NewVector(0, 0, -1),
			normalV:  core.NewVector(0, 0, -1),
			light:    NewPointLight(core.NewPoint(0, 10, -10), core.White),
			expected: core.Color{R: 0.7364, G: 0.7364, B: 0.7364},
		},
		{
			name:     "eye in the path of the reflection vector",
			eyeV:     core.NewVector(0, -math.Sqrt2/2, -math.Sqrt2/2),
			normalV:  core.NewVector(0, 0, -1),
			light:    NewPointLight(core.NewPoint(0, 10, -10), core.White),
			expected: core.Color{R: 1.6364, G: 1.6364, B: 1.6364},
		},
		{
			name:     "light behind the surface",
			eyeV:     core.NewVector(0, 0, -1),
			normalV:  core.NewVector(0, 0, -1),
			light:    NewPointLight(core.NewPoint(0, 0, 10), core.White),
			expected: core.Color{R: 0.1, G: 0.1, B: 0.1},
		},
		{
			name:     "surface in shadow",
			eyeV:     core.NewVector(0, 0, -1),
			normalV:  core.NewVector(0, 0, -1),
			light:    NewPointLight(core.NewPoint(0, 0, -10), core.White),
			inShadow: true,
			expected: core.Color{R: 0.1, G: 0.1, B: 0.1},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			m := Default()

			result := m.Lighting(test.light, position, position, test.eyeV, test.normalV, test.inShadow)
			if !result.Equals(test.expected) {
				t.Errorf("Expected %+v, got %+v", test.expected, result)
			}
		})
	}
}

func TestLighting_WithPattern(t *testing.T) {
	m := Default()
	m.Pattern = NewStripePattern(core.White, core.Black)
	m.Ambient = 1
	m.Diffuse = 0
	m.Specular = 0

	eyeV := core.NewVector(0, 0, -1)
	normalV := core.NewVector(0, 0, -1)
	light := NewPointLight(core.NewPoint(0, 0, -10), core.White)

	c1 := m.Lighting(light, core.NewPoint(0.9, 0, 0), core.NewPoint(0.9, 0, 0), eyeV, normalV, false)
	c2 := m.Lighting(light, core.NewPoint(1.1, 0, 0), core.NewPoint(1.1, 0, 0), eyeV, normalV, false)

	if !c1.Equals(core.White) {
		t.Errorf("Expected white in the first stripe, got %+v", c1)
	}
	if !c2.Equals(core.Black) {
		t.Errorf("Expected black in the second stripe, got %+v", c2)
	}
}

func TestLighting_PatternTransform(t *testing.T) {
	pattern := NewStripePattern(core.White, core.Black)
	pattern.SetTransform(core.Scaling(2, 2, 2))

	m := Default()
	m.Pattern = pattern
	m.Ambient = 1
	m.Diffuse = 0
	m.Specular = 0

	eyeV := core.NewVector(0, 0, -1)
	normalV := core.NewVector(0, 0, -1)
	light := NewPointLight(core.NewPoint(0, 0, -10), core.White)

	// The stripe is stretched to width 2 by the pattern transform
	result := m.Lighting(light, core.NewPoint(1.5, 0, 0), core.NewPoint(1.5, 0, 0), eyeV, normalV, false)
	if !result.Equals(core.White) {
		t.Errorf("Expected white inside the stretched stripe, got %+v", result)
	}
}
