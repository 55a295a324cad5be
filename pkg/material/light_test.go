package material

import (
	"testing"

	"github.com/saveriomiroddi/ray-tracer-challenge-completed/pkg/core"
)

func TestNewPointLight(t *testing.T) {
	position := core.NewPoint(0, 0, 0)
	intensity := core.NewColor(1, 1, 1)

	light := NewPointLight(position, intensity)

	if !light.Position.Equals(position) {
		t.Errorf("Unexpected position: %+v", light.Position)
	}
	if !light.Intensity.Equals(intensity) {
		t.Errorf("Unexpected intensity: %+v", light.Intensity)
	}
}
