package geometry

import (
	"math"
	"testing"

	"github.com/saveriomiroddi/ray-tracer-challenge-completed/pkg/core"
)

func TestCube_LocalIntersections(t *testing.T) {
	cube := NewCube()

	tests := []struct {
		name      string
		origin    core.Tuple
		direction core.Tuple
		t1, t2    float64
	}{
		{"+x face", core.NewPoint(5, 0.5, 0), core.NewVector(-1, 0, 0), 4, 6},
		{"-x face", core.NewPoint(-5, 0.5, 0), core.NewVector(1, 0, 0), 4, 6},
		{"+y face", core.NewPoint(0.5, 5, 0), core.NewVector(0, -1, 0), 4, 6},
		{"-y face", core.NewPoint(0.5, -5, 0), core.NewVector(0, 1, 0), 4, 6},
		{"+z face", core.NewPoint(0.5, 0, 5), core.NewVector(0, 0, -1), 4, 6},
		{"-z face", core.NewPoint(0.5, 0, -5), core.NewVector(0, 0, 1), 4, 6},
		{"inside", core.NewPoint(0, 0.5, 0), core.NewVector(0, 0, 1), -1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xs := cube.LocalIntersections(core.NewRay(tt.origin, tt.direction))

			if len(xs) != 2 {
				t.Fatalf("Expected 2 intersections, got %d", len(xs))
			}
			if math.Abs(xs[0].T-tt.t1) >= core.Epsilon || math.Abs(xs[1].T-tt.t2) >= core.Epsilon {
				t.Errorf("Expected t values [%f, %f], got [%f, %f]", tt.t1, tt.t2, xs[0].T, xs[1].T)
			}
		})
	}
}

func TestCube_LocalIntersectionsMiss(t *testing.T) {
	cube := NewCube()

	tests := []struct {
		name      string
		origin    core.Tuple
		direction core.Tuple
	}{
		{"diagonal past x", core.NewPoint(-2, 0, 0), core.NewVector(0.2673, 0.5345, 0.8018)},
		{"diagonal past y", core.NewPoint(0, -2, 0), core.NewVector(0.8018, 0.2673, 0.5345)},
		{"diagonal past z", core.NewPoint(0, 0, -2), core.NewVector(0.5345, 0.8018, 0.2673)},
		{"parallel beyond z", core.NewPoint(2, 0, 2), core.NewVector(0, 0, -1)},
		{"parallel beyond y", core.NewPoint(0, 2, 2), core.NewVector(0, -1, 0)},
		{"parallel beyond x", core.NewPoint(2, 2, 0), core.NewVector(-1, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if xs := cube.LocalIntersections(core.NewRay(tt.origin, tt.direction)); len(xs) != 0 {
				t.Errorf("Expected a miss, got %+v", xs)
			}
		})
	}
}

func TestCube_LocalNormal(t *testing.T) {
	cube := NewCube()

	tests := []struct {
		name     string
		point    core.Tuple
		expected core.Tuple
	}{
		{"+x face", core.NewPoint(1, 0.5, -0.8), core.NewVector(1, 0, 0)},
		{"-x face", core.NewPoint(-1, -0.2, 0.9), core.NewVector(-1, 0, 0)},
		{"+y face", core.NewPoint(-0.4, 1, -0.1), core.NewVector(0, 1, 0)},
		{"-y face", core.NewPoint(0.3, -1, -0.7), core.NewVector(0, -1, 0)},
		{"+z face", core.NewPoint(-0.6, 0.3, 1), core.NewVector(0, 0, 1)},
		{"-z face", core.NewPoint(0.4, 0.4, -1), core.NewVector(0, 0, -1)},
		{"positive corner", core.NewPoint(1, 1, 1), core.NewVector(1, 0, 0)},
		{"negative corner", core.NewPoint(-1, -1, -1), core.NewVector(-1, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cube.LocalNormal(tt.point, Intersection{}); !got.Equals(tt.expected) {
				t.Errorf("Expected %+v, got %+v", tt.expected, got)
			}
		})
	}
}
