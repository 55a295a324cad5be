package scene

import (
	"math"

	"github.com/saveriomiroddi/ray-tracer-challenge-completed/pkg/core"
	"github.com/saveriomiroddi/ray-tracer-challenge-completed/pkg/geometry"
	"github.com/saveriomiroddi/ray-tracer-challenge-completed/pkg/material"
	"github.com/saveriomiroddi/ray-tracer-challenge-completed/pkg/renderer"
	"github.com/saveriomiroddi/ray-tracer-challenge-completed/pkg/world"
)

// hexagonCorner is a small sphere at one vertex of the hexagon
func hexagonCorner() geometry.Shape {
	corner := geometry.NewSphere()
	corner.SetTransform(core.Identity(4).
		Scale(0.25, 0.25, 0.25).
		Translate(0, 0, -1))
	return corner
}

// hexagonEdge is a thin cylinder connecting two adjacent corners
func hexagonEdge() geometry.Shape {
	edge := geometry.NewCylinder()
	edge.Minimum = 0
	edge.Maximum = 1
	edge.SetTransform(core.Identity(4).
		Scale(0.25, 1, 0.25).
		Rotate(core.AxisZ, -math.Pi/2).
		Rotate(core.AxisY, -math.Pi/6).
		Translate(0, 0, -1))
	return edge
}

// hexagonSide groups one corner and one edge
func hexagonSide() *geometry.Group {
	side := geometry.NewGroup()
	side.AddChild(hexagonCorner())
	side.AddChild(hexagonEdge())
	return side
}

// hexagon assembles six rotated sides into one group
func hexagon() *geometry.Group {
	hex := geometry.NewGroup()
	for n := 0; n < 6; n++ {
		side := hexagonSide()
		side.SetTransform(core.Rotation(core.AxisY, float64(n)*math.Pi/3))
		hex.AddChild(side)
	}
	return hex
}

// NewHexagonScene builds a scene around a nested group: six sphere/
// cylinder sides rotated into a hexagonal ring, demonstrating transform
// composition through the parent chain
func NewHexagonScene(width, height int) *Scene {
	w := world.New()
	w.Light = material.NewPointLight(core.NewPoint(-10, 10, -10), core.White)

	floor := geometry.NewPlane()
	floorMaterial := material.Default()
	floorMaterial.Pattern = material.NewRingPattern(
		core.NewColor(0.9, 0.9, 0.9),
		core.NewColor(0.4, 0.45, 0.5),
	)
	floorMaterial.Specular = 0
	floor.SetTransform(core.Translation(0, -0.3, 0))
	floor.SetMaterial(floorMaterial)
	w.AddObject(floor)

	hex := hexagon()
	hex.SetTransform(core.Identity(4).Rotate(core.AxisX, -math.Pi/6).Translate(0, 0.8, 0))

	hexMaterial := material.Default()
	hexMaterial.Color = core.NewColor(0.8, 0.5, 0.3)
	hexMaterial.Reflective = 0.1
	for _, side := range hex.Children() {
		for _, piece := range side.(*geometry.Group).Children() {
			piece.SetMaterial(hexMaterial)
		}
	}
	w.AddObject(hex)

	camera := renderer.NewCamera(width, height, math.Pi/3)
	camera.Transform = core.ViewTransform(
		core.NewPoint(0, 2.5, -4),
		core.NewPoint(0, 0.6, 0),
		core.NewVector(0, 1, 0),
	)

	return &Scene{World: w, Camera: camera}
}
