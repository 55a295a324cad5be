package scene

import (
	"fmt"
	"math"

	"github.com/saveriomiroddi/ray-tracer-challenge-completed/pkg/core"
	"github.com/saveriomiroddi/ray-tracer-challenge-completed/pkg/geometry"
	"github.com/saveriomiroddi/ray-tracer-challenge-completed/pkg/loaders"
	"github.com/saveriomiroddi/ray-tracer-challenge-completed/pkg/material"
	"github.com/saveriomiroddi/ray-tracer-challenge-completed/pkg/renderer"
	"github.com/saveriomiroddi/ray-tracer-challenge-completed/pkg/world"
)

// NewObjScene loads a Wavefront OBJ model and places it over a plain
// floor. The model's triangles arrive as an ordinary shape tree; nothing
// downstream knows it came from an importer.
func NewObjScene(filename string, width, height int) (*Scene, error) {
	data, err := loaders.LoadObjFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to load model: %w", err)
	}

	w := world.New()
	w.Light = material.NewPointLight(core.NewPoint(-10, 10, -10), core.White)

	floor := geometry.NewPlane()
	floorMaterial := material.Default()
	floorMaterial.Color = core.NewColor(0.9, 0.9, 0.9)
	floorMaterial.Specular = 0
	floor.SetMaterial(floorMaterial)
	w.AddObject(floor)

	model := data.ToGroup()
	modelMaterial := material.Default()
	modelMaterial.Color = core.NewColor(0.7, 0.6, 0.4)
	for _, group := range model.Children() {
		for _, triangle := range group.(*geometry.Group).Children() {
			triangle.SetMaterial(modelMaterial)
		}
	}
	w.AddObject(model)

	camera := renderer.NewCamera(width, height, math.Pi/3)
	camera.Transform = core.ViewTransform(
		core.NewPoint(0, 2, -6),
		core.NewPoint(0, 1, 0),
		core.NewVector(0, 1, 0),
	)

	return &Scene{World: w, Camera: camera}, nil
}
