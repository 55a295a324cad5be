package scene

import (
	"math"

	"github.com/saveriomiroddi/ray-tracer-challenge-completed/pkg/core"
	"github.com/saveriomiroddi/ray-tracer-challenge-completed/pkg/geometry"
	"github.com/saveriomiroddi/ray-tracer-challenge-completed/pkg/material"
	"github.com/saveriomiroddi/ray-tracer-challenge-completed/pkg/renderer"
	"github.com/saveriomiroddi/ray-tracer-challenge-completed/pkg/world"
)

// NewDefaultScene builds a showcase scene exercising every primitive
// shape kind: a checkered reflective floor, a glass sphere, a mirrored
// sphere, a matte striped sphere, a scaled cube and a capped cylinder.
func NewDefaultScene(width, height int) *Scene {
	w := world.New()
	w.Light = material.NewPointLight(core.NewPoint(-10, 10, -10), core.White)

	floor := geometry.NewPlane()
	floorMaterial := material.Default()
	floorPattern := material.NewCheckersPattern(
		core.NewColor(0.85, 0.85, 0.85),
		core.NewColor(0.25, 0.25, 0.25),
	)
	floorMaterial.Pattern = floorPattern
	floorMaterial.Specular = 0
	floorMaterial.Reflective = 0.1
	floor.SetMaterial(floorMaterial)
	w.AddObject(floor)

	middle := geometry.NewGlassSphere()
	middle.SetTransform(core.Identity(4).Translate(-0.5, 1, 0.5))
	middleMaterial := middle.Material()
	middleMaterial.Color = core.NewColor(0.05, 0.05, 0.1)
	middleMaterial.Diffuse = 0.1
	middleMaterial.Specular = 1
	middleMaterial.Shininess = 300
	middleMaterial.Reflective = 0.9
	middle.SetMaterial(middleMaterial)
	w.AddObject(middle)

	right := geometry.NewSphere()
	right.SetTransform(core.Identity(4).Scale(0.5, 0.5, 0.5).Translate(1.5, 0.5, -0.5))
	rightMaterial := material.Default()
	rightMaterial.Color = core.NewColor(0.1, 0.1, 0.1)
	rightMaterial.Diffuse = 0.3
	rightMaterial.Reflective = 0.9
	right.SetMaterial(rightMaterial)
	w.AddObject(right)

	left := geometry.NewSphere()
	left.SetTransform(core.Identity(4).Scale(0.33, 0.33, 0.33).Translate(-1.5, 0.33, -0.75))
	leftMaterial := material.Default()
	leftPattern := material.NewStripePattern(
		core.NewColor(1, 0.8, 0.1),
		core.NewColor(0.8, 0.2, 0.1),
	)
	leftPattern.SetTransform(core.Identity(4).Scale(0.3, 0.3, 0.3).Rotate(core.AxisZ, math.Pi/4))
	leftMaterial.Pattern = leftPattern
	leftMaterial.Diffuse = 0.7
	leftMaterial.Specular = 0.3
	left.SetMaterial(leftMaterial)
	w.AddObject(left)

	cube := geometry.NewCube()
	cube.SetTransform(core.Identity(4).
		Scale(0.4, 0.4, 0.4).
		Rotate(core.AxisY, math.Pi/5).
		Translate(2.2, 0.4, 1.5))
	cubeMaterial := material.Default()
	cubeMaterial.Color = core.NewColor(0.2, 0.6, 0.3)
	cube.SetMaterial(cubeMaterial)
	w.AddObject(cube)

	cylinder := geometry.NewCylinder()
	cylinder.Minimum = 0
	cylinder.Maximum = 1
	cylinder.Closed = true
	cylinder.SetTransform(core.Identity(4).Scale(0.4, 1.2, 0.4).Translate(-2.6, 0, 1.2))
	cylinderMaterial := material.Default()
	cylinderMaterial.Color = core.NewColor(0.5, 0.3, 0.7)
	cylinderMaterial.Reflective = 0.2
	cylinder.SetMaterial(cylinderMaterial)
	w.AddObject(cylinder)

	camera := renderer.NewCamera(width, height, math.Pi/3)
	camera.Transform = core.ViewTransform(
		core.NewPoint(0, 1.5, -5),
		core.NewPoint(0, 1, 0),
		core.NewVector(0, 1, 0),
	)

	return &Scene{World: w, Camera: camera}
}
