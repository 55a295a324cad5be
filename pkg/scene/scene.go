package scene

import (
	"github.com/saveriomiroddi/ray-tracer-challenge-completed/pkg/renderer"
	"github.com/saveriomiroddi/ray-tracer-challenge-completed/pkg/world"
)

// Scene pairs a world with the camera set up to render it
type Scene struct {
	World  *world.World
	Camera *renderer.Camera
}
