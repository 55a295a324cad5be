package renderer

import (
	"math"
	"runtime"
	"sync"

	"github.com/saveriomiroddi/ray-tracer-challenge-completed/pkg/canvas"
	"github.com/saveriomiroddi/ray-tracer-challenge-completed/pkg/core"
	"github.com/saveriomiroddi/ray-tracer-challenge-completed/pkg/world"
)

// MaxBounces is the reflection/refraction recursion budget. A fixed cap
// guarantees termination regardless of scene content.
const MaxBounces = 5

// Camera maps pixel coordinates to world-space rays through a transformed
// viewport one unit in front of the eye
type Camera struct {
	HSize       int
	VSize       int
	FieldOfView float64
	Transform   core.Matrix

	pixelSize  float64
	halfWidth  float64
	halfHeight float64
}

// NewCamera derives the per-pixel sampling geometry once at construction.
// The pixel size comes from the field of view spread over the larger
// dimension, which keeps pixels square (and the image undistorted) for
// any aspect ratio.
func NewCamera(hsize, vsize int, fieldOfView float64) *Camera {
	viewUnits := math.Tan(fieldOfView/2) * 2
	maxDimension := math.Max(float64(hsize), float64(vsize))
	pixelSize := viewUnits / maxDimension

	return &Camera{
		HSize:       hsize,
		VSize:       vsize,
		FieldOfView: fieldOfView,
		Transform:   core.Identity(4),
		pixelSize:   pixelSize,
		halfWidth:   float64(hsize) * pixelSize / 2,
		halfHeight:  float64(vsize) * pixelSize / 2,
	}
}

// PixelSize returns the world-space size of one pixel on the viewport
func (c *Camera) PixelSize() float64 {
	return c.pixelSize
}

// RayForPixel builds the ray from the eye through the center of the given
// pixel. The untransformed viewport sits at z = -1 with x growing to the
// left, as seen from the eye at the origin; the camera transform's inverse
// places both in world space.
func (c *Camera) RayForPixel(px, py int) core.Ray {
	xOffset := (float64(px) + 0.5) * c.pixelSize
	yOffset := (float64(py) + 0.5) * c.pixelSize

	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	inverse := c.Transform.Inverse()
	pixel := inverse.MultiplyTuple(core.NewPoint(worldX, worldY, -1))
	origin := inverse.MultiplyTuple(core.NewPoint(0, 0, 0))

	direction := pixel.Subtract(origin).Normalize()

	return core.NewRay(origin, direction)
}

// Render samples every pixel of the world into a canvas, using one worker
// per CPU
func (c *Camera) Render(w *world.World) *canvas.Canvas {
	return c.RenderParallel(w, runtime.NumCPU())
}

// RenderParallel renders with a fixed pool of workers fed image rows
// through a channel. Each worker owns every pixel of the rows it takes,
// so writes to the shared canvas land on disjoint rows and need no lock;
// the world and its shapes are read-only during the render.
func (c *Camera) RenderParallel(w *world.World, numWorkers int) *canvas.Canvas {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	img := canvas.NewCanvas(c.HSize, c.VSize)
	rows := make(chan int, c.VSize)

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				for x := 0; x < c.HSize; x++ {
					ray := c.RayForPixel(x, y)
					color := w.ColorAt(ray, MaxBounces)
					img.WritePixel(x, y, color)
				}
			}
		}()
	}

	for y := 0; y < c.VSize; y++ {
		rows <- y
	}
	close(rows)
	wg.Wait()

	return img
}
