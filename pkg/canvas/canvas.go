package canvas

import (
	"image"
	"image/color"
	"math"

	"github.com/saveriomiroddi/ray-tracer-challenge-completed/pkg/core"
)

// Canvas is a width x height grid of colors, row-major with the origin at
// the top left. Pixels stay unclamped floats until export. The rows are
// independent slices, so render workers that own disjoint rows can write
// concurrently without synchronization.
type Canvas struct {
	Width  int
	Height int
	pixels [][]core.Color
}

// NewCanvas creates a canvas with every pixel black
func NewCanvas(width, height int) *Canvas {
	pixels := make([][]core.Color, height)
	for y := range pixels {
		pixels[y] = make([]core.Color, width)
	}

	return &Canvas{Width: width, Height: height, pixels: pixels}
}

// WritePixel sets the color at (x, y)
func (c *Canvas) WritePixel(x, y int, col core.Color) {
	c.pixels[y][x] = col
}

// PixelAt returns the color at (x, y)
func (c *Canvas) PixelAt(x, y int) core.Color {
	return c.pixels[y][x]
}

// clampChannel converts one float channel to the 0-255 export range,
// rounding half up
func clampChannel(value float64) uint8 {
	scaled := math.Round(value * 255)
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}

// ToImage converts the canvas into an image.Image for the standard
// encoders
func (c *Canvas) ToImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))

	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			pixel := c.pixels[y][x]
			img.Set(x, y, color.RGBA{
				R: clampChannel(pixel.R),
				G: clampChannel(pixel.G),
				B: clampChannel(pixel.B),
				A: 255,
			})
		}
	}
	return img
}
