package canvas

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// ppmMaxLineLength is the column limit some PPM readers impose
const ppmMaxLineLength = 70

// WritePPM encodes the canvas as plain-text PPM (P3): a header with the
// dimensions and the 255 maximum, then every sample scaled, clamped and
// rounded, space separated in row-major order with lines wrapped before
// they exceed 70 columns. The output always ends with a newline.
func (c *Canvas) WritePPM(w io.Writer) error {
	buffered := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(buffered, "P3\n%d %d\n255\n", c.Width, c.Height); err != nil {
		return fmt.Errorf("failed to write PPM header: %w", err)
	}

	lineLength := 0
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			pixel := c.pixels[y][x]
			for _, channel := range [3]float64{pixel.R, pixel.G, pixel.B} {
				sample := strconv.Itoa(int(clampChannel(channel)))

				switch {
				case lineLength == 0:
					// First sample on the line
				case lineLength+1+len(sample) > ppmMaxLineLength:
					if _, err := buffered.WriteString("\n"); err != nil {
						return fmt.Errorf("failed to write PPM data: %w", err)
					}
					lineLength = 0
				default:
					if _, err := buffered.WriteString(" "); err != nil {
						return fmt.Errorf("failed to write PPM data: %w", err)
					}
					lineLength++
				}

				if _, err := buffered.WriteString(sample); err != nil {
					return fmt.Errorf("failed to write PPM data: %w", err)
				}
				lineLength += len(sample)
			}
		}
	}

	if lineLength > 0 {
		if _, err := buffered.WriteString("\n"); err != nil {
			return fmt.Errorf("failed to write PPM data: %w", err)
		}
	}

	return buffered.Flush()
}
