package canvas

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"strconv"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// maxLineLength is the longest line PPM readers are required to accept
const maxLineLength = 70

// Canvas is a width x height grid of colors, initially black
type Canvas struct {
	Width  int
	Height int
	pixels []core.Color
}

// New creates a black canvas
func New(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		pixels: make([]core.Color, width*height),
	}
}

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.Width && y >= 0 && y < c.Height
}

// WritePixel sets the color at (x, y). Out of range writes are ignored.
func (c *Canvas) WritePixel(x, y int, col core.Color) {
	if !c.inBounds(x, y) {
		return
	}
	c.pixels[y*c.Width+x] = col
}

// PixelAt returns the color at (x, y), black when out of range
func (c *Canvas) PixelAt(x, y int) core.Color {
	if !c.inBounds(x, y) {
		return core.Black
	}
	return c.pixels[y*c.Width+x]
}

// toByte maps a linear channel to 0-255, clamping out of range values
func toByte(v float64) uint8 {
	scaled := math.Round(v * 255)
	if scaled < 0 || math.IsNaN(scaled) {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}

// ToPPM writes the canvas as a plain (P3) PPM
func (c *Canvas) ToPPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", c.Width, c.Height)

	line := make([]byte, 0, maxLineLength)
	flush := func() {
		if len(line) > 0 {
			bw.Write(line)
			bw.WriteByte('\n')
			line = line[:0]
		}
	}

	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			p := c.PixelAt(x, y)
			for _, v := range [3]float64{p.R, p.G, p.B} {
				token := strconv.Itoa(int(toByte(v)))
				if len(line) > 0 && len(line)+1+len(token) > maxLineLength {
					flush()
				}
				if len(line) > 0 {
					line = append(line, ' ')
				}
				line = append(line, token...)
			}
		}
		flush()
	}

	return bw.Flush()
}

// ToImage converts the canvas to an 8-bit RGBA image
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			p := c.PixelAt(x, y)
			img.SetRGBA(x, y, color.RGBA{R: toByte(p.R), G: toByte(p.G), B: toByte(p.B), A: 255})
		}
	}
	return img
}
