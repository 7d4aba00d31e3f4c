package renderer

import (
	"time"

	"github.com/df07/go-phong-raytracer/pkg/canvas"
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/world"
)

// Config contains rendering configuration
type Config struct {
	MaxDepth int // Maximum reflection/refraction bounces
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{MaxDepth: world.MaxDepth}
}

// Raytracer renders a world through a camera
type Raytracer struct {
	world  *world.World
	camera *Camera
	config Config
	logger core.Logger
}

// NewRaytracer creates a new raytracer. A nil logger discards output.
func NewRaytracer(w *world.World, camera *Camera, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = core.NewNopLogger()
	}
	return &Raytracer{
		world:  w,
		camera: camera,
		config: DefaultConfig(),
		logger: logger,
	}
}

// SetConfig updates the rendering configuration
func (rt *Raytracer) SetConfig(config Config) {
	rt.config = config
}

// Render traces one ray per pixel, row by row, top to bottom. Pixels whose
// ray hits nothing stay black.
func (rt *Raytracer) Render() (*canvas.Canvas, RenderStats) {
	cam := rt.camera
	image := canvas.New(cam.HSize, cam.VSize)
	stats := RenderStats{TotalPixels: cam.HSize * cam.VSize}
	start := time.Now()

	rt.logger.Infof("rendering %dx%d, %d objects, %d lights, max depth %d",
		cam.HSize, cam.VSize, len(rt.world.Objects), len(rt.world.Lights), rt.config.MaxDepth)

	for y := 0; y < cam.VSize; y++ {
		for x := 0; x < cam.HSize; x++ {
			c, hit := rt.world.Trace(cam.RayForPixel(x, y), rt.config.MaxDepth)
			if !hit {
				continue
			}
			stats.HitPixels++
			image.WritePixel(x, y, c)
		}
		if rt.logger.DebugEnabled() {
			rt.logger.Debugf("row %d/%d done", y+1, cam.VSize)
		}
	}

	stats.Elapsed = time.Since(start)
	rt.logger.Infof("render completed: %v", stats)
	return image, stats
}

// Render renders w through the camera with default settings
func Render(cam *Camera, w *world.World) *canvas.Canvas {
	image, _ := NewRaytracer(w, cam, nil).Render()
	return image
}
