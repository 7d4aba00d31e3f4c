package renderer

import (
	"math"
	"testing"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/canvas"
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultSetup() (*world.World, *Camera) {
	w := world.DefaultWorld()
	c := NewCamera(11, 11, math.Pi/2)
	c.SetTransform(core.ViewTransform(core.Point(0, 0, -5), core.Point(0, 0, 0), core.Vector(0, 1, 0)))
	return w, c
}

func TestRender_DefaultWorld(t *testing.T) {
	w, c := defaultSetup()

	image := Render(c, w)

	require.Equal(t, 11, image.Width)
	require.Equal(t, 11, image.Height)
	px := image.PixelAt(5, 5)
	assert.InDelta(t, 0.38066, px.R, 1e-4)
	assert.InDelta(t, 0.47583, px.G, 1e-4)
	assert.InDelta(t, 0.2855, px.B, 1e-4)
}

func TestRender_RaisedCameraFixture(t *testing.T) {
	render := func() (*canvas.Canvas, RenderStats) {
		c := NewCamera(11, 11, math.Pi/3)
		c.SetTransform(core.ViewTransform(core.Point(0, 1.5, -5), core.Point(0, 1, 0), core.Vector(0, 1, 0)))
		return NewRaytracer(world.DefaultWorld(), c, nil).Render()
	}

	first, stats := render()
	second, _ := render()

	for y := 0; y < 11; y++ {
		for x := 0; x < 11; x++ {
			require.Equal(t, first.PixelAt(x, y), second.PixelAt(x, y), "pixel (%d,%d)", x, y)
		}
	}
	assert.Equal(t, 10, stats.HitPixels)

	pinned := []struct {
		x, y     int
		expected core.Color
	}{
		{5, 5, core.NewColor(0.38066, 0.47583, 0.28550)},
		{4, 6, core.NewColor(0.63380, 0.79225, 0.47535)},
		{5, 7, core.NewColor(0.45113, 0.56391, 0.33834)},
		{6, 8, core.NewColor(0.09019, 0.11273, 0.06764)},
		{0, 0, core.Black},
		{5, 9, core.Black},
	}
	for _, p := range pinned {
		px := first.PixelAt(p.x, p.y)
		assert.InDelta(t, p.expected.R, px.R, 1e-4, "pixel (%d,%d)", p.x, p.y)
		assert.InDelta(t, p.expected.G, px.G, 1e-4, "pixel (%d,%d)", p.x, p.y)
		assert.InDelta(t, p.expected.B, px.B, 1e-4, "pixel (%d,%d)", p.x, p.y)
	}
}

func TestRaytracer_RenderStats(t *testing.T) {
	w, c := defaultSetup()

	rt := NewRaytracer(w, c, core.NewNopLogger())
	image, stats := rt.Render()

	assert.Equal(t, 121, stats.TotalPixels)
	assert.Greater(t, stats.HitPixels, 0)
	assert.Less(t, stats.HitPixels, stats.TotalPixels)
	assert.Equal(t, core.Black, image.PixelAt(0, 0), "corner ray misses both spheres")
}

func TestRaytracer_EmptyWorldIsBlack(t *testing.T) {
	c := NewCamera(4, 3, math.Pi/3)

	image, stats := NewRaytracer(world.New(nil), c, nil).Render()

	assert.Equal(t, 0, stats.HitPixels)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, core.Black, image.PixelAt(x, y))
		}
	}
}

func TestRaytracer_SetConfig(t *testing.T) {
	w, c := defaultSetup()
	rt := NewRaytracer(w, c, nil)
	assert.Equal(t, world.MaxDepth, rt.config.MaxDepth)

	rt.SetConfig(Config{MaxDepth: 1})
	assert.Equal(t, 1, rt.config.MaxDepth)
}

func TestRenderStats(t *testing.T) {
	stats := RenderStats{TotalPixels: 200, HitPixels: 50, Elapsed: 2 * time.Second}

	assert.Equal(t, 0.25, stats.HitRatio())
	assert.Equal(t, 100.0, stats.PixelsPerSecond())
	assert.Equal(t, "200 pixels (25.0% hit) in 2s", stats.String())

	assert.Zero(t, RenderStats{}.HitRatio())
	assert.Zero(t, RenderStats{}.PixelsPerSecond())
}
