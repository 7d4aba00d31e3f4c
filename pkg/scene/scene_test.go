package scene

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinScenes(t *testing.T) {
	small := CameraConfig{Width: 16, Height: 12}

	for _, info := range BuiltinScenes() {
		t.Run(info.ID, func(t *testing.T) {
			s, err := NewScene(info.ID, small)
			require.NoError(t, err)

			assert.NotEmpty(t, s.World.Objects)
			assert.NotEmpty(t, s.World.Lights)
			assert.Equal(t, 16, s.Camera.HSize)
			assert.Equal(t, 12, s.Camera.VSize)

			rt := renderer.NewRaytracer(s.World, s.Camera, nil)
			rt.SetConfig(s.Config)
			_, stats := rt.Render()
			assert.Greater(t, stats.HitPixels, 0, "scene should be visible from its camera")
		})
	}
}

func TestNewScene_Unknown(t *testing.T) {
	_, err := NewScene("no-such-scene")
	assert.ErrorIs(t, err, ErrUnknownScene)

	_, err = NewScene("yaml:no-such-file")
	assert.ErrorIs(t, err, ErrUnknownScene)
}

func TestMergeCameraConfig(t *testing.T) {
	base := CameraConfig{
		From:        core.Point(0, 1, -5),
		To:          core.Point(0, 0, 0),
		Up:          core.Vector(0, 1, 0),
		Width:       400,
		Height:      225,
		FieldOfView: math.Pi / 3,
	}

	t.Run("empty override keeps base", func(t *testing.T) {
		assert.Equal(t, base, MergeCameraConfig(base, CameraConfig{}))
	})

	t.Run("set fields replace base", func(t *testing.T) {
		merged := MergeCameraConfig(base, CameraConfig{Width: 100, From: core.Point(1, 2, 3)})

		assert.Equal(t, 100, merged.Width)
		assert.Equal(t, 225, merged.Height)
		assert.Equal(t, core.Point(1, 2, 3), merged.From)
		assert.Equal(t, base.To, merged.To)
	})
}

func TestDefaultScene_CameraOverride(t *testing.T) {
	s := NewDefaultScene(CameraConfig{Width: 80, Height: 40, FieldOfView: math.Pi / 2})

	assert.Equal(t, 80, s.Camera.HSize)
	assert.Equal(t, 40, s.Camera.VSize)
	assert.Equal(t, math.Pi/2, s.Camera.FieldOfView)
	expected := core.ViewTransform(core.Point(0, 1.5, -5), core.Point(0, 1, 0), core.Vector(0, 1, 0))
	assert.True(t, s.Camera.Transform().ApproxEqual(expected))
}

func TestHexagonScene_PrimitiveCount(t *testing.T) {
	s := NewHexagonScene()

	// Floor plus two rings of six spheres and six cylinders
	assert.Equal(t, 25, s.GetPrimitiveCount())
}

func TestOKLCHToRGB(t *testing.T) {
	gray := oklchToRGB(0.5, 0, 0)
	assert.InDelta(t, gray.R, gray.G, 1e-6)
	assert.InDelta(t, gray.G, gray.B, 1e-6)

	vivid := oklchToRGB(0.65, 0.25, 30)
	for _, v := range []float64{vivid.R, vivid.G, vivid.B} {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
	assert.Greater(t, vivid.R, vivid.B, "hue 30 is a red")
}

func TestNewYAMLScene(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.yml")
	content := `# Scene: Tiny
- add: camera
  width: 20
  height: 10
  field-of-view: 1.0471975511965976
  from: [ 0, 1, -5 ]
  to: [ 0, 0, 0 ]
  up: [ 0, 1, 0 ]
- add: light
  at: [ -10, 10, -10 ]
  intensity: [ 1, 1, 1 ]
- add: sphere
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	t.Run("camera from file", func(t *testing.T) {
		s, err := NewYAMLScene(path)
		require.NoError(t, err)

		assert.Equal(t, 20, s.Camera.HSize)
		assert.Equal(t, 10, s.Camera.VSize)
		assert.Len(t, s.World.Objects, 1)
		assert.Equal(t, 1, s.GetPrimitiveCount())
	})

	t.Run("size override keeps the view", func(t *testing.T) {
		s, err := NewYAMLScene(path, CameraConfig{Width: 8, Height: 8, From: core.Point(9, 9, 9)})
		require.NoError(t, err)

		assert.Equal(t, 8, s.Camera.HSize)
		assert.Equal(t, 8, s.Camera.VSize)
		expected := core.ViewTransform(core.Point(0, 1, -5), core.Point(0, 0, 0), core.Vector(0, 1, 0))
		assert.True(t, s.Camera.Transform().ApproxEqual(expected))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewYAMLScene(filepath.Join(t.TempDir(), "missing.yml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
