package scene

import (
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/loaders"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
)

// NewYAMLScene creates a scene from a YAML scene description. Overrides may
// change the image size and field of view; the view transform always comes
// from the file.
func NewYAMLScene(filepath string, cameraOverrides ...CameraConfig) (*Scene, error) {
	loaded, err := loaders.LoadYAMLScene(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to load YAML scene: %w", err)
	}

	cam := loaded.Camera
	cameraConfig := CameraConfig{
		Width:       cam.HSize,
		Height:      cam.VSize,
		FieldOfView: cam.FieldOfView,
	}
	if len(cameraOverrides) > 0 {
		override := cameraOverrides[0]
		cameraConfig = MergeCameraConfig(cameraConfig, CameraConfig{
			Width:       override.Width,
			Height:      override.Height,
			FieldOfView: override.FieldOfView,
		})
		resized := renderer.NewCamera(cameraConfig.Width, cameraConfig.Height, cameraConfig.FieldOfView)
		resized.SetTransform(cam.Transform())
		cam = resized
	}

	return &Scene{
		World:        loaded.World,
		Camera:       cam,
		CameraConfig: cameraConfig,
		Config:       renderer.DefaultConfig(),
	}, nil
}
