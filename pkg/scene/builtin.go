package scene

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownScene is returned for scene IDs that are neither built in nor discovered
var ErrUnknownScene = errors.New("unknown scene")

type builtinScene struct {
	info  SceneInfo
	build func(cameraOverrides ...CameraConfig) *Scene
}

var builtinScenes = []builtinScene{
	{
		info:  builtinInfo("default", "Default Scene", "Three spheres on a floor in front of a wall"),
		build: NewDefaultScene,
	},
	{
		info:  builtinInfo("cornell-box", "Cornell Box", "Cornell box with a mirror block and a glass sphere"),
		build: NewCornellScene,
	},
	{
		info:  builtinInfo("glass", "Glass", "Hollow glass sphere over a reflective checkered floor"),
		build: NewGlassScene,
	},
	{
		info:  builtinInfo("patterns", "Patterns", "Stripe, gradient, ring and checker patterns"),
		build: NewPatternScene,
	},
	{
		info:  builtinInfo("sphere-grid", "Sphere Grid", "Grid of spheres varying in hue, shininess and reflectivity"),
		build: NewSphereGridScene,
	},
	{
		info:  builtinInfo("cylinders", "Cylinders", "Open, truncated and capped cylinders"),
		build: NewCylinderScene,
	},
	{
		info:  builtinInfo("cones", "Cones", "Capped cone, double cone and frustum"),
		build: NewConeScene,
	},
	{
		info:  builtinInfo("hexagon", "Hexagon Groups", "Rings of spheres and cylinders built from nested groups"),
		build: NewHexagonScene,
	},
}

func builtinInfo(id, name, description string) SceneInfo {
	return SceneInfo{
		ID:          id,
		Name:        name,
		DisplayName: name,
		Description: description,
		Group:       builtinGroup,
		Type:        "builtin",
	}
}

// BuiltinScenes lists the scenes compiled into the program
func BuiltinScenes() []SceneInfo {
	infos := make([]SceneInfo, len(builtinScenes))
	for i, b := range builtinScenes {
		infos[i] = b.info
	}
	return infos
}

// NewScene creates a built-in scene by ID, or a discovered YAML scene for
// IDs of the form "yaml:<name>"
func NewScene(id string, cameraOverrides ...CameraConfig) (*Scene, error) {
	for _, b := range builtinScenes {
		if b.info.ID == id {
			return b.build(cameraOverrides...), nil
		}
	}

	if strings.HasPrefix(id, yamlIDPrefix) {
		scenes, err := ListYAMLScenes()
		if err != nil {
			return nil, err
		}
		for _, info := range scenes {
			if info.ID == id {
				return NewYAMLScene(info.FilePath, cameraOverrides...)
			}
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownScene, id)
}
