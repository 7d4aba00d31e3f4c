package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// Config holds the command line options
type Config struct {
	SceneType string
	Width     int
	Height    int
	FOV       float64
	MaxDepth  int
	Format    string
	Output    string
	Debug     bool
	List      bool
	Help      bool
}

func main() {
	config := parseFlags()

	if config.Help {
		showHelp()
		return
	}

	if config.List {
		if err := listScenes(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(config); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// parseFlags parses command line flags and returns configuration
func parseFlags() Config {
	config := Config{}
	flag.StringVar(&config.SceneType, "scene", "default", "Built-in scene ID, yaml:<name>, or path to a .yml/.yaml file")
	flag.IntVar(&config.Width, "width", 0, "Image width in pixels (0 = scene default)")
	flag.IntVar(&config.Height, "height", 0, "Image height in pixels (0 = scene default)")
	flag.Float64Var(&config.FOV, "fov", 0, "Field of view in radians (0 = scene default)")
	flag.IntVar(&config.MaxDepth, "max-depth", -1, "Maximum reflection/refraction bounces (-1 = scene default)")
	flag.StringVar(&config.Format, "format", "png", "Output format: png, ppm, bmp or tiff")
	flag.StringVar(&config.Output, "output", "", "Output file path (default output/<scene>/render_<timestamp>.<format>)")
	flag.BoolVar(&config.Debug, "debug", false, "Log per-row progress")
	flag.BoolVar(&config.List, "list", false, "List available scenes and exit")
	flag.BoolVar(&config.Help, "help", false, "Show help information")
	flag.Parse()
	return config
}

// showHelp displays help information
func showHelp() {
	fmt.Println("Phong Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.BuiltinScenes() {
		fmt.Printf("  %-12s - %s\n", info.ID, info.Description)
	}
	fmt.Println()
	fmt.Println("YAML scenes are read from the scenes/ directory (see -list).")
	fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.<format>")
}

// listScenes prints every built-in and discovered YAML scene
func listScenes() error {
	response, err := scene.ListAllScenes()
	if err != nil {
		return err
	}
	for _, group := range response.Groups {
		fmt.Printf("%s:\n", group.Name)
		for _, info := range group.Scenes {
			fmt.Printf("  %-24s %s\n", info.ID, info.Description)
		}
	}
	return nil
}

// run renders the configured scene and writes the image to disk
func run(config Config) error {
	logger := core.NewDefaultLogger("raytracer", config.Debug)

	selectedScene, err := createScene(config.SceneType, scene.CameraConfig{
		Width:       config.Width,
		Height:      config.Height,
		FieldOfView: config.FOV,
	})
	if err != nil {
		return err
	}
	if config.MaxDepth >= 0 {
		selectedScene.Config.MaxDepth = config.MaxDepth
	}

	filename := config.Output
	if filename == "" {
		outputDir, err := createOutputDir(config.SceneType)
		if err != nil {
			return err
		}
		timestamp := time.Now().Format("20060102_150405")
		filename = filepath.Join(outputDir, fmt.Sprintf("render_%s.%s", timestamp, strings.TrimPrefix(config.Format, ".")))
	}

	logger.Infof("scene %q: %d objects, %d lights", config.SceneType,
		selectedScene.GetPrimitiveCount(), len(selectedScene.World.Lights))

	rt := renderer.NewRaytracer(selectedScene.World, selectedScene.Camera, logger)
	rt.SetConfig(selectedScene.Config)
	image, _ := rt.Render()

	if err := image.WriteFile(filename); err != nil {
		return fmt.Errorf("failed to save render: %w", err)
	}
	logger.Infof("render saved as %s", filename)
	return nil
}

// createScene resolves a scene type to a scene. YAML file paths are loaded
// directly; anything else must be a built-in ID or yaml:<name>.
func createScene(sceneType string, overrides ...scene.CameraConfig) (*scene.Scene, error) {
	if sceneType == "" {
		return nil, errors.New("scene type is required")
	}

	ext := strings.ToLower(filepath.Ext(sceneType))
	if ext == ".yml" || ext == ".yaml" {
		return scene.NewYAMLScene(sceneType, overrides...)
	}
	return scene.NewScene(sceneType, overrides...)
}

// createOutputDir creates output/<scene> and returns its path. Paths and
// yaml: prefixes are reduced to the bare scene name.
func createOutputDir(sceneType string) (string, error) {
	name := strings.TrimPrefix(sceneType, "yaml:")
	name = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))

	outputDir := filepath.Join("output", name)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	return outputDir, nil
}
