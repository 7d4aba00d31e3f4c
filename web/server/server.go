package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// Request limits shared by the render and inspect endpoints
const (
	minImageSize = 1
	maxImageSize = 2000
	maxDepthHigh = 20
	defaultScene = "default"
)

// Server handles web requests for the ray tracer
type Server struct {
	port   int
	logger core.Logger
}

// NewServer creates a new web server. A nil logger writes to stdout.
func NewServer(port int, logger core.Logger) *Server {
	if logger == nil {
		logger = core.NewDefaultLogger("web", false)
	}
	return &Server{port: port, logger: logger}
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene       string  `json:"scene"`       // Scene ID (e.g., "cornell-box" or "yaml:glass")
	Width       int     `json:"width"`       // Image width, 0 keeps the scene default
	Height      int     `json:"height"`      // Image height, 0 keeps the scene default
	FieldOfView float64 `json:"fieldOfView"` // Radians, 0 keeps the scene default
	MaxDepth    int     `json:"maxDepth"`    // Reflection/refraction bounces
	Format      string  `json:"format"`      // png, bmp, tiff, ppm or json
}

// Handler returns the HTTP handler serving the API and static files
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Serve static files
	mux.Handle("/", http.FileServer(http.Dir("static/")))

	// API endpoints
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/scene-config", s.handleSceneConfig)
	mux.HandleFunc("/api/health", s.handleHealth)

	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Infof("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists built-in and discovered YAML scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	response, err := scene.ListAllScenes()
	if err != nil {
		s.logger.Errorf("failed to list scenes: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, response)
}

// handleSceneConfig returns the default configuration for a scene
func (s *Server) handleSceneConfig(w http.ResponseWriter, r *http.Request) {
	sceneName := r.URL.Query().Get("scene")
	if sceneName == "" {
		sceneName = defaultScene
	}

	sceneObj, err := scene.NewScene(sceneName)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	cfg := sceneObj.CameraConfig
	response := map[string]any{
		"scene": sceneName,
		"defaults": map[string]any{
			"width":       cfg.Width,
			"height":      cfg.Height,
			"fieldOfView": cfg.FieldOfView,
			"maxDepth":    sceneObj.Config.MaxDepth,
			"objects":     sceneObj.GetPrimitiveCount(),
			"lights":      len(sceneObj.World.Lights),
		},
		"limits": map[string]any{
			"width":    map[string]int{"min": minImageSize, "max": maxImageSize},
			"height":   map[string]int{"min": minImageSize, "max": maxImageSize},
			"maxDepth": map[string]int{"min": 0, "max": maxDepthHigh},
		},
	}
	writeJSON(w, http.StatusOK, response)
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: query.Get("scene"), Format: query.Get("format")}
	if req.Scene == "" {
		req.Scene = defaultScene
	}
	if req.Format == "" {
		req.Format = "png"
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 0, minImageSize, maxImageSize); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 0, minImageSize, maxImageSize); err != nil {
		return nil, err
	}
	if req.MaxDepth, err = parseIntParam(query, "maxDepth", -1, 0, maxDepthHigh); err != nil {
		return nil, err
	}
	if req.FieldOfView, err = parseFloatParam(query, "fov", 0, 0.01, 3.1); err != nil {
		return nil, err
	}

	if req.Width*req.Height > 1000*1000 {
		s.logger.Warnf("Render warning: %dx%d image may render slowly", req.Width, req.Height)
	}

	return req, nil
}

// createScene builds the requested scene with any camera overrides applied
func (s *Server) createScene(req *RenderRequest) (*scene.Scene, error) {
	sceneObj, err := scene.NewScene(req.Scene, scene.CameraConfig{
		Width:       req.Width,
		Height:      req.Height,
		FieldOfView: req.FieldOfView,
	})
	if err != nil {
		return nil, err
	}
	if req.MaxDepth >= 0 {
		sceneObj.Config.MaxDepth = req.MaxDepth
	}
	return sceneObj, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseFloatParam parses a float parameter from URL query with validation
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %f and %f, got: %f", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}
