package server

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/go-phong-raytracer/pkg/canvas"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
	"github.com/google/uuid"
)

// consoleBuffer bounds the messages kept for one render
const consoleBuffer = 64

var contentTypes = map[string]string{
	"png":  "image/png",
	"bmp":  "image/bmp",
	"tif":  "image/tiff",
	"tiff": "image/tiff",
	"ppm":  "image/x-portable-pixmap",
}

// RenderResponse is the body of a render requested with format=json
type RenderResponse struct {
	ID        string           `json:"id"`
	Scene     string           `json:"scene"`
	Width     int              `json:"width"`
	Height    int              `json:"height"`
	ImageData string           `json:"imageData"` // Base64 PNG
	Stats     RenderStatsJSON  `json:"stats"`
	Console   []ConsoleMessage `json:"console"`
}

// RenderStatsJSON is the wire form of renderer.RenderStats
type RenderStatsJSON struct {
	TotalPixels     int     `json:"totalPixels"`
	HitPixels       int     `json:"hitPixels"`
	HitRatio        float64 `json:"hitRatio"`
	ElapsedMs       int64   `json:"elapsedMs"`
	PixelsPerSecond float64 `json:"pixelsPerSecond"`
}

func statsJSON(stats renderer.RenderStats) RenderStatsJSON {
	return RenderStatsJSON{
		TotalPixels:     stats.TotalPixels,
		HitPixels:       stats.HitPixels,
		HitRatio:        stats.HitRatio(),
		ElapsedMs:       stats.Elapsed.Milliseconds(),
		PixelsPerSecond: stats.PixelsPerSecond(),
	}
}

// handleRender renders a scene and returns the encoded image, or a JSON
// envelope with the image, stats and console output when format=json
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	contentType, isImage := contentTypes[req.Format]
	if !isImage && req.Format != "json" {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unsupported format: %s", req.Format))
		return
	}

	sceneObj, err := s.createScene(req)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, scene.ErrUnknownScene) {
			status = http.StatusNotFound
		}
		writeError(w, status, err.Error())
		return
	}

	renderID := uuid.NewString()
	consoleChan := make(chan ConsoleMessage, consoleBuffer)
	logger := NewWebLogger(renderID, s.logger, consoleChan)

	rt := renderer.NewRaytracer(sceneObj.World, sceneObj.Camera, logger)
	rt.SetConfig(sceneObj.Config)
	image, stats := rt.Render()
	close(consoleChan)

	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Render-Id", renderID)

	if req.Format == "json" {
		imageData, err := canvasToBase64PNG(image)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		console := make([]ConsoleMessage, 0, len(consoleChan))
		for msg := range consoleChan {
			console = append(console, msg)
		}
		writeJSON(w, http.StatusOK, RenderResponse{
			ID:        renderID,
			Scene:     req.Scene,
			Width:     image.Width,
			Height:    image.Height,
			ImageData: imageData,
			Stats:     statsJSON(stats),
			Console:   console,
		})
		return
	}

	var buf bytes.Buffer
	if err := image.Encode(&buf, req.Format); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("X-Render-Time-Ms", strconv.FormatInt(stats.Elapsed.Milliseconds(), 10))
	w.Header().Set("X-Render-Hit-Pixels", strconv.Itoa(stats.HitPixels))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// canvasToBase64PNG converts a canvas to a base64 encoded PNG
func canvasToBase64PNG(c *canvas.Canvas) (string, error) {
	var buf bytes.Buffer
	if err := c.Encode(&buf, "png"); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
