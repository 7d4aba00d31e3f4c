package server

import (
	"errors"
	"net/http"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// InspectResponse represents the response for pixel inspection
type InspectResponse struct {
	Hit          bool          `json:"hit"`
	X            int           `json:"x"`
	Y            int           `json:"y"`
	Color        [3]float64    `json:"color"`                  // Shaded color at the pixel
	GeometryType string        `json:"geometryType,omitempty"` // "sphere", "cube", etc.
	ObjectID     string        `json:"objectId,omitempty"`
	Distance     float64       `json:"distance,omitempty"`
	Point        [3]float64    `json:"point"`
	Normal       [3]float64    `json:"normal"`
	Inside       bool          `json:"inside,omitempty"`
	Material     *MaterialInfo `json:"material,omitempty"`
}

// MaterialInfo describes the surface at the inspected hit
type MaterialInfo struct {
	Pattern         string     `json:"pattern"`
	SurfaceColor    [3]float64 `json:"surfaceColor"` // Pattern color at the hit point
	Ambient         float64    `json:"ambient"`
	Diffuse         float64    `json:"diffuse"`
	Specular        float64    `json:"specular"`
	Shininess       float64    `json:"shininess"`
	Reflective      float64    `json:"reflective"`
	Transparency    float64    `json:"transparency"`
	RefractiveIndex float64    `json:"refractiveIndex"`
	N1              float64    `json:"n1"` // Index of the medium being exited
	N2              float64    `json:"n2"` // Index of the medium being entered
}

// handleInspect traces a single pixel and reports what it hits
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
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

	cam := sceneObj.Camera
	query := r.URL.Query()
	x, err := parseIntParam(query, "x", -1, 0, cam.HSize-1)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	y, err := parseIntParam(query, "y", -1, 0, cam.VSize-1)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if x < 0 || y < 0 {
		writeError(w, http.StatusBadRequest, "x and y are required")
		return
	}

	writeJSON(w, http.StatusOK, inspectPixel(sceneObj, x, y))
}

func inspectPixel(sceneObj *scene.Scene, x, y int) InspectResponse {
	ray := sceneObj.Camera.RayForPixel(x, y)
	xs := sceneObj.World.Intersect(ray)
	response := InspectResponse{X: x, Y: y}

	hit, ok := xs.Hit()
	if !ok {
		return response
	}

	comps := geometry.PrepareComputations(hit, ray, xs)
	m := comps.Object.Material

	response.Hit = true
	response.Color = colorArray(sceneObj.World.ShadeHit(comps, sceneObj.Config.MaxDepth))
	response.GeometryType = comps.Object.Kind.String()
	response.ObjectID = comps.Object.ID.String()
	response.Distance = comps.T
	response.Point = tupleArray(comps.Point)
	response.Normal = tupleArray(comps.NormalV)
	response.Inside = comps.Inside
	response.Material = &MaterialInfo{
		Pattern:         m.Pattern.Kind.String(),
		SurfaceColor:    colorArray(m.Pattern.AtObject(comps.Object, comps.Point)),
		Ambient:         m.Ambient,
		Diffuse:         m.Diffuse,
		Specular:        m.Specular,
		Shininess:       m.Shininess,
		Reflective:      m.Reflective,
		Transparency:    m.Transparency,
		RefractiveIndex: m.RefractiveIndex,
		N1:              comps.N1,
		N2:              comps.N2,
	}
	return response
}

func tupleArray(t core.Tuple) [3]float64 {
	return [3]float64{t.X, t.Y, t.Z}
}

func colorArray(c core.Color) [3]float64 {
	return [3]float64{c.R, c.G, c.B}
}

