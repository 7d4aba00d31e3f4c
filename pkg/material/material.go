package material

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/lights"
)

// Common refractive indices
const (
	RefractiveVacuum  = 1.0
	RefractiveAir     = 1.00029
	RefractiveWater   = 1.333
	RefractiveGlass   = 1.5
	RefractiveDiamond = 2.417
)

// Material describes how a surface responds to light under the Phong model
type Material struct {
	Pattern         Pattern
	Ambient         float64 // Background light reflected, 0..1
	Diffuse         float64 // Matte reflection, 0..1
	Specular        float64 // Highlight strength, 0..1
	Shininess       float64 // Highlight tightness, typically 10..400
	Reflective      float64 // 0 is matte, 1 a perfect mirror
	Transparency    float64 // 0 is opaque
	RefractiveIndex float64
}

// DefaultMaterial returns a white, slightly shiny, opaque material
func DefaultMaterial() Material {
	return Material{
		Pattern:         SolidPattern(core.White),
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200,
		Reflective:      0,
		Transparency:    0,
		RefractiveIndex: RefractiveVacuum,
	}
}

// NewColored returns the default material painted a solid color
func NewColored(c core.Color) Material {
	m := DefaultMaterial()
	m.Pattern = SolidPattern(c)
	return m
}

// NewGlass returns a clear glass material
func NewGlass() Material {
	m := DefaultMaterial()
	m.Transparency = 1.0
	m.RefractiveIndex = RefractiveGlass
	return m
}

// Lighting shades a point with the Phong reflection model. The result is
// the unclamped sum of ambient, diffuse and specular terms.
func (m Material) Lighting(obj Object, light lights.PointLight, point, eyev, normalv core.Tuple, inShadow bool) core.Color {
	effectiveColor := m.Pattern.AtObject(obj, point).Hadamard(light.Intensity)
	ambient := effectiveColor.Multiply(m.Ambient)

	if inShadow {
		return ambient
	}

	lightv, _ := light.Sample(point)

	// Negative cosine means the light is on the other side of the surface
	lightDotNormal := lightv.Dot(normalv)
	if lightDotNormal < 0 {
		return ambient
	}
	diffuse := effectiveColor.Multiply(m.Diffuse * lightDotNormal)

	specular := core.Black
	reflectv := lightv.Negate().Reflect(normalv)
	reflectDotEye := reflectv.Dot(eyev)
	if reflectDotEye > 0 {
		factor := math.Pow(reflectDotEye, m.Shininess)
		specular = light.Intensity.Multiply(m.Specular * factor)
	}

	return ambient.Add(diffuse).Add(specular)
}
