package geometry

import (
	"math"
	"slices"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Computations holds the shading context derived from a hit
type Computations struct {
	T       float64
	Object  *Shape
	Point   core.Tuple // World-space hit point
	EyeV    core.Tuple // Toward the eye
	NormalV core.Tuple // Surface normal, flipped to face the eye
	Inside  bool       // The ray started inside the object

	ReflectV   core.Tuple // Ray direction mirrored about the normal
	OverPoint  core.Tuple // Point nudged above the surface, for shadow rays
	UnderPoint core.Tuple // Point nudged below the surface, for refraction rays

	N1 float64 // Refractive index of the medium being exited
	N2 float64 // Refractive index of the medium being entered
}

// PrepareComputations derives the shading context for hit. xs is the full
// ordered intersection list for the ray and is used to work out which
// refractive media the ray is passing between; nil means the hit alone.
func PrepareComputations(hit Intersection, ray core.Ray, xs Intersections) Computations {
	comps := Computations{
		T:      hit.T,
		Object: hit.Object,
	}

	comps.Point = ray.Position(hit.T)
	comps.EyeV = ray.Direction.Negate()
	comps.NormalV = hit.Object.NormalAt(comps.Point)

	if comps.NormalV.Dot(comps.EyeV) < 0 {
		comps.Inside = true
		comps.NormalV = comps.NormalV.Negate()
	}

	comps.ReflectV = ray.Direction.Reflect(comps.NormalV)
	offset := comps.NormalV.Multiply(core.Epsilon)
	comps.OverPoint = comps.Point.Add(offset)
	comps.UnderPoint = comps.Point.Subtract(offset)

	if xs == nil {
		xs = Intersections{hit}
	}
	comps.N1, comps.N2 = refractiveIndices(hit, xs)

	return comps
}

// refractiveIndices walks the intersections up to the hit, tracking which
// objects the ray is currently inside. The most recently entered object
// is the medium on each side of the hit.
func refractiveIndices(hit Intersection, xs Intersections) (n1, n2 float64) {
	n1, n2 = 1.0, 1.0
	var containers []*Shape

	for _, x := range xs {
		isHit := x.T == hit.T && x.Object.ID == hit.Object.ID

		if isHit {
			n1 = outermostIndex(containers)
		}

		idx := slices.IndexFunc(containers, func(s *Shape) bool { return s.ID == x.Object.ID })
		if idx >= 0 {
			containers = slices.Delete(containers, idx, idx+1)
		} else {
			containers = append(containers, x.Object)
		}

		if isHit {
			n2 = outermostIndex(containers)
			break
		}
	}
	return n1, n2
}

func outermostIndex(containers []*Shape) float64 {
	if len(containers) == 0 {
		return 1.0
	}
	return containers[len(containers)-1].Material.RefractiveIndex
}

// Schlick approximates the Fresnel reflectance at the hit: the fraction of
// light reflected rather than refracted. Total internal reflection gives 1.
func (c Computations) Schlick() float64 {
	cos := c.EyeV.Dot(c.NormalV)

	if c.N1 > c.N2 {
		n := c.N1 / c.N2
		sin2t := n * n * (1 - cos*cos)
		if sin2t > 1 {
			return 1.0
		}
		cos = math.Sqrt(1 - sin2t)
	}

	r0 := (c.N1 - c.N2) / (c.N1 + c.N2)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cos, 5)
}
