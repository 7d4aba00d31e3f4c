package material

import (
	"fmt"
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Object is anything a pattern can be painted on. Geometry shapes
// implement it by walking their own (and their parents') transforms.
type Object interface {
	WorldToObject(point core.Tuple) core.Tuple
}

// PatternKind selects the procedural function a Pattern evaluates
type PatternKind int

const (
	PatternSolid PatternKind = iota
	PatternStripe
	PatternGradient
	PatternRing
	PatternChecker
	PatternTest // Returns the pattern-space point as a color
)

func (k PatternKind) String() string {
	switch k {
	case PatternSolid:
		return "solid"
	case PatternStripe:
		return "stripe"
	case PatternGradient:
		return "gradient"
	case PatternRing:
		return "ring"
	case PatternChecker:
		return "checker"
	case PatternTest:
		return "test"
	default:
		return fmt.Sprintf("PatternKind(%d)", int(k))
	}
}

// Pattern is a procedural color function of a pattern-space point.
// The zero value is solid black with an identity transform.
type Pattern struct {
	Kind PatternKind
	A    core.Color // Solid color, or the first of the two alternating colors
	B    core.Color // Second color for two-color patterns

	transform core.Matrix
	inverse   core.Matrix
	placed    bool // false means identity transform
}

// SolidPattern returns a constant color everywhere
func SolidPattern(c core.Color) Pattern {
	return Pattern{Kind: PatternSolid, A: c}
}

// StripePattern alternates a and b by the parity of floor(x)
func StripePattern(a, b core.Color) Pattern {
	return Pattern{Kind: PatternStripe, A: a, B: b}
}

// GradientPattern blends from a to b over each unit of x
func GradientPattern(a, b core.Color) Pattern {
	return Pattern{Kind: PatternGradient, A: a, B: b}
}

// RingPattern alternates a and b in concentric rings in the xz plane
func RingPattern(a, b core.Color) Pattern {
	return Pattern{Kind: PatternRing, A: a, B: b}
}

// CheckersPattern alternates a and b in unit cubes
func CheckersPattern(a, b core.Color) Pattern {
	return Pattern{Kind: PatternChecker, A: a, B: b}
}

// TestPattern maps the pattern-space point straight to a color
func TestPattern() Pattern {
	return Pattern{Kind: PatternTest}
}

// WithTransform returns a copy of the pattern placed by m. It panics if m
// is not invertible.
func (p Pattern) WithTransform(m core.Matrix) Pattern {
	p.inverse = m.MustInverse()
	p.transform = m
	p.placed = true
	return p
}

// Transform returns the pattern's transform
func (p Pattern) Transform() core.Matrix {
	if !p.placed {
		return core.Identity()
	}
	return p.transform
}

// At evaluates the pattern at a point already in pattern space
func (p Pattern) At(point core.Tuple) core.Color {
	switch p.Kind {
	case PatternSolid:
		return p.A
	case PatternStripe:
		if isEven(math.Floor(point.X)) {
			return p.A
		}
		return p.B
	case PatternGradient:
		fraction := point.X - math.Floor(point.X)
		return p.A.Add(p.B.Subtract(p.A).Multiply(fraction))
	case PatternRing:
		if isEven(math.Floor(math.Sqrt(point.X*point.X + point.Z*point.Z))) {
			return p.A
		}
		return p.B
	case PatternChecker:
		if isEven(math.Floor(point.X) + math.Floor(point.Y) + math.Floor(point.Z)) {
			return p.A
		}
		return p.B
	case PatternTest:
		return core.NewColor(point.X, point.Y, point.Z)
	default:
		panic(fmt.Sprintf("unknown pattern kind %v", p.Kind))
	}
}

// AtObject converts a world point to object space, then to pattern space,
// and evaluates the pattern there
func (p Pattern) AtObject(obj Object, worldPoint core.Tuple) core.Color {
	objectPoint := obj.WorldToObject(worldPoint)
	patternPoint := objectPoint
	if p.placed {
		patternPoint = p.inverse.MulTuple(objectPoint)
	}
	return p.At(patternPoint)
}

func isEven(v float64) bool {
	return math.Mod(v, 2) == 0
}
