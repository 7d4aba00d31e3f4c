package loaders

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/world"
	"gopkg.in/yaml.v3"
)

// ErrNoCamera is returned when a scene file never adds a camera
var ErrNoCamera = errors.New("scene has no camera")

// YAMLScene is a scene description decoded from YAML
type YAMLScene struct {
	World  *world.World
	Camera *renderer.Camera
}

// entry is one item of the top-level list, or one child of a group.
// Fields not used by the item's kind stay zero.
type entry struct {
	Add    string    `yaml:"add"`
	Define string    `yaml:"define"`
	Extend string    `yaml:"extend"`
	Value  yaml.Node `yaml:"value"`

	// camera
	Width       int       `yaml:"width"`
	Height      int       `yaml:"height"`
	FieldOfView float64   `yaml:"field-of-view"`
	From        []float64 `yaml:"from"`
	To          []float64 `yaml:"to"`
	Up          []float64 `yaml:"up"`

	// light
	At        []float64 `yaml:"at"`
	Intensity []float64 `yaml:"intensity"`

	// shapes
	Material  yaml.Node   `yaml:"material"`
	Transform yaml.Node   `yaml:"transform"`
	Min       *float64    `yaml:"min"`
	Max       *float64    `yaml:"max"`
	Closed    bool        `yaml:"closed"`
	Children  []yaml.Node `yaml:"children"`

	line int
}

// materialSpec holds the material keys present in the file. Unset keys are
// nil so that extend can layer one definition over another.
type materialSpec struct {
	Color           []float64    `yaml:"color"`
	Pattern         *patternSpec `yaml:"pattern"`
	Ambient         *float64     `yaml:"ambient"`
	Diffuse         *float64     `yaml:"diffuse"`
	Specular        *float64     `yaml:"specular"`
	Shininess       *float64     `yaml:"shininess"`
	Reflective      *float64     `yaml:"reflective"`
	Transparency    *float64     `yaml:"transparency"`
	RefractiveIndex *float64     `yaml:"refractive-index"`
}

type patternSpec struct {
	Type      string      `yaml:"type"`
	Colors    [][]float64 `yaml:"colors"`
	Transform yaml.Node   `yaml:"transform"`
}

type definition struct {
	extend string
	value  yaml.Node
}

// yamlParser resolves defines and builds the world in file order
type yamlParser struct {
	defines map[string]definition
	world   *world.World
	camera  *renderer.Camera
}

// LoadYAMLScene loads and parses a YAML scene file
func LoadYAMLScene(filename string) (*YAMLScene, error) {
	if err := validateYAMLPath(filename); err != nil {
		return nil, err
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open YAML file: %w", err)
	}
	defer file.Close()

	scene, err := ParseYAMLScene(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return scene, nil
}

// ParseYAMLScene parses a scene description from an io.Reader
func ParseYAMLScene(reader io.Reader) (*YAMLScene, error) {
	var items []yaml.Node
	if err := yaml.NewDecoder(reader).Decode(&items); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoCamera
		}
		return nil, fmt.Errorf("failed to decode YAML: %w", err)
	}

	p := &yamlParser{
		defines: make(map[string]definition),
		world:   world.New(nil),
	}

	for i := range items {
		e, err := decodeEntry(&items[i])
		if err != nil {
			return nil, err
		}
		if err := p.process(e); err != nil {
			return nil, err
		}
	}

	if p.camera == nil {
		return nil, ErrNoCamera
	}
	return &YAMLScene{World: p.world, Camera: p.camera}, nil
}

func decodeEntry(node *yaml.Node) (*entry, error) {
	var e entry
	if err := node.Decode(&e); err != nil {
		return nil, fmt.Errorf("line %d: %w", node.Line, err)
	}
	e.line = node.Line
	return &e, nil
}

func (p *yamlParser) process(e *entry) error {
	switch {
	case e.Define != "":
		if e.Extend != "" {
			if _, ok := p.defines[e.Extend]; !ok {
				return fmt.Errorf("line %d: %q extends unknown definition %q", e.line, e.Define, e.Extend)
			}
		}
		p.defines[e.Define] = definition{extend: e.Extend, value: e.Value}
		return nil

	case e.Add == "camera":
		return p.addCamera(e)

	case e.Add == "light":
		return p.addLight(e)

	case e.Add != "":
		shape, err := p.buildShape(e, 0)
		if err != nil {
			return err
		}
		p.world.Objects = append(p.world.Objects, shape)
		return nil

	default:
		return fmt.Errorf("line %d: item has neither add nor define", e.line)
	}
}

func (p *yamlParser) addCamera(e *entry) error {
	if e.Width <= 0 || e.Height <= 0 {
		return fmt.Errorf("line %d: invalid camera size %dx%d", e.line, e.Width, e.Height)
	}
	if e.FieldOfView <= 0 || e.FieldOfView >= math.Pi {
		return fmt.Errorf("line %d: invalid field-of-view %f: must be between 0 and pi radians", e.line, e.FieldOfView)
	}

	from, err := toPoint(e.From, "from", e.line)
	if err != nil {
		return err
	}
	to, err := toPoint(e.To, "to", e.line)
	if err != nil {
		return err
	}
	up, err := toVector(e.Up, "up", e.line)
	if err != nil {
		return err
	}

	view := core.ViewTransform(from, to, up)
	if !view.IsInvertible() {
		return fmt.Errorf("line %d: camera view: %w", e.line, core.ErrNotInvertible)
	}

	p.camera = renderer.NewCamera(e.Width, e.Height, e.FieldOfView)
	p.camera.SetTransform(view)
	return nil
}

func (p *yamlParser) addLight(e *entry) error {
	at, err := toPoint(e.At, "at", e.line)
	if err != nil {
		return err
	}
	intensity, err := toColor(e.Intensity, "intensity", e.line)
	if err != nil {
		return err
	}
	p.world.Lights = append(p.world.Lights, lights.NewPointLight(at, intensity))
	return nil
}

// buildShape creates a primitive, group or previously defined shape
func (p *yamlParser) buildShape(e *entry, depth int) (*geometry.Shape, error) {
	if depth > maxDefineDepth {
		return nil, fmt.Errorf("line %d: shape %q nests too deeply", e.line, e.Add)
	}
	var shape *geometry.Shape
	var inherited []core.Matrix

	switch e.Add {
	case "sphere":
		shape = geometry.NewSphere()
	case "plane":
		shape = geometry.NewPlane()
	case "cube":
		shape = geometry.NewCube()
	case "cylinder", "cone":
		minimum, maximum := math.Inf(-1), math.Inf(1)
		if e.Min != nil {
			minimum = *e.Min
		}
		if e.Max != nil {
			maximum = *e.Max
		}
		if e.Add == "cylinder" {
			shape = geometry.NewTruncatedCylinder(minimum, maximum, e.Closed)
		} else {
			shape = geometry.NewTruncatedCone(minimum, maximum, e.Closed)
		}
	case "group":
		shape = geometry.NewGroup()
		for i := range e.Children {
			ce, err := decodeEntry(&e.Children[i])
			if err != nil {
				return nil, err
			}
			child, err := p.buildShape(ce, depth+1)
			if err != nil {
				return nil, err
			}
			shape.AddChild(child)
		}
	default:
		def, ok := p.defines[e.Add]
		if !ok {
			return nil, fmt.Errorf("line %d: unknown shape %q", e.line, e.Add)
		}
		base, err := decodeEntry(&def.value)
		if err != nil {
			return nil, err
		}
		if base.Add == "" {
			return nil, fmt.Errorf("line %d: definition %q is not a shape", e.line, e.Add)
		}
		shape, err = p.buildShape(base, depth+1)
		if err != nil {
			return nil, err
		}
		inherited = []core.Matrix{shape.Transform()}
	}

	if !e.Material.IsZero() {
		spec, err := p.resolveMaterial(&e.Material)
		if err != nil {
			return nil, err
		}
		m, err := p.buildMaterial(spec, e.line)
		if err != nil {
			return nil, err
		}
		shape.Material = m
	}

	transforms, err := p.resolveTransforms(&e.Transform)
	if err != nil {
		return nil, err
	}
	if len(transforms) > 0 {
		m := core.Chain(append(inherited, transforms...)...)
		if !m.IsInvertible() {
			return nil, fmt.Errorf("line %d: %s transform: %w", e.line, e.Add, core.ErrNotInvertible)
		}
		shape.SetTransform(m)
	}

	return shape, nil
}

// resolveMaterial returns the merged keys for an inline map or a defined name
func (p *yamlParser) resolveMaterial(node *yaml.Node) (materialSpec, error) {
	if node.Kind == yaml.ScalarNode {
		return p.resolveMaterialDefine(node.Value, node.Line, 0)
	}

	var spec materialSpec
	if err := node.Decode(&spec); err != nil {
		return spec, fmt.Errorf("line %d: material: %w", node.Line, err)
	}
	return spec, nil
}

// maxDefineDepth bounds extend chains so a cycle is reported instead of looping
const maxDefineDepth = 32

func (p *yamlParser) resolveMaterialDefine(name string, line, depth int) (materialSpec, error) {
	var spec materialSpec
	def, ok := p.defines[name]
	if !ok {
		return spec, fmt.Errorf("line %d: unknown material %q", line, name)
	}
	if depth > maxDefineDepth {
		return spec, fmt.Errorf("line %d: definition %q extends itself", line, name)
	}

	if def.extend != "" {
		base, err := p.resolveMaterialDefine(def.extend, line, depth+1)
		if err != nil {
			return spec, err
		}
		spec = base
	}

	var overlay materialSpec
	if err := def.value.Decode(&overlay); err != nil {
		return spec, fmt.Errorf("line %d: material %q: %w", def.value.Line, name, err)
	}
	return spec.merge(overlay), nil
}

// merge layers the keys set in o over s
func (s materialSpec) merge(o materialSpec) materialSpec {
	if o.Color != nil {
		s.Color = o.Color
	}
	if o.Pattern != nil {
		s.Pattern = o.Pattern
	}
	for _, f := range []struct{ dst, src **float64 }{
		{&s.Ambient, &o.Ambient},
		{&s.Diffuse, &o.Diffuse},
		{&s.Specular, &o.Specular},
		{&s.Shininess, &o.Shininess},
		{&s.Reflective, &o.Reflective},
		{&s.Transparency, &o.Transparency},
		{&s.RefractiveIndex, &o.RefractiveIndex},
	} {
		if *f.src != nil {
			*f.dst = *f.src
		}
	}
	return s
}

func (p *yamlParser) buildMaterial(spec materialSpec, line int) (material.Material, error) {
	m := material.DefaultMaterial()

	if spec.Color != nil {
		c, err := toColor(spec.Color, "color", line)
		if err != nil {
			return m, err
		}
		m.Pattern = material.SolidPattern(c)
	}
	if spec.Pattern != nil {
		pattern, err := p.buildPattern(spec.Pattern, line)
		if err != nil {
			return m, err
		}
		m.Pattern = pattern
	}

	for _, f := range []struct {
		dst *float64
		src *float64
	}{
		{&m.Ambient, spec.Ambient},
		{&m.Diffuse, spec.Diffuse},
		{&m.Specular, spec.Specular},
		{&m.Shininess, spec.Shininess},
		{&m.Reflective, spec.Reflective},
		{&m.Transparency, spec.Transparency},
		{&m.RefractiveIndex, spec.RefractiveIndex},
	} {
		if f.src != nil {
			*f.dst = *f.src
		}
	}

	if m.RefractiveIndex <= 0 {
		return m, fmt.Errorf("line %d: invalid refractive-index %f: must be positive", line, m.RefractiveIndex)
	}
	return m, nil
}

func (p *yamlParser) buildPattern(spec *patternSpec, line int) (material.Pattern, error) {
	var pattern material.Pattern
	if len(spec.Colors) != 2 {
		return pattern, fmt.Errorf("line %d: pattern %q needs exactly two colors", line, spec.Type)
	}
	a, err := toColor(spec.Colors[0], "pattern color", line)
	if err != nil {
		return pattern, err
	}
	b, err := toColor(spec.Colors[1], "pattern color", line)
	if err != nil {
		return pattern, err
	}

	switch spec.Type {
	case "stripes", "stripe":
		pattern = material.StripePattern(a, b)
	case "gradient":
		pattern = material.GradientPattern(a, b)
	case "rings", "ring":
		pattern = material.RingPattern(a, b)
	case "checkers", "checker":
		pattern = material.CheckersPattern(a, b)
	default:
		return pattern, fmt.Errorf("line %d: unsupported pattern type: %q", line, spec.Type)
	}

	transforms, err := p.resolveTransforms(&spec.Transform)
	if err != nil {
		return pattern, err
	}
	if len(transforms) > 0 {
		m := core.Chain(transforms...)
		if !m.IsInvertible() {
			return pattern, fmt.Errorf("line %d: pattern transform: %w", line, core.ErrNotInvertible)
		}
		pattern = pattern.WithTransform(m)
	}
	return pattern, nil
}

// resolveTransforms flattens a transform list, expanding defined names in place.
// The first transform in the list is applied first.
func (p *yamlParser) resolveTransforms(node *yaml.Node) ([]core.Matrix, error) {
	return p.resolveTransformsDepth(node, 0)
}

func (p *yamlParser) resolveTransformsDepth(node *yaml.Node, depth int) ([]core.Matrix, error) {
	if node.IsZero() {
		return nil, nil
	}
	if depth > maxDefineDepth {
		return nil, fmt.Errorf("line %d: transform definitions nest too deeply", node.Line)
	}
	if node.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("line %d: transform must be a list", node.Line)
	}

	var out []core.Matrix
	for _, item := range node.Content {
		switch item.Kind {
		case yaml.ScalarNode:
			ms, err := p.resolveTransformDefine(item.Value, item.Line, depth+1)
			if err != nil {
				return nil, err
			}
			out = append(out, ms...)
		case yaml.SequenceNode:
			m, err := parseTransform(item)
			if err != nil {
				return nil, err
			}
			out = append(out, m)
		default:
			return nil, fmt.Errorf("line %d: invalid transform entry", item.Line)
		}
	}
	return out, nil
}

func (p *yamlParser) resolveTransformDefine(name string, line, depth int) ([]core.Matrix, error) {
	def, ok := p.defines[name]
	if !ok {
		return nil, fmt.Errorf("line %d: unknown transform %q", line, name)
	}

	var out []core.Matrix
	if def.extend != "" {
		base, err := p.resolveTransformDefine(def.extend, line, depth+1)
		if err != nil {
			return nil, err
		}
		out = base
	}
	ms, err := p.resolveTransformsDepth(&def.value, depth)
	if err != nil {
		return nil, err
	}
	return append(out, ms...), nil
}

// transformArity is the number of numeric arguments each operation takes
var transformArity = map[string]int{
	"translate": 3,
	"scale":     3,
	"rotate-x":  1,
	"rotate-y":  1,
	"rotate-z":  1,
	"shear":     6,
}

func parseTransform(node *yaml.Node) (core.Matrix, error) {
	if len(node.Content) == 0 {
		return core.Matrix{}, fmt.Errorf("line %d: empty transform", node.Line)
	}
	op := node.Content[0].Value
	arity, ok := transformArity[op]
	if !ok {
		return core.Matrix{}, fmt.Errorf("line %d: unsupported transform: %q", node.Line, op)
	}
	if len(node.Content)-1 != arity {
		return core.Matrix{}, fmt.Errorf("line %d: %s takes %d arguments, got %d", node.Line, op, arity, len(node.Content)-1)
	}

	args := make([]float64, arity)
	for i, n := range node.Content[1:] {
		v, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return core.Matrix{}, fmt.Errorf("line %d: invalid %s argument '%s': %w", n.Line, op, n.Value, err)
		}
		args[i] = v
	}

	switch op {
	case "translate":
		return core.Translation(args[0], args[1], args[2]), nil
	case "scale":
		return core.Scaling(args[0], args[1], args[2]), nil
	case "rotate-x":
		return core.RotationX(args[0]), nil
	case "rotate-y":
		return core.RotationY(args[0]), nil
	case "rotate-z":
		return core.RotationZ(args[0]), nil
	default:
		return core.Shearing(args[0], args[1], args[2], args[3], args[4], args[5]), nil
	}
}

func toTriple(v []float64, name string, line int) (float64, float64, float64, error) {
	if len(v) != 3 {
		return 0, 0, 0, fmt.Errorf("line %d: %s needs 3 values, got %d", line, name, len(v))
	}
	return v[0], v[1], v[2], nil
}

func toPoint(v []float64, name string, line int) (core.Tuple, error) {
	x, y, z, err := toTriple(v, name, line)
	return core.Point(x, y, z), err
}

func toVector(v []float64, name string, line int) (core.Tuple, error) {
	x, y, z, err := toTriple(v, name, line)
	return core.Vector(x, y, z), err
}

func toColor(v []float64, name string, line int) (core.Color, error) {
	r, g, b, err := toTriple(v, name, line)
	return core.NewColor(r, g, b), err
}

// validateYAMLPath rejects empty names and files that are not YAML
func validateYAMLPath(filename string) error {
	if filename == "" {
		return fmt.Errorf("filename cannot be empty")
	}
	ext := strings.ToLower(filepath.Ext(filepath.Clean(filename)))
	if ext != ".yml" && ext != ".yaml" {
		return fmt.Errorf("invalid file type: only .yml and .yaml files are allowed")
	}
	return nil
}
