package scene

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/shade"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name        string
	Path        string           // Scene file; empty for built-in scenes
	World       *core.Scene      // Root accelerator, lights and background
	Accelerator core.Accelerator // Built; the same value as World.Root
	Camera      CameraConfig
	Render      RenderConfig
	Primitives  int      // Number of shaded primitives, counting every model triangle
	Files       []string // Model files the scene was built from
}

// Overrides replace render settings of a loaded scene. Zero fields are ignored.
type Overrides struct {
	Width       int
	Height      int
	Supersample int
	MaxDepth    int
}

// Apply replaces the settings named by o
func (s *Scene) Apply(o Overrides) {
	if o.Width > 0 {
		s.Camera.Width = o.Width
	}
	if o.Height > 0 {
		s.Camera.Height = o.Height
	}
	if o.Supersample > 0 {
		s.Render.Supersample = o.Supersample
	}
	if o.MaxDepth > 0 {
		s.Render.MaxDepth = o.MaxDepth
		s.World.MaxDepth = o.MaxDepth
	}
}

// BVHStats returns statistics of the scene's accelerator, and false if it is not a BVH
func (s *Scene) BVHStats() (core.BVHStats, bool) {
	bvh, ok := s.Accelerator.(*core.BVH)
	if !ok {
		return core.BVHStats{}, false
	}
	return bvh.Stats(), true
}

// LoadFile loads and builds the scene file at path
func LoadFile(path string, logger core.Logger) (*Scene, error) {
	desc, err := Load(path)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	s, err := Build(name, desc, filepath.Dir(path), logger)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.Path = path
	return s, nil
}

// Build validates desc and turns it into a renderable scene. Model files are resolved
// relative to baseDir.
func Build(name string, desc *Description, baseDir string, logger core.Logger) (*Scene, error) {
	if err := desc.Validate(); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}

	shaders, err := buildShaders(desc.Shaders)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}

	s := &Scene{
		Name:        name,
		Accelerator: newAccelerator(desc.Render.Accelerator),
		Camera:      desc.Camera,
		Render:      desc.Render,
	}

	for i, obj := range desc.Objects {
		if err := s.addObject(obj, shaders, baseDir); err != nil {
			return nil, fmt.Errorf("scene: object %d: %w", i, err)
		}
	}
	s.Accelerator.Build()

	lights := make([]core.LightSource, len(desc.Lights))
	for i, l := range desc.Lights {
		if !vec(l.Position).IsFinite() || !vec(l.Color).IsFinite() {
			return nil, fmt.Errorf("scene: light %d: %w: non-finite position or color", i, core.ErrInvalidArgument)
		}
		lights[i] = core.NewLightSource(vec(l.Position), vec(l.Color))
	}

	s.World = core.NewScene(s.Accelerator, lights...)
	s.World.Background = vec(desc.Render.Background)
	s.World.MaxDepth = desc.Render.MaxDepth

	if logger != nil {
		logger.Printf("Built scene %q: %d primitives, %d lights, %s accelerator",
			name, s.Primitives, len(lights), desc.Render.Accelerator)
	}
	return s, nil
}

func newAccelerator(kind string) core.Accelerator {
	if kind == "list" {
		return core.NewList()
	}
	return core.NewBVH()
}

// addObject adds one described object, or every triangle of a described model
func (s *Scene) addObject(desc ObjectDescription, shaders map[string]core.Shader, baseDir string) error {
	shader, ok := shaders[desc.Shader]
	if !ok {
		return fmt.Errorf("%w: unknown shader %q", core.ErrInvalidArgument, desc.Shader)
	}

	var primitive core.Primitive
	switch desc.Type {
	case "sphere":
		if !vec(desc.Center).IsFinite() || !core.IsFinite(desc.Radius) || desc.Radius <= 0 {
			return fmt.Errorf("%w: sphere needs a finite center and a positive radius", core.ErrInvalidArgument)
		}
		primitive = geometry.NewSphere(vec(desc.Center), desc.Radius)

	case "plane":
		normal := vec(desc.Normal)
		if !vec(desc.Point).IsFinite() || !normal.IsFinite() || normal.LengthSquared() == 0 {
			return fmt.Errorf("%w: plane needs a finite point and a non-zero normal", core.ErrInvalidArgument)
		}
		primitive = geometry.NewPlane(vec(desc.Point), normal)

	case "triangle":
		if len(desc.Vertices) != 3 {
			return fmt.Errorf("%w: triangle needs 3 vertices, got %d", core.ErrInvalidArgument, len(desc.Vertices))
		}
		for i, v := range desc.Vertices {
			if !vec(v).IsFinite() {
				return fmt.Errorf("%w: triangle vertex %d is not finite: %v", core.ErrInvalidArgument, i, v)
			}
		}
		primitive = geometry.NewTriangle(vec(desc.Vertices[0]), vec(desc.Vertices[1]), vec(desc.Vertices[2]))

	case "obj", "ply":
		return s.addModel(desc, shader, baseDir)

	default:
		return fmt.Errorf("%w: unknown object type %q", core.ErrInvalidArgument, desc.Type)
	}

	s.Accelerator.Add(core.NewObject(primitive, shader))
	s.Primitives++
	return nil
}

func (s *Scene) addModel(desc ObjectDescription, shader core.Shader, baseDir string) error {
	if desc.File == "" {
		return fmt.Errorf("%w: %s object needs a file", core.ErrInvalidArgument, desc.Type)
	}
	path := desc.File
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}

	scale := 1.0
	if desc.Scale != nil {
		scale = *desc.Scale
	}

	read := loaders.ReadOBJFile
	if desc.Type == "ply" {
		read = loaders.ReadPLYFile
	}
	n, err := read(path, s.Accelerator, shader, scale, vec(desc.Translate))
	if err != nil {
		return err
	}

	s.Primitives += n
	s.Files = append(s.Files, path)
	return nil
}

// buildShaders constructs every described shader. Shaders may reference each other in any
// order, but not in a cycle.
func buildShaders(descs []ShaderDescription) (map[string]core.Shader, error) {
	byName := make(map[string]ShaderDescription, len(descs))
	for i, d := range descs {
		if d.Name == "" {
			return nil, fmt.Errorf("shader %d: %w: missing name", i, core.ErrInvalidArgument)
		}
		if _, dup := byName[d.Name]; dup {
			return nil, fmt.Errorf("shader %q: %w: defined twice", d.Name, core.ErrInvalidArgument)
		}
		byName[d.Name] = d
	}

	b := &shaderBuilder{
		descs:    byName,
		built:    make(map[string]core.Shader, len(descs)),
		visiting: make(map[string]bool),
	}
	for _, d := range descs {
		if _, err := b.resolve(d.Name); err != nil {
			return nil, err
		}
	}
	return b.built, nil
}

type shaderBuilder struct {
	descs    map[string]ShaderDescription
	built    map[string]core.Shader
	visiting map[string]bool
}

func (b *shaderBuilder) resolve(name string) (core.Shader, error) {
	if shader, ok := b.built[name]; ok {
		return shader, nil
	}
	d, ok := b.descs[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown shader %q", core.ErrInvalidArgument, name)
	}
	if b.visiting[name] {
		return nil, fmt.Errorf("shader %q: %w: references itself", name, core.ErrInvalidArgument)
	}
	b.visiting[name] = true
	defer delete(b.visiting, name)

	shader, err := b.construct(d)
	if err != nil {
		return nil, fmt.Errorf("shader %q: %w", name, err)
	}
	b.built[name] = shader
	return shader, nil
}

func (b *shaderBuilder) construct(d ShaderDescription) (core.Shader, error) {
	switch d.Type {
	case "solid":
		if !vec(d.Color).IsFinite() {
			return nil, fmt.Errorf("%w: solid color %v is not finite", core.ErrInvalidArgument, d.Color)
		}
		return shade.NewSolid(vec(d.Color)), nil

	case "phong":
		inner, err := b.resolve(d.Inner)
		if err != nil {
			return nil, err
		}
		return shade.NewPhong(inner, vec(d.Ambient), d.Diffuse, d.Specular, d.Shininess)

	case "checker":
		even, err := b.resolve(d.Even)
		if err != nil {
			return nil, err
		}
		odd, err := b.resolve(d.Odd)
		if err != nil {
			return nil, err
		}
		return shade.NewCheckerBoard(even, odd, d.Size)

	case "mirror":
		inner, err := b.resolve(d.Inner)
		if err != nil {
			return nil, err
		}
		return shade.NewMirror(inner, d.Reflectance)

	default:
		return nil, fmt.Errorf("%w: unknown shader type %q", core.ErrInvalidArgument, d.Type)
	}
}
