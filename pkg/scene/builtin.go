package scene

import (
	"sort"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// builtinScene describes a scene that is constructed in code rather than read from a file
type builtinScene struct {
	name        string
	description string
	build       func(logger core.Logger) (*Scene, error)
}

var builtinScenes = map[string]builtinScene{
	DefaultSceneName: {
		name:        "Default Scene",
		description: "Mirror ball, Phong spheres and a pyramid on a checkered floor",
		build:       NewDefaultScene,
	},
	"spheregrid": {
		name:        "Sphere Grid",
		description: "20x20 grid of rainbow-colored Phong spheres",
		build:       NewSphereGridScene,
	},
	"trianglemesh": {
		name:        "Triangle Meshes",
		description: "Box, pyramid and icosahedron built from triangle meshes",
		build:       NewTriangleMeshScene,
	},
}

// builtinInfos returns the built-in scenes, default first
func builtinInfos() []SceneInfo {
	infos := make([]SceneInfo, 0, len(builtinScenes))
	for id, b := range builtinScenes {
		infos = append(infos, SceneInfo{ID: id, Name: b.name, Description: b.description, Type: "builtin"})
	}
	sort.Slice(infos, func(i, j int) bool {
		if (infos[i].ID == DefaultSceneName) != (infos[j].ID == DefaultSceneName) {
			return infos[i].ID == DefaultSceneName
		}
		return infos[i].ID < infos[j].ID
	})
	return infos
}

// newCodeScene starts a BVH-backed scene that is populated directly
func newCodeScene(name string, camera CameraConfig, render RenderConfig) *Scene {
	return &Scene{
		Name:        name,
		Accelerator: core.NewBVH(),
		Camera:      camera,
		Render:      render,
	}
}

// add inserts a shaded primitive
func (s *Scene) add(primitive core.Primitive, shader core.Shader) {
	s.Accelerator.Add(core.NewObject(primitive, shader))
	s.Primitives++
}

// finish builds the accelerator and lights the scene
func (s *Scene) finish(logger core.Logger, lights ...core.LightSource) *Scene {
	s.Accelerator.Build()
	s.World = core.NewScene(s.Accelerator, lights...)
	s.World.Background = vec(s.Render.Background)
	s.World.MaxDepth = s.Render.MaxDepth

	if logger != nil {
		logger.Printf("Built scene %q: %d primitives, %d lights", s.Name, s.Primitives, len(lights))
	}
	return s
}
