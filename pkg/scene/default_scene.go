package scene

import "github.com/df07/go-whitted-raytracer/pkg/core"

// DefaultSceneName is the name of the scene that needs no file
const DefaultSceneName = "default"

// DefaultDescription describes a checkered floor with a mirror ball between two
// Phong-shaded spheres and a small pyramid, lit by two point lights
func DefaultDescription() *Description {
	return &Description{
		Camera: DefaultCameraConfig(),
		Render: DefaultRenderConfig(),
		Lights: []LightDescription{
			{Position: [3]float64{-4, 6, 4}, Color: [3]float64{0.8, 0.8, 0.8}},
			{Position: [3]float64{5, 3, 2}, Color: [3]float64{0.3, 0.3, 0.35}},
		},
		Shaders: []ShaderDescription{
			{Name: "white", Type: "solid", Color: [3]float64{0.9, 0.9, 0.9}},
			{Name: "charcoal", Type: "solid", Color: [3]float64{0.15, 0.15, 0.15}},
			{Name: "red", Type: "solid", Color: [3]float64{0.8, 0.2, 0.15}},
			{Name: "blue", Type: "solid", Color: [3]float64{0.1, 0.25, 0.7}},
			{Name: "gold", Type: "solid", Color: [3]float64{0.85, 0.65, 0.2}},
			{Name: "tiles", Type: "checker", Even: "white", Odd: "charcoal", Size: 0.5},
			{Name: "floor", Type: "phong", Inner: "tiles", Ambient: [3]float64{0.05, 0.05, 0.05}, Diffuse: 0.9, Specular: 0.1, Shininess: 8},
			{Name: "glossy-red", Type: "phong", Inner: "red", Ambient: [3]float64{0.04, 0.01, 0.01}, Diffuse: 0.8, Specular: 0.6, Shininess: 40},
			{Name: "matte-blue", Type: "phong", Inner: "blue", Ambient: [3]float64{0.01, 0.02, 0.05}, Diffuse: 0.9, Specular: 0.1, Shininess: 5},
			{Name: "matte-gold", Type: "phong", Inner: "gold", Ambient: [3]float64{0.04, 0.03, 0.01}, Diffuse: 0.8, Specular: 0.3, Shininess: 20},
			{Name: "mirror", Type: "mirror", Inner: "white", Reflectance: 0.85},
		},
		Objects: []ObjectDescription{
			{Type: "plane", Shader: "floor", Point: [3]float64{0, 0, 0}, Normal: [3]float64{0, 1, 0}},
			{Type: "sphere", Shader: "mirror", Center: [3]float64{0, 0.6, 0}, Radius: 0.6},
			{Type: "sphere", Shader: "glossy-red", Center: [3]float64{-1.4, 0.4, 0.3}, Radius: 0.4},
			{Type: "sphere", Shader: "matte-blue", Center: [3]float64{1.3, 0.35, 0.6}, Radius: 0.35},
			{Type: "triangle", Shader: "matte-gold", Vertices: [][3]float64{{0.4, 0, 1.2}, {1.0, 0, 1.5}, {0.7, 0.6, 1.35}}},
			{Type: "triangle", Shader: "matte-gold", Vertices: [][3]float64{{1.0, 0, 1.5}, {0.5, 0, 1.9}, {0.7, 0.6, 1.35}}},
			{Type: "triangle", Shader: "matte-gold", Vertices: [][3]float64{{0.5, 0, 1.9}, {0.4, 0, 1.2}, {0.7, 0.6, 1.35}}},
		},
	}
}

// NewDefaultScene builds the default scene
func NewDefaultScene(logger core.Logger) (*Scene, error) {
	return Build(DefaultSceneName, DefaultDescription(), ".", logger)
}
