package scene

import (
	"fmt"
	"io"
	"os"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/pelletier/go-toml/v2"
)

// Description is the TOML form of a scene file
type Description struct {
	Camera  CameraConfig        `toml:"camera"`
	Render  RenderConfig        `toml:"render"`
	Lights  []LightDescription  `toml:"lights"`
	Shaders []ShaderDescription `toml:"shaders"`
	Objects []ObjectDescription `toml:"objects"`
}

// CameraConfig places a pinhole camera and sizes the image it sees
type CameraConfig struct {
	Position [3]float64 `toml:"position"`
	LookAt   [3]float64 `toml:"look_at"`
	Up       [3]float64 `toml:"up"`
	FOV      float64    `toml:"fov"` // Vertical field of view in degrees
	Width    int        `toml:"width"`
	Height   int        `toml:"height"`
}

// RenderConfig contains rendering configuration
type RenderConfig struct {
	MaxDepth    int        `toml:"max_depth"`   // Deepest secondary ray that is still shaded
	Background  [3]float64 `toml:"background"`  // Color of rays that hit nothing
	Supersample int        `toml:"supersample"` // Rays per pixel along each image axis
	Accelerator string     `toml:"accelerator"` // "bvh" or "list"
}

// LightDescription is a point light
type LightDescription struct {
	Position [3]float64 `toml:"position"`
	Color    [3]float64 `toml:"color"`
}

// ShaderDescription is a named shader. Which fields apply depends on Type:
//
//	solid:   color
//	phong:   inner, ambient, diffuse, specular, shininess
//	checker: even, odd, size
//	mirror:  inner, reflectance
//
// inner, even and odd name other shaders of the same file.
type ShaderDescription struct {
	Name string `toml:"name"`
	Type string `toml:"type"`

	Color [3]float64 `toml:"color"`

	Inner     string     `toml:"inner"`
	Ambient   [3]float64 `toml:"ambient"`
	Diffuse   float64    `toml:"diffuse"`
	Specular  float64    `toml:"specular"`
	Shininess float64    `toml:"shininess"`

	Even string  `toml:"even"`
	Odd  string  `toml:"odd"`
	Size float64 `toml:"size"`

	Reflectance float64 `toml:"reflectance"`
}

// ObjectDescription is one shaded primitive or model. Which fields apply depends on Type:
//
//	sphere:   center, radius
//	plane:    point, normal
//	triangle: vertices (exactly three)
//	obj, ply: file, scale, translate
type ObjectDescription struct {
	Type   string `toml:"type"`
	Shader string `toml:"shader"`

	Center [3]float64 `toml:"center"`
	Radius float64    `toml:"radius"`

	Point  [3]float64 `toml:"point"`
	Normal [3]float64 `toml:"normal"`

	Vertices [][3]float64 `toml:"vertices"`

	File      string     `toml:"file"` // Relative to the scene file
	Scale     *float64   `toml:"scale"`
	Translate [3]float64 `toml:"translate"`
}

// DefaultCameraConfig returns sensible default values
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Position: [3]float64{0, 1, 5},
		LookAt:   [3]float64{0, 0.5, 0},
		Up:       [3]float64{0, 1, 0},
		FOV:      40,
		Width:    400,
		Height:   225,
	}
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		MaxDepth:    core.DefaultMaxDepth,
		Background:  [3]float64{0.05, 0.05, 0.1},
		Supersample: 1,
		Accelerator: "bvh",
	}
}

// Validate checks the camera and render settings
func (d *Description) Validate() error {
	c := d.Camera
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: image size %dx%d must be positive", core.ErrInvalidArgument, c.Width, c.Height)
	}
	if !core.IsFinite(c.FOV) || c.FOV <= 0 || c.FOV >= 180 {
		return fmt.Errorf("%w: fov %g must lie in (0, 180)", core.ErrInvalidArgument, c.FOV)
	}
	if vec(c.Position) == vec(c.LookAt) {
		return fmt.Errorf("%w: camera position and look_at coincide", core.ErrInvalidArgument)
	}
	if vec(c.Up).Cross(vec(c.LookAt).Subtract(vec(c.Position))).LengthSquared() == 0 {
		return fmt.Errorf("%w: camera up %v is parallel to the view direction", core.ErrInvalidArgument, c.Up)
	}

	r := d.Render
	if r.MaxDepth < 0 {
		return fmt.Errorf("%w: max_depth %d is negative", core.ErrInvalidArgument, r.MaxDepth)
	}
	if r.Supersample < 1 {
		return fmt.Errorf("%w: supersample %d must be at least 1", core.ErrInvalidArgument, r.Supersample)
	}
	if r.Accelerator != "bvh" && r.Accelerator != "list" {
		return fmt.Errorf("%w: unknown accelerator %q", core.ErrInvalidArgument, r.Accelerator)
	}
	return nil
}

// Parse decodes a TOML scene description. Missing camera and render settings keep their
// defaults; unknown keys are an error.
func Parse(r io.Reader) (*Description, error) {
	desc := &Description{
		Camera: DefaultCameraConfig(),
		Render: DefaultRenderConfig(),
	}
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(desc); err != nil {
		return nil, fmt.Errorf("failed to decode scene: %w", err)
	}
	return desc, nil
}

// Load reads a TOML scene description from path
func Load(path string) (*Description, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	desc, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return desc, nil
}

func vec(a [3]float64) core.Vec3 {
	return core.NewVec3(a[0], a[1], a[2])
}
