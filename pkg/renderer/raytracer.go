package renderer

import (
	"image"
	"image/color"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

// Raytracer handles the rendering process
type Raytracer struct {
	scene  *scene.Scene
	camera *Camera
	logger core.Logger
}

// NewRaytracer creates a new raytracer for a built scene. logger may be nil.
func NewRaytracer(s *scene.Scene, logger core.Logger) *Raytracer {
	return &Raytracer{
		scene:  s,
		camera: NewCamera(s.Camera),
		logger: logger,
	}
}

// Camera returns the camera rays are generated from
func (rt *Raytracer) Camera() *Camera {
	return rt.camera
}

// Render traces one ray per sample, row by row from the top of the image. With a
// supersample factor n the image is rendered at n times the configured size and scaled
// down to it.
func (rt *Raytracer) Render() (*image.RGBA, RenderStats) {
	cfg := rt.scene.Camera
	factor := rt.scene.Render.Supersample
	if factor < 1 {
		factor = 1
	}
	width := cfg.Width * factor
	height := cfg.Height * factor

	stats := RenderStats{
		ID:          uuid.New(),
		Scene:       rt.scene.Name,
		Width:       cfg.Width,
		Height:      cfg.Height,
		Supersample: factor,
		Primitives:  rt.scene.Primitives,
		Lights:      len(rt.scene.World.LightSources()),
	}
	rt.printf("Render %s: scene %q at %dx%d, supersample %d", stats.ID, stats.Scene, cfg.Width, cfg.Height, factor)
	start := time.Now()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			s := (float64(i) + 0.5) / float64(width)
			t := 1 - (float64(j)+0.5)/float64(height)

			trace := rt.scene.World.Trace(rt.camera.GetRay(s, t))
			hit := trace.Hit()
			if hit.Hits() {
				stats.Hits++
			}
			img.SetRGBA(i, j, vec3ToColor(trace.ShadeHit(hit)))
			stats.PrimaryRays++
		}
	}

	if factor > 1 {
		img = downsample(img, cfg.Width, cfg.Height)
	}

	stats.Duration = time.Since(start)
	stats.AverageLuminance = CalculateAverageLuminance(img)
	rt.printf("Render %s: finished in %v (%d primary rays, %d hits)", stats.ID, stats.Duration, stats.PrimaryRays, stats.Hits)
	return img, stats
}

func (rt *Raytracer) printf(format string, args ...interface{}) {
	if rt.logger != nil {
		rt.logger.Printf(format, args...)
	}
}

// downsample scales a supersampled image to the target size with CatmullRom filtering
func downsample(img *image.RGBA, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// vec3ToColor converts a Vec3 color to RGBA with proper clamping and gamma correction
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	// Clamp to valid color range first; negative components have no square root
	colorVec = colorVec.Clamp(0.0, 1.0)

	// Apply gamma correction (gamma = 2.0)
	colorVec = colorVec.GammaCorrect(2.0)

	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}
