package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/shade"
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Vec3 {
	hRad := h * math.Pi / 180.0

	// OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to LMS
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS to linear RGB
	rgb := core.NewVec3(
		+4.0767416621*l_-3.3077115913*m_+0.2309699292*s_,
		-1.2684380046*l_+2.6097574011*m_-0.3413193965*s_,
		-0.0041960863*l_-0.7034186147*m_+1.7076147010*s_,
	)
	return rgb.Clamp(0, 1)
}

// NewSphereGridScene creates a scene with a 20x20 grid of spheres. Its size makes it the
// benchmark for the BVH.
func NewSphereGridScene(logger core.Logger) (*Scene, error) {
	camera := CameraConfig{
		Position: [3]float64{4.5, 6, 18},    // Farther back and slightly lower
		LookAt:   [3]float64{4.5, 0.8, 4.5}, // Center of grid, slightly lower
		Up:       [3]float64{0, 1, 0},
		FOV:      40,
		Width:    800,
		Height:   450,
	}
	render := DefaultRenderConfig()
	render.Background = [3]float64{0.5, 0.7, 1.0}

	s := newCodeScene("spheregrid", camera, render)

	white := shade.NewSolid(core.NewVec3(0.8, 0.8, 0.8))
	gray := shade.NewSolid(core.NewVec3(0.4, 0.4, 0.4))
	tiles, err := shade.NewCheckerBoard(white, gray, 1)
	if err != nil {
		return nil, err
	}
	ground, err := shade.NewPhong(tiles, core.NewVec3(0.05, 0.05, 0.05), 0.8, 0, 1)
	if err != nil {
		return nil, err
	}
	s.add(geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)), ground)

	gridSize := 20

	// Fit the grid into roughly 9x9 units
	targetArea := 9.0
	spacing := targetArea / float64(gridSize-1)
	sphereRadius := core.Clamp(spacing*0.35, 0.02, 0.35)

	// OKLCH parameters for color variation
	baseLightness := 0.65
	minChroma := 0.05 // Near gray
	maxChroma := 0.25 // Vivid

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			x := float64(i)*spacing - targetArea/2.0 + 4.5 // Center around x=4.5
			z := float64(j)*spacing - targetArea/2.0 + 4.5 // Center around z=4.5
			y := sphereRadius                              // Sphere sits on ground plane

			// Hue varies across X, chroma across Z
			hue := (float64(i) / float64(gridSize-1)) * 360.0
			chroma := minChroma + (float64(j)/float64(gridSize-1))*(maxChroma-minChroma)
			lightness := baseLightness + 0.1*math.Sin(float64(i+j)*0.5)

			shininess := 20 + 40*float64((i+j)%3)
			phong, err := shade.NewPhong(shade.NewSolid(oklchToRGB(lightness, chroma, hue)),
				core.NewVec3(0.02, 0.02, 0.02), 0.85, 0.5, shininess)
			if err != nil {
				return nil, err
			}
			s.add(geometry.NewSphere(core.NewVec3(x, y, z), sphereRadius), phong)
		}
	}

	return s.finish(logger,
		core.NewLightSource(core.NewVec3(20, 25, 20), core.NewVec3(0.9, 0.85, 0.8)),  // warm key
		core.NewLightSource(core.NewVec3(-10, 15, 10), core.NewVec3(0.2, 0.25, 0.3)), // cool fill
	), nil
}
