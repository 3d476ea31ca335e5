package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func vecClose(a, b core.Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}

func TestCameraGetCameraForward(t *testing.T) {
	config := scene.CameraConfig{
		Position: [3]float64{1, 2, 3},
		LookAt:   [3]float64{1, 2, -7},
		Up:       [3]float64{0, 1, 0},
		FOV:      45,
		Width:    400,
		Height:   400,
	}
	camera := NewCamera(config)

	if forward := camera.GetCameraForward(); !vecClose(forward, core.NewVec3(0, 0, -1), 1e-9) {
		t.Errorf("Expected forward direction (0,0,-1), got %v", forward)
	}
}

func TestCameraGetRay(t *testing.T) {
	// 90 degrees over a square image puts the viewport corners at (+-1, +-1, -1)
	config := scene.CameraConfig{
		Position: [3]float64{0, 0, 0},
		LookAt:   [3]float64{0, 0, -1},
		Up:       [3]float64{0, 1, 0},
		FOV:      90,
		Width:    2,
		Height:   2,
	}
	camera := NewCamera(config)

	tests := []struct {
		name     string
		s, t     float64
		expected core.Vec3
	}{
		{"center", 0.5, 0.5, core.NewVec3(0, 0, -1)},
		{"lower left", 0, 0, core.NewVec3(-1, -1, -1)},
		{"upper right", 1, 1, core.NewVec3(1, 1, -1)},
		{"right edge", 1, 0.5, core.NewVec3(1, 0, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := camera.GetRay(tt.s, tt.t)
			if ray.Origin != core.NewVec3(0, 0, 0) {
				t.Errorf("Expected rays to start at the camera, got %v", ray.Origin)
			}
			if !vecClose(ray.Direction, tt.expected, 1e-9) {
				t.Errorf("Expected direction %v, got %v", tt.expected, ray.Direction)
			}
		})
	}
}

func TestCameraAspectRatio(t *testing.T) {
	config := scene.CameraConfig{
		Position: [3]float64{0, 0, 0},
		LookAt:   [3]float64{0, 0, -1},
		Up:       [3]float64{0, 1, 0},
		FOV:      90,
		Width:    200,
		Height:   100,
	}
	camera := NewCamera(config)

	// Twice as wide as tall: horizontal extent doubles, vertical stays at 90 degrees
	if ray := camera.GetRay(1, 0.5); !vecClose(ray.Direction, core.NewVec3(2, 0, -1), 1e-9) {
		t.Errorf("Expected right edge direction (2,0,-1), got %v", ray.Direction)
	}
	if ray := camera.GetRay(0.5, 1); !vecClose(ray.Direction, core.NewVec3(0, 1, -1), 1e-9) {
		t.Errorf("Expected top edge direction (0,1,-1), got %v", ray.Direction)
	}
}
