package shade

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

func vecClose(a, b core.Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}

// newTestScene builds a list-backed scene from the given objects
func newTestScene(lights []core.LightSource, objects ...*core.Object) *core.Scene {
	list := core.NewList()
	for _, obj := range objects {
		list.Add(obj)
	}
	list.Build()
	return core.NewScene(list, lights...)
}

func mustPhong(t *testing.T, inner core.Shader, ambient core.Vec3, diffuse, specular, shininess float64) core.Shader {
	t.Helper()
	s, err := NewPhong(inner, ambient, diffuse, specular, shininess)
	if err != nil {
		t.Fatalf("NewPhong failed: %v", err)
	}
	return s
}

var groundRay = core.NewRay(core.NewVec3(0, 5, 5), core.NewVec3(0, -1, -1))

func TestPhong_SingleLightReducesToLambert(t *testing.T) {
	base := core.NewVec3(0.5, 0.25, 1)
	ambient := core.NewVec3(0.1, 0.1, 0.1)
	phong := mustPhong(t, NewSolid(base), ambient, 0.8, 0, 0)

	ground := core.NewObject(geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)), phong)
	light := core.NewLightSource(core.NewVec3(4, 3, 0), core.NewVec3(1, 1, 1))
	scene := newTestScene([]core.LightSource{light}, ground)

	got := scene.Trace(groundRay).Shade()

	// N·L = 0.6 for a light at (4,3,0) seen from the origin
	expected := ambient.Add(base.Multiply(0.8 * 0.6))
	if !vecClose(got, expected, 1e-9) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestPhong_AmbientAddedOnce(t *testing.T) {
	ambient := core.NewVec3(0.2, 0.3, 0.4)
	phong := mustPhong(t, NewSolid(core.NewVec3(1, 1, 1)), ambient, 0, 0, 1)

	ground := core.NewObject(geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)), phong)
	lights := []core.LightSource{
		core.NewLightSource(core.NewVec3(0, 10, 0), core.NewVec3(1, 1, 1)),
		core.NewLightSource(core.NewVec3(5, 10, 0), core.NewVec3(1, 1, 1)),
		core.NewLightSource(core.NewVec3(-5, 10, 0), core.NewVec3(1, 1, 1)),
	}
	scene := newTestScene(lights, ground)

	if got := scene.Trace(groundRay).Shade(); !vecClose(got, ambient, 1e-12) {
		t.Errorf("Expected ambient %v with no diffuse or specular, got %v", ambient, got)
	}
}

func TestPhong_SpecularHighlight(t *testing.T) {
	phong := mustPhong(t, NewSolid(core.NewVec3(1, 1, 1)), core.Black, 0, 0.5, 10)

	ground := core.NewObject(geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)), phong)
	// The light sits exactly along the mirrored view direction
	light := core.NewLightSource(core.NewVec3(0, 10, -10), core.NewVec3(1, 0.5, 0.25))
	scene := newTestScene([]core.LightSource{light}, ground)

	got := scene.Trace(groundRay).Shade()
	expected := core.NewVec3(0.5, 0.25, 0.125)
	if !vecClose(got, expected, 1e-9) {
		t.Errorf("Expected full specular %v, got %v", expected, got)
	}
}

func TestPhong_Shadow(t *testing.T) {
	base := core.NewVec3(1, 1, 1)
	ambient := core.NewVec3(0.05, 0.05, 0.05)
	phong := mustPhong(t, NewSolid(base), ambient, 0.8, 0, 0)

	ground := core.NewObject(geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)), phong)
	occluder := core.NewObject(geometry.NewSphere(core.NewVec3(0, 2, 0), 0.5), NewSolid(base))

	tests := []struct {
		name     string
		light    core.Vec3
		expected core.Vec3
	}{
		{"light behind occluder", core.NewVec3(0, 5, 0), ambient},
		{"light in front of occluder", core.NewVec3(0, 1, 0), ambient.Add(base.Multiply(0.8))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			light := core.NewLightSource(tt.light, core.NewVec3(1, 1, 1))
			scene := newTestScene([]core.LightSource{light}, ground, occluder)

			got := scene.Trace(groundRay).Shade()
			if !vecClose(got, tt.expected, 1e-9) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestCheckerBoard_Parity(t *testing.T) {
	const s = 0.5
	board := &CheckerBoard{Even: NewSolid(core.Black), Odd: NewSolid(core.NewVec3(1, 1, 1)), Size: s}

	tests := []struct {
		name string
		uv   core.Vec2
		even bool
	}{
		{"origin", core.NewVec2(0, 0), true},
		{"two tiles along u", core.NewVec2(2*s, 0), true},
		{"one tile along u", core.NewVec2(s, 0), false},
		{"one tile along v", core.NewVec2(0, s), false},
		{"diagonal", core.NewVec2(s, s), true},
		{"negative u", core.NewVec2(-s/2, 0), false},
		{"negative u and v", core.NewVec2(-s/2, -s/2), true},
		// Tile indices beyond the int64 range
		{"far u", core.NewVec2(1e19, 0), true},
		{"far u, one tile along v", core.NewVec2(1e19, s), false},
		{"far negative u, negative v", core.NewVec2(-1e19, -s/2), false},
		{"far u and v", core.NewVec2(1e19, -3e20), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := board.selectsEven(tt.uv); got != tt.even {
				t.Errorf("selectsEven(%v) = %t, want %t", tt.uv, got, tt.even)
			}
		})
	}
}

func TestCheckerBoard_ShadesFromHitUV(t *testing.T) {
	white := core.NewVec3(1, 1, 1)
	board, err := NewCheckerBoard(NewSolid(core.Black), NewSolid(white), 1)
	if err != nil {
		t.Fatalf("NewCheckerBoard failed: %v", err)
	}

	plane := geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	shadeAt := func(x, z float64) core.Vec3 {
		hit := plane.HitTest(core.NewRay(core.NewVec3(x, 1, z), core.NewVec3(0, -1, 0)), nil, 0, 10)
		return board.Shade(&hit, nil)
	}

	if got := shadeAt(0.5, 0.5); got != core.Black {
		t.Errorf("Expected even tile at (0.5, 0.5), got %v", got)
	}
	if got := shadeAt(1.5, 0.5); got != white {
		t.Errorf("Expected odd tile at (1.5, 0.5), got %v", got)
	}
	if got := shadeAt(2.5, 0.5); got != core.Black {
		t.Errorf("Expected even tile at (2.5, 0.5), got %v", got)
	}
}

func TestMirror_ReflectsScene(t *testing.T) {
	red := core.NewVec3(1, 0, 0)
	mirror, err := NewMirror(NewSolid(core.Black), 1)
	if err != nil {
		t.Fatalf("NewMirror failed: %v", err)
	}

	floor := core.NewObject(geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)), mirror)
	ball := core.NewObject(geometry.NewSphere(core.NewVec3(0, 3, 0), 1), NewSolid(red))
	scene := newTestScene(nil, floor, ball)
	scene.Background = core.NewVec3(0, 0, 1)

	got := scene.Trace(core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))).Shade()
	if got != red {
		t.Errorf("Expected the reflected ball %v, got %v", red, got)
	}
}

func TestMirror_DepthBoundsReflections(t *testing.T) {
	white := core.NewVec3(1, 1, 1)
	mirror, err := NewMirror(NewSolid(white), 0.5)
	if err != nil {
		t.Fatalf("NewMirror failed: %v", err)
	}

	// Two facing mirrors would reflect forever without the depth limit
	bottom := core.NewObject(geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)), mirror)
	top := core.NewObject(geometry.NewPlane(core.NewVec3(0, 4, 0), core.NewVec3(0, -1, 0)), mirror)
	scene := newTestScene(nil, bottom, top)

	got := scene.Trace(core.NewRay(core.NewVec3(0, 2, 0), core.NewVec3(0, -1, 0))).Shade()

	// Depths 0..MaxDepth each contribute half of what is left
	expected := 1 - math.Pow(0.5, float64(scene.MaxDepth+1))
	if !vecClose(got, white.Multiply(expected), 1e-12) {
		t.Errorf("Expected %f per channel, got %v", expected, got)
	}
}

func TestFactory_Validation(t *testing.T) {
	solid := NewSolid(core.NewVec3(1, 1, 1))
	inf := math.Inf(1)
	nan := math.NaN()

	tests := []struct {
		name    string
		build   func() (core.Shader, error)
		wantErr error
	}{
		{"valid phong", func() (core.Shader, error) { return NewPhong(solid, core.Black, 0.5, 0.5, 10) }, nil},
		{"phong without inner", func() (core.Shader, error) { return NewPhong(nil, core.Black, 0.5, 0.5, 10) }, core.ErrInvalidArgument},
		{"phong negative diffuse", func() (core.Shader, error) { return NewPhong(solid, core.Black, -0.1, 0.5, 10) }, core.ErrInvalidArgument},
		{"phong negative specular", func() (core.Shader, error) { return NewPhong(solid, core.Black, 0.5, -1, 10) }, core.ErrInvalidArgument},
		{"phong infinite shininess", func() (core.Shader, error) { return NewPhong(solid, core.Black, 0.5, 0.5, inf) }, core.ErrInvalidArgument},
		{"phong NaN diffuse", func() (core.Shader, error) { return NewPhong(solid, core.Black, nan, 0.5, 10) }, core.ErrInvalidArgument},
		{"phong infinite ambient", func() (core.Shader, error) { return NewPhong(solid, core.NewVec3(inf, 0, 0), 0.5, 0.5, 10) }, core.ErrInvalidArgument},
		{"valid checkerboard", func() (core.Shader, error) { return NewCheckerBoard(solid, solid, 0.25) }, nil},
		{"checkerboard without shader", func() (core.Shader, error) { return NewCheckerBoard(solid, nil, 0.25) }, core.ErrInvalidArgument},
		{"checkerboard negative size", func() (core.Shader, error) { return NewCheckerBoard(solid, solid, -1) }, core.ErrInvalidArgument},
		{"checkerboard infinite size", func() (core.Shader, error) { return NewCheckerBoard(solid, solid, inf) }, core.ErrInvalidArgument},
		{"checkerboard NaN size", func() (core.Shader, error) { return NewCheckerBoard(solid, solid, nan) }, core.ErrInvalidArgument},
		{"checkerboard zero size", func() (core.Shader, error) { return NewCheckerBoard(solid, solid, 0) }, core.ErrUnsupported},
		{"checkerboard near-zero size", func() (core.Shader, error) { return NewCheckerBoard(solid, solid, core.Epsilon/2) }, core.ErrUnsupported},
		{"valid mirror", func() (core.Shader, error) { return NewMirror(solid, 0.3) }, nil},
		{"mirror reflectance above one", func() (core.Shader, error) { return NewMirror(solid, 1.5) }, core.ErrInvalidArgument},
		{"mirror without inner", func() (core.Shader, error) { return NewMirror(nil, 0.3) }, core.ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shader, err := tt.build()
			if tt.wantErr == nil {
				if err != nil || shader == nil {
					t.Fatalf("Expected a shader, got %v (err %v)", shader, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
			if errors.Is(err, core.ErrInvalidArgument) && errors.Is(err, core.ErrUnsupported) {
				t.Error("Invalid and unsupported must stay distinct")
			}
		})
	}
}
