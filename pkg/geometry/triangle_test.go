package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

func TestTriangle_Hit(t *testing.T) {
	triangle := NewTriangle(
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
	)

	tests := []struct {
		name      string
		origin    core.Vec3
		direction core.Vec3
		shouldHit bool
		expectedT float64
	}{
		{"hit inside", core.NewVec3(0.25, 0.25, 1), core.NewVec3(0, 0, -1), true, 1.0},
		{"hit from behind", core.NewVec3(0.25, 0.25, -2), core.NewVec3(0, 0, 1), true, 2.0},
		{"miss outside edge", core.NewVec3(0.75, 0.75, 1), core.NewVec3(0, 0, -1), false, 0},
		{"miss parallel", core.NewVec3(0.25, 0.25, 1), core.NewVec3(1, 0, 0), false, 0},
		{"miss pointing away", core.NewVec3(0.25, 0.25, 1), core.NewVec3(0, 0, 1), false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit := triangle.HitTest(core.NewRay(tt.origin, tt.direction), nil, 0.001, 1000)
			if hit.Hits() != tt.shouldHit {
				t.Fatalf("Expected hit=%t, got %t", tt.shouldHit, hit.Hits())
			}
			if tt.shouldHit && math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got %f", tt.expectedT, hit.T)
			}
		})
	}
}

func TestTriangle_NormalAndUV(t *testing.T) {
	triangle := NewTriangle(
		core.NewVec3(0, 0, 0),
		core.NewVec3(2, 0, 0),
		core.NewVec3(0, 2, 0),
	)

	hit := triangle.HitTest(core.NewRay(core.NewVec3(0.5, 1, 3), core.NewVec3(0, 0, -1)), nil, 0, 10)
	if !hit.Hits() {
		t.Fatal("Expected hit")
	}
	if n := hit.Normal(); n != core.NewVec3(0, 0, 1) {
		t.Errorf("Expected counter-clockwise normal (0,0,1), got %v", n)
	}
	uv := hit.UV()
	if math.Abs(uv.X-0.25) > 1e-9 || math.Abs(uv.Y-0.5) > 1e-9 {
		t.Errorf("Expected barycentric UV (0.25, 0.5), got %v", uv)
	}
}

func TestTriangle_DegenerateNeverHits(t *testing.T) {
	collinear := NewTriangle(
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 1, 1),
		core.NewVec3(2, 2, 2),
	)
	point := NewTriangle(
		core.NewVec3(1, 1, 1),
		core.NewVec3(1, 1, 1),
		core.NewVec3(1, 1, 1),
	)

	for _, triangle := range []*Triangle{collinear, point} {
		ray := core.NewRay(core.NewVec3(1, 1, 5), core.NewVec3(0, 0, -1))
		if hit := triangle.HitTest(ray, nil, 0, 1000); hit.Hits() {
			t.Errorf("Expected degenerate triangle %v to be missed", triangle)
		}
		if uv := triangle.UVAt(core.NewVec3(1, 1, 1)); uv != (core.Vec2{}) {
			t.Errorf("Expected zero UV for degenerate triangle, got %v", uv)
		}
	}
}

func TestTriangle_BoundingBoxIsTight(t *testing.T) {
	triangle := NewTriangle(
		core.NewVec3(-1, 2, 0.5),
		core.NewVec3(3, -1, 0),
		core.NewVec3(0, 0, 4),
	)
	box := triangle.BoundingBox()
	if box.Min != core.NewVec3(-1, -1, 0) || box.Max != core.NewVec3(3, 2, 4) {
		t.Errorf("Unexpected bounding box %v", box)
	}
}

func TestAddTriangleMesh(t *testing.T) {
	vertices := []core.Vec3{
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(1, 1, 0),
		core.NewVec3(0, 1, 0),
	}
	shader := solidShader{}

	list := core.NewList()
	n, err := AddTriangleMesh(list, vertices, []int{0, 1, 2, 0, 2, 3}, shader)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if n != 2 || len(list.Objects()) != 2 {
		t.Errorf("Expected 2 triangles, got %d (%d objects)", n, len(list.Objects()))
	}

	_, err = AddTriangleMesh(core.NewList(), vertices, []int{0, 1, 4}, shader)
	if !errors.Is(err, core.ErrMalformedInput) {
		t.Errorf("Expected ErrMalformedInput for out-of-range index, got %v", err)
	}

	_, err = AddTriangleMesh(core.NewList(), vertices, []int{0, 1}, shader)
	if !errors.Is(err, core.ErrMalformedInput) {
		t.Errorf("Expected ErrMalformedInput for partial face, got %v", err)
	}

	_, err = AddTriangleMesh(core.NewList(), vertices, []int{0, 1, 2}, nil)
	if !errors.Is(err, core.ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument for missing shader, got %v", err)
	}
}

type solidShader struct{}

func (solidShader) Shade(hit *core.Hit, trace *core.Trace) core.Vec3 {
	return core.NewVec3(1, 1, 1)
}
