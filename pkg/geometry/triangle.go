package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Vec3 // The three vertices
	normal     core.Vec3 // Cached normal vector
	bbox       core.AABB // Cached bounding box
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3) *Triangle {
	t := &Triangle{
		V0: v0,
		V1: v1,
		V2: v2,
	}

	// Precompute normal and bounding box for efficiency
	t.normal = v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize()
	t.bbox = core.NewAABBFromPoints(v0, v1, v2)

	return t
}

// HitTest intersects the ray with the triangle using the Möller-Trumbore algorithm.
// Degenerate triangles have a zero determinant and are never hit.
func (t *Triangle) HitTest(ray core.Ray, owner *core.Object, tMin, tMax float64) core.Hit {
	const epsilon = 1e-12

	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	// If determinant is near zero, ray lies in plane of triangle
	if a > -epsilon && a < epsilon {
		return core.Miss()
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return core.Miss()
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return core.Miss()
	}

	tParam := f * edge2.Dot(q)
	if tParam < tMin || tParam > tMax {
		return core.Miss()
	}

	return core.NewHit(ray, tParam, owner, t)
}

// NormalAt returns the face normal, following the counter-clockwise winding V0, V1, V2
func (t *Triangle) NormalAt(point core.Vec3) core.Vec3 {
	return t.normal
}

// UVAt returns the barycentric weights of V1 and V2 at the point
func (t *Triangle) UVAt(point core.Vec3) core.Vec2 {
	e0 := t.V1.Subtract(t.V0)
	e1 := t.V2.Subtract(t.V0)
	p := point.Subtract(t.V0)

	d00 := e0.Dot(e0)
	d01 := e0.Dot(e1)
	d11 := e1.Dot(e1)
	d20 := p.Dot(e0)
	d21 := p.Dot(e1)

	denom := d00*d11 - d01*d01
	if denom == 0 {
		return core.Vec2{}
	}
	u := (d11*d20 - d01*d21) / denom
	v := (d00*d21 - d01*d20) / denom
	return core.NewVec2(u, v)
}

// BoundingBox returns the axis-aligned bounding box for this triangle
func (t *Triangle) BoundingBox() core.AABB {
	return t.bbox
}

// Equal reports whether two triangles have the same vertices in the same order
func (t *Triangle) Equal(other *Triangle) bool {
	return other != nil && t.V0 == other.V0 && t.V1 == other.V1 && t.V2 == other.V2
}
