package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Plane represents an infinite plane N·P = d defined by a support point and normal
type Plane struct {
	Point  core.Vec3 // Support point on the plane
	Normal core.Vec3 // Unit normal
	d      float64
	u, v   core.Vec3 // Orthonormal in-plane basis for UV mapping
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3) *Plane {
	n := normal.Normalize()

	// Pick a helper axis that is not parallel to the normal
	helper := core.NewVec3(1, 0, 0)
	if math.Abs(n.X) > 0.9 {
		helper = core.NewVec3(0, 1, 0)
	}
	u := helper.Cross(n).Normalize()

	return &Plane{
		Point:  point,
		Normal: n,
		d:      point.Dot(n),
		u:      u,
		v:      n.Cross(u),
	}
}

// HitTest intersects the ray with the plane. Rays parallel to the plane never hit.
func (p *Plane) HitTest(ray core.Ray, owner *core.Object, tMin, tMax float64) core.Hit {
	if math.Abs(ray.Direction.Normalize().Dot(p.Normal)) < core.Epsilon {
		return core.Miss()
	}

	t := (p.d - ray.Origin.Dot(p.Normal)) / ray.Direction.Dot(p.Normal)
	if t < tMin || t > tMax {
		return core.Miss()
	}

	return core.NewHit(ray, t, owner, p)
}

// NormalAt returns the plane normal, which is the same everywhere
func (p *Plane) NormalAt(point core.Vec3) core.Vec3 {
	return p.Normal
}

// UVAt projects the point onto the plane's basis, relative to the support point
func (p *Plane) UVAt(point core.Vec3) core.Vec2 {
	rel := point.Subtract(p.Point)
	return core.NewVec2(rel.Dot(p.u), rel.Dot(p.v))
}

// BoundingBox returns a bounding box for this plane. Axes the plane extends along are
// unbounded, so every hit lies inside the box however far away it is.
func (p *Plane) BoundingBox() core.AABB {
	const epsilon = 0.001 // Small thickness to avoid zero-width bounding box
	inf := math.Inf(1)

	// Check if the plane is axis-aligned for better BVH performance
	switch getAxisAlignment(p.Normal) {
	case XAxisAligned:
		// Plane is perpendicular to X axis (e.g., wall at x = constant)
		x := p.Point.X
		return core.NewAABB(
			core.NewVec3(x-epsilon, -inf, -inf),
			core.NewVec3(x+epsilon, inf, inf),
		)
	case YAxisAligned:
		// Plane is perpendicular to Y axis (e.g., ground plane at y = constant)
		y := p.Point.Y
		return core.NewAABB(
			core.NewVec3(-inf, y-epsilon, -inf),
			core.NewVec3(inf, y+epsilon, inf),
		)
	case ZAxisAligned:
		// Plane is perpendicular to Z axis (e.g., back wall at z = constant)
		z := p.Point.Z
		return core.NewAABB(
			core.NewVec3(-inf, -inf, z-epsilon),
			core.NewVec3(inf, inf, z+epsilon),
		)
	default:
		return core.NewAABB(
			core.NewVec3(-inf, -inf, -inf),
			core.NewVec3(inf, inf, inf),
		)
	}
}

// Equal reports whether two planes share support point and normal
func (p *Plane) Equal(other *Plane) bool {
	return other != nil && *p == *other
}

// AxisAlignment classifies a normal by the coordinate axis it is parallel to
type AxisAlignment int

const (
	NotAxisAligned AxisAlignment = iota
	XAxisAligned
	YAxisAligned
	ZAxisAligned
)

// getAxisAlignment reports which axis a unit normal is parallel to, if any
func getAxisAlignment(normal core.Vec3) AxisAlignment {
	const tolerance = 1e-9

	switch {
	case math.Abs(math.Abs(normal.X)-1) < tolerance:
		return XAxisAligned
	case math.Abs(math.Abs(normal.Y)-1) < tolerance:
		return YAxisAligned
	case math.Abs(math.Abs(normal.Z)-1) < tolerance:
		return ZAxisAligned
	default:
		return NotAxisAligned
	}
}
