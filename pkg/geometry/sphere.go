package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
	}
}

// HitTest intersects the ray with the sphere. Only the nearer root is considered: tangent
// rays, rays starting inside the sphere and roots closer than core.Epsilon are misses.
func (s *Sphere) HitTest(ray core.Ray, owner *core.Object, tMin, tMax float64) core.Hit {
	// Quadratic equation coefficients: at² + bt + c = 0
	oc := ray.Origin.Subtract(s.Center)
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < core.Epsilon {
		return core.Miss()
	}

	t := (-b - math.Sqrt(discriminant)) / (2 * a)
	if t < core.Epsilon || t < tMin || t > tMax {
		return core.Miss()
	}

	return core.NewHit(ray, t, owner, s)
}

// NormalAt returns the outward normal at a point on the sphere
func (s *Sphere) NormalAt(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Normalize()
}

// UVAt maps a point on the sphere to spherical coordinates in [0,1]²
func (s *Sphere) UVAt(point core.Vec3) core.Vec2 {
	d := point.Subtract(s.Center).Normalize()
	u := 0.5 + math.Atan2(d.Z, d.X)/(2*math.Pi)
	v := 0.5 - math.Asin(core.Clamp(d.Y, -1, 1))/math.Pi
	return core.NewVec2(u, v)
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.AABB {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(
		s.Center.Subtract(radius),
		s.Center.Add(radius),
	)
}

// Equal reports whether two spheres have the same center and radius
func (s *Sphere) Equal(other *Sphere) bool {
	return other != nil && *s == *other
}
