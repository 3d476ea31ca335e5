package core

import "math"

// MockObject for testing
type MockObject struct {
	boundingBox AABB
	hitFn       func(ray Ray, tMin, tMax float64) Hit
}

func (m MockObject) Hit(ray Ray, tMin, tMax float64) Hit {
	return m.hitFn(ray, tMin, tMax)
}

func (m MockObject) BoundingBox() AABB {
	return m.boundingBox
}

// fixedHit returns a hit function that reports t whenever it lies in the window
func fixedHit(t float64) func(ray Ray, tMin, tMax float64) Hit {
	return func(ray Ray, tMin, tMax float64) Hit {
		if ray.Direction.X > 0 && t >= tMin && t <= tMax {
			return NewHit(ray, t, nil, nil)
		}
		return Miss()
	}
}

func neverHit(ray Ray, tMin, tMax float64) Hit {
	return Miss()
}

// testSphere is a minimal analytic sphere primitive
type testSphere struct {
	center Vec3
	radius float64
}

func (s testSphere) BoundingBox() AABB {
	r := NewVec3(s.radius, s.radius, s.radius)
	return NewAABB(s.center.Subtract(r), s.center.Add(r))
}

func (s testSphere) HitTest(ray Ray, owner *Object, tMin, tMax float64) Hit {
	oc := ray.Origin.Subtract(s.center)
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.radius*s.radius
	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return Miss()
	}
	t := (-halfB - math.Sqrt(discriminant)) / a
	if t < tMin || t > tMax {
		return Miss()
	}
	return NewHit(ray, t, owner, s)
}

func (s testSphere) NormalAt(point Vec3) Vec3 {
	return point.Subtract(s.center).Normalize()
}

func (s testSphere) UVAt(point Vec3) Vec2 {
	return Vec2{}
}

// countingSurface records how often each attribute is derived
type countingSurface struct {
	normalCalls int
	uvCalls     int
}

func (c *countingSurface) NormalAt(point Vec3) Vec3 {
	c.normalCalls++
	return NewVec3(0, 0, 1)
}

func (c *countingSurface) UVAt(point Vec3) Vec2 {
	c.uvCalls++
	return NewVec2(point.X, point.Y)
}

// constantShader returns a fixed color and counts invocations
type constantShader struct {
	color Vec3
	calls *int
}

func (s constantShader) Shade(hit *Hit, trace *Trace) Vec3 {
	if s.calls != nil {
		*s.calls++
	}
	return s.color
}

// testPlane is the infinite plane N·P = d. Its box is a thin slab when N is an axis and
// unbounded otherwise.
type testPlane struct {
	normal Vec3
	d      float64
}

func (p testPlane) BoundingBox() AABB {
	inf := math.Inf(1)
	box := AABB{Min: NewVec3(-inf, -inf, -inf), Max: NewVec3(inf, inf, inf)}
	for axis := 0; axis < 3; axis++ {
		if math.Abs(p.normal.Axis(axis)) == 1 {
			offset := p.d * p.normal.Axis(axis)
			min, max := box.Min, box.Max
			switch axis {
			case 0:
				min.X, max.X = offset-0.001, offset+0.001
			case 1:
				min.Y, max.Y = offset-0.001, offset+0.001
			case 2:
				min.Z, max.Z = offset-0.001, offset+0.001
			}
			box = AABB{Min: min, Max: max}
		}
	}
	return box
}

func (p testPlane) HitTest(ray Ray, owner *Object, tMin, tMax float64) Hit {
	denom := p.normal.Dot(ray.Direction)
	if math.Abs(denom) < 1e-12 {
		return Miss()
	}
	t := (p.d - p.normal.Dot(ray.Origin)) / denom
	if t < tMin || t > tMax {
		return Miss()
	}
	return NewHit(ray, t, owner, p)
}

func (p testPlane) NormalAt(point Vec3) Vec3 {
	return p.normal
}

func (p testPlane) UVAt(point Vec3) Vec2 {
	return Vec2{}
}
