package core

// Hit is the outcome of one ray-object test. The zero value is a miss.
//
// Only the ray parameter is computed by the hit test itself. Point, normal and UV are
// derived on first request and cached, so hits that lose to a closer one never pay for them.
type Hit struct {
	T     float64 // Parameter t along the ray
	Owner *Object // Object the hit is attributed to

	found   bool
	ray     Ray
	surface Surface

	point     Vec3
	normal    Vec3
	uv        Vec2
	hasPoint  bool
	hasNormal bool
	hasUV     bool
}

// Miss returns the hit that represents no intersection
func Miss() Hit {
	return Hit{}
}

// NewHit creates a hit at parameter t along ray whose attributes are derived from surface
func NewHit(ray Ray, t float64, owner *Object, surface Surface) Hit {
	return Hit{
		T:       t,
		Owner:   owner,
		found:   true,
		ray:     ray,
		surface: surface,
	}
}

// Hits reports whether this is an actual intersection
func (h Hit) Hits() bool {
	return h.found
}

// Ray returns the ray that produced the hit
func (h Hit) Ray() Ray {
	return h.ray
}

// Point returns the intersection point. A miss has no point and returns the origin.
func (h *Hit) Point() Vec3 {
	if !h.found {
		return Vec3{}
	}
	if !h.hasPoint {
		h.point = h.ray.At(h.T)
		h.hasPoint = true
	}
	return h.point
}

// Normal returns the unit surface normal at the intersection
func (h *Hit) Normal() Vec3 {
	if !h.found {
		return Vec3{}
	}
	if !h.hasNormal {
		h.normal = h.surface.NormalAt(h.Point())
		h.hasNormal = true
	}
	return h.normal
}

// UV returns the surface parameterization at the intersection
func (h *Hit) UV() Vec2 {
	if !h.found {
		return Vec2{}
	}
	if !h.hasUV {
		h.uv = h.surface.UVAt(h.Point())
		h.hasUV = true
	}
	return h.uv
}
