package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// Surface derives the attributes of an intersection from the point it occurred at
type Surface interface {
	NormalAt(point Vec3) Vec3
	UVAt(point Vec3) Vec2
}

// Primitive is a bounded surface with an analytic hit test. HitTest returns Miss() unless
// the primitive is hit within [tMin, tMax]; the returned hit is attributed to owner.
type Primitive interface {
	BoundingBox() AABB
	HitTest(ray Ray, owner *Object, tMin, tMax float64) Hit
}

// Obj is anything a ray can be traced against: a shaded primitive or a group of them
type Obj interface {
	BoundingBox() AABB
	Hit(ray Ray, tMin, tMax float64) Hit
}

// Shader computes the color seen at a hit. Implementations are stateless after construction.
type Shader interface {
	Shade(hit *Hit, trace *Trace) Vec3
}

// Accelerator collects objects and answers nearest-hit queries over them
type Accelerator interface {
	Obj
	Add(obj Obj)
	Build()
}
