package core

// Object binds a primitive to the shader that colors it. Hits on the primitive are
// attributed to the Object so the scene knows how to shade them.
type Object struct {
	Primitive Primitive
	Shader    Shader
}

// NewObject creates a shaded object
func NewObject(primitive Primitive, shader Shader) *Object {
	return &Object{Primitive: primitive, Shader: shader}
}

// BoundingBox returns the bounding box of the underlying primitive
func (o *Object) BoundingBox() AABB {
	return o.Primitive.BoundingBox()
}

// Hit tests the underlying primitive and attributes the hit to this object
func (o *Object) Hit(ray Ray, tMin, tMax float64) Hit {
	return o.Primitive.HitTest(ray, o, tMin, tMax)
}

// Shade colors a hit on this object. Objects without a shader render black.
func (o *Object) Shade(hit *Hit, trace *Trace) Vec3 {
	if o.Shader == nil {
		return Black
	}
	return o.Shader.Shade(hit, trace)
}
