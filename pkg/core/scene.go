package core

import "math"

// DefaultMaxDepth bounds how many secondary rays a chain of shading may spawn
const DefaultMaxDepth = 5

// LightSource is a point light
type LightSource struct {
	Location Vec3
	Color    Vec3
}

// NewLightSource creates a point light
func NewLightSource(location, color Vec3) LightSource {
	return LightSource{Location: location, Color: color}
}

// Scene is the global ray-query context: the root object and the lights shining on it.
// It is read-only once rendering starts.
type Scene struct {
	Root       Obj
	Lights     []LightSource
	Background Vec3 // Color returned for rays that hit nothing
	MaxDepth   int  // Deepest Trace that may still be shaded
}

// NewScene creates a scene around a root object, usually a built accelerator
func NewScene(root Obj, lights ...LightSource) *Scene {
	return &Scene{
		Root:     root,
		Lights:   lights,
		MaxDepth: DefaultMaxDepth,
	}
}

// Hit returns the nearest hit along ray beyond the self-intersection guard
func (s *Scene) Hit(ray Ray) Hit {
	if s.Root == nil {
		return Miss()
	}
	return s.Root.Hit(ray, Epsilon, math.Inf(1))
}

// LightSources returns the lights of the scene
func (s *Scene) LightSources() []LightSource {
	return s.Lights
}

// Trace starts a primary ray
func (s *Scene) Trace(ray Ray) *Trace {
	return &Trace{scene: s, ray: ray}
}

// Trace is the context of one ray. Secondary rays are spawned as child traces; the
// parent is never modified.
type Trace struct {
	scene  *Scene
	ray    Ray
	depth  int
	parent *Trace
}

// Spawn creates a secondary trace one level deeper than t
func (t *Trace) Spawn(origin, direction Vec3) *Trace {
	return &Trace{
		scene:  t.scene,
		ray:    NewRay(origin, direction),
		depth:  t.depth + 1,
		parent: t,
	}
}

// Ray returns the ray of this trace
func (t *Trace) Ray() Ray {
	return t.ray
}

// Scene returns the scene the trace runs in
func (t *Trace) Scene() *Scene {
	return t.scene
}

// Depth returns how many spawns separate this trace from its primary ray
func (t *Trace) Depth() int {
	return t.depth
}

// Parent returns the trace this one was spawned from, nil for a primary ray
func (t *Trace) Parent() *Trace {
	return t.parent
}

// Hit returns the nearest scene hit along the trace's ray
func (t *Trace) Hit() Hit {
	return t.scene.Hit(t.ray)
}

// Shade returns the color seen along the trace's ray: the shaded nearest hit, or the
// background when nothing is hit. Traces deeper than the scene's MaxDepth are black.
func (t *Trace) Shade() Vec3 {
	if t.depth > t.scene.MaxDepth {
		return Black
	}
	return t.ShadeHit(t.Hit())
}

// ShadeHit shades a hit previously found along the trace's ray
func (t *Trace) ShadeHit(hit Hit) Vec3 {
	if !hit.Hits() {
		return t.scene.Background
	}
	if hit.Owner == nil {
		return Black
	}
	return hit.Owner.Shade(&hit, t)
}
