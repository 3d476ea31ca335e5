package shade

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Mirror blends the color of an inner shader with the color seen along the reflected ray.
// Reflection chains end once the trace depth passes the scene's MaxDepth.
type Mirror struct {
	Inner       core.Shader
	Reflectance float64 // 0 is fully Inner, 1 is a perfect mirror
}

// Shade implements core.Shader
func (m *Mirror) Shade(hit *core.Hit, trace *core.Trace) core.Vec3 {
	base := core.Black
	if m.Reflectance < 1 {
		base = m.Inner.Shade(hit, trace).Multiply(1 - m.Reflectance)
	}
	if m.Reflectance == 0 {
		return base
	}

	dir := trace.Ray().Direction.Reflect(hit.Normal())
	reflected := trace.Spawn(hit.Point(), dir).Shade()
	return base.Add(reflected.Multiply(m.Reflectance))
}
