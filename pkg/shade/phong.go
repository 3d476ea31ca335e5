package shade

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Phong adds local illumination from the scene's point lights to the color of an inner shader.
// Lights are tested for visibility with a shadow ray spawned from the hit point.
type Phong struct {
	Inner     core.Shader // Base surface color
	Ambient   core.Vec3   // Added once, independent of the lights
	Diffuse   float64
	Specular  float64
	Shininess float64
}

// Shade implements core.Shader
func (p *Phong) Shade(hit *core.Hit, trace *core.Trace) core.Vec3 {
	base := p.Inner.Shade(hit, trace)

	point := hit.Point()
	normal := hit.Normal()
	reflected := trace.Ray().Direction.Normalize().Reflect(normal).Normalize()

	diffuse := core.Black
	specular := core.Black
	for _, light := range trace.Scene().LightSources() {
		toLight := light.Location.Subtract(point)
		dir := toLight.Normalize()

		if occluded(trace.Spawn(point, dir), point, toLight.Length()) {
			continue
		}

		diffuse = diffuse.Add(light.Color.MultiplyVec(base).Multiply(p.Diffuse * math.Max(0, normal.Dot(dir))))
		specular = specular.Add(light.Color.Multiply(p.Specular * math.Pow(math.Max(0, reflected.Dot(dir)), p.Shininess)))
	}

	return p.Ambient.Add(specular).Add(diffuse)
}

// occluded reports whether the shadow trace hits something strictly closer to from than the light.
// Hits beyond the light do not block it.
func occluded(shadow *core.Trace, from core.Vec3, lightDistance float64) bool {
	blocker := shadow.Hit()
	if !blocker.Hits() {
		return false
	}
	return blocker.Point().Subtract(from).Length() < lightDistance
}
