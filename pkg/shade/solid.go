package shade

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Solid shades every hit with the same color
type Solid struct {
	Color core.Vec3
}

// NewSolid creates a constant-color shader
func NewSolid(color core.Vec3) *Solid {
	return &Solid{Color: color}
}

// Shade implements core.Shader
func (s *Solid) Shade(hit *core.Hit, trace *core.Trace) core.Vec3 {
	return s.Color
}
