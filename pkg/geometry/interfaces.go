package geometry

import "github.com/df07/go-whitted-raytracer/pkg/core"

// Every primitive derives its own hit attributes
var (
	_ core.Primitive = (*Sphere)(nil)
	_ core.Primitive = (*Plane)(nil)
	_ core.Primitive = (*Triangle)(nil)

	_ core.Surface = (*Sphere)(nil)
	_ core.Surface = (*Plane)(nil)
	_ core.Surface = (*Triangle)(nil)
)
