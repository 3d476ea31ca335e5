package shade

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// CheckerBoard alternates between two shaders on square tiles of the hit's UV coordinates
type CheckerBoard struct {
	Even, Odd core.Shader
	Size      float64 // Tile edge length in UV units
}

// Shade implements core.Shader
func (c *CheckerBoard) Shade(hit *core.Hit, trace *core.Trace) core.Vec3 {
	if c.selectsEven(hit.UV()) {
		return c.Even.Shade(hit, trace)
	}
	return c.Odd.Shade(hit, trace)
}

// selectsEven reports whether the tile containing uv has an even index sum. Parities are
// taken per axis in float64 so tile indices beyond the int64 range stay defined.
func (c *CheckerBoard) selectsEven(uv core.Vec2) bool {
	return tileParity(uv.X/c.Size) == tileParity(uv.Y/c.Size)
}

// tileParity returns 0 or 1 for the parity of floor(x), NaN for non-finite x
func tileParity(x float64) float64 {
	return math.Abs(math.Mod(math.Floor(x), 2))
}
