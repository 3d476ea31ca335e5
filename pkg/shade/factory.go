package shade

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// NewPhong creates a Phong shader around inner. Coefficients must be finite and non-negative.
func NewPhong(inner core.Shader, ambient core.Vec3, diffuse, specular, shininess float64) (core.Shader, error) {
	if inner == nil {
		return nil, fmt.Errorf("%w: phong needs an inner shader", core.ErrInvalidArgument)
	}
	if !ambient.IsFinite() {
		return nil, fmt.Errorf("%w: phong ambient %v is not finite", core.ErrInvalidArgument, ambient)
	}
	for _, c := range []struct {
		name  string
		value float64
	}{
		{"diffuse", diffuse},
		{"specular", specular},
		{"shininess", shininess},
	} {
		if err := checkNonNegative("phong "+c.name, c.value); err != nil {
			return nil, err
		}
	}

	return &Phong{
		Inner:     inner,
		Ambient:   ambient,
		Diffuse:   diffuse,
		Specular:  specular,
		Shininess: shininess,
	}, nil
}

// NewCheckerBoard creates a checkerboard of a (even tiles) and b (odd tiles).
// A zero tile size is well-formed but cannot be rendered and yields core.ErrUnsupported.
func NewCheckerBoard(a, b core.Shader, size float64) (core.Shader, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("%w: checkerboard needs two shaders", core.ErrInvalidArgument)
	}
	if err := checkNonNegative("checkerboard size", size); err != nil {
		return nil, err
	}
	if core.IsZero(size) {
		return nil, fmt.Errorf("%w: checkerboard size %g is zero", core.ErrUnsupported, size)
	}

	return &CheckerBoard{Even: a, Odd: b, Size: size}, nil
}

// NewMirror creates a reflective shader. Reflectance must lie in [0, 1].
func NewMirror(inner core.Shader, reflectance float64) (core.Shader, error) {
	if inner == nil {
		return nil, fmt.Errorf("%w: mirror needs an inner shader", core.ErrInvalidArgument)
	}
	if err := checkNonNegative("mirror reflectance", reflectance); err != nil {
		return nil, err
	}
	if reflectance > 1 {
		return nil, fmt.Errorf("%w: mirror reflectance %g exceeds 1", core.ErrInvalidArgument, reflectance)
	}

	return &Mirror{Inner: inner, Reflectance: reflectance}, nil
}

func checkNonNegative(name string, value float64) error {
	if !core.IsFinite(value) || value < 0 {
		return fmt.Errorf("%w: %s must be finite and non-negative, got %g", core.ErrInvalidArgument, name, value)
	}
	return nil
}
