package geometry

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// AddTriangleMesh inserts one shaded triangle per group of three face indices into acc.
// Indices are zero-based. It returns the number of triangles added before any error.
func AddTriangleMesh(acc core.Accelerator, vertices []core.Vec3, faces []int, shader core.Shader) (int, error) {
	if acc == nil || shader == nil {
		return 0, fmt.Errorf("%w: triangle mesh needs an accelerator and a shader", core.ErrInvalidArgument)
	}
	if len(faces)%3 != 0 {
		return 0, fmt.Errorf("%w: %d face indices is not a multiple of 3", core.ErrMalformedInput, len(faces))
	}

	numTriangles := len(faces) / 3
	for i := 0; i < numTriangles; i++ {
		i0 := faces[i*3]
		i1 := faces[i*3+1]
		i2 := faces[i*3+2]

		// Bounds check
		if i0 >= len(vertices) || i1 >= len(vertices) || i2 >= len(vertices) ||
			i0 < 0 || i1 < 0 || i2 < 0 {
			return i, fmt.Errorf("%w: triangle %d references vertex outside [0, %d)", core.ErrMalformedInput, i, len(vertices))
		}

		acc.Add(core.NewObject(NewTriangle(vertices[i0], vertices[i1], vertices[i2]), shader))
	}

	return numTriangles, nil
}
