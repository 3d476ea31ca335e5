package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// ReadOBJFile reads a Wavefront OBJ model from filename. See ReadOBJ.
func ReadOBJFile(filename string, acc core.Accelerator, shader core.Shader, scale float64, translate core.Vec3) (int, error) {
	if filename == "" {
		return 0, fmt.Errorf("%w: empty OBJ filename", core.ErrInvalidArgument)
	}
	file, err := os.Open(filename)
	if err != nil {
		return 0, fmt.Errorf("failed to open OBJ file: %w", err)
	}
	defer file.Close()

	n, err := ReadOBJ(file, acc, shader, scale, translate)
	if err != nil {
		return n, fmt.Errorf("%s: %w", filename, err)
	}
	return n, nil
}

// ReadOBJ reads the vertices and faces of an OBJ model and adds one shaded triangle per
// face to acc. Every vertex is scaled and then translated. Polygons are split into a
// triangle fan around their first vertex. Face indices are 1-based, or relative to the
// most recent vertex when negative; other statements are ignored.
// It returns the number of triangles added. A face referencing an undefined vertex
// fails the whole read with core.ErrMalformedInput.
func ReadOBJ(r io.Reader, acc core.Accelerator, shader core.Shader, scale float64, translate core.Vec3) (int, error) {
	if r == nil || acc == nil || shader == nil {
		return 0, fmt.Errorf("%w: OBJ reader needs an input, an accelerator and a shader", core.ErrInvalidArgument)
	}
	if !core.IsFinite(scale) || !translate.IsFinite() {
		return 0, fmt.Errorf("%w: OBJ transform must be finite (scale %g, translate %v)", core.ErrInvalidArgument, scale, translate)
	}

	var vertices []core.Vec3
	triangles := 0
	lineNum := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Fields(line)
		switch parts[0] {
		case "v":
			v, err := parseOBJVertex(parts[1:])
			if err != nil {
				return triangles, fmt.Errorf("line %d: %w", lineNum, err)
			}
			vertices = append(vertices, v.Multiply(scale).Add(translate))

		case "f":
			face, err := parseOBJFace(parts[1:], len(vertices))
			if err != nil {
				return triangles, fmt.Errorf("line %d: %w", lineNum, err)
			}
			for i := 1; i+1 < len(face); i++ {
				tri := geometry.NewTriangle(vertices[face[0]], vertices[face[i]], vertices[face[i+1]])
				acc.Add(core.NewObject(tri, shader))
				triangles++
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return triangles, fmt.Errorf("error reading OBJ data: %w", err)
	}
	return triangles, nil
}

// parseOBJVertex parses the coordinates of a "v" statement. A fourth (w) coordinate is ignored.
func parseOBJVertex(fields []string) (core.Vec3, error) {
	if len(fields) < 3 {
		return core.Vec3{}, fmt.Errorf("%w: vertex needs 3 coordinates, got %d", core.ErrMalformedInput, len(fields))
	}

	var coords [3]float64
	for i := range coords {
		value, err := strconv.ParseFloat(fields[i], 64)
		if err != nil || !core.IsFinite(value) {
			return core.Vec3{}, fmt.Errorf("%w: invalid vertex coordinate %q", core.ErrMalformedInput, fields[i])
		}
		coords[i] = value
	}
	return core.NewVec3(coords[0], coords[1], coords[2]), nil
}

// parseOBJFace resolves the vertex references of an "f" statement to zero-based indices.
// References may carry texture and normal indices (v/vt/vn), which are dropped.
func parseOBJFace(fields []string, numVertices int) ([]int, error) {
	if len(fields) < 3 {
		return nil, fmt.Errorf("%w: face needs at least 3 vertices, got %d", core.ErrMalformedInput, len(fields))
	}

	face := make([]int, len(fields))
	for i, field := range fields {
		ref, _, _ := strings.Cut(field, "/")
		index, err := strconv.Atoi(ref)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid vertex reference %q", core.ErrMalformedInput, field)
		}

		switch {
		case index > 0:
			index--
		case index < 0:
			index += numVertices
		default:
			index = -1
		}
		if index < 0 || index >= numVertices {
			return nil, fmt.Errorf("%w: vertex reference %q is undefined (%d vertices so far)", core.ErrMalformedInput, field, numVertices)
		}
		face[i] = index
	}
	return face, nil
}
