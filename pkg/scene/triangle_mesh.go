package scene

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/shade"
)

// mesh is an indexed triangle list
type mesh struct {
	vertices []core.Vec3
	faces    []int
}

// rotateY rotates every vertex of m around the vertical axis through center
func (m mesh) rotateY(center core.Vec3, angle float64) mesh {
	sin, cos := math.Sincos(angle)
	rotated := make([]core.Vec3, len(m.vertices))
	for i, v := range m.vertices {
		d := v.Subtract(center)
		rotated[i] = center.Add(core.NewVec3(d.X*cos+d.Z*sin, d.Y, -d.X*sin+d.Z*cos))
	}
	return mesh{vertices: rotated, faces: m.faces}
}

// NewTriangleMeshScene creates a scene showcasing triangle mesh geometry
func NewTriangleMeshScene(logger core.Logger) (*Scene, error) {
	camera := CameraConfig{
		Position: [3]float64{0, 2, 6},
		LookAt:   [3]float64{0, 1, 0},
		Up:       [3]float64{0, 1, 0},
		FOV:      45,
		Width:    600,
		Height:   338,
	}
	render := DefaultRenderConfig()
	render.Background = [3]float64{0.5, 0.7, 1.0}

	s := newCodeScene("trianglemesh", camera, render)

	phong := func(color core.Vec3, specular, shininess float64) (core.Shader, error) {
		return shade.NewPhong(shade.NewSolid(color), color.Multiply(0.05), 0.85, specular, shininess)
	}

	ground, err := phong(core.NewVec3(0.7, 0.7, 0.7), 0, 1)
	if err != nil {
		return nil, err
	}
	s.add(geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)), ground)

	red, err := phong(core.NewVec3(0.8, 0.2, 0.2), 0.6, 30)
	if err != nil {
		return nil, err
	}
	blue, err := phong(core.NewVec3(0.2, 0.3, 0.8), 0.2, 10)
	if err != nil {
		return nil, err
	}
	gold, err := phong(core.NewVec3(0.8, 0.6, 0.2), 0.8, 60)
	if err != nil {
		return nil, err
	}
	mirror, err := shade.NewMirror(gold, 0.4)
	if err != nil {
		return nil, err
	}

	meshes := []struct {
		mesh   mesh
		shader core.Shader
	}{
		{boxMesh(core.NewVec3(-2, 0.5, 0), core.NewVec3(1, 1, 1)).rotateY(core.NewVec3(-2, 0.5, 0), math.Pi/6), red},
		{pyramidMesh(core.NewVec3(0, 1, 0), 1.5, 2.0).rotateY(core.NewVec3(0, 1, 0), math.Pi/4), blue},
		{icosahedronMesh(core.NewVec3(2, 0.8, 0), 0.8).rotateY(core.NewVec3(2, 0.8, 0), math.Pi/3), mirror},
	}
	for _, m := range meshes {
		n, err := geometry.AddTriangleMesh(s.Accelerator, m.mesh.vertices, m.mesh.faces, m.shader)
		if err != nil {
			return nil, err
		}
		s.Primitives += n
	}

	return s.finish(logger,
		core.NewLightSource(core.NewVec3(2, 6, 3), core.NewVec3(0.8, 0.75, 0.7)),  // warm overhead
		core.NewLightSource(core.NewVec3(-3, 4, 2), core.NewVec3(0.3, 0.35, 0.4)), // cool fill
	), nil
}

// boxMesh creates an axis-aligned box with outward-facing triangles
func boxMesh(center, size core.Vec3) mesh {
	halfSize := size.Multiply(0.5)
	vertices := []core.Vec3{
		center.Add(core.NewVec3(-halfSize.X, -halfSize.Y, -halfSize.Z)), // 0: left-bottom-back
		center.Add(core.NewVec3(+halfSize.X, -halfSize.Y, -halfSize.Z)), // 1: right-bottom-back
		center.Add(core.NewVec3(+halfSize.X, +halfSize.Y, -halfSize.Z)), // 2: right-top-back
		center.Add(core.NewVec3(-halfSize.X, +halfSize.Y, -halfSize.Z)), // 3: left-top-back
		center.Add(core.NewVec3(-halfSize.X, -halfSize.Y, +halfSize.Z)), // 4: left-bottom-front
		center.Add(core.NewVec3(+halfSize.X, -halfSize.Y, +halfSize.Z)), // 5: right-bottom-front
		center.Add(core.NewVec3(+halfSize.X, +halfSize.Y, +halfSize.Z)), // 6: right-top-front
		center.Add(core.NewVec3(-halfSize.X, +halfSize.Y, +halfSize.Z)), // 7: left-top-front
	}

	// 2 triangles per face
	faces := []int{
		0, 2, 1, 0, 3, 2, // Back (Z-)
		4, 5, 6, 4, 6, 7, // Front (Z+)
		0, 4, 7, 0, 7, 3, // Left (X-)
		1, 2, 6, 1, 6, 5, // Right (X+)
		0, 1, 5, 0, 5, 4, // Bottom (Y-)
		3, 7, 6, 3, 6, 2, // Top (Y+)
	}
	return mesh{vertices: vertices, faces: faces}
}

// pyramidMesh creates a square-based pyramid centered halfway up its height
func pyramidMesh(center core.Vec3, baseSize, height float64) mesh {
	halfBase := baseSize * 0.5
	halfHeight := height * 0.5

	vertices := []core.Vec3{
		center.Add(core.NewVec3(-halfBase, -halfHeight, -halfBase)), // 0: left-back
		center.Add(core.NewVec3(+halfBase, -halfHeight, -halfBase)), // 1: right-back
		center.Add(core.NewVec3(+halfBase, -halfHeight, +halfBase)), // 2: right-front
		center.Add(core.NewVec3(-halfBase, -halfHeight, +halfBase)), // 3: left-front
		center.Add(core.NewVec3(0, +halfHeight, 0)),                 // 4: apex
	}

	faces := []int{
		0, 1, 2, 0, 2, 3, // Base
		0, 4, 1, // back
		1, 4, 2, // right
		2, 4, 3, // front
		3, 4, 0, // left
	}
	return mesh{vertices: vertices, faces: faces}
}

// icosahedronMesh creates a regular icosahedron whose vertices lie on a sphere of the given radius
func icosahedronMesh(center core.Vec3, radius float64) mesh {
	phi := (1.0 + math.Sqrt(5)) / 2.0
	scale := radius / math.Sqrt(1+phi*phi)

	corners := []core.Vec3{
		core.NewVec3(-1, phi, 0), core.NewVec3(1, phi, 0), core.NewVec3(-1, -phi, 0), core.NewVec3(1, -phi, 0),
		core.NewVec3(0, -1, phi), core.NewVec3(0, 1, phi), core.NewVec3(0, -1, -phi), core.NewVec3(0, 1, -phi),
		core.NewVec3(phi, 0, -1), core.NewVec3(phi, 0, 1), core.NewVec3(-phi, 0, -1), core.NewVec3(-phi, 0, 1),
	}
	vertices := make([]core.Vec3, len(corners))
	for i, c := range corners {
		vertices[i] = center.Add(c.Multiply(scale))
	}

	faces := []int{
		// 5 faces around point 0
		0, 11, 5, 0, 5, 1, 0, 1, 7, 0, 7, 10, 0, 10, 11,
		// 5 adjacent faces
		1, 5, 9, 5, 11, 4, 11, 10, 2, 10, 7, 6, 7, 1, 8,
		// 5 faces around point 3
		3, 9, 4, 3, 4, 2, 3, 2, 6, 3, 6, 8, 3, 8, 9,
		// 5 adjacent faces
		4, 9, 5, 2, 4, 11, 6, 2, 10, 8, 6, 7, 9, 8, 1,
	}
	return mesh{vertices: vertices, faces: faces}
}
