package geometry

import (
	"fmt"

	"github.com/df07/go-yart/pkg/core"
)

// NewTriangleMesh builds triangles from indexed vertices and wraps them in a
// bounding box hierarchy. faces holds three vertex indices per triangle.
// normals is optional; when empty, each triangle uses its face normal.
func NewTriangleMesh(vertices []core.Vec3, normals []core.Vec3, faces []int, material MaterialIndex) (*IntersectableCollection, error) {
	if len(faces)%3 != 0 {
		return nil, fmt.Errorf("face indices must be a multiple of 3, got %d", len(faces))
	}
	if len(normals) != 0 && len(normals) != len(vertices) {
		return nil, fmt.Errorf("expected %d vertex normals, got %d", len(vertices), len(normals))
	}

	triangles := make([]Intersectable, 0, len(faces)/3)
	for i := 0; i < len(faces); i += 3 {
		i0, i1, i2 := faces[i], faces[i+1], faces[i+2]
		for _, index := range []int{i0, i1, i2} {
			if index < 0 || index >= len(vertices) {
				return nil, fmt.Errorf("face %d: vertex index %d out of range [0, %d)", i/3, index, len(vertices))
			}
		}

		if len(normals) == 0 {
			triangles = append(triangles, NewFlatTriangle(vertices[i0], vertices[i1], vertices[i2], material))
			continue
		}
		triangles = append(triangles, NewTriangle(
			vertices[i0], vertices[i1], vertices[i2],
			normals[i0], normals[i1], normals[i2],
			material,
		))
	}

	return BuildBoundingBoxHierarchy(triangles, 0), nil
}
