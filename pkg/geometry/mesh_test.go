package geometry

import (
	"testing"

	"github.com/df07/go-yart/pkg/core"
)

func TestNewTriangleMesh(t *testing.T) {
	vertices := []core.Vec3{
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(1, 1, 0),
		core.NewVec3(0, 1, 0),
	}
	faces := []int{
		0, 1, 2,
		0, 2, 3,
	}

	mesh, err := NewTriangleMesh(vertices, nil, faces, 2)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	box := mesh.BoundingBox()
	if box.Min != core.NewVec3(0, 0, 0) || box.Max != core.NewVec3(1, 1, 0) {
		t.Errorf("Unexpected mesh bounds %v", box)
	}

	hit, ok := mesh.Intersect(core.NewRay(core.NewVec3(0.2, 0.7, 1), core.NewVec3(0, 0, -1)))
	if !ok {
		t.Fatal("Expected hit on the second triangle")
	}
	if hit.HitGeometry.MaterialIndex() != 2 {
		t.Errorf("Expected material 2, got %d", hit.HitGeometry.MaterialIndex())
	}
}

func TestNewTriangleMesh_Errors(t *testing.T) {
	vertices := []core.Vec3{core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0)}

	tests := []struct {
		name    string
		normals []core.Vec3
		faces   []int
	}{
		{"Incomplete face", nil, []int{0, 1}},
		{"Index out of range", nil, []int{0, 1, 3}},
		{"Negative index", nil, []int{0, -1, 2}},
		{"Normal count mismatch", []core.Vec3{core.NewVec3(0, 0, 1)}, []int{0, 1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewTriangleMesh(vertices, tt.normals, tt.faces, 1); err == nil {
				t.Error("Expected error")
			}
		})
	}
}
