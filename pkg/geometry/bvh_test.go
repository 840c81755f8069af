package geometry

import (
	"testing"

	"github.com/df07/go-yart/pkg/core"
)

func makeSphereRow(count int) []Intersectable {
	children := make([]Intersectable, count)
	for i := 0; i < count; i++ {
		// Reverse order so the builder has to sort them
		x := float64(count-1-i) * 3
		children[i] = NewSphere(core.NewVec3(x, 0, 0), 1, 1)
	}
	return children
}

func TestBuildBoundingBoxHierarchy_LeafCount(t *testing.T) {
	tests := []struct {
		name           string
		count          int
		expectedLeaves int
		expectedSize   int
	}{
		{"Single child", 1, 1, 1},
		{"Eight children", 8, 8, 1},
		{"Nine children", 9, 5, 2},
		{"Sixty four children", 64, 8, 8},
		{"Hundred children", 100, 8, 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := BuildBoundingBoxHierarchy(makeSphereRow(tt.count), 0)

			if len(root.Children) != tt.expectedLeaves {
				t.Fatalf("Expected %d leaves, got %d", tt.expectedLeaves, len(root.Children))
			}

			total := 0
			for i, child := range root.Children {
				leaf, ok := child.(*BoundingBoxLeaf)
				if !ok {
					t.Fatalf("Child %d is %T, expected *BoundingBoxLeaf", i, child)
				}
				if i == 0 && len(leaf.Collection.Children) != tt.expectedSize {
					t.Errorf("Expected first leaf size %d, got %d", tt.expectedSize, len(leaf.Collection.Children))
				}
				total += len(leaf.Collection.Children)
			}
			if total != tt.count {
				t.Errorf("Expected %d children across leaves, got %d", tt.count, total)
			}
		})
	}
}

func TestBuildBoundingBoxHierarchy_SortsAlongLongestAxis(t *testing.T) {
	root := BuildBoundingBoxHierarchy(makeSphereRow(16), 0)

	previous := -1.0
	for _, child := range root.Children {
		leaf := child.(*BoundingBoxLeaf)
		for _, c := range leaf.Collection.Children {
			x := c.(*Sphere).Center.X
			if x < previous {
				t.Fatalf("Children not sorted along X: %f after %f", x, previous)
			}
			previous = x
		}
	}
}

func TestBuildBoundingBoxHierarchy_MatchesLinearSearch(t *testing.T) {
	children := makeSphereRow(20)
	flat := NewIntersectableCollection(children...)
	tree := BuildBoundingBoxHierarchy(children, 0)

	rays := []core.Ray{
		core.NewRay(core.NewVec3(-5, 0, 0), core.NewVec3(1, 0, 0)),
		core.NewRay(core.NewVec3(100, 0, 0), core.NewVec3(-1, 0, 0)),
		core.NewRay(core.NewVec3(30, 10, 0), core.NewVec3(0, -1, 0)),
		core.NewRay(core.NewVec3(31.5, 10, 0), core.NewVec3(0, -1, 0)),
		core.NewRay(core.NewVec3(0, 10, 0), core.NewVec3(0, 1, 0)),
	}

	for i, ray := range rays {
		expected, expectedOK := flat.Intersect(ray)
		got, gotOK := tree.Intersect(ray)
		if expectedOK != gotOK {
			t.Errorf("Ray %d: linear hit=%v, hierarchy hit=%v", i, expectedOK, gotOK)
			continue
		}
		if expectedOK && expected.HitGeometry != got.HitGeometry {
			t.Errorf("Ray %d: hierarchy reported a different nearest hit", i)
		}
	}
}

func TestBuildBoundingBoxHierarchy_KeepsCallerOrder(t *testing.T) {
	children := makeSphereRow(4)
	first := children[0]
	BuildBoundingBoxHierarchy(children, 0)
	if children[0] != first {
		t.Error("Builder reordered the caller's slice")
	}
}

func TestBuildBoundingBoxHierarchy_Empty(t *testing.T) {
	root := BuildBoundingBoxHierarchy(nil, 0)
	if _, ok := root.Intersect(core.NewRay(core.Vec3{}, core.NewVec3(1, 0, 0))); ok {
		t.Error("Empty hierarchy should never hit")
	}
}
