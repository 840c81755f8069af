package core

import (
	"math"
	"testing"
)

func TestBoundingBox_RayIntersects(t *testing.T) {
	unitBox := NewBoundingBox(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))

	tests := []struct {
		name     string
		box      BoundingBox
		ray      Ray
		expected bool
	}{
		{"Head-on hit", unitBox, NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1)), true},
		{"Parallel miss", unitBox, NewRay(NewVec3(5, 5, -5), NewVec3(0, 0, 1)), false},
		{"Pointing away", unitBox, NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, -1)), false},
		{"Origin inside", unitBox, NewRay(NewVec3(0, 0, 0), NewVec3(1, 2, 3).Normalize()), true},
		{"Diagonal hit", unitBox, NewRay(NewVec3(-5, -5, -5), NewVec3(1, 1, 1).Normalize()), true},
		{"Negative direction hit", unitBox, NewRay(NewVec3(0, 5, 0), NewVec3(0, -1, 0)), true},
		{"Diagonal miss", unitBox, NewRay(NewVec3(-5, 0, -5), NewVec3(1, 0, -1).Normalize()), false},
		{"Infinite box always hit", NewInfiniteBoundingBox(), NewRay(NewVec3(100, 0, 0), NewVec3(1, 0, 0)), true},
		{"Inverse infinite box never hit", NewInverseInfiniteBoundingBox(), NewRay(NewVec3(0, 0, 0), NewVec3(0, 0, 1)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.box.RayIntersects(tt.ray); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestBoundingBox_FromPoints(t *testing.T) {
	box := NewBoundingBoxFromPoints(
		NewVec3(1, -2, 3),
		NewVec3(-1, 4, 0),
		NewVec3(0, 0, 5),
	)

	if box.Min != NewVec3(-1, -2, 0) {
		t.Errorf("Expected min (-1,-2,0), got %v", box.Min)
	}
	if box.Max != NewVec3(1, 4, 5) {
		t.Errorf("Expected max (1,4,5), got %v", box.Max)
	}
	if box.Center() != NewVec3(0, 1, 2.5) {
		t.Errorf("Expected center (0,1,2.5), got %v", box.Center())
	}
	if box.LongestAxis() != 1 {
		t.Errorf("Expected longest axis Y, got %d", box.LongestAxis())
	}
}

func TestBoundingBox_InverseInfinityIsUnionIdentity(t *testing.T) {
	box := NewBoundingBox(NewVec3(0, 1, 2), NewVec3(3, 4, 5))
	if got := NewInverseInfiniteBoundingBox().Union(box); got != box {
		t.Errorf("Expected %v, got %v", box, got)
	}
	if !NewInverseInfiniteBoundingBox().IsEmpty() {
		t.Error("Inverse infinite box should be empty")
	}
	if !NewBoundingBoxFromPoints().IsEmpty() {
		t.Error("Box from no points should be empty")
	}
}

func TestBoundingBox_AddMargin(t *testing.T) {
	box := NewBoundingBox(NewVec3(0, 0, 0), NewVec3(1, 1, 1)).AddMargin(NewVec3FromValue(0.5))
	if box.Min != NewVec3FromValue(-0.5) || box.Max != NewVec3FromValue(1.5) {
		t.Errorf("Unexpected box after margin: %v", box)
	}

	infinite := NewInfiniteBoundingBox()
	if !math.IsInf(infinite.Size().X, 1) {
		t.Errorf("Expected infinite size, got %v", infinite.Size())
	}
}
