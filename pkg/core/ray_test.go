package core

import (
	"math"
	"testing"
)

func TestRay_PositionAlong(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, -2))
	if got := ray.PositionAlong(1.5); got != NewVec3(1, 2, 0) {
		t.Errorf("Expected (1,2,0), got %v", got)
	}
}

func TestRay_InverseDirection(t *testing.T) {
	ray := NewRay(NewVec3(0, 0, 0), NewVec3(2, -4, 0))
	inv := ray.InverseDirection()
	if inv.X != 0.5 || inv.Y != -0.25 || !math.IsInf(inv.Z, 1) {
		t.Errorf("Unexpected inverse direction %v", inv)
	}

	reversed := ray.Reverse()
	if reversed.Direction() != NewVec3(-2, 4, 0) || reversed.Origin() != ray.Origin() {
		t.Errorf("Unexpected reversed ray %v", reversed)
	}
}
