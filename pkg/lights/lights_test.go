package lights

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-yart/pkg/core"
	"github.com/df07/go-yart/pkg/geometry"
)

// MockCaster records the last shadow ray and returns a fixed result
type MockCaster struct {
	distance float64
	hit      bool
	lastRay  core.Ray
	calls    int
}

func (m *MockCaster) CastRayDistance(ray core.Ray) (float64, bool) {
	m.lastRay = ray
	m.calls++
	return m.distance, m.hit
}

func TestPointLight_DirectionTowardsLight(t *testing.T) {
	light := NewPointLight(core.NewVec3(0, 10, 0), core.NewColor3(1, 1, 1))
	dir := light.DirectionTowardsLight(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	if dir != core.NewVec3(0, 1, 0) {
		t.Errorf("Expected (0,1,0), got %v", dir)
	}
}

func TestPointLight_IsInShadow(t *testing.T) {
	light := NewPointLight(core.NewVec3(0, 10, 0), core.NewColor3(1, 1, 1))
	hitPosition := core.NewVec3(0, 0, 0)
	normal := core.NewVec3(0, 1, 0)

	tests := []struct {
		name     string
		caster   *MockCaster
		expected bool
	}{
		{"Nothing in the way", &MockCaster{}, false},
		{"Occluder halfway", &MockCaster{distance: 5, hit: true}, true},
		{"Geometry beyond the light", &MockCaster{distance: 20, hit: true}, false},
		{"Hit at the light distance", &MockCaster{distance: 10, hit: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := light.IsInShadow(tt.caster, hitPosition, normal, normal)
			if got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
			if tt.caster.lastRay.Origin() != hitPosition {
				t.Errorf("Shadow ray should start at the hit position, got %v", tt.caster.lastRay.Origin())
			}
		})
	}
}

func TestDirectionalLight(t *testing.T) {
	light := NewDirectionalLight(core.NewVec3(0, -2, 0), core.NewColor3(0.5, 0.5, 0.5))

	if dir := light.DirectionTowardsLight(core.Vec3{}, core.Vec3{}); dir != core.NewVec3(0, 1, 0) {
		t.Errorf("Expected reversed unit direction, got %v", dir)
	}

	far := &MockCaster{distance: 1e9, hit: true}
	if !light.IsInShadow(far, core.Vec3{}, core.Vec3{}, core.Vec3{}) {
		t.Error("Any hit should shadow a directional light")
	}
	if light.IsInShadow(&MockCaster{}, core.Vec3{}, core.Vec3{}, core.Vec3{}) {
		t.Error("Expected lit when nothing is hit")
	}
	if far.lastRay.Direction() != core.NewVec3(0, 1, 0) {
		t.Errorf("Expected shadow ray toward the light, got %v", far.lastRay.Direction())
	}
}

func TestChooseAreaLight(t *testing.T) {
	random := rand.New(rand.NewSource(5))

	if _, ok := ChooseAreaLight(random, nil); ok {
		t.Error("Expected no light from an empty list")
	}

	a := geometry.NewParallelogram(core.Vec3{}, core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), 1)
	b := geometry.NewParallelogram(core.Vec3{}, core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), 1)
	areaLights := []AreaLight{a, b}

	seen := map[AreaLight]int{}
	for i := 0; i < 200; i++ {
		light, ok := ChooseAreaLight(random, areaLights)
		if !ok {
			t.Fatal("Expected a light")
		}
		seen[light]++
	}
	if seen[a] == 0 || seen[b] == 0 {
		t.Errorf("Expected both lights to be chosen, got %v", seen)
	}

	inversePDF := b.InversePDF(random, core.Vec3{}, core.Vec3{}, core.Vec3{}, core.Vec3{})
	if math.Abs(inversePDF-4) > 1e-9 {
		t.Errorf("Expected inverse PDF 4, got %f", inversePDF)
	}
}
