package scene

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-yart/pkg/core"
	"github.com/df07/go-yart/pkg/geometry"
	"github.com/df07/go-yart/pkg/material"
)

const tolerance = 1e-9

// countingMaterial forwards to another material and counts evaluations
type countingMaterial struct {
	inner    material.Material
	calls    int
	maxDepth int
}

func (c *countingMaterial) CalculateRenderingEquation(
	random *rand.Rand,
	scene material.Scene,
	depth int,
	hitGeometry geometry.Geometry,
	hitPosition, hitNormal, incomingDirection core.Vec3,
) core.Color3 {
	c.calls++
	c.maxDepth = max(c.maxDepth, depth)
	return c.inner.CalculateRenderingEquation(random, scene, depth, hitGeometry, hitPosition, hitNormal, incomingDirection)
}

// recordingMaterial captures its shading inputs and returns a fixed color
type recordingMaterial struct {
	hitPosition core.Vec3
	hitNormal   core.Vec3
}

func (r *recordingMaterial) CalculateRenderingEquation(
	_ *rand.Rand,
	_ material.Scene,
	_ int,
	_ geometry.Geometry,
	hitPosition, hitNormal, _ core.Vec3,
) core.Color3 {
	r.hitPosition = hitPosition
	r.hitNormal = hitNormal
	return core.NewColor3(1, 1, 1)
}

// fixedIntersectable reports the same intersection for every ray
type fixedIntersectable struct {
	hit geometry.Intersection
}

func (f *fixedIntersectable) Intersect(core.Ray) (geometry.Intersection, bool) {
	return f.hit, true
}

func (f *fixedIntersectable) BoundingBox() core.BoundingBox {
	return core.NewInfiniteBoundingBox()
}

func testCamera() *geometry.PerspectiveCamera {
	return geometry.NewPerspectiveCamera(geometry.CameraConfig{
		Position:    core.NewVec3(0, 0, -5),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		FieldOfView: math.Pi / 2,
		Width:       4,
		Height:      4,
	})
}

func vecNear(a, b core.Vec3) bool {
	return math.Abs(a.X-b.X) < tolerance && math.Abs(a.Y-b.Y) < tolerance && math.Abs(a.Z-b.Z) < tolerance
}

func TestNewScene(t *testing.T) {
	s := NewScene(DefaultConfig(), testCamera())

	if len(s.Materials) != 1 {
		t.Fatalf("Expected reserved material slot, got %d materials", len(s.Materials))
	}
	got := s.Materials[0].CalculateRenderingEquation(nil, s, 1, nil, core.Vec3{}, core.Vec3{}, core.Vec3{})
	if !got.IsBlack() {
		t.Errorf("Slot 0 should be black, got %v", got)
	}

	index := s.AddMaterial(material.NewReflective())
	if index != 1 {
		t.Errorf("Expected first added material at index 1, got %d", index)
	}
}

func TestCastRayColor_Miss(t *testing.T) {
	s := NewScene(DefaultConfig(), testCamera())
	s.MissShader = NewConstantMissShader(core.NewColor3(0.2, 0.4, 0.6))

	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 1))
	got := s.CastRayColor(rand.New(rand.NewSource(1)), ray, 1)
	if got != core.NewColor3(0.2, 0.4, 0.6) {
		t.Errorf("Expected miss shader color, got %v", got)
	}
}

func TestCastRayColor_DepthCutoff(t *testing.T) {
	s := NewScene(DefaultConfig(), testCamera())
	s.MissShader = NewConstantMissShader(core.NewColor3(1, 1, 1))
	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 1))

	tests := []struct {
		depth int
		black bool
	}{
		{1, false},
		{core.MaxDepth, false},
		{core.MaxDepth + 1, true},
	}

	for _, tt := range tests {
		got := s.CastRayColor(nil, ray, tt.depth)
		if got.IsBlack() != tt.black {
			t.Errorf("depth %d: got %v, black=%v expected", tt.depth, got, tt.black)
		}
	}
}

func TestCastRayColor_MirrorGallery(t *testing.T) {
	s := NewScene(DefaultConfig(), testCamera())
	s.MissShader = NewConstantMissShader(core.NewColor3(1, 1, 1))

	mirror := &countingMaterial{inner: material.NewReflective()}
	index := s.AddMaterial(mirror)

	s.Root = geometry.NewIntersectableCollection(
		geometry.NewPlaneFromPoint(core.NewVec3(0, 0, -1), core.NewVec3(0, 0, 1), index),
		geometry.NewPlaneFromPoint(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1), index),
	)

	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 1))
	got := s.CastRayColor(rand.New(rand.NewSource(1)), ray, 1)

	if !got.IsBlack() {
		t.Errorf("Endless reflections should end black, got %v", got)
	}
	if mirror.calls != core.MaxDepth {
		t.Errorf("Expected %d mirror evaluations, got %d", core.MaxDepth, mirror.calls)
	}
	if mirror.maxDepth != core.MaxDepth {
		t.Errorf("Expected deepest evaluation at depth %d, got %d", core.MaxDepth, mirror.maxDepth)
	}
}

func TestCastRayColor_MaterialResolution(t *testing.T) {
	s := NewScene(DefaultConfig(), testCamera())
	s.MissShader = NewConstantMissShader(core.NewColor3(0, 0, 1))
	red := s.AddMaterial(material.NewEmissive(core.NewColor3(1, 0, 0)))
	green := s.AddMaterial(material.NewEmissive(core.NewColor3(0, 1, 0)))

	tests := []struct {
		name     string
		material geometry.MaterialIndex
		override geometry.MaterialIndex
		expected core.Color3
	}{
		{"geometry material", red, 0, core.NewColor3(1, 0, 0)},
		{"override wins", red, green, core.NewColor3(0, 1, 0)},
		{"reserved slot", 0, 0, core.Color3{}},
		{"unknown index", 99, 0, core.Color3{}},
		{"unknown override", red, 99, core.Color3{}},
	}

	ray := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 1))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sphere := geometry.NewSphere(core.NewVec3(0, 0, 5), 1, tt.material)
			hit := geometry.NewIntersection(sphere, 4, 6)
			hit.MaterialIndexOverride = tt.override
			s.Root = &fixedIntersectable{hit: hit}

			got := s.CastRayColor(nil, ray, 1)
			if got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestCastRayColor_HitPositionBump(t *testing.T) {
	s := NewScene(DefaultConfig(), testCamera())
	recorder := &recordingMaterial{}
	index := s.AddMaterial(recorder)
	s.Root = geometry.NewSphere(core.Vec3{}, 1, index)

	s.CastRayColor(nil, core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1)), 1)

	if !vecNear(recorder.hitNormal, core.NewVec3(0, 0, -1)) {
		t.Errorf("Expected normal (0,0,-1), got %v", recorder.hitNormal)
	}
	expected := core.NewVec3(0, 0, -1-core.NormalBump)
	if !vecNear(recorder.hitPosition, expected) {
		t.Errorf("Expected bumped hit position %v, got %v", expected, recorder.hitPosition)
	}
}

func TestCastRayDistance(t *testing.T) {
	s := NewScene(DefaultConfig(), testCamera())
	s.Root = geometry.NewSphere(core.Vec3{}, 1, 0)

	tests := []struct {
		name     string
		ray      core.Ray
		distance float64
		hit      bool
	}{
		{"outside", core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1)), 4, true},
		{"inside clamps to zero", core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 1)), 0, true},
		{"miss", core.NewRay(core.NewVec3(0, 5, -5), core.NewVec3(0, 0, 1)), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			distance, hit := s.CastRayDistance(tt.ray)
			if hit != tt.hit {
				t.Fatalf("Expected hit=%v, got %v", tt.hit, hit)
			}
			if math.Abs(distance-tt.distance) > tolerance {
				t.Errorf("Expected distance %f, got %f", tt.distance, distance)
			}
		})
	}
}

func TestCastRayDistance_NilRoot(t *testing.T) {
	s := NewScene(DefaultConfig(), testCamera())
	s.Root = nil

	if _, hit := s.CastRayDistance(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 1))); hit {
		t.Error("Scene without geometry should never report a hit")
	}
}

func TestGradientMissShader(t *testing.T) {
	shader := NewGradientMissShader(core.NewColor3(0, 0, 1), core.NewColor3(1, 1, 1))

	tests := []struct {
		name      string
		direction core.Vec3
		expected  core.Color3
	}{
		{"straight up", core.NewVec3(0, 1, 0), core.NewColor3(0, 0, 1)},
		{"straight down", core.NewVec3(0, -1, 0), core.NewColor3(1, 1, 1)},
		{"horizon", core.NewVec3(1, 0, 0), core.NewColor3(0.5, 0.5, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shader.Color(core.NewRay(core.Vec3{}, tt.direction))
			if math.Abs(got.R-tt.expected.R) > tolerance ||
				math.Abs(got.G-tt.expected.G) > tolerance ||
				math.Abs(got.B-tt.expected.B) > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestCornellScene_Lighting(t *testing.T) {
	s := NewCornellScene()
	random := rand.New(rand.NewSource(7))

	// Looking straight up from the middle of the floor sees the light
	up := core.NewRay(core.NewVec3(0.5, 0.01, 0.5), core.NewVec3(0, 1, 0))
	if got := s.CastRayColor(random, up, 1); got != core.NewColor3FromValue(30) {
		t.Errorf("Expected light emission, got %v", got)
	}

	// The floor under the light receives direct light
	down := core.NewRay(core.NewVec3(0.5, 0.5, 0.1), core.NewVec3(0, -1, 0))
	got := s.CastRayColor(random, down, 1)
	if !(got.R > 0 && got.G > 0 && got.B > 0) {
		t.Errorf("Expected lit floor, got %v", got)
	}
}

func TestApplyOverrides(t *testing.T) {
	tests := []struct {
		name                  string
		width, height, passes int
		expectedW, expectedH  int
		expectedPasses        int
	}{
		{"no overrides", 0, 0, 0, 400, 400, 16},
		{"width only", 200, 0, 0, 200, 400, 16},
		{"both dimensions", 64, 32, 0, 64, 32, 16},
		{"iterations", 0, 0, 3, 400, 400, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewCornellScene()
			s.ApplyOverrides(tt.width, tt.height, tt.passes)

			w, h := s.Camera.ScreenSize()
			if w != tt.expectedW || h != tt.expectedH {
				t.Errorf("Expected %dx%d, got %dx%d", tt.expectedW, tt.expectedH, w, h)
			}
			if s.Config.Iterations != tt.expectedPasses {
				t.Errorf("Expected %d iterations, got %d", tt.expectedPasses, s.Config.Iterations)
			}
			if s.Camera.SubpixelCount() != 2 {
				t.Errorf("Overrides should keep the subpixel count, got %d", s.Camera.SubpixelCount())
			}
		})
	}
}
