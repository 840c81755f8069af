package scene

import (
	"math"
	"math/rand"

	"github.com/df07/go-yart/pkg/core"
	"github.com/df07/go-yart/pkg/geometry"
	"github.com/df07/go-yart/pkg/lights"
	"github.com/df07/go-yart/pkg/material"
)

// Scene contains all the elements needed for rendering. It is built once and
// only read while rendering, so workers share it without locking.
type Scene struct {
	Config     Config
	Camera     *geometry.PerspectiveCamera
	Materials  []material.Material // Slot 0 is the inert black material
	Lights     []lights.Light
	AreaLights []lights.AreaLight
	MissShader MissShader
	Root       geometry.Intersectable
}

// NewScene creates an empty scene with the reserved black material in slot 0
// and a black background
func NewScene(config Config, camera *geometry.PerspectiveCamera) *Scene {
	return &Scene{
		Config:     config,
		Camera:     camera,
		Materials:  []material.Material{material.NewEmissive(core.Color3{})},
		Lights:     make([]lights.Light, 0),
		AreaLights: make([]lights.AreaLight, 0),
		MissShader: NewConstantMissShader(core.Color3{}),
		Root:       geometry.NewIntersectableCollection(),
	}
}

// AddMaterial appends m to the material table and returns its index
func (s *Scene) AddMaterial(m material.Material) geometry.MaterialIndex {
	s.Materials = append(s.Materials, m)
	return geometry.MaterialIndex(len(s.Materials) - 1)
}

// Material looks up a material by index
func (s *Scene) Material(index geometry.MaterialIndex) (material.Material, bool) {
	if index < 0 || int(index) >= len(s.Materials) {
		return nil, false
	}
	return s.Materials[index], true
}

// AddLight adds a point or directional light
func (s *Scene) AddLight(light lights.Light) {
	s.Lights = append(s.Lights, light)
}

// AddAreaLight registers a parallelogram for light sampling. The same pointer
// must also be placed in the geometry tree for the light to be visible.
func (s *Scene) AddAreaLight(light *geometry.Parallelogram) {
	s.AreaLights = append(s.AreaLights, light)
}

// CastRayColor returns the color carried back along ray. Rays past MaxDepth
// are black.
func (s *Scene) CastRayColor(random *rand.Rand, ray core.Ray, depth int) core.Color3 {
	if depth > core.MaxDepth {
		return core.Color3{}
	}

	hit, ok := s.intersect(ray)
	if !ok {
		return s.MissShader.Color(ray)
	}

	index := hit.HitGeometry.MaterialIndex()
	if hit.MaterialIndexOverride > 0 {
		index = hit.MaterialIndexOverride
	}
	m, ok := s.Material(index)
	if !ok {
		return core.Color3{}
	}

	hitPosition := ray.PositionAlong(hit.EntranceDistance)
	hitNormal := hit.HitGeometry.Normal(ray, hitPosition)
	hitPosition = hitPosition.Add(hitNormal.Multiply(core.NormalBump))

	return m.CalculateRenderingEquation(random, s, depth, hit.HitGeometry, hitPosition, hitNormal, ray.Direction())
}

// CastRayDistance returns the distance to the nearest hit, clamped at zero
// for rays that start inside a solid
func (s *Scene) CastRayDistance(ray core.Ray) (float64, bool) {
	hit, ok := s.intersect(ray)
	if !ok {
		return 0, false
	}
	return math.Max(0, hit.EntranceDistance), true
}

func (s *Scene) GetLights() []lights.Light {
	return s.Lights
}

func (s *Scene) GetAreaLights() []lights.AreaLight {
	return s.AreaLights
}

func (s *Scene) intersect(ray core.Ray) (geometry.Intersection, bool) {
	if s.Root == nil {
		return geometry.Intersection{}, false
	}
	return s.Root.Intersect(ray)
}

// ApplyOverrides replaces the camera resolution and pass count where the
// given value is positive. Setting one dimension keeps the other.
func (s *Scene) ApplyOverrides(width, height, iterations int) {
	if s.Camera != nil && (width > 0 || height > 0) {
		config := s.Camera.Config()
		if width > 0 {
			config.Width = width
		}
		if height > 0 {
			config.Height = height
		}
		s.Camera = geometry.NewPerspectiveCamera(config)
	}
	if iterations > 0 {
		s.Config.Iterations = iterations
	}
}
