package scene

import (
	"math"

	"github.com/df07/go-yart/pkg/core"
	"github.com/df07/go-yart/pkg/geometry"
	"github.com/df07/go-yart/pkg/lights"
	"github.com/df07/go-yart/pkg/material"
)

// NewDefaultScene creates a row of Phong spheres on a ground plane under a
// sky gradient, lit by one point light and one directional light
func NewDefaultScene() *Scene {
	camera := geometry.NewPerspectiveCamera(geometry.CameraConfig{
		Position:      core.NewVec3(0, 1.5, 6),
		LookAt:        core.NewVec3(0, 0.5, 0),
		Up:            core.NewVec3(0, 1, 0),
		FieldOfView:   40 * math.Pi / 180,
		Width:         640,
		Height:        360,
		SubpixelCount: 2,
	})

	s := NewScene(DefaultConfig(), camera)
	s.MissShader = NewGradientMissShader(
		core.NewColor3(0.5, 0.7, 1.0), // Blue
		core.NewColor3(1.0, 1.0, 1.0), // White
	)

	s.AddLight(lights.NewPointLight(core.NewVec3(3, 5, 4), core.NewColor3FromValue(0.6)))
	s.AddLight(lights.NewDirectionalLight(core.NewVec3(-1, -1, -0.5), core.NewColor3FromValue(0.4)))

	ground := s.AddMaterial(newPlastic(core.NewColor3(0.5, 0.5, 0.5), 8))
	colors := []core.Color3{
		core.NewColor3(0.8, 0.2, 0.2),
		core.NewColor3(0.8, 0.6, 0.2),
		core.NewColor3(0.2, 0.7, 0.3),
		core.NewColor3(0.2, 0.4, 0.8),
		core.NewColor3(0.6, 0.3, 0.8),
	}

	spheres := make([]geometry.Intersectable, 0, len(colors))
	for i, color := range colors {
		index := s.AddMaterial(newPlastic(color, 32))
		x := float64(i-len(colors)/2) * 1.1
		spheres = append(spheres, geometry.NewSphere(core.NewVec3(x, 0.5, 0), 0.5, index))
	}

	s.Root = geometry.NewIntersectableCollection(
		geometry.NewPlaneFromPoint(core.NewVec3(0, 1, 0), core.NewVec3(0, 0, 0), ground),
		geometry.BuildBoundingBoxHierarchy(spheres, 0),
	)

	return s
}

// newPlastic is a Phong material with a dim ambient term and a white highlight
func newPlastic(color core.Color3, shininess float64) *material.Phong {
	return material.NewPhong(
		color.Multiply(0.1),
		color,
		core.NewColor3FromValue(0.5),
		shininess,
	)
}
