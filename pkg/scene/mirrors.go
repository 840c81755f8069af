package scene

import (
	"math"

	"github.com/df07/go-yart/pkg/core"
	"github.com/df07/go-yart/pkg/geometry"
	"github.com/df07/go-yart/pkg/lights"
	"github.com/df07/go-yart/pkg/material"
)

// NewMirrorsScene creates a hall of two facing mirrors with a glass sphere and
// a plastic sphere between them. Reflections fade to black once rays exceed
// the maximum depth.
func NewMirrorsScene() *Scene {
	camera := geometry.NewPerspectiveCamera(geometry.CameraConfig{
		Position:      core.NewVec3(0.5, 1.2, 5),
		LookAt:        core.NewVec3(0, 0.8, 0),
		Up:            core.NewVec3(0, 1, 0),
		FieldOfView:   50 * math.Pi / 180,
		Width:         640,
		Height:        360,
		SubpixelCount: 2,
	})

	s := NewScene(DefaultConfig(), camera)
	s.MissShader = NewConstantMissShader(core.NewColor3(0.05, 0.05, 0.08))

	s.AddLight(lights.NewPointLight(core.NewVec3(0, 4, 3), core.NewColor3FromValue(0.9)))

	mirror := s.AddMaterial(material.NewReflective())
	floor := s.AddMaterial(newPlastic(core.NewColor3(0.6, 0.6, 0.55), 4))
	red := s.AddMaterial(newPlastic(core.NewColor3(0.9, 0.15, 0.1), 64))
	glass := s.AddMaterial(material.NewRefractive(1.5))

	s.Root = geometry.NewIntersectableCollection(
		geometry.NewPlaneFromPoint(core.NewVec3(1, 0, 0), core.NewVec3(-2, 0, 0), mirror),
		geometry.NewPlaneFromPoint(core.NewVec3(-1, 0, 0), core.NewVec3(2, 0, 0), mirror),
		geometry.NewPlaneFromPoint(core.NewVec3(0, 1, 0), core.NewVec3(0, 0, 0), floor),
		geometry.NewSphere(core.NewVec3(-0.6, 0.6, 0), 0.6, red),
		geometry.NewSphere(core.NewVec3(0.8, 0.5, 1), 0.5, glass),
	)

	return s
}
