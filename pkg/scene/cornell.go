package scene

import (
	"math"

	"github.com/df07/go-yart/pkg/core"
	"github.com/df07/go-yart/pkg/geometry"
	"github.com/df07/go-yart/pkg/material"
)

// NewCornellScene creates a unit Cornell box lit by a ceiling area light, with
// a mirror sphere and a glass sphere on the floor
func NewCornellScene() *Scene {
	camera := geometry.NewPerspectiveCamera(geometry.CameraConfig{
		Position:      core.NewVec3(0.5, 0.5, -1.44), // Outside the open front of the box
		LookAt:        core.NewVec3(0.5, 0.5, 0),
		Up:            core.NewVec3(0, 1, 0),
		FieldOfView:   40 * math.Pi / 180,
		Width:         400,
		Height:        400,
		SubpixelCount: 2,
	})

	config := DefaultConfig()
	config.Iterations = 16

	s := NewScene(config, camera)

	white := s.AddMaterial(material.NewLambertian(core.NewColor3(0.73, 0.73, 0.73)))
	red := s.AddMaterial(material.NewLambertian(core.NewColor3(0.65, 0.05, 0.05)))
	green := s.AddMaterial(material.NewLambertian(core.NewColor3(0.12, 0.45, 0.15)))
	light := s.AddMaterial(material.NewEmissive(core.NewColor3FromValue(30)))
	mirror := s.AddMaterial(material.NewReflective())
	glass := s.AddMaterial(material.NewRefractive(1.5))

	boxSize := 1.0

	// Walls are single sided; Edge1 × Edge2 points into the box
	floor := geometry.NewParallelogram(
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 0, boxSize),
		core.NewVec3(boxSize, 0, 0),
		white,
	)
	ceiling := geometry.NewParallelogram(
		core.NewVec3(0, boxSize, 0),
		core.NewVec3(boxSize, 0, 0),
		core.NewVec3(0, 0, boxSize),
		white,
	)
	backWall := geometry.NewParallelogram(
		core.NewVec3(0, 0, boxSize),
		core.NewVec3(0, boxSize, 0),
		core.NewVec3(boxSize, 0, 0),
		white,
	)
	leftWall := geometry.NewParallelogram(
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, boxSize, 0),
		core.NewVec3(0, 0, boxSize),
		red,
	)
	rightWall := geometry.NewParallelogram(
		core.NewVec3(boxSize, 0, 0),
		core.NewVec3(0, 0, boxSize),
		core.NewVec3(0, boxSize, 0),
		green,
	)

	// Ceiling light, slightly below the ceiling and facing down
	lightSize := 0.25
	lightOffset := (boxSize - lightSize) / 2
	ceilingLight := geometry.NewParallelogram(
		core.NewVec3(lightOffset, boxSize-0.002, lightOffset),
		core.NewVec3(lightSize, 0, 0),
		core.NewVec3(0, 0, lightSize),
		light,
	)
	s.AddAreaLight(ceilingLight)

	spheres := []geometry.Intersectable{
		geometry.NewSphere(core.NewVec3(0.333, 0.149, 0.305), 0.149, mirror),
		geometry.NewSphere(core.NewVec3(0.667, 0.162, 0.632), 0.162, glass),
	}
	spheresBounds := core.NewInverseInfiniteBoundingBox()
	for _, sphere := range spheres {
		spheresBounds = spheresBounds.Union(sphere.BoundingBox())
	}

	s.Root = geometry.NewIntersectableCollection(
		floor, ceiling, backWall, leftWall, rightWall,
		ceilingLight,
		geometry.NewBoundingGeometry(
			geometry.NewBoundingSphere(spheresBounds),
			geometry.BuildBoundingBoxHierarchy(spheres, 0),
		),
	)

	return s
}
