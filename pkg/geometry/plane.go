package geometry

import (
	"math"

	"github.com/df07/go-yart/pkg/core"
)

// Plane represents the infinite plane n·p + Distance = 0
type Plane struct {
	UnitNormal core.Vec3 // Unit normal
	Distance   float64   // Signed offset along the normal
	Material   MaterialIndex
}

// NewPlane creates a plane from a normal and its offset from the origin
func NewPlane(normal core.Vec3, distance float64, material MaterialIndex) *Plane {
	return &Plane{
		UnitNormal: normal.Normalize(),
		Distance:   distance,
		Material:   material,
	}
}

// NewPlaneFromPoint creates a plane with the given normal through point
func NewPlaneFromPoint(normal, point core.Vec3, material MaterialIndex) *Plane {
	n := normal.Normalize()
	return &Plane{
		UnitNormal: n,
		Distance:   -n.Dot(point),
		Material:   material,
	}
}

// Intersect tests the ray against the plane. Parallel rays produce an
// infinite or NaN distance and are rejected by the range check.
func (p *Plane) Intersect(ray core.Ray) (Intersection, bool) {
	denominator := p.UnitNormal.Dot(ray.Direction())
	distance := -(p.Distance + p.UnitNormal.Dot(ray.Origin())) * (1 / denominator)

	if !(distance >= 0) || math.IsInf(distance, 1) {
		return Intersection{}, false
	}
	return NewIntersection(p, distance, distance), true
}

func (p *Plane) Normal(ray core.Ray, _ core.Vec3) core.Vec3 {
	return faceAgainst(ray, p.UnitNormal)
}

func (p *Plane) MaterialIndex() MaterialIndex {
	return p.Material
}

// BoundingBox returns an infinite box since a plane has no finite bound
func (p *Plane) BoundingBox() core.BoundingBox {
	return core.NewInfiniteBoundingBox()
}
