package geometry

import (
	"math"

	"github.com/df07/go-yart/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material MaterialIndex
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material MaterialIndex) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Intersect solves the ray/sphere quadratic. The entrance distance is negative
// when the ray starts inside the sphere.
func (s *Sphere) Intersect(ray core.Ray) (Intersection, bool) {
	direction := ray.Direction()
	v := ray.Origin().Subtract(s.Center)

	// Quadratic equation coefficients: at² + 2bt + c = 0
	a := direction.Dot(direction)
	b := v.Dot(direction)
	c := v.Dot(v) - s.Radius*s.Radius

	discriminant := b*b - a*c
	if discriminant < 0 {
		return Intersection{}, false
	}

	sqrtD := math.Sqrt(discriminant)
	invA := 1 / a

	exit := (-b + sqrtD) * invA
	if exit < 0 {
		// Sphere is entirely behind the ray
		return Intersection{}, false
	}
	entrance := (-b - sqrtD) * invA

	return NewIntersection(s, entrance, exit), true
}

// Normal returns the radial normal oriented against the ray
func (s *Sphere) Normal(ray core.Ray, hitPosition core.Vec3) core.Vec3 {
	return faceAgainst(ray, hitPosition.Subtract(s.Center).Normalize())
}

func (s *Sphere) MaterialIndex() MaterialIndex {
	return s.Material
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() core.BoundingBox {
	radius := core.NewVec3FromValue(s.Radius)
	return core.NewBoundingBox(
		s.Center.Subtract(radius),
		s.Center.Add(radius),
	)
}
