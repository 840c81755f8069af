package core

// Ray represents a ray with an origin and direction. The reciprocal of the
// direction is cached for the bounding box slab test.
type Ray struct {
	origin           Vec3
	direction        Vec3
	inverseDirection Vec3
}

// NewRay creates a new ray
func NewRay(origin, direction Vec3) Ray {
	return Ray{
		origin:           origin,
		direction:        direction,
		inverseDirection: direction.Reciprocal(),
	}
}

// Origin returns the starting point of the ray
func (r Ray) Origin() Vec3 {
	return r.origin
}

// Direction returns the ray direction
func (r Ray) Direction() Vec3 {
	return r.direction
}

// InverseDirection returns the component-wise reciprocal of the direction
func (r Ray) InverseDirection() Vec3 {
	return r.inverseDirection
}

// PositionAlong returns the point at the given distance along the ray
func (r Ray) PositionAlong(distance float64) Vec3 {
	return r.origin.Add(r.direction.Multiply(distance))
}

// Reverse returns a ray from the same origin pointing the opposite way
func (r Ray) Reverse() Ray {
	return NewRay(r.origin, r.direction.Negate())
}
