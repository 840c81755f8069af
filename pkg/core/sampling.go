package core

import (
	"math"
	"math/rand"
)

// SampleCosineHemisphere returns a unit direction in the hemisphere around
// normal, distributed with density cosθ/π
func SampleCosineHemisphere(random *rand.Rand, normal Vec3) Vec3 {
	r1 := random.Float64()
	r2 := random.Float64()

	cosTheta := math.Sqrt(r1)
	sinTheta := math.Sqrt(1 - r1)
	phi := 2 * math.Pi * r2

	local := NewVec3(sinTheta*math.Cos(phi), cosTheta, sinTheta*math.Sin(phi))
	return tangentToWorld(normal, local)
}

// tangentToWorld maps v from a frame whose Y axis is the unit normal into
// world space
func tangentToWorld(normal, v Vec3) Vec3 {
	var tangent Vec3
	if math.Abs(normal.X) > math.Abs(normal.Y) {
		tangent = NewVec3(normal.Z, 0, -normal.X).Divide(math.Sqrt(normal.X*normal.X + normal.Z*normal.Z))
	} else {
		tangent = NewVec3(0, -normal.Z, normal.Y).Divide(math.Sqrt(normal.Y*normal.Y + normal.Z*normal.Z))
	}
	bitangent := normal.Cross(tangent)

	return bitangent.Multiply(v.X).Add(normal.Multiply(v.Y)).Add(tangent.Multiply(v.Z))
}
