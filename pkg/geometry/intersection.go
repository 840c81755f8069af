package geometry

// Intersection describes where a ray meets a primitive. Distances are measured
// in units of the ray direction. Planar primitives report the same entrance and
// exit distance.
type Intersection struct {
	HitGeometry           Geometry
	EntranceDistance      float64
	ExitDistance          float64
	MixAmount             float64       // Reserved for blended materials
	MaterialIndexOverride MaterialIndex // 0 means use HitGeometry's material
}

// NewIntersection creates an intersection without a material override
func NewIntersection(hit Geometry, entrance, exit float64) Intersection {
	return Intersection{
		HitGeometry:      hit,
		EntranceDistance: entrance,
		ExitDistance:     exit,
	}
}
