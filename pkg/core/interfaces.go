package core

// Logger interface for renderer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// DistanceCaster answers shadow queries: the distance to the nearest surface
// along a ray, or false when nothing is hit
type DistanceCaster interface {
	CastRayDistance(ray Ray) (float64, bool)
}
