package scene

import "github.com/df07/go-yart/pkg/core"

// Config contains rendering configuration carried by the scene
type Config struct {
	Iterations int       // Number of full passes averaged into each pixel
	ColorClamp core.Vec2 // Output range applied when converting to an image
	Seed       int64     // Base seed for the per-patch random generators
}

// DefaultConfig returns a single-pass configuration clamped to [0, 1]
func DefaultConfig() Config {
	return Config{
		Iterations: 1,
		ColorClamp: core.NewVec2(0, 1),
		Seed:       42,
	}
}
