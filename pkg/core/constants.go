package core

import "math"

const (
	// Epsilon is the tolerance used by shadow tests and refraction checks
	Epsilon = 1e-4

	// NormalBump is how far hit positions are pushed along the surface normal
	// before spawning secondary rays
	NormalBump = 1e-4

	// MaxDepth is the deepest recursion level that still shades; deeper casts return black
	MaxDepth = 7

	OneOverPi = 1.0 / math.Pi
)
