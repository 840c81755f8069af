package geometry

import (
	"math"

	"github.com/df07/go-yart/pkg/core"
)

// CameraConfig describes a perspective camera
type CameraConfig struct {
	Position      core.Vec3
	LookAt        core.Vec3
	Up            core.Vec3
	FieldOfView   float64 // Vertical field of view in radians
	Width         int     // Screen width in pixels
	Height        int     // Screen height in pixels
	SubpixelCount int     // Subpixels per pixel along each axis
}

// PerspectiveCamera maps pixels and subpixels to primary rays. The horizontal
// axis is mirrored: pixel column 0 looks through the far end of the viewport's
// u axis.
type PerspectiveCamera struct {
	config CameraConfig

	reciprocalWidth  float64
	reciprocalHeight float64
	subpixelSizeX    float64
	subpixelSizeY    float64

	du              core.Vec3
	dv              core.Vec3
	upperLeftCorner core.Vec3
}

// NewPerspectiveCamera precomputes the viewport basis for config
func NewPerspectiveCamera(config CameraConfig) *PerspectiveCamera {
	if config.SubpixelCount < 1 {
		config.SubpixelCount = 1
	}

	forward := config.Position.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(forward).Normalize()
	v := forward.Cross(u).Normalize()

	aspectRatio := float64(config.Width) / float64(config.Height)
	halfWidth := math.Tan(config.FieldOfView * 0.5)

	viewportHeight := 2 * halfWidth
	viewportWidth := aspectRatio * viewportHeight

	du := u.Multiply(viewportWidth)
	dv := v.Multiply(viewportHeight)

	upperLeftCorner := config.Position.
		Subtract(du.Multiply(0.5)).
		Add(dv.Multiply(0.5)).
		Subtract(forward)

	reciprocalWidth := 1 / float64(config.Width)
	reciprocalHeight := 1 / float64(config.Height)
	count := float64(config.SubpixelCount)

	return &PerspectiveCamera{
		config:           config,
		reciprocalWidth:  reciprocalWidth,
		reciprocalHeight: reciprocalHeight,
		subpixelSizeX:    reciprocalWidth / count,
		subpixelSizeY:    reciprocalHeight / count,
		du:               du,
		dv:               dv,
		upperLeftCorner:  upperLeftCorner,
	}
}

// CreateRay returns the primary ray through subpixel (sx, sy) of pixel (x, y)
func (c *PerspectiveCamera) CreateRay(x, y, sx, sy int) core.Ray {
	normalizedX := float64(c.config.Width-x-1)*c.reciprocalWidth + float64(sx)*c.subpixelSizeX
	normalizedY := float64(y)*c.reciprocalHeight + float64(sy)*c.subpixelSizeY

	direction := c.upperLeftCorner.
		Add(c.du.Multiply(normalizedX)).
		Subtract(c.dv.Multiply(normalizedY)).
		Subtract(c.config.Position).
		Normalize()

	return core.NewRay(c.config.Position, direction)
}

// ScreenSize returns the image dimensions in pixels
func (c *PerspectiveCamera) ScreenSize() (int, int) {
	return c.config.Width, c.config.Height
}

// SubpixelCount returns the number of subpixels along each pixel axis
func (c *PerspectiveCamera) SubpixelCount() int {
	return c.config.SubpixelCount
}

// Config returns the configuration the camera was built from
func (c *PerspectiveCamera) Config() CameraConfig {
	return c.config
}
