package renderer

import (
	"time"

	"github.com/df07/go-yart/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels     int           // Total number of pixels rendered
	SamplesPerPixel int           // Subpixel samples per pixel per pass
	PrimaryRays     int           // Camera rays cast over all passes
	Passes          int           // Number of completed passes
	Patches         int           // Patches per pass
	NumWorkers      int           // Workers used
	Duration        time.Duration // Wall-clock render time
}

// AverageLuminance returns the mean luminance of a linear pixel buffer
func AverageLuminance(pixels []core.Color3) float64 {
	if len(pixels) == 0 {
		return 0
	}

	total := 0.0
	for _, p := range pixels {
		total += p.Luminance()
	}
	return total / float64(len(pixels))
}
