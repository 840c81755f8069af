package renderer

import (
	"errors"
	"fmt"
	"time"

	"github.com/df07/go-yart/pkg/core"
	"github.com/df07/go-yart/pkg/scene"
)

// Options controls how a render is scheduled. The image itself depends only
// on the scene, including its seed.
type Options struct {
	PatchSize  int         // Size of each square patch in pixels
	NumWorkers int         // Number of parallel workers (0 = use CPU count)
	Logger     core.Logger // Progress output; nil uses the default logger
}

// DefaultOptions returns 8 pixel patches on every CPU
func DefaultOptions() Options {
	return Options{
		PatchSize:  8,
		NumWorkers: 0,
		Logger:     NewDefaultLogger(),
	}
}

// Render traces every pixel of the scene's camera for Config.Iterations
// passes and returns the averaged linear colors, row-major with the top-left
// pixel first
func Render(s *scene.Scene, options Options) ([]core.Color3, RenderStats, error) {
	if s == nil {
		return nil, RenderStats{}, errors.New("render: nil scene")
	}
	if s.Camera == nil {
		return nil, RenderStats{}, errors.New("render: scene has no camera")
	}
	width, height := s.Camera.ScreenSize()
	if width <= 0 || height <= 0 {
		return nil, RenderStats{}, fmt.Errorf("render: invalid screen size %dx%d", width, height)
	}
	iterations := s.Config.Iterations
	if iterations < 1 {
		return nil, RenderStats{}, fmt.Errorf("render: iterations must be at least 1, got %d", iterations)
	}
	if options.PatchSize < 1 {
		return nil, RenderStats{}, fmt.Errorf("render: patch size must be at least 1, got %d", options.PatchSize)
	}

	logger := options.Logger
	if logger == nil {
		logger = NewDefaultLogger()
	}

	startTime := time.Now()
	patches := NewPatchGrid(width, height, options.PatchSize, s.Config.Seed)
	accum := make([]core.Color3, width*height)

	pool := NewWorkerPool(s, accum, width, len(patches), options.NumWorkers)
	pool.Start()

	count := s.Camera.SubpixelCount()
	stats := RenderStats{
		TotalPixels:     width * height,
		SamplesPerPixel: count * count,
		Patches:         len(patches),
		NumWorkers:      pool.GetNumWorkers(),
	}

	logger.Printf("Rendering %dx%d, %d passes, %d patches on %d workers\n",
		width, height, iterations, len(patches), stats.NumWorkers)

	// Passes run one after another so each patch generator is consumed in the
	// same order no matter which worker picks the patch up
	for pass := 1; pass <= iterations; pass++ {
		passStart := time.Now()

		for i, patch := range patches {
			pool.SubmitTask(PatchTask{Patch: patch, Pass: pass, TaskID: i})
		}
		for range patches {
			result, _ := pool.GetResult()
			stats.PrimaryRays += result.PrimaryRays
		}

		stats.Passes = pass
		logger.Printf("Pass %d/%d completed in %v\n", pass, iterations, time.Since(passStart))
	}

	pool.Stop()

	for i := range accum {
		accum[i] = accum[i].Divide(float64(iterations))
	}

	stats.Duration = time.Since(startTime)
	logger.Printf("Render completed in %v (%d primary rays, average luminance %.4f)\n",
		stats.Duration, stats.PrimaryRays, AverageLuminance(accum))

	return accum, stats, nil
}
