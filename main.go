package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-yart/pkg/loaders"
	"github.com/df07/go-yart/pkg/renderer"
	"github.com/df07/go-yart/pkg/scene"
)

const scenesDir = "scenes"

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "cornell", "Built-in scene, YAML scene name, or path to a .yaml file")
	list := flag.Bool("list", false, "List available scenes and exit")
	width := flag.Int("width", 0, "Override the camera width in pixels")
	height := flag.Int("height", 0, "Override the camera height in pixels")
	iterations := flag.Int("iterations", 0, "Override the number of passes")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = use CPU count)")
	patchSize := flag.Int("patch", 8, "Patch size in pixels")
	gamma := flag.Float64("gamma", 1.0, "Gamma applied when writing the image")
	output := flag.String("output", "", "Output file (.png, .bmp, .tif or .tiff); defaults to output/<scene>/render_<timestamp>.png")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("yart - offline path tracer")
		fmt.Println("Usage: yart [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		printScenes()
		return
	}

	if *list {
		printScenes()
		return
	}

	selectedScene, err := createScene(*sceneType)
	if err != nil {
		log.Fatalf("Error creating scene: %v", err)
	}
	selectedScene.ApplyOverrides(*width, *height, *iterations)

	filename := *output
	if filename == "" {
		outputDir := createOutputDir(*sceneType)
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			log.Fatalf("Error creating output directory: %v", err)
		}
		timestamp := time.Now().Format("20060102_150405")
		filename = filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))
	}

	options := renderer.DefaultOptions()
	options.NumWorkers = *workers
	options.PatchSize = *patchSize

	stats, err := renderToFile(selectedScene, options, filename, *gamma)
	if err != nil {
		log.Fatalf("Error rendering scene: %v", err)
	}

	fmt.Printf("Render completed in %v\n", stats.Duration)
	fmt.Printf("%d pixels, %d samples per pixel, %d passes, %d primary rays\n",
		stats.TotalPixels, stats.SamplesPerPixel, stats.Passes, stats.PrimaryRays)
	fmt.Printf("Render saved as %s\n", filename)
}

// renderToFile renders s, writes the tone-mapped image to filename and reads
// it back to confirm the file decodes at the rendered size
func renderToFile(s *scene.Scene, options renderer.Options, filename string, gamma float64) (renderer.RenderStats, error) {
	pixels, stats, err := renderer.Render(s, options)
	if err != nil {
		return stats, err
	}

	width, height := s.Camera.ScreenSize()
	img := renderer.ToImageWithGamma(pixels, width, height, s.Config.ColorClamp, gamma)
	if err := loaders.SaveImage(filename, img); err != nil {
		return stats, fmt.Errorf("failed to save image: %w", err)
	}

	saved, err := loaders.LoadImage(filename)
	if err != nil {
		return stats, fmt.Errorf("failed to read back %s: %w", filename, err)
	}
	if saved.Width != width || saved.Height != height {
		return stats, fmt.Errorf("%s is %dx%d, expected %dx%d", filename, saved.Width, saved.Height, width, height)
	}

	return stats, nil
}

// createScene resolves a -scene argument against the built-in and YAML scenes
func createScene(sceneType string) (*scene.Scene, error) {
	return loaders.ResolveScene(sceneType, scenesDir)
}

// createOutputDir returns output/<scene name> for a scene argument
func createOutputDir(sceneType string) string {
	name := strings.TrimPrefix(sceneType, "yaml:")
	name = filepath.Base(name)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	if name == "" || name == "." {
		name = "scene"
	}
	return filepath.Join("output", name)
}

func printScenes() {
	scenes, err := scene.ListAllScenes(scenesDir)
	if err != nil {
		log.Fatalf("Error listing scenes: %v", err)
	}

	fmt.Println("Available scenes:")
	for _, info := range scenes {
		fmt.Printf("  %-16s %s - %s\n", info.ID, info.Name, info.Description)
	}
}
