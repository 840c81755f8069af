package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"sync/atomic"

	"github.com/df07/go-yart/pkg/loaders"
	"github.com/df07/go-yart/pkg/renderer"
	"github.com/df07/go-yart/pkg/scene"
)

// Server renders scenes on request and returns finished images
type Server struct {
	port      int
	scenesDir string
	renders   atomic.Int64
}

// NewServer creates a new web server
func NewServer(port int, scenesDir string) *Server {
	return &Server{port: port, scenesDir: scenesDir}
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene      string  `json:"scene"`      // Built-in ID, YAML name or "yaml:<name>"
	Width      int     `json:"width"`      // 0 keeps the scene's width
	Height     int     `json:"height"`     // 0 keeps the scene's height
	Iterations int     `json:"iterations"` // 0 keeps the scene's pass count
	Workers    int     `json:"workers"`    // 0 uses every CPU
	Gamma      float64 `json:"gamma"`
	Format     string  `json:"format"` // "png" or "json"
}

// RenderResponse is the JSON form of a finished render
type RenderResponse struct {
	Scene     string           `json:"scene"`
	Width     int              `json:"width"`
	Height    int              `json:"height"`
	ImageData string           `json:"imageData"` // Base64 encoded PNG
	Stats     Stats            `json:"stats"`
	Console   []ConsoleMessage `json:"console"`
}

// Stats represents render statistics
type Stats struct {
	TotalPixels     int   `json:"totalPixels"`
	SamplesPerPixel int   `json:"samplesPerPixel"`
	PrimaryRays     int   `json:"primaryRays"`
	Passes          int   `json:"passes"`
	ElapsedMs       int64 `json:"elapsedMs"`
}

// Handler returns the server's routes
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the built-in and YAML scenes
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	scenes, err := scene.ListAllScenes(s.scenesDir)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, scenes)
}

// handleRender renders the requested scene to completion
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := parseRenderRequest(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	sceneObj, err := s.createScene(req.Scene)
	if err != nil {
		writeError(w, http.StatusNotFound, fmt.Sprintf("Unknown scene %s: %v", req.Scene, err))
		return
	}
	sceneObj.ApplyOverrides(req.Width, req.Height, req.Iterations)

	renderID := fmt.Sprintf("render-%d", s.renders.Add(1))
	consoleChan := make(chan ConsoleMessage, 256)

	options := renderer.DefaultOptions()
	options.NumWorkers = req.Workers
	options.Logger = NewWebLogger(renderID, consoleChan)

	pixels, stats, err := renderer.Render(sceneObj, options)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	width, height := sceneObj.Camera.ScreenSize()
	img := renderer.ToImageWithGamma(pixels, width, height, sceneObj.Config.ColorClamp, req.Gamma)

	if req.Format == "png" {
		w.Header().Set("Content-Type", "image/png")
		if err := png.Encode(w, img); err != nil {
			log.Printf("[%s] Error writing PNG: %v", renderID, err)
		}
		return
	}

	imageData, err := imageToBase64PNG(img)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, RenderResponse{
		Scene:     req.Scene,
		Width:     width,
		Height:    height,
		ImageData: imageData,
		Stats: Stats{
			TotalPixels:     stats.TotalPixels,
			SamplesPerPixel: stats.SamplesPerPixel,
			PrimaryRays:     stats.PrimaryRays,
			Passes:          stats.Passes,
			ElapsedMs:       stats.Duration.Milliseconds(),
		},
		Console: drainConsole(consoleChan),
	})
}

// createScene builds a built-in scene or one of the YAML scenes listed in the
// scenes directory. Arbitrary file paths are not accepted.
func (s *Server) createScene(name string) (*scene.Scene, error) {
	for _, info := range scene.ListBuiltinScenes() {
		if info.ID == name {
			return scene.NewBuiltinScene(name)
		}
	}

	yamlScenes, err := scene.ListYAMLScenes(s.scenesDir)
	if err != nil {
		return nil, err
	}
	for _, info := range yamlScenes {
		if info.ID == name || info.ID == "yaml:"+name {
			return loaders.LoadScene(info.FilePath)
		}
	}

	return nil, fmt.Errorf("scene %q is not available", name)
}

// parseRenderRequest parses request parameters
func parseRenderRequest(values url.Values) (*RenderRequest, error) {
	req := &RenderRequest{Scene: values.Get("scene"), Format: values.Get("format")}
	if req.Scene == "" {
		req.Scene = "cornell"
	}
	switch req.Format {
	case "":
		req.Format = "png"
	case "png", "json":
	default:
		return nil, fmt.Errorf("format must be png or json, got: %s", req.Format)
	}

	var err error
	if req.Width, err = parseIntParam(values, "width", 0, 1, 2000); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(values, "height", 0, 1, 2000); err != nil {
		return nil, err
	}
	if req.Iterations, err = parseIntParam(values, "iterations", 0, 1, 10000); err != nil {
		return nil, err
	}
	if req.Workers, err = parseIntParam(values, "workers", 0, 1, 256); err != nil {
		return nil, err
	}
	if req.Gamma, err = parseFloatParam(values, "gamma", 1.0, 0.1, 5.0); err != nil {
		return nil, err
	}

	return req, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseFloatParam parses a float parameter from URL query with validation
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %f and %f, got: %f", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

func imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode PNG: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error writing JSON response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
