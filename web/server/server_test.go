package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-yart/pkg/scene"
)

const testScene = `# Scene: Backdrop
# Description: Gradient background only
config:
  iterations: 1
camera:
  perspective:
    position: [0, 0, -5]
    lookAt: [0, 0, 0]
    up: [0, 1, 0]
    fov: 1
    screenSize: [6, 4]
    subpixelCount: 1
missShader:
  gradient:
    top: [0.5, 0.7, 1]
    bottom: [1]
geometry:
  collection:
    children: []
`

// newTestServer serves a scenes directory holding backdrop.yaml
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts, _ := newTestServerWithOutsideScene(t)
	return ts
}

// newTestServerWithOutsideScene also returns the path of a valid scene file
// next to, not inside, the scenes directory
func newTestServerWithOutsideScene(t *testing.T) (*httptest.Server, string) {
	t.Helper()
	root := t.TempDir()
	dir := filepath.Join(root, "scenes")
	if err := os.Mkdir(dir, 0755); err != nil {
		t.Fatalf("Mkdir() error: %v", err)
	}
	outside := filepath.Join(root, "outside.yaml")
	if err := os.WriteFile(outside, []byte(testScene), 0644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "backdrop.yaml"), []byte(testScene), 0644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	ts := httptest.NewServer(NewServer(0, dir).Handler())
	t.Cleanup(ts.Close)
	return ts, outside
}

func TestHandleHealth(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/health")
	if err != nil {
		t.Fatalf("GET error: %v", err)
	}
	defer resp.Body.Close()

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if resp.StatusCode != http.StatusOK || body["status"] != "ok" {
		t.Errorf("Unexpected health response %d %v", resp.StatusCode, body)
	}
}

func TestHandleScenes(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/scenes")
	if err != nil {
		t.Fatalf("GET error: %v", err)
	}
	defer resp.Body.Close()

	var scenes []scene.SceneInfo
	if err := json.NewDecoder(resp.Body).Decode(&scenes); err != nil {
		t.Fatalf("Decode error: %v", err)
	}

	builtins := len(scene.ListBuiltinScenes())
	if len(scenes) != builtins+1 {
		t.Fatalf("Expected %d scenes, got %d", builtins+1, len(scenes))
	}
	last := scenes[len(scenes)-1]
	if last.ID != "yaml:backdrop" || last.Name != "Backdrop" {
		t.Errorf("Unexpected YAML scene entry %+v", last)
	}
}

func TestHandleRender_PNG(t *testing.T) {
	ts := newTestServer(t)

	query := url.Values{"scene": {"cornell"}, "width": {"8"}, "height": {"6"}, "iterations": {"1"}}
	resp, err := http.Get(ts.URL + "/api/render?" + query.Encode())
	if err != nil {
		t.Fatalf("GET error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Errorf("Expected image/png, got %s", ct)
	}

	img, err := png.Decode(resp.Body)
	if err != nil {
		t.Fatalf("png.Decode error: %v", err)
	}
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 6 {
		t.Errorf("Expected 8x6 image, got %v", img.Bounds())
	}
}

func TestHandleRender_JSON(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/render?scene=yaml:backdrop&format=json&workers=2")
	if err != nil {
		t.Fatalf("GET error: %v", err)
	}
	defer resp.Body.Close()

	var body RenderResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Decode error: %v", err)
	}

	if body.Width != 6 || body.Height != 4 {
		t.Errorf("Expected 6x4, got %dx%d", body.Width, body.Height)
	}
	if body.Stats.TotalPixels != 24 || body.Stats.PrimaryRays != 24 || body.Stats.Passes != 1 {
		t.Errorf("Unexpected stats %+v", body.Stats)
	}
	if len(body.Console) == 0 {
		t.Error("Expected console messages from the render")
	}

	data, err := base64.StdEncoding.DecodeString(body.ImageData)
	if err != nil {
		t.Fatalf("Base64 decode error: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode error: %v", err)
	}
	if img.Bounds().Dx() != 6 {
		t.Errorf("Expected width 6, got %d", img.Bounds().Dx())
	}
}

func TestHandleRender_Errors(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name     string
		query    string
		expected int
	}{
		{"unknown scene", "scene=nonexistent", http.StatusNotFound},
		{"bad width", "width=abc", http.StatusBadRequest},
		{"width out of range", "width=0", http.StatusBadRequest},
		{"bad format", "format=gif", http.StatusBadRequest},
		{"gamma out of range", "gamma=10", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Get(ts.URL + "/api/render?" + tt.query)
			if err != nil {
				t.Fatalf("GET error: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.expected {
				t.Errorf("Expected status %d, got %d", tt.expected, resp.StatusCode)
			}
		})
	}
}

func TestHandleRender_OnlyListedScenes(t *testing.T) {
	ts, outside := newTestServerWithOutsideScene(t)

	tests := []struct {
		name     string
		scene    string
		expected int
	}{
		{"listed YAML scene by name", "backdrop", http.StatusOK},
		{"listed YAML scene by ID", "yaml:backdrop", http.StatusOK},
		{"absolute path outside the scenes directory", outside, http.StatusNotFound},
		{"relative path", "../outside.yaml", http.StatusNotFound},
		{"ID escaping the scenes directory", "yaml:../outside", http.StatusNotFound},
		{"path to a listed scene", "backdrop.yaml", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := url.Values{"scene": {tt.scene}}
			resp, err := http.Get(ts.URL + "/api/render?" + query.Encode())
			if err != nil {
				t.Fatalf("GET error: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tt.expected {
				t.Errorf("Expected status %d, got %d", tt.expected, resp.StatusCode)
			}
		})
	}
}

func TestParseRenderRequest_Defaults(t *testing.T) {
	req, err := parseRenderRequest(url.Values{})
	if err != nil {
		t.Fatalf("parseRenderRequest() error: %v", err)
	}
	if req.Scene != "cornell" || req.Format != "png" || req.Gamma != 1.0 {
		t.Errorf("Unexpected defaults %+v", req)
	}
	if req.Width != 0 || req.Height != 0 || req.Iterations != 0 || req.Workers != 0 {
		t.Errorf("Expected zero overrides, got %+v", req)
	}
}
