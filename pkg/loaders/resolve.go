package loaders

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-yart/pkg/scene"
)

// ResolveScene creates the scene named by sceneType: a path to a .yaml/.yml
// file, a YAML scene in scenesDir by name or "yaml:<name>", or a built-in
// scene ID
func ResolveScene(sceneType, scenesDir string) (*scene.Scene, error) {
	if sceneType == "" {
		return nil, fmt.Errorf("no scene specified")
	}

	if path, ok := yamlScenePath(sceneType, scenesDir); ok {
		return LoadScene(path)
	}

	return scene.NewBuiltinScene(sceneType)
}

// yamlScenePath returns the file to load when sceneType names a YAML scene
func yamlScenePath(sceneType, scenesDir string) (string, bool) {
	ext := strings.ToLower(filepath.Ext(sceneType))
	if ext == ".yaml" || ext == ".yml" {
		return sceneType, true
	}

	name, explicit := strings.CutPrefix(sceneType, "yaml:")
	for _, ext := range []string{".yaml", ".yml"} {
		path := filepath.Join(scenesDir, name+ext)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}

	if explicit {
		// LoadScene reports the missing file
		return filepath.Join(scenesDir, name+".yaml"), true
	}
	return "", false
}
