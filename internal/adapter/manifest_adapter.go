package adapter

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	m "dojo.dev/pkg/dojo/internal/model"
)

// ManifestAdapter loads the ordered exercise list.
type ManifestAdapter interface {
	// Load reads the manifest at path. Any failure is a *model.ConfigError.
	Load(path m.Path) ([]m.Exercise, error)
}

// manifestFile is the on-disk layout of the manifest.
type manifestFile struct {
	Exercises []m.Exercise `yaml:"exercises"`
}

// YAMLManifestAdapter reads manifests with gopkg.in/yaml.v3.
type YAMLManifestAdapter struct{}

// NewYAMLManifestAdapter constructs a YAMLManifestAdapter.
func NewYAMLManifestAdapter() *YAMLManifestAdapter {
	return &YAMLManifestAdapter{}
}

// Load parses the manifest, rejecting unknown fields and empty exercise lists.
// Uniqueness of names is checked by the registry, not here.
func (a *YAMLManifestAdapter) Load(path m.Path) ([]m.Exercise, error) {
	// #nosec G304 - manifest path is chosen by the operator
	data, err := os.ReadFile(string(path))
	if err != nil {
		slog.Error("Failed to read manifest", "path", path, "error", err)
		return nil, m.NewConfigError("read manifest", err)
	}

	exercises, err := decodeManifest(data)
	if err != nil {
		slog.Error("Failed to parse manifest", "path", path, "error", err)
		return nil, m.NewConfigError(fmt.Sprintf("parse manifest %s", path), err)
	}

	slog.Debug("Loaded manifest", "path", path, "exercises", len(exercises))

	return exercises, nil
}

func decodeManifest(data []byte) ([]m.Exercise, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var manifest manifestFile
	if err := decoder.Decode(&manifest); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("manifest is empty")
		}

		return nil, err
	}

	if len(manifest.Exercises) == 0 {
		return nil, errors.New("manifest lists no exercises")
	}

	for i, exercise := range manifest.Exercises {
		if exercise.Name == "" {
			return nil, fmt.Errorf("exercise #%d: missing name", i+1)
		}

		if exercise.Path == "" {
			return nil, fmt.Errorf("exercise %q: missing path", exercise.Name)
		}

		if !exercise.Mode.Valid() {
			return nil, fmt.Errorf("exercise %q: missing mode", exercise.Name)
		}
	}

	return manifest.Exercises, nil
}
