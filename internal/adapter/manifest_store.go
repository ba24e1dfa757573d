package adapter

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	m "logmig.dev/pkg/logmig/internal/model"
)

// ManifestStore loads migration manifests.
type ManifestStore interface {
	// Load reads a manifest from path. An empty path yields the compiled-in
	// default manifest.
	Load(path m.Path) (m.Manifest, error)
}

// YAMLManifestStore reads manifests stored as a YAML sequence of relative
// paths.
type YAMLManifestStore struct{}

// NewYAMLManifestStore constructs a YAMLManifestStore.
func NewYAMLManifestStore() *YAMLManifestStore {
	return &YAMLManifestStore{}
}

// Load parses the manifest file at path, skipping empty entries. Entry order
// is preserved; it determines processing order.
func (s *YAMLManifestStore) Load(path m.Path) (m.Manifest, error) {
	if path == "" {
		return m.DefaultManifest, nil
	}

	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var entries []string
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}

	manifest := make(m.Manifest, 0, len(entries))

	for _, entry := range entries {
		if entry == "" {
			continue
		}

		manifest = append(manifest, m.Path(entry))
	}

	return manifest, nil
}
