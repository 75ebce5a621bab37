package schemaimport

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ManifestConfig represents a schema-import.toml project configuration
// file: a table of named sources an import directive can reach with
// `from "name"` when name isn't a ".graphql" path (spec §4.C.2).
type ManifestConfig struct {
	Sources map[string]*ManifestSource `toml:"sources"`
}

// ManifestSource describes one named, non-filesystem import source.
// Exactly one of Schema or Inline should be set.
type ManifestSource struct {
	// Schema is a path to a local SDL file, relative to the manifest.
	Schema string `toml:"schema,omitempty"`

	// Inline is literal SDL text, for small fixtures not worth a file.
	Inline string `toml:"inline,omitempty"`
}

// LoadManifest loads a schema-import.toml file from path.
func LoadManifest(path string) (*ManifestConfig, error) {
	var config ManifestConfig
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &config, nil
}

// FindManifest searches for schema-import.toml starting from dir and
// walking up to parent directories, stopping at a .git boundary. Returns
// ("", nil, nil) if none is found.
func FindManifest(dir string) (string, *ManifestConfig, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", nil, err
	}
	for {
		path := filepath.Join(dir, "schema-import.toml")
		if _, err := os.Stat(path); err == nil {
			config, err := LoadManifest(path)
			if err != nil {
				return "", nil, err
			}
			return path, config, nil
		}

		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return "", nil, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil, nil
		}
		dir = parent
	}
}

// ResolveLogicalSources turns a manifest's sources into the map
// WithLogicalSources expects, reading Schema files relative to
// manifestDir (the directory containing schema-import.toml).
func ResolveLogicalSources(config *ManifestConfig, manifestDir string) (map[string]string, error) {
	if config == nil || len(config.Sources) == 0 {
		return nil, nil
	}

	logical := make(map[string]string, len(config.Sources))
	for name, src := range config.Sources {
		sdl, err := resolveManifestSource(name, src, manifestDir)
		if err != nil {
			return nil, fmt.Errorf("source %q: %w", name, err)
		}
		logical[name] = sdl
	}
	return logical, nil
}

func resolveManifestSource(name string, src *ManifestSource, manifestDir string) (string, error) {
	switch {
	case src.Schema != "":
		path := src.Schema
		if !filepath.IsAbs(path) {
			path = filepath.Join(manifestDir, path)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(data), nil
	case src.Inline != "":
		return src.Inline, nil
	default:
		return "", fmt.Errorf("must specify one of 'schema' or 'inline'")
	}
}
