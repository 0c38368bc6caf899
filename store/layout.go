package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LayoutVersion is written into every saved layout.
const LayoutVersion = 1

// Layout is the saved state of the canvas.
type Layout struct {
	Version   int             `yaml:"version"`
	Camera    CameraState     `yaml:"camera"`
	Districts []DistrictState `yaml:"districts"`
}

type CameraState struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Zoom float64 `yaml:"zoom"`
}

type DistrictState struct {
	Name   string  `yaml:"name"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// Volume is nil when the layout does not record one; 0 is muted.
	Volume *float64 `yaml:"volume,omitempty"`
	Tracks []string `yaml:"tracks,omitempty"`
}

// Load reads a layout file. A missing file yields an empty layout.
func Load(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Layout{Version: LayoutVersion}, nil
		}
		return Layout{}, fmt.Errorf("reading layout %s: %w", path, err)
	}

	var layout Layout
	if err := yaml.Unmarshal(data, &layout); err != nil {
		return Layout{}, fmt.Errorf("parsing layout %s: %w", path, err)
	}
	if layout.Version > LayoutVersion {
		return Layout{}, fmt.Errorf("layout %s has version %d, newest supported is %d", path, layout.Version, LayoutVersion)
	}
	return layout, nil
}

// Save writes the layout through a temporary file so a crash never leaves
// a truncated layout behind.
func Save(path string, layout Layout) error {
	layout.Version = LayoutVersion
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating layout dir: %w", err)
	}

	f, err := os.CreateTemp(filepath.Dir(path), ".layout-*.yaml")
	if err != nil {
		return fmt.Errorf("creating temp layout: %w", err)
	}
	tmp := f.Name()
	defer os.Remove(tmp)

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(layout); err != nil {
		f.Close()
		return fmt.Errorf("encoding layout: %w", err)
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return fmt.Errorf("encoding layout: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing layout: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replacing layout %s: %w", path, err)
	}
	return nil
}
