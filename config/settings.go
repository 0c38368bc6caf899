package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/OpticalFlyer/districts/ui"
)

const (
	appDirName = "districts"

	defaultWindowWidth    = 1280
	defaultWindowHeight   = 800
	defaultWindowTitle    = "Districts"
	defaultDoubleClick    = 0.3
	defaultZoomStep       = 1.1
	defaultSampleRate     = 44100
	defaultVolume         = 0.8
	defaultLayoutFileName = "layout.yaml"
)

type Settings struct {
	Window WindowConfig `toml:"window"`
	Input  InputConfig  `toml:"input"`
	Theme  ThemeConfig  `toml:"theme"`
	Audio  AudioConfig  `toml:"audio"`
	Layout LayoutConfig `toml:"layout"`
}

type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

type InputConfig struct {
	DoubleClickSeconds float64 `toml:"double_click_seconds"`
	ZoomStep           float64 `toml:"zoom_step"`
}

// ThemeConfig holds hex colours. Hover and active shades left empty are
// derived from the normal colour.
type ThemeConfig struct {
	District PaletteConfig `toml:"district"`
	Track    PaletteConfig `toml:"track"`
	Grip     PaletteConfig `toml:"grip"`
}

type PaletteConfig struct {
	Normal   string `toml:"normal"`
	Hover    string `toml:"hover"`
	Active   string `toml:"active"`
	Disabled string `toml:"disabled"`
	Selected string `toml:"selected"`
}

type AudioConfig struct {
	SampleRate int     `toml:"sample_rate"`
	Volume     float64 `toml:"volume"`
}

type LayoutConfig struct {
	Path string `toml:"path"`
}

func DefaultSettings() Settings {
	return Settings{
		Window: WindowConfig{
			Width:  defaultWindowWidth,
			Height: defaultWindowHeight,
			Title:  defaultWindowTitle,
		},
		Input: InputConfig{
			DoubleClickSeconds: defaultDoubleClick,
			ZoomStep:           defaultZoomStep,
		},
		Theme: ThemeConfig{
			District: PaletteConfig{Normal: "#3a4a5c", Disabled: "#2b2b2b", Selected: "#4a7ab8"},
			Track:    PaletteConfig{Normal: "#56606b", Disabled: "#3b3b3b", Selected: "#d0a040"},
			Grip:     PaletteConfig{Normal: "#8a8a8a", Disabled: "#4b4b4b", Selected: "#8a8a8a"},
		},
		Audio: AudioConfig{
			SampleRate: defaultSampleRate,
			Volume:     defaultVolume,
		},
	}
}

// Dir returns the directory holding the settings and the saved layout.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config dir: %w", err)
	}
	return filepath.Join(base, appDirName), nil
}

// Path returns the location of config.toml.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the settings file, falling back to defaults when it is
// missing or empty.
func Load() (Settings, error) {
	path, err := Path()
	if err != nil {
		return Settings{}, err
	}
	return LoadFromPath(path)
}

func LoadFromPath(path string) (Settings, error) {
	cfg := DefaultSettings()
	if err := readTOML(path, &cfg); err != nil {
		return Settings{}, err
	}
	return cfg, nil
}

func readTOML(path string, out any) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return errors.New("path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}
	if err := toml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

func (s Settings) WindowSize() (int, int) {
	w, h := s.Window.Width, s.Window.Height
	if w <= 0 {
		w = defaultWindowWidth
	}
	if h <= 0 {
		h = defaultWindowHeight
	}
	return w, h
}

func (s Settings) WindowTitle() string {
	title := strings.TrimSpace(s.Window.Title)
	if title == "" {
		return defaultWindowTitle
	}
	return title
}

func (s Settings) DoubleClickSeconds() float64 {
	if s.Input.DoubleClickSeconds <= 0 {
		return defaultDoubleClick
	}
	return s.Input.DoubleClickSeconds
}

func (s Settings) ZoomStep() float64 {
	if s.Input.ZoomStep <= 1 {
		return defaultZoomStep
	}
	return s.Input.ZoomStep
}

func (s Settings) SampleRate() int {
	if s.Audio.SampleRate <= 0 {
		return defaultSampleRate
	}
	return s.Audio.SampleRate
}

// Volume is clamped to [0, 1].
func (s Settings) Volume() float64 {
	return max(0, min(1, s.Audio.Volume))
}

// LayoutPath resolves the saved canvas location; relative paths are taken
// from the config directory.
func (s Settings) LayoutPath() (string, error) {
	path := strings.TrimSpace(s.Layout.Path)
	if path != "" && filepath.IsAbs(path) {
		return path, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	if path == "" {
		path = defaultLayoutFileName
	}
	return filepath.Join(dir, path), nil
}

// Palette converts hex colours to a ui.Palette. Missing hover and active
// colours are blended from the normal colour; other missing or invalid
// entries fall back to fallback.
func (p PaletteConfig) Palette(fallback PaletteConfig) (ui.Palette, error) {
	normal, err := parseHex(p.Normal, fallback.Normal)
	if err != nil {
		return ui.Palette{}, fmt.Errorf("normal: %w", err)
	}
	disabled, err := parseHex(p.Disabled, fallback.Disabled)
	if err != nil {
		return ui.Palette{}, fmt.Errorf("disabled: %w", err)
	}
	selected, err := parseHex(p.Selected, fallback.Selected)
	if err != nil {
		return ui.Palette{}, fmt.Errorf("selected: %w", err)
	}

	white := colorful.Color{R: 1, G: 1, B: 1}
	black := colorful.Color{}
	hover := normal.BlendLab(white, 0.15).Clamped()
	if strings.TrimSpace(p.Hover) != "" {
		if hover, err = colorful.Hex(strings.TrimSpace(p.Hover)); err != nil {
			return ui.Palette{}, fmt.Errorf("hover: %w", err)
		}
	}
	active := normal.BlendLab(black, 0.25).Clamped()
	if strings.TrimSpace(p.Active) != "" {
		if active, err = colorful.Hex(strings.TrimSpace(p.Active)); err != nil {
			return ui.Palette{}, fmt.Errorf("active: %w", err)
		}
	}

	return ui.Palette{
		Normal:   opaque(normal),
		Hover:    opaque(hover),
		Active:   opaque(active),
		Disabled: opaque(disabled),
		Selected: opaque(selected),
	}, nil
}

// Palettes returns the district, track and grip palettes.
func (s Settings) Palettes() (district, track, grip ui.Palette, err error) {
	defaults := DefaultSettings().Theme
	if district, err = s.Theme.District.Palette(defaults.District); err != nil {
		return district, track, grip, fmt.Errorf("theme.district %w", err)
	}
	if track, err = s.Theme.Track.Palette(defaults.Track); err != nil {
		return district, track, grip, fmt.Errorf("theme.track %w", err)
	}
	if grip, err = s.Theme.Grip.Palette(defaults.Grip); err != nil {
		return district, track, grip, fmt.Errorf("theme.grip %w", err)
	}
	return district, track, grip, nil
}

func parseHex(value, fallback string) (colorful.Color, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		value = fallback
	}
	return colorful.Hex(value)
}

func opaque(c colorful.Color) color.RGBA {
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
