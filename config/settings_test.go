package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if w, h := cfg.WindowSize(); w != defaultWindowWidth || h != defaultWindowHeight {
		t.Fatalf("unexpected window size: %dx%d", w, h)
	}
	if cfg.DoubleClickSeconds() != defaultDoubleClick {
		t.Fatalf("unexpected double click: %v", cfg.DoubleClickSeconds())
	}
	if cfg.WindowTitle() != defaultWindowTitle {
		t.Fatalf("unexpected title: %q", cfg.WindowTitle())
	}
}

func TestLoadFromTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := []byte(`
[window]
width = 640
title = "  Mixer  "

[input]
double_click_seconds = 0.5

[audio]
volume = 3.5
sample_rate = 48000

[theme.district]
normal = "#102030"
hover = "#ffffff"
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if w, h := cfg.WindowSize(); w != 640 || h != defaultWindowHeight {
		t.Fatalf("unexpected window size: %dx%d", w, h)
	}
	if cfg.WindowTitle() != "Mixer" {
		t.Fatalf("unexpected title: %q", cfg.WindowTitle())
	}
	if cfg.DoubleClickSeconds() != 0.5 {
		t.Fatalf("unexpected double click: %v", cfg.DoubleClickSeconds())
	}
	if cfg.Volume() != 1 {
		t.Fatalf("volume not clamped: %v", cfg.Volume())
	}
	if cfg.SampleRate() != 48000 {
		t.Fatalf("unexpected sample rate: %d", cfg.SampleRate())
	}

	district, _, _, err := cfg.Palettes()
	if err != nil {
		t.Fatalf("Palettes: %v", err)
	}
	if district.Normal != (color.RGBA{0x10, 0x20, 0x30, 0xff}) {
		t.Fatalf("unexpected normal colour: %v", district.Normal)
	}
	if district.Hover != (color.RGBA{0xff, 0xff, 0xff, 0xff}) {
		t.Fatalf("unexpected hover colour: %v", district.Hover)
	}
	if district.Selected != (color.RGBA{0x4a, 0x7a, 0xb8, 0xff}) {
		t.Fatalf("selected did not fall back to default: %v", district.Selected)
	}
}

func TestLoadRejectsBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[window\nwidth = "), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := LoadFromPath(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestPaletteDerivesShades(t *testing.T) {
	p, err := PaletteConfig{Normal: "#808080"}.Palette(DefaultSettings().Theme.Track)
	if err != nil {
		t.Fatalf("Palette: %v", err)
	}
	normal := p.Normal.(color.RGBA)
	hover := p.Hover.(color.RGBA)
	active := p.Active.(color.RGBA)
	if hover.R <= normal.R {
		t.Fatalf("hover %v not lighter than normal %v", hover, normal)
	}
	if active.R >= normal.R {
		t.Fatalf("active %v not darker than normal %v", active, normal)
	}
}

func TestPaletteRejectsBadHex(t *testing.T) {
	if _, err := (PaletteConfig{Normal: "blue"}).Palette(DefaultSettings().Theme.Track); err == nil {
		t.Fatal("expected error for invalid colour")
	}
}

func TestLayoutPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	abs := filepath.Join(t.TempDir(), "mine.yaml")
	cfg := Settings{Layout: LayoutConfig{Path: abs}}
	got, err := cfg.LayoutPath()
	if err != nil {
		t.Fatalf("LayoutPath: %v", err)
	}
	if got != abs {
		t.Fatalf("absolute path changed: got=%q want=%q", got, abs)
	}

	dir, err := Dir()
	if err != nil {
		t.Fatalf("Dir: %v", err)
	}
	got, err = Settings{}.LayoutPath()
	if err != nil {
		t.Fatalf("LayoutPath default: %v", err)
	}
	if want := filepath.Join(dir, defaultLayoutFileName); got != want {
		t.Fatalf("unexpected default path: got=%q want=%q", got, want)
	}
}
