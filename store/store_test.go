package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "layout.yaml")
	want := Layout{
		Version: LayoutVersion,
		Camera:  CameraState{X: 10, Y: -4, Zoom: 1.5},
		Districts: []DistrictState{
			{Name: "Drums", X: 0, Y: 0, Width: 300, Height: 200, Volume: volume(0.7), Tracks: []string{"/a/kick.wav", "/a/snare.wav"}},
			{Name: "Muted", X: 400, Y: 50, Width: 120, Height: 60, Volume: volume(0)},
			{Name: "Unset", X: 800, Y: 50, Width: 120, Height: 60},
		},
	}
	if err := Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("layout mismatch (-want +got):\n%s", diff)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("temp files left behind: %v", entries)
	}
}

func volume(v float64) *float64 { return &v }

func TestLoadWithoutVolume(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")
	content := []byte("version: 1\ndistricts:\n  - name: Old\n    width: 200\n    height: 100\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got.Districts) != 1 || got.Districts[0].Volume != nil {
		t.Fatalf("unexpected districts: %+v", got.Districts)
	}
}

func TestLoadMissing(t *testing.T) {
	got, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got.Districts) != 0 || got.Version != LayoutVersion {
		t.Fatalf("unexpected layout: %+v", got)
	}
}

func TestLoadRejectsNewerVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")
	if err := os.WriteFile(path, []byte("version: 99\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "version 99") {
		t.Fatalf("expected version error, got %v", err)
	}
}

func TestReadPlaylist(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "set.m3u")
	abs := filepath.Join(dir, "elsewhere", "c.mp3")
	content := "#EXTM3U\n#EXTINF:123,Song A\na.mp3\n\n  sub/b.ogg  \n" + abs + "\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := ReadPlaylist(path)
	if err != nil {
		t.Fatalf("ReadPlaylist: %v", err)
	}
	want := []string{
		filepath.Join(dir, "a.mp3"),
		filepath.Join(dir, "sub", "b.ogg"),
		abs,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestIsPlaylist(t *testing.T) {
	tests := map[string]bool{
		"a.m3u":  true,
		"B.M3U8": true,
		"c.mp3":  false,
		"m3u":    false,
	}
	for path, want := range tests {
		if got := IsPlaylist(path); got != want {
			t.Errorf("IsPlaylist(%q) = %v; want %v", path, got, want)
		}
	}
}
