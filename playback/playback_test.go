package playback

import (
	"errors"
	"testing"
)

func TestSupported(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"song.mp3", true},
		{"LOOP.WAV", true},
		{"/x/y/ambience.ogg", true},
		{"notes.txt", false},
		{"set.m3u", false},
		{"noext", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := Supported(tt.path); got != tt.want {
				t.Errorf("Supported(%q) = %v; want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestOpenRejectsUnsupportedBeforeTouchingDisk(t *testing.T) {
	var b Backend
	_, err := b.Open("/does/not/exist.flac")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("Open error = %v; want ErrUnsupportedFormat", err)
	}
}
