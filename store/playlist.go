package store

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// IsPlaylist reports whether path names an m3u playlist.
func IsPlaylist(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".m3u", ".m3u8":
		return true
	}
	return false
}

// ReadPlaylist returns the entries of an m3u playlist. Comment and blank
// lines are skipped; relative entries resolve against the playlist's
// directory.
func ReadPlaylist(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening playlist: %w", err)
	}
	defer f.Close()

	dir := filepath.Dir(path)
	var entries []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(strings.TrimPrefix(sc.Text(), "\ufeff"))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = filepath.FromSlash(line)
		if !filepath.IsAbs(line) {
			line = filepath.Join(dir, line)
		}
		entries = append(entries, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading playlist %s: %w", path, err)
	}
	return entries, nil
}
