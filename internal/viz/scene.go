package viz

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Scene is one playlist entry. The engine reads Tempo and Strategy at the
// scene boundary; the rest configures the collaborators.
type Scene struct {
	Tempo      float64 `toml:"tempo"`
	File       string  `toml:"file"`
	Background string  `toml:"background"`
	Strategy   string  `toml:"strategy"`
}

// Playlist is the TOML document driving a run: ordered scenes plus
// optional global settings.
type Playlist struct {
	Bands      int      `toml:"bands"`
	FPS        float64  `toml:"fps"`
	Strategies []string `toml:"strategies"` // allow-list, empty = all
	Scenes     []Scene  `toml:"scene"`
}

// LoadPlaylist parses and validates a playlist file. Malformed scenes are
// rejected here so the per-frame path never sees bad input.
func LoadPlaylist(path string) (*Playlist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read playlist: %w", err)
	}
	var pl Playlist
	if err := toml.Unmarshal(data, &pl); err != nil {
		return nil, fmt.Errorf("parse playlist %s: %w", path, err)
	}
	if pl.Bands <= 0 {
		pl.Bands = DefaultBands
	}
	if pl.FPS <= 0 {
		pl.FPS = DefaultFPS
	}
	if len(pl.Scenes) == 0 {
		return nil, fmt.Errorf("playlist %s: no scenes", path)
	}
	dir := filepath.Dir(path)
	for i := range pl.Scenes {
		s := &pl.Scenes[i]
		if s.File == "" {
			return nil, fmt.Errorf("scene %d: no audio file", i+1)
		}
		if !filepath.IsAbs(s.File) {
			s.File = filepath.Join(dir, s.File)
		}
		if s.Tempo <= 0 {
			s.Tempo = DefaultTempo
		}
		if s.Background == "" {
			s.Background = "#000000"
		}
		if _, err := ParseHex(s.Background); err != nil {
			return nil, fmt.Errorf("scene %d: %w", i+1, err)
		}
		switch ext := strings.ToLower(filepath.Ext(s.File)); ext {
		case ".wav", ".mp3", ".flac", ".ogg":
		default:
			return nil, fmt.Errorf("scene %d: unsupported audio format %q", i+1, filepath.Ext(s.File))
		}
	}
	return &pl, nil
}
