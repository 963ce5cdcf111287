package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
)

// DefaultPath is the preferences file, relative to the process working directory.
const DefaultPath = "config/orrery.json"

// CameraPrefs places the orbit camera at startup.
type CameraPrefs struct {
	Distance float32 `json:"distance"`
	Polar    float32 `json:"polar"`
	Fovy     float32 `json:"fovy"`
	Damping  float32 `json:"damping"`
}

// Prefs holds viewer preferences. Persisted across runs.
type Prefs struct {
	Width        int         `json:"width"`
	Height       int         `json:"height"`
	Fullscreen   bool        `json:"fullscreen"`
	ShowFPS      bool        `json:"show_fps"`
	ShowMemAlloc bool        `json:"show_memalloc"`
	ShowOrbits   bool        `json:"show_orbits"`
	StartPaused  bool        `json:"start_paused"`
	BodiesFile   string      `json:"bodies_file,omitempty"`
	TextureDirs  []string    `json:"texture_dirs,omitempty"`
	FontDirs     []string    `json:"font_dirs,omitempty"`
	StyleSheet   string      `json:"stylesheet,omitempty"`
	LogFile      string      `json:"log_file,omitempty"`
	Locale       string      `json:"locale,omitempty"`
	MetricsAddr  string      `json:"metrics_addr,omitempty"`
	MaxTexture   int         `json:"max_texture"`
	Camera       CameraPrefs `json:"camera"`
}

// Default returns the preferences used when no file exists: orbits hidden, running, HUD off.
func Default() Prefs {
	return Prefs{
		Width:       1280,
		Height:      720,
		BodiesFile:  "config/bodies.yaml",
		TextureDirs: []string{"assets/textures", "../../assets/textures"},
		FontDirs:    []string{"assets/fonts", "../../assets/fonts"},
		StyleSheet:  "assets/ui/overlay.css",
		LogFile:     "logs/orrery.txt",
		Locale:      "sr-Latn",
		MaxTexture:  2048,
		Camera: CameraPrefs{
			Distance: 1000,
			Polar:    math.Pi / 2,
			Fovy:     75,
			Damping:  0.25,
		},
	}
}

// Load reads preferences from path. A missing file yields Default() and no error. A malformed
// file yields Default() and the decode error so the caller can report it.
func Load(path string) (Prefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("config: %w", err)
	}
	p := Default()
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	p.fill()
	return p, nil
}

// fill replaces zero values a partial file may leave behind.
func (p *Prefs) fill() {
	d := Default()
	if p.Width <= 0 || p.Height <= 0 {
		p.Width, p.Height = d.Width, d.Height
	}
	if p.MaxTexture <= 0 {
		p.MaxTexture = d.MaxTexture
	}
	if p.Camera.Distance <= 0 {
		p.Camera.Distance = d.Camera.Distance
	}
	if p.Camera.Fovy <= 0 || p.Camera.Fovy >= 180 {
		p.Camera.Fovy = d.Camera.Fovy
	}
	if p.Camera.Damping <= 0 || p.Camera.Damping > 1 {
		p.Camera.Damping = d.Camera.Damping
	}
	if p.Camera.Polar <= 0 {
		p.Camera.Polar = d.Camera.Polar
	}
}

// Save writes preferences to path, creating the directory if needed.
func Save(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
