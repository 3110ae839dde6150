// Package config loads render settings from JSON and merges CLI flags.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	BaseDir    string `json:"base_dir"`
	LensList   string `json:"lens_list"`
	CameraFile string `json:"camera"`
	OutputDir  string `json:"output_dir"`

	// Render settings
	CardWidth     int     `json:"card_width"`
	LensScale     float64 `json:"lens_scale"`
	Gutter        int     `json:"gutter"`
	SheetMaxWidth int     `json:"sheet_max_width"`
	Supersample   int     `json:"supersample"`
	Workers       int     `json:"workers"`
	Format        string  `json:"format"`

	// Colors
	CardColor  string            `json:"card_color"`
	SheetColor string            `json:"sheet_color"`
	TagColors  map[string]string `json:"tag_colors"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve fills in any empty fields with auto-detected defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.LensList != "" {
		c.LensList = flags.LensList
	}
	if flags.Camera != "" {
		c.CameraFile = flags.Camera
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.CardWidth > 0 {
		c.CardWidth = flags.CardWidth
	}
	if flags.LensScale > 0 {
		c.LensScale = flags.LensScale
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}

	// Auto-detect base dir if still empty
	if c.BaseDir == "" {
		c.BaseDir = detectBaseDir()
	}

	// Resolve relative paths against base dir
	if c.BaseDir != "" {
		if c.LensList == "" {
			c.LensList = findLensList(c.BaseDir)
		} else if !filepath.IsAbs(c.LensList) {
			c.LensList = filepath.Join(c.BaseDir, c.LensList)
		}

		if c.CameraFile == "" {
			c.CameraFile = filepath.Join(c.BaseDir, "camera.json")
		} else if !filepath.IsAbs(c.CameraFile) {
			c.CameraFile = filepath.Join(c.BaseDir, c.CameraFile)
		}

		if c.OutputDir == "" {
			c.OutputDir = filepath.Join(c.BaseDir, "renders")
		} else if !filepath.IsAbs(c.OutputDir) {
			c.OutputDir = filepath.Join(c.BaseDir, c.OutputDir)
		}
	}

	// Defaults for render settings
	if c.CardWidth <= 0 {
		c.CardWidth = 300
	}
	if c.LensScale <= 0 {
		c.LensScale = 1.0
	}
	if c.Gutter <= 0 {
		c.Gutter = 16
	}
	if c.SheetMaxWidth <= 0 {
		c.SheetMaxWidth = 1280
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	c.Format = strings.ToLower(c.Format)
	if c.Format != "png" {
		c.Format = "webp"
	}
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	LensList  string
	Camera    string
	OutputDir string
	CardWidth int
	LensScale float64
	Workers   int
	Format    string
}

func detectBaseDir() string {
	markers := []string{"lenses.xml", "lenses.json", "camera.json"}

	hasMarker := func(dir string) bool {
		for _, m := range markers {
			if _, err := os.Stat(filepath.Join(dir, m)); err == nil {
				return true
			}
		}
		return false
	}

	// Try relative to executable
	exe, _ := os.Executable()
	if exe != "" {
		dir := filepath.Dir(exe)
		for _, base := range []string{dir, filepath.Dir(dir)} {
			if hasMarker(base) {
				return base
			}
		}
	}

	// Try current working directory
	cwd, _ := os.Getwd()
	if hasMarker(cwd) {
		return cwd
	}

	return ""
}

func findLensList(baseDir string) string {
	candidates := []string{
		filepath.Join(baseDir, "lenses.xml"),
		filepath.Join(baseDir, "lenses.json"),
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}
	return candidates[0]
}
