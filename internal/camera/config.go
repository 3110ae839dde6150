// Package camera loads the camera body description: its mount geometry,
// its product photo, and how that photo is placed on a card.
package camera

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jaeseopark/lens-barrel-preview/internal/silhouette"
)

// Default transform values. A missing transform block means the photo is
// drawn bottom-center at its natural card proportion.
const (
	DefaultBodyScale = 1.0
)

// Transform adjusts where and how large the camera photo is drawn.
// Scale multiplies the fitted body width; translations are in card pixels.
type Transform struct {
	Scale      float64
	TranslateX float64
	TranslateY float64
}

// Config describes one camera body.
type Config struct {
	Name      string
	Image     string // path to the body photo, relative to the config file
	Transform Transform
	Mount     silhouette.Mount
}

// jsonConfig matches the camera JSON schema. Transform fields are pointers
// so absent keys fall back to the identity transform.
type jsonConfig struct {
	Name  string `json:"name"`
	Image string `json:"image"`
	Mount struct {
		StepDistance  float64 `json:"stepDistance"`
		StepLength    float64 `json:"stepLength"`
		OuterDiameter float64 `json:"outerDiameter"`
	} `json:"mount"`
	Scale      *float64 `json:"scale"`
	TranslateX *float64 `json:"translateX"`
	TranslateY *float64 `json:"translateY"`
}

// Load reads a camera config file and fills in transform defaults.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("camera: read %s: %w", path, err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(raw, &jc); err != nil {
		return nil, fmt.Errorf("camera: parse %s: %w", path, err)
	}

	cfg := &Config{
		Name:  jc.Name,
		Image: jc.Image,
		Transform: Transform{
			Scale: DefaultBodyScale,
		},
		Mount: silhouette.Mount{
			StepDistance:  jc.Mount.StepDistance,
			StepLength:    jc.Mount.StepLength,
			OuterDiameter: jc.Mount.OuterDiameter,
		},
	}
	if jc.Scale != nil {
		cfg.Transform.Scale = *jc.Scale
	}
	if jc.TranslateX != nil {
		cfg.Transform.TranslateX = *jc.TranslateX
	}
	if jc.TranslateY != nil {
		cfg.Transform.TranslateY = *jc.TranslateY
	}

	// The photo path is relative to the config file that names it
	if cfg.Image != "" && !filepath.IsAbs(cfg.Image) {
		cfg.Image = filepath.Join(filepath.Dir(path), cfg.Image)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("camera: %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Mount.OuterDiameter <= 0 {
		return fmt.Errorf("mount outerDiameter must be positive, got %v", c.Mount.OuterDiameter)
	}
	if c.Mount.StepDistance < 0 || c.Mount.StepLength < 0 {
		return fmt.Errorf("mount step fields must be non-negative, got distance %v length %v",
			c.Mount.StepDistance, c.Mount.StepLength)
	}
	if c.Transform.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %v", c.Transform.Scale)
	}
	return nil
}
