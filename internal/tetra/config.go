package tetra

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config is the optional JSON render configuration. Every field has a
// default, so an empty path or empty file yields the interactive enhanced
// mode at the default resolution.
type Config struct {
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Workers    int    `json:"workers,omitempty"`    // 0 = NumCPU
	Variant    string `json:"variant,omitempty"`    // "basic" or "enhanced"
	SampleGrid int    `json:"sampleGrid,omitempty"` // 1 = off, 2 = 2x2; 0 = auto by variant
	Palette    int    `json:"palette,omitempty"`    // 0..3
	Speed      Real   `json:"speed,omitempty"`      // rotation speed multiplier, 0 = 1x

	// Offline modes: when set, render a turntable instead of opening a
	// window.
	GIFOut   string `json:"gifOut,omitempty"`
	GIFDelay int    `json:"gifDelay,omitempty"` // 100ths of a second per frame
	PNGOut   string `json:"pngOut,omitempty"`   // file name prefix
	Frames   int    `json:"frames,omitempty"`
	TimeStep Real   `json:"timeStep,omitempty"` // seconds advanced per frame
}

// ParseVariant maps the config string to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "", "enhanced":
		return VariantEnhanced, nil
	case "basic":
		return VariantBasic, nil
	}
	return 0, fmt.Errorf("unknown variant %q (want \"basic\" or \"enhanced\")", s)
}

func loadConfig(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
	}

	// Defaults / validation
	if cfg.Width <= 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = DefaultHeight
	}
	variant, err := ParseVariant(cfg.Variant)
	if err != nil {
		return nil, err
	}
	if cfg.SampleGrid == 0 {
		if variant == VariantEnhanced {
			cfg.SampleGrid = 2
		} else {
			cfg.SampleGrid = 1
		}
	}
	if cfg.SampleGrid != 2 {
		cfg.SampleGrid = 1
	}
	if cfg.Palette < 0 || cfg.Palette >= PaletteCount {
		cfg.Palette = 0
	}
	if cfg.Speed <= 0 {
		cfg.Speed = 1
	}
	if cfg.GIFDelay <= 0 {
		cfg.GIFDelay = DefaultGIFDelay
	}
	if cfg.Frames <= 0 {
		cfg.Frames = DefaultFrames
	}
	if cfg.TimeStep <= 0 {
		cfg.TimeStep = DefaultTimeStep
	}
	DebugLog("Loaded config from %q: %dx%d, variant=%s, sampleGrid=%d, workers=%d",
		path, cfg.Width, cfg.Height, variant, cfg.SampleGrid, cfg.Workers)
	return &cfg, nil
}
