package tetra

import (
	"time"
)

// Run loads the configuration (an empty path means all defaults) and
// dispatches to either an offline turntable render or the interactive
// window.
func Run(cfgPath string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}

	variant, err := ParseVariant(cfg.Variant)
	if err != nil {
		return err
	}

	state := NewFrameState(variant)
	state.Palette = cfg.Palette
	state.SpeedMult = cfg.Speed

	r := NewRenderer(cfg.Width, cfg.Height, cfg.Workers, cfg.SampleGrid)

	if Debug {
		resetMarchStats()
	}

	switch {
	case cfg.GIFOut != "":
		start := time.Now()
		if err := SaveTurntableGIF(r, state, cfg.GIFOut, cfg.Frames, cfg.GIFDelay, cfg.TimeStep); err != nil {
			return err
		}
		DebugLog("Saved animated GIF: %s (%d frames, %s)", cfg.GIFOut, cfg.Frames, time.Since(start))
	case cfg.PNGOut != "":
		start := time.Now()
		if err := SavePNGSequence16(r, state, cfg.PNGOut, cfg.Frames, cfg.TimeStep); err != nil {
			return err
		}
		DebugLog("Saved PNG sequence with prefix: %s (%d frames, %s)", cfg.PNGOut, cfg.Frames, time.Since(start))
	default:
		if err := RunWindow(r, state); err != nil {
			return err
		}
	}

	if Debug {
		DumpMarchStats()
	}
	return nil
}
