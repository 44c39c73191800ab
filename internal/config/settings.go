package config

import (
	"errors"
	"fmt"
)

// Settings contains the board, loop and rendering parameters read from
// settings.yaml.
type Settings struct {
	Canvas  CanvasSettings `yaml:"canvas"`
	Loop    LoopSettings   `yaml:"loop"`
	Glow    GlowSettings   `yaml:"glow"`
	Berries BerrySettings  `yaml:"berries"`
}

// CanvasSettings defines the drawing surface.
type CanvasSettings struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"`
}

// LoopSettings defines host frame rate and the speed-to-threshold factor.
type LoopSettings struct {
	FPS         int     `yaml:"fps"`
	SpeedFactor float64 `yaml:"speed_factor"`
}

// GlowSettings defines the shadow blur radii.
type GlowSettings struct {
	SnakeBlur float64 `yaml:"snake_blur"`
	BerryBlur float64 `yaml:"berry_blur"`
}

// BerrySettings defines berry slots and how much smaller than a cell a
// berry is drawn.
type BerrySettings struct {
	Slots int     `yaml:"slots"`
	Inset float64 `yaml:"inset"`
}

// DefaultSettings returns the built-in settings.
func DefaultSettings() Settings {
	return Settings{
		Canvas: CanvasSettings{
			Width:    400,
			Height:   400,
			CellSize: DefaultCellSize,
		},
		Loop: LoopSettings{
			FPS:         60,
			SpeedFactor: 1.3,
		},
		Glow: GlowSettings{
			SnakeBlur: 30,
			BerryBlur: 4,
		},
		Berries: BerrySettings{
			Slots: MaxFood,
			Inset: 5,
		},
	}
}

// Validate checks that the settings describe a usable board.
func (s Settings) Validate() error {
	var errs []error

	c := s.Canvas
	if c.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("canvas.cell_size must be positive, got %d", c.CellSize))
	} else {
		if c.Width <= 0 || c.Width%c.CellSize != 0 {
			errs = append(errs, fmt.Errorf("canvas.width %d must be a positive multiple of cell_size %d", c.Width, c.CellSize))
		}
		if c.Height <= 0 || c.Height%c.CellSize != 0 {
			errs = append(errs, fmt.Errorf("canvas.height %d must be a positive multiple of cell_size %d", c.Height, c.CellSize))
		}
		if s.Berries.Inset < 0 || s.Berries.Inset >= float64(c.CellSize) {
			errs = append(errs, fmt.Errorf("berries.inset %.1f must be in [0, cell_size)", s.Berries.Inset))
		}
	}
	if s.Loop.FPS <= 0 {
		errs = append(errs, fmt.Errorf("loop.fps must be positive, got %d", s.Loop.FPS))
	}
	if s.Loop.SpeedFactor <= 0 {
		errs = append(errs, fmt.Errorf("loop.speed_factor must be positive, got %g", s.Loop.SpeedFactor))
	}
	if s.Berries.Slots < MaxFood {
		errs = append(errs, fmt.Errorf("berries.slots must be at least %d, got %d", MaxFood, s.Berries.Slots))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid settings: %w", errors.Join(errs...))
	}
	return nil
}
