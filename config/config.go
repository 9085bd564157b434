package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the tunables for the hand layout, the patient queue and the window.
type Config struct {
	// Hand layout
	SlotSpacing   float64 `env:"WARD_SLOT_SPACING"    envDefault:"100"`
	SlotOffsetY   float64 `env:"WARD_SLOT_OFFSET_Y"   envDefault:"-500"`
	SmoothingRate float64 `env:"WARD_SMOOTHING_RATE"  envDefault:"5"`
	CardWidth     float64 `env:"WARD_CARD_WIDTH"      envDefault:"90"`
	CardHeight    float64 `env:"WARD_CARD_HEIGHT"     envDefault:"130"`

	MaxPatients int `env:"WARD_MAX_PATIENTS" envDefault:"3"`

	// Empty means the embedded starter deck
	DeckPath string `env:"WARD_DECK"`

	WindowWidth  int     `env:"WARD_WINDOW_WIDTH"  envDefault:"1280"`
	WindowHeight int     `env:"WARD_WINDOW_HEIGHT" envDefault:"1200"`
	CameraScale  float64 `env:"WARD_CAMERA_SCALE"  envDefault:"1"`

	Sound      bool    `env:"WARD_SOUND"       envDefault:"true"`
	SampleRate int     `env:"WARD_SAMPLE_RATE" envDefault:"44100"`
	Volume     float64 `env:"WARD_VOLUME"      envDefault:"0.5"`
}

// Default returns the configuration used when no environment is set.
func Default() Config {
	return Config{
		SlotSpacing:   100,
		SlotOffsetY:   -500,
		SmoothingRate: 5,
		CardWidth:     90,
		CardHeight:    130,
		MaxPatients:   3,
		WindowWidth:   1280,
		WindowHeight:  1200,
		CameraScale:   1,
		Sound:         true,
		SampleRate:    44100,
		Volume:        0.5,
	}
}

// Load parses the environment on top of the defaults.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the per-frame systems cannot work with.
func (c Config) Validate() error {
	var errs []error
	if c.SmoothingRate <= 0 {
		errs = append(errs, fmt.Errorf("smoothing rate must be positive, got %v", c.SmoothingRate))
	}
	if c.CardWidth <= 0 || c.CardHeight <= 0 {
		errs = append(errs, fmt.Errorf("card size must be positive, got %vx%v", c.CardWidth, c.CardHeight))
	}
	if c.MaxPatients < 0 {
		errs = append(errs, fmt.Errorf("max patients must not be negative, got %d", c.MaxPatients))
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.WindowWidth, c.WindowHeight))
	}
	if c.CameraScale <= 0 {
		errs = append(errs, fmt.Errorf("camera scale must be positive, got %v", c.CameraScale))
	}
	if c.Sound && c.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("sample rate must be positive, got %d", c.SampleRate))
	}
	return errors.Join(errs...)
}
