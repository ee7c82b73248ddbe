package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Options are the launch options read from the environment
type Options struct {
	Verbose    bool   `env:"ZEN_VERBOSE"`
	StartPage  string `env:"ZEN_START_PAGE" envDefault:"home"`
	Mute       bool   `env:"ZEN_MUTE"`
	SampleRate int    `env:"ZEN_SAMPLE_RATE" envDefault:"44100"`
	NoPersist  bool   `env:"ZEN_NO_PERSIST"`
	WindChimes bool   `env:"ZEN_WIND_CHIMES" envDefault:"true"`
	AppName    string `env:"ZEN_APP_NAME" envDefault:"zen_garden"`
}

// LoadOptions parses Options from the process environment.
func LoadOptions() (Options, error) {
	var opts Options
	if err := env.Parse(&opts); err != nil {
		return Options{}, fmt.Errorf("parse env: %w", err)
	}
	if opts.SampleRate <= 0 {
		return Options{}, fmt.Errorf("invalid ZEN_SAMPLE_RATE %d", opts.SampleRate)
	}
	return opts, nil
}
