package config

import "testing"

func TestLoadOptionsDefaults(t *testing.T) {
	opts, err := LoadOptions()
	if err != nil {
		t.Fatalf("LoadOptions: %v", err)
	}
	if opts.SampleRate != SampleRate {
		t.Errorf("SampleRate = %d, want %d", opts.SampleRate, SampleRate)
	}
	if !opts.WindChimes {
		t.Error("wind chimes should default on")
	}
}

func TestLoadOptionsOverrides(t *testing.T) {
	t.Setenv("ZEN_VERBOSE", "true")
	t.Setenv("ZEN_START_PAGE", "meditation")
	t.Setenv("ZEN_SAMPLE_RATE", "48000")
	opts, err := LoadOptions()
	if err != nil {
		t.Fatalf("LoadOptions: %v", err)
	}
	if !opts.Verbose || opts.StartPage != "meditation" || opts.SampleRate != 48000 {
		t.Errorf("unexpected options %+v", opts)
	}
}

func TestLoadOptionsRejectsBadRate(t *testing.T) {
	t.Setenv("ZEN_SAMPLE_RATE", "0")
	if _, err := LoadOptions(); err == nil {
		t.Error("expected error for zero sample rate")
	}
}
