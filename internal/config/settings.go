package config

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Settings are the user choices kept between launches
type Settings struct {
	MasterVolume    float64 `yaml:"masterVolume"`
	WindChimes      bool    `yaml:"windChimes"`
	GoldenHour      bool    `yaml:"goldenHour"`
	AntiGravity     bool    `yaml:"antiGravity"`
	MeditationMins  int     `yaml:"meditationMinutes"`
	AmbientOnLaunch bool    `yaml:"ambientOnLaunch"`
}

// DefaultSettings returns the settings used on first launch
func DefaultSettings() *Settings {
	return &Settings{
		MasterVolume:   0.8,
		WindChimes:     true,
		MeditationMins: DefaultMinutes,
	}
}

const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// SettingsStore loads and saves Settings through gdata.
// A nil manager keeps settings in memory only.
type SettingsStore struct {
	manager  *gdata.Manager
	settings *Settings
}

// OpenSettingsStore opens the gdata storage for appName. When storage cannot be
// opened the store still works in memory and the error is only logged.
func OpenSettingsStore(appName string, persist bool) *SettingsStore {
	if !persist {
		return NewSettingsStore(nil)
	}
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[Settings] Warning: storage unavailable: %v (memory only)", err)
		return NewSettingsStore(nil)
	}
	return NewSettingsStore(manager)
}

// NewSettingsStore creates a store and loads any saved settings.
func NewSettingsStore(manager *gdata.Manager) *SettingsStore {
	s := &SettingsStore{
		manager:  manager,
		settings: DefaultSettings(),
	}
	if err := s.Load(); err != nil {
		log.Printf("[Settings] Warning: %v (using defaults)", err)
	}
	return s
}

// Load replaces the in-memory settings with the saved ones.
func (s *SettingsStore) Load() error {
	if s.manager == nil || !s.manager.ObjectPropExists(settingsObject, settingsProperty) {
		s.settings = DefaultSettings()
		return nil
	}

	data, err := s.manager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		s.settings = DefaultSettings()
		return fmt.Errorf("load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		s.settings = DefaultSettings()
		return fmt.Errorf("unmarshal settings: %w", err)
	}
	s.settings = sanitize(loaded)
	return nil
}

// Save writes the current settings. It is a no-op without storage.
func (s *SettingsStore) Save() error {
	if s.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(s.settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := s.manager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// Settings returns the live settings; callers mutate through the setters.
func (s *SettingsStore) Settings() Settings {
	return *s.settings
}

func (s *SettingsStore) SetMasterVolume(v float64) {
	s.settings.MasterVolume = clamp01(v)
}

func (s *SettingsStore) SetWindChimes(on bool)  { s.settings.WindChimes = on }
func (s *SettingsStore) SetGoldenHour(on bool)  { s.settings.GoldenHour = on }
func (s *SettingsStore) SetAntiGravity(on bool) { s.settings.AntiGravity = on }
func (s *SettingsStore) SetAmbientOnLaunch(on bool) {
	s.settings.AmbientOnLaunch = on
}

// SetMeditationMinutes stores the last selected session length. Values that
// are not one of MeditationMinutes are ignored.
func (s *SettingsStore) SetMeditationMinutes(m int) {
	if validMinutes(m) {
		s.settings.MeditationMins = m
	}
}

func sanitize(st *Settings) *Settings {
	st.MasterVolume = clamp01(st.MasterVolume)
	if !validMinutes(st.MeditationMins) {
		st.MeditationMins = DefaultMinutes
	}
	return st
}

func validMinutes(m int) bool {
	for _, v := range MeditationMinutes {
		if v == m {
			return true
		}
	}
	return false
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
