// Package settings keeps UI preferences between runs. Without a usable
// storage backend it degrades to memory only.
package settings

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	AppName        = "arcade"
	settingsObject = "settings"
	settingsProp   = "preferences"
)

type Settings struct {
	PlatformerTheme string  `yaml:"platformerTheme"`
	PuzzleTheme     string  `yaml:"puzzleTheme"`
	Fuzzle          bool    `yaml:"fuzzle"`
	SoundEnabled    bool    `yaml:"soundEnabled"`
	SoundVolume     float64 `yaml:"soundVolume"`
}

func Default() Settings {
	return Settings{
		PlatformerTheme: "forest",
		PuzzleTheme:     "cyberpunk",
		SoundEnabled:    true,
		SoundVolume:     0.5,
	}
}

type Manager struct {
	store    *gdata.Manager
	settings Settings
}

// Open loads saved preferences for appName. Storage failures are logged and
// leave a memory-only manager.
func Open(appName string) *Manager {
	store, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("settings: storage unavailable, memory only: %v", err)
		store = nil
	}
	m := NewManager(store)
	if err := m.Load(); err != nil {
		log.Printf("settings: %v (using defaults)", err)
	}
	return m
}

// NewManager wraps store, which may be nil.
func NewManager(store *gdata.Manager) *Manager {
	return &Manager{store: store, settings: Default()}
}

func (m *Manager) Persistent() bool { return m.store != nil }

func (m *Manager) Load() error {
	m.settings = Default()
	if m.store == nil || !m.store.ObjectPropExists(settingsObject, settingsProp) {
		return nil
	}
	data, err := m.store.LoadObjectProp(settingsObject, settingsProp)
	if err != nil {
		return fmt.Errorf("settings: load: %w", err)
	}
	loaded := Default()
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("settings: decode: %w", err)
	}
	loaded.SoundVolume = clampVolume(loaded.SoundVolume)
	m.settings = loaded
	return nil
}

func (m *Manager) Save() error {
	if m.store == nil {
		return nil
	}
	data, err := yaml.Marshal(m.settings)
	if err != nil {
		return fmt.Errorf("settings: encode: %w", err)
	}
	if err := m.store.SaveObjectProp(settingsObject, settingsProp, data); err != nil {
		return fmt.Errorf("settings: save: %w", err)
	}
	return nil
}

func (m *Manager) Get() Settings { return m.settings }

// Update applies fn to the settings and saves them.
func (m *Manager) Update(fn func(*Settings)) error {
	fn(&m.settings)
	m.settings.SoundVolume = clampVolume(m.settings.SoundVolume)
	return m.Save()
}

func clampVolume(v float64) float64 {
	return max(0, min(v, 1))
}
