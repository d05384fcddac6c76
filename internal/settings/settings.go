// Package settings persists the player's feedback toggles.
package settings

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// AppName is the gdata application directory.
const AppName = "bounce_arcade"

const (
	settingsObject   = "settings"
	settingsProperty = "global"
)

// Settings are global, not tied to a game.
type Settings struct {
	HapticsEnabled bool `yaml:"hapticsEnabled"`
	SoundEnabled   bool `yaml:"soundEnabled"`
}

// Defaults returns the settings of a fresh install.
func Defaults() Settings {
	return Settings{HapticsEnabled: true, SoundEnabled: true}
}

// Manager loads and saves Settings. A nil gdata manager keeps settings in
// memory only.
type Manager struct {
	store    *gdata.Manager
	settings Settings
	logger   *log.Logger
}

// Open creates a Manager backed by the platform data directory. If the
// directory cannot be opened the manager runs in memory and logs why.
func Open(logger *log.Logger) *Manager {
	store, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		logger.Warn("settings storage unavailable, using defaults", "error", err)
		store = nil
	}
	return New(store, logger)
}

// New creates a Manager and loads any saved settings.
func New(store *gdata.Manager, logger *log.Logger) *Manager {
	m := &Manager{
		store:    store,
		settings: Defaults(),
		logger:   logger.WithPrefix("settings"),
	}
	if err := m.Load(); err != nil {
		m.logger.Warn("load failed, using defaults", "error", err)
	}
	return m
}

// Load reads saved settings. Missing data leaves the defaults.
func (m *Manager) Load() error {
	m.settings = Defaults()
	if m.store == nil || !m.store.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := m.store.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("settings: load: %w", err)
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("settings: decode: %w", err)
	}
	m.settings = s
	return nil
}

// Save writes the current settings. It is a no-op without storage.
func (m *Manager) Save() error {
	if m.store == nil {
		return nil
	}
	data, err := yaml.Marshal(m.settings)
	if err != nil {
		return fmt.Errorf("settings: encode: %w", err)
	}
	if err := m.store.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("settings: save: %w", err)
	}
	return nil
}

// Get returns a copy of the current settings.
func (m *Manager) Get() Settings {
	return m.settings
}

// Persistent reports whether changes survive a restart.
func (m *Manager) Persistent() bool {
	return m.store != nil
}

func (m *Manager) HapticsEnabled() bool { return m.settings.HapticsEnabled }
func (m *Manager) SoundEnabled() bool   { return m.settings.SoundEnabled }

// SetHaptics changes the haptics toggle and saves.
func (m *Manager) SetHaptics(on bool) {
	m.settings.HapticsEnabled = on
	m.save()
}

// SetSound changes the sound toggle and saves.
func (m *Manager) SetSound(on bool) {
	m.settings.SoundEnabled = on
	m.save()
}

// ToggleHaptics flips the haptics setting and returns the new value.
func (m *Manager) ToggleHaptics() bool {
	m.SetHaptics(!m.settings.HapticsEnabled)
	return m.settings.HapticsEnabled
}

// ToggleSound flips the sound setting and returns the new value.
func (m *Manager) ToggleSound() bool {
	m.SetSound(!m.settings.SoundEnabled)
	return m.settings.SoundEnabled
}

func (m *Manager) save() {
	if err := m.Save(); err != nil {
		m.logger.Warn("save failed", "error", err)
	}
}
