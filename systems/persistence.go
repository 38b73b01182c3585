package systems

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/automoto/tablescore/components"
	cfg "github.com/automoto/tablescore/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

const settingsKey = "settings"

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	SFXVolume       float64 `json:"sfxVolume"`
	Muted           bool    `json:"muted"`
	Fullscreen      bool    `json:"fullscreen"`
	ResolutionIndex int     `json:"resolutionIndex"`
	LastVariant     string  `json:"lastVariant"`
}

// DefaultSettings returns the settings used before anything was saved.
func DefaultSettings() SavedSettings {
	return SavedSettings{
		SFXVolume:       cfg.Audio.DefaultSFXVol,
		ResolutionIndex: cfg.SettingsMenu.DefaultResolutionIndex,
	}
}

// Store persists user settings between runs. A nil manager turns every
// operation into a no-op so the app still runs when storage is unavailable.
type Store struct {
	m *gdata.Manager
}

// OpenStore opens the per-user data directory for appName.
func OpenStore(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return &Store{}, fmt.Errorf("open settings storage: %w", err)
	}
	return &Store{m: m}, nil
}

// LoadSettings loads settings from disk, falling back to defaults.
func (s *Store) LoadSettings() (SavedSettings, error) {
	settings := DefaultSettings()
	if s == nil || s.m == nil {
		return settings, nil
	}

	data, err := s.m.LoadItem(settingsKey)
	if err != nil {
		return settings, fmt.Errorf("load settings: %w", err)
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return settings, nil
	}

	if err := json.Unmarshal(data, &settings); err != nil {
		return DefaultSettings(), fmt.Errorf("parse saved settings: %w", err)
	}
	if settings.ResolutionIndex < 0 || settings.ResolutionIndex >= len(cfg.SettingsMenu.Resolutions) {
		settings.ResolutionIndex = cfg.SettingsMenu.DefaultResolutionIndex
	}
	return settings, nil
}

// SaveSettings saves settings to disk
func (s *Store) SaveSettings(settings SavedSettings) error {
	if s == nil || s.m == nil {
		return nil
	}

	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("serialize settings: %w", err)
	}
	if err := s.m.SaveItem(settingsKey, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// SaveCurrentSettings copies the settings menu values into the runtime and
// writes them out.
func SaveCurrentSettings(rt *Runtime, s *components.SettingsMenuData) {
	rt.Settings.SFXVolume = s.SFXVolume
	rt.Settings.Muted = s.Muted
	rt.Settings.Fullscreen = s.Fullscreen
	rt.Settings.ResolutionIndex = s.ResolutionIndex
	rt.SaveSettings()
}

// ApplySettings pushes saved settings into the audio engine and the window.
func ApplySettings(rt *Runtime, saved SavedSettings) {
	if rt.Audio != nil {
		rt.Audio.SetSFXVolume(saved.SFXVolume)
		rt.Audio.SetMuted(saved.Muted)
	}

	ebiten.SetFullscreen(saved.Fullscreen)

	// Apply resolution (only if not fullscreen)
	if !saved.Fullscreen && saved.ResolutionIndex < len(cfg.SettingsMenu.Resolutions) {
		res := cfg.SettingsMenu.Resolutions[saved.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
	}
}

func logPersistence(err error) {
	if err != nil {
		log.Printf("[persistence] Warning: %v", err)
	}
}
