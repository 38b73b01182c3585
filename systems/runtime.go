package systems

import (
	"github.com/automoto/tablescore/shared/profile"
)

// Runtime is created once in main and handed to every scene. It owns the
// process-wide resources: the audio context, the settings store and the
// loaded scoreboard profiles.
type Runtime struct {
	Audio    *AudioEngine
	Store    *Store
	Profiles *profile.Set
	Settings SavedSettings
}

// NewRuntime wires the long-lived resources together and applies the
// settings already loaded from the store.
func NewRuntime(profiles *profile.Set, store *Store, audio *AudioEngine, settings SavedSettings) *Runtime {
	rt := &Runtime{
		Audio:    audio,
		Store:    store,
		Profiles: profiles,
		Settings: settings,
	}
	ApplySettings(rt, settings)
	return rt
}

// SaveSettings writes the current settings, logging failures.
func (rt *Runtime) SaveSettings() {
	logPersistence(rt.Store.SaveSettings(rt.Settings))
}

// RememberVariant records the last scoreboard opened so the menu can
// preselect it next time.
func (rt *Runtime) RememberVariant(id string) {
	if rt.Settings.LastVariant == id {
		return
	}
	rt.Settings.LastVariant = id
	rt.SaveSettings()
}
