package components

import (
	"github.com/yohamta/donburi"
)

// SettingsMenuOption represents menu items in the settings menu
type SettingsMenuOption int

const (
	SettingsOptSFXVolume SettingsMenuOption = iota
	SettingsOptMute
	SettingsOptFullscreen
	SettingsOptResolution
	SettingsOptControls
	SettingsOptBack
)

// SettingsMenuData stores the current state of the settings menu overlay
type SettingsMenuData struct {
	IsOpen          bool
	SelectedOption  SettingsMenuOption
	ShowingControls bool // True when displaying controls screen
	JustOpened      bool // Ignore input on the frame the overlay opened

	// Current settings values
	SFXVolume       float64 // 0.0, 0.25, 0.50, 0.75, 1.0
	Muted           bool
	Fullscreen      bool
	ResolutionIndex int
}

// SettingsMenu is the component type for settings menu state
var SettingsMenu = donburi.NewComponentType[SettingsMenuData]()
