package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMenuUp
	ActionMenuDown
	ActionMenuLeft
	ActionMenuRight
	ActionMenuSelect
	ActionMenuBack
	ActionOpenSettings
	ActionToggleFullscreen

	// Scoreboard
	ActionHomePoint
	ActionHomeUndo
	ActionAwayPoint
	ActionAwayUndo
	ActionHomeSet
	ActionAwaySet
	ActionHomeTimeout
	ActionAwayTimeout
	ActionPossessionHome
	ActionPossessionAway
	ActionNextPeriod
	ActionPrevPeriod
	ActionToggleClock
	ActionResetClock
	ActionPresetShort
	ActionPresetLong
	ActionSignal
	ActionResetGame
	ActionToggleDebug
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		Bindings: map[ActionID]InputBinding{
			ActionMenuUp: {
				Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
				},
			},
			ActionMenuDown: {
				Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				},
			},
			ActionMenuLeft: {
				Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftLeft,
				},
			},
			ActionMenuRight: {
				Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftRight,
				},
			},
			ActionMenuSelect: {
				Keys: []ebiten.Key{ebiten.KeyEnter},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionMenuBack: {
				Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyBackspace},
				// B / Circle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightRight,
				},
			},
			ActionOpenSettings: {
				Keys: []ebiten.Key{ebiten.KeyTab},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
			ActionToggleFullscreen: {
				Keys: []ebiten.Key{ebiten.KeyF11},
			},

			// Home keys on the left half of the keyboard, away keys on the right.
			ActionHomePoint:      {Keys: []ebiten.Key{ebiten.KeyQ}},
			ActionHomeUndo:       {Keys: []ebiten.Key{ebiten.KeyA}},
			ActionAwayPoint:      {Keys: []ebiten.Key{ebiten.KeyP}},
			ActionAwayUndo:       {Keys: []ebiten.Key{ebiten.KeyL}},
			ActionHomeSet:        {Keys: []ebiten.Key{ebiten.KeyE}},
			ActionAwaySet:        {Keys: []ebiten.Key{ebiten.KeyO}},
			ActionHomeTimeout:    {Keys: []ebiten.Key{ebiten.KeyZ}},
			ActionAwayTimeout:    {Keys: []ebiten.Key{ebiten.KeyM}},
			ActionPossessionHome: {Keys: []ebiten.Key{ebiten.KeyLeft}},
			ActionPossessionAway: {Keys: []ebiten.Key{ebiten.KeyRight}},
			ActionNextPeriod:     {Keys: []ebiten.Key{ebiten.KeyBracketRight, ebiten.KeyPageUp}},
			ActionPrevPeriod:     {Keys: []ebiten.Key{ebiten.KeyBracketLeft, ebiten.KeyPageDown}},
			ActionToggleClock: {
				Keys: []ebiten.Key{ebiten.KeySpace},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionResetClock:  {Keys: []ebiten.Key{ebiten.KeyR}},
			ActionPresetShort: {Keys: []ebiten.Key{ebiten.Key1}},
			ActionPresetLong:  {Keys: []ebiten.Key{ebiten.Key2}},
			ActionSignal: {
				Keys: []ebiten.Key{ebiten.KeyH},
				// Y / Triangle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightTop,
				},
			},
			ActionResetGame:   {Keys: []ebiten.Key{ebiten.KeyN}},
			ActionToggleDebug: {Keys: []ebiten.Key{ebiten.KeyF3}},
		},
	}
}
