package components

import (
	cfg "github.com/automoto/tablescore/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputXbox
	InputPlayStation
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool // Current frame's Pressed state
	Previous        [cfg.ActionCount]bool // Previous frame's Pressed state
	LastInputMethod InputMethod           // Most recently used input method

	CursorX, CursorY int
	Clicked          bool // Left button went down this frame
	CursorMoved      bool

	// Primed is set after the first poll. Keys still held from the previous
	// scene must not register as just pressed in a new one.
	Primed bool
}

var Input = donburi.NewComponentType[InputData]()
