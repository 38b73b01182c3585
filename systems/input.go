package systems

import (
	"strings"

	"github.com/automoto/tablescore/components"
	cfg "github.com/automoto/tablescore/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

var gamepadIDs []ebiten.GamepadID

var controllerTypeCache = make(map[ebiten.GamepadID]components.InputMethod)

// Gamepad names containing any of these are drawn with PlayStation labels.
var playStationNames = []string{"ps4", "ps5", "playstation", "dualshock", "dualsense"}

// UpdateInput polls keyboard, gamepads and mouse into the Input component.
// Must run before any system that reads actions.
//
// The first poll in a scene only records what is already held, so the key or
// click that opened the scene is not seen as a new press.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	keyboardUsed, padUsed, pad := pollBindings(input)
	if stickUsed, stickPad := pollStick(input, gamepadIDs); stickUsed {
		padUsed, pad = true, stickPad
	}
	pointerUsed := pollPointer(input)

	switch {
	case !input.Primed:
		input.Previous = input.Current
		input.CursorMoved = false
		input.Primed = true
	case padUsed:
		input.LastInputMethod = getControllerType(pad)
	case keyboardUsed || pointerUsed:
		input.LastInputMethod = components.InputKeyboard
	}
}

// pollBindings sets every action whose key or gamepad button is held.
func pollBindings(input *components.InputData) (keyboardUsed, padUsed bool, pad ebiten.GamepadID) {
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					padUsed = true
					pad = gpID
				}
			}
		}
	}
	return
}

// pollStick maps the left stick of any gamepad onto the menu directions.
func pollStick(input *components.InputData, gamepads []ebiten.GamepadID) (used bool, pad ebiten.GamepadID) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		directions := []struct {
			on     bool
			action cfg.ActionID
		}{
			{h < -deadzone, cfg.ActionMenuLeft},
			{h > deadzone, cfg.ActionMenuRight},
			{v < -deadzone, cfg.ActionMenuUp},
			{v > deadzone, cfg.ActionMenuDown},
		}
		for _, d := range directions {
			if d.on {
				input.Current[d.action] = true
				used, pad = true, gpID
			}
		}
	}
	return
}

// pollPointer records the mouse position and left clicks.
func pollPointer(input *components.InputData) bool {
	x, y := ebiten.CursorPosition()
	input.CursorMoved = x != input.CursorX || y != input.CursorY
	input.CursorX, input.CursorY = x, y
	input.Clicked = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	return input.Clicked || input.CursorMoved
}

func getControllerType(gpID ebiten.GamepadID) components.InputMethod {
	if method, ok := controllerTypeCache[gpID]; ok {
		return method
	}

	method := components.InputXbox
	name := strings.ToLower(ebiten.GamepadName(gpID))
	for _, n := range playStationNames {
		if strings.Contains(name, n) {
			method = components.InputPlayStation
			break
		}
	}

	controllerTypeCache[gpID] = method
	return method
}

func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the state of an action this frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
