package systems

import (
	"fmt"
	"strings"

	"github.com/automoto/tablescore/components"
	cfg "github.com/automoto/tablescore/config"
	"github.com/automoto/tablescore/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const numSettingsOptions = int(components.SettingsOptBack) + 1

// NewUpdateSettingsMenu handles settings navigation and value changes.
func NewUpdateSettingsMenu(rt *Runtime) ecs.System {
	return func(e *ecs.ECS) {
		settings := GetOrCreateSettingsMenu(e, rt)

		if !settings.IsOpen {
			return
		}
		if settings.JustOpened {
			settings.JustOpened = false
			return
		}

		input := getOrCreateInput(e)

		// Handle controls screen separately
		if settings.ShowingControls {
			if GetAction(input, cfg.ActionMenuBack).JustPressed ||
				GetAction(input, cfg.ActionMenuSelect).JustPressed ||
				GetAction(input, cfg.ActionOpenSettings).JustPressed ||
				input.Clicked {
				settings.ShowingControls = false
				PlaySFX(e, cfg.SoundMenuSelect)
			}
			return
		}

		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			navigateUp(settings)
			PlaySFX(e, cfg.SoundMenuNavigate)
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			navigateDown(settings)
			PlaySFX(e, cfg.SoundMenuNavigate)
		}
		if GetAction(input, cfg.ActionMenuLeft).JustPressed {
			adjustValue(e, rt, settings, -1)
		}
		if GetAction(input, cfg.ActionMenuRight).JustPressed {
			adjustValue(e, rt, settings, +1)
		}

		// Select/Enter - for toggles and Back button
		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			handleSelect(e, rt, settings)
		}

		// B/Circle, Tab, or Escape to go back
		if GetAction(input, cfg.ActionMenuBack).JustPressed ||
			GetAction(input, cfg.ActionOpenSettings).JustPressed {
			closeSettings(e, rt, settings)
		}
	}
}

// navigateUp moves selection up, skipping hidden options
func navigateUp(s *components.SettingsMenuData) {
	for {
		s.SelectedOption = components.SettingsMenuOption(
			(int(s.SelectedOption) - 1 + numSettingsOptions) % numSettingsOptions,
		)
		if !isOptionHidden(s, s.SelectedOption) {
			break
		}
	}
}

// navigateDown moves selection down, skipping hidden options
func navigateDown(s *components.SettingsMenuData) {
	for {
		s.SelectedOption = components.SettingsMenuOption(
			(int(s.SelectedOption) + 1) % numSettingsOptions,
		)
		if !isOptionHidden(s, s.SelectedOption) {
			break
		}
	}
}

// isOptionHidden returns true if the option should be hidden
func isOptionHidden(s *components.SettingsMenuData, opt components.SettingsMenuOption) bool {
	// Hide resolution when fullscreen is enabled
	return opt == components.SettingsOptResolution && s.Fullscreen
}

// adjustValue changes the value for the selected option
func adjustValue(e *ecs.ECS, rt *Runtime, s *components.SettingsMenuData, direction int) {
	switch s.SelectedOption {
	case components.SettingsOptSFXVolume:
		s.SFXVolume = adjustVolumeStep(s.SFXVolume, direction)
		rt.Audio.SetSFXVolume(s.SFXVolume)
		// Play preview sound
		PlaySFX(e, cfg.SoundMenuSelect)

	case components.SettingsOptMute:
		toggleMute(rt, s)
		PlaySFX(e, cfg.SoundMenuSelect)

	case components.SettingsOptFullscreen:
		toggleFullscreen(s)
		PlaySFX(e, cfg.SoundMenuSelect)

	case components.SettingsOptResolution:
		cycleResolution(s, direction)
		PlaySFX(e, cfg.SoundMenuNavigate)
	}
}

// adjustVolumeStep adjusts volume by stepping through predefined values
func adjustVolumeStep(current float64, direction int) float64 {
	steps := cfg.SettingsMenu.VolumeSteps
	newIdx := clampIndex(findClosestStepIndex(current, steps)+direction, len(steps))
	return steps[newIdx]
}

// findClosestStepIndex finds the closest step index for a volume value
func findClosestStepIndex(value float64, steps []float64) int {
	closest := 0
	minDiff := 2.0
	for i, step := range steps {
		diff := value - step
		if diff < 0 {
			diff = -diff
		}
		if diff < minDiff {
			minDiff = diff
			closest = i
		}
	}
	return closest
}

func toggleMute(rt *Runtime, s *components.SettingsMenuData) {
	s.Muted = !s.Muted
	rt.Audio.SetMuted(s.Muted)
}

func toggleFullscreen(s *components.SettingsMenuData) {
	s.Fullscreen = !s.Fullscreen
	ebiten.SetFullscreen(s.Fullscreen)
}

// cycleResolution cycles through available resolutions
func cycleResolution(s *components.SettingsMenuData, direction int) {
	numResolutions := len(cfg.SettingsMenu.Resolutions)
	s.ResolutionIndex = (s.ResolutionIndex + direction + numResolutions) % numResolutions

	res := cfg.SettingsMenu.Resolutions[s.ResolutionIndex]
	ebiten.SetWindowSize(res.Width, res.Height)
}

// handleSelect handles the select/enter action
func handleSelect(e *ecs.ECS, rt *Runtime, s *components.SettingsMenuData) {
	switch s.SelectedOption {
	case components.SettingsOptMute:
		toggleMute(rt, s)
		PlaySFX(e, cfg.SoundMenuSelect)

	case components.SettingsOptFullscreen:
		toggleFullscreen(s)
		PlaySFX(e, cfg.SoundMenuSelect)

	case components.SettingsOptControls:
		s.ShowingControls = true
		PlaySFX(e, cfg.SoundMenuSelect)

	case components.SettingsOptBack:
		closeSettings(e, rt, s)
	}
}

// closeSettings closes the settings menu and saves settings
func closeSettings(e *ecs.ECS, rt *Runtime, s *components.SettingsMenuData) {
	s.IsOpen = false
	PlaySFX(e, cfg.SoundMenuSelect)
	SaveCurrentSettings(rt, s)
}

// DrawSettingsMenu renders the settings overlay.
func DrawSettingsMenu(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.SettingsMenu.First(e.World)
	if !ok {
		return
	}
	settings := components.SettingsMenu.Get(entry)
	if !settings.IsOpen {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Menu.BackgroundColor,
		false,
	)

	if settings.ShowingControls {
		drawControlsScreen(e, screen, width, height)
		return
	}

	fontFace := fonts.Bold.Get()
	drawCentered(screen, "SETTINGS", fonts.Title.Get(), width/2, 60, cfg.Menu.TitleColor)

	visibleCount := 0
	for opt := components.SettingsOptSFXVolume; opt <= components.SettingsOptBack; opt++ {
		if !isOptionHidden(settings, opt) {
			visibleCount++
		}
	}

	// Center the option list vertically
	menuItemHeight := 28.0
	menuItemGap := 12.0
	totalMenuHeight := float64(visibleCount) * (menuItemHeight + menuItemGap)
	startY := (height-totalMenuHeight)/2 + 10

	optionIndex := 0
	for opt := components.SettingsOptSFXVolume; opt <= components.SettingsOptBack; opt++ {
		if isOptionHidden(settings, opt) {
			continue
		}

		y := startY + float64(optionIndex)*(menuItemHeight+menuItemGap)

		textColor := cfg.Menu.TextColorNormal
		if opt == settings.SelectedOption {
			textColor = cfg.Menu.TextColorSelected
		}

		label, value := getOptionDisplay(settings, opt)

		labelX := int(width/2) - 200
		text.Draw(screen, label, fontFace, labelX, int(y+menuItemHeight), textColor)
		if value != "" {
			text.Draw(screen, value, fontFace, int(width/2)+40, int(y+menuItemHeight), textColor)
		}

		optionIndex++
	}

	input := getOrCreateInput(e)
	hint := getSettingsHint(input.LastInputMethod)
	drawCentered(screen, hint, fonts.Small.Get(), width/2, height-12, cfg.Menu.TextColorNormal)
}

// drawControlsScreen lists the scoreboard key bindings
func drawControlsScreen(e *ecs.ECS, screen *ebiten.Image, width, height float64) {
	input := getOrCreateInput(e)
	fontFace := fonts.Regular.Get()

	drawCentered(screen, "SCOREBOARD CONTROLS", fonts.Title.Get(), width/2, 50, cfg.Menu.TitleColor)

	mappings := getControlMappings()

	// Two columns
	startY := 100.0
	lineHeight := 26.0
	perColumn := (len(mappings) + 1) / 2
	for i, mapping := range mappings {
		col := i / perColumn
		row := i % perColumn
		baseX := width/4 + float64(col)*width/2
		y := startY + float64(row)*lineHeight
		drawRight(screen, mapping.Action, fontFace, baseX+40, y, cfg.Menu.TextColorNormal)
		text.Draw(screen, mapping.Button, fontFace, int(baseX+60), int(y), cfg.Menu.TextColorSelected)
	}

	hint := getBackHint(input.LastInputMethod)
	drawCentered(screen, hint, fonts.Small.Get(), width/2, height-12, cfg.Menu.TextColorNormal)
}

// controlMapping represents a single control mapping entry
type controlMapping struct {
	Action string
	Button string
}

var controlLabels = []struct {
	Action string
	ID     cfg.ActionID
}{
	{"Home point +", cfg.ActionHomePoint},
	{"Home point -", cfg.ActionHomeUndo},
	{"Away point +", cfg.ActionAwayPoint},
	{"Away point -", cfg.ActionAwayUndo},
	{"Home set +", cfg.ActionHomeSet},
	{"Away set +", cfg.ActionAwaySet},
	{"Home timeout -", cfg.ActionHomeTimeout},
	{"Away timeout -", cfg.ActionAwayTimeout},
	{"Possession home", cfg.ActionPossessionHome},
	{"Possession away", cfg.ActionPossessionAway},
	{"Next period", cfg.ActionNextPeriod},
	{"Previous period", cfg.ActionPrevPeriod},
	{"Start / stop clock", cfg.ActionToggleClock},
	{"Reset clock", cfg.ActionResetClock},
	{"Short preset", cfg.ActionPresetShort},
	{"Long preset", cfg.ActionPresetLong},
	{"Signal", cfg.ActionSignal},
	{"Reset game", cfg.ActionResetGame},
	{"Back to menu", cfg.ActionMenuBack},
	{"Fullscreen", cfg.ActionToggleFullscreen},
	{"Debug overlay", cfg.ActionToggleDebug},
}

// getControlMappings builds the controls list from the live key bindings.
func getControlMappings() []controlMapping {
	out := make([]controlMapping, 0, len(controlLabels))
	for _, c := range controlLabels {
		keys := cfg.Input.Bindings[c.ID].Keys
		names := make([]string, 0, len(keys))
		for _, k := range keys {
			names = append(names, k.String())
		}
		out = append(out, controlMapping{Action: c.Action, Button: strings.Join(names, " / ")})
	}
	return out
}

// getSettingsHint returns the appropriate hint for settings menu
func getSettingsHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Left Stick/D-Pad: Navigate   Left/Right: Change   Cross: Select   Circle: Back"
	case components.InputXbox:
		return "Left Stick/D-Pad: Navigate   Left/Right: Change   A: Select   B: Back"
	}
	return "Arrows: Navigate   Left/Right: Change   Enter: Select   Esc: Back"
}

// getBackHint returns the hint for going back
func getBackHint(method components.InputMethod) string {
	if method == components.InputKeyboard {
		return "Press Esc or Enter to go back"
	}
	return "Press any button to go back"
}

// getOptionDisplay returns the label and value display for an option
func getOptionDisplay(s *components.SettingsMenuData, opt components.SettingsMenuOption) (string, string) {
	switch opt {
	case components.SettingsOptSFXVolume:
		return "Sound Volume", formatVolumeBar(s.SFXVolume)
	case components.SettingsOptMute:
		return "Mute", formatToggle(s.Muted)
	case components.SettingsOptFullscreen:
		return "Fullscreen", formatToggle(s.Fullscreen)
	case components.SettingsOptResolution:
		if s.ResolutionIndex < len(cfg.SettingsMenu.Resolutions) {
			return "Resolution", cfg.SettingsMenu.Resolutions[s.ResolutionIndex].Label
		}
		return "Resolution", "Unknown"
	case components.SettingsOptControls:
		return "Controls", ">"
	case components.SettingsOptBack:
		return "< Back", ""
	default:
		return "", ""
	}
}

// formatVolumeBar creates a visual volume bar
func formatVolumeBar(volume float64) string {
	filled := int(volume * 10)
	return fmt.Sprintf("[%s%s] %d%%", strings.Repeat("|", filled), strings.Repeat(".", 10-filled), int(volume*100))
}

// formatToggle formats a boolean as On/Off
func formatToggle(value bool) string {
	if value {
		return "[X] On"
	}
	return "[ ] Off"
}

// GetOrCreateSettingsMenu returns the singleton SettingsMenu component, creating if needed.
func GetOrCreateSettingsMenu(e *ecs.ECS, rt *Runtime) *components.SettingsMenuData {
	if _, ok := components.SettingsMenu.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.SettingsMenu))
		components.SettingsMenu.SetValue(ent, components.SettingsMenuData{
			SelectedOption:  components.SettingsOptSFXVolume,
			SFXVolume:       rt.Settings.SFXVolume,
			Muted:           rt.Settings.Muted,
			Fullscreen:      ebiten.IsFullscreen(),
			ResolutionIndex: rt.Settings.ResolutionIndex,
		})
	}

	ent, _ := components.SettingsMenu.First(e.World)
	return components.SettingsMenu.Get(ent)
}

// OpenSettings opens the settings overlay with the current values.
func OpenSettings(e *ecs.ECS, rt *Runtime) {
	settings := GetOrCreateSettingsMenu(e, rt)
	settings.IsOpen = true
	settings.JustOpened = true
	settings.ShowingControls = false
	settings.SelectedOption = components.SettingsOptSFXVolume

	settings.SFXVolume = rt.Audio.SFXVolume()
	settings.Muted = rt.Audio.Muted()
	settings.Fullscreen = ebiten.IsFullscreen()
}

// IsSettingsOpen returns true if the settings menu is currently open
func IsSettingsOpen(e *ecs.ECS) bool {
	entry, ok := components.SettingsMenu.First(e.World)
	return ok && components.SettingsMenu.Get(entry).IsOpen
}
