package systems

import (
	"fmt"
	"log"

	"github.com/automoto/tablescore/components"
	cfg "github.com/automoto/tablescore/config"
	"github.com/automoto/tablescore/fonts"
	"github.com/automoto/tablescore/systems/factory"
	"github.com/automoto/tablescore/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateMenu creates an UpdateMenu system. createScoreboard builds the
// scoreboard scene for a profile ID.
func NewUpdateMenu(sceneChanger SceneChanger, rt *Runtime, createScoreboard func(profileID string) interface{}) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e, rt)
		updatePulse(menu)
		if menu.StatusTimer > 0 {
			menu.StatusTimer--
			if menu.StatusTimer == 0 {
				menu.Status = ""
			}
		}

		// Skip menu input if settings is open
		if IsSettingsOpen(e) {
			return
		}

		input := getOrCreateInput(e)
		numCards := len(cfg.Menu.Cards)
		if numCards == 0 {
			return
		}

		if GetAction(input, cfg.ActionOpenSettings).JustPressed {
			PlaySFX(e, cfg.SoundMenuSelect)
			OpenSettings(e, rt)
			return
		}

		// Navigation stops at either end
		if GetAction(input, cfg.ActionMenuLeft).JustPressed {
			selectCard(e, menu, menu.SelectedIndex-1)
		}
		if GetAction(input, cfg.ActionMenuRight).JustPressed {
			selectCard(e, menu, menu.SelectedIndex+1)
		}

		if hit, ok := HotspotUnderCursor(e); ok && hit.HasComponent(components.Card) {
			card := components.Card.Get(hit)
			if input.CursorMoved || input.Clicked {
				selectCard(e, menu, card.Index)
			}
			if input.Clicked {
				activateCard(e, sceneChanger, rt, menu, *card, createScoreboard)
				return
			}
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			if card, ok := cardAt(e, menu.SelectedIndex); ok {
				activateCard(e, sceneChanger, rt, menu, card, createScoreboard)
			}
		}
	}
}

// selectCard moves the selection, clamping to the first and last card.
func selectCard(e *ecs.ECS, menu *components.MenuData, index int) {
	index = clampIndex(index, len(cfg.Menu.Cards))
	if index == menu.SelectedIndex {
		return
	}
	menu.SelectedIndex = index
	PlaySFX(e, cfg.SoundMenuNavigate)
	resetPulse(menu)
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func activateCard(e *ecs.ECS, sceneChanger SceneChanger, rt *Runtime, menu *components.MenuData, card components.CardData, createScoreboard func(string) interface{}) {
	if !card.Enabled() {
		PlaySFX(e, cfg.SoundMenuDenied)
		setMenuStatus(menu, fmt.Sprintf("%s: %s is not available yet", card.Card.Title, card.Card.Subtitle))
		return
	}
	if _, ok := rt.Profiles.Get(card.Card.ProfileID); !ok {
		PlaySFX(e, cfg.SoundMenuDenied)
		setMenuStatus(menu, fmt.Sprintf("Unknown scoreboard %q", card.Card.ProfileID))
		log.Printf("[menu] Warning: card %q points at unknown profile %q", card.Card.Title, card.Card.ProfileID)
		return
	}

	PlaySFX(e, cfg.SoundMenuSelect)
	rt.RememberVariant(card.Card.ProfileID)
	log.Printf("[menu] Opening %s scoreboard", card.Card.ProfileID)
	sceneChanger.ChangeScene(createScoreboard(card.Card.ProfileID))
}

func setMenuStatus(menu *components.MenuData, status string) {
	menu.Status = status
	menu.StatusTimer = cfg.Menu.StatusFrames
}

func cardAt(e *ecs.ECS, index int) (components.CardData, bool) {
	var found components.CardData
	ok := false
	tags.MenuCard.Each(e.World, func(entry *donburi.Entry) {
		card := components.Card.Get(entry)
		if card.Index == index {
			found = *card
			ok = true
		}
	})
	return found, ok
}

func resetPulse(menu *components.MenuData) {
	menu.PulseRising = true
	menu.PulseValue = 0
	menu.Pulse = gween.New(0, 1, cfg.Menu.PulseSeconds, ease.InOutSine)
}

// updatePulse advances the selection highlight, reversing at each end.
func updatePulse(menu *components.MenuData) {
	if menu.Pulse == nil {
		resetPulse(menu)
	}
	value, finished := menu.Pulse.Update(1 / float32(cfg.C.TPS))
	menu.PulseValue = value
	if finished {
		menu.PulseRising = !menu.PulseRising
		from, to := float32(1), float32(0)
		if menu.PulseRising {
			from, to = 0, 1
		}
		menu.Pulse = gween.New(from, to, cfg.Menu.PulseSeconds, ease.InOutSine)
	}
}

// DrawMenu renders the game mode selection screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := getMenu(e)
	if menu == nil {
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
	// Accent band behind the cards
	vector.FillRect(
		screen,
		0, float32(cfg.Menu.CardY-20),
		float32(width), float32(cfg.Menu.CardHeight+40),
		cfg.Menu.BackgroundAccent,
		false,
	)

	drawCentered(screen, cfg.Menu.Title, fonts.Title.Get(), width/2, cfg.Menu.TitleY, cfg.Menu.TitleColor)

	tags.MenuCard.Each(e.World, func(entry *donburi.Entry) {
		card := components.Card.Get(entry)
		obj := components.Object.Get(entry)
		drawCard(screen, card, obj, card.Index == menu.SelectedIndex, menu.PulseValue)
	})

	if menu.Status != "" {
		drawCentered(screen, menu.Status, fonts.Regular.Get(), width/2, cfg.Menu.StatusY, cfg.Menu.TextColorSelected)
	}

	input := getOrCreateInput(e)
	hint := getMenuHint(input.LastInputMethod)
	drawCentered(screen, hint, fonts.Small.Get(), width/2, height-12, cfg.Menu.TextColorNormal)
}

func drawCard(screen *ebiten.Image, card *components.CardData, obj *components.ObjectData, selected bool, pulse float32) {
	x, y := float32(obj.X), float32(obj.Y)
	w, h := float32(obj.W), float32(obj.H)

	vector.FillRect(screen, x, y, w, h, card.Card.Accent, false)
	inset := float32(8)
	vector.FillRect(screen, x+inset, y+inset, w-2*inset, h*0.55, cfg.Menu.CardInnerColor, false)

	border := cfg.Menu.CardBorder
	borderWidth := cfg.Menu.CardBorderWidth
	titleColor := cfg.Menu.TextColorNormal
	if selected {
		border = cfg.Menu.CardBorderSelected
		borderWidth = cfg.Menu.SelectedBorder + cfg.Menu.PulseScale*pulse
		titleColor = cfg.Menu.TextColorSelected
	}
	if !card.Enabled() {
		titleColor = cfg.Menu.TextColorDisabled
	}
	vector.StrokeRect(screen, x, y, w, h, borderWidth, border, false)

	cx := obj.X + obj.W/2
	drawCentered(screen, card.Card.Title, fonts.Bold.Get(), cx, obj.Y+obj.H*0.55+36, titleColor)
	drawCentered(screen, card.Card.Subtitle, fonts.Small.Get(), cx, obj.Y+obj.H*0.55+60, cfg.Menu.TextColorNormal)
}

// getMenuHint returns the appropriate hint for menu navigation
func getMenuHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "Left Stick/D-Pad: Navigate   Cross: Select   Options: Settings"
	case components.InputXbox:
		return "Left Stick/D-Pad: Navigate   A: Select   Start: Settings"
	}
	return "Arrows/Mouse: Navigate   Enter/Click: Select   Tab: Settings"
}

func getMenu(e *ecs.ECS) *components.MenuData {
	ent, ok := components.Menu.First(e.World)
	if !ok {
		return nil
	}
	return components.Menu.Get(ent)
}

// GetOrCreateMenu returns the singleton Menu component, creating it and the
// card entities if needed. The last scoreboard opened starts selected.
func GetOrCreateMenu(e *ecs.ECS, rt *Runtime) *components.MenuData {
	if menu := getMenu(e); menu != nil {
		return menu
	}

	selected := 0
	for i, card := range cfg.Menu.Cards {
		if card.ProfileID != "" && card.ProfileID == rt.Settings.LastVariant {
			selected = i
		}
	}

	factory.CreateSpace(e, cfg.C.Width, cfg.C.Height, 16, 16)
	factory.CreateCursor(e)
	for i, card := range cfg.Menu.Cards {
		factory.CreateMenuCard(e, i, card)
	}

	ent := e.World.Entry(e.World.Create(components.Menu))
	components.Menu.SetValue(ent, components.MenuData{
		SelectedIndex: selected,
	})
	return components.Menu.Get(ent)
}
