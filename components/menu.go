package components

import (
	cfg "github.com/automoto/tablescore/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// MenuData stores the current state of the game mode selection screen
type MenuData struct {
	SelectedIndex int // Index into cfg.Menu.Cards
	Status        string
	StatusTimer   int // frames left before Status is cleared

	// Selection highlight, ping-ponging between 0 and 1
	Pulse       *gween.Tween
	PulseRising bool
	PulseValue  float32
}

// Menu is the component type for main menu state
var Menu = donburi.NewComponentType[MenuData]()

// CardData is one mode card on the menu.
type CardData struct {
	Index int
	Card  cfg.MenuCard
}

// Enabled reports whether the card opens a scoreboard.
func (c CardData) Enabled() bool {
	return c.Card.ProfileID != ""
}

var Card = donburi.NewComponentType[CardData]()
