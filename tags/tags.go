package tags

import "github.com/yohamta/donburi"

var (
	MenuCard = donburi.NewTag().SetName("MenuCard")
	Readout  = donburi.NewTag().SetName("Readout")
	Clock    = donburi.NewTag().SetName("Clock")
)

// Resolv tags for mouse hit-testing
const (
	ResolvHotspot = "hotspot"
	ResolvCursor  = "cursor"
)
