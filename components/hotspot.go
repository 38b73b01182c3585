package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Space holds the resolv space used to hit-test the mouse cursor.
var Space = donburi.NewComponentType[resolv.Space]()

type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// HotspotID names what happens when a clickable region is clicked.
type HotspotID int

const (
	HotspotMenuCard HotspotID = iota
	HotspotClock
)

// HotspotData marks an entity whose Object can be clicked.
type HotspotData struct {
	ID    HotspotID
	Index int // card index for HotspotMenuCard
}

var Hotspot = donburi.NewComponentType[HotspotData]()

// CursorData is the 1x1 resolv object that follows the mouse.
type CursorData struct {
	*resolv.Object
}

var Cursor = donburi.NewComponentType[CursorData]()
