package factory

import (
	"github.com/automoto/tablescore/archetypes"
	"github.com/automoto/tablescore/components"
	"github.com/automoto/tablescore/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateClock creates the clickable area around the countdown display.
func CreateClock(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	entry := archetypes.Clock.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvHotspot)
	obj.Data = entry

	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	components.Hotspot.SetValue(entry, components.HotspotData{ID: components.HotspotClock})

	addToSpace(ecs, obj)
	return entry
}

// CreateReadout creates an animated number on the scoreboard.
func CreateReadout(ecs *ecs.ECS, kind components.ReadoutKind, value int) *donburi.Entry {
	entry := archetypes.Readout.Spawn(ecs)

	components.Readout.SetValue(entry, components.ReadoutData{Kind: kind, Value: value})
	components.Pop.SetValue(entry, components.PopData{Scale: 1})

	return entry
}
