package archetypes

import (
	"github.com/automoto/tablescore/components"
	cfg "github.com/automoto/tablescore/config"
	"github.com/automoto/tablescore/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Space = newArchetype(
		components.Space,
	)
	Cursor = newArchetype(
		components.Cursor,
	)
	MenuCard = newArchetype(
		tags.MenuCard,
		components.Card,
		components.Object,
		components.Hotspot,
	)
	Clock = newArchetype(
		tags.Clock,
		components.Object,
		components.Hotspot,
	)
	Readout = newArchetype(
		tags.Readout,
		components.Readout,
		components.Pop,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
