package factory

import (
	"github.com/automoto/tablescore/archetypes"
	"github.com/automoto/tablescore/components"
	"github.com/automoto/tablescore/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// CreateCursor creates the 1x1 object that tracks the mouse for hit-testing.
func CreateCursor(ecs *ecs.ECS) *donburi.Entry {
	cursor := archetypes.Cursor.Spawn(ecs)

	obj := resolv.NewObject(-1, -1, 1, 1, tags.ResolvCursor)
	obj.Data = cursor
	components.Cursor.SetValue(cursor, components.CursorData{Object: obj})

	addToSpace(ecs, obj)
	return cursor
}

func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
