package systems

import (
	"github.com/automoto/tablescore/components"
	"github.com/automoto/tablescore/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCursor moves the cursor object to the mouse position.
// Must run after UpdateInput.
func UpdateCursor(e *ecs.ECS) {
	entry, ok := components.Cursor.First(e.World)
	if !ok {
		return
	}
	cursor := components.Cursor.Get(entry)
	input := getOrCreateInput(e)

	cursor.X = float64(input.CursorX)
	cursor.Y = float64(input.CursorY)
	cursor.Update()
}

// HotspotUnderCursor returns the clickable entity under the mouse, if any.
func HotspotUnderCursor(e *ecs.ECS) (*donburi.Entry, bool) {
	entry, ok := components.Cursor.First(e.World)
	if !ok {
		return nil, false
	}
	cursor := components.Cursor.Get(entry)

	check := cursor.Check(0, 0, tags.ResolvHotspot)
	if check == nil {
		return nil, false
	}
	// Check reports every object sharing a cell with the cursor; keep the
	// one the cursor is actually inside.
	for _, obj := range check.Objects {
		if !containsPoint(obj, cursor.X, cursor.Y) {
			continue
		}
		if target, ok := obj.Data.(*donburi.Entry); ok && target.Valid() {
			return target, true
		}
	}
	return nil, false
}

func containsPoint(obj *resolv.Object, x, y float64) bool {
	return x >= obj.X && x < obj.X+obj.W && y >= obj.Y && y < obj.Y+obj.H
}
