package factory

import (
	"github.com/automoto/tablescore/archetypes"
	"github.com/automoto/tablescore/components"
	cfg "github.com/automoto/tablescore/config"
	"github.com/automoto/tablescore/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CardRect returns the screen rectangle of the i-th menu card, with the
// row of cards centered horizontally.
func CardRect(i, count int, screenWidth float64) (x, y, w, h float64) {
	w, h = cfg.Menu.CardWidth, cfg.Menu.CardHeight
	total := float64(count)*w + float64(count-1)*cfg.Menu.CardGap
	x = (screenWidth-total)/2 + float64(i)*(w+cfg.Menu.CardGap)
	return x, cfg.Menu.CardY, w, h
}

// CreateMenuCard creates a clickable mode card.
func CreateMenuCard(ecs *ecs.ECS, index int, card cfg.MenuCard) *donburi.Entry {
	entry := archetypes.MenuCard.Spawn(ecs)

	x, y, w, h := CardRect(index, len(cfg.Menu.Cards), float64(cfg.C.Width))
	obj := resolv.NewObject(x, y, w, h, tags.ResolvHotspot)
	obj.Data = entry

	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	components.Card.SetValue(entry, components.CardData{Index: index, Card: card})
	components.Hotspot.SetValue(entry, components.HotspotData{
		ID:    components.HotspotMenuCard,
		Index: index,
	})

	addToSpace(ecs, obj)
	return entry
}
