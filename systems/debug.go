package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/tablescore/components"
	cfg "github.com/automoto/tablescore/config"
	"github.com/automoto/tablescore/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebug toggles the debug overlay. Must run after UpdateInput.
func UpdateDebug(e *ecs.ECS) {
	if GetAction(getOrCreateInput(e), cfg.ActionToggleDebug).JustPressed {
		cfg.Debug.Overlay = !cfg.Debug.Overlay
	}
}

// DrawDebug outlines every clickable area and prints frame timing.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Overlay {
		return
	}

	spaceEntry, ok := components.Space.First(e.World)
	if ok {
		space := components.Space.Get(spaceEntry)

		for _, obj := range space.Objects() {
			c := color.RGBA{0, 255, 255, 255} // Cyan for hotspots
			if obj.HasTags(tags.ResolvCursor) {
				c = color.RGBA{255, 0, 0, 255} // Red
			}

			x, y := float32(obj.X), float32(obj.Y)
			w, h := float32(obj.W), float32(obj.H)
			vector.FillRect(screen, x, y, w, 1, c, false)     // Top
			vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
			vector.FillRect(screen, x, y, 1, h, c, false)     // Left
			vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
		}
	}

	msg := fmt.Sprintf("TPS %.1f  FPS %.1f", ebiten.ActualTPS(), ebiten.ActualFPS())
	if sb := GetScoreboard(e); sb != nil {
		msg += fmt.Sprintf("\nsession %s  clock %s running=%t", sb.SessionID, sb.View.Clock, sb.View.Clock.Running)
	}
	ebitenutil.DebugPrint(screen, msg)
}
