package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/tablescore/components"
	cfg "github.com/automoto/tablescore/config"
	"github.com/automoto/tablescore/fonts"
	"github.com/automoto/tablescore/shared/match"
	"github.com/automoto/tablescore/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// readoutValue returns the number a readout shows for the given state.
func readoutValue(kind components.ReadoutKind, s match.State) int {
	switch kind {
	case components.ReadoutHomeScore:
		return s.HomeScore
	case components.ReadoutAwayScore:
		return s.AwayScore
	case components.ReadoutHomeSets:
		return s.HomeSets
	case components.ReadoutAwaySets:
		return s.AwaySets
	case components.ReadoutPeriod:
		return s.Period
	}
	return 0
}

// UpdateReadouts starts a pop animation on every number that changed since
// the last frame and advances running animations.
func UpdateReadouts(e *ecs.ECS) {
	sb := GetScoreboard(e)
	if sb == nil {
		return
	}
	dt := 1 / float32(cfg.C.TPS)

	tags.Readout.Each(e.World, func(entry *donburi.Entry) {
		r := components.Readout.Get(entry)
		pop := components.Pop.Get(entry)

		if v := readoutValue(r.Kind, sb.View); v != r.Value {
			r.Value = v
			pop.Tween = gween.New(1+cfg.Scoreboard.PopScale, 1, cfg.Scoreboard.PopSeconds, ease.OutQuad)
		}
		if pop.Tween == nil {
			return
		}
		scale, finished := pop.Tween.Update(dt)
		pop.Scale = scale
		if finished {
			pop.Tween = nil
			pop.Scale = 1
		}
	})
}

// DrawScoreboard renders everything above the control panel.
func DrawScoreboard(e *ecs.ECS, screen *ebiten.Image) {
	sb := GetScoreboard(e)
	if sb == nil {
		return
	}
	sc := cfg.Scoreboard
	view := sb.View
	p := sb.Profile

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(screen, 0, 0, float32(width), float32(height), sc.BackgroundColor, false)
	vector.FillRect(screen, 0, 0, float32(width), float32(sc.HeaderHeight), sc.HeaderColor, false)
	vector.FillRect(screen, 0, float32(sc.PanelTop), float32(width), float32(height-sc.PanelTop), sc.PanelColor, false)

	drawCentered(screen, p.Title, fonts.Bold.Get(), width/2, sc.HeaderHeight-12, sc.TeamColor)

	scales := readoutScales(e)

	drawTeam(screen, p.HomeTeam, sc.HomeX, view.HomeScore, view.HomeSets, view.HomeTimeouts, sb.Session.Rules().MaxTimeouts,
		scales[components.ReadoutHomeScore], scales[components.ReadoutHomeSets])
	drawTeam(screen, p.AwayTeam, sc.AwayX, view.AwayScore, view.AwaySets, view.AwayTimeouts, sb.Session.Rules().MaxTimeouts,
		scales[components.ReadoutAwayScore], scales[components.ReadoutAwaySets])

	cx := width / 2
	drawCenteredScaled(screen, p.PeriodLabel(view.Period), fonts.Bold.Get(), cx, sc.PeriodY, scales[components.ReadoutPeriod], sc.LabelColor)
	drawCentered(screen, view.Clock.String(), fonts.Clock.Get(), cx, sc.ClockY, clockColor(view.Clock))

	drawPossession(screen, p.PossessionLabel, view.Possession, cx)

	if sb.Status != "" {
		drawCentered(screen, sb.Status, fonts.Regular.Get(), cx, sc.StatusY, sc.PossessionColor)
	}
}

func drawTeam(screen *ebiten.Image, name string, cx float64, score, sets, timeouts, maxTimeouts int, scoreScale, setsScale float64) {
	sc := cfg.Scoreboard
	drawCentered(screen, name, fonts.Bold.Get(), cx, sc.TeamY, sc.TeamColor)
	drawCenteredScaled(screen, fmt.Sprintf("%d", score), fonts.Score.Get(), cx, sc.ScoreY, scoreScale, sc.ScoreColor)
	drawCenteredScaled(screen, fmt.Sprintf("SETS %d", sets), fonts.Regular.Get(), cx, sc.SetsY, setsScale, sc.LabelColor)

	// One dot per timeout slot, filled while the timeout is still available
	span := float32(maxTimeouts-1) * sc.TimeoutGap
	x0 := float32(cx) - span/2
	for i := 0; i < maxTimeouts; i++ {
		clr := sc.TimeoutOffColor
		if i < timeouts {
			clr = sc.TimeoutOnColor
		}
		vector.DrawFilledCircle(screen, x0+float32(i)*sc.TimeoutGap, float32(sc.TimeoutY), sc.TimeoutDot, clr, true)
	}
}

func drawPossession(screen *ebiten.Image, label string, side match.Side, cx float64) {
	sc := cfg.Scoreboard
	face := fonts.Bold.Get()
	drawCentered(screen, label, fonts.Small.Get(), cx, sc.PossessionY-22, sc.LabelColor)

	left, right := sc.TimeoutOffColor, sc.TimeoutOffColor
	if side == match.Home {
		left = sc.PossessionColor
	} else {
		right = sc.PossessionColor
	}
	drawRight(screen, "<<<", face, cx-12, sc.PossessionY, left)
	drawCentered(screen, ">>>", face, cx+12+20, sc.PossessionY, right)
}

func clockColor(c match.Countdown) color.Color {
	switch {
	case c.Running:
		return cfg.Scoreboard.ClockRunningColor
	case c.Expired():
		return cfg.Scoreboard.ClockExpiredColor
	}
	return cfg.Scoreboard.ClockStoppedColor
}

// readoutScales collects the current pop scale of every readout.
func readoutScales(e *ecs.ECS) map[components.ReadoutKind]float64 {
	scales := map[components.ReadoutKind]float64{
		components.ReadoutHomeScore: 1,
		components.ReadoutAwayScore: 1,
		components.ReadoutHomeSets:  1,
		components.ReadoutAwaySets:  1,
		components.ReadoutPeriod:    1,
	}
	tags.Readout.Each(e.World, func(entry *donburi.Entry) {
		r := components.Readout.Get(entry)
		scales[r.Kind] = float64(components.Pop.Get(entry).Scale)
	})
	return scales
}
