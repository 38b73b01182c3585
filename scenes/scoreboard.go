package scenes

import (
	"log"
	"sync"

	"github.com/automoto/tablescore/components"
	cfg "github.com/automoto/tablescore/config"
	"github.com/automoto/tablescore/shared/match"
	"github.com/automoto/tablescore/systems"
	"github.com/automoto/tablescore/systems/factory"
	"github.com/automoto/tablescore/ui"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ScoreboardScene runs one match session for a profile. The session and its
// clock goroutine live exactly as long as the scene.
type ScoreboardScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	rt           *systems.Runtime
	profileID    string

	session      *match.Session
	sessionID    string
	scoreboardUI *ui.ScoreboardUI

	once         sync.Once
	closeOnce    sync.Once
	shouldGoBack bool
}

// NewScoreboardScene creates the scoreboard for the given profile ID.
func NewScoreboardScene(sc SceneChanger, rt *systems.Runtime, profileID string) *ScoreboardScene {
	return &ScoreboardScene{sceneChanger: sc, rt: rt, profileID: profileID}
}

func (ss *ScoreboardScene) Update() {
	ss.once.Do(ss.configure)

	ss.ecs.Update()
	if !ss.shouldGoBack {
		ss.scoreboardUI.Update()
	}

	if ss.shouldGoBack {
		ss.Close()
		ss.sceneChanger.ChangeScene(NewMenuScene(ss.sceneChanger, ss.rt))
	}
}

func (ss *ScoreboardScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Scoreboard.BackgroundColor)

	if ss.ecs == nil {
		return
	}
	ss.ecs.Draw(screen)
	ss.scoreboardUI.UI.Draw(screen)
}

// Close stops the clock goroutine. Safe to call more than once.
func (ss *ScoreboardScene) Close() {
	ss.closeOnce.Do(func() {
		if ss.session == nil {
			return
		}
		ss.session.Close()
		log.Printf("[scoreboard] %s closed", ss.sessionID)
	})
}

func (ss *ScoreboardScene) configure() {
	ss.ecs = ecs.NewECS(donburi.NewWorld())

	p := ss.rt.Profiles.GetOrDefault(ss.profileID)
	if p.ID != ss.profileID {
		log.Printf("[scoreboard] Warning: unknown profile %q, using %q", ss.profileID, p.ID)
	}

	ss.session = match.NewSession(p.Rules)
	ss.sessionID = uuid.NewString()[:8]
	log.Printf("[scoreboard] %s started %s", ss.sessionID, p.ID)

	sb := systems.CreateScoreboard(ss.ecs, p, ss.session, ss.sessionID)

	sc := cfg.Scoreboard
	factory.CreateSpace(ss.ecs, cfg.C.Width, cfg.C.Height, 16, 16)
	factory.CreateCursor(ss.ecs)
	factory.CreateClock(ss.ecs,
		float64(cfg.C.Width)/2-sc.ClockWidth/2, sc.ClockY-sc.ClockHeight+8,
		sc.ClockWidth, sc.ClockHeight)

	view := sb.View
	factory.CreateReadout(ss.ecs, components.ReadoutHomeScore, view.HomeScore)
	factory.CreateReadout(ss.ecs, components.ReadoutAwayScore, view.AwayScore)
	factory.CreateReadout(ss.ecs, components.ReadoutHomeSets, view.HomeSets)
	factory.CreateReadout(ss.ecs, components.ReadoutAwaySets, view.AwaySets)
	factory.CreateReadout(ss.ecs, components.ReadoutPeriod, view.Period)

	leave := func() { ss.shouldGoBack = true }

	ss.ecs.AddSystem(systems.NewUpdateAudio(ss.rt))
	ss.ecs.AddSystem(systems.UpdateInput)
	ss.ecs.AddSystem(systems.UpdateCursor)
	ss.ecs.AddSystem(systems.UpdateDebug)
	ss.ecs.AddSystem(systems.NewUpdateScoreboard(leave))
	ss.ecs.AddSystem(systems.UpdateReadouts)

	ss.ecs.AddRenderer(cfg.Default, systems.DrawScoreboard)
	ss.ecs.AddRenderer(cfg.Overlay, systems.DrawDebug)

	ss.scoreboardUI = ui.NewScoreboardUI(ss.ecs, sb, leave)
}
