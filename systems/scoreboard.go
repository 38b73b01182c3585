package systems

import (
	"fmt"
	"log"

	"github.com/automoto/tablescore/components"
	cfg "github.com/automoto/tablescore/config"
	"github.com/automoto/tablescore/shared/match"
	"github.com/automoto/tablescore/shared/profile"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

var scoreboardKeys = []struct {
	action cfg.ActionID
	cmd    match.Command
}{
	{cfg.ActionHomePoint, match.Command{Kind: match.CmdScore, Side: match.Home, Delta: 1}},
	{cfg.ActionHomeUndo, match.Command{Kind: match.CmdScore, Side: match.Home, Delta: -1}},
	{cfg.ActionAwayPoint, match.Command{Kind: match.CmdScore, Side: match.Away, Delta: 1}},
	{cfg.ActionAwayUndo, match.Command{Kind: match.CmdScore, Side: match.Away, Delta: -1}},
	{cfg.ActionHomeSet, match.Command{Kind: match.CmdSets, Side: match.Home, Delta: 1}},
	{cfg.ActionAwaySet, match.Command{Kind: match.CmdSets, Side: match.Away, Delta: 1}},
	{cfg.ActionHomeTimeout, match.Command{Kind: match.CmdTimeouts, Side: match.Home, Delta: -1}},
	{cfg.ActionAwayTimeout, match.Command{Kind: match.CmdTimeouts, Side: match.Away, Delta: -1}},
	{cfg.ActionPossessionHome, match.Command{Kind: match.CmdPossession, Side: match.Home}},
	{cfg.ActionPossessionAway, match.Command{Kind: match.CmdPossession, Side: match.Away}},
	{cfg.ActionNextPeriod, match.Command{Kind: match.CmdPeriod, Delta: 1}},
	{cfg.ActionPrevPeriod, match.Command{Kind: match.CmdPeriod, Delta: -1}},
	{cfg.ActionToggleClock, match.Command{Kind: match.CmdToggleClock}},
	{cfg.ActionResetClock, match.Command{Kind: match.CmdResetClock}},
	{cfg.ActionPresetShort, match.Command{Kind: match.CmdPreset, Index: 0}},
	{cfg.ActionPresetLong, match.Command{Kind: match.CmdPreset, Index: 1}},
	{cfg.ActionSignal, match.Command{Kind: match.CmdSignal}},
	{cfg.ActionResetGame, match.Command{Kind: match.CmdResetGame}},
}

// NewUpdateScoreboard creates the system that turns input into session
// operations and pulls clock updates from the ticker goroutine. onLeave is
// called when the user asks to go back to the menu.
func NewUpdateScoreboard(onLeave func()) ecs.System {
	return func(e *ecs.ECS) {
		sb := GetScoreboard(e)
		if sb == nil {
			return
		}

		// Clock values published by the ticker since the last frame
		drainClockUpdates(e, sb)

		if sb.StatusTimer > 0 {
			sb.StatusTimer--
			if sb.StatusTimer == 0 {
				sb.Status = ""
			}
		}

		input := getOrCreateInput(e)

		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			onLeave()
			return
		}
		if GetAction(input, cfg.ActionToggleFullscreen).JustPressed {
			ebiten.SetFullscreen(!ebiten.IsFullscreen())
		}

		for _, k := range scoreboardKeys {
			if GetAction(input, k.action).JustPressed {
				ApplyCommand(e, sb, k.cmd)
			}
		}

		if input.Clicked {
			if hit, ok := HotspotUnderCursor(e); ok && components.Hotspot.Get(hit).ID == components.HotspotClock {
				ApplyCommand(e, sb, match.Command{Kind: match.CmdToggleClock})
			}
		}

		sb.View = sb.Session.Snapshot()
	}
}

// drainClockUpdates consumes every pending countdown value without blocking.
func drainClockUpdates(e *ecs.ECS, sb *components.ScoreboardData) {
	for {
		select {
		case c := <-sb.Session.Updates():
			sb.View.Clock = c
			if c.Expired() && !c.Running {
				PlaySFX(e, cfg.SoundClockExpired)
				setScoreboardStatus(sb, "Time!")
				log.Printf("[scoreboard] %s clock expired", sb.SessionID)
			}
		default:
			return
		}
	}
}

// ApplyCommand runs one operation against the scene's session, gives the
// matching audio and status feedback, and refreshes the view.
func ApplyCommand(e *ecs.ECS, sb *components.ScoreboardData, c match.Command) {
	switch sb.Session.Apply(c) {
	case match.OutcomePoint:
		PlaySFX(e, cfg.SoundPoint)
	case match.OutcomeTimeout:
		PlaySFX(e, signalSound(sb.Profile))
		setScoreboardStatus(sb, fmt.Sprintf("Timeout %s", sb.Profile.TeamName(c.Side)))
	case match.OutcomeDenied:
		PlaySFX(e, cfg.SoundMenuDenied)
		setScoreboardStatus(sb, "Clock is at 00:00, pick a preset")
	case match.OutcomeSignal:
		PlaySFX(e, signalSound(sb.Profile))
	case match.OutcomeReset:
		setScoreboardStatus(sb, "New game")
		log.Printf("[scoreboard] %s reset", sb.SessionID)
	}

	sb.View = sb.Session.Snapshot()
}

// signalSound maps the profile's signal to a sound effect.
func signalSound(p profile.Profile) cfg.SoundID {
	if p.Signal == profile.SignalHorn {
		return cfg.SoundHorn
	}
	return cfg.SoundWhistle
}

func setScoreboardStatus(sb *components.ScoreboardData, status string) {
	sb.Status = status
	sb.StatusTimer = cfg.Scoreboard.StatusFrames
}

// GetScoreboard returns the scene's scoreboard component, or nil before the
// scene has created it.
func GetScoreboard(e *ecs.ECS) *components.ScoreboardData {
	entry, ok := components.Scoreboard.First(e.World)
	if !ok {
		return nil
	}
	return components.Scoreboard.Get(entry)
}

// CreateScoreboard creates the scoreboard singleton for a session.
func CreateScoreboard(e *ecs.ECS, p profile.Profile, session *match.Session, sessionID string) *components.ScoreboardData {
	entry := e.World.Entry(e.World.Create(components.Scoreboard))
	components.Scoreboard.SetValue(entry, components.ScoreboardData{
		Session:   session,
		Profile:   p,
		SessionID: sessionID,
		View:      session.Snapshot(),
	})
	return components.Scoreboard.Get(entry)
}
