package match

// CommandKind identifies one scoreboard operation. Keyboard shortcuts and the
// on-screen control panel both go through Session.Apply.
type CommandKind int

const (
	CmdScore CommandKind = iota
	CmdSets
	CmdTimeouts
	CmdPeriod
	CmdPossession
	CmdToggleClock
	CmdResetClock
	CmdPreset
	CmdSignal
	CmdResetGame
)

// Command is a CommandKind with its arguments. Side applies to per-team
// commands, Delta to adjustments and Index to presets.
type Command struct {
	Kind  CommandKind
	Side  Side
	Delta int
	Index int
}

// Outcome tells the caller which feedback a command calls for.
type Outcome int

const (
	OutcomeNone    Outcome = iota
	OutcomePoint           // a score or set went up
	OutcomeTimeout         // a team used one of its timeouts
	OutcomeDenied          // the clock shows 00:00 and can't start
	OutcomeSignal
	OutcomeReset
)

// Apply runs c against the session and reports its outcome.
func (s *Session) Apply(c Command) Outcome {
	switch c.Kind {
	case CmdScore:
		before := s.Snapshot().Score(c.Side)
		s.AdjustScore(c.Side, c.Delta)
		if s.Snapshot().Score(c.Side) > before {
			return OutcomePoint
		}
	case CmdSets:
		before := s.Snapshot().Sets(c.Side)
		s.AdjustSets(c.Side, c.Delta)
		if s.Snapshot().Sets(c.Side) > before {
			return OutcomePoint
		}
	case CmdTimeouts:
		before := s.Snapshot().Timeouts(c.Side)
		s.AdjustTimeouts(c.Side, c.Delta)
		if s.Snapshot().Timeouts(c.Side) < before {
			return OutcomeTimeout
		}
	case CmdPeriod:
		s.AdjustPeriod(c.Delta)
	case CmdPossession:
		s.SetPossession(c.Side)
	case CmdToggleClock:
		if running := s.Toggle(); !running && s.Clock().Expired() {
			return OutcomeDenied
		}
	case CmdResetClock:
		s.ResetTimer()
	case CmdPreset:
		s.ApplyPreset(c.Index)
	case CmdSignal:
		return OutcomeSignal
	case CmdResetGame:
		s.ResetGame()
		return OutcomeReset
	}
	return OutcomeNone
}
