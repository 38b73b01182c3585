package match

// State is a snapshot of everything the scoreboard displays.
type State struct {
	HomeScore    int
	AwayScore    int
	HomeSets     int
	AwaySets     int
	HomeTimeouts int
	AwayTimeouts int
	Period       int
	Possession   Side
	Clock        Countdown
}

// NewState returns the state a fresh session starts with under r.
func NewState(r Rules) State {
	return State{
		HomeTimeouts: r.DefaultTimeouts,
		AwayTimeouts: r.DefaultTimeouts,
		Period:       r.MinPeriod,
		Possession:   Home,
		Clock:        r.DefaultClock,
	}
}

// Score returns the points of side.
func (s State) Score(side Side) int {
	if side == Away {
		return s.AwayScore
	}
	return s.HomeScore
}

// Sets returns the sets (or games) won by side.
func (s State) Sets(side Side) int {
	if side == Away {
		return s.AwaySets
	}
	return s.HomeSets
}

// Timeouts returns the timeouts left for side.
func (s State) Timeouts(side Side) int {
	if side == Away {
		return s.AwayTimeouts
	}
	return s.HomeTimeouts
}

func (s *State) adjustScore(side Side, delta int) {
	switch side {
	case Home:
		s.HomeScore = addClamped(s.HomeScore, delta, 0, unbounded)
	case Away:
		s.AwayScore = addClamped(s.AwayScore, delta, 0, unbounded)
	}
}

func (s *State) adjustSets(side Side, delta int) {
	switch side {
	case Home:
		s.HomeSets = addClamped(s.HomeSets, delta, 0, unbounded)
	case Away:
		s.AwaySets = addClamped(s.AwaySets, delta, 0, unbounded)
	}
}

func (s *State) adjustTimeouts(side Side, delta int, r Rules) {
	switch side {
	case Home:
		s.HomeTimeouts = addClamped(s.HomeTimeouts, delta, 0, r.MaxTimeouts)
	case Away:
		s.AwayTimeouts = addClamped(s.AwayTimeouts, delta, 0, r.MaxTimeouts)
	}
}

func (s *State) adjustPeriod(delta int, r Rules) {
	s.Period = addClamped(s.Period, delta, r.MinPeriod, r.MaxPeriod)
}
