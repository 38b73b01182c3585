package components

import (
	"github.com/automoto/tablescore/shared/match"
	"github.com/automoto/tablescore/shared/profile"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ScoreboardData is the scoreboard scene's view of its match session
// (singleton component). Only the UI goroutine touches it; the clock
// goroutine reaches it through Session.Updates.
type ScoreboardData struct {
	Session   *match.Session
	Profile   profile.Profile
	SessionID string

	// View is the last snapshot drawn. It is refreshed every frame.
	View match.State

	Status      string
	StatusTimer int
}

var Scoreboard = donburi.NewComponentType[ScoreboardData]()

// ReadoutKind identifies a number drawn on the scoreboard.
type ReadoutKind int

const (
	ReadoutHomeScore ReadoutKind = iota
	ReadoutAwayScore
	ReadoutHomeSets
	ReadoutAwaySets
	ReadoutPeriod
)

// ReadoutData remembers the value last drawn so changes can be animated.
type ReadoutData struct {
	Kind  ReadoutKind
	Value int
}

var Readout = donburi.NewComponentType[ReadoutData]()

// PopData scales a readout up briefly when its value changes.
type PopData struct {
	Tween *gween.Tween // nil when idle
	Scale float32
}

var Pop = donburi.NewComponentType[PopData]()
