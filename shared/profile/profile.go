// Package profile describes the scoreboard variants (table soccer, volleyball)
// as data: team labels, period naming, the signal sound and the match rules.
package profile

import (
	"fmt"

	"github.com/automoto/tablescore/shared/match"
)

// Signal names the sound played by the scoreboard's signal button.
type Signal string

const (
	SignalWhistle Signal = "whistle"
	SignalHorn    Signal = "horn"
)

// Profile is one scoreboard variant.
type Profile struct {
	ID              string
	Title           string
	Sport           string
	HomeTeam        string
	AwayTeam        string
	PeriodNoun      string // "Game" or "Set"
	PossessionLabel string // "Possession" or "Serve"
	Signal          Signal
	Rules           match.Rules
}

const (
	TableSoccer = "tablesoccer"
	Volleyball  = "volleyball"
)

// Builtin returns the variants shipped with the application, table soccer first.
func Builtin() []Profile {
	return []Profile{
		{
			ID:              TableSoccer,
			Title:           "Tablesoccer Scoreboard",
			Sport:           "TABLESOCCER",
			HomeTeam:        "BULLDOGS",
			AwayTeam:        "FALCONS",
			PeriodNoun:      "Game",
			PossessionLabel: "POSSESSION",
			Signal:          SignalWhistle,
			Rules:           match.DefaultRules(),
		},
		{
			ID:              Volleyball,
			Title:           "Volleyball Scoreboard",
			Sport:           "VOLLEYBALL",
			HomeTeam:        "BULLDOGS",
			AwayTeam:        "FALCONS",
			PeriodNoun:      "Set",
			PossessionLabel: "SERVE",
			Signal:          SignalHorn,
			Rules:           match.DefaultRules(),
		},
	}
}

var ordinals = []string{"", "1st", "2nd", "3rd"}

// Ordinal returns "1st", "2nd", "3rd", "4th", ... for n >= 1.
func Ordinal(n int) string {
	if n >= 1 && n < len(ordinals) {
		return ordinals[n]
	}
	switch n % 100 {
	case 11, 12, 13:
		return fmt.Sprintf("%dth", n)
	}
	switch n % 10 {
	case 1:
		return fmt.Sprintf("%dst", n)
	case 2:
		return fmt.Sprintf("%dnd", n)
	case 3:
		return fmt.Sprintf("%drd", n)
	}
	return fmt.Sprintf("%dth", n)
}

// PeriodLabel returns the label of period n, e.g. "2nd Game".
func (p Profile) PeriodLabel(n int) string {
	return Ordinal(n) + " " + p.PeriodNoun
}

// TeamName returns the display name of side.
func (p Profile) TeamName(side match.Side) string {
	if side == match.Away {
		return p.AwayTeam
	}
	return p.HomeTeam
}

// Set is an ordered collection of profiles addressable by ID.
type Set struct {
	profiles []Profile
}

// NewSet builds a Set from profiles, keeping their order.
func NewSet(profiles []Profile) *Set {
	return &Set{profiles: append([]Profile(nil), profiles...)}
}

// Get returns the profile with id.
func (s *Set) Get(id string) (Profile, bool) {
	for _, p := range s.profiles {
		if p.ID == id {
			return p, true
		}
	}
	return Profile{}, false
}

// GetOrDefault returns the profile with id, falling back to the first profile.
func (s *Set) GetOrDefault(id string) Profile {
	if p, ok := s.Get(id); ok {
		return p
	}
	return s.profiles[0]
}

// All returns the profiles in order.
func (s *Set) All() []Profile {
	return append([]Profile(nil), s.profiles...)
}

// IDs returns the profile IDs in order.
func (s *Set) IDs() []string {
	ids := make([]string, 0, len(s.profiles))
	for _, p := range s.profiles {
		ids = append(ids, p.ID)
	}
	return ids
}
