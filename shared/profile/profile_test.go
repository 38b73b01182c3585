package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/automoto/tablescore/shared/match"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltin(t *testing.T) {
	set := NewSet(Builtin())
	assert.Equal(t, []string{TableSoccer, Volleyball}, set.IDs())

	ts, ok := set.Get(TableSoccer)
	require.True(t, ok)
	assert.Equal(t, "BULLDOGS", ts.TeamName(match.Home))
	assert.Equal(t, "FALCONS", ts.TeamName(match.Away))
	assert.Equal(t, SignalWhistle, ts.Signal)
	assert.Equal(t, "2nd Game", ts.PeriodLabel(2))

	vb := set.GetOrDefault(Volleyball)
	assert.Equal(t, "5th Set", vb.PeriodLabel(5))
	assert.Equal(t, SignalHorn, vb.Signal)

	assert.Equal(t, TableSoccer, set.GetOrDefault("nope").ID)
}

func TestOrdinal(t *testing.T) {
	tests := map[int]string{
		1: "1st", 2: "2nd", 3: "3rd", 4: "4th", 5: "5th",
		11: "11th", 12: "12th", 13: "13th", 21: "21st", 22: "22nd", 103: "103rd",
	}
	for n, want := range tests {
		assert.Equal(t, want, Ordinal(n), "n=%d", n)
	}
}

func TestParseClock(t *testing.T) {
	c, err := ParseClock("15:00")
	require.NoError(t, err)
	assert.Equal(t, match.NewCountdown(15, 0), c)

	c, err = ParseClock(" 7 ")
	require.NoError(t, err)
	assert.Equal(t, match.NewCountdown(7, 0), c)

	for _, bad := range []string{"", "x:00", "1:60", "-1:00", "1:-5", "1:ab"} {
		_, err := ParseClock(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseMergesOverrides(t *testing.T) {
	doc := []byte(`
profiles:
  - id: tablesoccer
    home_team: REDS
    away_team: BLUES
    rules:
      max_period: 3
      default_clock: "10:00"
      presets: ["0:30", "10:00"]
  - id: pingpong
    title: Ping Pong Scoreboard
    period_noun: Game
    signal: horn
`)
	set, err := Parse(doc)
	require.NoError(t, err)
	assert.Equal(t, []string{TableSoccer, Volleyball, "pingpong"}, set.IDs())

	ts := set.GetOrDefault(TableSoccer)
	assert.Equal(t, "REDS", ts.HomeTeam)
	assert.Equal(t, "BLUES", ts.AwayTeam)
	assert.Equal(t, "Game", ts.PeriodNoun)
	assert.Equal(t, 3, ts.Rules.MaxPeriod)
	assert.Equal(t, 1, ts.Rules.MinPeriod)
	assert.Equal(t, match.NewCountdown(10, 0), ts.Rules.DefaultClock)
	assert.Equal(t, []match.Countdown{match.NewCountdown(0, 30), match.NewCountdown(10, 0)}, ts.Rules.Presets)

	pp := set.GetOrDefault("pingpong")
	assert.Equal(t, "Ping Pong Scoreboard", pp.Title)
	assert.Equal(t, SignalHorn, pp.Signal)
	assert.Equal(t, match.DefaultRules(), pp.Rules)
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"missing id":     "profiles:\n  - title: x\n",
		"bad signal":     "profiles:\n  - id: tablesoccer\n    signal: bell\n",
		"bad clock":      "profiles:\n  - id: tablesoccer\n    rules:\n      default_clock: \"5:99\"\n",
		"bad preset":     "profiles:\n  - id: tablesoccer\n    rules:\n      presets: [\"oops\"]\n",
		"inverted range": "profiles:\n  - id: volleyball\n    rules:\n      min_period: 4\n      max_period: 2\n",
		"bad yaml":       "profiles: [",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	set, err := Load(filepath.Join(dir, "missing.yml"), true)
	require.NoError(t, err)
	assert.Equal(t, []string{TableSoccer, Volleyball}, set.IDs())

	_, err = Load(filepath.Join(dir, "missing.yml"), false)
	assert.Error(t, err)

	path := filepath.Join(dir, "profiles.yml")
	require.NoError(t, os.WriteFile(path, []byte("profiles:\n  - id: volleyball\n    away_team: EAGLES\n"), 0o644))

	set, err = Load(path, false)
	require.NoError(t, err)
	assert.Equal(t, "EAGLES", set.GetOrDefault(Volleyball).AwayTeam)
}
