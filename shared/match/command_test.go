package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyOutcomes(t *testing.T) {
	tests := []struct {
		name  string
		setup func(s *Session)
		cmd   Command
		want  Outcome
		check func(t *testing.T, st State)
	}{
		{
			name: "point",
			cmd:  Command{Kind: CmdScore, Side: Away, Delta: 1},
			want: OutcomePoint,
			check: func(t *testing.T, st State) {
				assert.Equal(t, 1, st.AwayScore)
			},
		},
		{
			name: "undo at zero is silent",
			cmd:  Command{Kind: CmdScore, Side: Home, Delta: -1},
			want: OutcomeNone,
			check: func(t *testing.T, st State) {
				assert.Equal(t, 0, st.HomeScore)
			},
		},
		{
			name: "set won",
			cmd:  Command{Kind: CmdSets, Side: Home, Delta: 1},
			want: OutcomePoint,
			check: func(t *testing.T, st State) {
				assert.Equal(t, 1, st.HomeSets)
			},
		},
		{
			name: "timeout used",
			cmd:  Command{Kind: CmdTimeouts, Side: Home, Delta: -1},
			want: OutcomeTimeout,
			check: func(t *testing.T, st State) {
				assert.Equal(t, 1, st.HomeTimeouts)
			},
		},
		{
			name: "no timeouts left",
			setup: func(s *Session) {
				s.AdjustTimeouts(Away, -5)
			},
			cmd:  Command{Kind: CmdTimeouts, Side: Away, Delta: -1},
			want: OutcomeNone,
			check: func(t *testing.T, st State) {
				assert.Equal(t, 0, st.AwayTimeouts)
			},
		},
		{
			name: "timeout given back",
			cmd:  Command{Kind: CmdTimeouts, Side: Away, Delta: 1},
			want: OutcomeNone,
			check: func(t *testing.T, st State) {
				assert.Equal(t, 3, st.AwayTimeouts)
			},
		},
		{
			name: "period",
			cmd:  Command{Kind: CmdPeriod, Delta: 1},
			want: OutcomeNone,
			check: func(t *testing.T, st State) {
				assert.Equal(t, 2, st.Period)
			},
		},
		{
			name: "possession",
			cmd:  Command{Kind: CmdPossession, Side: Away},
			want: OutcomeNone,
			check: func(t *testing.T, st State) {
				assert.Equal(t, Away, st.Possession)
			},
		},
		{
			name: "start at zero denied",
			setup: func(s *Session) {
				s.SetPreset(0, 0)
			},
			cmd:  Command{Kind: CmdToggleClock},
			want: OutcomeDenied,
			check: func(t *testing.T, st State) {
				assert.False(t, st.Clock.Running)
			},
		},
		{
			name: "start",
			cmd:  Command{Kind: CmdToggleClock},
			want: OutcomeNone,
			check: func(t *testing.T, st State) {
				assert.True(t, st.Clock.Running)
			},
		},
		{
			name: "preset",
			cmd:  Command{Kind: CmdPreset, Index: 0},
			want: OutcomeNone,
			check: func(t *testing.T, st State) {
				assert.Equal(t, NewCountdown(1, 0), st.Clock)
			},
		},
		{
			name: "reset clock",
			setup: func(s *Session) {
				s.SetPreset(2, 30)
			},
			cmd:  Command{Kind: CmdResetClock},
			want: OutcomeNone,
			check: func(t *testing.T, st State) {
				assert.Equal(t, NewCountdown(15, 0), st.Clock)
			},
		},
		{
			name: "signal",
			cmd:  Command{Kind: CmdSignal},
			want: OutcomeSignal,
			check: func(t *testing.T, st State) {
				assert.Equal(t, defaultState(), st)
			},
		},
		{
			name: "reset game",
			setup: func(s *Session) {
				s.AdjustScore(Home, 4)
				s.AdjustPeriod(2)
			},
			cmd:  Command{Kind: CmdResetGame},
			want: OutcomeReset,
			check: func(t *testing.T, st State) {
				assert.Equal(t, defaultState(), st)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestSession(t)
			if tt.setup != nil {
				tt.setup(s)
			}
			assert.Equal(t, tt.want, s.Apply(tt.cmd))
			tt.check(t, s.Snapshot())
		})
	}
}

func TestApplyToggleStopsRunningClock(t *testing.T) {
	s, _ := newTestSession(t)

	require.Equal(t, OutcomeNone, s.Apply(Command{Kind: CmdToggleClock}))
	require.True(t, s.Running())

	assert.Equal(t, OutcomeNone, s.Apply(Command{Kind: CmdToggleClock}))
	assert.False(t, s.Running())
}
