package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountdownTick(t *testing.T) {
	tests := []struct {
		name string
		in   Countdown
		want Countdown
	}{
		{"seconds decrement", Countdown{Minutes: 3, Seconds: 10, Running: true}, Countdown{Minutes: 3, Seconds: 9, Running: true}},
		{"minute borrow", Countdown{Minutes: 1, Seconds: 0, Running: true}, Countdown{Minutes: 0, Seconds: 59, Running: true}},
		{"last second stops", Countdown{Minutes: 0, Seconds: 1, Running: true}, Countdown{Minutes: 0, Seconds: 0, Running: false}},
		{"expired stops", Countdown{Minutes: 0, Seconds: 0, Running: true}, Countdown{Minutes: 0, Seconds: 0, Running: false}},
		{"stopped is unchanged", Countdown{Minutes: 5, Seconds: 5}, Countdown{Minutes: 5, Seconds: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Tick())
		})
	}
}

func TestCountdownTickAfterExpiryIsNoop(t *testing.T) {
	c := Countdown{Minutes: 0, Seconds: 1, Running: true}.Tick()
	assert.Equal(t, "00:00", c.String())
	assert.False(t, c.Running)

	again := c.Tick()
	assert.Equal(t, c, again)
}

func TestCountdownRunsDownToZero(t *testing.T) {
	c := NewCountdown(2, 30)
	c.Running = true

	ticks := 0
	for c.Running {
		c = c.Tick()
		ticks++
		assert.GreaterOrEqual(t, c.Minutes, 0)
		assert.GreaterOrEqual(t, c.Seconds, 0)
		assert.LessOrEqual(t, c.Seconds, 59)
	}

	assert.Equal(t, 150, ticks)
	assert.True(t, c.Expired())
}

func TestNewCountdownClamps(t *testing.T) {
	assert.Equal(t, Countdown{Minutes: 0, Seconds: 59}, NewCountdown(-4, 75))
	assert.Equal(t, Countdown{Minutes: 15, Seconds: 0}, NewCountdown(15, -1))
}
