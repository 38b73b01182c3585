package match

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRulesAreValid(t *testing.T) {
	r := DefaultRules()
	require.NoError(t, r.Validate())

	assert.Equal(t, 2, r.DefaultTimeouts)
	assert.Equal(t, 3, r.MaxTimeouts)
	assert.Equal(t, 1, r.MinPeriod)
	assert.Equal(t, 5, r.MaxPeriod)
	assert.Equal(t, NewCountdown(15, 0), r.DefaultClock)
	assert.Equal(t, []Countdown{NewCountdown(1, 0), NewCountdown(15, 0)}, r.Presets)
}

func TestRulesValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(r *Rules)
		want   error
	}{
		{"period zero", func(r *Rules) { r.MinPeriod = 0 }, ErrPeriodRange},
		{"period inverted", func(r *Rules) { r.MinPeriod, r.MaxPeriod = 4, 2 }, ErrPeriodRange},
		{"timeouts above max", func(r *Rules) { r.DefaultTimeouts = 4 }, ErrTimeoutRange},
		{"negative max timeouts", func(r *Rules) { r.MaxTimeouts = -1 }, ErrTimeoutRange},
		{"default clock seconds", func(r *Rules) { r.DefaultClock = Countdown{Minutes: 1, Seconds: 60} }, ErrClockRange},
		{"preset negative", func(r *Rules) { r.Presets = append(r.Presets, Countdown{Minutes: -1}) }, ErrClockRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := DefaultRules()
			tt.modify(&r)
			assert.ErrorIs(t, r.Validate(), tt.want)
		})
	}
}

func TestAddClampedDoesNotWrap(t *testing.T) {
	assert.Equal(t, math.MaxInt, addClamped(math.MaxInt-1, 5, 0, unbounded))
	assert.Equal(t, 0, addClamped(3, math.MinInt, 0, unbounded))
	assert.Equal(t, 3, addClamped(1, 100, 0, 3))
	assert.Equal(t, 1, addClamped(5, -100, 1, 5))
}
