package match

import (
	"errors"
	"fmt"
	"math"
)

// unbounded marks a field with no upper limit.
const unbounded = math.MaxInt

// Rules holds the bounds, defaults and clock presets of a scoreboard variant.
type Rules struct {
	DefaultTimeouts int
	MaxTimeouts     int
	MinPeriod       int
	MaxPeriod       int
	DefaultClock    Countdown
	Presets         []Countdown
}

// DefaultRules returns the table soccer rules: two of three timeouts, five
// games, and a 15:00 clock with 1:00 and 15:00 presets.
func DefaultRules() Rules {
	return Rules{
		DefaultTimeouts: 2,
		MaxTimeouts:     3,
		MinPeriod:       1,
		MaxPeriod:       5,
		DefaultClock:    NewCountdown(15, 0),
		Presets: []Countdown{
			NewCountdown(1, 0),
			NewCountdown(15, 0),
		},
	}
}

var (
	ErrPeriodRange  = errors.New("period range is empty")
	ErrTimeoutRange = errors.New("timeout default outside [0, max]")
	ErrClockRange   = errors.New("clock values out of range")
)

// Validate checks that the rules describe a non-empty state space whose
// defaults sit inside their bounds.
func (r Rules) Validate() error {
	if r.MinPeriod < 1 || r.MaxPeriod < r.MinPeriod {
		return fmt.Errorf("%w: [%d, %d]", ErrPeriodRange, r.MinPeriod, r.MaxPeriod)
	}
	if r.MaxTimeouts < 0 || r.DefaultTimeouts < 0 || r.DefaultTimeouts > r.MaxTimeouts {
		return fmt.Errorf("%w: default %d max %d", ErrTimeoutRange, r.DefaultTimeouts, r.MaxTimeouts)
	}
	if !validClock(r.DefaultClock) {
		return fmt.Errorf("%w: default %s", ErrClockRange, r.DefaultClock)
	}
	for _, p := range r.Presets {
		if !validClock(p) {
			return fmt.Errorf("%w: preset %s", ErrClockRange, p)
		}
	}
	return nil
}

func validClock(c Countdown) bool {
	return c.Minutes >= 0 && c.Seconds >= 0 && c.Seconds <= 59
}

// clamp returns v limited to [lo, hi].
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// addClamped adds delta to v without wrapping and clamps the result.
func addClamped(v, delta, lo, hi int) int {
	switch {
	case delta > 0 && v > math.MaxInt-delta:
		return hi
	case delta < 0 && v < math.MinInt-delta:
		return lo
	}
	return clamp(v+delta, lo, hi)
}
