package match

import "fmt"

// Countdown is the game clock value: whole minutes and seconds remaining.
type Countdown struct {
	Minutes int
	Seconds int
	Running bool
}

// NewCountdown returns a stopped clock showing minutes:seconds.
// Negative minutes floor at 0 and seconds are clamped to [0, 59].
func NewCountdown(minutes, seconds int) Countdown {
	return Countdown{
		Minutes: clamp(minutes, 0, unbounded),
		Seconds: clamp(seconds, 0, 59),
	}
}

// Expired reports whether the clock shows 00:00.
func (c Countdown) Expired() bool {
	return c.Minutes <= 0 && c.Seconds <= 0
}

// Tick advances the clock by one second. A stopped clock is returned
// unchanged. Reaching 00:00 stops the clock instead of underflowing.
func (c Countdown) Tick() Countdown {
	if !c.Running {
		return c
	}

	switch {
	case c.Seconds > 0:
		c.Seconds--
	case c.Minutes > 0:
		c.Minutes--
		c.Seconds = 59
	}

	if c.Expired() {
		c.Running = false
	}
	return c
}

func (c Countdown) String() string {
	return fmt.Sprintf("%02d:%02d", c.Minutes, c.Seconds)
}
