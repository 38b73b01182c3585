package match

import (
	"context"
	"sync"
	"time"
)

// Session owns the state of one scoreboard from the moment the scoreboard is
// opened until the user leaves it. Mutators are called from the UI goroutine;
// while the clock runs, a single ticker goroutine advances it once per
// interval and publishes the new value on Updates.
type Session struct {
	mu     sync.Mutex
	rules  Rules
	state  State
	closed bool

	// gen identifies the ticker goroutine allowed to advance the clock.
	gen    uint64
	cancel context.CancelFunc
	wg     sync.WaitGroup

	newTicker TickerFactory
	interval  time.Duration
	updates   chan Countdown
}

// Option configures a Session.
type Option func(*Session)

// WithTicker replaces the wall-clock ticker, mainly for tests.
func WithTicker(f TickerFactory) Option {
	return func(s *Session) {
		s.newTicker = f
	}
}

// withInterval changes how often a running clock advances by one second.
func withInterval(d time.Duration) Option {
	return func(s *Session) {
		if d > 0 {
			s.interval = d
		}
	}
}

// NewSession starts a session with every field at its default.
func NewSession(r Rules, opts ...Option) *Session {
	s := &Session{
		rules:     r,
		state:     NewState(r),
		newTicker: NewRealTicker,
		interval:  time.Second,
		updates:   make(chan Countdown, 1),
	}
	s.state.Clock.Running = false
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Rules returns the rules the session was created with.
func (s *Session) Rules() Rules {
	return s.rules
}

// Snapshot returns a consistent copy of the current state.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Clock returns the current countdown value.
func (s *Session) Clock() Countdown {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clock
}

// Running reports whether the countdown is running.
func (s *Session) Running() bool {
	return s.Clock().Running
}

// Updates delivers the clock value after every tick. Only the latest value
// is buffered; a reader that falls behind sees the most recent one.
func (s *Session) Updates() <-chan Countdown {
	return s.updates
}

// AdjustScore adds delta to side's score, flooring at 0.
func (s *Session) AdjustScore(side Side, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.adjustScore(side, delta)
}

// AdjustSets adds delta to side's sets won, flooring at 0.
func (s *Session) AdjustSets(side Side, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.adjustSets(side, delta)
}

// AdjustTimeouts adds delta to side's remaining timeouts, clamped to
// [0, MaxTimeouts].
func (s *Session) AdjustTimeouts(side Side, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.adjustTimeouts(side, delta, s.rules)
}

// AdjustPeriod moves the current period by delta within [MinPeriod, MaxPeriod].
func (s *Session) AdjustPeriod(delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.adjustPeriod(delta, s.rules)
}

func (s *Session) NextPeriod() { s.AdjustPeriod(1) }
func (s *Session) PrevPeriod() { s.AdjustPeriod(-1) }

// SetPossession gives the ball (or serve) to side. Unknown sides are ignored.
func (s *Session) SetPossession(side Side) {
	if !side.Valid() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Possession = side
}

// Start launches the ticker goroutine. It is a no-op, returning false, while
// the clock already runs, when it shows 00:00, or after Close. A clock at
// 00:00 never reports Running, not even until the next tick.
func (s *Session) Start() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.state.Clock.Running || s.state.Clock.Expired() {
		return false
	}

	s.state.Clock.Running = true
	s.gen++
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	t := s.newTicker(s.interval)
	s.wg.Add(1)
	go s.run(ctx, t, s.gen)
	return true
}

// Stop halts the clock. Stopping a stopped clock is a no-op.
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

// Toggle starts a stopped clock or stops a running one and reports whether
// the clock is running afterwards.
func (s *Session) Toggle() bool {
	if s.Running() {
		s.Stop()
		return false
	}
	return s.Start()
}

// SetPreset stops the clock and sets it to minutes:seconds.
func (s *Session) SetPreset(minutes, seconds int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
	s.state.Clock = NewCountdown(minutes, seconds)
}

// ApplyPreset sets the clock to the i-th preset of the rules. Out-of-range
// indexes are ignored.
func (s *Session) ApplyPreset(i int) {
	if i < 0 || i >= len(s.rules.Presets) {
		return
	}
	p := s.rules.Presets[i]
	s.SetPreset(p.Minutes, p.Seconds)
}

// ResetTimer stops the clock and restores the default clock value.
func (s *Session) ResetTimer() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
	s.state.Clock = s.defaultClock()
}

// ResetGame stops the clock and restores every field to its default in one
// step; no reader can observe a partially reset state.
func (s *Session) ResetGame() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
	s.state = NewState(s.rules)
	s.state.Clock = s.defaultClock()
}

// Close leaves the session: the clock is stopped and Close returns only once
// the ticker goroutine has exited. Later calls are no-ops, and Start no
// longer launches a ticker.
func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	s.stopLocked()
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *Session) defaultClock() Countdown {
	c := s.rules.DefaultClock
	c.Running = false
	return c
}

func (s *Session) stopLocked() {
	s.state.Clock.Running = false
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *Session) run(ctx context.Context, t Ticker, gen uint64) {
	defer s.wg.Done()
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C():
			clock, ok := s.tick(gen)
			if !ok {
				return
			}
			s.publish(clock)
			if !clock.Running {
				return
			}
		}
	}
}

// tick advances the clock once on behalf of ticker generation gen. A ticker
// that has been superseded or stopped gets ok=false and must exit.
func (s *Session) tick(gen uint64) (clock Countdown, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen || !s.state.Clock.Running {
		return Countdown{}, false
	}

	s.state.Clock = s.state.Clock.Tick()
	if !s.state.Clock.Running {
		s.stopLocked()
	}
	return s.state.Clock, true
}

func (s *Session) publish(c Countdown) {
	for {
		select {
		case s.updates <- c:
			return
		default:
		}
		select {
		case <-s.updates:
		default:
		}
	}
}
