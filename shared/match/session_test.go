package match

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type manualTicker struct {
	c       chan time.Time
	stopped atomic.Bool
}

func (m *manualTicker) C() <-chan time.Time { return m.c }
func (m *manualTicker) Stop()               { m.stopped.Store(true) }

// tick blocks until the session's ticker goroutine has received the wake-up.
func (m *manualTicker) tick(t *testing.T) {
	t.Helper()
	select {
	case m.c <- time.Now():
	case <-time.After(time.Second):
		t.Fatal("ticker goroutine did not receive tick")
	}
}

type tickerRecorder struct {
	mu      sync.Mutex
	tickers []*manualTicker
}

func (r *tickerRecorder) factory(time.Duration) Ticker {
	r.mu.Lock()
	defer r.mu.Unlock()
	m := &manualTicker{c: make(chan time.Time)}
	r.tickers = append(r.tickers, m)
	return m
}

func (r *tickerRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.tickers)
}

func (r *tickerRecorder) last() *manualTicker {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tickers[len(r.tickers)-1]
}

func newTestSession(t *testing.T) (*Session, *tickerRecorder) {
	t.Helper()
	rec := &tickerRecorder{}
	s := NewSession(DefaultRules(), WithTicker(rec.factory))
	t.Cleanup(s.Close)
	return s, rec
}

func nextUpdate(t *testing.T, s *Session) Countdown {
	t.Helper()
	select {
	case c := <-s.Updates():
		return c
	case <-time.After(time.Second):
		t.Fatal("no clock update published")
	}
	return Countdown{}
}

func defaultState() State {
	return State{
		HomeTimeouts: 2,
		AwayTimeouts: 2,
		Period:       1,
		Possession:   Home,
		Clock:        Countdown{Minutes: 15, Seconds: 0},
	}
}

func TestNewSessionDefaults(t *testing.T) {
	s, _ := newTestSession(t)
	assert.Equal(t, defaultState(), s.Snapshot())
}

func TestScoreNeverNegative(t *testing.T) {
	s, _ := newTestSession(t)

	for _, side := range []Side{Home, Away} {
		for start := 0; start <= 5; start++ {
			for delta := -10; delta <= 10; delta++ {
				s.ResetGame()
				s.AdjustScore(side, start)
				s.AdjustScore(side, delta)
				assert.GreaterOrEqual(t, s.Snapshot().Score(side), 0)
			}
		}
	}
}

func TestScoreIncrementThenDecrementRoundTrips(t *testing.T) {
	s, _ := newTestSession(t)

	for start := 0; start <= 20; start++ {
		s.ResetGame()
		s.AdjustScore(Away, start)
		s.AdjustScore(Away, 1)
		s.AdjustScore(Away, -1)
		assert.Equal(t, start, s.Snapshot().AwayScore)
		assert.Equal(t, 0, s.Snapshot().HomeScore)
	}
}

func TestSetsFloorAtZero(t *testing.T) {
	s, _ := newTestSession(t)

	s.AdjustSets(Home, -1)
	s.AdjustSets(Away, 3)
	s.AdjustSets(Away, -1)

	st := s.Snapshot()
	assert.Equal(t, 0, st.HomeSets)
	assert.Equal(t, 2, st.AwaySets)
}

func TestTimeoutsStayInRange(t *testing.T) {
	s, _ := newTestSession(t)

	for start := 0; start <= 3; start++ {
		for delta := -5; delta <= 5; delta++ {
			s.ResetGame()
			s.AdjustTimeouts(Home, start-2)
			require.Equal(t, start, s.Snapshot().HomeTimeouts)

			s.AdjustTimeouts(Home, delta)
			got := s.Snapshot().HomeTimeouts
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 3)
		}
	}

	s.ResetGame()
	s.AdjustTimeouts(Away, -2)
	s.AdjustTimeouts(Away, -1)
	assert.Equal(t, 0, s.Snapshot().AwayTimeouts)

	s.AdjustTimeouts(Away, 3)
	s.AdjustTimeouts(Away, 1)
	assert.Equal(t, 3, s.Snapshot().AwayTimeouts)
}

func TestPeriodStaysInRange(t *testing.T) {
	s, _ := newTestSession(t)

	s.PrevPeriod()
	assert.Equal(t, 1, s.Snapshot().Period)

	for i := 0; i < 10; i++ {
		s.NextPeriod()
	}
	assert.Equal(t, 5, s.Snapshot().Period)

	s.AdjustPeriod(-2)
	assert.Equal(t, 3, s.Snapshot().Period)
}

func TestSetPossession(t *testing.T) {
	s, _ := newTestSession(t)

	s.SetPossession(Away)
	assert.Equal(t, Away, s.Snapshot().Possession)

	s.SetPossession(Side(7))
	assert.Equal(t, Away, s.Snapshot().Possession)

	s.SetPossession(Home)
	assert.Equal(t, Home, s.Snapshot().Possession)
}

func TestMutatorsTouchOneField(t *testing.T) {
	s, _ := newTestSession(t)
	s.AdjustScore(Home, 4)

	want := defaultState()
	want.HomeScore = 4
	assert.Equal(t, want, s.Snapshot())
}

func TestStartTwiceLaunchesOneTicker(t *testing.T) {
	s, rec := newTestSession(t)

	assert.True(t, s.Start())
	assert.False(t, s.Start())
	assert.Equal(t, 1, rec.count())

	rec.last().tick(t)
	c := nextUpdate(t, s)
	assert.Equal(t, Countdown{Minutes: 14, Seconds: 59, Running: true}, c)

	rec.last().tick(t)
	c = nextUpdate(t, s)
	assert.Equal(t, Countdown{Minutes: 14, Seconds: 58, Running: true}, c)
	assert.Equal(t, c, s.Clock())
}

func TestStopIsIdempotent(t *testing.T) {
	s, rec := newTestSession(t)

	s.Stop()
	assert.False(t, s.Running())

	require.True(t, s.Start())
	s.Stop()
	s.Stop()
	assert.False(t, s.Running())

	tk := rec.last()
	assert.Eventually(t, tk.stopped.Load, time.Second, 5*time.Millisecond)
	assert.Equal(t, NewCountdown(15, 0), s.Clock())
}

func TestRestartAfterStopUsesFreshTicker(t *testing.T) {
	s, rec := newTestSession(t)

	require.True(t, s.Start())
	first := rec.last()
	s.Stop()

	require.True(t, s.Start())
	second := rec.last()
	require.NotSame(t, first, second)
	assert.Eventually(t, first.stopped.Load, time.Second, 5*time.Millisecond)

	second.tick(t)
	assert.Equal(t, Countdown{Minutes: 14, Seconds: 59, Running: true}, nextUpdate(t, s))
}

func TestClockExpiresAndStops(t *testing.T) {
	s, rec := newTestSession(t)

	s.SetPreset(0, 1)
	require.True(t, s.Start())

	tk := rec.last()
	tk.tick(t)
	assert.Equal(t, Countdown{Minutes: 0, Seconds: 0, Running: false}, nextUpdate(t, s))
	assert.False(t, s.Running())
	assert.Eventually(t, tk.stopped.Load, time.Second, 5*time.Millisecond)

	assert.False(t, s.Start())
	assert.Equal(t, 1, rec.count())
	assert.Equal(t, "00:00", s.Clock().String())
}

func TestStartAtZeroNeverRuns(t *testing.T) {
	s, rec := newTestSession(t)

	s.SetPreset(0, 0)
	assert.False(t, s.Start())
	assert.False(t, s.Running())
	assert.False(t, s.Snapshot().Clock.Running)
	assert.Zero(t, rec.count())

	select {
	case c := <-s.Updates():
		t.Fatalf("unexpected clock update %v", c)
	default:
	}
}

func TestMinuteBorrowWhileRunning(t *testing.T) {
	s, rec := newTestSession(t)

	s.ApplyPreset(0)
	require.Equal(t, NewCountdown(1, 0), s.Clock())
	require.True(t, s.Start())

	rec.last().tick(t)
	assert.Equal(t, Countdown{Minutes: 0, Seconds: 59, Running: true}, nextUpdate(t, s))
}

func TestSetPresetStopsClock(t *testing.T) {
	s, rec := newTestSession(t)

	require.True(t, s.Start())
	s.SetPreset(1, 0)

	assert.Equal(t, NewCountdown(1, 0), s.Clock())
	assert.Eventually(t, rec.last().stopped.Load, time.Second, 5*time.Millisecond)

	s.ApplyPreset(-1)
	s.ApplyPreset(9)
	assert.Equal(t, NewCountdown(1, 0), s.Clock())
}

func TestResetTimer(t *testing.T) {
	s, rec := newTestSession(t)

	s.SetPreset(3, 17)
	require.True(t, s.Start())
	rec.last().tick(t)
	nextUpdate(t, s)

	s.ResetTimer()
	assert.Equal(t, NewCountdown(15, 0), s.Clock())
}

func TestToggle(t *testing.T) {
	s, _ := newTestSession(t)

	assert.True(t, s.Toggle())
	assert.True(t, s.Running())
	assert.False(t, s.Toggle())
	assert.False(t, s.Running())
}

func TestResetGameRestoresDefaults(t *testing.T) {
	s, rec := newTestSession(t)

	s.AdjustScore(Home, 7)
	s.AdjustScore(Away, 3)
	s.AdjustSets(Home, 2)
	s.AdjustSets(Away, 1)
	s.AdjustTimeouts(Home, -2)
	s.AdjustTimeouts(Away, 1)
	s.AdjustPeriod(3)
	s.SetPossession(Away)
	s.SetPreset(4, 44)
	require.True(t, s.Start())
	rec.last().tick(t)
	nextUpdate(t, s)

	s.ResetGame()

	assert.Equal(t, defaultState(), s.Snapshot())
	assert.Eventually(t, rec.last().stopped.Load, time.Second, 5*time.Millisecond)
}

func TestResetGameIsAtomic(t *testing.T) {
	s, _ := newTestSession(t)

	mutated := func() {
		s.AdjustScore(Home, 5)
		s.AdjustScore(Away, 5)
		s.AdjustSets(Home, 1)
		s.AdjustSets(Away, 1)
	}
	mutated()

	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
			}
			st := s.Snapshot()
			// Reset clears every field together; sets and scores can never be
			// observed half cleared.
			if st.HomeScore == 0 {
				assert.Equal(t, 0, st.HomeSets)
				assert.Equal(t, 0, st.AwaySets)
			}
		}
	}()

	for i := 0; i < 200; i++ {
		s.ResetGame()
		mutated()
	}
	close(stop)
	wg.Wait()
}

func TestCloseWaitsForTicker(t *testing.T) {
	rec := &tickerRecorder{}
	s := NewSession(DefaultRules(), WithTicker(rec.factory))

	require.True(t, s.Start())
	s.Close()

	assert.True(t, rec.last().stopped.Load())
	assert.False(t, s.Running())
	assert.False(t, s.Start())

	s.Close()
}

func TestRealTickerDrivesClock(t *testing.T) {
	s := NewSession(DefaultRules(), withInterval(time.Millisecond))
	t.Cleanup(s.Close)

	s.SetPreset(0, 3)
	require.True(t, s.Start())

	assert.Eventually(t, func() bool {
		c := s.Clock()
		return c.Expired() && !c.Running
	}, 2*time.Second, 5*time.Millisecond)
}
