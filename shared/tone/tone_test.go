package tone

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesizeLength(t *testing.T) {
	s := Spec{
		Waveform: Square,
		Segments: []Segment{{Frequency: 440, Seconds: 0.5}, {Frequency: 0, Seconds: 0.25}},
	}

	buf, err := Synthesize(s, 1000)
	require.NoError(t, err)
	assert.Len(t, buf, 750*BytesPerFrame)
	assert.InDelta(t, 0.75, s.Duration(), 1e-9)
}

func TestSynthesizeStereoAndSilence(t *testing.T) {
	s := Spec{
		Waveform: Sine,
		Segments: []Segment{{Frequency: 100, Seconds: 0.1}, {Frequency: 0, Seconds: 0.1}},
	}

	buf, err := Synthesize(s, 8000)
	require.NoError(t, err)

	frames := len(buf) / BytesPerFrame
	for i := 0; i < frames; i++ {
		l := binary.LittleEndian.Uint16(buf[i*BytesPerFrame:])
		r := binary.LittleEndian.Uint16(buf[i*BytesPerFrame+2:])
		require.Equal(t, l, r, "frame %d", i)
	}
	// Second half is the silent segment.
	for i := frames / 2; i < frames; i++ {
		assert.Zero(t, binary.LittleEndian.Uint16(buf[i*BytesPerFrame:]), "frame %d", i)
	}
}

func TestSynthesizeStaysUnderAmplitude(t *testing.T) {
	s := Spec{
		Waveform:     Sine,
		Segments:     []Segment{{Frequency: 2800, Seconds: 0.2}},
		VibratoHz:    28,
		VibratoDepth: 0.04,
		AttackSec:    0.01,
		ReleaseSec:   0.05,
	}

	buf, err := Synthesize(s, 44100)
	require.NoError(t, err)

	amp := float64(Amplitude)
	limit := int(amp*math.MaxInt16) + 1
	peak := 0
	for i := 0; i < len(buf); i += 2 {
		v := int(int16(binary.LittleEndian.Uint16(buf[i:])))
		if v < 0 {
			v = -v
		}
		if v > peak {
			peak = v
		}
	}
	assert.LessOrEqual(t, peak, limit)
	assert.Greater(t, peak, 0)

	// Attack ramp starts from zero.
	assert.Zero(t, int16(binary.LittleEndian.Uint16(buf[0:])))
}

func TestSynthesizeErrors(t *testing.T) {
	_, err := Synthesize(Spec{}, 44100)
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = Synthesize(Spec{Segments: []Segment{{Frequency: 1, Seconds: 1}}}, 0)
	assert.Error(t, err)
}

func TestOscillateRange(t *testing.T) {
	for _, w := range []Waveform{Sine, Square, Triangle} {
		for p := 0.0; p < 1; p += 0.01 {
			v := oscillate(w, p)
			assert.GreaterOrEqual(t, v, -1.0)
			assert.LessOrEqual(t, v, 1.0)
		}
	}
	assert.Equal(t, 1.0, oscillate(Triangle, 0))
	assert.Equal(t, -1.0, oscillate(Triangle, 0.5))
}
