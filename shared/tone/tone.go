// Package tone synthesizes short PCM sound effects. It has no audio device
// dependency so the generated buffers can be inspected in tests.
package tone

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// Waveform selects the oscillator used for a tone.
type Waveform int

const (
	Sine Waveform = iota
	Square
	Triangle
)

// Segment is one constant-pitch slice of a sound.
type Segment struct {
	Frequency float64 // Hz; 0 is silence
	Seconds   float64
}

// Spec describes a synthesized sound effect.
type Spec struct {
	Waveform Waveform
	Segments []Segment
	// Vibrato modulates the frequency, giving the whistle its trill
	VibratoHz    float64
	VibratoDepth float64 // fraction of the base frequency
	AttackSec    float64
	ReleaseSec   float64
}

// Amplitude leaves headroom so overlapping effects do not clip.
const Amplitude = 0.6

const (
	channels       = 2
	bytesPerSample = 2
	// BytesPerFrame is the size of one stereo 16-bit frame.
	BytesPerFrame = channels * bytesPerSample
)

var ErrEmpty = errors.New("tone has no duration")

// Duration returns the total length of the sound in seconds.
func (s Spec) Duration() float64 {
	total := 0.0
	for _, seg := range s.Segments {
		if seg.Seconds > 0 {
			total += seg.Seconds
		}
	}
	return total
}

// Synthesize renders s as signed 16-bit little-endian stereo PCM, the
// format ebiten's audio players consume.
func Synthesize(s Spec, sampleRate int) ([]byte, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("invalid sample rate %d", sampleRate)
	}
	total := int(s.Duration() * float64(sampleRate))
	if total == 0 {
		return nil, ErrEmpty
	}

	buf := make([]byte, total*BytesPerFrame)
	attack := int(s.AttackSec * float64(sampleRate))
	release := int(s.ReleaseSec * float64(sampleRate))

	frame := 0
	phase := 0.0
	for _, seg := range s.Segments {
		n := int(seg.Seconds * float64(sampleRate))
		for i := 0; i < n && frame < total; i++ {
			v := 0.0
			if seg.Frequency > 0 {
				t := float64(frame) / float64(sampleRate)
				f := seg.Frequency
				if s.VibratoHz > 0 {
					f *= 1 + s.VibratoDepth*math.Sin(2*math.Pi*s.VibratoHz*t)
				}
				phase += f / float64(sampleRate)
				phase -= math.Floor(phase)
				v = oscillate(s.Waveform, phase)
			}
			v *= envelope(frame, total, attack, release) * Amplitude

			sample := int16(v * math.MaxInt16)
			off := frame * BytesPerFrame
			binary.LittleEndian.PutUint16(buf[off:], uint16(sample))
			binary.LittleEndian.PutUint16(buf[off+bytesPerSample:], uint16(sample))
			frame++
		}
	}
	return buf[:frame*BytesPerFrame], nil
}

// oscillate returns the waveform value in [-1, 1] at phase p in [0, 1).
func oscillate(w Waveform, p float64) float64 {
	switch w {
	case Square:
		if p < 0.5 {
			return 1
		}
		return -1
	case Triangle:
		return 4*math.Abs(p-0.5) - 1
	default:
		return math.Sin(2 * math.Pi * p)
	}
}

func envelope(frame, total, attack, release int) float64 {
	g := 1.0
	if attack > 0 && frame < attack {
		g = float64(frame) / float64(attack)
	}
	if remaining := total - frame; release > 0 && remaining < release {
		g = math.Min(g, float64(remaining)/float64(release))
	}
	return g
}
