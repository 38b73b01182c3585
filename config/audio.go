package config

import "github.com/automoto/tablescore/shared/tone"

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// UI sounds
	SoundMenuNavigate
	SoundMenuSelect
	SoundMenuDenied
	// Scoreboard sounds
	SoundPoint
	SoundWhistle
	SoundHorn
	SoundClockExpired
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig maps sound IDs to their tone definitions
type SoundConfig struct {
	Tones             map[SoundID]tone.Spec
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.8,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]tone.Spec{
			SoundMenuNavigate: {
				Waveform:   tone.Square,
				Segments:   []tone.Segment{{Frequency: 660, Seconds: 0.04}},
				AttackSec:  0.002,
				ReleaseSec: 0.02,
			},
			SoundMenuSelect: {
				Waveform:   tone.Square,
				Segments:   []tone.Segment{{Frequency: 660, Seconds: 0.05}, {Frequency: 990, Seconds: 0.08}},
				AttackSec:  0.002,
				ReleaseSec: 0.03,
			},
			SoundMenuDenied: {
				Waveform:   tone.Square,
				Segments:   []tone.Segment{{Frequency: 220, Seconds: 0.08}, {Frequency: 0, Seconds: 0.03}, {Frequency: 180, Seconds: 0.1}},
				AttackSec:  0.002,
				ReleaseSec: 0.03,
			},
			SoundPoint: {
				Waveform:   tone.Triangle,
				Segments:   []tone.Segment{{Frequency: 880, Seconds: 0.07}},
				AttackSec:  0.002,
				ReleaseSec: 0.04,
			},
			SoundWhistle: {
				Waveform:     tone.Sine,
				Segments:     []tone.Segment{{Frequency: 2800, Seconds: 0.6}},
				VibratoHz:    28,
				VibratoDepth: 0.04,
				AttackSec:    0.01,
				ReleaseSec:   0.08,
			},
			SoundHorn: {
				Waveform:   tone.Square,
				Segments:   []tone.Segment{{Frequency: 233, Seconds: 0.9}},
				AttackSec:  0.02,
				ReleaseSec: 0.1,
			},
			SoundClockExpired: {
				Waveform:   tone.Square,
				Segments:   []tone.Segment{{Frequency: 440, Seconds: 0.25}, {Frequency: 0, Seconds: 0.1}, {Frequency: 440, Seconds: 0.25}, {Frequency: 0, Seconds: 0.1}, {Frequency: 440, Seconds: 0.5}},
				AttackSec:  0.005,
				ReleaseSec: 0.05,
			},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundMenuNavigate: 0.4,
			SoundMenuSelect:   0.5,
			SoundMenuDenied:   0.5,
			SoundPoint:        0.5,
			SoundHorn:         0.6,
		},
	}
}
