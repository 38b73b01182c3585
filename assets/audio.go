package assets

import (
	"bytes"
	"fmt"

	cfg "github.com/automoto/tablescore/config"
	"github.com/automoto/tablescore/shared/tone"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioLoader synthesizes and caches sound effects
type AudioLoader struct {
	sfxCache map[cfg.SoundID][]byte // Cache rendered PCM for SFX
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX renders a sound effect and caches it without creating a player.
// Call this at startup to avoid synthesis lag on first play.
func (l *AudioLoader) PreloadSFX(id cfg.SoundID) error {
	_, err := l.pcm(id)
	return err
}

// LoadSFX returns a new player for a sound effect each time.
func (l *AudioLoader) LoadSFX(id cfg.SoundID) (*audio.Player, error) {
	data, err := l.pcm(id)
	if err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(data))
}

func (l *AudioLoader) pcm(id cfg.SoundID) ([]byte, error) {
	if cached, ok := l.sfxCache[id]; ok {
		return cached, nil
	}

	spec, ok := cfg.Sound.Tones[id]
	if !ok {
		return nil, fmt.Errorf("no tone defined for sound %d", id)
	}

	data, err := tone.Synthesize(spec, l.context.SampleRate())
	if err != nil {
		return nil, fmt.Errorf("failed to synthesize sound %d: %w", id, err)
	}

	l.sfxCache[id] = data
	return data, nil
}
