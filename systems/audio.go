package systems

import (
	"log"

	"github.com/automoto/tablescore/assets"
	"github.com/automoto/tablescore/components"
	cfg "github.com/automoto/tablescore/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// AudioEngine owns the process-wide audio context. ebiten allows one
// context per process, so it is created once by the Runtime.
type AudioEngine struct {
	context   *audio.Context
	loader    *assets.AudioLoader
	sfxVolume float64
	muted     bool
}

// NewAudioEngine creates the audio context and renders every sound up front.
func NewAudioEngine() *AudioEngine {
	ctx := audio.NewContext(cfg.Audio.SampleRate)
	a := &AudioEngine{
		context:   ctx,
		loader:    assets.NewAudioLoader(ctx),
		sfxVolume: cfg.Audio.DefaultSFXVol,
	}
	a.preloadAll()
	return a
}

// preloadAll synthesizes all sound effects at startup to avoid lag on first play.
func (a *AudioEngine) preloadAll() {
	for id := range cfg.Sound.Tones {
		if err := a.loader.PreloadSFX(id); err != nil {
			log.Printf("[audio] Warning: %v", err)
		}
	}
}

// Play starts a sound effect immediately.
func (a *AudioEngine) Play(soundID cfg.SoundID) {
	if a == nil || a.muted || a.sfxVolume <= 0 {
		return
	}

	player, err := a.loader.LoadSFX(soundID)
	if err != nil {
		log.Printf("[audio] Warning: %v", err)
		return
	}

	volume := a.sfxVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}

	player.SetVolume(volume)
	player.Play()
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func (a *AudioEngine) SetSFXVolume(volume float64) {
	a.sfxVolume = volume
}

// SFXVolume returns the current SFX volume (0.0 - 1.0)
func (a *AudioEngine) SFXVolume() float64 {
	return a.sfxVolume
}

func (a *AudioEngine) SetMuted(muted bool) {
	a.muted = muted
}

func (a *AudioEngine) Muted() bool {
	return a.muted
}

// NewUpdateAudio creates the system that plays the sounds queued this frame.
func NewUpdateAudio(rt *Runtime) ecs.System {
	return func(e *ecs.ECS) {
		entry, ok := components.Audio.First(e.World)
		if !ok {
			return
		}
		audioData := components.Audio.Get(entry)
		for _, soundID := range audioData.PendingSFX {
			rt.Audio.Play(soundID)
		}
		audioData.PendingSFX = audioData.PendingSFX[:0]
	}
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
