package systems

import (
	"bytes"
	"sync"

	"github.com/automoto/ronin-dash/archetypes"
	"github.com/automoto/ronin-dash/assets"
	"github.com/automoto/ronin-dash/components"
	cfg "github.com/automoto/ronin-dash/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	cuePCM             map[cfg.SoundID][]byte
	audioInitOnce      sync.Once
)

// initGlobalAudio creates the audio context and renders every cue once.
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		cuePCM = make(map[cfg.SoundID][]byte, len(cfg.Audio.Cues))
		for id, spec := range cfg.Audio.Cues {
			cuePCM[id] = assets.SynthesizeCue(spec, cfg.Audio.SampleRate)
		}
	})
}

// UpdateAudio plays everything the frame queued.
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	for _, soundID := range audioData.PendingSFX {
		playSFX(soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(soundID cfg.SoundID) {
	if globalSFXVolume <= 0 {
		return
	}
	pcm, ok := cuePCM[soundID]
	if !ok || len(pcm) == 0 {
		return
	}

	player, err := globalAudioContext.NewPlayer(bytes.NewReader(pcm))
	if err != nil {
		return
	}

	volume := globalSFXVolume
	if mult, ok := cfg.Audio.VolumeOverrides[soundID]; ok {
		volume *= mult
	}
	player.SetVolume(volume)
	player.Play()
}

// QueueSFX queues a sound effect without touching the audio device, so
// simulation systems stay playable headless.
func QueueSFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.Queue(sound)
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(volume float64) {
	globalSFXVolume = volume
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = archetypes.Audio.Spawn(e)
		components.Audio.SetValue(entry, components.AudioData{
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
