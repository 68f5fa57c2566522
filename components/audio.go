package components

import (
	cfg "github.com/automoto/ronin-dash/config"
	"github.com/yohamta/donburi"
)

type AudioData struct {
	PendingSFX []cfg.SoundID
}

// Queue schedules a sound effect for the audio system to play this frame.
func (a *AudioData) Queue(id cfg.SoundID) {
	a.PendingSFX = append(a.PendingSFX, id)
}

var Audio = donburi.NewComponentType[AudioData]()
