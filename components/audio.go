package components

import (
	cfg "github.com/automoto/tablescore/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound effects for the current scene (singleton component).
// The audio system drains it once per frame.
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
