package components

import (
	cfg "github.com/automoto/ronin-dash/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  cfg.StateID
	PreviousState cfg.StateID
	StateTimer    int
}

var State = donburi.NewComponentType[StateData]()
