package components

import (
	cfg "github.com/automoto/ronin-dash/config"
	"github.com/yohamta/donburi"
)

type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool

	MouseJustPressed bool
	MouseX, MouseY   int
}

func (i *InputData) Pressed(a cfg.ActionID) bool {
	return i.Current[a]
}

func (i *InputData) JustPressed(a cfg.ActionID) bool {
	return i.Current[a] && !i.Previous[a]
}

func (i *InputData) JustReleased(a cfg.ActionID) bool {
	return !i.Current[a] && i.Previous[a]
}

var Input = donburi.NewComponentType[InputData]()
