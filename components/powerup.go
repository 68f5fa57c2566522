package components

import (
	"github.com/yohamta/donburi"
)

type PowerUpKind int

const (
	PowerDash PowerUpKind = iota
	PowerTornado
)

func (k PowerUpKind) String() string {
	if k == PowerTornado {
		return "tornado"
	}
	return "dash"
}

type PowerUpData struct {
	Kind     PowerUpKind
	BaseY    float64 // bob baseline
	BobTimer float64
}

var PowerUp = donburi.NewComponentType[PowerUpData]()
