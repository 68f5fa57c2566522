package components

import (
	"github.com/automoto/ronin-dash/assets"
	"github.com/yohamta/donburi"
)

type SpriteData struct {
	Sprite   *assets.Sprite
	Rotation float64 // radians, boulder spin
}

var Sprite = donburi.NewComponentType[SpriteData]()
