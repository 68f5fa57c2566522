package components

import (
	"github.com/yohamta/donburi"
)

type ObstacleKind int

const (
	KindRock ObstacleKind = iota
	KindBarrel
	KindBamboo
	KindBoulder
	KindDragon
	KindCustom // user asset obstacle (strict or legacy folder pool)
)

func (k ObstacleKind) String() string {
	switch k {
	case KindRock:
		return "rock"
	case KindBarrel:
		return "barrel"
	case KindBamboo:
		return "bamboo"
	case KindBoulder:
		return "boulder"
	case KindDragon:
		return "dragon"
	case KindCustom:
		return "custom"
	}
	return "unknown"
}

type DragonColor int

const (
	DragonRed DragonColor = iota
	DragonGreen
	DragonBlack
)

type ObstacleData struct {
	Kind     ObstacleKind
	SpeedMul float64
	Flying   bool

	// Fractional animation frame; the displayed frame is int(FrameIdx)
	// modulo the sprite's frame count.
	FrameIdx  float64
	FrameStep float64

	RotationStep float64 // radians per tick, boulders only

	Color DragonColor // procedural dragons only
}

var Obstacle = donburi.NewComponentType[ObstacleData]()
