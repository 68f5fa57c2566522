package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	VelY     float64
	Airborne bool
	Ducking  bool

	// Double jump: the talisman item enables it, the charge is restored
	// on every landing and consumed in the air.
	DoubleJumpItem   bool
	DoubleJumpCharge bool

	DashTimer    int // frames of invulnerable speed boost remaining
	TornadoReady bool

	RunFrame int // current run-cycle frame
	RunTick  int // ticks since last run-frame flip
}

var Player = donburi.NewComponentType[PlayerData]()
