package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

type ParticleKind int

const (
	ParticlePetal ParticleKind = iota
	ParticleSpark
	ParticleDust
	ParticleSparkle
	ParticleDebris
)

// Particles are pure simulation state and never enter the resolv space.
type ParticleData struct {
	Kind    ParticleKind
	X, Y    float64
	VelX    float64
	VelY    float64
	Gravity float64 // per-tick velY increment, debris only
	Life    float64 // 1.0 at birth, removed at <= 0
	Decay   float64
	Size    float64
	Color   color.RGBA
}

var Particle = donburi.NewComponentType[ParticleData]()
