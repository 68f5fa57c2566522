package systems

import (
	"image/color"
	"math/rand"

	"github.com/automoto/ronin-dash/archetypes"
	"github.com/automoto/ronin-dash/components"
	cfg "github.com/automoto/ronin-dash/config"
	"github.com/yohamta/donburi/ecs"
)

var (
	dustColor    = color.RGBA{R: 180, G: 160, B: 130, A: 255}
	sparkleColor = color.RGBA{R: 255, G: 230, B: 120, A: 255}
	debrisColor  = color.RGBA{R: 130, G: 110, B: 90, A: 255}
	petalColor   = color.RGBA{R: 255, G: 183, B: 197, A: 255}
	sparkColor   = color.RGBA{R: 255, G: 170, B: 80, A: 255}
)

func spawnParticle(e *ecs.ECS, data components.ParticleData) {
	entry := archetypes.Particle.Spawn(e)
	components.Particle.SetValue(entry, data)
}

func particleRng(e *ecs.ECS) *rand.Rand {
	sd, ok := sessionData(e)
	if !ok {
		return nil
	}
	return sd.Rng
}

// decayRange is the shared particle lifetime band.
func decayRange(rng *rand.Rand) float64 {
	return 0.02 + rng.Float64()*0.03
}

// SpawnRunDust kicks a single puff off the ground behind the feet.
func SpawnRunDust(e *ecs.ECS, x, y float64) {
	rng := particleRng(e)
	if rng == nil {
		return
	}
	spawnParticle(e, components.ParticleData{
		Kind:  components.ParticleDust,
		X:     x + rng.Float64()*8 - 4,
		Y:     y,
		VelX:  -1 - rng.Float64(),
		VelY:  -0.5 * rng.Float64(),
		Life:  1.0,
		Decay: decayRange(rng),
		Size:  3 + rng.Float64()*3,
		Color: dustColor,
	})
}

// SpawnJumpDust bursts three puffs at takeoff.
func SpawnJumpDust(e *ecs.ECS, x, y float64) {
	rng := particleRng(e)
	if rng == nil {
		return
	}
	for i := 0; i < 3; i++ {
		spawnParticle(e, components.ParticleData{
			Kind:  components.ParticleDust,
			X:     x + rng.Float64()*16 - 8,
			Y:     y,
			VelX:  rng.Float64()*2 - 1,
			VelY:  -rng.Float64(),
			Life:  1.0,
			Decay: decayRange(rng),
			Size:  3 + rng.Float64()*3,
			Color: dustColor,
		})
	}
}

// SpawnSparkles scatters n glints around (x, y); used for the double jump
// and power-up pickups.
func SpawnSparkles(e *ecs.ECS, x, y float64, n int) {
	rng := particleRng(e)
	if rng == nil {
		return
	}
	for i := 0; i < n; i++ {
		spawnParticle(e, components.ParticleData{
			Kind:  components.ParticleSparkle,
			X:     x,
			Y:     y,
			VelX:  rng.Float64()*3 - 1.5,
			VelY:  rng.Float64()*3 - 1.5,
			Life:  1.0,
			Decay: decayRange(rng),
			Size:  2 + rng.Float64()*2,
			Color: sparkleColor,
		})
	}
}

// SpawnDebris throws chunks from a destroyed obstacle; they arc under
// gravity unlike the other particle kinds.
func SpawnDebris(e *ecs.ECS, x, y float64, n int) {
	rng := particleRng(e)
	if rng == nil {
		return
	}
	for i := 0; i < n; i++ {
		spawnParticle(e, components.ParticleData{
			Kind:    components.ParticleDebris,
			X:       x,
			Y:       y,
			VelX:    rng.Float64()*4 - 2,
			VelY:    -1 - rng.Float64()*2,
			Gravity: 0.4,
			Life:    1.0,
			Decay:   decayRange(rng),
			Size:    3 + rng.Float64()*4,
			Color:   debrisColor,
		})
	}
}

// SpawnPetal drifts a cherry petal down from above the screen.
func SpawnPetal(e *ecs.ECS, x float64) {
	rng := particleRng(e)
	if rng == nil {
		return
	}
	spawnParticle(e, components.ParticleData{
		Kind:  components.ParticlePetal,
		X:     x,
		Y:     -10,
		VelX:  -0.5 - rng.Float64(),
		VelY:  1 + rng.Float64(),
		Life:  1.0,
		Decay: 0.002 + rng.Float64()*0.002,
		Size:  4 + rng.Float64()*3,
		Color: petalColor,
	})
}

// SpawnSpark floats an ember up from the bottom during night.
func SpawnSpark(e *ecs.ECS, x float64) {
	rng := particleRng(e)
	if rng == nil {
		return
	}
	spawnParticle(e, components.ParticleData{
		Kind:  components.ParticleSpark,
		X:     x,
		Y:     float64(cfg.C.Height),
		VelX:  rng.Float64() - 0.5,
		VelY:  -1 - rng.Float64(),
		Life:  1.0,
		Decay: 0.002 + rng.Float64()*0.002,
		Size:  2 + rng.Float64()*2,
		Color: sparkColor,
	})
}
