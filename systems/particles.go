package systems

import (
	"github.com/automoto/ronin-dash/components"
	cfg "github.com/automoto/ronin-dash/config"
	"github.com/automoto/ronin-dash/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateParticles integrates particle motion and removes expired ones.
func UpdateParticles(e *ecs.ECS) {
	sd, ok := sessionData(e)
	if !ok || sd.State != cfg.SessionPlaying {
		return
	}

	var dead []*donburi.Entry
	tags.Particle.Each(e.World, func(entry *donburi.Entry) {
		p := components.Particle.Get(entry)

		p.VelY += p.Gravity
		p.X += p.VelX
		p.Y += p.VelY
		p.Life -= p.Decay

		if p.Life <= 0 || p.Y > float64(cfg.C.Height)+20 || p.Y < -30 || p.X < -20 {
			dead = append(dead, entry)
		}
	})

	for _, entry := range dead {
		e.World.Remove(entry.Entity())
	}
}
