package systems

import (
	"math"

	"github.com/automoto/ronin-dash/components"
	cfg "github.com/automoto/ronin-dash/config"
	"github.com/automoto/ronin-dash/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics scrolls obstacles and power-ups with the effective speed,
// advances their animation state and prunes everything that left the
// screen.
func UpdatePhysics(e *ecs.ECS) {
	sd, ok := sessionData(e)
	if !ok || sd.State != cfg.SessionPlaying {
		return
	}

	var dead []*donburi.Entry

	tags.Obstacle.Each(e.World, func(entry *donburi.Entry) {
		od := components.Obstacle.Get(entry)
		obj := components.Object.Get(entry)
		sprite := components.Sprite.Get(entry)

		obj.X -= sd.EffectiveSpeed * od.SpeedMul
		obj.Update()

		if od.FrameStep > 0 {
			od.FrameIdx += od.FrameStep
		}
		if od.RotationStep != 0 {
			sprite.Rotation += od.RotationStep
		}

		if obj.X < cfg.World.ObstacleDespawnX {
			dead = append(dead, entry)
		}
	})

	tags.PowerUp.Each(e.World, func(entry *donburi.Entry) {
		pu := components.PowerUp.Get(entry)
		obj := components.Object.Get(entry)

		obj.X -= sd.EffectiveSpeed
		pu.BobTimer += cfg.PowerUps.BobStep
		obj.Y = pu.BaseY + math.Sin(pu.BobTimer)*cfg.PowerUps.BobAmplitude
		obj.Update()

		if obj.X < cfg.World.PowerUpDespawnX {
			dead = append(dead, entry)
		}
	})

	for _, entry := range dead {
		RemoveFromSpace(e, entry)
		e.World.Remove(entry.Entity())
	}
}

// RemoveFromSpace detaches the entry's resolv object before the entity is
// destroyed.
func RemoveFromSpace(e *ecs.ECS, entry *donburi.Entry) {
	if !entry.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(entry)
	if obj.Object == nil {
		return
	}
	if space, ok := spaceData(e); ok {
		space.Remove(obj.Object)
	}
}
