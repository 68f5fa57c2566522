package factory

import (
	"math"

	"github.com/automoto/ronin-dash/archetypes"
	"github.com/automoto/ronin-dash/assets"
	"github.com/automoto/ronin-dash/components"
	cfg "github.com/automoto/ronin-dash/config"
	"github.com/automoto/ronin-dash/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Dragon lanes, top edge relative to the ground. Low forces a jump, mid
// ducks under, high clears a standing runner.
var dragonLaneDrop = [3]float64{50, 120, 190}

const (
	dragonW = 80
	dragonH = 50

	// Asset dragons and strict flying variants scale to this height.
	flyingTargetH = 64
	flyingBaseY   = 140
	flyingLaneGap = 60
	flyingMul     = 0.95

	dragonFrameStep = 0.15
	boulderSpin     = -10 * math.Pi / 180
)

func spawnObstacleEntry(e *ecs.ECS, x, y, w, h float64, data components.ObstacleData, sprite *assets.Sprite) *donburi.Entry {
	entry := archetypes.Obstacle.Spawn(e)

	obj := resolv.NewObject(x, y, w, h)
	obj.AddTags(tags.ResolvObstacle)
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	components.Obstacle.SetValue(entry, data)
	components.Sprite.SetValue(entry, components.SpriteData{Sprite: sprite})

	if spaceEntry, ok := components.Space.First(e.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return entry
}

var groundKinds = map[string]components.ObstacleKind{
	"rock":    components.KindRock,
	"barrel":  components.KindBarrel,
	"bamboo":  components.KindBamboo,
	"boulder": components.KindBoulder,
}

// SpawnGroundObstacle creates one of the fixed-geometry kinds from the
// config table at spawn column x.
func SpawnGroundObstacle(e *ecs.ECS, kind string, x float64) *donburi.Entry {
	spec, ok := cfg.Obstacles[kind]
	if !ok {
		spec = cfg.Obstacles["rock"]
		kind = "rock"
	}

	catalogEntry, _ := components.Catalog.First(e.World)
	sprite := components.Catalog.Get(catalogEntry).Sprite(spec.Sprite)

	data := components.ObstacleData{
		Kind:     groundKinds[kind],
		SpeedMul: spec.SpeedMul,
	}
	if data.Kind == components.KindBoulder {
		data.RotationStep = boulderSpin
	}

	return spawnObstacleEntry(e,
		x+spec.OffsetX, cfg.World.GroundY-spec.Height,
		spec.Width, spec.Height,
		data, sprite)
}

// SpawnDragon creates a procedural dragon in the given lane.
func SpawnDragon(e *ecs.ECS, x float64, lane int, color components.DragonColor) *donburi.Entry {
	name := "dragon_red"
	mul := 1.0
	switch color {
	case components.DragonGreen:
		name = "dragon_green"
		mul = flyingMul
	case components.DragonBlack:
		name = "dragon_black"
	}

	catalogEntry, _ := components.Catalog.First(e.World)
	sprite := components.Catalog.Get(catalogEntry).Sprite(name)

	return spawnObstacleEntry(e,
		x, cfg.World.GroundY-dragonLaneDrop[lane%3],
		dragonW, dragonH,
		components.ObstacleData{
			Kind:      components.KindDragon,
			SpeedMul:  mul,
			Flying:    true,
			FrameStep: dragonFrameStep,
			Color:     color,
		}, sprite)
}

// SpawnFlyingAsset creates a dragon or strict flying variant from a user
// sprite, scaled to the flying target height with its aspect kept.
func SpawnFlyingAsset(e *ecs.ECS, x float64, lane int, name string) *donburi.Entry {
	catalogEntry, _ := components.Catalog.First(e.World)
	sprite := components.Catalog.Get(catalogEntry).Sprite(name)

	w, h := sprite.Size()
	outH := float64(flyingTargetH)
	outW := outH
	if h > 0 {
		outW = outH * float64(w) / float64(h)
	}

	top := cfg.World.GroundY - (flyingBaseY + flyingLaneGap*float64(lane%3))
	return spawnObstacleEntry(e,
		x, top, outW, outH,
		components.ObstacleData{
			Kind:      components.KindCustom,
			SpeedMul:  flyingMul,
			Flying:    true,
			FrameStep: dragonFrameStep,
		}, sprite)
}

// SpawnGroundAsset creates a ground obstacle from a user sprite. The
// hitbox height follows the opaque part of the art so padded images stay
// fair, clamped to a jumpable band.
func SpawnGroundAsset(e *ecs.ECS, x float64, name string) *donburi.Entry {
	catalogEntry, _ := components.Catalog.First(e.World)
	sprite := components.Catalog.Get(catalogEntry).Sprite(name)

	w, h := sprite.Size()
	outH := float64(sprite.VisibleHeight()) * 0.75
	if outH < 28 {
		outH = 28
	}
	if outH > 72 {
		outH = 72
	}
	outW := outH
	if h > 0 {
		outW = outH * float64(w) / float64(h)
	}

	return spawnObstacleEntry(e,
		x, cfg.World.GroundY-outH, outW, outH,
		components.ObstacleData{
			Kind:     components.KindCustom,
			SpeedMul: 1.0,
		}, sprite)
}

// SpawnPowerUp drops a ticket at the collect line; it bobs around the
// baseline until picked up or scrolled off.
func SpawnPowerUp(e *ecs.ECS, x float64, kind components.PowerUpKind) *donburi.Entry {
	entry := archetypes.PowerUp.Spawn(e)

	baseY := cfg.World.GroundY - cfg.PowerUps.BaselineDrop
	obj := resolv.NewObject(x, baseY, cfg.PowerUps.Size, cfg.PowerUps.Size)
	obj.AddTags(tags.ResolvPowerUp)
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})

	components.PowerUp.SetValue(entry, components.PowerUpData{
		Kind:  kind,
		BaseY: baseY,
	})

	spriteName := "ticket_dash"
	if kind == components.PowerTornado {
		spriteName = "ticket_tornado"
	}
	catalogEntry, _ := components.Catalog.First(e.World)
	components.Sprite.SetValue(entry, components.SpriteData{
		Sprite: components.Catalog.Get(catalogEntry).Sprite(spriteName),
	})

	if spaceEntry, ok := components.Space.First(e.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return entry
}
