package systems

import (
	"math"

	"github.com/automoto/ronin-dash/assets"
	"github.com/automoto/ronin-dash/components"
	cfg "github.com/automoto/ronin-dash/config"
	"github.com/automoto/ronin-dash/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlayerHitbox is the deliberately forgiving pickup box, inset from the
// sprite rect on every side.
func PlayerHitbox(obj *components.ObjectData) (x, y, w, h float64) {
	return obj.X + cfg.Player.HitboxInsetX,
		obj.Y + cfg.Player.HitboxInsetY,
		obj.W - 2*cfg.Player.HitboxInsetX,
		obj.H - 2*cfg.Player.HitboxInsetY
}

func rectsOverlap(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return ax < bx+bw && bx < ax+aw && ay < by+bh && by < ay+ah
}

// UpdateTornado spends a ready tornado charge on the nearest obstacle
// ahead of the player, before any contact happens. Runs ahead of the
// collision system so the destroy wins over a same-frame hit.
func UpdateTornado(e *ecs.ECS) {
	sd, ok := sessionData(e)
	if !ok || sd.State != cfg.SessionPlaying {
		return
	}
	entry, ok := playerEntry(e)
	if !ok {
		return
	}
	pd := components.Player.Get(entry)
	if !pd.TornadoReady {
		return
	}
	playerObj := components.Object.Get(entry)
	minX := playerObj.X + cfg.World.TornadoMinLead

	var target *donburi.Entry
	targetX := math.Inf(1)
	tags.Obstacle.Each(e.World, func(obstacle *donburi.Entry) {
		obj := components.Object.Get(obstacle)
		if obj.X > minX && obj.X < targetX {
			targetX = obj.X
			target = obstacle
		}
	})
	if target == nil {
		return
	}

	destroyObstacle(e, sd, target)
	pd.TornadoReady = false
}

// UpdateCollisions resolves power-up pickups and obstacle contact. On
// contact the order is tornado destroy, then dash pass-through, then
// game over.
func UpdateCollisions(e *ecs.ECS) {
	sd, ok := sessionData(e)
	if !ok || sd.State != cfg.SessionPlaying {
		return
	}
	entry, ok := playerEntry(e)
	if !ok {
		return
	}
	pd := components.Player.Get(entry)
	playerObj := components.Object.Get(entry)
	cat, ok := catalogData(e)
	if !ok {
		return
	}

	hx, hy, hw, hh := PlayerHitbox(playerObj)

	var picked []*donburi.Entry
	tags.PowerUp.Each(e.World, func(powerup *donburi.Entry) {
		obj := components.Object.Get(powerup)
		if rectsOverlap(hx, hy, hw, hh, obj.X, obj.Y, obj.W, obj.H) {
			picked = append(picked, powerup)
		}
	})
	for _, powerup := range picked {
		pu := components.PowerUp.Get(powerup)
		obj := components.Object.Get(powerup)
		ActivatePowerUp(e, pu.Kind)
		SpawnSparkles(e, obj.X+obj.W/2, obj.Y+obj.H/2, 10)
		RemoveFromSpace(e, powerup)
		e.World.Remove(powerup.Entity())
	}

	playerSprite := cat.Sprite(PlayerSpriteName(pd))
	playerMask := assets.SpriteMask(playerSprite, 0, int(playerObj.W), int(playerObj.H))

	screenW := float64(cfg.C.Width)
	var fatal bool
	var destroyed []*donburi.Entry
	tags.Obstacle.Each(e.World, func(obstacle *donburi.Entry) {
		if fatal {
			return
		}
		obj := components.Object.Get(obstacle)
		if obj.X > screenW || obj.X+obj.W < 0 {
			return
		}
		if !rectsOverlap(playerObj.X, playerObj.Y, playerObj.W, playerObj.H,
			obj.X, obj.Y, obj.W, obj.H) {
			return
		}

		od := components.Obstacle.Get(obstacle)
		sprite := components.Sprite.Get(obstacle)
		mask := assets.SpriteMask(sprite.Sprite, int(od.FrameIdx), int(obj.W), int(obj.H))
		if !assets.Overlap(playerMask, int(playerObj.X), int(playerObj.Y),
			mask, int(obj.X), int(obj.Y)) {
			return
		}

		switch {
		case pd.TornadoReady:
			destroyed = append(destroyed, obstacle)
			pd.TornadoReady = false
		case pd.DashTimer > 0:
			// Dashing runs straight through.
		default:
			fatal = true
		}
	})

	for _, obstacle := range destroyed {
		destroyObstacle(e, sd, obstacle)
	}
	if fatal {
		endRun(sd)
	}
}

// destroyObstacle applies the tornado reward and removes the obstacle.
func destroyObstacle(e *ecs.ECS, sd *components.SessionData, obstacle *donburi.Entry) {
	obj := components.Object.Get(obstacle)
	sd.Score += cfg.World.TornadoBonus
	SpawnDebris(e, obj.X+obj.W/2, obj.Y+obj.H/2, 8)
	QueueSFX(e, cfg.SoundSlash)
	RemoveFromSpace(e, obstacle)
	e.World.Remove(obstacle.Entity())
}

// endRun freezes the session and persists a new high score.
func endRun(sd *components.SessionData) {
	sd.State = cfg.SessionGameOver
	if int(sd.Score) > sd.HighScore {
		sd.HighScore = int(sd.Score)
		sd.NewRecord = true
		SaveHighScore(sd.HighScore)
	}
}
