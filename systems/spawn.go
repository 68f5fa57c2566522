package systems

import (
	"math"

	"github.com/automoto/ronin-dash/assets"
	"github.com/automoto/ronin-dash/components"
	cfg "github.com/automoto/ronin-dash/config"
	"github.com/automoto/ronin-dash/systems/factory"
	"github.com/automoto/ronin-dash/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSpawn is the spawn director: one obstacle gate check, one
// power-up trial and one ambient-particle trial per frame.
func UpdateSpawn(e *ecs.ECS) {
	sd, ok := sessionData(e)
	if !ok || sd.State != cfg.SessionPlaying {
		return
	}
	cat, ok := catalogData(e)
	if !ok {
		return
	}
	rng := sd.Rng
	w := float64(cfg.C.Width)

	// The gate opens when no obstacle is live or the newest one has
	// scrolled a random distance into the screen.
	newestX := math.Inf(-1)
	bambooX := math.Inf(-1)
	live := 0
	tags.Obstacle.Each(e.World, func(entry *donburi.Entry) {
		live++
		obj := components.Object.Get(entry)
		if obj.X > newestX {
			newestX = obj.X
		}
		if components.Obstacle.Get(entry).Kind == components.KindBamboo && obj.X > bambooX {
			bambooX = obj.X
		}
	})

	gap := float64(cfg.Spawn.GapMin + rng.Intn(cfg.Spawn.GapMax-cfg.Spawn.GapMin))
	if live == 0 || newestX < w-gap {
		spawnX := w
		if live > 0 && newestX+cfg.Spawn.MinGapPx > spawnX {
			spawnX = newestX + cfg.Spawn.MinGapPx
		}
		spawnNextObstacle(e, sd, cat.Catalog, spawnX, bambooX)
	}

	if rng.Float64() < cfg.Spawn.PowerUpChance {
		kind := components.PowerDash
		if rng.Float64() < 0.5 {
			kind = components.PowerTornado
		}
		factory.SpawnPowerUp(e, w, kind)
	}

	if env, ok := environmentData(e); ok {
		if env.IsDay {
			if rng.Float64() < cfg.Spawn.PetalChance {
				SpawnPetal(e, rng.Float64()*w)
			}
		} else if rng.Float64() < cfg.Spawn.SparkChance {
			SpawnSpark(e, rng.Float64()*w)
		}
	}
}

// spawnNextObstacle picks what enters at spawnX. Priority: the one-time
// first-dragon guarantee, then the strict pools, then the legacy folder
// pool, then the procedural mix.
func spawnNextObstacle(e *ecs.ECS, sd *components.SessionData, cat *assets.Catalog, spawnX, liveBambooX float64) {
	rng := sd.Rng

	if cat.HasUserDragons() && !sd.FirstDragonSpawned && sd.FrameCount >= cfg.Spawn.FirstDragonFrame {
		pool := cat.UserDragons()
		factory.SpawnFlyingAsset(e, spawnX, rng.Intn(3), pool[rng.Intn(len(pool))])
		sd.FirstDragonSpawned = true
		sd.LastSpawnKind = "dragon"
		return
	}

	if cat.StrictMode() {
		ground, fly := cat.StrictGround(), cat.StrictFlying()
		useFly := len(ground) == 0 ||
			(len(fly) > 0 && rng.Float64() < cfg.Spawn.StrictFlyingChance)
		if useFly && len(fly) > 0 {
			factory.SpawnFlyingAsset(e, spawnX, rng.Intn(3), fly[rng.Intn(len(fly))])
			sd.FirstDragonSpawned = true
			sd.LastSpawnKind = "flying"
		} else {
			factory.SpawnGroundAsset(e, spawnX, ground[rng.Intn(len(ground))])
			sd.LastSpawnKind = "ground"
		}
		return
	}

	// Dragon assets always engage strict mode, so the folder pool is
	// ground-only by the time this branch is reachable.
	if folder := cat.FolderObstacles(); len(folder) > 0 {
		factory.SpawnGroundAsset(e, spawnX, folder[rng.Intn(len(folder))])
		sd.LastSpawnKind = "ground"
		return
	}

	r := rng.Float64()
	switch {
	case r < cfg.Spawn.RockWeight:
		factory.SpawnGroundObstacle(e, "rock", spawnX)
		sd.LastSpawnKind = "rock"

	case r < cfg.Spawn.BarrelWeight:
		factory.SpawnGroundObstacle(e, "barrel", spawnX)
		sd.LastSpawnKind = "barrel"

	case r < cfg.Spawn.BambooWeight:
		if bambooBlocked(sd, spawnX, liveBambooX) {
			// Degrade to a rock rather than skip the slot.
			factory.SpawnGroundObstacle(e, "rock", spawnX)
			sd.LastSpawnKind = "rock"
		} else {
			factory.SpawnGroundObstacle(e, "bamboo", spawnX)
			sd.LastSpawnKind = "bamboo"
			sd.LastBambooFrame = sd.FrameCount
		}

	case r < cfg.Spawn.DragonWeight:
		factory.SpawnDragon(e, spawnX, rng.Intn(3), pickDragonColor(sd))
		sd.LastSpawnKind = "dragon"

	default:
		if cat.HasBoulder() {
			factory.SpawnGroundObstacle(e, "boulder", spawnX)
			sd.LastSpawnKind = "boulder"
		} else {
			factory.SpawnGroundObstacle(e, "rock", spawnX)
			sd.LastSpawnKind = "rock"
		}
	}
}

// bambooBlocked enforces the bamboo spacing rules: never twice in a row,
// and no second stalk within the frame cooldown or within spitting
// distance of a live one.
func bambooBlocked(sd *components.SessionData, spawnX, liveBambooX float64) bool {
	if sd.LastSpawnKind == "bamboo" {
		return true
	}
	if sd.FrameCount-sd.LastBambooFrame < cfg.Spawn.BambooFrameCooldown {
		return true
	}
	if !math.IsInf(liveBambooX, -1) && spawnX-liveBambooX < cfg.Spawn.BambooDistCooldown {
		return true
	}
	return false
}

func pickDragonColor(sd *components.SessionData) components.DragonColor {
	w := cfg.Spawn.DragonColorWeights
	roll := sd.Rng.Intn(w[0] + w[1] + w[2])
	switch {
	case roll < w[0]:
		return components.DragonRed
	case roll < w[0]+w[1]:
		return components.DragonGreen
	}
	return components.DragonBlack
}

// DebugSpawnDragon forces a dragon just off the right edge. It bypasses
// the director on purpose and must not touch its bookkeeping.
func DebugSpawnDragon(e *ecs.ECS) {
	sd, ok := sessionData(e)
	if !ok || sd.State != cfg.SessionPlaying {
		return
	}
	cat, ok := catalogData(e)
	if !ok {
		return
	}
	x := float64(cfg.C.Width) + 10
	lane := sd.Rng.Intn(3)
	if cat.HasUserDragons() {
		pool := cat.UserDragons()
		factory.SpawnFlyingAsset(e, x, lane, pool[sd.Rng.Intn(len(pool))])
		return
	}
	factory.SpawnDragon(e, x, lane, pickDragonColor(sd))
}
