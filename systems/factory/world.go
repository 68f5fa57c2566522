package factory

import (
	"math/rand"

	"github.com/automoto/ronin-dash/archetypes"
	"github.com/automoto/ronin-dash/assets"
	"github.com/automoto/ronin-dash/components"
	cfg "github.com/automoto/ronin-dash/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace builds the resolv space every collidable object lives in.
func CreateSpace(e *ecs.ECS) *donburi.Entry {
	entry := archetypes.Space.Spawn(e)
	components.Space.SetValue(entry, components.SpaceData{
		Space: resolv.NewSpace(cfg.C.Width, cfg.C.Height, 16, 16),
	})
	return entry
}

// CreateSession seeds the run-wide state. All simulation randomness flows
// through the session RNG, so a fixed seed replays a run exactly.
func CreateSession(e *ecs.ECS, seed int64, highScore int) *donburi.Entry {
	entry := archetypes.Session.Spawn(e)
	components.Session.SetValue(entry, components.SessionData{
		State:          cfg.SessionPlaying,
		Speed:          cfg.World.StartSpeed,
		EffectiveSpeed: cfg.World.StartSpeed,
		HighScore:      highScore,
		Rng:            rand.New(rand.NewSource(seed)),
		// Bamboo is allowed from the first spawn of a fresh run.
		LastBambooFrame: -cfg.Spawn.BambooFrameCooldown,
	})
	return entry
}

// CreateCatalog wraps the loaded sprite catalog as a singleton.
func CreateCatalog(e *ecs.ECS, catalog *assets.Catalog) *donburi.Entry {
	entry := archetypes.Catalog.Spawn(e)
	components.Catalog.SetValue(entry, components.CatalogData{Catalog: catalog})
	return entry
}
