package systems

import (
	"github.com/automoto/ronin-dash/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Singleton component lookups shared by the systems in this package.

func sessionData(e *ecs.ECS) (*components.SessionData, bool) {
	entry, ok := components.Session.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Session.Get(entry), true
}

func environmentData(e *ecs.ECS) (*components.EnvironmentData, bool) {
	entry, ok := components.Environment.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Environment.Get(entry), true
}

func catalogData(e *ecs.ECS) (*components.CatalogData, bool) {
	entry, ok := components.Catalog.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Catalog.Get(entry), true
}

func spaceData(e *ecs.ECS) (*components.SpaceData, bool) {
	entry, ok := components.Space.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Space.Get(entry), true
}

func playerEntry(e *ecs.ECS) (*donburi.Entry, bool) {
	return components.Player.First(e.World)
}
