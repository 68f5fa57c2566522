package archetypes

import (
	"github.com/automoto/ronin-dash/components"
	cfg "github.com/automoto/ronin-dash/config"
	"github.com/automoto/ronin-dash/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.State,
		components.Sprite,
	)
	Obstacle = newArchetype(
		tags.Obstacle,
		components.Obstacle,
		components.Object,
		components.Sprite,
	)
	PowerUp = newArchetype(
		tags.PowerUp,
		components.PowerUp,
		components.Object,
		components.Sprite,
	)
	Particle = newArchetype(
		tags.Particle,
		components.Particle,
	)
	Session = newArchetype(
		components.Session,
	)
	Environment = newArchetype(
		components.Environment,
	)
	Input = newArchetype(
		components.Input,
	)
	Audio = newArchetype(
		components.Audio,
	)
	Space = newArchetype(
		components.Space,
	)
	Catalog = newArchetype(
		components.Catalog,
	)
	GameOver = newArchetype(
		components.GameOver,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
