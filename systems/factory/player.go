package factory

import (
	"github.com/automoto/ronin-dash/archetypes"
	"github.com/automoto/ronin-dash/components"
	cfg "github.com/automoto/ronin-dash/config"
	"github.com/automoto/ronin-dash/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the ronin standing on the ground at the fixed
// start column.
func CreatePlayer(e *ecs.ECS) *donburi.Entry {
	player := archetypes.Player.Spawn(e)

	w := float64(cfg.Player.Width)
	h := float64(cfg.Player.Height)
	obj := resolv.NewObject(cfg.Player.StartX, cfg.World.GroundY-h, w, h)
	obj.AddTags(tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Player.SetValue(player, components.PlayerData{
		DoubleJumpCharge: true,
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.StateRunning,
		PreviousState: cfg.StateNone,
	})
	components.Sprite.SetValue(player, components.SpriteData{})

	if spaceEntry, ok := components.Space.First(e.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return player
}
