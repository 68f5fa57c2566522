package systems

import (
	"github.com/automoto/ronin-dash/archetypes"
	"github.com/automoto/ronin-dash/components"
	cfg "github.com/automoto/ronin-dash/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput polls the keyboard and mouse into the input singleton. It
// runs before every other system so the same edge-triggered state is
// visible to all of them for the rest of the frame.
func UpdateInput(e *ecs.ECS) {
	in := GetOrCreateInput(e)

	in.Previous = in.Current
	for action := cfg.ActionID(0); action < cfg.ActionCount; action++ {
		binding := cfg.Input.Bindings[action]
		down := false
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				down = true
				break
			}
		}
		in.Current[action] = down
	}

	in.MouseJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	in.MouseX, in.MouseY = ebiten.CursorPosition()
}

// GetOrCreateInput returns the singleton input component for this ECS.
func GetOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = archetypes.Input.Spawn(e)
		components.Input.SetValue(entry, components.InputData{})
	}
	return components.Input.Get(entry)
}
