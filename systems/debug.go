package systems

import (
	"image/color"

	"github.com/automoto/ronin-dash/components"
	cfg "github.com/automoto/ronin-dash/config"
	"github.com/automoto/ronin-dash/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collision rect when the overlay is toggled on.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	sd, ok := sessionData(e)
	if !ok || !sd.ShowHitboxes {
		return
	}

	if entry, ok := playerEntry(e); ok {
		obj := components.Object.Get(entry)
		strokeRect(screen, obj.X, obj.Y, obj.W, obj.H, cfg.LightBlue)
		hx, hy, hw, hh := PlayerHitbox(obj)
		strokeRect(screen, hx, hy, hw, hh, cfg.Gold)
	}

	tags.Obstacle.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		strokeRect(screen, obj.X, obj.Y, obj.W, obj.H, cfg.LightRed)
	})

	tags.PowerUp.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		strokeRect(screen, obj.X, obj.Y, obj.W, obj.H, cfg.Grass)
	})
}

func strokeRect(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.StrokeRect(screen,
		float32(x), float32(y), float32(w), float32(h),
		1, c, false)
}
