package systems

import (
	"fmt"
	"image"

	"github.com/automoto/ronin-dash/components"
	cfg "github.com/automoto/ronin-dash/config"
	"github.com/automoto/ronin-dash/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// ToggleButtonRect is the clickable day/night switch in the top-right
// corner; UpdateControls hit-tests clicks against the same rect.
func ToggleButtonRect() image.Rectangle {
	x1 := cfg.C.Width - int(cfg.HUD.Margin)
	x0 := x1 - int(cfg.HUD.ToggleW)
	y0 := int(cfg.HUD.Margin)
	y1 := y0 + int(cfg.HUD.ToggleH)
	return image.Rect(x0, y0, x1, y1)
}

// DrawHUD renders score, high score, the dash meter, the tornado banner
// and the day/night toggle button.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	sd, ok := sessionData(e)
	if !ok {
		return
	}

	margin := int(cfg.HUD.Margin)
	face := fonts.Body.Get()

	text.Draw(screen, fmt.Sprintf("SCORE %d", int(sd.Score)), face, margin, margin+12, cfg.White)
	text.Draw(screen, fmt.Sprintf("HI %d", sd.HighScore), face, margin, margin+30, cfg.Grey)

	if entry, ok := playerEntry(e); ok {
		pd := components.Player.Get(entry)

		if pd.DashTimer > 0 {
			barW := float32(float64(pd.DashTimer) * cfg.HUD.DashBarScale / 3)
			vector.DrawFilledRect(screen,
				float32(margin), float32(margin+40),
				float32(float64(cfg.Player.DashFrames)*cfg.HUD.DashBarScale/3), 8,
				cfg.BlackOverlay, false)
			vector.DrawFilledRect(screen,
				float32(margin), float32(margin+40),
				barW, 8,
				cfg.LightBlue, false)
		}

		if pd.TornadoReady {
			text.Draw(screen, "TORNADO READY", face, margin, margin+66, cfg.Grey)
		}
	}

	drawToggleButton(e, screen)
}

func drawToggleButton(e *ecs.ECS, screen *ebiten.Image) {
	env, ok := environmentData(e)
	if !ok {
		return
	}
	r := ToggleButtonRect()

	vector.DrawFilledRect(screen,
		float32(r.Min.X), float32(r.Min.Y),
		float32(r.Dx()), float32(r.Dy()),
		cfg.BlackOverlay, false)

	label := "NIGHT (T)"
	if !env.IsDay {
		label = "DAY (T)"
	}
	face := fonts.Small.Get()
	text.Draw(screen, label, face, r.Min.X+10, r.Min.Y+r.Dy()/2+4, cfg.White)
}
