package systems

import (
	"fmt"

	cfg "github.com/automoto/ronin-dash/config"
	"github.com/automoto/ronin-dash/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateMenu creates the menu input system; confirm starts a run.
func NewUpdateMenu(sceneChanger SceneChanger, createRunnerScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		in := GetOrCreateInput(e)
		if in.JustPressed(cfg.ActionConfirm) || in.JustPressed(cfg.ActionJump) {
			sceneChanger.ChangeScene(createRunnerScene())
		}
	}
}

// DrawMenu renders the title screen text behind the UI buttons.
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.DrawFilledRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Menu.BackgroundColor,
		false,
	)

	titleFont := fonts.Title.Get()
	title := "RONIN DASH"
	titleWidth := len(title) * 8
	titleX := int((width - float64(titleWidth)) / 2)
	text.Draw(screen, title, titleFont, titleX, int(cfg.Menu.TitleY), cfg.Menu.TitleColor)

	hintFont := fonts.Small.Get()
	hints := []string{
		"SPACE / UP : jump, double jump",
		"DOWN       : duck",
		"T          : toggle day and night",
	}
	if hi := LoadHighScore(); hi > 0 {
		hints = append(hints, fmt.Sprintf("BEST       : %d", hi))
	}
	for i, hint := range hints {
		hintWidth := len(hint) * 7
		hintX := int((width - float64(hintWidth)) / 2)
		text.Draw(screen, hint, hintFont, hintX, int(cfg.Menu.HintY)+i*18, cfg.Menu.TextColorNormal)
	}
}
