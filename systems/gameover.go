package systems

import (
	"fmt"

	"github.com/automoto/ronin-dash/archetypes"
	"github.com/automoto/ronin-dash/components"
	cfg "github.com/automoto/ronin-dash/config"
	"github.com/automoto/ronin-dash/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateGameOver advances the overlay fade and restarts on confirm.
// There is deliberately no path back to the menu from here.
func NewUpdateGameOver(sceneChanger SceneChanger, createRunnerScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		gameOver := GetOrCreateGameOver(e)

		if gameOver.Fade != nil {
			v, done := gameOver.Fade.Update(tweenDT)
			gameOver.Alpha = float64(v)
			if done {
				gameOver.Fade = nil
			}
		}

		in := GetOrCreateInput(e)
		if in.JustPressed(cfg.ActionConfirm) || in.JustPressed(cfg.ActionJump) {
			sceneChanger.ChangeScene(createRunnerScene())
		}
	}
}

// DrawGameOver renders the fading overlay with the final tally.
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	gameOver := GetOrCreateGameOver(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	overlay := cfg.GameOver.OverlayColor
	overlay.A = uint8(gameOver.Alpha)
	vector.DrawFilledRect(
		screen,
		0, 0,
		float32(width), float32(height),
		overlay,
		false,
	)

	titleFont := fonts.Title.Get()
	title := "GAME OVER"
	titleWidth := len(title) * 8
	titleX := int((width - float64(titleWidth)) / 2)
	text.Draw(screen, title, titleFont, titleX, int(cfg.GameOver.TitleY), cfg.GameOver.TitleColor)

	bodyFont := fonts.Body.Get()
	lines := []string{
		fmt.Sprintf("SCORE %d", gameOver.FinalScore),
		fmt.Sprintf("BEST  %d", gameOver.HighScore),
	}
	if gameOver.NewRecord {
		lines = append(lines, "NEW RECORD")
	}
	lines = append(lines, "SPACE TO RETRY")

	for i, line := range lines {
		lineWidth := len(line) * 7
		x := int((width - float64(lineWidth)) / 2)
		text.Draw(screen, line, bodyFont, x, int(cfg.GameOver.TitleY)+30+i*20, cfg.GameOver.TextColor)
	}
}

// GetOrCreateGameOver returns the singleton overlay state, creating it
// with the fade primed.
func GetOrCreateGameOver(e *ecs.ECS) *components.GameOverData {
	if _, ok := components.GameOver.First(e.World); !ok {
		entry := archetypes.GameOver.Spawn(e)
		components.GameOver.SetValue(entry, components.GameOverData{
			Fade: gween.New(0, float32(cfg.GameOver.OverlayColor.A), cfg.GameOver.FadeSeconds, ease.OutQuad),
		})
	}

	entry, _ := components.GameOver.First(e.World)
	return components.GameOver.Get(entry)
}
