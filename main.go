package main

import (
	"flag"
	"image"
	"log"
	"os"

	"github.com/automoto/ronin-dash/config"
	"github.com/automoto/ronin-dash/fonts"
	"github.com/automoto/ronin-dash/scenes"
	"github.com/automoto/ronin-dash/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// TuningPath is the optional gameplay override file next to the binary.
const TuningPath = "runner.yaml"

// FontPath is an optional TTF; without it everything renders with the
// built-in bitmap face.
const FontPath = "assets/fonts/runner.ttf"

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	if _, err := os.Stat(FontPath); err == nil {
		fonts.LoadFontFile(fonts.Title, FontPath, 32)
		fonts.LoadFontFile(fonts.Body, FontPath, 16)
		fonts.LoadFontFile(fonts.Small, FontPath, 12)
	}

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewRunnerScene(g, false)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	for _, key := range config.Input.Bindings[config.ActionQuit].Keys {
		if ebiten.IsKeyPressed(key) {
			return ebiten.Termination
		}
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.BoolVar(&config.Debug.SkipMenu, "skip-menu", false, "start a run immediately")
	flag.Parse()

	if tuning, err := config.LoadTuning(TuningPath); err != nil {
		log.Fatalf("Invalid tuning file %s: %v", TuningPath, err)
	} else if tuning != nil {
		scenes.SeedOverride = tuning.Seed
		log.Printf("Applied tuning overrides from %s", TuningPath)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Ronin Dash")

	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
