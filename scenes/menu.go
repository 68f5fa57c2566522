package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/ronin-dash/config"
	"github.com/automoto/ronin-dash/systems"
	"github.com/automoto/ronin-dash/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// SeedOverride, when non-zero, fixes the session seed for every run.
// Set from the tuning file before the first scene is created.
var SeedOverride int64

// MenuScene displays the title screen
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	menuUI       *ui.MenuUI
	startNight   bool
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.menuUI.UI.Update()
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	createRunnerScene := func() interface{} {
		return NewRunnerScene(ms.sceneChanger, ms.startNight)
	}

	ms.menuUI = ui.NewMenuUI(
		func() {
			ms.sceneChanger.ChangeScene(createRunnerScene())
		},
		func() bool {
			ms.startNight = !ms.startNight
			return ms.startNight
		},
	)

	// Audio system (runs first to initialize audio context)
	ms.ecs.AddSystem(systems.UpdateAudio)

	// Minimal systems for the menu
	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMenu(ms.sceneChanger, createRunnerScene))

	ms.ecs.AddRenderer(cfg.Default, systems.DrawMenu)
}
