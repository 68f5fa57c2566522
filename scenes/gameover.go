package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/ronin-dash/config"
	"github.com/automoto/ronin-dash/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameOverResult carries the final tally from the run that just ended.
type GameOverResult struct {
	FinalScore int
	HighScore  int
	NewRecord  bool

	// Preserved so retrying keeps the chosen starting phase.
	StartNight bool
}

// GameOverScene displays the game over screen
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	result       GameOverResult
	once         sync.Once
}

// NewGameOverScene creates a new game over scene
func NewGameOverScene(sc SceneChanger, result GameOverResult) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, result: result}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())

	createRunnerScene := func() interface{} {
		return NewRunnerScene(gs.sceneChanger, gs.result.StartNight)
	}

	// Audio system
	gs.ecs.AddSystem(systems.UpdateAudio)

	// Minimal systems for game over
	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.NewUpdateGameOver(gs.sceneChanger, createRunnerScene))

	gs.ecs.AddRenderer(cfg.Default, systems.DrawGameOver)

	gameOver := systems.GetOrCreateGameOver(gs.ecs)
	gameOver.FinalScore = gs.result.FinalScore
	gameOver.HighScore = gs.result.HighScore
	gameOver.NewRecord = gs.result.NewRecord

	// The fatal hit cue was queued in the run's world, which is gone by
	// the time this scene exists. Replay it here instead.
	systems.QueueSFX(gs.ecs, cfg.SoundHit)
}
