package scenes

import (
	"sync"
	"time"

	"github.com/automoto/ronin-dash/assets"
	"github.com/automoto/ronin-dash/components"
	cfg "github.com/automoto/ronin-dash/config"
	"github.com/automoto/ronin-dash/systems"
	"github.com/automoto/ronin-dash/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ImagesDir is scanned for sprite overrides at run start. Missing files
// fall back to the built-in procedural art.
const ImagesDir = "assets/images"

// RunnerScene runs a single endless-runner session
type RunnerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	startNight   bool
	once         sync.Once
}

// NewRunnerScene creates a new runner scene. startNight begins the run
// in the night phase of the cycle.
func NewRunnerScene(sc SceneChanger, startNight bool) *RunnerScene {
	return &RunnerScene{sceneChanger: sc, startNight: startNight}
}

func (rs *RunnerScene) Update() {
	rs.once.Do(rs.configure)
	rs.ecs.Update()

	if rs.checkGameOver() {
		rs.sceneChanger.ChangeScene(rs.newGameOverScene())
	}
}

// checkGameOver reports whether the session ended this frame.
func (rs *RunnerScene) checkGameOver() bool {
	if rs.ecs == nil {
		return false
	}

	entry, ok := components.Session.First(rs.ecs.World)
	if !ok {
		return false
	}
	return components.Session.Get(entry).State == cfg.SessionGameOver
}

func (rs *RunnerScene) newGameOverScene() *GameOverScene {
	entry, _ := components.Session.First(rs.ecs.World)
	sd := components.Session.Get(entry)

	return NewGameOverScene(rs.sceneChanger, GameOverResult{
		FinalScore: int(sd.Score),
		HighScore:  sd.HighScore,
		NewRecord:  sd.NewRecord,
		StartNight: rs.startNight,
	})
}

func (rs *RunnerScene) Draw(screen *ebiten.Image) {
	if rs.ecs == nil {
		return
	}
	rs.ecs.Draw(screen)
}

func (rs *RunnerScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first so queued cues from the previous frame play)
	e.AddSystem(systems.UpdateAudio)
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateControls)
	e.AddSystem(systems.UpdateSession)
	e.AddSystem(systems.UpdateEnvironment)
	e.AddSystem(systems.UpdatePlayer)
	e.AddSystem(systems.UpdateSpawn)
	e.AddSystem(systems.UpdateParticles)
	e.AddSystem(systems.UpdatePhysics)
	e.AddSystem(systems.UpdateTornado)
	e.AddSystem(systems.UpdateCollisions)

	e.AddRenderer(cfg.Default, systems.DrawEnvironment)
	e.AddRenderer(cfg.Default, systems.DrawSprites)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.Default, systems.DrawHUD)

	rs.ecs = e

	factory.CreateSpace(rs.ecs)
	factory.CreateCatalog(rs.ecs, assets.Load(ImagesDir))

	seed := SeedOverride
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	factory.CreateSession(rs.ecs, seed, systems.LoadHighScore())

	factory.CreatePlayer(rs.ecs)
	envEntry := factory.CreateEnvironment(rs.ecs)

	if rs.startNight {
		env := components.Environment.Get(envEntry)
		env.IsDay = false
		env.Sky = cfg.Cycle.NightSky
		env.BgBlend = 0.0
	}
}
