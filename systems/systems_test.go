package systems

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/automoto/ronin-dash/assets"
	"github.com/automoto/ronin-dash/components"
	"github.com/automoto/ronin-dash/systems/factory"
	"github.com/automoto/ronin-dash/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newTestWorld builds a headless run: empty catalog (procedural art only),
// seeded session, player standing on the ground.
func newTestWorld(t *testing.T, seed int64) *ecs.ECS {
	t.Helper()

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e)
	factory.CreateCatalog(e, assets.Load(t.TempDir()))
	factory.CreateSession(e, seed, 0)
	factory.CreatePlayer(e)
	factory.CreateEnvironment(e)
	return e
}

// newAssetWorld is newTestWorld with real PNG files in the catalog dir.
func newAssetWorld(t *testing.T, seed int64, names ...string) *ecs.ECS {
	t.Helper()

	dir := t.TempDir()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.SetRGBA(x, y, color.RGBA{G: 180, A: 255})
		}
	}
	for _, name := range names {
		f, err := os.Create(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
		if err := png.Encode(f, img); err != nil {
			f.Close()
			t.Fatalf("encode %s: %v", name, err)
		}
		f.Close()
	}

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e)
	factory.CreateCatalog(e, assets.Load(dir))
	factory.CreateSession(e, seed, 0)
	factory.CreatePlayer(e)
	factory.CreateEnvironment(e)
	return e
}

func testSession(t *testing.T, e *ecs.ECS) *components.SessionData {
	t.Helper()
	sd, ok := sessionData(e)
	if !ok {
		t.Fatal("no session entity")
	}
	return sd
}

func testPlayer(t *testing.T, e *ecs.ECS) (*components.PlayerData, *components.ObjectData) {
	t.Helper()
	entry, ok := playerEntry(e)
	if !ok {
		t.Fatal("no player entity")
	}
	return components.Player.Get(entry), components.Object.Get(entry)
}

func countObstacles(e *ecs.ECS) int {
	n := 0
	tags.Obstacle.Each(e.World, func(entry *donburi.Entry) { n++ })
	return n
}

func obstacleEntries(e *ecs.ECS) []*donburi.Entry {
	var out []*donburi.Entry
	tags.Obstacle.Each(e.World, func(entry *donburi.Entry) { out = append(out, entry) })
	return out
}

func countPowerUps(e *ecs.ECS) int {
	n := 0
	tags.PowerUp.Each(e.World, func(entry *donburi.Entry) { n++ })
	return n
}

func countParticles(e *ecs.ECS) int {
	n := 0
	tags.Particle.Each(e.World, func(entry *donburi.Entry) { n++ })
	return n
}
