package systems

import (
	"math"
	"testing"

	"github.com/automoto/ronin-dash/components"
	cfg "github.com/automoto/ronin-dash/config"
)

func TestFirstGateSpawnsImmediately(t *testing.T) {
	e := newTestWorld(t, 1)

	UpdateSpawn(e)

	if countObstacles(e) != 1 {
		t.Fatalf("expected one obstacle after the first gate check, got %d", countObstacles(e))
	}
	for _, entry := range obstacleEntries(e) {
		obj := components.Object.Get(entry)
		if obj.X < float64(cfg.C.Width) {
			t.Errorf("obstacle spawned on screen at x=%v", obj.X)
		}
	}
}

func TestGateHoldsWhileNewestAtEdge(t *testing.T) {
	e := newTestWorld(t, 1)

	UpdateSpawn(e)
	for i := 0; i < 5; i++ {
		UpdateSpawn(e)
	}

	// The newest obstacle has not scrolled at all, so the gate stays shut.
	if n := countObstacles(e); n != 1 {
		t.Errorf("expected the gate to hold at 1 obstacle, got %d", n)
	}
}

func TestSpawnRespectsGameOver(t *testing.T) {
	e := newTestWorld(t, 1)
	testSession(t, e).State = cfg.SessionGameOver

	UpdateSpawn(e)

	if countObstacles(e) != 0 || countPowerUps(e) != 0 {
		t.Error("spawn director ran after the session ended")
	}
}

func TestBambooBlocked(t *testing.T) {
	noLive := math.Inf(-1)
	tests := []struct {
		name        string
		lastKind    string
		framesSince int
		liveBambooX float64
		spawnX      float64
		want        bool
	}{
		{"clear", "rock", cfg.Spawn.BambooFrameCooldown + 1, noLive, 960, false},
		{"back to back", "bamboo", cfg.Spawn.BambooFrameCooldown + 1, noLive, 960, true},
		{"frame cooldown", "rock", cfg.Spawn.BambooFrameCooldown - 1, noLive, 960, true},
		{"live stalk too close", "rock", cfg.Spawn.BambooFrameCooldown + 1, 960 - cfg.Spawn.BambooDistCooldown + 1, 960, true},
		{"live stalk far enough", "rock", cfg.Spawn.BambooFrameCooldown + 1, 960 - cfg.Spawn.BambooDistCooldown - 1, 960, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sd := &components.SessionData{
				LastSpawnKind:   tt.lastKind,
				FrameCount:      tt.framesSince,
				LastBambooFrame: 0,
			}
			if got := bambooBlocked(sd, tt.spawnX, tt.liveBambooX); got != tt.want {
				t.Errorf("expected blocked=%v, got %v", tt.want, got)
			}
		})
	}
}

func TestBambooAllowedOnFreshRun(t *testing.T) {
	e := newTestWorld(t, 1)
	sd := testSession(t, e)

	// A new session must not serve the frame cooldown before the first stalk.
	if bambooBlocked(sd, float64(cfg.C.Width), math.Inf(-1)) {
		t.Error("bamboo blocked at the start of a fresh run")
	}
}

func TestPickDragonColorCoversAllColors(t *testing.T) {
	e := newTestWorld(t, 7)
	sd := testSession(t, e)

	seen := map[components.DragonColor]int{}
	for i := 0; i < 2000; i++ {
		seen[pickDragonColor(sd)]++
	}

	for _, c := range []components.DragonColor{
		components.DragonRed, components.DragonGreen, components.DragonBlack,
	} {
		if seen[c] == 0 {
			t.Errorf("color %v never drawn", c)
		}
	}
	if seen[components.DragonRed] <= seen[components.DragonBlack] {
		t.Errorf("expected red (weight %d) more common than black (weight %d): %v",
			cfg.Spawn.DragonColorWeights[0], cfg.Spawn.DragonColorWeights[2], seen)
	}
}

func TestProceduralMixOnlyKnownKinds(t *testing.T) {
	e := newTestWorld(t, 3)
	sd := testSession(t, e)
	sd.FrameCount = cfg.Spawn.FirstDragonFrame + 1

	allowed := map[string]bool{
		"rock": true, "barrel": true, "bamboo": true, "dragon": true,
	}
	for i := 0; i < 200; i++ {
		UpdateSpawn(e)
		if sd.LastSpawnKind != "" && !allowed[sd.LastSpawnKind] {
			t.Fatalf("unexpected spawn kind %q with no boulder asset", sd.LastSpawnKind)
		}
		// Clear the board so the gate reopens every frame.
		for _, entry := range obstacleEntries(e) {
			RemoveFromSpace(e, entry)
			e.World.Remove(entry.Entity())
		}
	}
}

func TestUserDragonAssetsForceFlyingSpawns(t *testing.T) {
	e := newAssetWorld(t, 9, "dragon.png")
	sd := testSession(t, e)
	sd.FrameCount = cfg.Spawn.FirstDragonFrame + 1

	for i := 0; i < 40; i++ {
		UpdateSpawn(e)
		for _, entry := range obstacleEntries(e) {
			od := components.Obstacle.Get(entry)
			if !od.Flying {
				t.Fatalf("grounded obstacle with only a dragon asset supplied (kind %v)", od.Kind)
			}
			RemoveFromSpace(e, entry)
			e.World.Remove(entry.Entity())
		}
	}
	if !sd.FirstDragonSpawned {
		t.Error("flying spawns never consumed the first-dragon guarantee")
	}
}

func TestStrictFlyingSpawnMarksFirstDragon(t *testing.T) {
	e := newAssetWorld(t, 2, "fly_crow.png")
	sd := testSession(t, e)

	UpdateSpawn(e)

	if sd.LastSpawnKind != "flying" {
		t.Fatalf("expected a flying spawn, got %q", sd.LastSpawnKind)
	}
	if !sd.FirstDragonSpawned {
		t.Error("flying spawn left the first-dragon guarantee pending")
	}
}

func TestDebugSpawnDragonBypassesDirector(t *testing.T) {
	e := newTestWorld(t, 1)
	sd := testSession(t, e)

	DebugSpawnDragon(e)

	entries := obstacleEntries(e)
	if len(entries) != 1 {
		t.Fatalf("expected one dragon, got %d obstacles", len(entries))
	}
	od := components.Obstacle.Get(entries[0])
	if od.Kind != components.KindDragon {
		t.Errorf("expected a dragon, got %v", od.Kind)
	}
	if !od.Flying {
		t.Error("expected the dragon to be flying")
	}
	if sd.LastSpawnKind != "" {
		t.Errorf("debug spawn touched director bookkeeping: %q", sd.LastSpawnKind)
	}
	if sd.FirstDragonSpawned {
		t.Error("debug spawn consumed the first-dragon guarantee")
	}
}
