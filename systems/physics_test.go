package systems

import (
	"math"
	"testing"

	"github.com/automoto/ronin-dash/components"
	cfg "github.com/automoto/ronin-dash/config"
	"github.com/automoto/ronin-dash/systems/factory"
)

func TestObstaclesScrollWithEffectiveSpeed(t *testing.T) {
	e := newTestWorld(t, 1)
	sd := testSession(t, e)
	sd.EffectiveSpeed = 10

	entry := factory.SpawnGroundObstacle(e, "rock", 500)
	obj := components.Object.Get(entry)

	UpdatePhysics(e)

	if obj.X != 490 {
		t.Errorf("expected x=490 after one frame, got %v", obj.X)
	}
}

func TestSpeedMultiplierApplies(t *testing.T) {
	e := newTestWorld(t, 1)
	sd := testSession(t, e)
	sd.EffectiveSpeed = 10

	boulder := factory.SpawnGroundObstacle(e, "boulder", 500)
	obj := components.Object.Get(boulder)
	mul := components.Obstacle.Get(boulder).SpeedMul

	UpdatePhysics(e)

	want := 500 - 10*mul
	if math.Abs(obj.X-want) > 1e-9 {
		t.Errorf("expected x=%v with multiplier %v, got %v", want, mul, obj.X)
	}
}

func TestOffscreenObstacleDespawns(t *testing.T) {
	e := newTestWorld(t, 1)
	sd := testSession(t, e)
	sd.EffectiveSpeed = 10

	entry := factory.SpawnGroundObstacle(e, "rock", 500)
	components.Object.Get(entry).X = cfg.World.ObstacleDespawnX + 5

	UpdatePhysics(e)
	if countObstacles(e) != 0 {
		t.Error("expected obstacle pruned after crossing the despawn line")
	}
}

func TestBoulderSpins(t *testing.T) {
	e := newTestWorld(t, 1)
	sd := testSession(t, e)
	sd.EffectiveSpeed = 10

	boulder := factory.SpawnGroundObstacle(e, "boulder", 500)
	sprite := components.Sprite.Get(boulder)

	UpdatePhysics(e)

	if sprite.Rotation == 0 {
		t.Error("expected the boulder to rotate while scrolling")
	}
}

func TestPowerUpBobsAroundBaseline(t *testing.T) {
	e := newTestWorld(t, 1)
	sd := testSession(t, e)
	sd.EffectiveSpeed = 5

	entry := factory.SpawnPowerUp(e, 500, components.PowerDash)
	pu := components.PowerUp.Get(entry)
	obj := components.Object.Get(entry)

	for i := 0; i < 30; i++ {
		UpdatePhysics(e)
		if math.Abs(obj.Y-pu.BaseY) > cfg.PowerUps.BobAmplitude+1e-9 {
			t.Fatalf("bob exceeded amplitude: y=%v base=%v", obj.Y, pu.BaseY)
		}
	}

	if obj.X != 500-30*5 {
		t.Errorf("expected x=%v, got %v", 500-30*5, obj.X)
	}
}

func TestDragonAnimationAdvances(t *testing.T) {
	e := newTestWorld(t, 1)
	sd := testSession(t, e)
	sd.EffectiveSpeed = 5

	dragon := factory.SpawnDragon(e, 500, 0, components.DragonRed)
	od := components.Obstacle.Get(dragon)

	UpdatePhysics(e)

	if od.FrameIdx == 0 {
		t.Error("expected the wing animation to advance")
	}
}
