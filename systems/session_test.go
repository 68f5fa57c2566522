package systems

import (
	"math"
	"testing"

	"github.com/automoto/ronin-dash/components"
	cfg "github.com/automoto/ronin-dash/config"
)

func TestScoreAccumulates(t *testing.T) {
	e := newTestWorld(t, 1)
	sd := testSession(t, e)

	for i := 0; i < 10; i++ {
		UpdateSession(e)
	}

	want := 10 * cfg.World.ScorePerFrame
	if math.Abs(sd.Score-want) > 1e-9 {
		t.Errorf("expected score %v, got %v", want, sd.Score)
	}
	if sd.FrameCount != 10 {
		t.Errorf("expected frame count 10, got %d", sd.FrameCount)
	}
}

func TestSpeedRampClamps(t *testing.T) {
	e := newTestWorld(t, 1)
	sd := testSession(t, e)

	if sd.Speed != cfg.World.StartSpeed {
		t.Fatalf("expected start speed %v, got %v", cfg.World.StartSpeed, sd.Speed)
	}

	UpdateSession(e)
	want := cfg.World.StartSpeed + cfg.World.SpeedIncrement
	if math.Abs(sd.Speed-want) > 1e-9 {
		t.Errorf("expected speed %v after one frame, got %v", want, sd.Speed)
	}

	sd.Speed = cfg.World.MaxSpeed - cfg.World.SpeedIncrement/2
	UpdateSession(e)
	UpdateSession(e)
	if sd.Speed != cfg.World.MaxSpeed {
		t.Errorf("expected speed clamped to %v, got %v", cfg.World.MaxSpeed, sd.Speed)
	}
}

func TestMilestoneCueFiresOncePerCrossing(t *testing.T) {
	e := newTestWorld(t, 1)
	sd := testSession(t, e)
	audio := GetOrCreateAudio(e)

	sd.Score = float64(cfg.World.MilestoneStep) - cfg.World.ScorePerFrame/2

	for i := 0; i < 20; i++ {
		UpdateSession(e)
	}

	cues := 0
	for _, id := range audio.PendingSFX {
		if id == cfg.SoundScore {
			cues++
		}
	}
	if cues != 1 {
		t.Errorf("expected exactly one milestone cue, got %d", cues)
	}
	if sd.LastMilestone != cfg.World.MilestoneStep {
		t.Errorf("expected milestone watermark %d, got %d", cfg.World.MilestoneStep, sd.LastMilestone)
	}
}

func TestDashBoostsEffectiveSpeed(t *testing.T) {
	e := newTestWorld(t, 1)
	sd := testSession(t, e)
	pd, _ := testPlayer(t, e)

	UpdateSession(e)
	if sd.EffectiveSpeed != sd.Speed {
		t.Errorf("expected effective speed %v without dash, got %v", sd.Speed, sd.EffectiveSpeed)
	}

	pd.DashTimer = 10
	UpdateSession(e)
	want := sd.Speed * cfg.World.DashBoost
	if math.Abs(sd.EffectiveSpeed-want) > 1e-9 {
		t.Errorf("expected boosted speed %v, got %v", want, sd.EffectiveSpeed)
	}
}

func TestSessionFrozenOutsidePlaying(t *testing.T) {
	e := newTestWorld(t, 1)
	sd := testSession(t, e)
	sd.State = cfg.SessionGameOver

	UpdateSession(e)

	if sd.Score != 0 || sd.FrameCount != 0 {
		t.Error("session advanced while the run was over")
	}
}

func TestSeededRunsReplayIdentically(t *testing.T) {
	runFrames := func(seed int64) ([]float64, float64) {
		e := newTestWorld(t, seed)
		for i := 0; i < 300; i++ {
			UpdateSession(e)
			UpdateSpawn(e)
			UpdatePhysics(e)
		}

		var xs []float64
		for _, entry := range obstacleEntries(e) {
			xs = append(xs, components.Object.Get(entry).X)
		}
		return xs, testSession(t, e).Score
	}

	xsA, scoreA := runFrames(42)
	xsB, scoreB := runFrames(42)

	if scoreA != scoreB {
		t.Errorf("scores diverged: %v vs %v", scoreA, scoreB)
	}
	if len(xsA) != len(xsB) {
		t.Fatalf("obstacle counts diverged: %d vs %d", len(xsA), len(xsB))
	}
	for i := range xsA {
		if xsA[i] != xsB[i] {
			t.Errorf("obstacle %d position diverged: %v vs %v", i, xsA[i], xsB[i])
		}
	}
}
