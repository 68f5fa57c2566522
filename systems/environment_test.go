package systems

import (
	"math"
	"testing"

	cfg "github.com/automoto/ronin-dash/config"
)

func TestCycleFlipsAtInterval(t *testing.T) {
	e := newTestWorld(t, 1)
	env, ok := environmentData(e)
	if !ok {
		t.Fatal("no environment entity")
	}

	env.CycleTimer = cfg.Cycle.Frames - 1
	UpdateEnvironment(e)

	if env.IsDay {
		t.Error("expected the cycle to flip to night")
	}
	if env.CycleTimer != 0 {
		t.Errorf("expected the timer restarted, got %d", env.CycleTimer)
	}

	env.CycleTimer = cfg.Cycle.Frames - 1
	UpdateEnvironment(e)
	if !env.IsDay {
		t.Error("expected the cycle to flip back to day")
	}
}

func TestToggleDayNightResetsTimer(t *testing.T) {
	e := newTestWorld(t, 1)
	env, _ := environmentData(e)
	env.CycleTimer = 500

	ToggleDayNight(e)

	if env.IsDay {
		t.Error("expected toggle to night")
	}
	if env.CycleTimer != 0 {
		t.Errorf("expected timer reset, got %d", env.CycleTimer)
	}
}

func TestSkyEasesTowardTarget(t *testing.T) {
	e := newTestWorld(t, 1)
	env, _ := environmentData(e)

	env.IsDay = false
	env.Sky = cfg.Cycle.DaySky
	before := env.Sky

	UpdateEnvironment(e)

	for i := 0; i < 3; i++ {
		moved := before[i] - env.Sky[i]
		if cfg.Cycle.NightSky[i] < before[i] && math.Abs(moved-cfg.Cycle.SkyStep) > 1e-9 {
			t.Errorf("channel %d moved %v, expected step %v", i, moved, cfg.Cycle.SkyStep)
		}
	}
}

func TestSkyConvergesWithoutOvershoot(t *testing.T) {
	e := newTestWorld(t, 1)
	env, _ := environmentData(e)

	env.IsDay = false
	env.Sky = cfg.Cycle.DaySky

	// More than enough frames to cross the largest channel gap. Pin the
	// phase and timer so the cycle cannot flip back mid-test.
	for i := 0; i < 3*cfg.Cycle.Frames; i++ {
		env.IsDay = false
		env.CycleTimer = 0
		UpdateEnvironment(e)
	}

	if env.Sky != cfg.Cycle.NightSky {
		t.Errorf("sky never settled on the night palette: %v", env.Sky)
	}
	if env.BgBlend != 0 {
		t.Errorf("background blend never reached night: %v", env.BgBlend)
	}
}

func TestStepToward(t *testing.T) {
	tests := []struct {
		name            string
		v, target, step float64
		want            float64
	}{
		{"upward", 0, 10, 3, 3},
		{"downward", 10, 0, 3, 7},
		{"clamp up", 9, 10, 3, 10},
		{"clamp down", 1, 0, 3, 0},
		{"at target", 5, 5, 3, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stepToward(tt.v, tt.target, tt.step); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestParallaxTracksEffectiveSpeed(t *testing.T) {
	e := newTestWorld(t, 1)
	env, _ := environmentData(e)
	sd := testSession(t, e)

	// Keep every layer away from its wrap threshold.
	env.Pagodas[0].X = 500
	env.Clouds[0].X = 500
	env.Lanterns[0].X = 500
	cloudFactor := env.Clouds[0].Speed

	sd.EffectiveSpeed = 10
	UpdateEnvironment(e)

	if moved := 500 - env.Pagodas[0].X; math.Abs(moved-10*cfg.Parallax.PagodaSpeed) > 1e-9 {
		t.Errorf("pagoda moved %v, expected %v", moved, 10*cfg.Parallax.PagodaSpeed)
	}
	if moved := 500 - env.Clouds[0].X; math.Abs(moved-10*cloudFactor) > 1e-9 {
		t.Errorf("cloud moved %v, expected %v", moved, 10*cloudFactor)
	}
	if moved := 500 - env.Lanterns[0].X; math.Abs(moved-10*cfg.Parallax.LanternSpeed) > 1e-9 {
		t.Errorf("lantern moved %v, expected %v", moved, 10*cfg.Parallax.LanternSpeed)
	}

	// A dash-boosted frame carries the backdrop proportionally further.
	before := env.Pagodas[0].X
	sd.EffectiveSpeed = 20
	UpdateEnvironment(e)

	if moved := before - env.Pagodas[0].X; math.Abs(moved-20*cfg.Parallax.PagodaSpeed) > 1e-9 {
		t.Errorf("boosted pagoda moved %v, expected %v", moved, 20*cfg.Parallax.PagodaSpeed)
	}
}

func TestParallaxLayersWrap(t *testing.T) {
	e := newTestWorld(t, 1)
	env, _ := environmentData(e)

	if len(env.Pagodas) != cfg.Parallax.PagodaCount {
		t.Fatalf("expected %d pagodas, got %d", cfg.Parallax.PagodaCount, len(env.Pagodas))
	}

	env.Pagodas[0].X = cfg.Parallax.PagodaWrapX - 1
	env.Clouds[0].X = cfg.Parallax.CloudWrapX - 1
	env.Lanterns[0].X = cfg.Parallax.LanternWrapX - 1

	UpdateEnvironment(e)

	w := float64(cfg.C.Width)
	if env.Pagodas[0].X < w {
		t.Errorf("pagoda did not wrap to the right edge: %v", env.Pagodas[0].X)
	}
	if env.Clouds[0].X < w {
		t.Errorf("cloud did not wrap to the right edge: %v", env.Clouds[0].X)
	}
	if env.Lanterns[0].X < w {
		t.Errorf("lantern did not wrap to the right edge: %v", env.Lanterns[0].X)
	}
}
