package systems

import (
	cfg "github.com/automoto/ronin-dash/config"
	"github.com/yohamta/donburi/ecs"
)

const tweenDT = 1.0 / 60.0

// UpdateEnvironment runs the day/night cycle and scrolls the parallax
// layers. The cycle continues through MENU and GAMEOVER so the backdrop
// stays alive behind the overlays.
func UpdateEnvironment(e *ecs.ECS) {
	env, ok := environmentData(e)
	if !ok {
		return
	}
	sd, ok := sessionData(e)
	if !ok {
		return
	}
	rng := sd.Rng
	w := float64(cfg.C.Width)

	// Layer speeds are fractions of the scroll speed, so the backdrop
	// tracks the speed ramp and the dash boost.
	scroll := sd.EffectiveSpeed

	env.CycleTimer++
	if env.CycleTimer >= cfg.Cycle.Frames {
		env.IsDay = !env.IsDay
		env.CycleTimer = 0
	}

	target := cfg.Cycle.DaySky
	if !env.IsDay {
		target = cfg.Cycle.NightSky
	}
	for i := 0; i < 3; i++ {
		env.Sky[i] = stepToward(env.Sky[i], target[i], cfg.Cycle.SkyStep)
	}

	blendTarget := 1.0
	if !env.IsDay {
		blendTarget = 0.0
	}
	env.BgBlend = stepToward(env.BgBlend, blendTarget, cfg.Cycle.BlendStep)

	for i := range env.Pagodas {
		p := &env.Pagodas[i]
		p.X -= scroll * p.Speed
		if p.X < cfg.Parallax.PagodaWrapX {
			p.X = w + 50 + rng.Float64()*250
		}
	}

	for i := range env.Clouds {
		c := &env.Clouds[i]
		c.X -= scroll * c.Speed
		if c.X < cfg.Parallax.CloudWrapX {
			c.X = w + rng.Float64()*200
			c.Y = 30 + rng.Float64()*130
			c.Scale = 0.8 + rng.Float64()*0.6
		}
	}

	for i := range env.Lanterns {
		l := &env.Lanterns[i]
		l.X -= scroll * l.Speed
		if l.X < cfg.Parallax.LanternWrapX {
			l.X = w + 50 + rng.Float64()*250
		}
		if l.Sway != nil {
			v, _, seqDone := l.Sway.Update(tweenDT)
			if seqDone {
				l.Sway.Reset()
			}
			l.SwayOffset = float64(v)
		}
	}
}

// ToggleDayNight flips the cycle immediately and restarts the timer, the
// same as a natural flip.
func ToggleDayNight(e *ecs.ECS) {
	env, ok := environmentData(e)
	if !ok {
		return
	}
	env.IsDay = !env.IsDay
	env.CycleTimer = 0
}

func stepToward(v, target, step float64) float64 {
	switch {
	case v < target:
		v += step
		if v > target {
			v = target
		}
	case v > target:
		v -= step
		if v < target {
			v = target
		}
	}
	return v
}
