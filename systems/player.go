package systems

import (
	"image"

	"github.com/automoto/ronin-dash/components"
	cfg "github.com/automoto/ronin-dash/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateControls translates edge-triggered input into player actions and
// the session-level toggles. Runs before the simulation systems.
func UpdateControls(e *ecs.ECS) {
	sd, ok := sessionData(e)
	if !ok || sd.State != cfg.SessionPlaying {
		return
	}
	in := GetOrCreateInput(e)

	if in.JustPressed(cfg.ActionJump) {
		Jump(e)
	}
	if entry, ok := playerEntry(e); ok {
		pd := components.Player.Get(entry)
		if in.Pressed(cfg.ActionDuck) {
			if !pd.Ducking {
				Duck(e, true)
			}
		} else if pd.Ducking {
			Duck(e, false)
		}
	}

	if in.JustPressed(cfg.ActionToggleDayNight) {
		ToggleDayNight(e)
	}
	if in.MouseJustPressed && image.Pt(in.MouseX, in.MouseY).In(ToggleButtonRect()) {
		ToggleDayNight(e)
	}
	if in.JustPressed(cfg.ActionDebugHitboxes) {
		sd.ShowHitboxes = !sd.ShowHitboxes
	}
	if in.JustPressed(cfg.ActionDebugSpawnDragon) {
		DebugSpawnDragon(e)
	}
}

// Jump starts a jump from the ground, or spends the double-jump talisman
// in the air. Ducking is cancelled first so the jump always leaves from
// the standing hitbox.
func Jump(e *ecs.ECS) {
	entry, ok := playerEntry(e)
	if !ok {
		return
	}
	pd := components.Player.Get(entry)
	obj := components.Object.Get(entry)

	if pd.Ducking {
		Duck(e, false)
	}

	switch {
	case !pd.Airborne:
		pd.VelY = cfg.Player.JumpImpulse
		pd.Airborne = true
		SpawnJumpDust(e, obj.X+obj.W/2, obj.Y+obj.H)
		QueueSFX(e, cfg.SoundJump)
	case pd.DoubleJumpItem && pd.DoubleJumpCharge:
		pd.VelY = cfg.Player.DoubleJumpImpulse
		pd.DoubleJumpItem = false
		pd.DoubleJumpCharge = false
		SpawnSparkles(e, obj.X+obj.W/2, obj.Y+obj.H/2, 5)
		QueueSFX(e, cfg.SoundDoubleJump)
	}
}

// Duck switches between the standing and crouched hitbox. Only works on
// the ground; height and y change together so the feet stay planted.
func Duck(e *ecs.ECS, active bool) {
	entry, ok := playerEntry(e)
	if !ok {
		return
	}
	pd := components.Player.Get(entry)
	obj := components.Object.Get(entry)

	if pd.Airborne || pd.Ducking == active {
		return
	}

	pd.Ducking = active
	if active {
		obj.H = float64(cfg.Player.DuckHeight)
	} else {
		obj.H = float64(cfg.Player.Height)
	}
	obj.Y = cfg.World.GroundY - obj.H
	obj.Update()
}

// ActivatePowerUp applies a collected ticket to the player.
func ActivatePowerUp(e *ecs.ECS, kind components.PowerUpKind) {
	entry, ok := playerEntry(e)
	if !ok {
		return
	}
	pd := components.Player.Get(entry)

	switch kind {
	case components.PowerDash:
		pd.DashTimer = cfg.Player.DashFrames
	case components.PowerTornado:
		pd.TornadoReady = true
	}
	QueueSFX(e, cfg.SoundPowerUp)
}

// UpdatePlayer integrates gravity, clamps to the ground, counts down the
// dash window and advances the run animation.
func UpdatePlayer(e *ecs.ECS) {
	sd, ok := sessionData(e)
	if !ok || sd.State != cfg.SessionPlaying {
		return
	}
	entry, ok := playerEntry(e)
	if !ok {
		return
	}
	pd := components.Player.Get(entry)
	obj := components.Object.Get(entry)
	state := components.State.Get(entry)

	pd.VelY += cfg.Player.Gravity
	obj.Y += pd.VelY

	groundTop := cfg.World.GroundY - obj.H
	if obj.Y >= groundTop {
		obj.Y = groundTop
		pd.VelY = 0
		if pd.Airborne {
			pd.Airborne = false
			pd.DoubleJumpCharge = true
		}
	}
	obj.Update()

	if pd.DashTimer > 0 {
		pd.DashTimer--
	}

	if !pd.Airborne && !pd.Ducking {
		pd.RunTick++
		if pd.RunTick >= cfg.Player.RunFrameTicks {
			pd.RunTick = 0
			pd.RunFrame = (pd.RunFrame + 1) % cfg.Player.RunFrames
		}
		if sd.FrameCount%cfg.World.DustCadence == 0 {
			SpawnRunDust(e, obj.X+obj.W/2, obj.Y+obj.H)
		}
	}

	next := playerState(pd)
	if next != state.CurrentState {
		state.PreviousState = state.CurrentState
		state.CurrentState = next
		state.StateTimer = 0
	} else {
		state.StateTimer++
	}
}

func playerState(pd *components.PlayerData) cfg.StateID {
	switch {
	case pd.Ducking:
		return cfg.StateDucking
	case pd.Airborne:
		return cfg.StateJumping
	}
	return cfg.StateRunning
}

// PlayerSpriteName resolves the sprite for the player's current stance.
func PlayerSpriteName(pd *components.PlayerData) string {
	switch {
	case pd.Ducking:
		return "player_duck"
	case pd.Airborne:
		return "player_jump"
	case pd.RunFrame == 1:
		return "player_run1"
	}
	return "player_run0"
}
