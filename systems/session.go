package systems

import (
	"github.com/automoto/ronin-dash/components"
	cfg "github.com/automoto/ronin-dash/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSession advances the run-wide counters: score, milestone cue,
// speed ramp and the effective speed every mover consumes this frame.
// It runs before the player system so the dash boost covers the whole
// frame the dash timer expires on.
func UpdateSession(e *ecs.ECS) {
	sd, ok := sessionData(e)
	if !ok || sd.State != cfg.SessionPlaying {
		return
	}

	sd.Score += cfg.World.ScorePerFrame

	// Milestone cue fires exactly once per 100-point crossing. The
	// watermark keeps the cue from re-firing on the frames where the
	// integer score sits on the boundary.
	milestone := int(sd.Score) / cfg.World.MilestoneStep * cfg.World.MilestoneStep
	if milestone > 0 && milestone > sd.LastMilestone {
		sd.LastMilestone = milestone
		QueueSFX(e, cfg.SoundScore)
	}

	sd.Speed += cfg.World.SpeedIncrement
	if sd.Speed > cfg.World.MaxSpeed {
		sd.Speed = cfg.World.MaxSpeed
	}

	sd.EffectiveSpeed = sd.Speed
	if entry, ok := playerEntry(e); ok {
		if components.Player.Get(entry).DashTimer > 0 {
			sd.EffectiveSpeed = sd.Speed * cfg.World.DashBoost
		}
	}

	sd.FrameCount++
}
