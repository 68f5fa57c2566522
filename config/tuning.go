package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning is the optional on-disk override for gameplay constants. Only a
// small, safe subset of the configuration is exposed; zero values mean
// "keep the default".
type Tuning struct {
	StartSpeed     float64 `yaml:"start_speed"`
	MaxSpeed       float64 `yaml:"max_speed"`
	SpeedIncrement float64 `yaml:"speed_increment"`
	ScorePerFrame  float64 `yaml:"score_per_frame"`
	Gravity        float64 `yaml:"gravity"`
	JumpImpulse    float64 `yaml:"jump_impulse"`
	DashFrames     int     `yaml:"dash_frames"`
	CycleFrames    int     `yaml:"cycle_frames"`
	PowerUpChance  float64 `yaml:"powerup_chance"`
	Seed           int64   `yaml:"seed"`
}

// LoadTuning reads a yaml tuning file and folds it into the global
// configuration. A missing file is not an error.
func LoadTuning(path string) (*Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read tuning: %w", err)
	}

	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse tuning: %w", err)
	}
	if err := validateTuning(&t); err != nil {
		return nil, fmt.Errorf("validate tuning: %w", err)
	}
	t.Apply()
	return &t, nil
}

func validateTuning(t *Tuning) error {
	if t.StartSpeed < 0 {
		return fmt.Errorf("start_speed must be >= 0, got %v", t.StartSpeed)
	}
	if t.MaxSpeed < 0 {
		return fmt.Errorf("max_speed must be >= 0, got %v", t.MaxSpeed)
	}
	if t.MaxSpeed > 0 && t.StartSpeed > t.MaxSpeed {
		return fmt.Errorf("start_speed %v exceeds max_speed %v", t.StartSpeed, t.MaxSpeed)
	}
	if t.SpeedIncrement < 0 {
		return fmt.Errorf("speed_increment must be >= 0, got %v", t.SpeedIncrement)
	}
	if t.Gravity < 0 {
		return fmt.Errorf("gravity must be >= 0, got %v", t.Gravity)
	}
	if t.JumpImpulse > 0 {
		return fmt.Errorf("jump_impulse must be <= 0 (upward), got %v", t.JumpImpulse)
	}
	if t.DashFrames < 0 {
		return fmt.Errorf("dash_frames must be >= 0, got %v", t.DashFrames)
	}
	if t.CycleFrames < 0 {
		return fmt.Errorf("cycle_frames must be >= 0, got %v", t.CycleFrames)
	}
	if t.PowerUpChance < 0 || t.PowerUpChance > 1 {
		return fmt.Errorf("powerup_chance must be in [0,1], got %v", t.PowerUpChance)
	}
	return nil
}

// Apply copies the non-zero overrides onto the global config structs.
func (t *Tuning) Apply() {
	if t.StartSpeed > 0 {
		World.StartSpeed = t.StartSpeed
	}
	if t.MaxSpeed > 0 {
		World.MaxSpeed = t.MaxSpeed
	}
	if t.SpeedIncrement > 0 {
		World.SpeedIncrement = t.SpeedIncrement
	}
	if t.ScorePerFrame > 0 {
		World.ScorePerFrame = t.ScorePerFrame
	}
	if t.Gravity > 0 {
		Player.Gravity = t.Gravity
	}
	if t.JumpImpulse < 0 {
		Player.JumpImpulse = t.JumpImpulse
	}
	if t.DashFrames > 0 {
		Player.DashFrames = t.DashFrames
	}
	if t.CycleFrames > 0 {
		Cycle.Frames = t.CycleFrames
	}
	if t.PowerUpChance > 0 {
		Spawn.PowerUpChance = t.PowerUpChance
	}
}
