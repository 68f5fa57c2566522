package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadTuningMissingFile(t *testing.T) {
	tuning, err := LoadTuning(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing file must not be an error: %v", err)
	}
	if tuning != nil {
		t.Error("expected nil tuning for a missing file")
	}
}

func TestLoadTuningRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runner.yaml")
	if err := os.WriteFile(path, []byte(":\n  - not yaml"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadTuning(path); err == nil {
		t.Error("expected a parse error")
	}
}

func TestValidateTuning(t *testing.T) {
	tests := []struct {
		name    string
		tuning  Tuning
		wantErr bool
	}{
		{"zero values", Tuning{}, false},
		{"sane overrides", Tuning{StartSpeed: 4, MaxSpeed: 12, Gravity: 0.5, JumpImpulse: -10}, false},
		{"negative start speed", Tuning{StartSpeed: -1}, true},
		{"start above max", Tuning{StartSpeed: 20, MaxSpeed: 10}, true},
		{"negative gravity", Tuning{Gravity: -0.1}, true},
		{"upward jump impulse positive", Tuning{JumpImpulse: 5}, true},
		{"negative dash frames", Tuning{DashFrames: -1}, true},
		{"powerup chance above one", Tuning{PowerUpChance: 1.5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTuning(&tt.tuning)
			if (err != nil) != tt.wantErr {
				t.Errorf("expected error=%v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestApplyOverridesOnlyNonZero(t *testing.T) {
	savedWorld := World
	savedPlayer := Player
	savedCycle := Cycle
	savedSpawn := Spawn
	defer func() {
		World = savedWorld
		Player = savedPlayer
		Cycle = savedCycle
		Spawn = savedSpawn
	}()

	tuning := Tuning{
		StartSpeed:  4.5,
		CycleFrames: 600,
		JumpImpulse: -15,
	}
	tuning.Apply()

	if World.StartSpeed != 4.5 {
		t.Errorf("expected start speed override, got %v", World.StartSpeed)
	}
	if Cycle.Frames != 600 {
		t.Errorf("expected cycle override, got %d", Cycle.Frames)
	}
	if Player.JumpImpulse != -15 {
		t.Errorf("expected jump impulse override, got %v", Player.JumpImpulse)
	}

	// Untouched fields keep their defaults.
	if World.MaxSpeed != savedWorld.MaxSpeed {
		t.Errorf("max speed changed without an override: %v", World.MaxSpeed)
	}
	if Player.Gravity != savedPlayer.Gravity {
		t.Errorf("gravity changed without an override: %v", Player.Gravity)
	}
}

func TestLoadTuningAppliesSeed(t *testing.T) {
	savedWorld := World
	defer func() { World = savedWorld }()

	path := filepath.Join(t.TempDir(), "runner.yaml")
	if err := os.WriteFile(path, []byte("seed: 1234\nstart_speed: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tuning, err := LoadTuning(path)
	if err != nil {
		t.Fatal(err)
	}
	if tuning == nil {
		t.Fatal("expected a tuning struct")
	}
	if tuning.Seed != 1234 {
		t.Errorf("expected seed 1234, got %d", tuning.Seed)
	}
	if World.StartSpeed != 7 {
		t.Errorf("expected start speed applied, got %v", World.StartSpeed)
	}
}
