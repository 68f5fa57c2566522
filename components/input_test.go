package components

import (
	"testing"

	cfg "github.com/automoto/ronin-dash/config"
)

func TestInputEdgeDetection(t *testing.T) {
	var in InputData

	// Frame 1: key goes down.
	in.Current[cfg.ActionJump] = true
	if !in.Pressed(cfg.ActionJump) {
		t.Error("expected Pressed on the down frame")
	}
	if !in.JustPressed(cfg.ActionJump) {
		t.Error("expected JustPressed on the down frame")
	}

	// Frame 2: key held.
	in.Previous = in.Current
	if !in.Pressed(cfg.ActionJump) {
		t.Error("expected Pressed while held")
	}
	if in.JustPressed(cfg.ActionJump) {
		t.Error("JustPressed must only fire on the edge")
	}

	// Frame 3: key released.
	in.Previous = in.Current
	in.Current[cfg.ActionJump] = false
	if in.Pressed(cfg.ActionJump) {
		t.Error("expected not Pressed after release")
	}
	if !in.JustReleased(cfg.ActionJump) {
		t.Error("expected JustReleased on the up frame")
	}
}
