package assets

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writePNG(t *testing.T, dir, name string) {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 200, A: 255})
		}
	}

	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("create %s: %v", name, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", name, err)
	}
}

func TestLoadMissingDirFallsBackToProcedural(t *testing.T) {
	c := Load(filepath.Join(t.TempDir(), "does-not-exist"))

	if c.Has("rock") {
		t.Error("expected no real assets loaded")
	}
	if c.StrictMode() || c.HasUserDragons() || c.HasBoulder() {
		t.Error("expected all pools empty")
	}
	s := c.Sprite("rock")
	if s == nil || s.FrameCount() == 0 {
		t.Fatal("expected a procedural placeholder sprite")
	}
}

func TestLoadClassifiesPools(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "ground_spike.png")
	writePNG(t, dir, "fly_crow.png")
	writePNG(t, dir, "obstacle1.png")
	writePNG(t, dir, "dragon_custom.png")
	writePNG(t, dir, "boulder.png")
	writePNG(t, dir, "notes.txt") // wrong extension, must be ignored

	c := Load(dir)

	if got := c.StrictGround(); len(got) != 1 || got[0] != "ground_spike" {
		t.Errorf("ground pool: %v", got)
	}
	if got := c.StrictFlying(); len(got) != 1 || got[0] != "fly_crow" {
		t.Errorf("flying pool: %v", got)
	}
	if got := c.FolderObstacles(); len(got) != 1 || got[0] != "obstacle1" {
		t.Errorf("folder pool: %v", got)
	}
	if got := c.UserDragons(); len(got) != 1 || got[0] != "dragon_custom" {
		t.Errorf("dragon pool: %v", got)
	}
	if !c.HasBoulder() {
		t.Error("expected the boulder capability")
	}
	if !c.StrictMode() {
		t.Error("expected strict mode with strict pools present")
	}
}

func TestUserDragonsEngageStrictMode(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "dragon.png")

	c := Load(dir)

	if !c.StrictMode() {
		t.Error("expected strict mode from a dragon asset alone")
	}
	if got := c.StrictFlying(); len(got) != 1 || got[0] != "dragon" {
		t.Errorf("expected the dragon to back the flying pool, got %v", got)
	}
	if got := c.StrictGround(); len(got) != 0 {
		t.Errorf("ground pool must stay empty: %v", got)
	}
}

func TestStrictFlyingPrefersFlyVariants(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "dragon.png")
	writePNG(t, dir, "fly_crow.png")

	c := Load(dir)

	if got := c.StrictFlying(); len(got) != 1 || got[0] != "fly_crow" {
		t.Errorf("expected fly variants to shadow user dragons, got %v", got)
	}
}

func TestLoadGroupsNumberedFrames(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "dragon_red_0.png")
	writePNG(t, dir, "dragon_red_1.png")
	writePNG(t, dir, "dragon_red_2.png")

	c := Load(dir)

	s := c.Sprite("dragon_red")
	if s.FrameCount() != 3 {
		t.Errorf("expected 3 frames, got %d", s.FrameCount())
	}
	if !c.Has("dragon_red") {
		t.Error("expected dragon_red marked as loaded")
	}
}

func TestCanonicalName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"stone", "rock"},
		{"drum", "barrel"},
		{"rock", "rock"},
		{"dragon_red", "dragon_red"},
	}

	for _, tt := range tests {
		if got := canonicalName(tt.in); got != tt.want {
			t.Errorf("canonicalName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAliasedFilesServeCanonicalNames(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "stone.png")
	writePNG(t, dir, "drum.png")

	c := Load(dir)

	if !c.Has("rock") || !c.Has("barrel") {
		t.Error("expected stone/drum files to load as rock/barrel")
	}
}

func TestSpriteNeverNil(t *testing.T) {
	c := Load(filepath.Join(t.TempDir(), "missing"))

	for _, name := range []string{"rock", "player_run0", "no-such-sprite"} {
		if c.Sprite(name) == nil {
			t.Errorf("Sprite(%q) returned nil", name)
		}
	}
}
