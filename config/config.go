package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the ECS layer all renderers are registered on.
const Default = ecs.LayerID(0)

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Gravity           float64
	JumpImpulse       float64
	DoubleJumpImpulse float64

	// Stance dimensions. Width is fixed; height depends on stance.
	Width      int
	Height     int
	DuckHeight int
	StartX     float64

	// Hitbox inset per side, keeps collisions visually fair
	HitboxInsetX float64
	HitboxInsetY float64

	// Power-ups
	DashFrames int // invulnerability window (~5s at 60 TPS)

	// Animation
	RunFrameTicks int // ticks between run-cycle frame flips
	RunFrames     int
}

// WorldConfig contains scroll, scoring and ground configuration
type WorldConfig struct {
	GroundY float64

	StartSpeed     float64
	MaxSpeed       float64
	SpeedIncrement float64
	DashBoost      float64 // effective-speed multiplier while dashing

	ScorePerFrame float64
	MilestoneStep int // score cue fires once per crossing of this step

	TornadoBonus   float64
	TornadoMinLead float64 // obstacle must be this far ahead of the player

	// Despawn thresholds (left of screen)
	ObstacleDespawnX float64
	PowerUpDespawnX  float64

	// Running dust cadence in frames
	DustCadence int
}

// CycleConfig contains day/night cycle configuration
type CycleConfig struct {
	Frames    int     // automatic flip interval
	SkyStep   float64 // per-channel per-frame color step
	BlendStep float64 // background cross-fade step (slower than color)

	DaySky   [3]float64
	NightSky [3]float64
}

// ParallaxConfig contains parallax layer configuration
type ParallaxConfig struct {
	PagodaCount    int
	PagodaSpeed    float64
	PagodaWrapX    float64
	PagodaSpacing  float64
	CloudCount     int
	CloudBaseSpeed float64
	CloudSpeedVar  float64
	CloudWrapX     float64
	LanternCount   int
	LanternSpeed   float64
	LanternWrapX   float64
}

// SpawnConfig contains spawn director configuration
type SpawnConfig struct {
	// A new obstacle may spawn once the newest one has scrolled left of
	// screen width minus a random value in [GapMin, GapMax).
	GapMin int
	GapMax int
	// Hard minimum horizontal gap from the last obstacle, in pixels.
	MinGapPx float64

	// Warm-up frames before the guaranteed first dragon from a user pool.
	FirstDragonFrame int
	// Chance of picking the flying pool when both strict pools exist.
	StrictFlyingChance float64

	// Per-frame Bernoulli trial probabilities.
	PowerUpChance float64
	PetalChance   float64
	SparkChance   float64

	// Procedural mix cumulative thresholds over [0,1).
	RockWeight    float64
	BarrelWeight  float64
	BambooWeight  float64
	DragonWeight  float64
	BoulderWeight float64

	// Bamboo spacing cooldowns.
	BambooFrameCooldown int
	BambooDistCooldown  float64

	// Dragon color weights (red, green, black).
	DragonColorWeights [3]int
}

// ObstacleSpec describes geometry and motion for one obstacle kind.
// Rects and vertical placement resolve once at construction.
type ObstacleSpec struct {
	Width    float64
	Height   float64
	OffsetX  float64 // horizontal inset from spawn x (bamboo stalk)
	SpeedMul float64
	Sprite   string
}

// PowerUpConfig contains power-up ticket configuration
type PowerUpConfig struct {
	Size         float64
	BaselineDrop float64 // baseline = GroundY - BaselineDrop
	BobAmplitude float64
	BobStep      float64
}

// HUDConfig contains HUD layout configuration
type HUDConfig struct {
	Margin       float64
	DashBarScale float64 // bar width per remaining dash frame
	ToggleW      float64
	ToggleH      float64
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	HintY             float64
}

// GameOverConfig contains game over screen configuration values
type GameOverConfig struct {
	OverlayColor color.RGBA
	TitleColor   color.RGBA
	TextColor    color.RGBA
	TitleY       float64
	FadeSeconds  float32
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var World WorldConfig
var Cycle CycleConfig
var Parallax ParallaxConfig
var Spawn SpawnConfig
var PowerUps PowerUpConfig
var HUD HUDConfig
var Menu MenuConfig
var GameOver GameOverConfig
var Debug DebugConfig

// Obstacles maps fixed-geometry ground kinds to their specs. Dragon and
// user-asset geometry depends on altitude/aspect and lives in the factory.
var Obstacles map[string]ObstacleSpec

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Gold         = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	Grey         = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	LightRed     = color.RGBA{R: 255, G: 120, B: 120, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 200, B: 255, A: 255}
	Ground       = color.RGBA{R: 101, G: 67, B: 33, A: 255}
	Grass        = color.RGBA{R: 50, G: 200, B: 50, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 150}
	RedOverlay   = color.RGBA{R: 50, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		Title:  "Ronin Dash",
	}

	Player = PlayerConfig{
		Gravity:           0.65,
		JumpImpulse:       -12.5,
		DoubleJumpImpulse: -10.0,
		Width:             48,
		Height:            90,
		DuckHeight:        50,
		StartX:            100,
		HitboxInsetX:      14,
		HitboxInsetY:      12,
		DashFrames:        300,
		RunFrameTicks:     5,
		RunFrames:         2,
	}

	World = WorldConfig{
		GroundY:          420,
		StartSpeed:       6.0,
		MaxSpeed:         16.0,
		SpeedIncrement:   0.0015,
		DashBoost:        1.25,
		ScorePerFrame:    0.2,
		MilestoneStep:    100,
		TornadoBonus:     50,
		TornadoMinLead:   20,
		ObstacleDespawnX: -200,
		PowerUpDespawnX:  -100,
		DustCadence:      12,
	}

	Cycle = CycleConfig{
		Frames:    1200,
		SkyStep:   0.2,
		BlendStep: 0.02,
		DaySky:    [3]float64{135, 206, 235},
		NightSky:  [3]float64{25, 25, 60},
	}

	Parallax = ParallaxConfig{
		PagodaCount:    3,
		PagodaSpeed:    0.2,
		PagodaWrapX:    -200,
		PagodaSpacing:  400,
		CloudCount:     4,
		CloudBaseSpeed: 0.1,
		CloudSpeedVar:  0.15,
		CloudWrapX:     -120,
		LanternCount:   3,
		LanternSpeed:   0.12,
		LanternWrapX:   -50,
	}

	Spawn = SpawnConfig{
		GapMin:              400,
		GapMax:              800,
		MinGapPx:            140,
		FirstDragonFrame:    60,
		StrictFlyingChance:  0.30,
		PowerUpChance:       0.003,
		PetalChance:         0.1,
		SparkChance:         0.05,
		RockWeight:          0.25,
		BarrelWeight:        0.45,
		BambooWeight:        0.65,
		DragonWeight:        0.90,
		BoulderWeight:       1.0,
		BambooFrameCooldown: 240,
		BambooDistCooldown:  300,
		DragonColorWeights:  [3]int{5, 4, 1},
	}

	Obstacles = map[string]ObstacleSpec{
		"rock":    {Width: 36, Height: 36, SpeedMul: 1.0, Sprite: "rock"},
		"barrel":  {Width: 56, Height: 56, SpeedMul: 1.0, Sprite: "barrel"},
		"bamboo":  {Width: 26, Height: 110, OffsetX: 15, SpeedMul: 1.0, Sprite: "bamboo"},
		"boulder": {Width: 90, Height: 90, SpeedMul: 1.3, Sprite: "boulder"},
	}

	PowerUps = PowerUpConfig{
		Size:         40,
		BaselineDrop: 160,
		BobAmplitude: 15,
		BobStep:      0.1,
	}

	HUD = HUDConfig{
		Margin:       20,
		DashBarScale: 1.2,
		ToggleW:      200,
		ToggleH:      28,
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 20, G: 24, B: 38, A: 255},
		TitleColor:        Gold,
		TextColorNormal:   White,
		TextColorSelected: LightBlue,
		TitleY:            200,
		HintY:             330,
	}

	GameOver = GameOverConfig{
		OverlayColor: RedOverlay,
		TitleColor:   color.RGBA{R: 255, G: 50, B: 50, A: 255},
		TextColor:    White,
		TitleY:       220,
		FadeSeconds:  0.5,
	}
}
