package components

import (
	"math/rand"

	cfg "github.com/automoto/ronin-dash/config"
	"github.com/yohamta/donburi"
)

// SessionData is the single source of truth for run-wide state. All
// randomness in the simulation flows through Rng so a seeded session
// replays deterministically.
type SessionData struct {
	State cfg.SessionStateID

	Score     float64
	HighScore int
	NewRecord bool

	Speed          float64
	EffectiveSpeed float64 // Speed with the dash boost applied
	FrameCount     int

	Rng *rand.Rand

	// Spawn director bookkeeping.
	LastSpawnKind      string
	LastBambooFrame    int
	FirstDragonSpawned bool

	// Highest milestone a cue has fired for.
	LastMilestone int

	ShowHitboxes bool
}

var Session = donburi.NewComponentType[SessionData]()
