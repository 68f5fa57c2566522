package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// Pagoda is a far-background silhouette layer entry. Speed is the
// layer's fraction of the effective scroll speed, not pixels per frame.
type Pagoda struct {
	X, Y  float64
	Speed float64
}

type Cloud struct {
	X, Y  float64
	Speed float64
	Scale float64
}

type Lantern struct {
	X, Y  float64
	Speed float64

	// Vertical sway; purely cosmetic.
	Sway       *gween.Sequence
	SwayOffset float64
}

type EnvironmentData struct {
	CycleTimer int
	IsDay      bool

	// Sky color eases toward the current target a fixed step per channel
	// per frame; BgBlend cross-fades the background layers more slowly.
	Sky     [3]float64
	BgBlend float64 // 1.0 full day, 0.0 full night

	Pagodas  []Pagoda
	Clouds   []Cloud
	Lanterns []Lantern
}

var Environment = donburi.NewComponentType[EnvironmentData]()
