package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical input action
type ActionID int

const (
	ActionJump ActionID = iota
	ActionDuck
	ActionConfirm // start / retry
	ActionToggleDayNight
	ActionDebugHitboxes
	ActionDebugSpawnDragon
	ActionQuit
	ActionCount
)

// Binding maps an action to physical keys
type Binding struct {
	Keys []ebiten.Key
}

// InputConfig contains input binding configuration
type InputConfig struct {
	Bindings map[ActionID]Binding
}

var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]Binding{
			ActionJump:             {Keys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyUp}},
			ActionDuck:             {Keys: []ebiten.Key{ebiten.KeyDown}},
			ActionConfirm:          {Keys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyEnter}},
			ActionToggleDayNight:   {Keys: []ebiten.Key{ebiten.KeyT}},
			ActionDebugHitboxes:    {Keys: []ebiten.Key{ebiten.KeyH}},
			ActionDebugSpawnDragon: {Keys: []ebiten.Key{ebiten.KeyG}},
			ActionQuit:             {Keys: []ebiten.Key{ebiten.KeyEscape}},
		},
	}
}
