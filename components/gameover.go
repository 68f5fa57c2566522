package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type GameOverData struct {
	FinalScore int
	HighScore  int
	NewRecord  bool

	// Overlay fade-in.
	Fade  *gween.Tween
	Alpha float64
}

var GameOver = donburi.NewComponentType[GameOverData]()
