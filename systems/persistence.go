package systems

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

// SavedScore is the high score record stored on disk.
type SavedScore struct {
	HighScore int `json:"highScore"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for score storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "ronin-dash",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadHighScore reads the saved high score; any failure means 0.
func LoadHighScore() int {
	if !gdataInitialized || gdataManager == nil {
		return 0
	}

	data, err := gdataManager.LoadItem("highscore")
	if err != nil {
		log.Printf("Warning: Could not load high score: %v", err)
		return 0
	}
	if len(data) == 0 {
		return 0
	}

	var saved SavedScore
	if err := json.Unmarshal(data, &saved); err != nil {
		log.Printf("Warning: Could not parse saved high score: %v", err)
		return 0
	}
	return saved.HighScore
}

// SaveHighScore writes the high score to disk.
func SaveHighScore(score int) {
	if !gdataInitialized || gdataManager == nil {
		return
	}

	data, err := json.Marshal(&SavedScore{HighScore: score})
	if err != nil {
		log.Printf("Warning: Could not serialize high score: %v", err)
		return
	}
	if err := gdataManager.SaveItem("highscore", data); err != nil {
		log.Printf("Warning: Could not save high score: %v", err)
	}
}
