package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Obstacle = donburi.NewTag().SetName("Obstacle")
	PowerUp  = donburi.NewTag().SetName("PowerUp")
	Particle = donburi.NewTag().SetName("Particle")
)

// Resolv tags for collision queries
const (
	ResolvPlayer   = "Player"
	ResolvObstacle = "Obstacle"
	ResolvPowerUp  = "PowerUp"
)
