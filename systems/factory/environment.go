package factory

import (
	"log"

	"github.com/automoto/ronin-dash/archetypes"
	"github.com/automoto/ronin-dash/assets"
	"github.com/automoto/ronin-dash/components"
	cfg "github.com/automoto/ronin-dash/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DecorPath is the optional Tiled map with hand-placed pagoda positions.
const DecorPath = "assets/decor.tmx"

func newSwaySequence() *gween.Sequence {
	return gween.NewSequence(
		gween.New(0, 6, 1.2, ease.InOutSine),
		gween.New(6, 0, 1.2, ease.InOutSine),
	)
}

// CreateEnvironment places the parallax layers and starts the cycle at
// day. Pagoda positions come from the decor map when one exists.
func CreateEnvironment(e *ecs.ECS) *donburi.Entry {
	entry := archetypes.Environment.Spawn(e)

	sessionEntry, ok := components.Session.First(e.World)
	if !ok {
		return entry
	}
	rng := components.Session.Get(sessionEntry).Rng

	env := components.EnvironmentData{
		IsDay:   true,
		Sky:     cfg.Cycle.DaySky,
		BgBlend: 1.0,
	}

	placements, err := assets.LoadDecor(DecorPath)
	if err != nil {
		// Expected in the default install; evenly spaced pagodas.
		placements = nil
	} else {
		log.Printf("Loaded %d pagoda placements from %s", len(placements), DecorPath)
	}

	for i := 0; i < cfg.Parallax.PagodaCount; i++ {
		p := components.Pagoda{
			X:     float64(i)*cfg.Parallax.PagodaSpacing + rng.Float64()*120,
			Y:     float64(cfg.C.Height) - 340,
			Speed: cfg.Parallax.PagodaSpeed,
		}
		if i < len(placements) {
			p.X = placements[i].X
			p.Y = placements[i].Y
		}
		env.Pagodas = append(env.Pagodas, p)
	}

	for i := 0; i < cfg.Parallax.CloudCount; i++ {
		env.Clouds = append(env.Clouds, components.Cloud{
			X:     rng.Float64() * float64(cfg.C.Width),
			Y:     30 + rng.Float64()*130,
			Speed: cfg.Parallax.CloudBaseSpeed + rng.Float64()*cfg.Parallax.CloudSpeedVar,
			Scale: 0.8 + rng.Float64()*0.6,
		})
	}

	for i := 0; i < cfg.Parallax.LanternCount; i++ {
		env.Lanterns = append(env.Lanterns, components.Lantern{
			X:     rng.Float64() * float64(cfg.C.Width),
			Y:     60 + rng.Float64()*140,
			Speed: cfg.Parallax.LanternSpeed,
			Sway:  newSwaySequence(),
		})
	}

	components.Environment.SetValue(entry, env)
	return entry
}
