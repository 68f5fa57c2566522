package systems

import (
	"image/color"

	"github.com/automoto/ronin-dash/components"
	cfg "github.com/automoto/ronin-dash/config"
	"github.com/automoto/ronin-dash/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var spriteDrawOp = &ebiten.DrawImageOptions{}

// drawSpriteRect draws one sprite frame scaled into the given rect, with
// an optional rotation around the rect center.
func drawSpriteRect(screen *ebiten.Image, sd *components.SpriteData, frame int, x, y, w, h float64) {
	if sd.Sprite == nil {
		return
	}
	img := sd.Sprite.EbitenFrame(frame)
	if img == nil {
		return
	}
	srcW, srcH := sd.Sprite.Size()
	if srcW == 0 || srcH == 0 {
		return
	}

	spriteDrawOp.GeoM.Reset()
	spriteDrawOp.GeoM.Translate(-float64(srcW)/2, -float64(srcH)/2)
	spriteDrawOp.GeoM.Scale(w/float64(srcW), h/float64(srcH))
	if sd.Rotation != 0 {
		spriteDrawOp.GeoM.Rotate(sd.Rotation)
	}
	spriteDrawOp.GeoM.Translate(x+w/2, y+h/2)
	screen.DrawImage(img, spriteDrawOp)
}

// DrawEnvironment paints the sky, celestial body, parallax layers and the
// ground strip. Everything scales or fades off the blend value so the
// day/night cross-fade reads as one scene.
func DrawEnvironment(e *ecs.ECS, screen *ebiten.Image) {
	env, ok := environmentData(e)
	if !ok {
		return
	}
	cat, ok := catalogData(e)
	if !ok {
		return
	}
	w := float64(cfg.C.Width)

	screen.Fill(color.RGBA{
		R: uint8(env.Sky[0]),
		G: uint8(env.Sky[1]),
		B: uint8(env.Sky[2]),
		A: 255,
	})

	// Sun fades out with the blend, the moon fades in.
	drawCelestial(screen, cat, "sun", w-150, 70, env.BgBlend)
	drawCelestial(screen, cat, "moon", w-150, 70, 1-env.BgBlend)

	for _, p := range env.Pagodas {
		sd := components.SpriteData{Sprite: cat.Sprite("pagoda")}
		sw, sh := sd.Sprite.Size()
		drawSpriteRect(screen, &sd, 0, p.X, p.Y, float64(sw), float64(sh))
	}

	for _, c := range env.Clouds {
		sd := components.SpriteData{Sprite: cat.Sprite("cloud")}
		sw, sh := sd.Sprite.Size()
		drawSpriteRect(screen, &sd, 0, c.X, c.Y, float64(sw)*c.Scale, float64(sh)*c.Scale)
	}

	for _, l := range env.Lanterns {
		sd := components.SpriteData{Sprite: cat.Sprite("lantern")}
		sw, sh := sd.Sprite.Size()
		drawSpriteRect(screen, &sd, 0, l.X, l.Y+l.SwayOffset, float64(sw), float64(sh))
	}

	// Ground strip with a grass lip at the scroll line.
	vector.DrawFilledRect(screen,
		0, float32(cfg.World.GroundY),
		float32(w), float32(float64(cfg.C.Height)-cfg.World.GroundY),
		cfg.Ground, false)
	vector.DrawFilledRect(screen,
		0, float32(cfg.World.GroundY),
		float32(w), 4,
		cfg.Grass, false)
}

func drawCelestial(screen *ebiten.Image, cat *components.CatalogData, name string, x, y, alpha float64) {
	if alpha <= 0.02 {
		return
	}
	sprite := cat.Sprite(name)
	img := sprite.EbitenFrame(0)
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleAlpha(float32(alpha))
	screen.DrawImage(img, op)
}

// DrawSprites renders the moving entities: tickets, ground obstacles and
// particles first, then dragons, then the player on top.
func DrawSprites(e *ecs.ECS, screen *ebiten.Image) {
	cat, ok := catalogData(e)
	if !ok {
		return
	}

	tags.PowerUp.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		sd := components.Sprite.Get(entry)
		drawSpriteRect(screen, sd, 0, obj.X, obj.Y, obj.W, obj.H)
	})

	tags.Obstacle.Each(e.World, func(entry *donburi.Entry) {
		if components.Obstacle.Get(entry).Flying {
			return
		}
		drawObstacle(screen, entry)
	})

	tags.Particle.Each(e.World, func(entry *donburi.Entry) {
		p := components.Particle.Get(entry)
		drawParticle(screen, p)
	})

	tags.Obstacle.Each(e.World, func(entry *donburi.Entry) {
		if !components.Obstacle.Get(entry).Flying {
			return
		}
		drawObstacle(screen, entry)
	})

	drawPlayer(e, screen, cat)
}

func drawObstacle(screen *ebiten.Image, entry *donburi.Entry) {
	od := components.Obstacle.Get(entry)
	obj := components.Object.Get(entry)
	sd := components.Sprite.Get(entry)
	drawSpriteRect(screen, sd, int(od.FrameIdx), obj.X, obj.Y, obj.W, obj.H)
}

func drawParticle(screen *ebiten.Image, p *components.ParticleData) {
	life := p.Life
	if life > 1 {
		life = 1
	}
	if life <= 0 {
		return
	}
	c := color.RGBA{
		R: uint8(float64(p.Color.R) * life),
		G: uint8(float64(p.Color.G) * life),
		B: uint8(float64(p.Color.B) * life),
		A: uint8(255 * life),
	}
	vector.DrawFilledRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Size), float32(p.Size),
		c, false)
}

func drawPlayer(e *ecs.ECS, screen *ebiten.Image, cat *components.CatalogData) {
	entry, ok := playerEntry(e)
	if !ok {
		return
	}
	pd := components.Player.Get(entry)
	obj := components.Object.Get(entry)

	cx := float32(obj.X + obj.W/2)
	cy := float32(obj.Y + obj.H/2)
	if pd.DashTimer > 0 {
		vector.DrawFilledCircle(screen, cx, cy, float32(obj.H)*0.7,
			color.RGBA{R: 100, G: 200, B: 255, A: 70}, false)
	}
	if pd.TornadoReady {
		vector.DrawFilledCircle(screen, cx, cy, float32(obj.H)*0.8,
			color.RGBA{R: 200, G: 200, B: 210, A: 50}, false)
	}

	sd := components.SpriteData{Sprite: cat.Sprite(PlayerSpriteName(pd))}
	drawSpriteRect(screen, &sd, 0, obj.X, obj.Y, obj.W, obj.H)
}
