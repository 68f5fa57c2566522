package assets

import (
	"image"
	"image/color"
)

// Procedural placeholder art. The game ships no binary assets; every
// sprite the simulation references can be synthesized here, and files
// dropped into the asset directory override these one by one.

func fillRect(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if image.Pt(x, y).In(img.Bounds()) {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

func fillEllipse(img *image.RGBA, cx, cy, rx, ry int, c color.RGBA) {
	if rx <= 0 || ry <= 0 {
		return
	}
	for y := cy - ry; y <= cy+ry; y++ {
		for x := cx - rx; x <= cx+rx; x++ {
			dx := float64(x-cx) / float64(rx)
			dy := float64(y-cy) / float64(ry)
			if dx*dx+dy*dy <= 1.0 && image.Pt(x, y).In(img.Bounds()) {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

func blank(w, h int) *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

var (
	roninRobe = color.RGBA{R: 60, G: 60, B: 80, A: 255}
	roninSkin = color.RGBA{R: 235, G: 200, B: 160, A: 255}
	roninSash = color.RGBA{R: 180, G: 40, B: 40, A: 255}
	steel     = color.RGBA{R: 210, G: 210, B: 220, A: 255}
)

// proceduralPlayer draws the running ronin. Legs swap between the two run
// frames; the jump frame tucks them, the duck frame squashes everything.
func proceduralPlayer(name string) *image.RGBA {
	switch name {
	case "player_duck":
		img := blank(48, 50)
		fillRect(img, 6, 18, 42, 50, roninRobe)
		fillEllipse(img, 24, 12, 11, 11, roninSkin)
		fillRect(img, 6, 30, 42, 36, roninSash)
		return img
	case "player_jump":
		img := blank(48, 90)
		fillEllipse(img, 24, 14, 11, 11, roninSkin)
		fillRect(img, 12, 26, 36, 62, roninRobe)
		fillRect(img, 12, 44, 36, 50, roninSash)
		fillRect(img, 14, 62, 24, 78, roninRobe) // tucked legs
		fillRect(img, 26, 62, 34, 74, roninRobe)
		fillRect(img, 36, 28, 40, 58, steel) // sword on the back
		return img
	case "player_run1":
		img := blank(48, 90)
		fillEllipse(img, 24, 14, 11, 11, roninSkin)
		fillRect(img, 12, 26, 36, 62, roninRobe)
		fillRect(img, 12, 44, 36, 50, roninSash)
		fillRect(img, 10, 62, 20, 90, roninRobe) // leading leg
		fillRect(img, 28, 62, 38, 84, roninRobe)
		fillRect(img, 36, 28, 40, 58, steel)
		return img
	default: // player_run0
		img := blank(48, 90)
		fillEllipse(img, 24, 14, 11, 11, roninSkin)
		fillRect(img, 12, 26, 36, 62, roninRobe)
		fillRect(img, 12, 44, 36, 50, roninSash)
		fillRect(img, 14, 62, 24, 84, roninRobe)
		fillRect(img, 26, 62, 36, 90, roninRobe)
		fillRect(img, 36, 28, 40, 58, steel)
		return img
	}
}

func proceduralDragonFrame(body color.RGBA, wingUp bool) *image.RGBA {
	img := blank(80, 50)
	belly := color.RGBA{R: 245, G: 225, B: 170, A: 255}
	fillEllipse(img, 40, 30, 32, 12, body)     // body
	fillEllipse(img, 40, 36, 26, 6, belly)     // belly
	fillEllipse(img, 72, 24, 8, 8, body)       // head
	fillRect(img, 0, 26, 12, 32, body)         // tail
	if wingUp {
		fillEllipse(img, 38, 12, 16, 10, body)
	} else {
		fillEllipse(img, 38, 40, 16, 8, body)
	}
	return img
}

func proceduralSprite(name string) *Sprite {
	switch name {
	case "player_run0", "player_run1", "player_jump", "player_duck":
		return NewSprite(name, proceduralPlayer(name))

	case "rock":
		img := blank(36, 36)
		fillEllipse(img, 18, 22, 16, 13, color.RGBA{R: 120, G: 115, B: 110, A: 255})
		fillEllipse(img, 12, 16, 8, 7, color.RGBA{R: 150, G: 145, B: 140, A: 255})
		return NewSprite(name, img)

	case "barrel":
		img := blank(56, 56)
		wood := color.RGBA{R: 140, G: 95, B: 50, A: 255}
		band := color.RGBA{R: 70, G: 55, B: 40, A: 255}
		fillRect(img, 4, 2, 52, 54, wood)
		fillRect(img, 4, 10, 52, 14, band)
		fillRect(img, 4, 42, 52, 46, band)
		return NewSprite(name, img)

	case "bamboo":
		img := blank(26, 110)
		stalk := color.RGBA{R: 90, G: 160, B: 70, A: 255}
		node := color.RGBA{R: 60, G: 120, B: 50, A: 255}
		fillRect(img, 6, 0, 20, 110, stalk)
		for y := 18; y < 110; y += 28 {
			fillRect(img, 6, y, 20, y+4, node)
		}
		return NewSprite(name, img)

	case "boulder":
		img := blank(90, 90)
		fillEllipse(img, 45, 45, 42, 42, color.RGBA{R: 105, G: 100, B: 95, A: 255})
		fillEllipse(img, 32, 32, 12, 10, color.RGBA{R: 135, G: 130, B: 125, A: 255})
		return NewSprite(name, img)

	case "dragon_red":
		body := color.RGBA{R: 200, G: 50, B: 40, A: 255}
		return NewSprite(name, proceduralDragonFrame(body, true), proceduralDragonFrame(body, false))
	case "dragon_green":
		body := color.RGBA{R: 60, G: 160, B: 70, A: 255}
		return NewSprite(name, proceduralDragonFrame(body, true), proceduralDragonFrame(body, false))
	case "dragon_black":
		body := color.RGBA{R: 45, G: 45, B: 55, A: 255}
		return NewSprite(name, proceduralDragonFrame(body, true), proceduralDragonFrame(body, false))

	case "ticket_dash":
		img := blank(40, 40)
		fillEllipse(img, 20, 20, 18, 18, color.RGBA{R: 100, G: 200, B: 255, A: 255})
		fillRect(img, 8, 16, 32, 24, color.RGBA{R: 255, G: 255, B: 255, A: 255})
		return NewSprite(name, img)
	case "ticket_tornado":
		img := blank(40, 40)
		grey := color.RGBA{R: 190, G: 190, B: 200, A: 255}
		fillEllipse(img, 20, 10, 16, 6, grey)
		fillEllipse(img, 20, 20, 11, 6, grey)
		fillEllipse(img, 20, 30, 6, 5, grey)
		return NewSprite(name, img)

	case "pagoda":
		img := blank(160, 220)
		roof := color.RGBA{R: 70, G: 45, B: 60, A: 255}
		wall := color.RGBA{R: 95, G: 70, B: 80, A: 255}
		for tier := 0; tier < 3; tier++ {
			ty := 20 + tier*70
			inset := 10 + tier*12
			fillRect(img, inset, ty, 160-inset, ty+16, roof)
			fillRect(img, inset+18, ty+16, 160-inset-18, ty+70, wall)
		}
		return NewSprite(name, img)

	case "cloud":
		img := blank(120, 60)
		puff := color.RGBA{R: 250, G: 250, B: 250, A: 230}
		fillEllipse(img, 35, 38, 28, 16, puff)
		fillEllipse(img, 70, 30, 30, 20, puff)
		fillEllipse(img, 95, 40, 20, 12, puff)
		return NewSprite(name, img)

	case "lantern":
		img := blank(24, 36)
		paper := color.RGBA{R: 230, G: 90, B: 60, A: 255}
		fillRect(img, 8, 0, 16, 4, color.RGBA{R: 60, G: 40, B: 30, A: 255})
		fillEllipse(img, 12, 18, 10, 13, paper)
		fillRect(img, 10, 14, 14, 24, color.RGBA{R: 255, G: 200, B: 120, A: 255})
		return NewSprite(name, img)

	case "sun":
		img := blank(60, 60)
		fillEllipse(img, 30, 30, 26, 26, color.RGBA{R: 255, G: 220, B: 100, A: 255})
		return NewSprite(name, img)
	case "moon":
		img := blank(50, 50)
		fillEllipse(img, 25, 25, 22, 22, color.RGBA{R: 230, G: 230, B: 210, A: 255})
		fillEllipse(img, 33, 20, 16, 16, color.RGBA{R: 0, G: 0, B: 0, A: 0})
		return NewSprite(name, img)
	}

	// Missing-texture checker for anything unnamed.
	img := blank(40, 40)
	magenta := color.RGBA{R: 255, G: 0, B: 255, A: 255}
	dark := color.RGBA{R: 40, G: 0, B: 40, A: 255}
	for y := 0; y < 40; y += 10 {
		for x := 0; x < 40; x += 10 {
			c := magenta
			if (x/10+y/10)%2 == 0 {
				c = dark
			}
			fillRect(img, x, y, x+10, y+10, c)
		}
	}
	return NewSprite(name, img)
}
