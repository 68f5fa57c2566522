package assets

import (
	"image"
)

// Mask is a bitmap of the opaque pixels of a scaled sprite frame. Pixels
// with alpha above 127 count as solid.
type Mask struct {
	W, H int
	bits []bool
}

func (m *Mask) At(x, y int) bool {
	if x < 0 || y < 0 || x >= m.W || y >= m.H {
		return false
	}
	return m.bits[y*m.W+x]
}

// MaskFromImage builds a mask at the image's native size.
func MaskFromImage(img image.Image) *Mask {
	b := img.Bounds()
	m := &Mask{W: b.Dx(), H: b.Dy(), bits: make([]bool, b.Dx()*b.Dy())}
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			m.bits[y*m.W+x] = a>>8 > 127
		}
	}
	return m
}

// Scaled resamples the mask to w x h with nearest neighbor.
func (m *Mask) Scaled(w, h int) *Mask {
	if w == m.W && h == m.H {
		return m
	}
	out := &Mask{W: w, H: h, bits: make([]bool, w*h)}
	if w <= 0 || h <= 0 || m.W == 0 || m.H == 0 {
		return out
	}
	for y := 0; y < h; y++ {
		sy := y * m.H / h
		for x := 0; x < w; x++ {
			sx := x * m.W / w
			out.bits[y*w+x] = m.bits[sy*m.W+sx]
		}
	}
	return out
}

// Overlap reports whether any solid pixel of a placed at (ax, ay) covers a
// solid pixel of b placed at (bx, by).
func Overlap(a *Mask, ax, ay int, b *Mask, bx, by int) bool {
	// Intersect the two rects first.
	x0 := max(ax, bx)
	y0 := max(ay, by)
	x1 := min(ax+a.W, bx+b.W)
	y1 := min(ay+a.H, by+b.H)
	if x0 >= x1 || y0 >= y1 {
		return false
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if a.At(x-ax, y-ay) && b.At(x-bx, y-by) {
				return true
			}
		}
	}
	return false
}

type maskKey struct {
	sprite *Sprite
	frame  int
	w, h   int
}

// The game loop is single threaded, so the cache needs no locking.
var maskCache = map[maskKey]*Mask{}

// SpriteMask returns the mask of the given frame scaled to w x h. Masks
// are cached per (sprite, frame, size) so animated sprites only pay the
// resample cost once per displayed frame.
func SpriteMask(s *Sprite, frame, w, h int) *Mask {
	if s.FrameCount() == 0 {
		return &Mask{W: w, H: h, bits: make([]bool, w*h)}
	}
	frame = ((frame % s.FrameCount()) + s.FrameCount()) % s.FrameCount()
	key := maskKey{sprite: s, frame: frame, w: w, h: h}
	if m, ok := maskCache[key]; ok {
		return m
	}
	base := MaskFromImage(s.Frame(frame)).Scaled(w, h)
	maskCache[key] = base
	return base
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
