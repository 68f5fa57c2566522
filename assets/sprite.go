package assets

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite is an immutable set of animation frames. Source frames stay as
// plain image.Image so collision masks and tests never need a graphics
// context; ebiten textures are converted lazily on first draw.
type Sprite struct {
	Name string

	frames       []image.Image
	ebitenFrames []*ebiten.Image
	visH         int // cached opaque height of frame 0, 0 = not computed
}

func NewSprite(name string, frames ...image.Image) *Sprite {
	return &Sprite{
		Name:         name,
		frames:       frames,
		ebitenFrames: make([]*ebiten.Image, len(frames)),
	}
}

func (s *Sprite) FrameCount() int {
	return len(s.frames)
}

// Frame returns the source image for the given index, wrapping around the
// frame count.
func (s *Sprite) Frame(i int) image.Image {
	if len(s.frames) == 0 {
		return nil
	}
	return s.frames[((i%len(s.frames))+len(s.frames))%len(s.frames)]
}

// Size reports the bounds of the first frame.
func (s *Sprite) Size() (int, int) {
	if len(s.frames) == 0 {
		return 0, 0
	}
	b := s.frames[0].Bounds()
	return b.Dx(), b.Dy()
}

// VisibleHeight measures the opaque extent of the first frame, so asset
// obstacles with generous transparent padding still get fair hitboxes.
func (s *Sprite) VisibleHeight() int {
	if s.visH > 0 {
		return s.visH
	}
	if len(s.frames) == 0 {
		return 0
	}
	b := s.frames[0].Bounds()
	top, bottom := -1, -1
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			_, _, _, a := s.frames[0].At(x, y).RGBA()
			if a>>8 > 127 {
				if top < 0 {
					top = y
				}
				bottom = y
				break
			}
		}
	}
	if top < 0 {
		s.visH = b.Dy()
	} else {
		s.visH = bottom - top + 1
	}
	return s.visH
}

// EbitenFrame converts the frame to a GPU texture on first use.
func (s *Sprite) EbitenFrame(i int) *ebiten.Image {
	if len(s.frames) == 0 {
		return nil
	}
	idx := ((i % len(s.frames)) + len(s.frames)) % len(s.frames)
	if s.ebitenFrames[idx] == nil {
		s.ebitenFrames[idx] = ebiten.NewImageFromImage(s.frames[idx])
	}
	return s.ebitenFrames[idx]
}
