package assets

import (
	"image"
	"image/color"
	"testing"
)

func TestFrameWraps(t *testing.T) {
	a := solidImage(4, 4, 255)
	b := solidImage(4, 4, 200)
	s := NewSprite("two-frame", a, b)

	tests := []struct {
		idx  int
		want image.Image
	}{
		{0, a}, {1, b}, {2, a}, {3, b}, {-1, b}, {-2, a},
	}
	for _, tt := range tests {
		if got := s.Frame(tt.idx); got != tt.want {
			t.Errorf("Frame(%d) returned the wrong frame", tt.idx)
		}
	}
}

func TestEmptySprite(t *testing.T) {
	s := NewSprite("empty")
	if s.Frame(0) != nil {
		t.Error("expected nil frame")
	}
	if w, h := s.Size(); w != 0 || h != 0 {
		t.Errorf("expected zero size, got %dx%d", w, h)
	}
	if s.VisibleHeight() != 0 {
		t.Errorf("expected zero visible height, got %d", s.VisibleHeight())
	}
}

func TestVisibleHeightIgnoresPadding(t *testing.T) {
	// 10px tall frame with opaque rows 3..6 only.
	img := image.NewRGBA(image.Rect(0, 0, 4, 10))
	for y := 3; y <= 6; y++ {
		for x := 0; x < 4; x++ {
			img.SetRGBA(x, y, color.RGBA{A: 255})
		}
	}
	s := NewSprite("padded", img)

	if got := s.VisibleHeight(); got != 4 {
		t.Errorf("expected visible height 4, got %d", got)
	}
}

func TestVisibleHeightFullyTransparentFrame(t *testing.T) {
	s := NewSprite("ghost", image.NewRGBA(image.Rect(0, 0, 4, 10)))

	// With no opaque pixels the full frame height is the only sane answer.
	if got := s.VisibleHeight(); got != 10 {
		t.Errorf("expected full height 10, got %d", got)
	}
}
