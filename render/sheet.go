package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sheet is a sprite sheet sliced into equally sized frames, row by row
type Sheet struct {
	image  *ebiten.Image
	frames []*ebiten.Image
}

// NewSheet slices img into cols x rows frames
func NewSheet(img *ebiten.Image, cols, rows int) *Sheet {
	b := img.Bounds()
	s := &Sheet{image: img, frames: make([]*ebiten.Image, 0, cols*rows)}
	for i := 0; i < cols*rows; i++ {
		r := frameRect(b.Dx(), b.Dy(), cols, rows, i).Add(b.Min)
		s.frames = append(s.frames, img.SubImage(r).(*ebiten.Image))
	}
	return s
}

// Frame returns frame i, clamped to the valid range
func (s *Sheet) Frame(i int) *ebiten.Image {
	if len(s.frames) == 0 {
		return s.image
	}
	if i < 0 {
		i = 0
	}
	if i >= len(s.frames) {
		i = len(s.frames) - 1
	}
	return s.frames[i]
}

// Len returns the number of frames
func (s *Sheet) Len() int {
	return len(s.frames)
}

// frameRect returns the bounds of frame i in a width x height sheet
func frameRect(width, height, cols, rows, i int) image.Rectangle {
	fw, fh := width/cols, height/rows
	x, y := (i%cols)*fw, (i/cols)*fh
	return image.Rect(x, y, x+fw, y+fh)
}

// progressFrame maps a progress value in [0, 1] to one of n frames
func progressFrame(progress float64, n int) int {
	if n <= 0 {
		return 0
	}
	i := int(progress * float64(n))
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
