package sprite

import (
	"image"

	"github.com/npillmayer/fontpack/core"
	"github.com/npillmayer/fontpack/core/bitmap"
)

// Sprite is a collection of frames, indexed by direction and frame number.
type Sprite struct {
	Dirs [][]*image.Gray
}

// New creates a sprite with ndir directions of nfrm empty frame slots each.
func New(ndir, nfrm int) *Sprite {
	spr := &Sprite{Dirs: make([][]*image.Gray, ndir)}
	for d := range spr.Dirs {
		spr.Dirs[d] = make([]*image.Gray, nfrm)
	}
	return spr
}

// NDir is the number of directions.
func (spr *Sprite) NDir() int {
	return len(spr.Dirs)
}

// NFrames is the number of frames of direction d.
func (spr *Sprite) NFrames(d int) int {
	if d < 0 || d >= len(spr.Dirs) {
		return 0
	}
	return len(spr.Dirs[d])
}

func (spr *Sprite) check(d, i int) error {
	if d < 0 || d >= len(spr.Dirs) {
		return core.Error(core.EINVALID, "direction %d out of range [0,%d)", d, len(spr.Dirs))
	}
	if i < 0 || i >= len(spr.Dirs[d]) {
		return core.Error(core.EINVALID, "frame %d out of range [0,%d)", i, len(spr.Dirs[d]))
	}
	return nil
}

// Frame returns frame i of direction d.
func (spr *Sprite) Frame(d, i int) (*image.Gray, error) {
	if err := spr.check(d, i); err != nil {
		return nil, err
	}
	return spr.Dirs[d][i], nil
}

// SetFrame stores img as frame i of direction d.
func (spr *Sprite) SetFrame(d, i int, img *image.Gray) error {
	if err := spr.check(d, i); err != nil {
		return err
	}
	spr.Dirs[d][i] = img
	return nil
}

// Append adds img as a new last frame of direction d and returns its index.
func (spr *Sprite) Append(d int, img *image.Gray) (int, error) {
	if d < 0 || d >= len(spr.Dirs) {
		return 0, core.Error(core.EINVALID, "direction %d out of range [0,%d)", d, len(spr.Dirs))
	}
	spr.Dirs[d] = append(spr.Dirs[d], img)
	return len(spr.Dirs[d]) - 1, nil
}

// Take moves frame i of direction d out of the sprite, leaving an empty slot.
func (spr *Sprite) Take(d, i int) (*image.Gray, error) {
	img, err := spr.Frame(d, i)
	if err != nil {
		return nil, err
	}
	spr.Dirs[d][i] = nil
	return img, nil
}

// Atlas packs the frames of all directions row by row into one sheet with
// cols columns. Every frame gets a cell of the size of the largest frame,
// and is placed in the cell's top left corner. Empty slots stay blank.
// The rectangles returned locate each frame in the sheet, in order.
func (spr *Sprite) Atlas(cols int) (*image.Gray, []image.Rectangle) {
	if cols <= 0 {
		cols = 16
	}
	cw, ch, n := 1, 1, 0
	for _, frames := range spr.Dirs {
		for _, img := range frames {
			cw, ch = max(cw, bitmap.Width(img)), max(ch, bitmap.Height(img))
			n++
		}
	}
	rows := (n + cols - 1) / cols
	sheet := bitmap.New(min(n, cols)*cw, rows*ch)
	rects := make([]image.Rectangle, 0, n)
	k := 0
	for _, frames := range spr.Dirs {
		for _, img := range frames {
			x, y := (k%cols)*cw, (k/cols)*ch
			bitmap.Draw(sheet, img, x, y)
			rects = append(rects, image.Rect(x, y, x+bitmap.Width(img), y+bitmap.Height(img)))
			k++
		}
	}
	tracer().Debugf("atlas of %d frames: %dx%d cells of %dx%d", n, min(n, cols), rows, cw, ch)
	return sheet, rects
}
