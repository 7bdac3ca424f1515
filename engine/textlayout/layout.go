package textlayout

import (
	"image"
	"strings"

	"github.com/npillmayer/fontpack/core/bitmap"
	"github.com/npillmayer/fontpack/core/bmfont"
)

// Extent returns the pixel size of text rendered with f.
//
// The height starts with one line spacing per line and grows if glyphs of the
// last lines stick out below. The width is the rightmost ink (or advance)
// position of all lines. Every character other than '\n' has to be present
// in f with a bitmap.
func Extent(f *bmfont.Font, text string) (w, h int, err error) {
	lnSpacing := int(f.LnSpacing)
	nlines := strings.Count(text, "\n") + 1
	h = nlines * lnSpacing
	hcur := h - lnSpacing
	x, xmax := 0, 0
	for _, r := range text {
		if r == '\n' {
			w = max(w, xmax)
			xmax, x = 0, 0
			hcur -= lnSpacing
			continue
		}
		g, err := f.Lookup(r)
		if err != nil {
			return 0, 0, err
		}
		h = max(h, hcur+g.Height())
		xmax = max(xmax, x+g.BearX+g.Width())
		x += g.Advance
	}
	w = max(w, xmax)
	tracer().Debugf("extent of %q = %d x %d", text, w, h)
	return w, h, nil
}

// Render draws text onto a new canvas of size Extent(f, text). Ink is copied
// as is, later glyphs overwrite earlier ones where they overlap.
func Render(f *bmfont.Font, text string) (*image.Gray, error) {
	w, h, err := Extent(f, text)
	if err != nil {
		return nil, err
	}
	canvas := bitmap.New(w, h)
	lnSpacing := int(f.LnSpacing)
	x, y := 0, h-strings.Count(text, "\n")*lnSpacing
	for _, r := range text {
		if r == '\n' {
			x = 0
			y += lnSpacing
			continue
		}
		g, _ := f.Lookup(r) // checked by Extent
		bitmap.Draw(canvas, g.Bitmap, x+g.BearX, y-g.BearY)
		x += g.Advance
	}
	return canvas, nil
}
