/*
Package bitmap holds helpers for the grayscale pixel buffers glyphs are
stored in.

All bitmaps are *image.Gray with their bounds anchored at (0,0). A pixel value
of 0 is blank (background), any other value is ink intensity.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package bitmap

import (
	"bytes"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

// New creates a blank bitmap of size w × h.
func New(w, h int) *image.Gray {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return image.NewGray(image.Rect(0, 0, w, h))
}

// Dummy creates the 1×1 blank bitmap used for placeholder glyphs.
func Dummy() *image.Gray {
	return New(1, 1)
}

// Width returns the width of bmp, 0 for nil.
func Width(bmp *image.Gray) int {
	if bmp == nil {
		return 0
	}
	return bmp.Bounds().Dx()
}

// Height returns the height of bmp, 0 for nil.
func Height(bmp *image.Gray) int {
	if bmp == nil {
		return 0
	}
	return bmp.Bounds().Dy()
}

// IsEmpty is true if bmp has no pixels.
func IsEmpty(bmp *image.Gray) bool {
	return Width(bmp) == 0 || Height(bmp) == 0
}

// Fill sets every pixel of bmp to v.
func Fill(bmp *image.Gray, v uint8) {
	if bmp == nil {
		return
	}
	for i := range bmp.Pix {
		bmp.Pix[i] = v
	}
}

// Draw blits src into dst with src's top left corner at (x, y).
// Pixels falling outside of dst are clipped.
func Draw(dst, src *image.Gray, x, y int) {
	if dst == nil || src == nil {
		return
	}
	r := src.Bounds().Sub(src.Bounds().Min).Add(image.Pt(x, y))
	draw.Draw(dst, r, src, src.Bounds().Min, draw.Src)
}

// Clone returns a deep copy of bmp, re-anchored at (0,0).
func Clone(bmp *image.Gray) *image.Gray {
	if bmp == nil {
		return nil
	}
	c := New(Width(bmp), Height(bmp))
	Draw(c, bmp, 0, 0)
	return c
}

// Equal is true if a and b have identical size and pixel content.
func Equal(a, b *image.Gray) bool {
	if Width(a) != Width(b) || Height(a) != Height(b) {
		return false
	}
	if IsEmpty(a) {
		return true
	}
	w := Width(a)
	for y := 0; y < Height(a); y++ {
		ra := a.Pix[a.PixOffset(a.Bounds().Min.X, a.Bounds().Min.Y+y):]
		rb := b.Pix[b.PixOffset(b.Bounds().Min.X, b.Bounds().Min.Y+y):]
		if !bytes.Equal(ra[:w], rb[:w]) {
			return false
		}
	}
	return true
}

// FromAlpha converts a rasterizer mask into a bitmap of size r, reading the
// mask at maskp.
func FromAlpha(mask image.Image, r image.Rectangle, maskp image.Point) *image.Gray {
	bmp := New(r.Dx(), r.Dy())
	for y := 0; y < r.Dy(); y++ {
		for x := 0; x < r.Dx(); x++ {
			_, _, _, a := mask.At(maskp.X+x, maskp.Y+y).RGBA()
			bmp.SetGray(x, y, color.Gray{Y: uint8(a >> 8)})
		}
	}
	return bmp
}

// Threshold turns bmp into a monochrome bitmap, in place.
func Threshold(bmp *image.Gray, limit uint8) {
	for i, v := range bmp.Pix {
		if v >= limit {
			bmp.Pix[i] = 0xff
		} else {
			bmp.Pix[i] = 0
		}
	}
}

var gammaTable = func() (t [256]uint8) {
	for i := range t {
		o := 255 * math.Pow(float64(i)/255.0, 1/2.2)
		if o > 255 {
			o = 255
		}
		t[i] = uint8(o)
	}
	return
}()

// GammaCorrect brightens anti-aliased edges of bmp with a 1/2.2 gamma curve,
// in place.
func GammaCorrect(bmp *image.Gray) {
	for i, v := range bmp.Pix {
		bmp.Pix[i] = gammaTable[v]
	}
}

// InkCount counts pixels that are not blank.
func InkCount(bmp *image.Gray) (n int) {
	if bmp == nil {
		return 0
	}
	for y := 0; y < Height(bmp); y++ {
		for x := 0; x < Width(bmp); x++ {
			if bmp.GrayAt(bmp.Bounds().Min.X+x, bmp.Bounds().Min.Y+y).Y != 0 {
				n++
			}
		}
	}
	return
}
