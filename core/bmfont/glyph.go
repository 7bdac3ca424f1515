package bmfont

import (
	"fmt"
	"image"
	"image/color"

	"github.com/npillmayer/fontpack/core/bitmap"
)

// NoFace marks a glyph without a face reference.
const NoFace = -1

// HasBitmap tells if and how a glyph's output fields have been populated.
type HasBitmap uint8

const (
	NoBitmap    HasBitmap = iota // not rasterized yet
	DummyBitmap                  // 1×1 placeholder
	RealBitmap                   // rasterized or decoded image
)

func (hb HasBitmap) String() string {
	switch hb {
	case NoBitmap:
		return "none"
	case DummyBitmap:
		return "dummy"
	case RealBitmap:
		return "real"
	}
	return fmt.Sprintf("HasBitmap(%d)", uint8(hb))
}

// Glyph is the record for a single character code.
type Glyph struct {
	// input, fixed once rasterization starts
	Char         uint16
	AntiAliasing bool
	FaceIdx      int    // index into Font.Faces, or NoFace
	Size         uint32 // requested pixel size
	FgColor      color.RGBA
	BgColor      color.RGBA
	Flag         uint8 // secondary flag byte of the table entry
	// output
	HasBitmap HasBitmap
	BearX     int // left side bearing, ≥ 0 after normalization
	BearY     int // top of bitmap above the baseline
	Advance   int
	Bitmap    *image.Gray
	Valid     bool // false for synthesized placeholders
}

// NewGlyph creates an unrasterized glyph record with default input fields.
func NewGlyph(ch uint16) *Glyph {
	return &Glyph{
		Char:         ch,
		AntiAliasing: true,
		FaceIdx:      NoFace,
		FgColor:      color.RGBA{R: 255, G: 255, B: 255, A: 255},
		BgColor:      color.RGBA{A: 255},
		Flag:         1,
		Valid:        true,
	}
}

// Descent is how far the glyph's bitmap extends below the baseline.
func (g *Glyph) Descent() int {
	return bitmap.Height(g.Bitmap) - g.BearY
}

// Width is the width of the glyph's bitmap.
func (g *Glyph) Width() int {
	return bitmap.Width(g.Bitmap)
}

// Height is the height of the glyph's bitmap.
func (g *Glyph) Height() int {
	return bitmap.Height(g.Bitmap)
}

// MakePlaceholder turns g into a 1×1 blank placeholder with the given
// advance.
func (g *Glyph) MakePlaceholder(advance int) {
	g.Valid = false
	g.BearX = 0
	g.BearY = 1
	g.Advance = advance
	g.HasBitmap = DummyBitmap
	g.Bitmap = bitmap.Dummy()
}

// SetReal stores a rasterized image and its metrics.
func (g *Glyph) SetReal(bmp *image.Gray, bearX, bearY, advance int) {
	g.Bitmap = bmp
	g.BearX = bearX
	g.BearY = bearY
	g.Advance = advance
	g.HasBitmap = RealBitmap
	g.Valid = true
}

func (g *Glyph) String() string {
	return fmt.Sprintf("glyph[U+%04X %s %dx%d bear=(%d,%d) adv=%d]", g.Char,
		g.HasBitmap, g.Width(), g.Height(), g.BearX, g.BearY, g.Advance)
}
