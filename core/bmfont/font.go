package bmfont

import (
	"image/color"

	"github.com/npillmayer/fontpack/core"
)

// MaxChars is the size of the character code space.
const MaxChars = 1 << 16

// AutoPadding lets the normalizer compute the descent padding.
const AutoPadding = -1

// Height constants per script. Line spacing is scaled by HeightConstant/10
// by the consuming engine.
const (
	HeightConstantLatin    = 14
	HeightConstantJapanese = 15
	HeightConstantChinese  = 17
)

// Font owns a table of glyph records and the font-wide metrics.
// A Font must not be mutated from more than one goroutine at a time.
type Font struct {
	glyphs [MaxChars]*Glyph
	count  int
	// configuration
	Faces          []string
	Palettes       []color.Palette
	Size           uint32 // size of the first face entry
	LnSpacingOff   int
	CapHeightOff   int
	DescentPadding int // AutoPadding for automatic
	OriginOffset   int
	DescentOffset  int
	HeightConstant int
	// table header fields
	LnSpacing      uint32
	CapHeight      uint32
	ScriptCategory uint16
}

// NewFont creates an empty font with default settings.
func NewFont() *Font {
	f := &Font{}
	f.Clear()
	return f
}

// Clear drops all glyphs and resets every setting to its default.
func (f *Font) Clear() {
	for i := range f.glyphs {
		f.glyphs[i] = nil
	}
	f.count = 0
	f.Faces = nil
	f.Palettes = nil
	f.Size = 0
	f.LnSpacingOff = 1
	f.CapHeightOff = 0
	f.DescentPadding = AutoPadding
	f.OriginOffset = 0
	f.DescentOffset = 0
	f.HeightConstant = HeightConstantLatin
	f.LnSpacing = 0
	f.CapHeight = 0
	f.ScriptCategory = 0
}

// AddGlyph creates a record for ch. Every code may be added once.
func (f *Font) AddGlyph(ch uint16) (*Glyph, error) {
	if f.glyphs[ch] != nil {
		return nil, core.Error(core.EINVALID, "duplicate glyph record for char (%d)", ch)
	}
	g := NewGlyph(ch)
	f.glyphs[ch] = g
	f.count++
	return g, nil
}

// Glyph returns the record for ch, or nil.
func (f *Font) Glyph(ch uint16) *Glyph {
	return f.glyphs[ch]
}

// Lookup returns the record for ch and checks that it may be used for layout
// or encoding.
func (f *Font) Lookup(ch rune) (*Glyph, error) {
	if ch < 0 || ch >= MaxChars {
		return nil, core.Error(core.EINVALID, "char (%d) is outside of the 16-bit code space", ch)
	}
	g := f.glyphs[ch]
	if g == nil {
		return nil, core.Error(core.EMISSING, "no glyph record for char (%d)", ch)
	}
	if g.HasBitmap == NoBitmap {
		tracer().Errorf("char (%d) used before rasterization", ch)
		return nil, core.Error(core.EINVALID, "no bitmap for char (%d)", ch)
	}
	return g, nil
}

// Count is the number of glyph records.
func (f *Font) Count() int {
	return f.count
}

// Codes lists all character codes with a record, in ascending order.
func (f *Font) Codes() []uint16 {
	codes := make([]uint16, 0, f.count)
	for ch, g := range f.glyphs {
		if g != nil {
			codes = append(codes, uint16(ch))
		}
	}
	return codes
}

// Pending lists the records still waiting for rasterization, in ascending
// code order.
func (f *Font) Pending() []*Glyph {
	var pending []*Glyph
	for _, g := range f.glyphs {
		if g != nil && g.HasBitmap == NoBitmap {
			pending = append(pending, g)
		}
	}
	return pending
}
