package tbl

import (
	"math"

	"github.com/npillmayer/fontpack/backend/sprite"
	"github.com/npillmayer/fontpack/core"
	"github.com/npillmayer/fontpack/core/bitmap"
	"github.com/npillmayer/fontpack/core/bmfont"
)

// Decode builds a font from a table and its sprite. Frames are moved out of
// spr into the glyph records. The whole input is validated before anything
// is moved, so on error spr is left intact and no font is returned.
func Decode(spr *sprite.Sprite, t *Table) (*bmfont.Font, error) {
	if spr.NDir() != 1 {
		return nil, core.Error(core.EINVALID, "sprite has %d directions, only one is supported", spr.NDir())
	}
	nfrm := spr.NFrames(0)
	if nfrm != int(t.Header.CharCount) {
		return nil, core.Error(core.EINVALID, "sprite has %d frames, table announces %d chars",
			nfrm, t.Header.CharCount)
	}
	if len(t.Entries) != nfrm {
		return nil, core.Error(core.EINVALID, "table has %d entries for %d frames", len(t.Entries), nfrm)
	}
	var seen [bmfont.MaxChars]bool
	used := make([]bool, nfrm)
	for pos, e := range t.Entries {
		if seen[e.Code] {
			return nil, core.Error(core.EINVALID, "duplicate table entry for char (%d)", e.Code)
		}
		seen[e.Code] = true
		if int(e.Frame) >= nfrm {
			return nil, core.Error(core.EINVALID, "frame index %d of char (%d) is out of range [0,%d)",
				e.Frame, e.Code, nfrm)
		}
		i := frameOf(pos, e)
		if used[i] {
			return nil, core.Error(core.EINVALID, "frame %d is referenced more than once", i)
		}
		if img, _ := spr.Frame(0, i); img == nil {
			return nil, core.Error(core.EINVALID, "frame %d of char (%d) is empty", i, e.Code)
		}
		used[i] = true
	}
	f := bmfont.NewFont()
	f.LnSpacing = t.Header.LnSpacing
	f.CapHeight = t.Header.CapHeight
	f.ScriptCategory = t.Header.ScriptCategory
	f.Size = t.Header.LnSpacing
	for pos, e := range t.Entries {
		g, err := f.AddGlyph(e.Code)
		if err != nil { // checked above
			return nil, err
		}
		img, _ := spr.Take(0, frameOf(pos, e))
		g.SetReal(img, 0, int(e.Height), int(e.Advance))
		g.Flag = e.Flag
		g.Size = t.Header.LnSpacing
		if isPlaceholder(pos, e) {
			g.HasBitmap = bmfont.DummyBitmap
			g.Valid = false
		}
	}
	tracer().Infof("decoded font with %d glyphs, line spacing %d", f.Count(), f.LnSpacing)
	return f, nil
}

func isPlaceholder(pos int, e Entry) bool {
	return pos > 0 && e.Frame == 0
}

// frameOf is the frame holding the image of the entry at pos.
func frameOf(pos int, e Entry) int {
	if isPlaceholder(pos, e) {
		return pos
	}
	return int(e.Frame)
}

// Encode creates the table and sprite for f. Every glyph has to be
// rasterized. Bitmaps are copied, f is not modified.
func Encode(f *bmfont.Font) (*sprite.Sprite, *Table, error) {
	codes := f.Codes()
	if len(codes) > math.MaxUint16 {
		return nil, nil, core.Error(core.ECAPACITY, "too many chars for a table: %d > %d",
			len(codes), math.MaxUint16)
	}
	t := NewTable()
	t.Header.ScriptCategory = f.ScriptCategory
	t.Header.CharCount = uint16(len(codes))
	t.Header.LnSpacing = f.LnSpacing
	t.Header.CapHeight = f.CapHeight
	t.Entries = make([]Entry, 0, len(codes))
	spr := sprite.New(1, 0)
	for pos, ch := range codes {
		g, err := f.Lookup(rune(ch))
		if err != nil {
			return nil, nil, err
		}
		if g.Advance < 0 || g.Advance > math.MaxUint8 {
			return nil, nil, core.Error(core.ECAPACITY, "advance %d of char (%d) does not fit into a byte",
				g.Advance, ch)
		}
		if g.Height() > math.MaxUint8 {
			return nil, nil, core.Error(core.ECAPACITY, "height %d of char (%d) does not fit into a byte",
				g.Height(), ch)
		}
		e := Entry{
			Code:    ch,
			Advance: uint8(g.Advance),
			Height:  uint8(g.Height()),
			Flag:    g.Flag,
		}
		if g.Valid {
			e.Frame = uint16(pos)
		}
		t.Entries = append(t.Entries, e)
		if _, err := spr.Append(0, bitmap.Clone(g.Bitmap)); err != nil {
			return nil, nil, err
		}
	}
	tracer().Infof("encoded %d glyphs", len(t.Entries))
	return spr, t, nil
}
