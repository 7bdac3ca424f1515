package tbl

import (
	"bytes"
	"testing"

	"github.com/npillmayer/fontpack/backend/sprite"
	"github.com/npillmayer/fontpack/core"
	"github.com/npillmayer/fontpack/core/bitmap"
	"github.com/npillmayer/fontpack/core/bmfont"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rasterizedFont has real glyphs for 'a' and 'c' and a placeholder for 'b'.
func rasterizedFont(t *testing.T) *bmfont.Font {
	f := bmfont.NewFont()
	f.LnSpacing, f.CapHeight, f.ScriptCategory = 13, 2, 7
	for i, ch := range "cab" {
		g, err := f.AddGlyph(uint16(ch))
		require.NoError(t, err)
		if ch == 'b' {
			g.MakePlaceholder(3)
			continue
		}
		bmp := bitmap.New(4+i, 10)
		for j := range bmp.Pix {
			bmp.Pix[j] = uint8(j * (i + 1))
		}
		g.SetReal(bmp, 0, 10, 5+i)
		g.Flag = uint8(i + 1)
	}
	return f
}

func TestBinaryLayout(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontpack.tbl")
	defer teardown()
	//
	tb := NewTable()
	tb.Header.ScriptCategory = 0x0102
	tb.Header.CharCount = 1
	tb.Header.LnSpacing = 0x03040506
	tb.Header.CapHeight = 1
	tb.Entries = []Entry{{Code: 0x4E2D, Advance: 9, Height: 15, Flag: 1, Frame: 0x0201}}
	var buf bytes.Buffer
	n, err := tb.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(HeaderSize+EntrySize), n)
	assert.Equal(t, []byte{
		'W', 'o', 'o', '!', 1, 0x02, 0x01, 1, 0, 0x06, 0x05, 0x04, 0x03, 1, 0, 0, 0,
		0x2D, 0x4E, 0, 0, 9, 15, 1, 0, 0x01, 0x02, 0, 0,
	}, buf.Bytes())
	back, err := ReadTable(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, tb.Header, back.Header)
	assert.Equal(t, tb.Entries, back.Entries)
}

func TestReadTableValidation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontpack.tbl")
	defer teardown()
	//
	tb := NewTable()
	tb.Header.CharCount = 2
	tb.Entries = []Entry{{Code: 1}}
	var buf bytes.Buffer
	_, err := tb.WriteTo(&buf)
	require.NoError(t, err)
	_, err = ReadTable(bytes.NewReader(buf.Bytes()))
	assert.Equal(t, core.EINVALID, core.Code(err), "truncated")
	data := buf.Bytes()
	data[0] = 'X'
	_, err = ReadTable(bytes.NewReader(data))
	assert.Equal(t, core.EINVALID, core.Code(err), "signature")
	data[0] = 'W'
	data[4] = 2
	_, err = ReadTable(bytes.NewReader(data))
	assert.Equal(t, core.EINVALID, core.Code(err), "version")
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontpack.tbl")
	defer teardown()
	//
	f := rasterizedFont(t)
	spr, tb, err := Encode(f)
	require.NoError(t, err)
	assert.Equal(t, uint16(3), tb.Header.CharCount)
	assert.Equal(t, 3, spr.NFrames(0))
	// ascending codes, placeholder 'b' gets frame 0
	assert.Equal(t, uint16('a'), tb.Entries[0].Code)
	assert.Equal(t, uint16(0), tb.Entries[1].Frame)
	assert.Equal(t, uint16(2), tb.Entries[2].Frame)
	//
	g, err := Decode(spr, tb)
	require.NoError(t, err)
	assert.Equal(t, f.LnSpacing, g.LnSpacing)
	assert.Equal(t, f.CapHeight, g.CapHeight)
	assert.Equal(t, f.ScriptCategory, g.ScriptCategory)
	assert.Equal(t, f.LnSpacing, g.Size)
	for _, ch := range []uint16{'a', 'c'} {
		want, got := f.Glyph(ch), g.Glyph(ch)
		require.NotNil(t, got)
		assert.Equal(t, bmfont.RealBitmap, got.HasBitmap)
		assert.True(t, got.Valid)
		assert.Equal(t, want.Advance, got.Advance)
		assert.Equal(t, want.Height(), got.Height())
		assert.Equal(t, want.BearY, got.BearY)
		assert.Equal(t, want.Flag, got.Flag)
		assert.Equal(t, f.LnSpacing, got.Size)
		assert.True(t, bitmap.Equal(want.Bitmap, got.Bitmap), "bitmap of %c", ch)
		assert.NotSame(t, want.Bitmap, got.Bitmap)
	}
	b := g.Glyph('b')
	assert.Equal(t, bmfont.DummyBitmap, b.HasBitmap)
	assert.False(t, b.Valid)
	assert.Equal(t, 3, b.Advance)
	assert.Equal(t, 1, b.Height())
	// frames have been moved into the font
	img, _ := spr.Frame(0, 0)
	assert.Nil(t, img)
}

func TestEncodeFailures(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontpack.tbl")
	defer teardown()
	//
	f := rasterizedFont(t)
	_, err := f.AddGlyph('z')
	require.NoError(t, err)
	_, _, err = Encode(f)
	assert.Equal(t, core.EINVALID, core.Code(err), "unrasterized glyph")
	//
	f = rasterizedFont(t)
	f.Glyph('a').Advance = 256
	_, _, err = Encode(f)
	assert.Equal(t, core.ECAPACITY, core.Code(err), "advance overflow")
	//
	f = rasterizedFont(t)
	f.Glyph('c').Bitmap = bitmap.New(2, 300)
	_, _, err = Encode(f)
	assert.Equal(t, core.ECAPACITY, core.Code(err), "height overflow")
}

func TestDecodeFailures(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontpack.tbl")
	defer teardown()
	//
	fresh := func() (*sprite.Sprite, *Table) {
		spr, tb, err := Encode(rasterizedFont(t))
		require.NoError(t, err)
		return spr, tb
	}
	spr, tb := fresh()
	tb.Header.CharCount = 4
	f, err := Decode(spr, tb)
	assert.Nil(t, f)
	assert.Equal(t, core.EINVALID, core.Code(err), "count mismatch")
	//
	spr, tb = fresh()
	spr.Dirs = append(spr.Dirs, spr.Dirs[0])
	_, err = Decode(spr, tb)
	assert.Equal(t, core.EINVALID, core.Code(err), "two directions")
	//
	spr, tb = fresh()
	tb.Entries[2].Code = tb.Entries[0].Code
	_, err = Decode(spr, tb)
	assert.Equal(t, core.EINVALID, core.Code(err), "duplicate")
	img, _ := spr.Frame(0, 0)
	assert.NotNil(t, img, "sprite must stay intact on error")
	//
	spr, tb = fresh()
	tb.Entries[2].Frame = 3
	_, err = Decode(spr, tb)
	assert.Equal(t, core.EINVALID, core.Code(err), "frame index out of range")
	//
	spr, tb = fresh()
	tb.Entries[2].Frame = 0 // would become a placeholder taking frame 2
	tb.Entries[0].Frame = 2
	_, err = Decode(spr, tb)
	assert.Equal(t, core.EINVALID, core.Code(err), "frame referenced twice")
}

func TestAssetDirectory(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontpack.tbl")
	defer teardown()
	//
	dir := t.TempDir()
	f := rasterizedFont(t)
	_, _, err := WriteAsset(dir, f)
	require.NoError(t, err)
	g, tb, err := ReadAsset(dir)
	require.NoError(t, err)
	assert.Len(t, tb.Entries, 3)
	assert.True(t, bitmap.Equal(f.Glyph('c').Bitmap, g.Glyph('c').Bitmap))
	_, _, err = ReadAsset(t.TempDir())
	assert.Equal(t, core.EMISSING, core.Code(err))
}
