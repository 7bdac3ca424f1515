package bmfont

import (
	"testing"

	"github.com/npillmayer/fontpack/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFontDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontpack.font")
	defer teardown()
	//
	f := NewFont()
	assert.Equal(t, 1, f.LnSpacingOff)
	assert.Equal(t, AutoPadding, f.DescentPadding)
	assert.Equal(t, HeightConstantLatin, f.HeightConstant)
	assert.Equal(t, 0, f.Count())
}

func TestAddGlyphRejectsDuplicates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontpack.font")
	defer teardown()
	//
	f := NewFont()
	g, err := f.AddGlyph('A')
	require.NoError(t, err)
	assert.Equal(t, NoFace, g.FaceIdx)
	assert.Equal(t, uint8(1), g.Flag)
	_, err = f.AddGlyph('A')
	assert.Equal(t, core.EINVALID, core.Code(err))
	assert.Equal(t, 1, f.Count())
}

func TestCodesAscending(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontpack.font")
	defer teardown()
	//
	f := NewFont()
	for _, ch := range []uint16{0x4E2D, 'b', 0xFFFF, 'a'} {
		_, err := f.AddGlyph(ch)
		require.NoError(t, err)
	}
	assert.Equal(t, []uint16{'a', 'b', 0x4E2D, 0xFFFF}, f.Codes())
	assert.Len(t, f.Pending(), 4)
}

func TestLookupPreconditions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontpack.font")
	defer teardown()
	//
	f := NewFont()
	g, _ := f.AddGlyph('x')
	_, err := f.Lookup('x')
	assert.Equal(t, core.EINVALID, core.Code(err), "unrasterized glyph must not be usable")
	_, err = f.Lookup('y')
	assert.Equal(t, core.EMISSING, core.Code(err))
	_, err = f.Lookup(0x1F600)
	assert.Equal(t, core.EINVALID, core.Code(err))
	g.MakePlaceholder(1)
	found, err := f.Lookup('x')
	require.NoError(t, err)
	assert.Same(t, g, found)
}

func TestPlaceholderLiterals(t *testing.T) {
	g := NewGlyph('?')
	g.MakePlaceholder(1)
	assert.Equal(t, DummyBitmap, g.HasBitmap)
	assert.False(t, g.Valid)
	assert.Equal(t, 1, g.Width())
	assert.Equal(t, 1, g.Height())
	assert.Equal(t, 0, g.BearX)
	assert.Equal(t, 1, g.BearY)
	assert.Equal(t, 1, g.Advance)
	assert.Equal(t, 0, g.Descent())
}
