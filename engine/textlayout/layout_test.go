package textlayout

import (
	"testing"

	"github.com/npillmayer/fontpack/core"
	"github.com/npillmayer/fontpack/core/bitmap"
	"github.com/npillmayer/fontpack/core/bmfont"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFont(t *testing.T) *bmfont.Font {
	f := bmfont.NewFont()
	f.LnSpacing = 12
	add := func(ch rune, w, h, bearY, adv int) {
		g, err := f.AddGlyph(uint16(ch))
		require.NoError(t, err)
		bmp := bitmap.New(w, h)
		bitmap.Fill(bmp, 255)
		g.SetReal(bmp, 0, bearY, adv)
	}
	add('A', 4, 10, 10, 5)
	add('g', 4, 14, 10, 5) // reaches 4 pixels below the baseline
	_, err := f.AddGlyph('x')
	require.NoError(t, err)
	return f
}

func TestExtent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontpack.layout")
	defer teardown()
	//
	f := testFont(t)
	for _, c := range []struct {
		text string
		w, h int
	}{
		{"", 0, 12},
		{"A", 4, 12},
		{"AA", 9, 12},
		{"A\nAA", 9, 24},
		{"AA\nA", 9, 24},
		{"g", 4, 14},
		{"g\nA", 4, 26}, // the first line sticks out into the second
		{"\n", 0, 24},
	} {
		w, h, err := Extent(f, c.text)
		require.NoError(t, err, c.text)
		assert.Equal(t, c.w, w, "width of %q", c.text)
		assert.Equal(t, c.h, h, "height of %q", c.text)
	}
}

func TestExtentWidthIsMonotonic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontpack.layout")
	defer teardown()
	//
	f := testFont(t)
	text := "AgAAgA"
	last := 0
	for i := 0; i <= len(text); i++ {
		w, _, err := Extent(f, text[:i])
		require.NoError(t, err)
		assert.GreaterOrEqual(t, w, last)
		last = w
	}
}

func TestUnusableGlyphs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontpack.layout")
	defer teardown()
	//
	f := testFont(t)
	_, _, err := Extent(f, "Ax")
	assert.Equal(t, core.EINVALID, core.Code(err))
	_, _, err = Extent(f, "Az")
	assert.Equal(t, core.EMISSING, core.Code(err))
	_, err = Render(f, "A\nx")
	assert.Error(t, err)
}

func TestRender(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontpack.layout")
	defer teardown()
	//
	f := testFont(t)
	img, err := Render(f, "A")
	require.NoError(t, err)
	assert.Equal(t, 4, bitmap.Width(img))
	assert.Equal(t, 12, bitmap.Height(img))
	assert.Equal(t, 40, bitmap.InkCount(img))
	assert.Equal(t, uint8(0), img.GrayAt(0, 1).Y)
	assert.Equal(t, uint8(255), img.GrayAt(0, 2).Y)
	assert.Equal(t, uint8(255), img.GrayAt(3, 11).Y)
	//
	img, err = Render(f, "A\nA")
	require.NoError(t, err)
	assert.Equal(t, 24, bitmap.Height(img))
	assert.Equal(t, uint8(255), img.GrayAt(0, 11).Y)
	assert.Equal(t, uint8(0), img.GrayAt(0, 12).Y)
	assert.Equal(t, uint8(0), img.GrayAt(0, 13).Y)
	assert.Equal(t, uint8(255), img.GrayAt(0, 14).Y)
	assert.Equal(t, uint8(255), img.GrayAt(0, 23).Y)
}

func TestRenderAdvancesPen(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontpack.layout")
	defer teardown()
	//
	f := testFont(t)
	img, err := Render(f, "AA")
	require.NoError(t, err)
	assert.Equal(t, 9, bitmap.Width(img))
	assert.Equal(t, uint8(0), img.GrayAt(4, 5).Y, "gap between glyphs")
	assert.Equal(t, uint8(255), img.GrayAt(5, 5).Y)
	assert.Equal(t, 80, bitmap.InkCount(img))
}
