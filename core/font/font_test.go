package font

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	xfont "golang.org/x/image/font"
)

func TestNormalizeFont(t *testing.T) {
	assert.Equal(t, "gentiumplus-r", NormalizeFontname(" GentiumPlus-R.ttf "))
	assert.Equal(t, "go_sans", NormalizeFontname("Go Sans"))
	assert.Equal(t, "fonts/exocet", NormalizeFontname("fonts/Exocet.otf"))
}

func TestFallbackFontMetrics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontpack.faces")
	defer teardown()
	//
	f := FallbackFont()
	upem, ascent, descent, height, err := f.DesignUnits()
	require.NoError(t, err)
	assert.Equal(t, 2048, upem)
	assert.Greater(t, ascent, 0)
	assert.Less(t, descent, 0)
	assert.GreaterOrEqual(t, height, ascent-descent)
	assert.True(t, f.HasGlyph('A'))
	assert.False(t, f.HasGlyph(0x4E2D), "Go Sans has no CJK glyphs")
}

func TestPrepareCase(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontpack.faces")
	defer teardown()
	//
	tc, err := MonoFallbackFont().PrepareCase(16, xfont.HintingFull)
	require.NoError(t, err)
	defer tc.Close()
	assert.Equal(t, uint32(16), tc.PixelSize())
	_, adv, ok := tc.Face().GlyphBounds('M')
	assert.True(t, ok)
	assert.Greater(t, adv.Round(), 0)
	_, err = MonoFallbackFont().PrepareCase(0, xfont.HintingFull)
	assert.Error(t, err)
}

func TestRegistry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontpack.faces")
	defer teardown()
	//
	r := NewRegistry()
	r.StoreFont("Go Sans", FallbackFont())
	r.StoreFont("go_sans", MonoFallbackFont()) // not overridden
	f, ok := r.Font("GO SANS")
	assert.True(t, ok)
	assert.Same(t, FallbackFont(), f)
	_, ok = r.Font("Exocet")
	assert.False(t, ok)
	r.StoreFont("Go Mono", MonoFallbackFont())
	assert.Equal(t, []string{"go_mono", "go_sans"}, r.Names())
}
