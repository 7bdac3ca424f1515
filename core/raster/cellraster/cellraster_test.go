package cellraster

import (
	"testing"

	"github.com/npillmayer/fontpack/core"
	"github.com/npillmayer/fontpack/core/bitmap"
	"github.com/npillmayer/fontpack/core/font"
	"github.com/npillmayer/fontpack/core/raster"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellGeometry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontpack.raster")
	defer teardown()
	//
	s, err := New(font.FallbackFont(), 20)
	require.NoError(t, err)
	defer s.Close()
	assert.Equal(t, "Go Sans", s.Name())
	g, ok := s.Cell('W')
	require.True(t, ok)
	assert.Equal(t, s.LineHeight(), bitmap.Height(g.Bitmap))
	assert.Equal(t, g.CellIncX, bitmap.Width(g.Bitmap))
	assert.Greater(t, bitmap.InkCount(g.Bitmap), 0)
	assert.LessOrEqual(t, g.BlackBox.Y, s.LineHeight())
}

func TestCellSpaceAndMissing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontpack.raster")
	defer teardown()
	//
	s, err := New(font.MonoFallbackFont(), 16)
	require.NoError(t, err)
	g, ok := s.Cell(' ')
	require.True(t, ok)
	assert.Equal(t, 0, bitmap.InkCount(g.Bitmap))
	_, ok = s.Cell(0x7530)
	assert.False(t, ok)
}

func TestChainWithCellServices(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontpack.raster")
	defer teardown()
	//
	mono, err := New(font.MonoFallbackFont(), 16)
	require.NoError(t, err)
	sans, err := New(font.FallbackFont(), 16)
	require.NoError(t, err)
	chain := raster.NewChain(mono, sans)
	_, sub := chain.Lookup('a')
	assert.Equal(t, raster.Direct, sub)
	g, sub := chain.Lookup(0x4E2D) // no CJK in Go fonts
	assert.Equal(t, raster.Placeholder, sub)
	assert.Nil(t, g.Bitmap)
}

func TestInvalidHeight(t *testing.T) {
	_, err := New(font.FallbackFont(), 0)
	assert.Equal(t, core.EINVALID, core.Code(err))
}
