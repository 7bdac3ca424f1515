package sfntraster

import (
	"errors"
	"testing"

	"github.com/npillmayer/fontpack/core"
	"github.com/npillmayer/fontpack/core/bitmap"
	"github.com/npillmayer/fontpack/core/font"
	"github.com/npillmayer/fontpack/core/raster"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type goFonts struct{}

func (goFonts) ResolveFace(name string) (*font.ScalableFont, error) {
	switch name {
	case "sans":
		return font.FallbackFont(), nil
	case "mono":
		return font.MonoFallbackFont(), nil
	}
	return nil, core.Error(core.EMISSING, "font not found: %s", name)
}

func TestRasterizeLatin(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontpack.raster")
	defer teardown()
	//
	r := New(goFonts{})
	err := raster.With(r, "sans", 24, func(ctx raster.Context) error {
		m := ctx.Metrics()
		assert.Equal(t, 2048, m.UnitsPerEm)
		assert.Greater(t, m.PixelHeight(24), 20)
		g, err := ctx.Rasterize('H', true)
		require.NoError(t, err)
		assert.False(t, bitmap.IsEmpty(g.Bitmap))
		assert.Greater(t, g.BearingY, 10, "cap height of H is above the baseline")
		assert.InDelta(t, g.BearingY, bitmap.Height(g.Bitmap), 1, "H sits on the baseline")
		assert.Greater(t, g.Advance, bitmap.Width(g.Bitmap)-1)
		p, err := ctx.Rasterize('p', true)
		require.NoError(t, err)
		assert.Greater(t, bitmap.Height(p.Bitmap)-p.BearingY, 0, "p descends below the baseline")
		return nil
	})
	require.NoError(t, err)
}

func TestRasterizeSpaceAndMissing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontpack.raster")
	defer teardown()
	//
	r := New(goFonts{})
	ctx, err := r.Open("sans", 16)
	require.NoError(t, err)
	defer ctx.Close()
	g, err := ctx.Rasterize(' ', true)
	require.NoError(t, err)
	assert.True(t, bitmap.IsEmpty(g.Bitmap))
	assert.Greater(t, g.Advance, 0)
	_, err = ctx.Rasterize(0x4E2D, true)
	assert.True(t, errors.Is(err, raster.ErrNotFound))
}

func TestRasterizeMonochrome(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontpack.raster")
	defer teardown()
	//
	r := New(goFonts{})
	ctx, err := r.Open("mono", 16)
	require.NoError(t, err)
	defer ctx.Close()
	g, err := ctx.Rasterize('o', false)
	require.NoError(t, err)
	assert.True(t, g.Monochrome)
	for _, v := range g.Bitmap.Pix {
		assert.True(t, v == 0 || v == 255, "monochrome pixel must be 0 or 255, is %d", v)
	}
}

func TestOpenIsScoped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontpack.raster")
	defer teardown()
	//
	r := New(goFonts{})
	ctx, err := r.Open("sans", 12)
	require.NoError(t, err)
	_, err = r.Open("mono", 12)
	assert.Equal(t, core.EINVALID, core.Code(err), "only one context may be open")
	require.NoError(t, ctx.Close())
	ctx, err = r.Open("mono", 12)
	require.NoError(t, err)
	require.NoError(t, ctx.Close())
	_, err = r.Open("serif", 12)
	assert.Equal(t, core.EMISSING, core.Code(err))
	_, err = r.Open("sans", 0)
	assert.Equal(t, core.EINVALID, core.Code(err))
}
