/*
Package sfntraster is an outline rasterizer for TrueType and OpenType faces,
built on golang.org/x/image/font/opentype.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package sfntraster

import (
	"image"

	"github.com/npillmayer/fontpack/core"
	"github.com/npillmayer/fontpack/core/bitmap"
	"github.com/npillmayer/fontpack/core/font"
	"github.com/npillmayer/fontpack/core/raster"
	"github.com/npillmayer/schuko/tracing"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// tracer writes to trace with key 'fontpack.raster'
func tracer() tracing.Trace {
	return tracing.Select("fontpack.raster")
}

// FaceResolver maps a face reference to a parsed font.
type FaceResolver interface {
	ResolveFace(name string) (*font.ScalableFont, error)
}

// MonoThreshold is the coverage above which a pixel is set in monochrome
// rendering.
const MonoThreshold = 128

// Rasterizer renders glyphs from outline fonts.
type Rasterizer struct {
	faces FaceResolver
	open  *context
}

var _ raster.Rasterizer = (*Rasterizer)(nil)

// New creates a rasterizer resolving faces with res.
func New(res FaceResolver) *Rasterizer {
	return &Rasterizer{faces: res}
}

// Open loads face at a pixel size. Only one context may be open at a time.
func (r *Rasterizer) Open(face string, size uint32) (raster.Context, error) {
	if r.open != nil {
		return nil, core.Error(core.EINVALID, "face %s is still open", r.open.name)
	}
	if size == 0 {
		return nil, core.Error(core.EINVALID, "pixel size for face %s must not be 0", face)
	}
	sf, err := r.faces.ResolveFace(face)
	if err != nil {
		return nil, err
	}
	upem, ascent, descent, height, err := sf.DesignUnits()
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot read metrics of face %s", face)
	}
	ctx := &context{
		r:    r,
		name: face,
		font: sf,
		size: size,
		metrics: raster.DesignMetrics{
			UnitsPerEm: upem,
			Ascent:     ascent,
			Descent:    descent,
			Height:     height,
		},
	}
	tracer().Debugf("open face %s at %dpx, upem=%d height=%d", face, size, upem, height)
	r.open = ctx
	return ctx, nil
}

type context struct {
	r       *Rasterizer
	name    string
	font    *font.ScalableFont
	size    uint32
	metrics raster.DesignMetrics
	hinted  *font.TypeCase // anti-aliased rendering
	mono    *font.TypeCase // monochrome rendering
}

func (ctx *context) Metrics() raster.DesignMetrics {
	return ctx.metrics
}

func (ctx *context) typecase(antiAlias bool) (*font.TypeCase, error) {
	var err error
	if antiAlias {
		if ctx.hinted == nil {
			ctx.hinted, err = ctx.font.PrepareCase(ctx.size, xfont.HintingFull)
		}
		return ctx.hinted, err
	}
	if ctx.mono == nil {
		ctx.mono, err = ctx.font.PrepareCase(ctx.size, xfont.HintingNone)
	}
	return ctx.mono, err
}

// Rasterize renders ch with the pen at the origin. The bitmap covers the
// ink box only.
func (ctx *context) Rasterize(ch rune, antiAlias bool) (raster.Glyph, error) {
	if !ctx.font.HasGlyph(ch) {
		return raster.Glyph{}, raster.ErrNotFound
	}
	tc, err := ctx.typecase(antiAlias)
	if err != nil {
		return raster.Glyph{}, core.WrapError(err, core.EINVALID,
			"cannot prepare face %s at %dpx", ctx.name, ctx.size)
	}
	dr, mask, maskp, advance, ok := tc.Face().Glyph(fixed.P(0, 0), ch)
	if !ok {
		return raster.Glyph{}, raster.ErrNotFound
	}
	g := raster.Glyph{
		Advance:    advance.Floor(),
		Monochrome: !antiAlias,
	}
	if dr.Empty() || mask == nil {
		g.Bitmap = bitmap.New(0, 0)
		return g, nil
	}
	g.Bitmap = bitmap.FromAlpha(mask, image.Rect(0, 0, dr.Dx(), dr.Dy()), maskp)
	if !antiAlias {
		bitmap.Threshold(g.Bitmap, MonoThreshold)
	}
	g.BearingX = dr.Min.X
	g.BearingY = -dr.Min.Y
	tracer().Debugf("glyph %q: %dx%d bear=(%d,%d) adv=%d", ch, dr.Dx(), dr.Dy(),
		g.BearingX, g.BearingY, g.Advance)
	return g, nil
}

func (ctx *context) Close() error {
	var err error
	for _, tc := range []*font.TypeCase{ctx.hinted, ctx.mono} {
		if tc != nil {
			if cerr := tc.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}
	}
	ctx.hinted, ctx.mono = nil, nil
	if ctx.r.open == ctx {
		ctx.r.open = nil
	}
	return err
}
