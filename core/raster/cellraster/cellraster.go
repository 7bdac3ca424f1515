/*
Package cellraster renders glyphs into complete character cells, the way
platform text services do: every glyph bitmap is as high as a line and as
wide as its cell increment, with the ink placed relative to a common
baseline. It is built on github.com/golang/freetype.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package cellraster

import (
	"image"

	"github.com/golang/freetype/truetype"
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

// Service renders cells for one font at one pixel height.
type Service struct {
	name    string
	ttf     *truetype.Font
	face    xfont.Face
	ascent  int
	descent int
}

var _ raster.CellService = (*Service)(nil)

// New prepares sf at an em height of pixelHeight pixels.
func New(sf *font.ScalableFont, pixelHeight int) (*Service, error) {
	if pixelHeight <= 0 {
		return nil, core.Error(core.EINVALID, "pixel height for %s must be positive", sf.Fontname)
	}
	ttf, err := truetype.Parse(sf.Binary)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot use %s as a cell font", sf.Fontname)
	}
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    float64(pixelHeight),
		DPI:     72,
		Hinting: xfont.HintingFull,
	})
	m := face.Metrics()
	s := &Service{
		name:    sf.Fontname,
		ttf:     ttf,
		face:    face,
		ascent:  m.Ascent.Ceil(),
		descent: m.Descent.Ceil(),
	}
	tracer().Debugf("cell font %s at %dpx: ascent=%d descent=%d", s.name, pixelHeight,
		s.ascent, s.descent)
	return s, nil
}

// Name is the name of the underlying font.
func (s *Service) Name() string {
	return s.name
}

// LineHeight is ascent plus descent.
func (s *Service) LineHeight() int {
	return s.ascent + s.descent
}

// Cell renders ch into a cell of LineHeight × cell increment. It reports
// false if the font has no glyph for ch or the cell would be degenerate.
func (s *Service) Cell(ch rune) (raster.CellGlyph, bool) {
	if s.ttf.Index(ch) == 0 {
		tracer().Debugf("char 0x%x not found in %s", ch, s.name)
		return raster.CellGlyph{}, false
	}
	dr, mask, maskp, advance, ok := s.face.Glyph(fixed.P(0, 0), ch)
	if !ok { // glyphs without contours may fail to rasterize but still advance
		if advance, ok = s.face.GlyphAdvance(ch); !ok {
			return raster.CellGlyph{}, false
		}
		dr, mask = image.Rectangle{}, nil
	}
	w, h := advance.Round(), s.LineHeight()
	offX, offY := dr.Min.X, s.ascent+dr.Min.Y
	if w <= 0 || h <= 0 || offX >= w || offY >= h {
		tracer().Infof("unsupported cell for char 0x%x: w=%d h=%d ox=%d oy=%d", ch, w, h, offX, offY)
		return raster.CellGlyph{}, false
	}
	cell := bitmap.New(w, h)
	if !dr.Empty() && mask != nil {
		ink := bitmap.FromAlpha(mask, image.Rect(0, 0, dr.Dx(), dr.Dy()), maskp)
		bitmap.GammaCorrect(ink)
		bitmap.Draw(cell, ink, offX, offY)
	}
	return raster.CellGlyph{
		Bitmap:   cell,
		BlackBox: dr.Size(),
		CellIncX: w,
	}, true
}

// Close releases the face.
func (s *Service) Close() error {
	return s.face.Close()
}
