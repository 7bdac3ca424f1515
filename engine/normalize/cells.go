package normalize

import (
	"github.com/npillmayer/fontpack/core/bitmap"
	"github.com/npillmayer/fontpack/core/bmfont"
	"github.com/npillmayer/fontpack/core/raster"
)

// NormalizeCells rasterizes all pending glyphs of f with a chain of cell
// services. Cells are already aligned to a common baseline and line height,
// so no composition is necessary. Face references and sizes of the glyphs
// are ignored; the chain decides.
//
// Each glyph is bottom-aligned (BearX = 0, BearY = cell height). Line spacing
// defaults to the chain's line height, cap height to 1.
func NormalizeCells(f *bmfont.Font, chain *raster.Chain) (*Report, error) {
	report := &Report{}
	pending := f.Pending()
	for _, g := range pending {
		cell, sub := chain.Lookup(rune(g.Char))
		switch sub {
		case raster.Placeholder:
			report.warn(GlyphNotFound, g.Char,
				"no glyph found for char (%d), a dummy (1x1) bitmap will be generated", g.Char)
			g.MakePlaceholder(1)
			continue
		case raster.FallbackFace, raster.IdeographicBlank, raster.DotBlank:
			report.warn(Substituted, g.Char, "char %d (0x%x) rendered as %s", g.Char, g.Char, sub)
		}
		h := bitmap.Height(cell.Bitmap)
		g.SetReal(cell.Bitmap, 0, h, cell.CellIncX)
		if h > report.RawMaxH {
			report.RawMaxH = h
		}
	}
	report.Rendered = len(pending)
	report.MaxH = report.RawMaxH
	if len(pending) == 0 {
		return report, nil
	}
	if f.LnSpacing == 0 {
		f.LnSpacing = uint32(chain.LineHeight())
	}
	if f.CapHeight == 0 {
		f.CapHeight = 1
	}
	tracer().Infof("rendered %d cells, line height %d", report.Rendered, chain.LineHeight())
	return report, nil
}
