package raster

import (
	"fmt"
	"image"

	"github.com/npillmayer/fontpack/core/bitmap"
)

// CellGlyph is a character rendered into a full cell by a CellService.
type CellGlyph struct {
	Bitmap   *image.Gray // full cell: CellIncX × line height
	BlackBox image.Point // size of the ink box
	CellIncX int         // horizontal cell increment
}

// CellService renders whole character cells at a fixed pixel height.
type CellService interface {
	Cell(ch rune) (CellGlyph, bool)
	LineHeight() int
	Name() string
}

// Substitution tells how a Chain arrived at a glyph.
type Substitution int

const (
	Direct           Substitution = iota // found in the primary service
	FallbackFace                         // found in a fallback service
	IdeographicBlank                     // blank cell of IdeographicStand-in
	DotBlank                             // blank cell of '.'
	Placeholder                          // nothing found
)

func (s Substitution) String() string {
	switch s {
	case Direct:
		return "direct"
	case FallbackFace:
		return "fallback-face"
	case IdeographicBlank:
		return "ideographic-blank"
	case DotBlank:
		return "dot-blank"
	case Placeholder:
		return "placeholder"
	}
	return fmt.Sprintf("Substitution(%d)", int(s))
}

// Characters used for blank substitutions.
const (
	IdeographicSpace   = '　'
	IdeographicStandIn = '田'
	DotStandIn         = '.'
)

// MaxFallbacks is the number of fallback services a Chain consults.
const MaxFallbacks = 2

// Chain queries a primary service and up to two fallbacks, in that order.
type Chain struct {
	Primary   CellService
	Fallbacks []CellService
}

// NewChain creates a chain. Fallbacks beyond MaxFallbacks are ignored.
func NewChain(primary CellService, fallbacks ...CellService) *Chain {
	if len(fallbacks) > MaxFallbacks {
		tracer().Infof("warning: only %d fallback faces are used, dropping %d",
			MaxFallbacks, len(fallbacks)-MaxFallbacks)
		fallbacks = fallbacks[:MaxFallbacks]
	}
	return &Chain{Primary: primary, Fallbacks: fallbacks}
}

// LineHeight is the line height of the primary service.
func (c *Chain) LineHeight() int {
	if c.Primary == nil {
		return 0
	}
	return c.Primary.LineHeight()
}

func (c *Chain) find(ch rune) (CellGlyph, Substitution, bool) {
	if c.Primary != nil {
		if g, ok := c.Primary.Cell(ch); ok {
			return g, Direct, true
		}
	}
	for _, fb := range c.Fallbacks {
		if g, ok := fb.Cell(ch); ok {
			tracer().Infof("warning: replace char %d (0x%x) with fallback %s", ch, ch, fb.Name())
			return g, FallbackFace, true
		}
	}
	return CellGlyph{}, Placeholder, false
}

// Lookup finds a cell for ch. If no service has ch, an ideographic space is
// replaced by a blanked IdeographicStandIn and printable ASCII by a blanked
// '.'. If that fails too, the returned substitution is Placeholder and the
// glyph is empty.
func (c *Chain) Lookup(ch rune) (CellGlyph, Substitution) {
	g, sub, ok := c.find(ch)
	if ok {
		return g, sub
	}
	if ch == IdeographicSpace {
		if g, _, ok = c.find(IdeographicStandIn); ok {
			tracer().Infof("warning: U+3000 not found, generate blank of U+7530 (%dx%d)",
				bitmap.Width(g.Bitmap), bitmap.Height(g.Bitmap))
			g.Bitmap = bitmap.Clone(g.Bitmap)
			bitmap.Fill(g.Bitmap, 0)
			return g, IdeographicBlank
		}
	}
	if ch >= 32 && ch < 127 {
		if g, _, ok = c.find(DotStandIn); ok {
			tracer().Infof("warning: replace %d (0x%x) with blank '.' (%dx%d)", ch, ch,
				bitmap.Width(g.Bitmap), bitmap.Height(g.Bitmap))
			g.Bitmap = bitmap.Clone(g.Bitmap)
			bitmap.Fill(g.Bitmap, 0)
			return g, DotBlank
		}
	}
	return CellGlyph{}, Placeholder
}
