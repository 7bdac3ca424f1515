/*
Package raster defines the contracts glyph rasterizers have to fulfil.

Two kinds of back-ends exist. An outline Rasterizer hands out one face/size
context at a time; loading a face or switching sizes may be expensive, so
clients group their requests by (face, size) and close a context before
opening the next one. A CellService renders complete character cells at a
fixed pixel height and is queried through a Chain of up to three services.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package raster

import (
	"errors"
	"image"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontpack.raster'
func tracer() tracing.Trace {
	return tracing.Select("fontpack.raster")
}

// ErrNotFound is returned by rasterizers for characters a face does not
// contain.
var ErrNotFound = errors.New("glyph not present in face")

// Glyph is the raw output of an outline rasterizer.
type Glyph struct {
	Bitmap     *image.Gray // may be empty, e.g. for a space character
	BearingX   int         // left edge of ink, relative to the pen position
	BearingY   int         // top edge of ink above the baseline
	Advance    int
	Monochrome bool
}

// DesignMetrics are face metrics in font design units.
type DesignMetrics struct {
	UnitsPerEm int
	Ascent     int // above baseline, positive
	Descent    int // below baseline, negative as in FreeType
	Height     int // baseline-to-baseline distance
}

// UnitToPixel converts design units to pixels at a given pixel size,
// assuming 72 DPI.
func (m DesignMetrics) UnitToPixel(units int, size uint32) float64 {
	const dpi = 72.0
	if m.UnitsPerEm == 0 {
		return 0
	}
	return float64(units) * float64(size) * dpi / 72 / float64(m.UnitsPerEm)
}

// PixelHeight is the nominal pixel height of a line at size.
func (m DesignMetrics) PixelHeight(size uint32) int {
	return int(m.UnitToPixel(m.Height, size))
}

// Rasterizer hands out face contexts.
type Rasterizer interface {
	// Open acquires a context for face at pixel size. The caller has to
	// Close it.
	Open(face string, size uint32) (Context, error)
}

// Context is a face loaded at a fixed pixel size.
type Context interface {
	// Rasterize renders ch. If the face has no glyph for ch, ErrNotFound
	// is returned.
	Rasterize(ch rune, antiAlias bool) (Glyph, error)
	Metrics() DesignMetrics
	Close() error
}

// With opens a context, calls fn with it and closes the context, even if fn
// fails.
func With(r Rasterizer, face string, size uint32, fn func(Context) error) (err error) {
	ctx, err := r.Open(face, size)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := ctx.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return fn(ctx)
}
