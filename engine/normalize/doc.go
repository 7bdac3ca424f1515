/*
Package normalize rasterizes the pending glyphs of a bitmap font and brings
them into one consistent vertical metric system.

Glyphs coming out of a rasterizer have their ink box as bitmap, positioned by
bearings. The engine consuming our fonts draws every glyph bottom-aligned and
cannot position glyphs individually, so glyphs are re-composed onto canvases
of the face's nominal line height, all sharing a common descent padding below
the baseline. Glyphs already in shape are left untouched (no resampling).

After composition a canonical cell height is chosen as the most frequent
glyph height, and the font's line spacing is derived from it if not
configured.

Warnings (clamped bearings, placeholders, outlier heights, …) are traced and
collected into a Report; anything else going wrong is returned as an error.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package normalize

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontpack.normalize'
func tracer() tracing.Trace {
	return tracing.Select("fontpack.normalize")
}
