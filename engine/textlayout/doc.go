/*
Package textlayout measures and renders strings with a rasterized bitmap font.

Layout follows the consuming engine: every glyph is placed at
(pen + BearX, baseline − BearY), the pen advances by the glyph's advance
value, and a newline moves the baseline down by the font's line spacing.
There is no kerning, shaping or bidi.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package textlayout

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontpack.layout'
func tracer() tracing.Trace {
	return tracing.Select("fontpack.layout")
}
