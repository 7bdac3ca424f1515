/*
Package bmfont holds the in-memory model of a bitmap font: a table of glyph
records, indexed by 16-bit character code, together with font-wide line
metrics.

A glyph record has input fields, set from a build recipe before
rasterization, and output fields, written once by the normalizer (package
engine/normalize) or by decoding a persisted table (package backend/tbl).
Records which have not been rasterized yet must not be used for layout or
encoding; Font.Lookup enforces this.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package bmfont

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'fontpack.font'
func tracer() tracing.Trace {
	return tracing.Select("fontpack.font")
}
