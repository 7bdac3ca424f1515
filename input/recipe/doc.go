/*
Package recipe reads font build recipes.

A recipe is a YAML document naming the faces to rasterize from, font-wide
metrics overrides and the glyphs to create. Glyphs are given in groups; each
group selects characters by a code range, a literal string or a list of
codes, and may override face, size, anti-aliasing, colors and the table
flag byte. Example:

	faces: [go-regular, /usr/share/fonts/noto/NotoSansJP-Regular.otf]
	size: 14
	language: ja
	glyphs:
	  - range: 0x20-0x7E
	  - chars: "　日本語"
	    face: 1
	    size: 15

A character may occur in one group only.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package recipe

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontpack.recipe'
func tracer() tracing.Trace {
	return tracing.Select("fontpack.recipe")
}
