/*
Package tbl reads and writes the glyph metrics table of a bitmap font.

A font is persisted as two parts: a binary table with line metrics and one
entry per character, and a sprite with one frame per table entry. Entries
are written in ascending code order. An entry's frame index normally equals
its position; placeholder glyphs (no usable image) carry frame index 0
instead, while their dummy frame still occupies the slot at their position.

Table layout, all integers little-endian, no padding:

	header (17 bytes)
	  [4]byte signature "Woo!"
	  uint8   version (1)
	  uint16  script category
	  uint16  character count
	  uint32  line spacing
	  uint32  cap height
	entry (12 bytes)
	  uint16  character code
	  [2]byte reserved
	  uint8   advance
	  uint8   height
	  uint8   flag
	  uint8   reserved
	  uint16  frame index
	  [2]byte reserved

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package tbl

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontpack.tbl'
func tracer() tracing.Trace {
	return tracing.Select("fontpack.tbl")
}
