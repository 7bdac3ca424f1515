/*
Package sprite holds the frame collection of a bitmap font.

A Sprite is organised in directions, each carrying a sequence of frames.
Fonts use exactly one direction with one frame per glyph. Frames are 8-bit
grayscale images; they may be persisted as numbered BMP files or packed
into a single atlas sheet for preview.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package sprite

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontpack.sprite'
func tracer() tracing.Trace {
	return tracing.Select("fontpack.sprite")
}
