/*
Package resources resolves the font files glyphs are rasterized from.

A face is referenced by a name, which may be a path to a font file, the alias
of a font packaged with this module ("go-regular", "go-mono"), or the family
name of a font installed on the system.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package resources

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'fontpack.resources'.
func tracer() tracing.Trace {
	return tracing.Select("fontpack.resources")
}
