/*
Package opentype adapts OpenType/TrueType font files to the platform font
interface of package font, backed by golang.org/x/image/font/sfnt for glyph
and metrics queries and by a minimal table directory reader for raw
table-tag lookup.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package opentype

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'fontsel.font'
func tracer() tracing.Trace {
	return tracing.Select("fontsel.font")
}
