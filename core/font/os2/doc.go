/*
Package os2 provides read-only access to fields of the OpenType OS/2 table,
in particular to the ulUnicodeRange1…4 coverage bitfield.

The OS/2 table declares, among other things, which Unicode blocks a font
claims to cover. Font selection consults this declared coverage to rule out
candidate fonts cheaply, before paying for a font load and a cmap lookup.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package os2

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'fontsel.font'
func tracer() tracing.Trace {
	return tracing.Select("fontsel.font")
}
