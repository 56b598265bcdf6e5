/*
Package fontregistry manages a registry of font templates and realized fonts.

The registry is the concrete resolution environment behind a FontGroup: it
stores templates (font metadata plus a byte source), discovers locally
installed fonts on demand, realizes fonts at concrete descriptions with an
instantiation cache, and hands out stable instance keys for render backends.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fontregistry

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'fontsel.registry'
func tracer() tracing.Trace {
	return tracing.Select("fontsel.registry")
}
