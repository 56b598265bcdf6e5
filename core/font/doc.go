/*
Package font implements fonts for CSS-driven typesetting, together with the
caches that keep repeated layout passes cheap.

A Font combines a platform font handle with memoizing caches for glyph
indices, horizontal advances and shaped text. Lookups never fail: a missing
glyph is represented (and remembered) as absence, a missing advance yields a
fixed last-resort width. The caches are internally synchronized and may be
shared between layout worker threads.

There is a certain confusion in the nomenclature of typesetting. We stick to
the following definitions:

* A "font template" describes an installed or loaded font resource, with its
declared metadata (family, style, weight, unicode coverage), but without any
instantiation at a size.

* A "font" is a template realized at a point-size, ready for glyph lookups
and shaping.

Please note that Go (Golang) does use the terms "font" and "face"
differently–actually more or less in an opposite manner.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package font

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'fontsel.font'
func tracer() tracing.Trace {
	return tracing.Select("fontsel.font")
}
