/*
Package fontgroup resolves which font renders a given character under a CSS
font description.

A FontGroup walks the computed font-family list, then a platform fallback
chain, testing candidates in two stages: a cheap predicate on a template's
declared unicode coverage, and — only after paying for the font load — a
predicate on actual glyph coverage. Family member lists and font loads are
resolved lazily and memoized.

A FontGroup is created per computed style and is designed for
single-thread-at-a-time ownership; sharing one across goroutines without
external synchronization is out of contract. The Fonts it hands out are
internally synchronized and may be shared freely.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fontgroup

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'fontsel.group'
func tracer() tracing.Trace {
	return tracing.Select("fontsel.group")
}
