/*
Package fontapi parses font requests for a web font API.

A web font loader is configured with a list of font family descriptors,
each of the form

	Family+Name[:variations][:subsets]

e.g., "Open+Sans:300,bold,700italic:latin,cyrillic". Package fontapi
splits these descriptors into

▪︎ the font family names ("Open Sans"),

▪︎ the variations requested for a family, normalized to font variation
descriptions (see package [github.com/npillmayer/fontapi/fvd]), and

▪︎ test strings for international subsets (see package
[github.com/npillmayer/fontapi/subset]), which a loader uses to check if
the glyphs of a subset have arrived.

Loading fonts, injecting CSS and watching the DOM is left to clients.

Malformed input never produces errors. Invalid variations are dropped,
families without valid variations default to "n4", and unknown subsets
are ignored.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package fontapi

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontapi'
func tracer() tracing.Trace {
	return tracing.Select("fontapi")
}
