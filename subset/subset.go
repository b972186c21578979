/*
Package subset knows about international character subsets of web fonts.

A font API may deliver a font family split into subsets ("latin",
"cyrillic", …). To find out whether the glyphs of a subset are available,
a client renders a short test string of characters typical for the subset.
Test strings are stored HTML-entity-encoded, as they end up in HTML/CSS
unchanged.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package subset

import (
	"errors"
	"fmt"
	"sort"

	"github.com/go-text/typesetting/language"
	"github.com/npillmayer/schuko/tracing"
	xlang "golang.org/x/text/language"
)

// tracer writes to trace with key 'fontapi.subset'
func tracer() tracing.Trace {
	return tracing.Select("fontapi.subset")
}

// ErrUnknownSubset is returned for subset names not present in the table.
var ErrUnknownSubset = errors.New("subset: unknown subset")

// DefaultTestString is the test string for Latin fonts.
const DefaultTestString = "BESbswy"

// Info describes a subset.
type Info struct {
	Name       string
	TestString string          // HTML-entity-encoded
	Script     language.Script // script of the test string
	ISO        xlang.Script    // ISO 15924 code of Script
	Legacy     bool            // entry is keyed by a font family name
}

var table = map[string]Info{
	"latin": {
		Name:       "latin",
		TestString: DefaultTestString,
		Script:     language.Latin,
		ISO:        xlang.MustParseScript("Latn"),
	},
	"cyrillic": {
		Name:       "cyrillic",
		TestString: "&#1081;&#1103;&#1046;",
		Script:     language.Cyrillic,
		ISO:        xlang.MustParseScript("Cyrl"),
	},
	"greek": {
		Name:       "greek",
		TestString: "&#945;&#946;&#931;",
		Script:     language.Greek,
		ISO:        xlang.MustParseScript("Grek"),
	},
	"khmer": {
		Name:       "khmer",
		TestString: "&#x1780;&#x1781;&#x1782;",
		Script:     language.Khmer,
		ISO:        xlang.MustParseScript("Khmr"),
	},
	// Hanuman has been served as a Khmer font before subsets existed.
	"Hanuman": {
		Name:       "Hanuman",
		TestString: "&#x1780;&#x1781;&#x1782;",
		Script:     language.Khmer,
		ISO:        xlang.MustParseScript("Khmr"),
		Legacy:     true,
	},
}

// TestString returns the test string for a subset name. Names are
// case-sensitive. The table contains legacy entries keyed by font family
// names, which are found as well.
func TestString(name string) (string, bool) {
	info, ok := table[name]
	if !ok {
		return "", false
	}
	return info.TestString, true
}

// Lookup returns information about a subset or legacy font family.
func Lookup(name string) (Info, error) {
	info, ok := table[name]
	if !ok {
		tracer().Debugf("no subset %q", name)
		return Info{}, fmt.Errorf("%w: %q", ErrUnknownSubset, name)
	}
	return info, nil
}

// Names returns the sorted names of all subsets, excluding legacy entries.
func Names() []string {
	names := make([]string, 0, len(table))
	for name, info := range table {
		if !info.Legacy {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
