/*
Package fvd handles font variation descriptions.

A font variation description (FVD) is a two-character code denoting a
combination of font style and font weight, e.g. "n4" for a regular font
or "i7" for a bold italic one. The first character is the style
('n'ormal, 'i'talic, 'o'blique), the second one is the weight class
divided by 100.

Codes translate to and from CSS declarations:

	n4  <=>  font-style:normal;font-weight:400;

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package fvd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontapi.fvd'
func tracer() tracing.Trace {
	return tracing.Select("fontapi.fvd")
}

// ErrInvalidCode is returned for strings which are not a valid FVD.
var ErrInvalidCode = errors.New("fvd: invalid font variation description")

// errFVD wraps ErrInvalidCode with details.
func errFVD(code string, x string) error {
	return fmt.Errorf("%w %q: %s", ErrInvalidCode, code, x)
}

// Default is the FVD used whenever nothing else is requested.
const Default = "n4"

// property is one CSS property covered by an FVD. Each property occupies
// one position in the two-character code.
type property struct {
	name   string
	values [][2]string // pairs of (code letter, CSS value)
}

// properties are ordered by their position within a code.
var properties = [...]property{
	{
		name: "font-style",
		values: [][2]string{
			{"n", "normal"},
			{"i", "italic"},
			{"o", "oblique"},
		},
	},
	{
		name: "font-weight",
		values: [][2]string{
			{"1", "100"},
			{"2", "200"},
			{"3", "300"},
			{"4", "400"},
			{"5", "500"},
			{"6", "600"},
			{"7", "700"},
			{"8", "800"},
			{"9", "900"},
			{"4", "normal"},
			{"7", "bold"},
		},
	},
}

// expand looks up the CSS value for code letter key.
func (p property) expand(key string) (string, bool) {
	for _, v := range p.values {
		if v[0] == key {
			return p.name + ":" + v[1], true
		}
	}
	return "", false
}

// compact looks up the code letter for CSS value value.
func (p property) compact(value string) (string, bool) {
	for _, v := range p.values {
		if v[1] == value {
			return v[0], true
		}
	}
	return "", false
}

// Codec converts between FVDs and CSS declarations. The zero value is ready
// to use and safe for concurrent use.
type Codec struct{}

// Expand converts an FVD to CSS declarations, e.g. "i7" to
// "font-style:italic;font-weight:700;". ok is false if code is not
// a valid FVD.
func (Codec) Expand(code string) (css string, ok bool) {
	return Expand(code)
}

// Compact converts CSS declarations back to an FVD.
func (Codec) Compact(css string) string {
	return Compact(css)
}

// Expand converts an FVD to CSS declarations. ok is false if code does not
// consist of exactly a known style letter followed by a known weight digit.
func Expand(code string) (css string, ok bool) {
	if len(code) != len(properties) {
		tracer().Debugf("FVD %q has wrong length", code)
		return "", false
	}
	decl := make([]string, len(properties))
	for i, p := range properties {
		if decl[i], ok = p.expand(code[i : i+1]); !ok {
			tracer().Debugf("FVD %q: no %s for %q", code, p.name, code[i:i+1])
			return "", false
		}
	}
	return strings.Join(decl, ";") + ";", true
}

// Compact converts a list of CSS declarations to an FVD. Declarations for
// other properties and unknown values are ignored; positions without a
// recognized declaration keep the value of [Default].
func Compact(css string) string {
	code := []byte(Default)
	for _, decl := range strings.Split(css, ";") {
		pair := strings.Split(strings.Join(strings.Fields(decl), ""), ":")
		if len(pair) != 2 {
			continue
		}
		for i, p := range properties {
			if p.name != pair[0] {
				continue
			}
			if c, ok := p.compact(pair[1]); ok {
				code[i] = c[0]
			}
		}
	}
	return string(code)
}
