package fontapi

import (
	"maps"
	"slices"
	"strings"

	"github.com/npillmayer/fontapi/fvd"
	"github.com/npillmayer/fontapi/subset"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Codec translates between font variation descriptions and CSS.
// A failing expansion marks a variation as invalid.
type Codec interface {
	Expand(code string) (css string, ok bool)
	Compact(css string) string
}

// Option configures a Parser.
type Option func(*Parser)

// WithCodec replaces the default codec of package fvd.
func WithCodec(c Codec) Option {
	return func(p *Parser) {
		if c != nil {
			p.codec = c
		}
	}
}

// Family is the parse result for a single descriptor.
type Family struct {
	Name       string
	Variations []string
	TestString Optional[string]
}

// Parser splits font family descriptors into family names, variations and
// subset test strings. A Parser is not safe for concurrent use; distinct
// parsers are independent of each other.
type Parser struct {
	descriptors []string
	codec       Codec
	lower       cases.Caser
	families    []string
	variations  map[string][]string
	testStrings map[string]string
}

// NewParser creates a parser for a list of font family descriptors.
// Call [Parser.Parse] before querying results.
func NewParser(descriptors []string, opts ...Option) *Parser {
	p := &Parser{
		descriptors: slices.Clone(descriptors),
		codec:       fvd.Codec{},
		lower:       cases.Lower(language.Und),
		variations:  make(map[string][]string),
		testStrings: make(map[string]string),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseFamilies creates a parser for descriptors and parses them.
func ParseFamilies(descriptors ...string) *Parser {
	p := NewParser(descriptors)
	p.Parse()
	return p
}

// Parse parses all descriptors. Parsing again starts from scratch and yields
// the same results.
func (p *Parser) Parse() {
	p.families = make([]string, 0, len(p.descriptors))
	clear(p.variations)
	clear(p.testStrings)
	for _, d := range p.descriptors {
		p.parseDescriptor(d)
	}
	tracer().Infof("parsed %d font families", len(p.families))
}

func (p *Parser) parseDescriptor(descriptor string) {
	elements := strings.SplitN(descriptor, ":", 3)
	family := strings.ReplaceAll(elements[0], "+", " ")
	variations := []string{fvd.Default}
	if len(elements) >= 2 {
		if fvds := p.parseVariations(elements[1]); len(fvds) > 0 {
			variations = fvds
		}
	}
	if len(elements) == 3 {
		if subsets := parseSubsets(elements[2]); len(subsets) > 0 {
			p.setTestString(family, subsets[0])
		}
	}
	if _, ok := p.testStrings[family]; !ok {
		// legacy international fonts are identified by family name
		if p.setTestString(family, family) {
			tracer().Debugf("family %q has a legacy test string", family)
		}
	}
	p.families = append(p.families, family)
	p.variations[family] = variations
	tracer().Debugf("%q -> %q %v", descriptor, family, variations)
}

// setTestString associates the test string of subset with family, if
// family has none yet.
func (p *Parser) setTestString(family, subsetName string) bool {
	if _, ok := p.testStrings[family]; ok {
		return false
	}
	ts, ok := subset.TestString(subsetName)
	if !ok {
		return false
	}
	p.testStrings[family] = ts
	return true
}

// parseSubsets splits a comma separated list of subset names. Names are
// not checked.
func parseSubsets(subsets string) []string {
	if subsets == "" {
		return nil
	}
	return strings.Split(subsets, ",")
}

// FontFamilies returns the family names, one per descriptor, in input order.
func (p *Parser) FontFamilies() []string {
	return slices.Clone(p.families)
}

// Variations returns the FVDs per family. Every family has at least one.
func (p *Parser) Variations() map[string][]string {
	v := make(map[string][]string, len(p.variations))
	for family, fvds := range p.variations {
		v[family] = slices.Clone(fvds)
	}
	return v
}

// TestStrings returns the subset test strings of families which have one.
func (p *Parser) TestStrings() map[string]string {
	return maps.Clone(p.testStrings)
}

// TestString returns the test string for family, if any.
func (p *Parser) TestString(family string) Optional[string] {
	if ts, ok := p.testStrings[family]; ok {
		return Some(ts)
	}
	return None[string]()
}

// Families returns one record per descriptor. For repeated family names,
// all records carry the variations of the last occurrence.
func (p *Parser) Families() []Family {
	ff := make([]Family, len(p.families))
	for i, name := range p.families {
		ff[i] = Family{
			Name:       name,
			Variations: slices.Clone(p.variations[name]),
			TestString: p.TestString(name),
		}
	}
	return ff
}
