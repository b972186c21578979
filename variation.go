package fontapi

import (
	"regexp"
	"strconv"
	"strings"
)

// weights maps weight names and abbreviations to FVD weight digits.
// Hyphenated names are unreachable from descriptors, as tokens have to
// consist of word characters only.
var weights = map[string]string{
	"thin":        "1",
	"extralight":  "2",
	"extra-light": "2",
	"ultralight":  "2",
	"ultra-light": "2",
	"light":       "3",
	"regular":     "4",
	"book":        "4",
	"medium":      "5",
	"semi-bold":   "6",
	"semibold":    "6",
	"demi-bold":   "6",
	"demibold":    "6",
	"bold":        "7",
	"extra-bold":  "8",
	"extrabold":   "8",
	"ultra-bold":  "8",
	"ultrabold":   "8",
	"black":       "9",
	"heavy":       "9",
	"l":           "3",
	"r":           "4",
	"b":           "7",
}

// styles maps style names and abbreviations to FVD style letters.
var styles = map[string]string{
	"i":      "i",
	"italic": "i",
	"n":      "n",
	"normal": "n",
}

var (
	wordToken = regexp.MustCompile(`^\w+$`)
	// group 1 is the weight, group 2 the style; both are optional
	variationToken = regexp.MustCompile(`^(thin|(?:(?:extra|ultra)-?)?light|regular|book|medium|` +
		`(?:(?:semi|demi|extra|ultra)-?)?bold|black|heavy|l|r|b|[1-9]00)?(n|i|normal|italic)?$`)
)

// parseVariations normalizes a comma separated list of variation tokens.
// Invalid tokens are dropped.
func (p *Parser) parseVariations(variations string) []string {
	if variations == "" {
		return nil
	}
	var fvds []string
	for _, token := range strings.Split(variations, ",") {
		if code, ok := p.NormalizeVariation(token); ok {
			fvds = append(fvds, code)
		} else {
			tracer().Debugf("dropping invalid variation %q", token)
		}
	}
	return fvds
}

// NormalizeVariation converts a variation token like "bold" or "700italic"
// into an FVD.
func (p *Parser) NormalizeVariation(token string) (string, bool) {
	if !wordToken.MatchString(token) {
		return "", false
	}
	groups := variationToken.FindStringSubmatch(p.lower.String(token))
	if groups == nil {
		return "", false
	}
	code := normalizeStyle(groups[2]) + normalizeWeight(groups[1])
	css, ok := p.codec.Expand(code)
	if !ok {
		return "", false
	}
	return p.codec.Compact(css), true
}

func normalizeStyle(style string) string {
	if style == "" {
		return "n"
	}
	return styles[style]
}

func normalizeWeight(weight string) string {
	if weight == "" {
		return "4"
	}
	if w, ok := weights[weight]; ok {
		return w
	}
	if _, err := strconv.Atoi(weight); err != nil {
		return "4"
	}
	return weight[:1]
}
