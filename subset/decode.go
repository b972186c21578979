package subset

import (
	"unicode"

	"github.com/go-text/typesetting/language"
	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

// Decode resolves the HTML entities of a test string and returns the
// sample characters in NFC.
func Decode(testString string) string {
	return norm.NFC.String(html.UnescapeString(testString))
}

// Covers reports whether all letters of a test string belong to script.
// Non-letters are ignored. An empty sample covers nothing.
func Covers(testString string, script language.Script) bool {
	letters := 0
	for _, r := range Decode(testString) {
		if !unicode.IsLetter(r) {
			continue
		}
		if language.LookupScript(r) != script {
			tracer().Debugf("%U is not of script %s", r, script)
			return false
		}
		letters++
	}
	return letters > 0
}
