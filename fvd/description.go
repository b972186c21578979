package fvd

import (
	otfont "github.com/go-text/typesetting/font"
	"golang.org/x/image/font"
)

// Style is the style part of an FVD.
type Style byte

// Styles known to FVDs.
const (
	StyleNormal  Style = 'n'
	StyleItalic  Style = 'i'
	StyleOblique Style = 'o'
)

// Description is a decoded FVD.
type Description struct {
	Style  Style
	Weight int // CSS weight 100…900
}

// Parse decodes an FVD.
func Parse(code string) (Description, error) {
	if _, ok := Expand(code); !ok {
		return Description{}, errFVD(code, "expected style letter [nio] and weight digit [1-9]")
	}
	return Description{
		Style:  Style(code[0]),
		Weight: int(code[1]-'0') * 100,
	}, nil
}

// MustParse is like Parse, but panics on invalid codes.
func MustParse(code string) Description {
	d, err := Parse(code)
	if err != nil {
		panic(err)
	}
	return d
}

// String returns the two-character code of d.
func (d Description) String() string {
	w := d.Weight / 100
	if w < 1 || w > 9 {
		w = 4
	}
	s := d.Style
	if s != StyleItalic && s != StyleOblique {
		s = StyleNormal
	}
	return string([]byte{byte(s), byte('0' + w)})
}

// CSS returns the CSS declarations for d.
func (d Description) CSS() string {
	css, _ := Expand(d.String())
	return css
}

// Aspect converts d to a go-text font aspect.
func (d Description) Aspect() otfont.Aspect {
	a := otfont.Aspect{
		Style:   otfont.StyleNormal,
		Weight:  otfont.Weight(int(d.String()[1]-'0') * 100),
		Stretch: otfont.StretchNormal,
	}
	if d.Style == StyleItalic || d.Style == StyleOblique {
		a.Style = otfont.StyleItalic
	}
	return a
}

// FromAspect creates a description from a go-text font aspect. Weights are
// rounded to the nearest multiple of 100.
func FromAspect(a otfont.Aspect) Description {
	d := Description{Style: StyleNormal, Weight: 400}
	if a.Style == otfont.StyleItalic {
		d.Style = StyleItalic
	}
	if a.Weight > 0 {
		w := (int(a.Weight) + 50) / 100 * 100
		d.Weight = min(max(w, 100), 900)
	}
	return d
}

// xweights maps weight classes onto golang.org/x/image/font weights.
var xweights = [...]font.Weight{
	font.WeightThin,
	font.WeightExtraLight,
	font.WeightLight,
	font.WeightNormal,
	font.WeightMedium,
	font.WeightSemiBold,
	font.WeightBold,
	font.WeightExtraBold,
	font.WeightBlack,
}

// XWeight returns the weight of d as a golang.org/x/image/font weight.
func (d Description) XWeight() font.Weight {
	return xweights[d.String()[1]-'1']
}

// XStyle returns the style of d as a golang.org/x/image/font style.
func (d Description) XStyle() font.Style {
	switch d.Style {
	case StyleItalic:
		return font.StyleItalic
	case StyleOblique:
		return font.StyleOblique
	}
	return font.StyleNormal
}
