package fvd

import (
	"errors"
	"testing"

	otfont "github.com/go-text/typesetting/font"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/image/font"
)

func TestExpand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontapi.fvd")
	defer teardown()
	//
	tests := []struct {
		code string
		css  string
		ok   bool
	}{
		{"n4", "font-style:normal;font-weight:400;", true},
		{"i7", "font-style:italic;font-weight:700;", true},
		{"o1", "font-style:oblique;font-weight:100;", true},
		{"n9", "font-style:normal;font-weight:900;", true},
		{"n0", "", false},
		{"x4", "", false},
		{"n", "", false},
		{"n44", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		css, ok := Expand(tt.code)
		if ok != tt.ok || css != tt.css {
			t.Errorf("Expand(%q) = (%q, %v); want (%q, %v)", tt.code, css, ok, tt.css, tt.ok)
		}
	}
}

func TestCompact(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontapi.fvd")
	defer teardown()
	//
	tests := []struct {
		css  string
		code string
	}{
		{"font-style:normal;font-weight:400;", "n4"},
		{"font-style:italic;font-weight:700;", "i7"},
		{"font-weight: bold; font-style: oblique", "o7"},
		{"font-weight:normal", "n4"},
		{"font-style:italic", "i4"},
		{"font-weight:300", "n3"},
		{"color:red;font-weight:250", "n4"},
		{"", "n4"},
	}
	for _, tt := range tests {
		if code := Compact(tt.css); code != tt.code {
			t.Errorf("Compact(%q) = %q; want %q", tt.css, code, tt.code)
		}
	}
}

func TestCodecRoundTrip(t *testing.T) {
	var codec Codec
	for _, s := range "nio" {
		for w := '1'; w <= '9'; w++ {
			code := string([]rune{s, w})
			css, ok := codec.Expand(code)
			if !ok {
				t.Fatalf("expected %q to expand", code)
			}
			if back := codec.Compact(css); back != code {
				t.Errorf("round trip of %q yields %q", code, back)
			}
		}
	}
}

func TestParse(t *testing.T) {
	d, err := Parse("i6")
	if err != nil {
		t.Fatal(err)
	}
	if d.Style != StyleItalic || d.Weight != 600 {
		t.Errorf("unexpected description %+v", d)
	}
	if d.String() != "i6" {
		t.Errorf("expected String() = i6, got %q", d.String())
	}
	if d.CSS() != "font-style:italic;font-weight:600;" {
		t.Errorf("unexpected CSS %q", d.CSS())
	}
	if _, err = Parse("q6"); !errors.Is(err, ErrInvalidCode) {
		t.Errorf("expected ErrInvalidCode, got %v", err)
	}
}

func TestDescriptionConversions(t *testing.T) {
	d := MustParse("i7")
	a := d.Aspect()
	if a.Style != otfont.StyleItalic || a.Weight != otfont.WeightBold {
		t.Errorf("unexpected aspect %+v", a)
	}
	if back := FromAspect(a); back != d {
		t.Errorf("FromAspect(%+v) = %+v; want %+v", a, back, d)
	}
	if d.XWeight() != font.WeightBold || d.XStyle() != font.StyleItalic {
		t.Errorf("unexpected x/image weight/style %v/%v", d.XWeight(), d.XStyle())
	}
	if w := MustParse("n1").XWeight(); w != font.WeightThin {
		t.Errorf("expected thin weight, got %v", w)
	}
	if s := MustParse("o4").XStyle(); s != font.StyleOblique {
		t.Errorf("expected oblique style, got %v", s)
	}
	if z := (Description{}).String(); z != Default {
		t.Errorf("expected zero description to be %s, got %q", Default, z)
	}
	if d := FromAspect(otfont.Aspect{Weight: 349}); d.String() != "n3" {
		t.Errorf("expected weight 349 to round to n3, got %q", d.String())
	}
}
