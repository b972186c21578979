package main

import (
	"strings"

	"github.com/npillmayer/fontapi"
	"github.com/npillmayer/fontapi/fvd"
	"github.com/npillmayer/fontapi/subset"
	"github.com/pterm/pterm"
)

// parseOp parses font family descriptors and prints the results as a table.
// Without arguments, the descriptors of the previous call are used again.
func parseOp(intp *Intp, op *Op) (error, bool) {
	descriptors := op.args
	if len(descriptors) == 0 {
		if descriptors = intp.history; len(descriptors) == 0 {
			return ErrNoArgs, false
		}
	}
	intp.history = descriptors
	p := fontapi.ParseFamilies(descriptors...)
	data := [][]string{
		{"Descriptor", "Family", "Variations", "Test String", "Sample"},
	}
	for i, family := range p.Families() {
		ts, ok := family.TestString.Unwrap()
		sample := ""
		if ok {
			sample = subset.Decode(ts)
		}
		data = append(data, []string{
			descriptors[i],
			family.Name,
			strings.Join(family.Variations, ","),
			ts,
			sample,
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

func expandOp(intp *Intp, op *Op) (error, bool) {
	if len(op.args) == 0 {
		return ErrNoArgs, false
	}
	for _, code := range op.args {
		d, err := fvd.Parse(code)
		if err != nil {
			return err, false
		}
		pterm.Printf("%s => %s\n", code, d.CSS())
	}
	return nil, false
}

// compactOp takes CSS declarations, which may contain blanks, as a single
// argument.
func compactOp(intp *Intp, op *Op) (error, bool) {
	if len(op.args) == 0 {
		return ErrNoArgs, false
	}
	css := strings.Join(op.args, " ")
	pterm.Printf("%s => %s\n", css, fvd.Compact(css))
	return nil, false
}

func subsetsOp(intp *Intp, op *Op) (error, bool) {
	names := op.args
	if len(names) == 0 {
		names = subset.Names()
	}
	data := [][]string{
		{"Subset", "Script", "ISO 15924", "Test String", "Sample"},
	}
	for _, name := range names {
		info, err := subset.Lookup(name)
		if err != nil {
			return err, false
		}
		data = append(data, []string{
			info.Name,
			info.Script.String(),
			info.ISO.String(),
			info.TestString,
			subset.Decode(info.TestString),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

// variationOp shows how variation tokens are normalized.
func variationOp(intp *Intp, op *Op) (error, bool) {
	if len(op.args) == 0 {
		return ErrNoArgs, false
	}
	p := fontapi.NewParser(nil)
	for _, token := range op.args {
		code, ok := p.NormalizeVariation(token)
		if !ok {
			pterm.Printf("%s => invalid\n", token)
			continue
		}
		d := fvd.MustParse(code)
		pterm.Printf("%s => %s (weight %d, %s)\n", token, code, d.Weight, styleName(d.Style))
	}
	return nil, false
}

func styleName(s fvd.Style) string {
	switch s {
	case fvd.StyleItalic:
		return "italic"
	case fvd.StyleOblique:
		return "oblique"
	}
	return "normal"
}
