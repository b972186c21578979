package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/fontapi"
	"github.com/npillmayer/fontapi/fvd"
	"github.com/npillmayer/fontapi/subset"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/thatisuday/commando"
)

func main() {
	commando.
		SetExecutableName("fontapi-tools").
		SetVersion("v0.0.1").
		SetDescription("CLI for inspecting web font API family requests.")

	commando.
		Register("parse").
		SetDescription("Parse font family descriptors, separated by '|' as in a font API query, e.g. 'Open+Sans:300,bold|Hanuman'.").
		SetShortDescription("parse descriptors").
		AddArgument("families", "descriptors separated by '|'", "").
		AddFlag("css,c", "print CSS declarations for every variation", commando.Bool, nil).
		AddFlag("decode,d", "print decoded test strings", commando.Bool, nil).
		AddFlag("verbose,V", "trace parsing", commando.Bool, nil).
		SetAction(runParseCommand)

	commando.
		Register("fvd").
		SetDescription("Print CSS, go-text aspect and x/image style/weight for font variation descriptions.").
		SetShortDescription("font variation descriptions").
		AddArgument("codes...", "FVDs like n4 or i7 (comma/space separated)", "").
		SetAction(runFVDCommand)

	commando.
		Register("subsets").
		SetDescription("List the known international subsets and their test strings.").
		SetShortDescription("list subsets").
		SetAction(runSubsetsCommand)

	commando.Parse(nil)
}

func runParseCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(mustFlagBool(flags["verbose"], "verbose"))
	descriptors := splitFamilies(args["families"].Value)
	if len(descriptors) == 0 {
		fatalf("no font families given")
	}
	showCSS := mustFlagBool(flags["css"], "css")
	decode := mustFlagBool(flags["decode"], "decode")

	p := fontapi.ParseFamilies(descriptors...)
	for _, family := range p.Families() {
		fmt.Printf("%s: %s\n", family.Name, strings.Join(family.Variations, ","))
		if showCSS {
			for _, code := range family.Variations {
				css, _ := fvd.Expand(code)
				fmt.Printf("  %s  %s\n", code, css)
			}
		}
		if ts, ok := family.TestString.Unwrap(); ok {
			if decode {
				fmt.Printf("  test string: %s (%s)\n", ts, subset.Decode(ts))
			} else {
				fmt.Printf("  test string: %s\n", ts)
			}
		}
	}
}

func runFVDCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	codes := splitCSVSpace(args["codes"].Value)
	if len(codes) == 0 {
		fatalf("no FVD given")
	}
	for _, code := range codes {
		d, err := fvd.Parse(code)
		if err != nil {
			fatalf("%v", err)
		}
		a := d.Aspect()
		fmt.Printf("%s: %s\n", d, d.CSS())
		fmt.Printf("  aspect: style=%d weight=%g\n", a.Style, a.Weight)
		fmt.Printf("  x/image: style=%d weight=%d\n", d.XStyle(), d.XWeight())
	}
}

func runSubsetsCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	for _, name := range subset.Names() {
		info, err := subset.Lookup(name)
		if err != nil {
			fatalf("%v", err)
		}
		fmt.Printf("%-10s %s  %-28s %s\n", info.Name, info.ISO, info.TestString, subset.Decode(info.TestString))
	}
}

// splitFamilies splits a font API family query. Empty entries are dropped.
func splitFamilies(query string) []string {
	var families []string
	for _, f := range strings.Split(query, "|") {
		if f = strings.TrimSpace(f); f != "" {
			families = append(families, f)
		}
	}
	return families
}

func splitCSVSpace(list string) []string {
	return strings.FieldsFunc(list, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}

func setupTracing(verbose bool) {
	level := "Error"
	if verbose {
		level = "Debug"
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":      "go",
		"trace.fontapi":        level,
		"trace.fontapi.fvd":    level,
		"trace.fontapi.subset": level,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fatalf("error configuring tracing: %v", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
}

func mustFlagBool(flag commando.FlagValue, name string) bool {
	b, err := flag.GetBool()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return b
}

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "fontapi-tools: "+format+"\n", args...)
	os.Exit(1)
}
