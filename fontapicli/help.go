package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, op *Op) (error, bool) {
	topic := ""
	if len(op.args) > 0 {
		topic = op.args[0]
	}
	help(topic)
	return nil, false
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	t := strings.ToLower(topic)
	switch t {
	case "parse", "descriptor", "descriptors":
		pterm.Info.Println("parse <descriptor> ...")
		pterm.Println(`
	A descriptor requests a font family from a web font API:
	+--------------+----------------+-------------------+
	| Family+Name  | :v1,v2,...     | :subset1,...      |
	+--------------+----------------+-------------------+
	Variations are optional and default to "n4".
	Subsets are optional; only the first one selects a test string.
	Example:  parse Open+Sans:300,bold,700italic:cyrillic Hanuman
	Without arguments, the previous descriptors are parsed again.
	`)
	case "expand", "compact", "fvd":
		pterm.Info.Println("expand <fvd> ... / compact <css>")
		pterm.Println(`
	A font variation description has two characters:
	+-----------------+-------------------------+
	| style [n, i, o] | weight [1-9] (x 100)    |
	+-----------------+-------------------------+
	Example:  expand i7
	          compact font-style:italic;font-weight:700;
	`)
	case "variation", "variations":
		pterm.Info.Println("variation <token> ...")
		pterm.Println(`
	Shows the FVD for variation tokens like "bold", "300", "700i" or "bi".
	`)
	case "subsets", "subset":
		pterm.Info.Println("subsets [name ...]")
		pterm.Println(`
	Lists the known subsets with their test strings.
	`)
	default:
		pterm.Info.Println("Commands: " + strings.Join(opNames, ", "))
		pterm.Println("Use 'help <command>' for details.")
	}
}
