package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'fontapi'
func tracer() tracing.Trace {
	return tracing.Select("fontapi")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":      "go",
		"trace.fontapi":        "Info",
		"trace.fontapi.fvd":    "Error",
		"trace.fontapi.subset": "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError)    // will set the correct level later
	pterm.Info.Println("Welcome to Font API CLI") // colored welcome message
	//
	// set up REPL
	repl, err := readline.New("fontapi > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	intp := &Intp{repl: repl}
	//
	// descriptors given on the command line are parsed right away
	if flag.NArg() > 0 {
		parseOp(intp, &Op{code: PARSE, args: flag.Args()})
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	tracer().Infof("Trace level is %s", *tlevel)
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl    *readline.Instance
	history []string // descriptors of the last 'parse' command
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		op, err := parseCommand(line)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		err, quit := intp.execute(op)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

type Op struct {
	code int
	args []string
}

const (
	QUIT int = iota
	HELP
	PARSE
	EXPAND
	COMPACT
	SUBSETS
	VARIATION
)

var opMap = map[string]int{
	"quit":      QUIT,
	"help":      HELP,
	"parse":     PARSE,
	"expand":    EXPAND,
	"compact":   COMPACT,
	"subsets":   SUBSETS,
	"variation": VARIATION,
}

var opNames = []string{
	"quit",
	"help",
	"parse",
	"expand",
	"compact",
	"subsets",
	"variation",
}

var ErrNoArgs = errors.New("command needs arguments")

// parseCommand splits a line into an op-code and arguments, e.g.
// "parse Open+Sans:bold Tangerine::latin". Unknown commands show the help
// text.
func parseCommand(line string) (*Op, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, ErrNoArgs
	}
	code, ok := opMap[strings.ToLower(fields[0])]
	if !ok {
		tracer().Infof("unknown command %q", fields[0])
		return &Op{code: HELP}, nil
	}
	op := &Op{code: code, args: fields[1:]}
	if len(op.args) == 0 {
		tracer().Debugf("%s", opNames[code])
	} else {
		tracer().Debugf("%s: %v", opNames[code], op.args)
	}
	return op, nil
}

var commandFn = map[int]func(*Intp, *Op) (error, bool){
	QUIT:      quitOp,
	HELP:      helpOp,
	PARSE:     parseOp,
	EXPAND:    expandOp,
	COMPACT:   compactOp,
	SUBSETS:   subsetsOp,
	VARIATION: variationOp,
}

func (intp *Intp) execute(op *Op) (err error, stop bool) {
	f, ok := commandFn[op.code]
	if !ok {
		pterm.Error.Printf("unknown command code: %d\n", op.code)
		return nil, false
	}
	return f(intp, op)
}

func quitOp(intp *Intp, op *Op) (error, bool) {
	pterm.Println("Goodbye!")
	return nil, true
}
