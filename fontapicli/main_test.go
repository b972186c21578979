package main

import (
	"errors"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontapi")
	defer teardown()
	//
	op, err := parseCommand("parse Open+Sans:bold,700i Tangerine::latin")
	if err != nil {
		t.Fatal(err)
	}
	if op.code != PARSE {
		t.Errorf("expected PARSE, got %s", opNames[op.code])
	}
	if !slices.Equal(op.args, []string{"Open+Sans:bold,700i", "Tangerine::latin"}) {
		t.Errorf("unexpected arguments %q", op.args)
	}
	if op, _ = parseCommand("EXPAND i7"); op.code != EXPAND {
		t.Errorf("expected commands to be case-insensitive")
	}
	if op, _ = parseCommand("frobnicate"); op.code != HELP {
		t.Errorf("expected unknown command to show help, got %s", opNames[op.code])
	}
	if _, err = parseCommand("   "); !errors.Is(err, ErrNoArgs) {
		t.Errorf("expected ErrNoArgs for empty line, got %v", err)
	}
}

func TestOpNames(t *testing.T) {
	for name, code := range opMap {
		if opNames[code] != name {
			t.Errorf("op-code %d is named %q, expected %q", code, opNames[code], name)
		}
		if _, ok := commandFn[code]; !ok {
			t.Errorf("no function for command %q", name)
		}
	}
}

func TestCommandsNeedArguments(t *testing.T) {
	intp := &Intp{}
	for _, code := range []int{PARSE, EXPAND, COMPACT, VARIATION} {
		err, stop := commandFn[code](intp, &Op{code: code})
		if !errors.Is(err, ErrNoArgs) || stop {
			t.Errorf("%s without arguments: expected ErrNoArgs, got %v", opNames[code], err)
		}
	}
}
