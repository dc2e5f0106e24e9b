/*
Eqlcheck reads a QL source file and reports whether it parses cleanly.

Usage:

	eqlcheck FILE

It parses FILE as the BLOCK dialect (a sequence of top-level statements
and DDL) and prints every diagnostic produced. Exit status is 0 if the
file parsed with no diagnostics, 1 if parsing produced diagnostics, and 2
on a usage error, an unreadable file, or a failure to build the parser.

This is a minimal smoke check, not an interactive shell (SPEC_FULL.md
§0/§3 Non-goal): no REPL, no readline, no flags beyond the one
positional file argument.
*/
package main

import (
	"fmt"
	"os"

	"github.com/dekarrin/eqlparser/eql"
	"github.com/dekarrin/eqlparser/lex"
)

const (
	exitSuccess = iota
	exitParseError
	exitInitError
)

func main() {
	os.Exit(run())
}

func run() int {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: eqlcheck FILE\n")
		return exitInitError
	}

	path := os.Args[1]
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		return exitInitError
	}

	spec, err := eql.BuildSpec()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		return exitInitError
	}

	src := lex.NewSource(string(data), path)
	result := spec.ParseBlock(src)

	fmt.Println(result.Summary())
	for _, d := range result.Diagnostics {
		fmt.Fprintln(os.Stderr, d.Pretty(0))
	}

	if !result.Ok() {
		return exitParseError
	}
	return exitSuccess
}
