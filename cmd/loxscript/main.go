/*
File : loxscript/cmd/loxscript/main.go
*/

// Command loxscript is the entry point for the loxscript interpreter.
// It provides two modes of operation:
//  1. REPL mode (default): interactive read-eval-print loop
//  2. File mode: execute a loxscript source file given on the command line
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/loxscript/loxscript/astprint"
	"github.com/loxscript/loxscript/interpreter"
	"github.com/loxscript/loxscript/lexer"
	"github.com/loxscript/loxscript/parser"
	"github.com/loxscript/loxscript/repl"
)

// VERSION reports the interpreter's release string.
var VERSION = "v1.0.0"

// PROMPT is the command prompt displayed in REPL mode.
var PROMPT = "loxscript >>> "

// BANNER is the ASCII art logo displayed when starting the REPL.
var BANNER = `
   __             _ _
  / /___  _  _____(_) /____  ____ __
 / / __ \| |/_/ ___/ / ___/ / __ \/ /
/ / /_/ />  <(__  ) / /   / /_/ / /
/_/\____/_/|_/____/_/_/    \__,_/

`

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

func main() {
	if len(os.Args) == 1 {
		r := repl.New(BANNER, VERSION, PROMPT)
		r.Start(os.Stdout)
		return
	}

	switch arg := os.Args[1]; arg {
	case "--help", "-h":
		showHelp()
	case "--print-tokens":
		requireFile(os.Args, "--print-tokens")
		printTokens(os.Args[2])
	case "--print-ast":
		requireFile(os.Args, "--print-ast")
		printAST(os.Args[2])
	default:
		runFile(arg)
	}
}

func requireFile(args []string, flag string) {
	if len(args) < 3 {
		redColor.Fprintf(os.Stderr, "usage: loxscript %s <path-to-file>\n", flag)
		os.Exit(1)
	}
}

func showHelp() {
	cyanColor.Println("loxscript - a small tree-walking interpreter")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  loxscript                       Start interactive REPL mode")
	yellowColor.Println("  loxscript <path-to-file>         Execute a loxscript file")
	yellowColor.Println("  loxscript --print-tokens <file>  Scan a file and dump its tokens")
	yellowColor.Println("  loxscript --print-ast <file>     Parse a file and dump its AST")
	yellowColor.Println("  loxscript --help                 Display this help message")
}

// runFile reads and executes a loxscript source file, exiting 1 on any
// scan, parse, or runtime error.
func runFile(fileName string) {
	source, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "could not read file '%s': %v\n", fileName, err)
		os.Exit(1)
	}
	executeFileWithRecovery(string(source))
}

// executeFileWithRecovery runs the full scan-parse-eval pipeline over
// source, guarded by a defer/recover as a last-resort backstop against an
// unexpected panic.
func executeFileWithRecovery(source string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(os.Stderr, "[runtime error] %v\n", recovered)
			os.Exit(1)
		}
	}()

	lx := lexer.New(source)
	tokens := lx.Scan()
	if len(lx.Diagnostics) > 0 {
		for _, d := range lx.Diagnostics {
			redColor.Fprintf(os.Stderr, "%s\n", d)
		}
		os.Exit(1)
	}

	p := parser.New(tokens)
	stmts := p.Parse()
	if p.HasErrors() {
		for _, e := range p.GetErrors() {
			redColor.Fprintf(os.Stderr, "%s\n", e)
		}
		os.Exit(1)
	}

	in := interpreter.New()
	if err := in.Run(stmts); err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err.Error())
		os.Exit(1)
	}
}

func printTokens(fileName string) {
	source, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "could not read file '%s': %v\n", fileName, err)
		os.Exit(1)
	}

	lx := lexer.New(string(source))
	tokens := lx.Scan()
	for _, tok := range tokens {
		fmt.Printf("%s %s\n", tok.Type, tok.Lexeme)
	}
	if len(lx.Diagnostics) > 0 {
		for _, d := range lx.Diagnostics {
			redColor.Fprintf(os.Stderr, "%s\n", d)
		}
		os.Exit(1)
	}
}

func printAST(fileName string) {
	source, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "could not read file '%s': %v\n", fileName, err)
		os.Exit(1)
	}

	lx := lexer.New(string(source))
	tokens := lx.Scan()
	if len(lx.Diagnostics) > 0 {
		for _, d := range lx.Diagnostics {
			redColor.Fprintf(os.Stderr, "%s\n", d)
		}
		os.Exit(1)
	}

	p := parser.New(tokens)
	stmts := p.Parse()
	if p.HasErrors() {
		for _, e := range p.GetErrors() {
			redColor.Fprintf(os.Stderr, "%s\n", e)
		}
		os.Exit(1)
	}

	yellowColor.Println(astprint.Print(stmts))
}
