/*
File : loxscript/repl/repl.go
*/

// Package repl implements the interactive read-eval-print loop for
// loxscript. Source lines are read with line editing and history support;
// a single Interpreter and its environment persist across the whole
// session, so a `var` declared on one line is visible on the next.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/loxscript/loxscript/interpreter"
	"github.com/loxscript/loxscript/lexer"
	"github.com/loxscript/loxscript/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	greenColor  = color.New(color.FgGreen)
	redColor    = color.New(color.FgRed)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the cosmetic configuration of an interactive session.
type Repl struct {
	Banner  string
	Version string
	Prompt  string
	Line    string
}

// New creates a Repl with the given banner, version string, and prompt.
func New(banner, version, prompt string) *Repl {
	return &Repl{
		Banner:  banner,
		Version: version,
		Prompt:  prompt,
		Line:    strings.Repeat("-", 48),
	}
}

// printBanner writes the startup banner and usage hints.
func (r *Repl) printBanner(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "loxscript %s\n", r.Version)
	cyanColor.Fprintln(writer, "Type your code and press enter.")
	cyanColor.Fprintln(writer, "Type 'exit' or 'quit' to leave, or press Ctrl+D.")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL loop against writer until the user exits or EOF is
// reached. It never returns an error: scan/parse/runtime failures are
// printed and the session continues, matching the CLI's exit-code-1-only-
// in-file-mode contract.
func (r *Repl) Start(writer io.Writer) {
	r.printBanner(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		redColor.Fprintf(writer, "could not start line editor: %v\n", err)
		return
	}
	defer rl.Close()

	interp := interpreter.New()
	interp.SetWriter(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("\n"))
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			return
		}

		rl.SaveHistory(line)
		r.evalLine(writer, interp, line)
	}
}

// evalLine scans, parses, and evaluates one input line against interp,
// guarded by a defer/recover as a last-resort backstop against an
// unexpected panic; ordinary failures are reported through the typed
// diagnostics below, not through this recovery path.
func (r *Repl) evalLine(writer io.Writer, interp *interpreter.Interpreter, line string) {
	defer func() {
		if rec := recover(); rec != nil {
			redColor.Fprintf(writer, "[runtime error] %v\n", rec)
		}
	}()

	lx := lexer.New(line)
	tokens := lx.Scan()
	if len(lx.Diagnostics) > 0 {
		for _, d := range lx.Diagnostics {
			redColor.Fprintf(writer, "%s\n", d)
		}
		return
	}

	p := parser.New(tokens)
	stmts := p.Parse()
	if p.HasErrors() {
		for _, e := range p.GetErrors() {
			redColor.Fprintf(writer, "%s\n", e)
		}
		return
	}

	if err := interp.Run(stmts); err != nil {
		redColor.Fprintf(writer, "%s\n", err.Error())
	}
}
