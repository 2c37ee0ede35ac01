/*
File   : ash/internal/repl/repl.go
Package: repl

Package repl implements Ash's Read-Eval-Print Loop, closely following
the teacher repo's repl.Repl: a banner, a chzyer/readline-backed
prompt with history, colorized feedback via fatih/color, and a single
long-lived interpreter.Interpreter so variable and function
declarations persist across lines in one session. A runtime or static
error is reported and the prompt simply continues, per the
specification ("a runtime error never terminates a REPL session");
only EOF (Ctrl-D), an interrupt (Ctrl-C) or ".exit" ends it.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/ash-lang/ash/internal/errs"
	"github.com/ash-lang/ash/interpreter"
	"github.com/ash-lang/ash/lexer"
	"github.com/ash-lang/ash/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

const banner = `    _           _
   / \   ___| |__
  / _ \ / __| '_ \
 / ___ \ (__| | | |
/_/   \_\___|_| |_|`

const line = "----------------------------------------------------------------"

// Repl is one interactive session's configuration.
type Repl struct {
	Version string
	Prompt  string
	NoColor bool
}

// New creates a Repl with the given version string and prompt.
func New(version, prompt string, noColor bool) *Repl {
	return &Repl{Version: version, Prompt: prompt, NoColor: noColor}
}

// printBanner writes the welcome banner and usage instructions.
func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", line)
	greenColor.Fprintf(w, "%s\n", banner)
	blueColor.Fprintf(w, "%s\n", line)
	yellowColor.Fprintf(w, "Ash %s\n", r.Version)
	blueColor.Fprintf(w, "%s\n", line)
	cyanColor.Fprintf(w, "%s\n", "Type '.exit' or press Ctrl-D to quit.")
	cyanColor.Fprintf(w, "%s\n", "Use up/down arrows to navigate history.")
	blueColor.Fprintf(w, "%s\n", line)
}

// Start runs the REPL loop against writer (and reader, implicitly,
// through readline). It returns once the session ends.
func (r *Repl) Start(writer io.Writer) error {
	if r.NoColor {
		color.NoColor = true
	}
	r.printBanner(writer)

	rl, err := readline.NewEx(&readline.Config{Prompt: r.Prompt, Stdout: writer})
	if err != nil {
		return err
	}
	defer rl.Close()

	report := errs.New()
	report.Out = writer
	interp := interpreter.New(report)
	interp.SetOutput(writer)

	for {
		input, err := rl.Readline()
		if err != nil { // io.EOF on Ctrl-D, readline.ErrInterrupt on Ctrl-C
			writer.Write([]byte("Goodbye!\n"))
			return nil
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == ".exit" {
			writer.Write([]byte("Goodbye!\n"))
			return nil
		}
		rl.SaveHistory(input)

		r.runLine(writer, input, report, interp)
	}
}

// runLine scans, parses, and interprets a single line, recovering
// from any panic so one bad line never ends the session.
func (r *Repl) runLine(writer io.Writer, line string, report *errs.Reporter, interp *interpreter.Interpreter) {
	defer func() {
		if rec := recover(); rec != nil {
			redColor.Fprintf(writer, "[runtime error] %v\n", rec)
		}
	}()

	report.Reset()

	lx := lexer.New(line, report)
	tokens := lx.ScanTokens()

	par := parser.New(tokens, report)
	statements := par.Parse()

	if report.HadError {
		return
	}
	interp.Interpret(statements)
}
