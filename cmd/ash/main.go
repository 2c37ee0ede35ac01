/*
File   : ash/cmd/ash/main.go
Package: main

cmd/ash is Ash's command-line driver: a REPL (no arguments) or a file
runner (one argument), per the specification's external-interface
contract. It is an external collaborator to the interpreter core —
none of token, lexer, ast, parser, environment, value, or interpreter
import it — and is the one place those packages get wired to os.Args,
exit codes, and the terminal.
*/
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"

	"github.com/ash-lang/ash/internal/config"
	"github.com/ash-lang/ash/internal/errs"
	"github.com/ash-lang/ash/internal/obslog"
	"github.com/ash-lang/ash/internal/repl"
	"github.com/ash-lang/ash/interpreter"
	"github.com/ash-lang/ash/lexer"
	"github.com/ash-lang/ash/parser"
)

const version = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := flag.NewFlagSet("ash", flag.ContinueOnError)
	debug := flags.Bool("debug", false, "trace scan/parse/interpret phases to stderr")
	debugAST := flags.Bool("debug-ast", false, "dump the parsed statement list to stderr before running")
	noColor := flags.Bool("no-color", false, "disable colored REPL output")
	if err := flags.Parse(args); err != nil {
		return 64
	}

	cfg, err := config.Load(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "ash: reading .ashrc.yaml: %v\n", err)
		return 64
	}
	if *debug {
		cfg.Debug = true
	}
	if *noColor {
		cfg.NoColor = true
	}

	logger := obslog.Disabled()
	if cfg.Debug {
		logger = obslog.New(os.Stderr, slog.LevelDebug)
	}

	rest := flags.Args()
	switch len(rest) {
	case 0:
		r := repl.New(version, cfg.Prompt, cfg.NoColor)
		if err := r.Start(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "ash: %v\n", err)
			return 1
		}
		return 0
	case 1:
		return runFile(rest[0], logger, *debugAST, cfg.NoColor)
	default:
		fmt.Fprintln(os.Stderr, "usage: ash [--debug] [--debug-ast] [--no-color] [script]")
		return 64
	}
}

// runFile reads, scans, parses, and interprets a single source file,
// returning the process exit code the specification requires: 65 on
// any static error, 70 on any runtime error, 0 otherwise.
func runFile(path string, logger *obslog.Logger, debugAST bool, noColor bool) int {
	if noColor {
		color.NoColor = true
	}
	red := color.New(color.FgRed)

	source, err := os.ReadFile(path)
	if err != nil {
		red.Fprintf(os.Stderr, "ash: could not read '%s': %v\n", path, err)
		return 1
	}

	report := errs.New()

	logger.Phase("scan", "file", path)
	lx := lexer.New(string(source), report)
	tokens := lx.ScanTokens()

	logger.Phase("parse", "tokens", len(tokens))
	par := parser.New(tokens, report)
	statements := par.Parse()

	if debugAST {
		spew.Fdump(os.Stderr, statements)
	}

	if report.HadError {
		return 65
	}

	logger.Phase("interpret", "statements", len(statements))
	interp := interpreter.New(report)
	interp.Interpret(statements)

	if report.HadRuntimeError {
		return 70
	}
	return 0
}
