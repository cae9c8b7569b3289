/*
Analisador parses a source file against the front end's fixed grammar and
reports its reduction trace and diagnostics.

Usage:

	analisador [flags] FILE

The flags are:

	-v, --version
		Give the current version of analisador and then exit.

	-t, --trace
		Print the reduction trace for the parse.

	-s, --symbols
		Print the final symbol table.

	-k, --tokens
		Print every token the scanner produced, in source order.

	-c, --config FILE
		Load settings (table overrides, recoverable-error cap) from the
		given TOML file.

	-r, --repl
		Start an interactive read-eval-parse loop instead of reading a
		file; each line entered is parsed as a standalone program.

Exit code is 0 on a clean parse (no diagnostics of either kind), and
non-zero if the source produced any lexical or syntactic diagnostic, or if
the program could not be started at all.
*/
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/pflag"

	"github.com/lferreira-dev/analisador/internal/config"
	"github.com/lferreira-dev/analisador/internal/session"
	"github.com/lferreira-dev/analisador/internal/slrtable"
	"github.com/lferreira-dev/analisador/internal/source"
	"github.com/lferreira-dev/analisador/internal/version"
)

const (
	// ExitSuccess indicates a clean parse with no diagnostics.
	ExitSuccess = iota

	// ExitDiagnostics indicates a parse that completed but produced at
	// least one lexical or syntactic diagnostic.
	ExitDiagnostics

	// ExitInitError indicates the program could not even begin: a bad
	// flag, a missing file, or a malformed config.
	ExitInitError
)

var (
	returnCode  int     = ExitSuccess
	flagVersion *bool   = pflag.BoolP("version", "v", false, "Give the current version of analisador and then exit.")
	flagTrace   *bool   = pflag.BoolP("trace", "t", false, "Print the reduction trace for the parse.")
	flagSymbols *bool   = pflag.BoolP("symbols", "s", false, "Print the final symbol table.")
	flagTokens  *bool   = pflag.BoolP("tokens", "k", false, "Print every token the scanner produced.")
	flagConfig  *string = pflag.StringP("config", "c", "", "Load settings from the given TOML file.")
	flagRepl    *bool   = pflag.BoolP("repl", "r", false, "Start an interactive read-eval-parse loop.")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occurred: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	cfg := config.Default()
	if *flagConfig != "" {
		loaded, err := config.Load(*flagConfig)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			returnCode = ExitInitError
			return
		}
		cfg = loaded
	}

	if *flagRepl {
		runRepl(cfg)
		return
	}

	args := pflag.Args()
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "expected exactly one source file\nDo -h for help.\n")
		returnCode = ExitInitError
		return
	}

	r, closeFn, err := source.Open(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}
	defer closeFn()

	runOne(r, cfg)
}

func runOne(r io.Reader, cfg config.Config) {
	opts := session.Options{
		MaxRecoverableErrors: cfg.MaxRecoverableErrors,
		CollectTokenTrace:    *flagTokens,
	}
	if !cfg.UsesEmbeddedTables() {
		tab, err := slrtable.LoadFrom(cfg.ActionTable, cfg.GotoTable)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			returnCode = ExitInitError
			return
		}
		opts.Table = tab
	}

	sess, err := session.Run(r, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}

	report(sess)

	if !sess.Result.Accepted || len(sess.Diagnostics()) > 0 {
		returnCode = ExitDiagnostics
	}
}

func report(sess *session.Session) {
	if *flagTokens {
		for _, tok := range sess.TokenTrace {
			fmt.Println(tok.String())
		}
	}

	if *flagTrace {
		fmt.Println(sess.TraceReport())
	}

	for _, d := range sess.Diagnostics() {
		fmt.Fprintln(os.Stderr, d.Error())
	}

	if *flagSymbols {
		fmt.Println(sess.SymbolTableReport())
	}

	if sess.Result.Accepted {
		fmt.Printf("parse accepted (id %s)\n", sess.ID)
	} else {
		fmt.Printf("parse aborted (id %s)\n", sess.ID)
	}
}

func runRepl(cfg config.Config) {
	rl, err := readline.NewEx(&readline.Config{Prompt: "analisador> "})
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or readline.ErrInterrupt
			return
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		runOne(strings.NewReader(line), cfg)
	}
}
