/*
File    : go-giulio/main/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the Giulio interpreter.
It provides four modes of operation:
1. REPL Mode (default): interactive Read-Eval-Print Loop
2. Run Mode: execute a .giu source file
3. Check Mode: lex and parse a .giu source file without executing it
4. Watch Mode: re-run a .giu source file whenever it changes on disk

The interpreter uses a lexer-parser-evaluator pipeline to process Giulio
code.
*/
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/fsnotify/fsnotify"
	"github.com/urfave/cli/v2"

	"github.com/akashmaji946/go-giulio/eval"
	"github.com/akashmaji946/go-giulio/repl"
)

// VERSION represents the current version of the Giulio interpreter
var VERSION = "v0.1.0"

// AUTHOR contains the contact information of the interpreter's author
var AUTHOR = "akashmaji(@iisc.ac.in)"

// LICENCE specifies the software license (MIT License)
var LICENCE = "MIT"

// PROMPT is the command prompt displayed in REPL mode
var PROMPT = "giulio >>> "

// BANNER is the ASCII art logo displayed when starting the REPL
var BANNER = `
   ____ _       _ _
  / ___(_)_   _| (_) ___
 | |  _| | | | | | |/ _ \
 | |_| | | |_| | | | (_) |
  \____|_|\__,_|_|_|\___/
`

// LINE is a separator line used for visual formatting in the REPL
var LINE = "----------------------------------------------------------------"

// Color definitions for file execution output:
// - redColor: error messages and critical failures
// - yellowColor: results
// - cyanColor: informational messages
var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// main dispatches the command line through urfave/cli. With no arguments
// the interpreter drops into the REPL.
func main() {
	app := &cli.App{
		Name:    "go-giulio",
		Usage:   "the Giulio language interpreter",
		Version: VERSION,
		Commands: []*cli.Command{
			{
				Name:      "run",
				Usage:     "execute a .giu source file",
				ArgsUsage: "<file.giu>",
				Action: func(c *cli.Context) error {
					return runCommand(c.Args().First())
				},
			},
			{
				Name:      "check",
				Usage:     "lex and parse a .giu source file without executing it",
				ArgsUsage: "<file.giu>",
				Action: func(c *cli.Context) error {
					return checkCommand(c.Args().First())
				},
			},
			{
				Name:      "watch",
				Usage:     "re-run a .giu source file whenever it changes",
				ArgsUsage: "<file.giu>",
				Action: func(c *cli.Context) error {
					return watchCommand(c.Args().First())
				},
			},
		},
		Action: func(c *cli.Context) error {
			// No sub-command: start the REPL
			r := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT)
			return r.Start()
		},
	}

	if err := app.Run(os.Args); err != nil {
		redColor.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// readSourceFile validates the extension and loads the file contents.
func readSourceFile(filename string) (string, error) {
	if filename == "" {
		return "", fmt.Errorf("no source file given")
	}
	if !strings.HasSuffix(filename, ".giu") {
		return "", fmt.Errorf("%s is not a Giulio (.giu) file", filename)
	}
	source, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("could not read file %s: %v", filename, err)
	}
	return string(source), nil
}

// runCommand executes a source file. The evaluator's module registry is
// rooted at the file's directory so relative imports resolve next to the
// script.
func runCommand(filename string) error {
	source, err := readSourceFile(filename)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	basePath := filepath.Dir(filename)
	evaluator := eval.NewEvaluatorWithRegistry(eval.NewModuleRegistry(basePath))

	if ok := runSource(source, evaluator); !ok {
		return cli.Exit("", 1)
	}
	return nil
}

// checkCommand lexes and parses a source file without executing it.
func checkCommand(filename string) error {
	source, err := readSourceFile(filename)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if ok := checkSource(source); !ok {
		return cli.Exit("", 1)
	}
	cyanColor.Printf("%s: syntax OK\n", filename)
	return nil
}

// watchCommand runs a source file, then re-runs it on every write to the
// file. Each run gets a fresh evaluator so stale bindings cannot leak
// between runs.
func watchCommand(filename string) error {
	source, err := readSourceFile(filename)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	watcher, werr := fsnotify.NewWatcher()
	if werr != nil {
		return cli.Exit(fmt.Sprintf("could not start watcher: %v", werr), 1)
	}
	defer watcher.Close()

	// Watch the directory: editors replace files on save, which drops
	// a watch registered on the file itself
	dir := filepath.Dir(filename)
	if werr := watcher.Add(dir); werr != nil {
		return cli.Exit(fmt.Sprintf("could not watch %s: %v", dir, werr), 1)
	}

	basePath := filepath.Dir(filename)
	run := func(src string) {
		cyanColor.Printf("--- running %s ---\n", filename)
		evaluator := eval.NewEvaluatorWithRegistry(eval.NewModuleRegistry(basePath))
		runSource(src, evaluator)
	}

	run(source)
	target := filepath.Clean(filename)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			src, err := readSourceFile(filename)
			if err != nil {
				redColor.Fprintln(os.Stderr, err)
				continue
			}
			run(src)
		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			redColor.Fprintf(os.Stderr, "watch error: %v\n", werr)
		}
	}
}
