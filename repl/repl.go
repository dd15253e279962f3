/*
File    : go-giulio/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the Read-Eval-Print Loop (REPL) for the Giulio
interpreter. The REPL provides an interactive environment where users can:
- Enter Giulio code line by line
- See immediate results of their code execution
- Navigate command history using arrow keys
- Receive colored feedback for different types of output

The REPL uses the readline library for enhanced line editing capabilities
and integrates with the parser and evaluator to execute user input.
*/
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/go-giulio/eval"
	"github.com/akashmaji946/go-giulio/lexer"
	"github.com/akashmaji946/go-giulio/objects"
	"github.com/akashmaji946/go-giulio/parser"
)

// Color definitions for REPL output
// These colors provide visual feedback to enhance user experience:
// - blueColor: decorative lines and separators
// - yellowColor: expression results and version info
// - redColor: error messages and warnings
// - greenColor: banner and success messages
// - cyanColor: informational messages and instructions
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl represents the Read-Eval-Print Loop instance.
// It encapsulates all the configuration needed to run an interactive
// session.
type Repl struct {
	Banner  string // ASCII art banner displayed at startup
	Version string // Version string of the interpreter
	Author  string // Author contact information
	Line    string // Separator line for visual formatting
	License string // Software license information
	Prompt  string // Command prompt shown to the user
}

// NewRepl creates and initializes a new REPL instance.
func NewRepl(banner string, version string, author string, line string, license string, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo() {
	blueColor.Println(r.Line)
	greenColor.Println(r.Banner)
	blueColor.Println(r.Line)
	yellowColor.Printf("Giulio %s by %s [%s]\n", r.Version, r.Author, r.License)
	cyanColor.Println("Type 'exit' or 'quit' to leave. Use arrow keys for history.")
	blueColor.Println(r.Line)
}

// Start runs the interactive session until the user exits or the input
// stream closes. One shared evaluator keeps bindings alive across lines.
func (r *Repl) Start() error {
	r.PrintBannerInfo()

	rl, err := readline.New(r.Prompt)
	if err != nil {
		return fmt.Errorf("could not initialize readline: %w", err)
	}
	defer rl.Close()

	evaluator := eval.NewEvaluator()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if trimmed == "exit" || trimmed == "quit" {
			cyanColor.Println("Goodbye!")
			break
		}

		r.evalLine(evaluator, trimmed)
	}

	return nil
}

// evalLine runs one line of input through the full pipeline and prints
// the result or the failure.
func (r *Repl) evalLine(evaluator *eval.Evaluator, line string) {
	tokens, lexErr := lexer.Tokenize(line)
	if lexErr != nil {
		redColor.Printf("Lexer Error: %s\n", lexErr.Error())
		return
	}

	program, parseErr := parser.NewParser(tokens).Parse()
	if parseErr != nil {
		redColor.Printf("Parser Error: %s\n", parseErr.Error())
		if parseErr.Context != "" {
			redColor.Println(parseErr.Context)
		}
		return
	}

	result := evaluator.EvalProgram(program)
	switch res := result.(type) {
	case *objects.Null:
		// Nothing to show
	case *objects.Error:
		redColor.Printf("Runtime Error: %s\n", res.Err.Error())
	case *objects.ThrownValue:
		redColor.Printf("Uncaught exception: %s\n", res.Value.ToString())
	default:
		yellowColor.Println(result.ToString())
	}
}
