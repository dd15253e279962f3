/*
File    : go-giulio/main/run_source.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"fmt"
	"os"

	giuerrors "github.com/akashmaji946/go-giulio/errors"
	"github.com/akashmaji946/go-giulio/eval"
	"github.com/akashmaji946/go-giulio/lexer"
	"github.com/akashmaji946/go-giulio/objects"
	"github.com/akashmaji946/go-giulio/parser"
)

// The three error banners of the front end. Each pipeline stage failure
// renders under its own heading so users can see at a glance where things
// went wrong.

// printBanner draws one boxed error banner on stderr.
func printBanner(title string, lines ...string) {
	redColor.Fprintf(os.Stderr, "╭─ %s ", title)
	for i := len(title); i < 43; i++ {
		redColor.Fprint(os.Stderr, "─")
	}
	redColor.Fprintln(os.Stderr)
	redColor.Fprintln(os.Stderr, "│")
	for _, line := range lines {
		redColor.Fprintf(os.Stderr, "│ %s\n", line)
	}
	redColor.Fprintln(os.Stderr, "│")
	redColor.Fprintln(os.Stderr, "╰────────────────────────────────────────────")
}

// checkSource lexes and parses without executing, reporting failures
// under the appropriate banner. Returns true when the source is clean.
func checkSource(source string) bool {
	tokens, lexErr := lexer.Tokenize(source)
	if lexErr != nil {
		printBanner("Lexer Error", lexErr.Error())
		return false
	}

	if _, parseErr := parser.NewParser(tokens).Parse(); parseErr != nil {
		printParserBanner(parseErr)
		return false
	}
	return true
}

// runSource runs source through the full pipeline against the given
// evaluator. Returns true on success; failures are rendered under their
// stage banner and yield false.
func runSource(source string, evaluator *eval.Evaluator) bool {
	tokens, lexErr := lexer.Tokenize(source)
	if lexErr != nil {
		printBanner("Lexer Error", lexErr.Error())
		return false
	}

	program, parseErr := parser.NewParser(tokens).Parse()
	if parseErr != nil {
		printParserBanner(parseErr)
		return false
	}

	result := evaluator.EvalProgram(program)
	switch res := result.(type) {
	case *objects.Null:
		// Quiet success
	case *objects.Error:
		printBanner("Runtime Error", res.Err.Error())
		return false
	case *objects.ThrownValue:
		printBanner("Runtime Error", fmt.Sprintf("Uncaught exception: %s", res.Value.ToString()))
		return false
	case *objects.String:
		yellowColor.Print(res.Value)
	default:
		yellowColor.Println(result.ToString())
	}
	return true
}

// printParserBanner renders a parse failure with its near-context window.
func printParserBanner(parseErr *giuerrors.ParserError) {
	lines := []string{parseErr.Error()}
	if parseErr.Context != "" {
		lines = append(lines, "", parseErr.Context)
	}
	printBanner("Parser Error", lines...)
}
