/*
File    : go-giulio/std/io_builtins.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package std

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/akashmaji946/go-giulio/objects"
)

// Console I/O natives: print, println, input. The streams are package
// state so tests and the REPL can redirect them; access is serialized
// because async tasks may print concurrently.

var (
	ioMu   sync.Mutex
	output io.Writer = os.Stdout
	input  *bufio.Reader
)

// SetOutput redirects the print/println destination. Tests use this to
// capture program output.
func SetOutput(w io.Writer) {
	ioMu.Lock()
	defer ioMu.Unlock()
	output = w
}

// SetInput redirects the input() source.
func SetInput(r io.Reader) {
	ioMu.Lock()
	defer ioMu.Unlock()
	input = bufio.NewReader(r)
}

// bprintFn implements print(args...): each argument's display form,
// space-separated, without a trailing newline.
func bprintFn(args []objects.GiulioObject) (objects.GiulioObject, error) {
	ioMu.Lock()
	defer ioMu.Unlock()
	fmt.Fprint(output, displayJoin(args))
	return objects.NULL, nil
}

// bprintlnFn implements println(args...): like print with a trailing
// newline.
func bprintlnFn(args []objects.GiulioObject) (objects.GiulioObject, error) {
	ioMu.Lock()
	defer ioMu.Unlock()
	fmt.Fprintln(output, displayJoin(args))
	return objects.NULL, nil
}

// binputFn implements input([prompt]): one line from the input stream,
// without the trailing newline.
func binputFn(args []objects.GiulioObject) (objects.GiulioObject, error) {
	ioMu.Lock()
	defer ioMu.Unlock()

	if len(args) == 1 {
		prompt, ok := args[0].(*objects.String)
		if !ok {
			return nil, fmt.Errorf("input() prompt must be a string, got %s", objects.TypeName(args[0]))
		}
		fmt.Fprint(output, prompt.Value)
	}

	if input == nil {
		input = bufio.NewReader(os.Stdin)
	}
	line, err := input.ReadString('\n')
	if err != nil && line == "" {
		return nil, fmt.Errorf("input() could not read from stdin: %v", err)
	}
	return &objects.String{Value: strings.TrimRight(line, "\r\n")}, nil
}

// displayJoin renders arguments space-separated in their display form.
func displayJoin(args []objects.GiulioObject) string {
	parts := make([]string, 0, len(args))
	for _, arg := range args {
		parts = append(parts, arg.ToString())
	}
	return strings.Join(parts, " ")
}
