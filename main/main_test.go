/*
File    : go-giulio/main/main_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/go-giulio/eval"
	"github.com/akashmaji946/go-giulio/std"
)

// TestCheckSource exercises the lex+parse front end end to end.
func TestCheckSource(t *testing.T) {
	assert.True(t, checkSource(`let x = 5; print(x);`))

	// Parse failure
	assert.False(t, checkSource(`let = 5;`))

	// Lex failure
	assert.False(t, checkSource(`let s = "open`))

	// await outside async is rejected at check time already
	assert.False(t, checkSource(`await f();`))
}

// TestRunSource exercises the full pipeline including program output.
func TestRunSource(t *testing.T) {
	var buf bytes.Buffer
	std.SetOutput(&buf)
	defer std.SetOutput(os.Stdout)

	evaluator := eval.NewEvaluatorWithRegistry(eval.NewModuleRegistry(t.TempDir()))
	ok := runSource(`
		fn greet(name) { return "hello " + name; }
		println(greet("giulio"));
	`, evaluator)

	assert.True(t, ok)
	assert.Equal(t, "hello giulio\n", buf.String())

	// Runtime failures report through the banner path and fail the run
	assert.False(t, runSource(`1 / 0;`, evaluator))

	// Uncaught throws fail the run too
	assert.False(t, runSource(`throw "top";`, evaluator))
}

// TestRunSource_FileImports runs a script that imports a sibling module,
// the way the run command wires the registry base path.
func TestRunSource_FileImports(t *testing.T) {
	dir := t.TempDir()
	libPath := filepath.Join(dir, "helpers.giu")
	require.NoError(t, os.WriteFile(libPath, []byte(`fn twice(x) { return x * 2; }`), 0o644))

	var buf bytes.Buffer
	std.SetOutput(&buf)
	defer std.SetOutput(os.Stdout)

	evaluator := eval.NewEvaluatorWithRegistry(eval.NewModuleRegistry(dir))
	ok := runSource(`
		import helpers.{twice};
		println(twice(21));
	`, evaluator)

	assert.True(t, ok)
	assert.Equal(t, "42\n", buf.String())
}
