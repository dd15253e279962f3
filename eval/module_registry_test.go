/*
File    : go-giulio/eval/module_registry_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/go-giulio/lexer"
	"github.com/akashmaji946/go-giulio/objects"
	"github.com/akashmaji946/go-giulio/parser"
)

// writeModule places a module source file under base following the
// {base}/a/b/c.giu layout.
func writeModule(t *testing.T, base string, segments []string, source string) {
	t.Helper()
	dir := filepath.Join(append([]string{base}, segments[:len(segments)-1]...)...)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	file := filepath.Join(dir, segments[len(segments)-1]+".giu")
	require.NoError(t, os.WriteFile(file, []byte(source), 0o644))
}

// evalWithBase runs source against a registry rooted at base.
func evalWithBase(t *testing.T, base, src string) objects.GiulioObject {
	t.Helper()
	tokens, lexErr := lexer.Tokenize(src)
	require.Nil(t, lexErr)
	program, parseErr := parser.NewParser(tokens).Parse()
	require.Nil(t, parseErr, "parse error: %v", parseErr)

	evaluator := NewEvaluatorWithRegistry(NewModuleRegistry(base))
	return evaluator.EvalProgram(program)
}

// TestRegistry_UserModule checks file resolution, export extraction, and
// the three import binding forms against a user module.
func TestRegistry_UserModule(t *testing.T) {
	base := t.TempDir()
	writeModule(t, base, []string{"geo", "shapes"}, `
		let origin = 0;
		fn area(w, h) { return w * h; }
		struct Rect { w: 1, h: 1 }
		let hidden = area(2, 2);
	`)

	// All: the module binds under its last path segment
	result := evalWithBase(t, base, `import geo.shapes; shapes.area(3, 4)`)
	require.IsType(t, &objects.Integer{}, result, result.ToString())
	assert.Equal(t, int64(12), result.(*objects.Integer).Value)

	// Specific: each named export binds locally
	result = evalWithBase(t, base, `import geo.shapes.{area, origin}; area(2, 5) + origin`)
	require.IsType(t, &objects.Integer{}, result, result.ToString())
	assert.Equal(t, int64(10), result.(*objects.Integer).Value)

	// Struct exports instantiate at the import site
	result = evalWithBase(t, base, `import geo.shapes.{Rect}; Rect{w: 3}.w`)
	require.IsType(t, &objects.Integer{}, result, result.ToString())
	assert.Equal(t, int64(3), result.(*objects.Integer).Value)

	// let-bound values are exported too
	result = evalWithBase(t, base, `import geo.shapes.{hidden}; hidden`)
	assert.Equal(t, int64(4), result.(*objects.Integer).Value)

	// Unknown exports fail at the import site
	result = evalWithBase(t, base, `import geo.shapes.{nope};`)
	errObj, ok := result.(*objects.Error)
	require.True(t, ok)
	assert.Contains(t, errObj.Err.Error(), "has no export 'nope'")
}

// TestRegistry_Caching checks that a module loads once and is served from
// cache on subsequent imports.
func TestRegistry_Caching(t *testing.T) {
	base := t.TempDir()
	writeModule(t, base, []string{"mod"}, `let v = 1;`)

	registry := NewModuleRegistry(base)

	first, err := registry.LoadModule([]string{"mod"})
	require.Nil(t, err)
	second, err := registry.LoadModule([]string{"mod"})
	require.Nil(t, err)
	assert.Same(t, first, second, "second load must be the cached module")

	// The canonical key uses the a::b form
	assert.Equal(t, "mod", first.Name)
}

// TestRegistry_NestedImports checks modules importing other modules and
// the shared cache between them.
func TestRegistry_NestedImports(t *testing.T) {
	base := t.TempDir()
	writeModule(t, base, []string{"lib", "base"}, `fn double(x) { return x * 2; }`)
	writeModule(t, base, []string{"lib", "top"}, `
		import lib.base.{double};
		fn quadruple(x) { return double(double(x)); }
	`)

	result := evalWithBase(t, base, `import lib.top.{quadruple}; quadruple(3)`)
	require.IsType(t, &objects.Integer{}, result, result.ToString())
	assert.Equal(t, int64(12), result.(*objects.Integer).Value)
}

// TestRegistry_LoadFailures checks the wrapped error for missing,
// unparsable, and failing module files.
func TestRegistry_LoadFailures(t *testing.T) {
	base := t.TempDir()

	registry := NewModuleRegistry(base)
	_, err := registry.LoadModule([]string{"ghost"})
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "Failed to load module 'ghost'")

	writeModule(t, base, []string{"broken"}, `let = ;`)
	_, err = registry.LoadModule([]string{"broken"})
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "Failed to parse module")

	writeModule(t, base, []string{"crashing"}, `let x = 1 / 0;`)
	_, err = registry.LoadModule([]string{"crashing"})
	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "Failed to evaluate module")
}

// TestRegistry_StdlibPreloaded checks that stdlib modules resolve without
// touching the filesystem.
func TestRegistry_StdlibPreloaded(t *testing.T) {
	registry := NewModuleRegistry(t.TempDir())

	for _, path := range [][]string{
		{"std", "string"}, {"std", "math"}, {"std", "time"},
		{"std", "io"}, {"std", "json"}, {"std", "http"}, {"std", "env"},
	} {
		module, err := registry.LoadModule(path)
		require.Nil(t, err, "stdlib module %v", path)
		assert.NotEmpty(t, module.Exports)
	}
}
