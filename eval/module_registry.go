/*
File    : go-giulio/eval/module_registry.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	giuerrors "github.com/akashmaji946/go-giulio/errors"
	"github.com/akashmaji946/go-giulio/lexer"
	"github.com/akashmaji946/go-giulio/objects"
	"github.com/akashmaji946/go-giulio/parser"
	"github.com/akashmaji946/go-giulio/std"
)

// ModuleRegistry resolves module paths to Module values. It maintains two
// maps keyed by canonical path (a::b::c form): a stdlib map populated at
// construction and effectively immutable afterward, and a cache of
// user-loaded modules. The registry is shared across async tasks; the
// mutable cache is guarded by the registry mutex.
type ModuleRegistry struct {
	mu       sync.Mutex
	loaded   map[string]*objects.Module
	stdlib   map[string]*objects.Module
	basePath string
}

// NewModuleRegistry creates a registry rooted at basePath, with the stdlib
// modules preloaded.
func NewModuleRegistry(basePath string) *ModuleRegistry {
	return &ModuleRegistry{
		loaded:   make(map[string]*objects.Module),
		stdlib:   std.Modules(),
		basePath: basePath,
	}
}

// canonicalPath joins path segments into the registry's key form.
func canonicalPath(path []string) string {
	return strings.Join(path, "::")
}

// LoadModule returns the module for path. Cache hits and stdlib modules
// return immediately; anything else resolves to a source file under the
// base path, which is read, lexed, parsed, and evaluated in a child
// evaluator inheriting the already-loaded cache. A file that cannot be
// read, lexed, parsed, or evaluated surfaces a wrapped InvalidOperation.
func (reg *ModuleRegistry) LoadModule(path []string) (*objects.Module, *giuerrors.RuntimeError) {
	key := canonicalPath(path)

	reg.mu.Lock()
	if module, ok := reg.loaded[key]; ok {
		reg.mu.Unlock()
		return module, nil
	}
	if module, ok := reg.stdlib[key]; ok {
		reg.mu.Unlock()
		return module, nil
	}
	reg.mu.Unlock()

	return reg.loadUserModule(path, key)
}

// loadUserModule resolves {base}/a/b/c.giu, runs it, and caches the result.
func (reg *ModuleRegistry) loadUserModule(path []string, key string) (*objects.Module, *giuerrors.RuntimeError) {
	filePath := filepath.Join(append([]string{reg.basePath}, path...)...) + ".giu"

	source, err := os.ReadFile(filePath)
	if err != nil {
		return nil, giuerrors.NewInvalidOperation("Failed to load module '%s': %v", key, err)
	}

	tokens, lexErr := lexer.Tokenize(string(source))
	if lexErr != nil {
		return nil, giuerrors.NewInvalidOperation("Failed to lex module: %s", lexErr.Error())
	}

	program, parseErr := parser.NewParser(tokens).Parse()
	if parseErr != nil {
		return nil, giuerrors.NewInvalidOperation("Failed to parse module: %s", parseErr.Error())
	}

	// The module source runs in a fresh child evaluator whose registry
	// starts from a copy of the current cache, so nested imports do not
	// re-parse already-loaded modules and cannot deadlock against this
	// registry's mutex.
	childReg := NewModuleRegistry(reg.basePath)
	reg.mu.Lock()
	for k, v := range reg.loaded {
		childReg.loaded[k] = v
	}
	reg.mu.Unlock()

	exports, evalErr := extractExports(program, NewEvaluatorWithRegistry(childReg))
	if evalErr != nil {
		return nil, evalErr
	}

	module := &objects.Module{Name: key, Exports: exports}

	reg.mu.Lock()
	// Fold the child's nested loads back in alongside the new module
	for k, v := range childReg.loaded {
		reg.loaded[k] = v
	}
	reg.loaded[key] = module
	reg.mu.Unlock()

	return module, nil
}

// extractExports evaluates a module program and collects its exports:
// every top-level let-bound, fn-defined, and struct-defined name.
func extractExports(program parser.Program, child *Evaluator) (map[string]objects.GiulioObject, *giuerrors.RuntimeError) {
	exports := make(map[string]objects.GiulioObject)

	for _, stmt := range program {
		result := child.evalStatement(stmt)
		switch r := result.(type) {
		case *objects.Error:
			return nil, giuerrors.NewInvalidOperation("Failed to evaluate module: %s", r.Err.Error())
		case *objects.ThrownValue:
			return nil, giuerrors.NewInvalidOperation("Failed to evaluate module: uncaught throw of %s", r.Value.ToString())
		}

		var exportName string
		switch s := stmt.(type) {
		case *parser.LetStatementNode:
			exportName = s.Name
		case *parser.FunctionStatementNode:
			exportName = s.Name
		case *parser.StructStatementNode:
			exportName = s.Name
		default:
			continue
		}

		if value, ok := child.Env.Get(exportName); ok {
			exports[exportName] = value
		}
	}

	return exports, nil
}
