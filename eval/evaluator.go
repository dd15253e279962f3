/*
File    : go-giulio/eval/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval implements the tree-walking evaluator for the Giulio
// language. It executes the AST produced by the parser against a lexically
// scoped environment chain, dispatching exhaustively over the statement and
// expression node types. Control flow (return, break, continue, throw,
// runtime errors) travels as dedicated runtime values that propagate out of
// nested blocks until something intercepts them.
//
// The evaluator also hosts the module registry and the cooperative async
// runtime: calling an async function spawns its body as a task (a
// goroutine) and yields a single-shot Future; awaiting drives it to
// completion. Outside an async context calls auto-await, so scripts that
// never use async observe strictly sequential semantics.
package eval

import (
	"io"
	"os"

	giuerrors "github.com/akashmaji946/go-giulio/errors"
	"github.com/akashmaji946/go-giulio/objects"
	"github.com/akashmaji946/go-giulio/parser"
	"github.com/akashmaji946/go-giulio/std"
)

// Evaluator holds the state for evaluating Giulio AST nodes: the current
// environment frame, the module registry, and whether execution is inside
// an async task. Each async task runs on its own Evaluator clone; the
// environment chain and the registry are shared between clones and are
// internally serialized.
type Evaluator struct {
	Env      *objects.Environment // Current scope frame for variable bindings
	Registry *ModuleRegistry      // Path -> module resolution and caching

	// inAsync marks execution inside an async task. It decides whether a
	// call to an async function yields a Future or auto-awaits.
	inAsync bool
}

// NewEvaluator creates an evaluator with a fresh root environment and a
// module registry rooted at the current working directory.
func NewEvaluator() *Evaluator {
	basePath, err := os.Getwd()
	if err != nil {
		basePath = "."
	}
	return NewEvaluatorWithRegistry(NewModuleRegistry(basePath))
}

// NewEvaluatorWithRegistry creates an evaluator with a fresh root
// environment sharing the given registry. The module loader uses this to
// evaluate module sources against the already-populated cache.
func NewEvaluatorWithRegistry(registry *ModuleRegistry) *Evaluator {
	return &Evaluator{
		Env:      objects.NewEnvironment(),
		Registry: registry,
	}
}

// clone returns an evaluator sharing this one's environment and registry.
// Async tasks and concurrent argument evaluation run on clones so that
// their env-pointer swaps cannot race with the parent's.
func (ev *Evaluator) clone() *Evaluator {
	return &Evaluator{
		Env:      ev.Env,
		Registry: ev.Registry,
		inAsync:  ev.inAsync,
	}
}

// SetWriter redirects print/println output, e.g. into a buffer for tests.
func (ev *Evaluator) SetWriter(w io.Writer) {
	std.SetOutput(w)
}

// SetReader redirects the input() source.
func (ev *Evaluator) SetReader(r io.Reader) {
	std.SetInput(r)
}

// stripReturn unwraps one layer of ReturnValue, leaving everything else
// untouched.
func (ev *Evaluator) stripReturn(obj objects.GiulioObject) objects.GiulioObject {
	if ret, ok := obj.(*objects.ReturnValue); ok {
		return ret.Value
	}
	return obj
}

// EvalProgram runs a program's statements in order and strips an outer
// ReturnValue wrapper if present. This is the entry point for files, the
// REPL, and module evaluation.
func (ev *Evaluator) EvalProgram(program parser.Program) objects.GiulioObject {
	result := ev.evalBlock(program)
	return ev.stripReturn(result)
}

// evalBlock evaluates statements one by one. On encountering any
// control-flow value it stops and propagates that value upward. The
// block's result is the value of its last statement; an empty block yields
// Null.
func (ev *Evaluator) evalBlock(block parser.Program) objects.GiulioObject {
	var result objects.GiulioObject = objects.NULL

	for _, stmt := range block {
		result = ev.evalStatement(stmt)
		if objects.IsControlFlow(result) {
			return result
		}
	}

	return result
}

// evalStatement evaluates one statement and returns its value.
func (ev *Evaluator) evalStatement(stmt parser.StatementNode) objects.GiulioObject {
	switch s := stmt.(type) {
	case *parser.ExpressionStatementNode:
		// Semicolon-terminated: the value is discarded in normal flow,
		// control-flow values still propagate
		result := ev.evalExpr(s.Expression)
		if objects.IsControlFlow(result) {
			return result
		}
		return objects.NULL

	case *parser.ExpressionValueStatementNode:
		return ev.evalExpr(s.Expression)

	case *parser.LetStatementNode:
		value := ev.evalExpr(s.Value)
		if objects.IsControlFlow(value) {
			return value
		}
		ev.Env.Bind(s.Name, value)
		return value

	case *parser.AssignStatementNode:
		if _, exists := ev.Env.Get(s.Name); !exists {
			return objects.NewError(giuerrors.NewUndefinedVariable(s.Name))
		}
		value := ev.evalExpr(s.Value)
		if objects.IsControlFlow(value) {
			return value
		}
		ev.Env.Set(s.Name, value)
		return value

	case *parser.FieldAssignStatementNode:
		return ev.evalFieldAssign(s.Object, s.Field, s.Value)

	case *parser.IndexAssignStatementNode:
		return ev.evalIndexAssign(s.Target, s.Index, s.Value)

	case *parser.FunctionStatementNode:
		fn := &objects.Function{Params: s.Params, Body: s.Body, Env: ev.Env}
		ev.Env.Bind(s.Name, fn)
		return fn

	case *parser.StructStatementNode:
		return ev.evalStructDef(s)

	case *parser.ImportStatementNode:
		return ev.evalImport(s)

	case *parser.ReturnStatementNode:
		value := ev.evalExpr(s.Value)
		if objects.IsControlFlow(value) {
			return value
		}
		return &objects.ReturnValue{Value: value}

	case *parser.ThrowStatementNode:
		value := ev.evalExpr(s.Value)
		if objects.IsControlFlow(value) {
			return value
		}
		return &objects.ThrownValue{Value: value}

	case *parser.BreakStatementNode:
		return objects.BREAK

	case *parser.ContinueStatementNode:
		return objects.CONTINUE

	default:
		return objects.NewError(giuerrors.NewInvalidOperation("unknown statement"))
	}
}
