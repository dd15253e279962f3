/*
File    : go-giulio/eval/eval_controls.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	giuerrors "github.com/akashmaji946/go-giulio/errors"
	"github.com/akashmaji946/go-giulio/objects"
	"github.com/akashmaji946/go-giulio/parser"
)

// evalTryCatch implements the try/catch/finally contract:
//
//  1. The try body runs. A ThrownValue or Error result is the caught
//     exception candidate.
//  2. When a catch binder and body are present, the caught value is bound
//     into a fresh scope and the catch body's result replaces the try
//     result.
//  3. When a finally body is present, it always runs; if it produces a
//     control-flow value of its own, that value overrides whatever was
//     pending — `finally { return 2 }` beats `try { return 1 }`, and a
//     throw in finally beats everything.
//  4. A surviving ThrownValue keeps propagating up as a throw; other
//     results are returned as they are.
func (ev *Evaluator) evalTryCatch(node *parser.TryCatchExpressionNode) objects.GiulioObject {
	tryResult := ev.evalBlock(node.TryBody)

	var caught objects.GiulioObject
	switch r := tryResult.(type) {
	case *objects.ThrownValue:
		caught = r.Value
	case *objects.Error:
		caught = r
	}

	if caught != nil && node.HasCatch && node.CatchName != "" {
		oldEnv := ev.Env
		newEnv := objects.NewEnclosedEnvironment(ev.Env)
		newEnv.Bind(node.CatchName, caught)
		ev.Env = newEnv

		tryResult = ev.evalBlock(node.CatchBody)
		ev.Env = oldEnv
	}

	finalResult := tryResult
	if node.FinallyBody != nil {
		finallyResult := ev.evalBlock(node.FinallyBody)
		if objects.IsControlFlow(finallyResult) {
			finalResult = finallyResult
		}
	}

	return finalResult
}

// evalImport loads a module through the registry and binds names in the
// caller's environment according to the import form:
//   - All: the module value itself under its last path segment
//   - Specific: each named export locally
//   - Single: the one named export locally
//
// An unknown export name is an invalid operation; load failures surface
// the registry's wrapped error.
func (ev *Evaluator) evalImport(node *parser.ImportStatementNode) objects.GiulioObject {
	module, err := ev.Registry.LoadModule(node.Path)
	if err != nil {
		return objects.NewError(err)
	}

	switch node.Kind {
	case parser.ImportAll:
		last := node.Path[len(node.Path)-1]
		ev.Env.Set(last, module)

	case parser.ImportSpecific, parser.ImportSingle:
		for _, name := range node.Names {
			export, found := module.Exports[name]
			if !found {
				return objects.NewError(giuerrors.NewInvalidOperation(
					"Module %s has no export '%s'", module.Name, name))
			}
			ev.Env.Set(name, export)
		}
	}

	return objects.NULL
}
