/*
File    : go-giulio/eval/eval_functions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	goerrors "errors"
	"sync"

	giuerrors "github.com/akashmaji946/go-giulio/errors"
	"github.com/akashmaji946/go-giulio/objects"
	"github.com/akashmaji946/go-giulio/parser"
	"github.com/akashmaji946/go-giulio/std"
)

// evalCall evaluates a call expression: resolve the callee, then dispatch
// on its function variant. Calling an async function from a non-async
// context auto-awaits, preserving synchronous observational semantics for
// scripts that never use async.
func (ev *Evaluator) evalCall(fnExpr parser.ExpressionNode, argsExpr []parser.ExpressionNode) objects.GiulioObject {
	fnObj := ev.evalExpr(fnExpr)
	if objects.IsControlFlow(fnObj) {
		return fnObj
	}

	switch fn := fnObj.(type) {
	case *objects.Function:
		return ev.evalFnCall(argsExpr, fn)
	case *objects.AsyncFunction:
		future := ev.evalAsyncFnCall(argsExpr, fn)
		if objects.IsControlFlow(future) {
			return future
		}
		if ev.inAsync {
			return future
		}
		return ev.awaitValue(future)
	case *objects.Builtin:
		return ev.evalBuiltinCall(argsExpr, fn)
	case *objects.StdBuiltin:
		return ev.evalStdCall(argsExpr, fn)
	default:
		return objects.NewError(giuerrors.NewNotCallable(objects.TypeName(fnObj)))
	}
}

// evalFnCall calls a user function: arguments evaluate left to right in the
// caller's scope, then the body runs in a new frame whose parent is the
// function's captured environment. One layer of ReturnValue is stripped.
//
// Arity is checked with args >= params: extra arguments are silently
// dropped.
func (ev *Evaluator) evalFnCall(argsExpr []parser.ExpressionNode, fn *objects.Function) objects.GiulioObject {
	if len(argsExpr) < len(fn.Params) {
		return objects.NewError(giuerrors.NewWrongNumberOfArguments(len(fn.Params), len(fn.Params), len(argsExpr)))
	}

	args, flow := ev.evalArgs(argsExpr)
	if flow != nil {
		return flow
	}

	oldEnv := ev.Env
	newEnv := objects.NewEnclosedEnvironment(fn.Env)
	for i, param := range fn.Params {
		newEnv.Bind(param, args[i])
	}
	ev.Env = newEnv
	result := ev.evalBlock(fn.Body)
	ev.Env = oldEnv

	return ev.stripReturn(result)
}

// evalArgs evaluates call arguments left to right, stopping at the first
// control-flow value, which is returned as flow.
func (ev *Evaluator) evalArgs(argsExpr []parser.ExpressionNode) ([]objects.GiulioObject, objects.GiulioObject) {
	args := make([]objects.GiulioObject, 0, len(argsExpr))
	for _, e := range argsExpr {
		value := ev.evalExpr(e)
		if objects.IsControlFlow(value) {
			return nil, value
		}
		args = append(args, value)
	}
	return args, nil
}

// evalBuiltinCall calls an ordinary builtin after checking its arity
// window. Failures on the builtin's free-form channel are wrapped into
// InvalidArguments, except the empty-array sentinel which keeps its own
// error kind.
func (ev *Evaluator) evalBuiltinCall(argsExpr []parser.ExpressionNode, fn *objects.Builtin) objects.GiulioObject {
	if len(argsExpr) < fn.MinArgs || len(argsExpr) > fn.MaxArgs {
		return objects.NewError(giuerrors.NewWrongNumberOfArguments(fn.MinArgs, fn.MaxArgs, len(argsExpr)))
	}

	args, flow := ev.evalArgs(argsExpr)
	if flow != nil {
		return flow
	}

	result, err := fn.Fn(args)
	if err != nil {
		if goerrors.Is(err, std.ErrEmptyArray) {
			return objects.NewError(giuerrors.NewEmptyArray())
		}
		return objects.NewError(giuerrors.NewInvalidArguments(err.Error()))
	}
	return result
}

// evalStdCall calls a stdlib builtin. Synchronous natives return directly;
// async natives run as a task and yield a Future, auto-awaited outside
// async context like any other async call.
func (ev *Evaluator) evalStdCall(argsExpr []parser.ExpressionNode, fn *objects.StdBuiltin) objects.GiulioObject {
	if len(argsExpr) < fn.MinArgs || len(argsExpr) > fn.MaxArgs {
		return objects.NewError(giuerrors.NewWrongNumberOfArguments(fn.MinArgs, fn.MaxArgs, len(argsExpr)))
	}

	args, flow := ev.evalArgs(argsExpr)
	if flow != nil {
		return flow
	}

	if !fn.Async {
		result, err := fn.Fn(args)
		if err != nil {
			return objects.NewError(err)
		}
		return result
	}

	future := objects.SpawnFuture(func() objects.FutureResult {
		result, err := fn.Fn(args)
		if err != nil {
			return objects.FutureResult{Err: err}
		}
		return objects.FutureResult{Value: result}
	})
	if ev.inAsync {
		return future
	}
	return ev.awaitValue(future)
}

// evalAsyncFnCall calls an async function: it returns a Future containing
// the single-shot pending computation. Arguments may evaluate
// concurrently — each on its own evaluator clone — but they bind
// positionally; callers must not rely on argument side-effect ordering.
func (ev *Evaluator) evalAsyncFnCall(argsExpr []parser.ExpressionNode, fn *objects.AsyncFunction) objects.GiulioObject {
	if len(argsExpr) < len(fn.Params) {
		return objects.NewError(giuerrors.NewWrongNumberOfArguments(len(fn.Params), len(fn.Params), len(argsExpr)))
	}

	args := make([]objects.GiulioObject, len(argsExpr))
	var wg sync.WaitGroup
	for i, e := range argsExpr {
		wg.Add(1)
		go func(i int, e parser.ExpressionNode) {
			defer wg.Done()
			child := ev.clone()
			args[i] = child.evalExpr(e)
		}(i, e)
	}
	wg.Wait()

	for _, arg := range args {
		if objects.IsControlFlow(arg) {
			return arg
		}
	}

	task := &Evaluator{Registry: ev.Registry, inAsync: true}
	return objects.SpawnFuture(func() objects.FutureResult {
		newEnv := objects.NewEnclosedEnvironment(fn.Env)
		for i, param := range fn.Params {
			newEnv.Bind(param, args[i])
		}
		task.Env = newEnv

		result := task.stripReturn(task.evalBlock(fn.Body))
		if errObj, isErr := result.(*objects.Error); isErr {
			return objects.FutureResult{Err: errObj.Err}
		}
		// A thrown value is delivered on await as the value of the await
		// expression, where it keeps propagating as a throw
		return objects.FutureResult{Value: result}
	})
}

// evalAwait evaluates an await expression. The operand must be a Future;
// its one-shot computation is taken and driven to completion.
func (ev *Evaluator) evalAwait(node *parser.AwaitExpressionNode) objects.GiulioObject {
	value := ev.evalExpr(node.Value)
	if objects.IsControlFlow(value) {
		return value
	}
	return ev.awaitValue(value)
}

// awaitValue drives a Future to completion, yielding the inner value or
// propagating its error. Awaiting an exhausted future or a non-future
// fails.
func (ev *Evaluator) awaitValue(value objects.GiulioObject) objects.GiulioObject {
	future, ok := value.(*objects.Future)
	if !ok {
		return objects.NewError(giuerrors.NewTypeMismatch("future", objects.TypeName(value)))
	}

	ch, ok := future.Take()
	if !ok {
		return objects.NewError(giuerrors.NewInvalidOperation("Cannot await a future that has already been awaited"))
	}

	result := <-ch
	if result.Err != nil {
		return objects.NewError(result.Err)
	}
	return result.Value
}

// callValue invokes an already-evaluated callable with already-evaluated
// arguments. Module export calls and struct method fallbacks use this.
func (ev *Evaluator) callValue(fnObj objects.GiulioObject, args []objects.GiulioObject) objects.GiulioObject {
	switch fn := fnObj.(type) {
	case *objects.Function:
		if len(args) < len(fn.Params) {
			return objects.NewError(giuerrors.NewWrongNumberOfArguments(len(fn.Params), len(fn.Params), len(args)))
		}
		oldEnv := ev.Env
		newEnv := objects.NewEnclosedEnvironment(fn.Env)
		for i, param := range fn.Params {
			newEnv.Bind(param, args[i])
		}
		ev.Env = newEnv
		result := ev.evalBlock(fn.Body)
		ev.Env = oldEnv
		return ev.stripReturn(result)

	case *objects.AsyncFunction:
		fut := ev.spawnAsyncValueCall(fn, args)
		if ev.inAsync {
			return fut
		}
		return ev.awaitValue(fut)

	case *objects.Builtin:
		if len(args) < fn.MinArgs || len(args) > fn.MaxArgs {
			return objects.NewError(giuerrors.NewWrongNumberOfArguments(fn.MinArgs, fn.MaxArgs, len(args)))
		}
		result, err := fn.Fn(args)
		if err != nil {
			if goerrors.Is(err, std.ErrEmptyArray) {
				return objects.NewError(giuerrors.NewEmptyArray())
			}
			return objects.NewError(giuerrors.NewInvalidArguments(err.Error()))
		}
		return result

	case *objects.StdBuiltin:
		if len(args) < fn.MinArgs || len(args) > fn.MaxArgs {
			return objects.NewError(giuerrors.NewWrongNumberOfArguments(fn.MinArgs, fn.MaxArgs, len(args)))
		}
		if !fn.Async {
			result, err := fn.Fn(args)
			if err != nil {
				return objects.NewError(err)
			}
			return result
		}
		future := objects.SpawnFuture(func() objects.FutureResult {
			result, err := fn.Fn(args)
			if err != nil {
				return objects.FutureResult{Err: err}
			}
			return objects.FutureResult{Value: result}
		})
		if ev.inAsync {
			return future
		}
		return ev.awaitValue(future)

	default:
		return objects.NewError(giuerrors.NewNotCallable(objects.TypeName(fnObj)))
	}
}

// spawnAsyncValueCall spawns an async function body with pre-evaluated
// arguments as a task.
func (ev *Evaluator) spawnAsyncValueCall(fn *objects.AsyncFunction, args []objects.GiulioObject) objects.GiulioObject {
	if len(args) < len(fn.Params) {
		return objects.NewError(giuerrors.NewWrongNumberOfArguments(len(fn.Params), len(fn.Params), len(args)))
	}

	task := &Evaluator{Registry: ev.Registry, inAsync: true}
	return objects.SpawnFuture(func() objects.FutureResult {
		newEnv := objects.NewEnclosedEnvironment(fn.Env)
		for i, param := range fn.Params {
			newEnv.Bind(param, args[i])
		}
		task.Env = newEnv

		result := task.stripReturn(task.evalBlock(fn.Body))
		if errObj, isErr := result.(*objects.Error); isErr {
			return objects.FutureResult{Err: errObj.Err}
		}
		return objects.FutureResult{Value: result}
	})
}

// evalMethodCall evaluates obj.name(args). A struct receiver first
// consults its own method table: the method runs with `this` bound to a
// copy of the receiver, mutations to `this` are observed after the call,
// and — when the receiver was a plain identifier or `this` — written back
// to its slot. A module receiver resolves the name among its exports.
// Everything else falls through to the builtin-method table keyed on
// (receiver type, method name).
func (ev *Evaluator) evalMethodCall(objectExpr parser.ExpressionNode, method string, argsExpr []parser.ExpressionNode) objects.GiulioObject {
	// If the receiver is a plain name we will write the mutated struct
	// back to it after the call
	varName := ""
	switch o := objectExpr.(type) {
	case *parser.IdentifierNode:
		varName = o.Name
	case *parser.ThisExpressionNode:
		varName = "this"
	}

	receiver := ev.evalExpr(objectExpr)
	if objects.IsControlFlow(receiver) {
		return receiver
	}

	if st, isStruct := receiver.(*objects.Struct); isStruct {
		if methodObj, found := st.Methods[method]; found {
			return ev.evalStructMethodCall(st, varName, method, methodObj, argsExpr)
		}
	}

	if mod, isModule := receiver.(*objects.Module); isModule {
		export, found := mod.Exports[method]
		if !found {
			return objects.NewError(giuerrors.NewInvalidOperation("Module %s has no export '%s'", mod.Name, method))
		}
		args, flow := ev.evalArgs(argsExpr)
		if flow != nil {
			return flow
		}
		return ev.callValue(export, args)
	}

	// Fall back to the builtin-method table
	args, flow := ev.evalArgs(argsExpr)
	if flow != nil {
		return flow
	}
	result, err := std.CallMethod(receiver, method, args)
	if err != nil {
		return objects.NewError(err)
	}
	return result
}

// evalStructMethodCall runs one user-defined struct method. The method
// body executes in a new frame with `this` bound to a copy of the
// receiver; after the call the possibly mutated `this` is read back,
// written to the receiver's slot when it has one, and becomes the call's
// result when the body's value is null. An explicit return value, or any
// other final value of the body, is the result otherwise.
func (ev *Evaluator) evalStructMethodCall(receiver *objects.Struct, varName, method string, methodObj objects.GiulioObject, argsExpr []parser.ExpressionNode) objects.GiulioObject {
	fn, isFn := methodObj.(*objects.Function)
	if !isFn {
		return objects.NewError(giuerrors.NewNotCallable(method))
	}

	oldEnv := ev.Env
	newEnv := objects.NewEnclosedEnvironment(ev.Env)
	newEnv.Bind("this", receiver.Clone())
	ev.Env = newEnv

	args, flow := ev.evalArgs(argsExpr)
	if flow != nil {
		ev.Env = oldEnv
		return flow
	}
	if len(args) != len(fn.Params) {
		ev.Env = oldEnv
		return objects.NewError(giuerrors.NewWrongNumberOfArguments(len(fn.Params), len(fn.Params), len(args)))
	}
	for i, param := range fn.Params {
		newEnv.Bind(param, args[i])
	}

	result := ev.evalBlock(fn.Body)

	// The method may have reassigned this; observe it before leaving
	modifiedThis, ok := newEnv.Get("this")
	if !ok {
		modifiedThis = receiver
	}
	ev.Env = oldEnv

	if varName != "" {
		ev.Env.Set(varName, modifiedThis)
	}

	switch r := result.(type) {
	case *objects.Null:
		// Fell off the end: the mutated receiver is the result
		return modifiedThis
	case *objects.ReturnValue:
		return r.Value
	default:
		return ev.stripReturn(result)
	}
}
