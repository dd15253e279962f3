/*
File    : go-giulio/objects/functions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package objects

import (
	"fmt"

	giuerrors "github.com/akashmaji946/go-giulio/errors"
	"github.com/akashmaji946/go-giulio/parser"
)

// BuiltinFunction is the signature of a native builtin with a free-form
// error channel. Failures are plain error values whose message is wrapped
// into an InvalidArguments runtime error at the call site.
type BuiltinFunction func(args []GiulioObject) (GiulioObject, error)

// StdFunction is the signature of a stdlib native that reports typed
// runtime errors directly.
type StdFunction func(args []GiulioObject) (GiulioObject, *giuerrors.RuntimeError)

// Function represents a user-defined function value. It packages the
// parameter names and body with the environment chain in force at its
// creation, forming a closure. The function holds an owning reference to
// its defining frame, so the frame outlives it; the frame may in turn bind
// the function itself, forming a cycle that is only reclaimed at process
// exit.
type Function struct {
	Params []string
	Body   parser.Program
	Env    *Environment
}

// GetType returns the type of the Function object
func (f *Function) GetType() GiulioType {
	return FunctionType
}

// ToString returns "[function]"
func (f *Function) ToString() string {
	return "[function]"
}

// ToObject returns a detailed representation including the parameter list
func (f *Function) ToObject() string {
	return fmt.Sprintf("<function(params:%v)>", f.Params)
}

// AsyncFunction represents a user-defined async function value. Calling one
// from async context yields a Future; calling it from synchronous context
// auto-awaits.
type AsyncFunction struct {
	Params []string
	Body   parser.Program
	Env    *Environment
}

// GetType returns the type of the AsyncFunction object
func (f *AsyncFunction) GetType() GiulioType {
	return AsyncFunctionType
}

// ToString returns "[async function]"
func (f *AsyncFunction) ToString() string {
	return "[async function]"
}

// ToObject returns a detailed representation including the parameter list
func (f *AsyncFunction) ToObject() string {
	return fmt.Sprintf("<async function(params:%v)>", f.Params)
}

// Method represents a struct method value: a function body evaluated with
// `this` bound to the receiver.
type Method struct {
	Params []string
	Body   parser.Program
	Env    *Environment
}

// GetType returns the type of the Method object
func (m *Method) GetType() GiulioType {
	return MethodType
}

// ToString returns "[method]"
func (m *Method) ToString() string {
	return "[method]"
}

// ToObject returns a detailed representation including the parameter list
func (m *Method) ToObject() string {
	return fmt.Sprintf("<method(params:%v)>", m.Params)
}

// Builtin represents a native function with a declared arity window and a
// free-form error channel. Errors it reports are wrapped into
// InvalidArguments at the call site.
type Builtin struct {
	Name    string
	MinArgs int
	MaxArgs int
	Fn      BuiltinFunction
}

// GetType returns the type of the Builtin object
func (b *Builtin) GetType() GiulioType {
	return BuiltinType
}

// ToString returns "[built-in function: name]"
func (b *Builtin) ToString() string {
	return fmt.Sprintf("[built-in function: %s]", b.Name)
}

// ToObject returns a detailed representation including the arity window
func (b *Builtin) ToObject() string {
	return fmt.Sprintf("<builtin(%s, %d..%d)>", b.Name, b.MinArgs, b.MaxArgs)
}

// StdBuiltin represents a stdlib native function. It differs from Builtin
// only in its error channel: failures are typed runtime errors rather than
// free-form strings. Async stdlib natives set Async, which makes the call
// produce a Future instead of a direct value.
type StdBuiltin struct {
	Name    string
	MinArgs int
	MaxArgs int
	Async   bool
	Fn      StdFunction
}

// GetType returns the type of the StdBuiltin object
func (b *StdBuiltin) GetType() GiulioType {
	return StdBuiltinType
}

// ToString returns "[built-in function: name]"
func (b *StdBuiltin) ToString() string {
	if b.Async {
		return fmt.Sprintf("[async built-in function: %s]", b.Name)
	}
	return fmt.Sprintf("[built-in function: %s]", b.Name)
}

// ToObject returns a detailed representation including the arity window
func (b *StdBuiltin) ToObject() string {
	return fmt.Sprintf("<std builtin(%s, %d..%d)>", b.Name, b.MinArgs, b.MaxArgs)
}
