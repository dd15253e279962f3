/*
File    : go-giulio/std/builtins.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package std

import (
	goerrors "errors"
	"math"

	"github.com/akashmaji946/go-giulio/objects"
)

// ErrEmptyArray is the sentinel reported by head() and tail() on an empty
// array. The evaluator maps it to the EmptyArray runtime error instead of
// the generic InvalidArguments wrapping.
var ErrEmptyArray = goerrors.New("Cannot perform operation on empty array")

// VariadicMax is the MaxArgs value for builtins with no upper arity bound.
const VariadicMax = math.MaxInt32

// Builtins is the table of builtin functions auto-loaded into every scope.
// Each entry declares its name, arity window, and native implementation.
var Builtins = []*objects.Builtin{
	// I/O
	{Name: "print", MinArgs: 1, MaxArgs: VariadicMax, Fn: bprintFn},
	{Name: "println", MinArgs: 1, MaxArgs: VariadicMax, Fn: bprintlnFn},
	{Name: "input", MinArgs: 0, MaxArgs: 1, Fn: binputFn},

	// Core
	{Name: "type", MinArgs: 1, MaxArgs: 1, Fn: btypeFn},
	{Name: "len", MinArgs: 1, MaxArgs: 1, Fn: blenFn},
	{Name: "is_empty", MinArgs: 1, MaxArgs: 1, Fn: bisEmptyFn},

	// Strings
	{Name: "split", MinArgs: 2, MaxArgs: 2, Fn: bsplitFn},
	{Name: "replace", MinArgs: 3, MaxArgs: 3, Fn: breplaceFn},
	{Name: "trim", MinArgs: 1, MaxArgs: 1, Fn: btrimFn},
	{Name: "contains", MinArgs: 2, MaxArgs: 2, Fn: bcontainsFn},
	{Name: "slice", MinArgs: 2, MaxArgs: 3, Fn: bsliceFn},

	// Arrays
	{Name: "head", MinArgs: 1, MaxArgs: 1, Fn: bheadFn},
	{Name: "tail", MinArgs: 1, MaxArgs: 1, Fn: btailFn},
	{Name: "cons", MinArgs: 2, MaxArgs: 2, Fn: bconsFn},
	{Name: "push", MinArgs: 2, MaxArgs: 2, Fn: bpushFn},

	// Numbers
	{Name: "pow", MinArgs: 2, MaxArgs: 2, Fn: bpowFn},
	{Name: "abs", MinArgs: 1, MaxArgs: 1, Fn: babsFn},
	{Name: "min", MinArgs: 2, MaxArgs: 2, Fn: bminFn},
	{Name: "max", MinArgs: 2, MaxArgs: 2, Fn: bmaxFn},

	// Hashes
	{Name: "keys", MinArgs: 1, MaxArgs: 1, Fn: bkeysFn},
	{Name: "values", MinArgs: 1, MaxArgs: 1, Fn: bvaluesFn},
	{Name: "clear", MinArgs: 1, MaxArgs: 1, Fn: bclearFn},
	{Name: "has", MinArgs: 2, MaxArgs: 2, Fn: bhasFn},

	// Struct reflection
	{Name: "set_field", MinArgs: 3, MaxArgs: 3, Fn: bsetFieldFn},
	{Name: "get_field", MinArgs: 2, MaxArgs: 2, Fn: bgetFieldFn},
	{Name: "fields", MinArgs: 1, MaxArgs: 1, Fn: bstructFieldsFn},
	{Name: "name", MinArgs: 1, MaxArgs: 1, Fn: bstructNameFn},
}

// init seeds the environment builtin table so every new scope frame starts
// with the full set. Importing the std package is what arms the runtime.
func init() {
	for _, builtin := range Builtins {
		objects.RegisterBuiltin(builtin.Name, builtin)
	}
}
