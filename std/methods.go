/*
File    : go-giulio/std/methods.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package std

import (
	goerrors "errors"

	giuerrors "github.com/akashmaji946/go-giulio/errors"
	"github.com/akashmaji946/go-giulio/objects"
)

// Builtin-method dispatch: a closed lookup table from (receiver type,
// method name) to a native implementation. Each entry declares its arity
// window counted over the explicit arguments; the receiver is prepended
// before the native runs. User struct methods shadow this table — the
// evaluator only falls through here when the receiver has no matching
// method of its own.

// methodKey identifies one entry of the dispatch table.
type methodKey struct {
	Type objects.GiulioType
	Name string
}

// methodEntry is one native method: its arity window and implementation.
type methodEntry struct {
	MinArgs int
	MaxArgs int
	Fn      objects.BuiltinFunction
}

// methodTable is the closed (type, name) -> native mapping.
var methodTable = map[methodKey]methodEntry{}

// registerMethod adds one native under each of the given receiver types.
func registerMethod(name string, minArgs, maxArgs int, fn objects.BuiltinFunction, types ...objects.GiulioType) {
	for _, t := range types {
		methodTable[methodKey{Type: t, Name: name}] = methodEntry{MinArgs: minArgs, MaxArgs: maxArgs, Fn: fn}
	}
}

func init() {
	numeric := []objects.GiulioType{objects.IntegerType, objects.BigIntegerType, objects.FloatType}
	sized := []objects.GiulioType{objects.StringType, objects.ArrayType, objects.HashType}

	// Shared
	registerMethod("len", 0, 0, blenFn, sized...)
	registerMethod("is_empty", 0, 0, bisEmptyFn, sized...)
	registerMethod("to_string", 0, 0, btoStringFn,
		objects.IntegerType, objects.BigIntegerType, objects.FloatType,
		objects.BooleanType, objects.StringType, objects.ArrayType,
		objects.HashType, objects.NullType, objects.StructType)

	// Conversions
	registerMethod("to_int", 0, 0, btoIntFn, objects.StringType, objects.FloatType, objects.IntegerType, objects.BigIntegerType)
	registerMethod("to_float", 0, 0, btoFloatFn, objects.StringType, objects.IntegerType, objects.BigIntegerType, objects.FloatType)

	// Strings
	registerMethod("split", 1, 1, bsplitFn, objects.StringType)
	registerMethod("trim", 0, 0, btrimFn, objects.StringType)
	registerMethod("replace", 2, 2, breplaceFn, objects.StringType)
	registerMethod("starts_with", 1, 1, bstartsWithFn, objects.StringType)
	registerMethod("ends_with", 1, 1, bendsWithFn, objects.StringType)
	registerMethod("contains", 1, 1, bcontainsFn, objects.StringType, objects.ArrayType)
	registerMethod("to_upper", 0, 0, btoUpperFn, objects.StringType)
	registerMethod("to_lower", 0, 0, btoLowerFn, objects.StringType)
	registerMethod("slice", 1, 2, bsliceFn, objects.StringType, objects.ArrayType)

	// Arrays
	registerMethod("head", 0, 0, bheadFn, objects.ArrayType)
	registerMethod("tail", 0, 0, btailFn, objects.ArrayType)
	registerMethod("push", 1, 1, bpushFn, objects.ArrayType)
	registerMethod("cons", 1, 1, bconsMethodFn, objects.ArrayType)

	// Numbers
	registerMethod("pow", 1, 1, bpowFn, numeric...)
	registerMethod("abs", 0, 0, babsFn, numeric...)
	registerMethod("min", 1, 1, bminFn, numeric...)
	registerMethod("max", 1, 1, bmaxFn, numeric...)

	// Hashes
	registerMethod("get", 1, 1, bgetFn, objects.HashType, objects.ArrayType, objects.StringType)
	registerMethod("set", 2, 2, bsetFn, objects.HashType)
	registerMethod("has", 1, 1, bhasFn, objects.HashType)
	registerMethod("remove", 1, 1, bremoveFn, objects.HashType, objects.ArrayType)
	registerMethod("keys", 0, 0, bkeysFn, objects.HashType)
	registerMethod("values", 0, 0, bvaluesFn, objects.HashType)
	registerMethod("clear", 0, 0, bclearFn, objects.HashType, objects.ArrayType)

	// Struct reflection
	registerMethod("set_field", 2, 2, bsetFieldFn, objects.StructType)
	registerMethod("get_field", 1, 1, bgetFieldFn, objects.StructType)
	registerMethod("fields", 0, 0, bstructFieldsFn, objects.StructType)
	registerMethod("name", 0, 0, bstructNameFn, objects.StructType)
}

// CallMethod dispatches a builtin method call on receiver. Arity failures,
// receiver-type failures, and precondition failures are reported through
// the runtime error taxonomy; an unknown (type, name) pair is an
// InvalidOperation.
func CallMethod(receiver objects.GiulioObject, name string, args []objects.GiulioObject) (objects.GiulioObject, *giuerrors.RuntimeError) {
	entry, ok := methodTable[methodKey{Type: receiver.GetType(), Name: name}]
	if !ok {
		return nil, giuerrors.NewInvalidOperation("%s has no method '%s'", objects.TypeName(receiver), name)
	}

	if len(args) < entry.MinArgs || len(args) > entry.MaxArgs {
		return nil, giuerrors.NewWrongNumberOfArguments(entry.MinArgs, entry.MaxArgs, len(args))
	}

	allArgs := make([]objects.GiulioObject, 0, len(args)+1)
	allArgs = append(allArgs, receiver)
	allArgs = append(allArgs, args...)

	result, err := entry.Fn(allArgs)
	if err != nil {
		if goerrors.Is(err, ErrEmptyArray) {
			return nil, giuerrors.NewEmptyArray()
		}
		return nil, giuerrors.NewInvalidArguments(err.Error())
	}
	return result, nil
}
